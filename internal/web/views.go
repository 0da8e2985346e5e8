package web

import (
	"net/http"

	"github.com/prajjwalps/laptrack/internal/model"
)

// laptopView pairs a laptop with its resolved location name.
type laptopView struct {
	model.Laptop
	LocationName string
}

// transferView pairs a transfer request with resolved endpoint names.
type transferView struct {
	model.TransferRequest
	FromName string
	ToName   string
}

func (s *Server) laptopViews(laptops []model.Laptop) []laptopView {
	views := make([]laptopView, 0, len(laptops))
	for _, l := range laptops {
		views = append(views, laptopView{Laptop: l, LocationName: s.Service.LocationName(l.CurrentLocation)})
	}
	return views
}

func (s *Server) transferViews(requests []model.TransferRequest) []transferView {
	views := make([]transferView, 0, len(requests))
	for _, t := range requests {
		views = append(views, transferView{
			TransferRequest: t,
			FromName:        s.Service.LocationName(t.FromLocation),
			ToName:          s.Service.LocationName(t.ToLocation),
		})
	}
	return views
}

// redirectUnless sends the user to their landing page when their role is
// not in the allowed set. Returns true when the request may proceed.
func (s *Server) redirectUnless(w http.ResponseWriter, r *http.Request, roles ...string) bool {
	claims := GetWebClaims(r.Context())
	if claims == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return false
	}
	for _, role := range roles {
		if claims.Role == role {
			return true
		}
	}
	http.Redirect(w, r, model.LandingRoute(claims.Role), http.StatusSeeOther)
	return false
}
