package web

import (
	"net/http"

	"github.com/prajjwalps/laptrack/internal/model"
)

// storeView pairs a store with its current stock count.
type storeView struct {
	model.Store
	StockCount int
}

// StoresPage handles GET /stores, the retail network listing.
func (s *Server) StoresPage(w http.ResponseWriter, r *http.Request) {
	if !s.redirectUnless(w, r, model.RoleAdmin) {
		return
	}

	counts := map[string]int{}
	for _, l := range s.Service.Laptops() {
		if l.Status != model.StatusInTransit {
			counts[l.CurrentLocation]++
		}
	}

	var views []storeView
	for _, st := range s.Service.Stores() {
		views = append(views, storeView{Store: st, StockCount: counts[st.ID]})
	}

	s.Templates.Render(w, "stores.html", &struct {
		PageData
		Stores []storeView
	}{
		PageData: s.pageData(r, "Stores"),
		Stores:   views,
	})
}
