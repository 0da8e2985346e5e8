package web

import (
	"log/slog"
	"net/http"

	"github.com/prajjwalps/laptrack/internal/inventory"
	"github.com/prajjwalps/laptrack/internal/model"
)

// locationOption is a destination choice on the transfer form.
type locationOption struct {
	ID   string
	Name string
}

func (s *Server) locationOptions() []locationOption {
	options := []locationOption{{ID: model.WarehouseID, Name: model.WarehouseName}}
	for _, st := range s.Service.Stores() {
		options = append(options, locationOption{ID: st.ID, Name: st.Name})
	}
	return options
}

// transferFormData carries the transfer form state, including the
// laptops currently eligible for transfer.
type transferFormData struct {
	PageData
	Laptops   []laptopView
	Locations []locationOption
}

func (s *Server) transferForm(r *http.Request) *transferFormData {
	var eligible []model.Laptop
	for _, l := range s.Service.Laptops() {
		if l.Status != model.StatusInTransit {
			eligible = append(eligible, l)
		}
	}
	return &transferFormData{
		PageData:  s.pageData(r, "New Transfer"),
		Laptops:   s.laptopViews(eligible),
		Locations: s.locationOptions(),
	}
}

// TransferNewPage handles GET /transfers/new.
func (s *Server) TransferNewPage(w http.ResponseWriter, r *http.Request) {
	s.Templates.Render(w, "transfer_new.html", s.transferForm(r))
}

// TransferCreateSubmit handles POST /transfers/new. The source location
// is derived from the laptop itself, the form only picks the destination.
func (s *Server) TransferCreateSubmit(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())

	serial := r.FormValue("laptop_serial")
	toLocation := r.FormValue("to_location")

	laptop := s.Service.LaptopBySerial(serial)
	if laptop == nil {
		data := s.transferForm(r)
		data.Error = "Select a laptop to transfer."
		s.Templates.Render(w, "transfer_new.html", data)
		return
	}

	id, err := s.Service.CreateTransferRequest(inventory.TransferInput{
		LaptopSerial: serial,
		FromLocation: laptop.CurrentLocation,
		ToLocation:   toLocation,
		RequestedBy:  claims.Name,
	})
	if err != nil {
		slog.Warn("transfer creation failed", "error", err, "user", claims.Name)
		data := s.transferForm(r)
		data.Error = "Transfer failed. Check the laptop and destination."
		s.Templates.Render(w, "transfer_new.html", data)
		return
	}

	slog.Info("transfer requested", "user", claims.Name, "serial", serial,
		"from", laptop.CurrentLocation, "to", toLocation, "request", id)
	http.Redirect(w, r, "/history", http.StatusSeeOther)
}

// ReceivePage handles GET /receive, the approval queue. Store owners see
// requests bound for their store, admins see every pending request.
func (s *Server) ReceivePage(w http.ResponseWriter, r *http.Request) {
	if !s.redirectUnless(w, r, model.RoleAdmin, model.RoleStoreOwner) {
		return
	}
	claims := GetWebClaims(r.Context())

	var pending []model.TransferRequest
	if claims.Role == model.RoleStoreOwner {
		pending = s.Service.PendingRequestsFor(claims.StoreID)
	} else {
		for _, t := range s.Service.TransferRequests() {
			if t.Status == model.TransferPending {
				pending = append(pending, t)
			}
		}
	}

	s.Templates.Render(w, "receive.html", &struct {
		PageData
		Pending []transferView
	}{
		PageData: s.pageData(r, "Receive"),
		Pending:  s.transferViews(pending),
	})
}

// ReceiveResolveSubmit handles POST /receive/{id}. The action form value
// decides between acceptance and rejection.
func (s *Server) ReceiveResolveSubmit(w http.ResponseWriter, r *http.Request) {
	if !s.redirectUnless(w, r, model.RoleAdmin, model.RoleStoreOwner) {
		return
	}
	claims := GetWebClaims(r.Context())

	id := r.PathValue("id")
	status := model.TransferRejected
	if r.FormValue("action") == "accept" {
		status = model.TransferAccepted
	}

	if err := s.Service.ResolveTransferRequest(id, status, claims.Name); err != nil {
		slog.Warn("transfer resolution failed", "error", err, "user", claims.Name, "request", id)
	} else {
		slog.Info("transfer resolved", "user", claims.Name, "request", id, "status", status)
	}
	http.Redirect(w, r, "/receive", http.StatusSeeOther)
}

// HistoryPage handles GET /history, every transfer request newest first.
func (s *Server) HistoryPage(w http.ResponseWriter, r *http.Request) {
	s.Templates.Render(w, "history.html", &struct {
		PageData
		Transfers []transferView
	}{
		PageData:  s.pageData(r, "Transfer History"),
		Transfers: s.transferViews(s.Service.TransferRequests()),
	})
}
