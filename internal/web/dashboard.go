package web

import (
	"net/http"

	"github.com/prajjwalps/laptrack/internal/model"
)

// Dashboard handles GET /, the admin overview.
func (s *Server) Dashboard(w http.ResponseWriter, r *http.Request) {
	if !s.redirectUnless(w, r, model.RoleAdmin) {
		return
	}

	laptops := s.Service.Laptops()
	counts := map[string]int{}
	for _, l := range laptops {
		counts[l.Status]++
	}

	transfers := s.Service.TransferRequests()
	// Limit recent transfers to 10.
	if len(transfers) > 10 {
		transfers = transfers[:10]
	}

	s.Templates.Render(w, "dashboard.html", &struct {
		PageData
		TotalLaptops    int
		InWarehouse     int
		InTransit       int
		InStores        int
		StoreCount      int
		RecentTransfers []transferView
	}{
		PageData:        s.pageData(r, "Dashboard"),
		TotalLaptops:    len(laptops),
		InWarehouse:     counts[model.StatusInWarehouse],
		InTransit:       counts[model.StatusInTransit],
		InStores:        counts[model.StatusInStore] + counts[model.StatusReceived],
		StoreCount:      len(s.Service.Stores()),
		RecentTransfers: s.transferViews(transfers),
	})
}

// Distributor handles GET /distributor, the distributor's working view:
// warehouse stock plus the transfers still in flight.
func (s *Server) Distributor(w http.ResponseWriter, r *http.Request) {
	if !s.redirectUnless(w, r, model.RoleDistributor, model.RoleAdmin) {
		return
	}

	var warehouse []model.Laptop
	for _, l := range s.Service.Laptops() {
		if l.CurrentLocation == model.WarehouseID {
			warehouse = append(warehouse, l)
		}
	}

	var pending []model.TransferRequest
	for _, t := range s.Service.TransferRequests() {
		if t.Status == model.TransferPending {
			pending = append(pending, t)
		}
	}

	s.Templates.Render(w, "distributor.html", &struct {
		PageData
		Warehouse []laptopView
		Pending   []transferView
	}{
		PageData:  s.pageData(r, "Distribution"),
		Warehouse: s.laptopViews(warehouse),
		Pending:   s.transferViews(pending),
	})
}

// StoreDashboard handles GET /store, the store owner's view: the store's
// laptops and its receive queue.
func (s *Server) StoreDashboard(w http.ResponseWriter, r *http.Request) {
	if !s.redirectUnless(w, r, model.RoleStoreOwner) {
		return
	}
	claims := GetWebClaims(r.Context())

	store := s.Service.StoreByID(claims.StoreID)
	if store == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	var stock []model.Laptop
	for _, l := range s.Service.Laptops() {
		if l.CurrentLocation == store.ID && l.Status != model.StatusInTransit {
			stock = append(stock, l)
		}
	}

	s.Templates.Render(w, "store.html", &struct {
		PageData
		Store    *model.Store
		Stock    []laptopView
		Incoming []transferView
	}{
		PageData: s.pageData(r, store.Name),
		Store:    store,
		Stock:    s.laptopViews(stock),
		Incoming: s.transferViews(s.Service.PendingRequestsFor(store.ID)),
	})
}
