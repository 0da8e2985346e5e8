package api

import (
	"net/http"

	"github.com/prajjwalps/laptrack/internal/inventory"
)

// StoresHandler handles store endpoints. Stores are immutable after
// seeding, so the surface is read-only.
type StoresHandler struct {
	Service *inventory.Service
}

// List handles GET /api/stores.
func (h *StoresHandler) List(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, h.Service.Stores())
}

// Get handles GET /api/stores/{id}.
func (h *StoresHandler) Get(w http.ResponseWriter, r *http.Request) {
	store := h.Service.StoreByID(r.PathValue("id"))
	if store == nil {
		jsonError(w, http.StatusNotFound, "store not found")
		return
	}
	jsonResponse(w, http.StatusOK, store)
}
