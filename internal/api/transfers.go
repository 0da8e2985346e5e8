package api

import (
	"log/slog"
	"net/http"

	"github.com/prajjwalps/laptrack/internal/inventory"
	"github.com/prajjwalps/laptrack/internal/model"
)

// TransfersHandler handles transfer request endpoints.
type TransfersHandler struct {
	Service *inventory.Service
}

type createTransferRequest struct {
	LaptopSerial string `json:"laptop_serial"`
	FromLocation string `json:"from_location"`
	ToLocation   string `json:"to_location"`
}

type resolveTransferRequest struct {
	Status string `json:"status"`
}

// List handles GET /api/transfers. With ?pending_for=<location> it
// returns the receive queue for that location.
func (h *TransfersHandler) List(w http.ResponseWriter, r *http.Request) {
	var transfers []model.TransferRequest
	if loc := r.URL.Query().Get("pending_for"); loc != "" {
		transfers = h.Service.PendingRequestsFor(loc)
	} else {
		transfers = h.Service.TransferRequests()
	}
	if transfers == nil {
		transfers = []model.TransferRequest{}
	}
	jsonResponse(w, http.StatusOK, transfers)
}

// Get handles GET /api/transfers/{id}.
func (h *TransfersHandler) Get(w http.ResponseWriter, r *http.Request) {
	request := h.Service.TransferRequestByID(r.PathValue("id"))
	if request == nil {
		jsonError(w, http.StatusNotFound, "transfer request not found")
		return
	}
	jsonResponse(w, http.StatusOK, request)
}

// Create handles POST /api/transfers.
func (h *TransfersHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTransferRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	claims := GetClaims(r.Context())
	id, err := h.Service.CreateTransferRequest(inventory.TransferInput{
		LaptopSerial: req.LaptopSerial,
		FromLocation: req.FromLocation,
		ToLocation:   req.ToLocation,
		RequestedBy:  claims.Name,
	})
	if err != nil {
		serviceError(w, err)
		return
	}

	slog.Info("transfer requested", "user", claims.Name,
		"serial", req.LaptopSerial, "from", req.FromLocation, "to", req.ToLocation, "request", id)
	jsonResponse(w, http.StatusCreated, h.Service.TransferRequestByID(id))
}

// Resolve handles POST /api/transfers/{id}/resolve.
func (h *TransfersHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	var req resolveTransferRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id := r.PathValue("id")
	claims := GetClaims(r.Context())

	if err := h.Service.ResolveTransferRequest(id, req.Status, claims.Name); err != nil {
		serviceError(w, err)
		return
	}

	slog.Info("transfer resolved", "user", claims.Name, "request", id, "status", req.Status)
	jsonResponse(w, http.StatusOK, h.Service.TransferRequestByID(id))
}
