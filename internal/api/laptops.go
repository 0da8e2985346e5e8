package api

import (
	"log/slog"
	"net/http"

	"github.com/prajjwalps/laptrack/internal/imaging"
	"github.com/prajjwalps/laptrack/internal/inventory"
)

// LaptopsHandler handles laptop endpoints.
type LaptopsHandler struct {
	Service *inventory.Service
}

type addLaptopRequest struct {
	SerialNumber string `json:"serial_number"`
	ModelNumber  string `json:"model_number"`
}

// List handles GET /api/laptops.
func (h *LaptopsHandler) List(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, h.Service.Laptops())
}

// Get handles GET /api/laptops/{serial}.
func (h *LaptopsHandler) Get(w http.ResponseWriter, r *http.Request) {
	laptop := h.Service.LaptopBySerial(r.PathValue("serial"))
	if laptop == nil {
		jsonError(w, http.StatusNotFound, "laptop not found")
		return
	}
	jsonResponse(w, http.StatusOK, laptop)
}

// Create handles POST /api/laptops.
func (h *LaptopsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req addLaptopRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.Service.AddLaptop(req.SerialNumber, req.ModelNumber); err != nil {
		serviceError(w, err)
		return
	}

	claims := GetClaims(r.Context())
	slog.Info("laptop added", "user", claims.Name, "serial", req.SerialNumber, "model", req.ModelNumber)
	jsonResponse(w, http.StatusCreated, h.Service.LaptopBySerial(req.SerialNumber))
}

// UploadPhoto handles PUT /api/laptops/{serial}/photo.
func (h *LaptopsHandler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	serial := r.PathValue("serial")

	photo, err := imaging.Normalize(r.Body)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.Service.SetLaptopPhoto(serial, photo.Data, photo.MIME); err != nil {
		serviceError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"message": "photo stored"})
}

// GetPhoto handles GET /api/laptops/{serial}/photo.
func (h *LaptopsHandler) GetPhoto(w http.ResponseWriter, r *http.Request) {
	data, mime := h.Service.LaptopPhoto(r.PathValue("serial"))
	if data == nil {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", mime)
	w.Header().Set("X-Content-Type-Options", "nosniff")
	if _, err := w.Write(data); err != nil {
		slog.Error("failed to write photo response", "error", err)
	}
}
