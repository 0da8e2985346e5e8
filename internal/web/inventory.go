package web

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/prajjwalps/laptrack/internal/imaging"
	"github.com/prajjwalps/laptrack/internal/inventory"
	"github.com/prajjwalps/laptrack/internal/model"
)

// inventoryFormData carries the registration form state across scan
// prefills and validation errors.
type inventoryFormData struct {
	PageData
	SerialNumber string
	ModelNumber  string
}

// InventoryPage handles GET /inventory, the full fleet listing.
func (s *Server) InventoryPage(w http.ResponseWriter, r *http.Request) {
	if !s.redirectUnless(w, r, model.RoleAdmin, model.RoleDistributor) {
		return
	}

	s.Templates.Render(w, "inventory.html", &struct {
		PageData
		Laptops []laptopView
	}{
		PageData: s.pageData(r, "Inventory"),
		Laptops:  s.laptopViews(s.Service.Laptops()),
	})
}

// InventoryNewPage handles GET /inventory/new.
func (s *Server) InventoryNewPage(w http.ResponseWriter, r *http.Request) {
	if !s.redirectUnless(w, r, model.RoleAdmin, model.RoleDistributor) {
		return
	}

	s.Templates.Render(w, "inventory_new.html", &inventoryFormData{
		PageData: s.pageData(r, "Register Laptop"),
	})
}

// InventoryScanSubmit handles POST /inventory/new/scan. It runs the scan
// source and re-renders the registration form with the result filled in.
func (s *Server) InventoryScanSubmit(w http.ResponseWriter, r *http.Request) {
	if !s.redirectUnless(w, r, model.RoleAdmin, model.RoleDistributor) {
		return
	}

	result, err := s.Scanner.Scan(r.Context())
	if err != nil {
		s.Templates.Render(w, "inventory_new.html", &inventoryFormData{
			PageData: s.pageData(r, "Register Laptop"),
		})
		return
	}

	data := &inventoryFormData{
		PageData:     s.pageData(r, "Register Laptop"),
		SerialNumber: result.SerialNumber,
		ModelNumber:  result.ModelNumber,
	}
	data.Success = "Scan complete, check the details below."
	s.Templates.Render(w, "inventory_new.html", data)
}

// InventoryCreateSubmit handles POST /inventory/new. The form may carry
// an optional intake photo alongside the serial and model numbers.
func (s *Server) InventoryCreateSubmit(w http.ResponseWriter, r *http.Request) {
	if !s.redirectUnless(w, r, model.RoleAdmin, model.RoleDistributor) {
		return
	}
	claims := GetWebClaims(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, imaging.MaxUploadBytes)
	if err := r.ParseMultipartForm(imaging.MaxUploadBytes); err != nil {
		http.Error(w, "form too large", http.StatusBadRequest)
		return
	}

	serial := r.FormValue("serial_number")
	modelNumber := r.FormValue("model_number")

	if err := s.Service.AddLaptop(serial, modelNumber); err != nil {
		message := "Registration failed, check the details."
		if errors.Is(err, inventory.ErrDuplicateSerial) {
			message = "A laptop with that serial number already exists."
		}
		data := &inventoryFormData{
			PageData:     s.pageData(r, "Register Laptop"),
			SerialNumber: serial,
			ModelNumber:  modelNumber,
		}
		data.Error = message
		s.Templates.Render(w, "inventory_new.html", data)
		return
	}

	if file, _, err := r.FormFile("photo"); err == nil {
		defer file.Close()
		photo, err := imaging.Normalize(file)
		if err != nil {
			slog.Warn("intake photo rejected", "serial", serial, "error", err)
		} else if err := s.Service.SetLaptopPhoto(serial, photo.Data, photo.MIME); err != nil {
			slog.Error("failed to store intake photo", "serial", serial, "error", err)
		}
	}

	slog.Info("laptop registered", "user", claims.Name, "serial", serial, "model", modelNumber)
	http.Redirect(w, r, "/inventory", http.StatusSeeOther)
}

// LaptopPhotoGet handles GET /inventory/{serial}/photo.
func (s *Server) LaptopPhotoGet(w http.ResponseWriter, r *http.Request) {
	data, mime := s.Service.LaptopPhoto(r.PathValue("serial"))
	if data == nil {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", mime)
	w.Header().Set("Content-Disposition", "inline")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	if _, err := w.Write(data); err != nil {
		slog.Error("failed to write photo response", "error", err)
	}
}
