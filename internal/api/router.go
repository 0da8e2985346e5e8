package api

import (
	"net/http"

	"github.com/prajjwalps/laptrack/internal/inventory"
	"github.com/prajjwalps/laptrack/internal/model"
	"github.com/prajjwalps/laptrack/internal/scan"
)

// NewRouter creates the API router with all endpoints registered.
func NewRouter(svc *inventory.Service, scanner scan.Scanner, jwtSecret string) http.Handler {
	mux := http.NewServeMux()

	authHandler := &AuthHandler{Service: svc, JWTSecret: jwtSecret}
	laptopsHandler := &LaptopsHandler{Service: svc}
	storesHandler := &StoresHandler{Service: svc}
	transfersHandler := &TransfersHandler{Service: svc}
	notificationsHandler := &NotificationsHandler{Service: svc}
	scanHandler := &ScanHandler{Scanner: scanner}

	authMW := AuthMiddleware(jwtSecret)
	canAddLaptop := RequireCapability(model.OpAddLaptop)
	canCreateTransfer := RequireCapability(model.OpCreateTransfer)
	canResolveTransfer := RequireCapability(model.OpResolveTransfer)

	// Public: the roster and login.
	mux.HandleFunc("GET /api/auth/users", authHandler.Users)
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)

	// Authenticated routes.
	mux.Handle("POST /api/auth/logout", authMW(http.HandlerFunc(authHandler.Logout)))
	mux.Handle("GET /api/auth/me", authMW(http.HandlerFunc(authHandler.Me)))

	// Laptops: read (all roles), intake (distributor/admin).
	mux.Handle("GET /api/laptops", authMW(http.HandlerFunc(laptopsHandler.List)))
	mux.Handle("POST /api/laptops", authMW(canAddLaptop(http.HandlerFunc(laptopsHandler.Create))))
	mux.Handle("GET /api/laptops/{serial}", authMW(http.HandlerFunc(laptopsHandler.Get)))
	mux.Handle("PUT /api/laptops/{serial}/photo", authMW(canAddLaptop(http.HandlerFunc(laptopsHandler.UploadPhoto))))
	mux.Handle("GET /api/laptops/{serial}/photo", authMW(http.HandlerFunc(laptopsHandler.GetPhoto)))

	// Stores (read-only).
	mux.Handle("GET /api/stores", authMW(http.HandlerFunc(storesHandler.List)))
	mux.Handle("GET /api/stores/{id}", authMW(http.HandlerFunc(storesHandler.Get)))

	// Transfer lifecycle.
	mux.Handle("GET /api/transfers", authMW(http.HandlerFunc(transfersHandler.List)))
	mux.Handle("POST /api/transfers", authMW(canCreateTransfer(http.HandlerFunc(transfersHandler.Create))))
	mux.Handle("GET /api/transfers/{id}", authMW(http.HandlerFunc(transfersHandler.Get)))
	mux.Handle("POST /api/transfers/{id}/resolve", authMW(canResolveTransfer(http.HandlerFunc(transfersHandler.Resolve))))

	// Notifications.
	mux.Handle("GET /api/notifications", authMW(http.HandlerFunc(notificationsHandler.List)))
	mux.Handle("POST /api/notifications/{id}/read", authMW(http.HandlerFunc(notificationsHandler.MarkRead)))

	// Scan simulation.
	mux.Handle("POST /api/scan", authMW(http.HandlerFunc(scanHandler.Simulate)))

	return mux
}
