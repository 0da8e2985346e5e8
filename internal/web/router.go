package web

import (
	"net/http"

	"github.com/prajjwalps/laptrack/internal/inventory"
	"github.com/prajjwalps/laptrack/internal/scan"
	webembed "github.com/prajjwalps/laptrack/web"
)

// NewRouter creates the web page router with all page routes registered.
func NewRouter(svc *inventory.Service, scanner scan.Scanner, jwtSecret string) (http.Handler, error) {
	templates, err := LoadTemplates()
	if err != nil {
		return nil, err
	}

	s := &Server{
		Service:   svc,
		Scanner:   scanner,
		Templates: templates,
		JWTSecret: jwtSecret,
	}

	mux := http.NewServeMux()
	cookieAuth := CookieAuthMiddleware(jwtSecret)

	// Static assets.
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(webembed.StaticFS()))))

	// Public routes.
	mux.HandleFunc("GET /login", s.LoginPage)
	mux.HandleFunc("POST /login", s.LoginSubmit)
	mux.HandleFunc("POST /logout", s.Logout)

	// Role landing pages.
	mux.Handle("GET /{$}", cookieAuth(http.HandlerFunc(s.Dashboard)))
	mux.Handle("GET /distributor", cookieAuth(http.HandlerFunc(s.Distributor)))
	mux.Handle("GET /store", cookieAuth(http.HandlerFunc(s.StoreDashboard)))

	// Fleet.
	mux.Handle("GET /inventory", cookieAuth(http.HandlerFunc(s.InventoryPage)))
	mux.Handle("GET /inventory/new", cookieAuth(http.HandlerFunc(s.InventoryNewPage)))
	mux.Handle("POST /inventory/new", cookieAuth(http.HandlerFunc(s.InventoryCreateSubmit)))
	mux.Handle("POST /inventory/new/scan", cookieAuth(http.HandlerFunc(s.InventoryScanSubmit)))
	mux.Handle("GET /inventory/{serial}/photo", cookieAuth(http.HandlerFunc(s.LaptopPhotoGet)))

	// Transfer lifecycle.
	mux.Handle("GET /transfers/new", cookieAuth(http.HandlerFunc(s.TransferNewPage)))
	mux.Handle("POST /transfers/new", cookieAuth(http.HandlerFunc(s.TransferCreateSubmit)))
	mux.Handle("GET /receive", cookieAuth(http.HandlerFunc(s.ReceivePage)))
	mux.Handle("POST /receive/{id}", cookieAuth(http.HandlerFunc(s.ReceiveResolveSubmit)))
	mux.Handle("GET /history", cookieAuth(http.HandlerFunc(s.HistoryPage)))

	// Network and notifications.
	mux.Handle("GET /stores", cookieAuth(http.HandlerFunc(s.StoresPage)))
	mux.Handle("GET /notifications", cookieAuth(http.HandlerFunc(s.NotificationsPage)))
	mux.Handle("POST /notifications/{id}/read", cookieAuth(http.HandlerFunc(s.NotificationReadSubmit)))

	return mux, nil
}
