package web

import (
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/prajjwalps/laptrack/internal/auth"
	"github.com/prajjwalps/laptrack/internal/inventory"
	"github.com/prajjwalps/laptrack/internal/model"
	"github.com/prajjwalps/laptrack/internal/scan"
	webembed "github.com/prajjwalps/laptrack/web"
)

// Templates holds parsed HTML templates.
type Templates struct {
	templates map[string]*template.Template
}

// FuncMap returns the template function map.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"roleAllows": model.RoleAllows,
		"roleName": func(role string) string {
			switch role {
			case model.RoleAdmin:
				return "Administrator"
			case model.RoleDistributor:
				return "Distributor"
			case model.RoleStoreOwner:
				return "Store Owner"
			default:
				return role
			}
		},
		"statusName": func(status string) string {
			switch status {
			case model.StatusInWarehouse:
				return "In Warehouse"
			case model.StatusInStore:
				return "In Store"
			case model.StatusInTransit:
				return "In Transit"
			case model.StatusReceived:
				return "Received"
			default:
				return status
			}
		},
		"transferStatusName": func(status string) string {
			switch status {
			case model.TransferPending:
				return "Pending"
			case model.TransferAccepted:
				return "Accepted"
			case model.TransferRejected:
				return "Rejected"
			case model.TransferCompleted:
				return "Completed"
			default:
				return status
			}
		},
	}
}

// LoadTemplates parses all page templates with the layout.
func LoadTemplates() (*Templates, error) {
	tfs := webembed.TemplatesFS()

	// Read layout.
	layoutBytes, err := fs.ReadFile(tfs, "layout.html")
	if err != nil {
		return nil, fmt.Errorf("reading layout template: %w", err)
	}

	pages := []string{
		"login.html",
		"dashboard.html",
		"distributor.html",
		"store.html",
		"inventory.html",
		"inventory_new.html",
		"transfer_new.html",
		"receive.html",
		"history.html",
		"stores.html",
		"notifications.html",
	}

	ts := &Templates{templates: make(map[string]*template.Template)}

	for _, page := range pages {
		pageBytes, err := fs.ReadFile(tfs, page)
		if err != nil {
			return nil, fmt.Errorf("reading template %s: %w", page, err)
		}

		tmpl := template.New(page).Funcs(FuncMap())
		tmpl, err = tmpl.Parse(string(layoutBytes))
		if err != nil {
			return nil, fmt.Errorf("parsing layout for %s: %w", page, err)
		}
		tmpl, err = tmpl.Parse(string(pageBytes))
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", page, err)
		}

		ts.templates[page] = tmpl
	}

	return ts, nil
}

// Render renders a template with the given data.
func (ts *Templates) Render(w http.ResponseWriter, name string, data any) {
	tmpl, ok := ts.templates[name]
	if !ok {
		http.Error(w, "template not found", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, "layout", data); err != nil {
		slog.Error("failed to render template", "template", name, "error", err)
	}
}

// PageData is the base data passed to all templates.
type PageData struct {
	Title   string
	User    *auth.Claims
	Unread  int
	Error   string
	Success string
}

// Server holds all dependencies for page handlers.
type Server struct {
	Service   *inventory.Service
	Scanner   scan.Scanner
	Templates *Templates
	JWTSecret string
}

// pageData builds the base data for an authenticated page, including the
// unread notification badge in the navigation.
func (s *Server) pageData(r *http.Request, title string) PageData {
	unread := false
	return PageData{
		Title:  title,
		User:   GetWebClaims(r.Context()),
		Unread: len(s.Service.Notifications(&unread)),
	}
}
