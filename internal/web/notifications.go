package web

import (
	"net/http"

	"github.com/prajjwalps/laptrack/internal/model"
)

// NotificationsPage handles GET /notifications.
func (s *Server) NotificationsPage(w http.ResponseWriter, r *http.Request) {
	s.Templates.Render(w, "notifications.html", &struct {
		PageData
		Notifications []model.Notification
	}{
		PageData:      s.pageData(r, "Notifications"),
		Notifications: s.Service.Notifications(nil),
	})
}

// NotificationReadSubmit handles POST /notifications/{id}/read.
func (s *Server) NotificationReadSubmit(w http.ResponseWriter, r *http.Request) {
	s.Service.MarkNotificationRead(r.PathValue("id"))
	http.Redirect(w, r, "/notifications", http.StatusSeeOther)
}
