package api

import (
	"net/http"
	"strconv"

	"github.com/prajjwalps/laptrack/internal/inventory"
	"github.com/prajjwalps/laptrack/internal/model"
)

// NotificationsHandler handles notification endpoints.
type NotificationsHandler struct {
	Service *inventory.Service
}

// List handles GET /api/notifications. The optional read query
// parameter filters by read flag.
func (h *NotificationsHandler) List(w http.ResponseWriter, r *http.Request) {
	var filter *bool
	if v := r.URL.Query().Get("read"); v != "" {
		read, err := strconv.ParseBool(v)
		if err != nil {
			jsonError(w, http.StatusBadRequest, "invalid read filter")
			return
		}
		filter = &read
	}

	notifications := h.Service.Notifications(filter)
	if notifications == nil {
		notifications = []model.Notification{}
	}
	jsonResponse(w, http.StatusOK, notifications)
}

// MarkRead handles POST /api/notifications/{id}/read. Marking is
// idempotent; unknown ids succeed without effect.
func (h *NotificationsHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	h.Service.MarkNotificationRead(r.PathValue("id"))
	jsonResponse(w, http.StatusOK, map[string]string{"message": "marked read"})
}
