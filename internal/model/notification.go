package model

import "time"

// Notification is a human-readable event record, usually tied to a
// transfer request. Notifications are append-only; only the read flag
// changes after creation.
type Notification struct {
	ID                string    `json:"id"`
	Message           string    `json:"message"`
	CreatedAt         time.Time `json:"created_at"`
	Read              bool      `json:"read"`
	Severity          string    `json:"severity"`
	RelatedTransferID string    `json:"related_transfer_id,omitempty"`
}

// Notification severities.
const (
	SeverityInfo    = "info"
	SeveritySuccess = "success"
	SeverityWarning = "warning"
	SeverityError   = "error"
)
