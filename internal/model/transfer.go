package model

import "time"

// TransferRequest represents a laptop movement between locations.
// Requests are created Pending and transition exactly once to a
// terminal status.
type TransferRequest struct {
	ID           string `json:"id"`
	LaptopSerial string `json:"laptop_serial"`

	// Denormalized for display so history survives later laptop edits.
	SerialNumber string `json:"serial_number"`
	ModelNumber  string `json:"model_number"`

	FromLocation string     `json:"from_location"`
	ToLocation   string     `json:"to_location"`
	RequestedAt  time.Time  `json:"requested_at"`
	ResolvedAt   *time.Time `json:"resolved_at,omitempty"`
	Status       string     `json:"status"`
	RequestedBy  string     `json:"requested_by"`
	ApprovedBy   string     `json:"approved_by,omitempty"`
}

// Transfer request statuses.
const (
	TransferPending   = "pending"
	TransferAccepted  = "accepted"
	TransferRejected  = "rejected"
	TransferCompleted = "completed"
)

// TerminalTransferStatus reports whether status is a valid resolution
// target (anything but pending).
func TerminalTransferStatus(status string) bool {
	switch status {
	case TransferAccepted, TransferRejected, TransferCompleted:
		return true
	}
	return false
}
