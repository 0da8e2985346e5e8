package inventory

import "errors"

// Sentinel errors for every recoverable failure the service reports.
// All are local conditions surfaced to the initiating caller; none are
// fatal. Callers branch with errors.Is.
var (
	ErrLaptopNotFound         = errors.New("laptop not found")
	ErrRequestNotFound        = errors.New("transfer request not found")
	ErrDuplicateSerial        = errors.New("serial number already in inventory")
	ErrInvalidInput           = errors.New("invalid input")
	ErrLaptopInTransit        = errors.New("laptop already in transit")
	ErrLocationMismatch       = errors.New("source does not match laptop location")
	ErrInvalidStateTransition = errors.New("transfer request already resolved")
	ErrUnknownUser            = errors.New("unknown user")
)
