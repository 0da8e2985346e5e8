package model

// Laptop represents a single tracked unit, keyed by serial number.
type Laptop struct {
	SerialNumber    string `json:"serial_number"`
	ModelNumber     string `json:"model_number"`
	Status          string `json:"status"`
	CurrentLocation string `json:"current_location"`
	LastTransferID  string `json:"last_transfer_id,omitempty"`
	PhotoMime       string `json:"photo_mime,omitempty"`
}

// Laptop statuses.
const (
	StatusInWarehouse = "in_warehouse"
	StatusInStore     = "in_store"
	StatusInTransit   = "in_transit"
	StatusReceived    = "received"
)

// The warehouse is a distinguished location that is not a store.
const (
	WarehouseID   = "MAIN_WAREHOUSE"
	WarehouseName = "Main Warehouse"
)

// UnknownLocationName is returned when a location id resolves to nothing.
const UnknownLocationName = "Unknown Location"
