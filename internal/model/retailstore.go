package model

// Store represents a retail store that can receive laptops.
type Store struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Manager string `json:"manager"`
}
