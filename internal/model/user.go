package model

// User represents a roster user. The roster is fixed at startup; there
// is no registration and no credential concept.
type User struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	StoreID string `json:"store_id,omitempty"`
}

// Roles.
const (
	RoleAdmin       = "admin"
	RoleDistributor = "distributor"
	RoleStoreOwner  = "store-owner"
)

// Operations gated by role. Role checks are advisory (client-equivalent
// convenience, not security); they live in this one table so surfaces
// never re-derive them.
const (
	OpCreateTransfer  = "create_transfer"
	OpResolveTransfer = "resolve_transfer"
	OpAddLaptop       = "add_laptop"
	OpViewStores      = "view_stores"
	OpViewWarehouse   = "view_warehouse"
)

var capabilities = map[string]map[string]bool{
	RoleAdmin: {
		OpCreateTransfer:  true,
		OpResolveTransfer: true,
		OpAddLaptop:       true,
		OpViewStores:      true,
		OpViewWarehouse:   true,
	},
	RoleDistributor: {
		OpCreateTransfer: true,
		OpAddLaptop:      true,
		OpViewWarehouse:  true,
	},
	RoleStoreOwner: {
		OpCreateTransfer:  true,
		OpResolveTransfer: true,
	},
}

// RoleAllows reports whether a role may perform an operation.
// Unknown roles and operations fail closed.
func RoleAllows(role, op string) bool {
	return capabilities[role][op]
}

// LandingRoute maps a role to its post-login page. An empty or unknown
// role lands on the login page.
func LandingRoute(role string) string {
	switch role {
	case RoleAdmin:
		return "/"
	case RoleDistributor:
		return "/distributor"
	case RoleStoreOwner:
		return "/store"
	default:
		return "/login"
	}
}
