package auth

import "github.com/koulibalyamadou10/braprime-partner-sub001/models"

// Capabilities is the fixed permission descriptor resolved once per request
// from the token's role claim. Handlers check these flags instead of
// re-branching on the role at every call site.
type Capabilities struct {
	PlaceOrders      bool // cart and checkout
	ManageStorefront bool // businesses, products, partner order advancement
	DeliverOrders    bool // driver order advancement, driver profile
	ManagePlatform   bool // approvals, dashboards, force transitions, exports
}

func CapabilitiesFor(role models.Role) Capabilities {
	switch role {
	case models.RoleCustomer:
		return Capabilities{PlaceOrders: true}
	case models.RolePartner:
		return Capabilities{ManageStorefront: true}
	case models.RoleDriver:
		return Capabilities{DeliverOrders: true}
	case models.RoleAdmin:
		return Capabilities{PlaceOrders: true, ManageStorefront: true, DeliverOrders: true, ManagePlatform: true}
	default:
		return Capabilities{}
	}
}
