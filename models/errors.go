package models

import "errors"

// Domain errors surfaced by cart, checkout, order and subscription operations.
// Controllers map these to HTTP responses; raw DB errors never leave the
// controller layer.
var (
	// ErrCrossMerchantCart is returned when an add-to-cart targets a business
	// different from the one the non-empty cart already belongs to.
	ErrCrossMerchantCart = errors.New("cart already contains items from another business")

	// ErrEmptyCart is returned when checkout is attempted on a cart with no items.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrInvalidTransition is returned when a status change is not allowed from
	// the current state for the requesting actor. State is left unchanged.
	ErrInvalidTransition = errors.New("invalid order status transition")

	// ErrStatusConflict is returned when the expected-prior-status precondition
	// on a transition write matches zero rows: another actor got there first.
	ErrStatusConflict = errors.New("order status changed by another actor")

	// ErrInvalidSchedule is returned when a scheduled delivery slot is malformed
	// or not strictly in the future.
	ErrInvalidSchedule = errors.New("scheduled delivery must be in the future")

	// ErrNotOwner is returned when an actor operates on an order, business or
	// subscription that belongs to another account.
	ErrNotOwner = errors.New("resource belongs to another account")

	// ErrActiveSubscriptionExists is returned when a partner with an active
	// subscription creates a new one without confirming the replacement.
	ErrActiveSubscriptionExists = errors.New("partner already has an active subscription")

	// ErrSubscriptionNotPending is returned when activation targets a
	// subscription that is not pending.
	ErrSubscriptionNotPending = errors.New("subscription is not pending")

	// ErrSubscriptionNotActive is returned when deactivation targets a
	// subscription that is not active. Deactivation is irreversible.
	ErrSubscriptionNotActive = errors.New("subscription is not active")

	// ErrDetailsMismatch is returned when product details carry a variant that
	// does not match the owning business type.
	ErrDetailsMismatch = errors.New("product details do not match business type")
)
