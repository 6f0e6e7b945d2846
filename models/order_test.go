package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var allStatuses = []OrderStatus{
	OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing, OrderStatusReady,
	OrderStatusOutForDelivery, OrderStatusPickedUp, OrderStatusDelivered, OrderStatusCancelled,
}

func TestPartnerTransitions(t *testing.T) {
	allowed := map[[2]OrderStatus]bool{
		{OrderStatusPending, OrderStatusConfirmed}:   true,
		{OrderStatusPending, OrderStatusCancelled}:   true,
		{OrderStatusConfirmed, OrderStatusPreparing}: true,
		{OrderStatusPreparing, OrderStatusReady}:     true,
		{OrderStatusPreparing, OrderStatusCancelled}: true,
	}

	for _, from := range allStatuses {
		for _, to := range allStatuses {
			got := CanTransition(RolePartner, from, to)
			want := allowed[[2]OrderStatus{from, to}]
			assert.Equal(t, want, got, "partner %s -> %s", from, to)
		}
	}
}

func TestDriverTransitions(t *testing.T) {
	allowed := map[[2]OrderStatus]bool{
		{OrderStatusReady, OrderStatusPickedUp}:           true,
		{OrderStatusReady, OrderStatusOutForDelivery}:     true,
		{OrderStatusPickedUp, OrderStatusDelivered}:       true,
		{OrderStatusOutForDelivery, OrderStatusDelivered}: true,
	}

	for _, from := range allStatuses {
		for _, to := range allStatuses {
			got := CanTransition(RoleDriver, from, to)
			want := allowed[[2]OrderStatus{from, to}]
			assert.Equal(t, want, got, "driver %s -> %s", from, to)
		}
	}
}

func TestAdminMayForceAnyNonTerminalTransition(t *testing.T) {
	for _, from := range allStatuses {
		for _, to := range allStatuses {
			got := CanTransition(RoleAdmin, from, to)
			want := !from.Terminal() && from != to
			assert.Equal(t, want, got, "admin %s -> %s", from, to)
		}
	}
}

func TestCustomerCannotTransition(t *testing.T) {
	for _, from := range allStatuses {
		for _, to := range allStatuses {
			assert.False(t, CanTransition(RoleCustomer, from, to), "customer %s -> %s", from, to)
		}
	}
}

func TestPartnerCannotSkipToDelivered(t *testing.T) {
	// A pending order cannot be marked delivered by the partner.
	assert.False(t, CanTransition(RolePartner, OrderStatusPending, OrderStatusDelivered))
}

func TestTerminalStatesAreFinal(t *testing.T) {
	for _, actor := range []Role{RolePartner, RoleDriver, RoleAdmin} {
		for _, from := range []OrderStatus{OrderStatusDelivered, OrderStatusCancelled} {
			for _, to := range allStatuses {
				assert.False(t, CanTransition(actor, from, to), "%s %s -> %s", actor, from, to)
			}
		}
	}
}

func TestTransitionRejectsUnknownTarget(t *testing.T) {
	assert.False(t, CanTransition(RoleAdmin, OrderStatusPending, OrderStatus("shipped")))
}

func TestParseOrderStatus(t *testing.T) {
	s, ok := ParseOrderStatus("out_for_delivery")
	assert.True(t, ok)
	assert.Equal(t, OrderStatusOutForDelivery, s)

	_, ok = ParseOrderStatus("refunded")
	assert.False(t, ok)
}
