package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/koulibalyamadou10/braprime-partner-sub001/models"
)

func TestCapabilitiesPerRole(t *testing.T) {
	assert.Equal(t, Capabilities{PlaceOrders: true}, CapabilitiesFor(models.RoleCustomer))
	assert.Equal(t, Capabilities{ManageStorefront: true}, CapabilitiesFor(models.RolePartner))
	assert.Equal(t, Capabilities{DeliverOrders: true}, CapabilitiesFor(models.RoleDriver))

	admin := CapabilitiesFor(models.RoleAdmin)
	assert.True(t, admin.ManagePlatform)
	assert.True(t, admin.PlaceOrders)
	assert.True(t, admin.ManageStorefront)
	assert.True(t, admin.DeliverOrders)
}

func TestUnknownRoleHasNoCapabilities(t *testing.T) {
	assert.Equal(t, Capabilities{}, CapabilitiesFor(models.Role("ghost")))
}
