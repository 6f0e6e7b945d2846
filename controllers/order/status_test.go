package orderControllers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/koulibalyamadou10/braprime-partner-sub001/models"
)

func TestDriverMayHandle(t *testing.T) {
	driverID := uint(4)
	otherID := uint(9)

	unassigned := models.Order{Status: models.OrderStatusReady}
	assert.True(t, driverMayHandle(unassigned, driverID), "unassigned orders are open to claim")

	mine := models.Order{Status: models.OrderStatusPickedUp, DriverID: &driverID}
	assert.True(t, driverMayHandle(mine, driverID))

	theirs := models.Order{Status: models.OrderStatusPickedUp, DriverID: &otherID}
	assert.False(t, driverMayHandle(theirs, driverID), "assigned orders are locked to their driver")
}
