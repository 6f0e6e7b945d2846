package subscriptionControllers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/koulibalyamadou10/braprime-partner-sub001/models"
)

func TestMayManageSubscription(t *testing.T) {
	sub := models.Subscription{PartnerID: "partner-1", Status: models.SubscriptionStatusActive}

	assert.True(t, mayManageSubscription(sub, "partner-1", false), "owning partner manages their subscription")
	assert.False(t, mayManageSubscription(sub, "partner-2", false), "other partners are locked out")
	assert.True(t, mayManageSubscription(sub, "partner-2", true), "platform actors manage any subscription")
	assert.True(t, mayManageSubscription(sub, "", true), "gateway callback carries no user identity")
}
