package orderControllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validDeliveryRequest() CheckoutRequest {
	return CheckoutRequest{
		FirstName:       "Amadou",
		LastName:        "Diallo",
		Phone:           "+224620000000",
		DeliveryAddress: "Quartier Kipé",
		City:            "Conakry",
		PostalCode:      "001",
		DeliveryMethod:  "delivery",
		TimingMode:      TimingImmediate,
		PaymentMethod:   "cash",
	}
}

func TestValidateCheckoutAcceptsCompleteDelivery(t *testing.T) {
	assert.Empty(t, ValidateCheckout(validDeliveryRequest()))
}

func TestValidateCheckoutRequiresContactFields(t *testing.T) {
	req := validDeliveryRequest()
	req.FirstName = " "
	req.Phone = ""
	req.PaymentMethod = ""

	fields := ValidateCheckout(req)

	assert.Contains(t, fields, "first_name")
	assert.Contains(t, fields, "phone")
	assert.Contains(t, fields, "payment_method")
	assert.NotContains(t, fields, "last_name")
}

func TestValidateCheckoutDeliveryNeedsAddress(t *testing.T) {
	req := validDeliveryRequest()
	req.DeliveryAddress = ""
	req.City = ""
	req.PostalCode = ""

	fields := ValidateCheckout(req)

	assert.Contains(t, fields, "delivery_address")
	assert.Contains(t, fields, "city")
	assert.Contains(t, fields, "postal_code")
}

func TestValidateCheckoutPickupSkipsAddress(t *testing.T) {
	req := validDeliveryRequest()
	req.DeliveryMethod = "pickup"
	req.DeliveryAddress = ""
	req.City = ""
	req.PostalCode = ""

	assert.Empty(t, ValidateCheckout(req))
}

func TestValidateCheckoutRejectsUnknownMethodAndTiming(t *testing.T) {
	req := validDeliveryRequest()
	req.DeliveryMethod = "drone"
	req.TimingMode = "whenever"

	fields := ValidateCheckout(req)

	assert.Contains(t, fields, "delivery_method")
	assert.Contains(t, fields, "timing_mode")
}
