package orderControllers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/koulibalyamadou10/braprime-partner-sub001/models"
)

func TestPriceCartDelivery(t *testing.T) {
	items := []models.CartItem{{UnitPrice: 5000, Quantity: 2}}

	quote := PriceCart(items, models.DeliveryMethodDelivery)

	assert.Equal(t, int64(10000), quote.Subtotal)
	assert.Equal(t, int64(2000), quote.DeliveryFee)
	assert.Equal(t, int64(1500), quote.Tax)
	assert.Equal(t, int64(13500), quote.GrandTotal)
}

func TestPriceCartPickup(t *testing.T) {
	items := []models.CartItem{{UnitPrice: 3000, Quantity: 1}}

	quote := PriceCart(items, models.DeliveryMethodPickup)

	assert.Equal(t, int64(3000), quote.Subtotal)
	assert.Equal(t, int64(0), quote.DeliveryFee)
	assert.Equal(t, int64(450), quote.Tax)
	assert.Equal(t, int64(3450), quote.GrandTotal)
}

func TestPriceCartEmpty(t *testing.T) {
	quote := PriceCart(nil, models.DeliveryMethodPickup)

	assert.Equal(t, Quote{}, quote)
}

func TestGrandTotalIsSumOfParts(t *testing.T) {
	carts := [][]models.CartItem{
		{{UnitPrice: 1, Quantity: 1}},
		{{UnitPrice: 3, Quantity: 1}}, // tax 0.45 rounds down
		{{UnitPrice: 10, Quantity: 1}},
		{{UnitPrice: 7500, Quantity: 3}, {UnitPrice: 333, Quantity: 7}},
		{{UnitPrice: 999999, Quantity: 9}, {UnitPrice: 1, Quantity: 1}},
	}

	for _, items := range carts {
		for _, method := range []models.DeliveryMethod{models.DeliveryMethodDelivery, models.DeliveryMethodPickup} {
			quote := PriceCart(items, method)
			assert.Equal(t, quote.Subtotal+quote.DeliveryFee+quote.Tax, quote.GrandTotal)
			assert.Equal(t, Subtotal(items), quote.Subtotal)
			assert.Equal(t, Tax(quote.Subtotal), quote.Tax)
		}
	}
}

func TestTaxRoundsHalfUp(t *testing.T) {
	// 15% of 10 = 1.5 → 2
	assert.Equal(t, int64(2), Tax(10))
	// 15% of 3 = 0.45 → 0
	assert.Equal(t, int64(0), Tax(3))
	// 15% of 30 = 4.5 → 5
	assert.Equal(t, int64(5), Tax(30))
	// 15% of 100 = 15 exactly
	assert.Equal(t, int64(15), Tax(100))
}

func TestPriceCartIsIdempotent(t *testing.T) {
	items := []models.CartItem{
		{UnitPrice: 12500, Quantity: 2, Name: "Poulet yassa"},
		{UnitPrice: 3000, Quantity: 4, Name: "Jus de gingembre"},
	}

	first := PriceCart(items, models.DeliveryMethodDelivery)
	second := PriceCart(items, models.DeliveryMethodDelivery)

	assert.Equal(t, first, second)
}
