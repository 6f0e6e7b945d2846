package orderControllers

import (
	"github.com/shopspring/decimal"

	"github.com/koulibalyamadou10/braprime-partner-sub001/models"
)

// Flat platform delivery fee and VAT rate. Amounts are integer GNF.
const DeliveryFee int64 = 2000

var taxRate = decimal.NewFromFloat(0.15)

// Quote is the price breakdown computed once at checkout and frozen onto the
// order.
type Quote struct {
	Subtotal    int64 `json:"subtotal"`
	DeliveryFee int64 `json:"delivery_fee"`
	Tax         int64 `json:"tax"`
	GrandTotal  int64 `json:"grand_total"`
}

// PriceCart derives the full quote from the cart items and delivery method.
// Pure: same inputs always yield the same quote.
func PriceCart(items []models.CartItem, method models.DeliveryMethod) Quote {
	subtotal := Subtotal(items)
	fee := int64(0)
	if method == models.DeliveryMethodDelivery {
		fee = DeliveryFee
	}
	tax := Tax(subtotal)
	return Quote{
		Subtotal:    subtotal,
		DeliveryFee: fee,
		Tax:         tax,
		GrandTotal:  subtotal + fee + tax,
	}
}

func Subtotal(items []models.CartItem) int64 {
	var sum int64
	for _, item := range items {
		sum += item.UnitPrice * int64(item.Quantity)
	}
	return sum
}

// Tax is 15% of the subtotal, rounded half-up to the nearest GNF.
func Tax(subtotal int64) int64 {
	return decimal.NewFromInt(subtotal).Mul(taxRate).Round(0).IntPart()
}
