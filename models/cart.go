package models

import "time"

type DeliveryMethod string

const (
	DeliveryMethodDelivery DeliveryMethod = "delivery"
	DeliveryMethodPickup   DeliveryMethod = "pickup"
)

// Cart holds one customer's order-in-progress. All items belong to a single
// business; BusinessID is zero while the cart is empty.
type Cart struct {
	CartID               uint           `gorm:"primaryKey" json:"cart_id"`
	CustomerID           string         `gorm:"uniqueIndex" json:"customer_id"` // one cart per customer
	BusinessID           uint           `json:"business_id"`
	Items                []CartItem     `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	DeliveryAddress      string         `json:"delivery_address"`
	DeliveryInstructions string         `json:"delivery_instructions"`
	DeliveryMethod       DeliveryMethod `gorm:"type:VARCHAR(10);default:'delivery'" json:"delivery_method"`
	CreatedAt            time.Time      `json:"created_at"`
	UpdatedAt            time.Time      `json:"updated_at"`
}

type CartItem struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	CartID              uint      `gorm:"index" json:"cart_id"`
	ProductID           uint      `json:"product_id"`
	Name                string    `json:"name"`
	UnitPrice           int64     `json:"unit_price"` // GNF, snapshot at add time
	Quantity            int       `json:"quantity"`
	SpecialInstructions string    `json:"special_instructions"`
	AddedAt             time.Time `json:"added_at"`
}

func ValidDeliveryMethod(m string) (DeliveryMethod, bool) {
	switch DeliveryMethod(m) {
	case DeliveryMethodDelivery, DeliveryMethodPickup:
		return DeliveryMethod(m), true
	default:
		return "", false
	}
}
