package models

import "time"

type OrderStatus string
type PaymentStatus string

const (
	// Order statuses
	OrderStatusPending        OrderStatus = "pending"          // Placed, awaiting partner confirmation
	OrderStatusConfirmed      OrderStatus = "confirmed"        // Accepted by the partner
	OrderStatusPreparing      OrderStatus = "preparing"        // Being prepared
	OrderStatusReady          OrderStatus = "ready"            // Ready for pickup or handoff to a driver
	OrderStatusOutForDelivery OrderStatus = "out_for_delivery" // Driver on the way
	OrderStatusPickedUp       OrderStatus = "picked_up"        // Customer or driver picked it up
	OrderStatusDelivered      OrderStatus = "delivered"        // Terminal
	OrderStatusCancelled      OrderStatus = "cancelled"        // Terminal

	// Payment statuses
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

type Order struct {
	ID                   uint           `gorm:"primaryKey" json:"id"`
	OrderRef             string         `gorm:"uniqueIndex;not null" json:"order_ref"`
	UserID               string         `gorm:"index;not null" json:"user_id"`
	BusinessID           uint           `gorm:"index;not null" json:"business_id"`
	BusinessName         string         `json:"business_name"`
	DriverID             *uint          `gorm:"index" json:"driver_id"`
	Items                []OrderItem    `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Status               OrderStatus    `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	Total                int64          `json:"total"`        // GNF
	DeliveryFee          int64          `json:"delivery_fee"` // GNF
	Tax                  int64          `json:"tax"`          // GNF
	GrandTotal           int64          `json:"grand_total"`  // GNF, fixed at creation
	DeliveryAddress      string         `json:"delivery_address"`
	DeliveryInstructions string         `json:"delivery_instructions"`
	DeliveryMethod       DeliveryMethod `gorm:"type:VARCHAR(10)" json:"delivery_method"`
	EstimatedDelivery    time.Time      `json:"estimated_delivery"`
	PaymentMethod        string         `json:"payment_method"` // e.g. "cash", "card", "mobile_money"
	PaymentStatus        PaymentStatus  `gorm:"type:VARCHAR(20);default:'pending'" json:"payment_status"`
	CreatedAt            time.Time      `json:"created_at"`
	UpdatedAt            time.Time      `json:"updated_at"`
}

// OrderItem is an immutable snapshot of a cart item taken at checkout.
type OrderItem struct {
	ID                  uint   `gorm:"primaryKey" json:"id"`
	OrderID             uint   `gorm:"index" json:"order_id"`
	ProductID           uint   `json:"product_id"`
	Name                string `json:"name"`
	UnitPrice           int64  `json:"unit_price"` // GNF
	Quantity            int    `json:"quantity"`
	SpecialInstructions string `json:"special_instructions"`
}

// partnerTransitions and driverTransitions define which status advances each
// actor is allowed to make. Admins may force any move out of a non-terminal
// state. Anything else is rejected with ErrInvalidTransition.
var partnerTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:   {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed: {OrderStatusPreparing},
	OrderStatusPreparing: {OrderStatusReady, OrderStatusCancelled},
}

var driverTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusReady:          {OrderStatusPickedUp, OrderStatusOutForDelivery},
	OrderStatusPickedUp:       {OrderStatusDelivered},
	OrderStatusOutForDelivery: {OrderStatusDelivered},
}

// Terminal reports whether no further transition is allowed from s.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// CanTransition reports whether actor may move an order from one status to
// another. The check is pure; persistence additionally guards the write with
// an expected-prior-status precondition.
func CanTransition(actor Role, from, to OrderStatus) bool {
	if from.Terminal() || from == to {
		return false
	}
	if _, ok := ParseOrderStatus(string(to)); !ok {
		return false
	}
	switch actor {
	case RoleAdmin:
		return true
	case RolePartner:
		return transitionAllowed(partnerTransitions, from, to)
	case RoleDriver:
		return transitionAllowed(driverTransitions, from, to)
	default:
		return false
	}
}

func transitionAllowed(table map[OrderStatus][]OrderStatus, from, to OrderStatus) bool {
	for _, next := range table[from] {
		if next == to {
			return true
		}
	}
	return false
}

func ParseOrderStatus(s string) (OrderStatus, bool) {
	switch OrderStatus(s) {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing, OrderStatusReady,
		OrderStatusOutForDelivery, OrderStatusPickedUp, OrderStatusDelivered, OrderStatusCancelled:
		return OrderStatus(s), true
	default:
		return "", false
	}
}

func ParsePaymentStatus(s string) (PaymentStatus, bool) {
	switch PaymentStatus(s) {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed, PaymentStatusRefunded:
		return PaymentStatus(s), true
	default:
		return "", false
	}
}
