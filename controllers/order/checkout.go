package orderControllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/koulibalyamadou10/braprime-partner-sub001/models"
)

type CheckoutRequest struct {
	FirstName            string `json:"first_name"`
	LastName             string `json:"last_name"`
	Phone                string `json:"phone"`
	DeliveryAddress      string `json:"delivery_address"`
	City                 string `json:"city"`
	PostalCode           string `json:"postal_code"`
	DeliveryInstructions string `json:"delivery_instructions"`
	DeliveryMethod       string `json:"delivery_method"`
	TimingMode           string `json:"timing_mode"` // immediate | scheduled
	ScheduledDate        string `json:"scheduled_date,omitempty"`
	ScheduledSlot        string `json:"scheduled_slot,omitempty"`
	PaymentMethod        string `json:"payment_method"`
}

// ValidateCheckout collects per-field validation errors. Pickup orders only
// need contact fields; delivery additionally needs the address set.
func ValidateCheckout(req CheckoutRequest) map[string]string {
	fields := make(map[string]string)

	if strings.TrimSpace(req.FirstName) == "" {
		fields["first_name"] = "required"
	}
	if strings.TrimSpace(req.LastName) == "" {
		fields["last_name"] = "required"
	}
	if strings.TrimSpace(req.Phone) == "" {
		fields["phone"] = "required"
	}
	if strings.TrimSpace(req.PaymentMethod) == "" {
		fields["payment_method"] = "required"
	}

	method, ok := models.ValidDeliveryMethod(req.DeliveryMethod)
	if !ok {
		fields["delivery_method"] = "must be delivery or pickup"
	} else if method == models.DeliveryMethodDelivery {
		if strings.TrimSpace(req.DeliveryAddress) == "" {
			fields["delivery_address"] = "required"
		}
		if strings.TrimSpace(req.City) == "" {
			fields["city"] = "required"
		}
		if strings.TrimSpace(req.PostalCode) == "" {
			fields["postal_code"] = "required"
		}
	}

	if req.TimingMode != TimingImmediate && req.TimingMode != TimingScheduled {
		fields["timing_mode"] = "must be immediate or scheduled"
	}

	return fields
}

func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// Checkout builds and persists an immutable order snapshot from the actor's
// cart, then clears the cart. The order, its item copies and the cart clear
// commit in a single transaction.
func Checkout(db *gorm.DB, userID string, req CheckoutRequest) (*models.Order, error) {
	var cart models.Cart
	if err := db.Preload("Items").Where("customer_id = ?", userID).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrEmptyCart
		}
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, models.ErrEmptyCart
	}

	method, _ := models.ValidDeliveryMethod(req.DeliveryMethod)

	estimated, err := ResolveEstimatedDelivery(req.TimingMode, req.ScheduledDate, req.ScheduledSlot, time.Now())
	if err != nil {
		return nil, err
	}

	var business models.Business
	if err := db.First(&business, "id = ?", cart.BusinessID).Error; err != nil {
		return nil, err
	}

	quote := PriceCart(cart.Items, method)

	items := make([]models.OrderItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, models.OrderItem{
			ProductID:           item.ProductID,
			Name:                item.Name,
			UnitPrice:           item.UnitPrice,
			Quantity:            item.Quantity,
			SpecialInstructions: item.SpecialInstructions,
		})
	}

	order := models.Order{
		OrderRef:             generateOrderRef(),
		UserID:               userID,
		BusinessID:           business.ID,
		BusinessName:         business.Name,
		Items:                items,
		Status:               models.OrderStatusPending,
		Total:                quote.Subtotal,
		DeliveryFee:          quote.DeliveryFee,
		Tax:                  quote.Tax,
		GrandTotal:           quote.GrandTotal,
		DeliveryAddress:      req.DeliveryAddress,
		DeliveryInstructions: req.DeliveryInstructions,
		DeliveryMethod:       method,
		EstimatedDelivery:    estimated,
		PaymentMethod:        req.PaymentMethod,
		PaymentStatus:        models.PaymentStatusPending,
		CreatedAt:            time.Now(),
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		if err := tx.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		return tx.Model(&models.Cart{}).Where("cart_id = ?", cart.CartID).
			Update("business_id", 0).Error
	})
	if err != nil {
		return nil, err
	}

	// Best effort: a failed notification never fails the checkout.
	go broadcastNewOrder(order)

	return &order, nil
}

// POST /orders/checkout
func CheckoutHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if fields := ValidateCheckout(req); len(fields) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "fields": fields})
			return
		}

		order, err := Checkout(db, userID, req)
		switch {
		case errors.Is(err, models.ErrEmptyCart):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
		case errors.Is(err, models.ErrInvalidSchedule):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Scheduled delivery must use a valid future slot"})
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
		default:
			c.JSON(http.StatusCreated, order)
		}
	}
}

// GET /orders/slots
func DeliverySlotsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"slots": DeliverySlots()})
	}
}
