package orderControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/koulibalyamadou10/braprime-partner-sub001/middleware"
	"github.com/koulibalyamadou10/braprime-partner-sub001/models"
)

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status" binding:"required"`
}

// TransitionOrder applies one actor-gated status transition. The UPDATE
// carries the expected prior status so two actors racing on the same order
// fail loudly instead of overwriting each other.
func TransitionOrder(db *gorm.DB, orderID string, actor models.Role, actorUserID string, target models.OrderStatus) (*models.Order, error) {
	var order models.Order
	column, value := orderLookup(orderID)
	if err := db.First(&order, column, value).Error; err != nil {
		return nil, err
	}

	// Partners only move orders of a business they own; drivers only orders
	// they can claim or already hold. Admins act on any order.
	var driver models.Driver
	switch actor {
	case models.RolePartner:
		var owned int64
		if err := db.Model(&models.Business{}).
			Where("id = ? AND partner_id = ?", order.BusinessID, actorUserID).
			Count(&owned).Error; err != nil {
			return nil, err
		}
		if owned == 0 {
			return nil, models.ErrNotOwner
		}
	case models.RoleDriver:
		if err := db.Where("user_id = ?", actorUserID).First(&driver).Error; err != nil {
			return nil, err
		}
		if !driverMayHandle(order, driver.ID) {
			return nil, models.ErrNotOwner
		}
	}

	if !models.CanTransition(actor, order.Status, target) {
		return nil, models.ErrInvalidTransition
	}

	updates := map[string]interface{}{"status": target}

	// A driver taking the order claims it.
	if actor == models.RoleDriver &&
		(target == models.OrderStatusPickedUp || target == models.OrderStatusOutForDelivery) {
		updates["driver_id"] = driver.ID
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Order{}).
			Where("id = ? AND status = ?", order.ID, order.Status).
			Updates(updates)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return models.ErrStatusConflict
		}

		if target == models.OrderStatusDelivered || target == models.OrderStatusCancelled {
			if err := tx.First(&order, "id = ?", order.ID).Error; err != nil {
				return err
			}
			if order.DriverID != nil {
				if err := recomputeDriverStats(tx, *order.DriverID); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := db.Preload("Items").First(&order, "id = ?", order.ID).Error; err != nil {
		return nil, err
	}

	go broadcastOrderUpdate(order)

	return &order, nil
}

// driverMayHandle reports whether a driver can act on the order: unassigned
// orders are open to claim, assigned ones only to their driver.
func driverMayHandle(order models.Order, driverID uint) bool {
	return order.DriverID == nil || *order.DriverID == driverID
}

// recomputeDriverStats re-derives the driver's aggregate totals from
// delivered orders after each terminal transition.
func recomputeDriverStats(tx *gorm.DB, driverID uint) error {
	var stats struct {
		Deliveries int64
		Earnings   int64
	}
	err := tx.Model(&models.Order{}).
		Where("driver_id = ? AND status = ?", driverID, models.OrderStatusDelivered).
		Select("COUNT(*) AS deliveries, COALESCE(SUM(delivery_fee), 0) AS earnings").
		Scan(&stats).Error
	if err != nil {
		return err
	}
	return tx.Model(&models.Driver{}).Where("id = ?", driverID).Updates(map[string]interface{}{
		"total_deliveries": stats.Deliveries,
		"total_earnings":   stats.Earnings,
	}).Error
}

// PATCH /orders/:orderID/status
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		if orderID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}

		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		target, ok := models.ParseOrderStatus(req.Status)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order status"})
			return
		}

		order, err := TransitionOrder(db, orderID, middleware.ActorRole(c), c.GetString("user_id"), target)
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		case errors.Is(err, models.ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": "order belongs to another account"})
		case errors.Is(err, models.ErrInvalidTransition):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "transition not allowed from current status"})
		case errors.Is(err, models.ErrStatusConflict):
			c.JSON(http.StatusConflict, gin.H{"error": "order was updated by someone else, reload and retry"})
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update order status"})
		default:
			c.JSON(http.StatusOK, order)
		}
	}
}

// PATCH /orders/:orderID/payment-status
func UpdatePaymentStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		if orderID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}

		var req UpdatePaymentStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		status, ok := models.ParsePaymentStatus(req.PaymentStatus)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payment status"})
			return
		}

		column, value := orderLookup(orderID)
		result := db.Model(&models.Order{}).
			Where(column, value).
			Update("payment_status", status)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update payment status"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Payment status updated"})
	}
}
