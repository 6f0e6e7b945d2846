package orderControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/koulibalyamadou10/braprime-partner-sub001/middleware"
	"github.com/koulibalyamadou10/braprime-partner-sub001/models"
)

// orderLookup maps the :orderID path value onto the column it identifies.
// All-digit values are numeric primary keys; anything else is an order_ref.
// Keeping the two apart matters on Postgres, where comparing a bigint column
// against a non-numeric string fails instead of falling through.
func orderLookup(param string) (string, interface{}) {
	if n, err := strconv.ParseUint(param, 10, 64); err == nil {
		return "id = ?", n
	}
	return "order_ref = ?", param
}

// GET /orders — authenticated customer's own orders
func GetMyOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var orders []models.Order
		if err := db.
			Where("user_id = ?", userID).
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /orders/business/:businessID — partner view
func GetBusinessOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		businessID := c.Param("businessID")
		if businessID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "businessID is required"})
			return
		}

		// Partners only see orders of businesses they own; platform operators
		// see any.
		if !middleware.ActorCapabilities(c).ManagePlatform {
			var owned int64
			if err := db.Model(&models.Business{}).
				Where("id = ? AND partner_id = ?", businessID, c.GetString("user_id")).
				Count(&owned).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
				return
			}
			if owned == 0 {
				c.JSON(http.StatusForbidden, gin.H{"error": "business belongs to another partner"})
				return
			}
		}

		var orders []models.Order
		if err := db.
			Where("business_id = ?", businessID).
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /orders/available — ready orders a driver can claim, plus the driver's own
func GetDriverOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var driver models.Driver
		if err := db.Where("user_id = ?", userID).First(&driver).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Driver profile not found"})
			return
		}

		var orders []models.Order
		if err := db.
			Where("(status = ? AND delivery_method = ? AND driver_id IS NULL) OR driver_id = ?",
				models.OrderStatusReady, models.DeliveryMethodDelivery, driver.ID).
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /orders/:orderID — by numeric id or order_ref
func GetOrderByIDHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("orderID")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}

		column, value := orderLookup(id)
		var order models.Order
		if err := db.
			Preload("Items").
			Where(column, value).
			First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// GET /admin/orders — all orders (admin)
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}
