package adminControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/koulibalyamadou10/braprime-partner-sub001/models"
)

// ListPendingBusinesses returns all storefronts awaiting approval.
func ListPendingBusinesses(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var pending []models.Business
		if err := db.Where("approved = ?", false).Find(&pending).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch pending businesses"})
			return
		}
		c.JSON(http.StatusOK, pending)
	}
}

func ApproveBusiness(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			BusinessID uint `json:"business_id"`
		}
		if err := c.ShouldBindJSON(&req); err != nil || req.BusinessID == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}

		var business models.Business
		if err := db.First(&business, "id = ?", req.BusinessID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
			return
		}

		if err := db.Model(&business).Update("approved", true).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to approve business"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Business approved"})
	}
}

func RejectBusiness(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			BusinessID uint `json:"business_id"`
		}
		if err := c.ShouldBindJSON(&req); err != nil || req.BusinessID == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}

		if err := db.Model(&models.Business{}).Where("id = ?", req.BusinessID).
			Updates(map[string]interface{}{"approved": false, "is_active": false}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reject business"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Business rejected"})
	}
}

// Dashboard returns platform-wide counters for the admin home screen.
func Dashboard(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var (
			totalOrders     int64
			pendingOrders   int64
			deliveredOrders int64
			cancelledOrders int64
			activeSubs      int64
			businesses      int64
			drivers         int64
			revenue         int64
		)

		if err := db.Model(&models.Order{}).Count(&totalOrders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute dashboard"})
			return
		}
		db.Model(&models.Order{}).Where("status = ?", models.OrderStatusPending).Count(&pendingOrders)
		db.Model(&models.Order{}).Where("status = ?", models.OrderStatusDelivered).Count(&deliveredOrders)
		db.Model(&models.Order{}).Where("status = ?", models.OrderStatusCancelled).Count(&cancelledOrders)
		db.Model(&models.Subscription{}).Where("status = ?", models.SubscriptionStatusActive).Count(&activeSubs)
		db.Model(&models.Business{}).Count(&businesses)
		db.Model(&models.Driver{}).Count(&drivers)

		var sum struct{ Revenue int64 }
		db.Model(&models.Order{}).
			Where("status = ?", models.OrderStatusDelivered).
			Select("COALESCE(SUM(grand_total), 0) AS revenue").
			Scan(&sum)
		revenue = sum.Revenue

		c.JSON(http.StatusOK, gin.H{
			"total_orders":         totalOrders,
			"pending_orders":       pendingOrders,
			"delivered_orders":     deliveredOrders,
			"cancelled_orders":     cancelledOrders,
			"active_subscriptions": activeSubs,
			"businesses":           businesses,
			"drivers":              drivers,
			"revenue":              revenue,
		})
	}
}
