package subscriptionControllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/koulibalyamadou10/braprime-partner-sub001/middleware"
	"github.com/koulibalyamadou10/braprime-partner-sub001/models"
)

type CreateSubscriptionRequest struct {
	PlanID        uint `json:"plan_id" binding:"required"`
	ReplaceActive bool `json:"replace_active"` // explicit confirmation to replace a live subscription
}

type DeactivateRequest struct {
	Reason string `json:"reason"`
}

// GET /subscriptions/plans
func GetPlansHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var plans []models.SubscriptionPlan
		if err := db.Order("duration_months").Find(&plans).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch plans"})
			return
		}
		c.JSON(http.StatusOK, plans)
	}
}

// CreateSubscription starts a pending subscription for the partner. If one is
// already active, nothing is written unless the caller explicitly confirmed
// the replacement, in which case the old row is deactivated in the same
// transaction.
func CreateSubscription(db *gorm.DB, partnerID string, planID uint, replace bool) (*models.Subscription, error) {
	var plan models.SubscriptionPlan
	if err := db.First(&plan, "id = ?", planID).Error; err != nil {
		return nil, err
	}

	var active models.Subscription
	err := db.Where("partner_id = ? AND status = ?", partnerID, models.SubscriptionStatusActive).
		First(&active).Error
	hasActive := err == nil
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if hasActive && !replace {
		return nil, models.ErrActiveSubscriptionExists
	}

	sub := models.Subscription{
		PartnerID:     partnerID,
		PlanID:        plan.ID,
		Status:        models.SubscriptionStatusPending,
		MonthlyAmount: plan.MonthlyAmount,
		SavingsAmount: plan.Savings(),
		CreatedAt:     time.Now(),
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if hasActive {
			result := tx.Model(&models.Subscription{}).
				Where("id = ? AND status = ?", active.ID, models.SubscriptionStatusActive).
				Updates(map[string]interface{}{
					"status":              models.SubscriptionStatusDeactivated,
					"deactivation_reason": "replaced by a new subscription",
				})
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return models.ErrSubscriptionNotActive
			}
		}
		return tx.Create(&sub).Error
	})
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// mayManageSubscription gates lifecycle changes to the subscription's own
// partner; platform actors (admins, the verified payment gateway) manage any.
func mayManageSubscription(sub models.Subscription, actorID string, platform bool) bool {
	return platform || sub.PartnerID == actorID
}

// ActivateSubscription moves a pending subscription to active and opens the
// partner's storefront. Called by the owning partner or the payment callback.
func ActivateSubscription(db *gorm.DB, subscriptionID uint, actorID string, platform bool) (*models.Subscription, error) {
	var sub models.Subscription
	if err := db.Preload("Plan").First(&sub, "id = ?", subscriptionID).Error; err != nil {
		return nil, err
	}

	if !mayManageSubscription(sub, actorID, platform) {
		return nil, models.ErrNotOwner
	}

	if err := sub.Activate(sub.Plan, time.Now()); err != nil {
		return nil, err
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Subscription{}).
			Where("id = ? AND status = ?", sub.ID, models.SubscriptionStatusPending).
			Updates(map[string]interface{}{
				"status":         sub.Status,
				"start_date":     sub.StartDate,
				"end_date":       sub.EndDate,
				"monthly_amount": sub.MonthlyAmount,
				"total_paid":     sub.TotalPaid,
				"savings_amount": sub.SavingsAmount,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return models.ErrSubscriptionNotPending
		}
		return tx.Model(&models.Business{}).
			Where("partner_id = ?", sub.PartnerID).
			Update("is_active", true).Error
	})
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// DeactivateSubscription records the reason and closes the partner's
// storefront; both writes commit together. Irreversible.
func DeactivateSubscription(db *gorm.DB, subscriptionID uint, reason string, actorID string, platform bool) (*models.Subscription, error) {
	var sub models.Subscription
	if err := db.First(&sub, "id = ?", subscriptionID).Error; err != nil {
		return nil, err
	}

	if !mayManageSubscription(sub, actorID, platform) {
		return nil, models.ErrNotOwner
	}

	if err := sub.Deactivate(reason); err != nil {
		return nil, err
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Subscription{}).
			Where("id = ? AND status = ?", sub.ID, models.SubscriptionStatusActive).
			Updates(map[string]interface{}{
				"status":              sub.Status,
				"deactivation_reason": sub.DeactivationReason,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return models.ErrSubscriptionNotActive
		}
		return tx.Model(&models.Business{}).
			Where("partner_id = ?", sub.PartnerID).
			Update("is_active", false).Error
	})
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// ReconcileExpired lapses every active subscription whose paid window has
// passed, closing the storefront with it. Reads that must not serve stale
// storefronts, like the customer business listing, call this first.
func ReconcileExpired(db *gorm.DB) {
	var subs []models.Subscription
	if err := db.Where("status = ? AND end_date < ?", models.SubscriptionStatusActive, time.Now()).
		Find(&subs).Error; err != nil {
		return
	}
	reconcileExpiry(db, subs)
}

// reconcileExpiry lapses active subscriptions whose window has passed and
// closes the storefront. Runs on read instead of a background job.
func reconcileExpiry(db *gorm.DB, subs []models.Subscription) {
	now := time.Now()
	for i := range subs {
		if !subs[i].ExpiredNow(now) {
			continue
		}
		err := db.Transaction(func(tx *gorm.DB) error {
			result := tx.Model(&models.Subscription{}).
				Where("id = ? AND status = ?", subs[i].ID, models.SubscriptionStatusActive).
				Update("status", models.SubscriptionStatusExpired)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return nil // someone else reconciled it first
			}
			return tx.Model(&models.Business{}).
				Where("partner_id = ?", subs[i].PartnerID).
				Update("is_active", false).Error
		})
		if err == nil {
			subs[i].Status = models.SubscriptionStatusExpired
		}
	}
}

// POST /subscriptions
func CreateSubscriptionHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		partnerID := c.GetString("user_id")

		var req CreateSubscriptionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		sub, err := CreateSubscription(db, partnerID, req.PlanID, req.ReplaceActive)
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Plan does not exist"})
		case errors.Is(err, models.ErrActiveSubscriptionExists):
			c.JSON(http.StatusConflict, gin.H{
				"error":            "An active subscription already exists",
				"requires_confirm": true,
			})
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create subscription"})
		default:
			c.JSON(http.StatusCreated, sub)
		}
	}
}

// POST /subscriptions/:subscriptionID/activate
func ActivateSubscriptionHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseSubscriptionID(c)
		if !ok {
			return
		}

		sub, err := ActivateSubscription(db, id,
			c.GetString("user_id"), middleware.ActorCapabilities(c).ManagePlatform)
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Subscription not found"})
		case errors.Is(err, models.ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": "Subscription belongs to another partner"})
		case errors.Is(err, models.ErrSubscriptionNotPending):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Only pending subscriptions can be activated"})
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to activate subscription"})
		default:
			c.JSON(http.StatusOK, sub)
		}
	}
}

// POST /subscriptions/:subscriptionID/deactivate
func DeactivateSubscriptionHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseSubscriptionID(c)
		if !ok {
			return
		}

		var req DeactivateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		sub, err := DeactivateSubscription(db, id, req.Reason,
			c.GetString("user_id"), middleware.ActorCapabilities(c).ManagePlatform)
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Subscription not found"})
		case errors.Is(err, models.ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": "Subscription belongs to another partner"})
		case errors.Is(err, models.ErrSubscriptionNotActive):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Only active subscriptions can be deactivated"})
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to deactivate subscription"})
		default:
			c.JSON(http.StatusOK, sub)
		}
	}
}

// GET /subscriptions — partner's own history, newest first
func GetPartnerSubscriptionsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		partnerID := c.GetString("user_id")

		var subs []models.Subscription
		if err := db.Preload("Plan").
			Where("partner_id = ?", partnerID).
			Order("created_at DESC").
			Find(&subs).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch subscriptions"})
			return
		}

		reconcileExpiry(db, subs)

		c.JSON(http.StatusOK, subs)
	}
}

func parseSubscriptionID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("subscriptionID"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "subscriptionID is required"})
		return 0, false
	}
	return uint(id), true
}
