package businessControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	subscriptionControllers "github.com/koulibalyamadou10/braprime-partner-sub001/controllers/subscription"
	"github.com/koulibalyamadou10/braprime-partner-sub001/models"
)

type CreateBusinessInput struct {
	Name         string         `json:"name" binding:"required"`
	Description  string         `json:"description"`
	BusinessType string         `json:"business_type" binding:"required"`
	Phone        string         `json:"phone"`
	Address      models.Address `json:"address"`
	Image        string         `json:"image"`
}

type UpdateBusinessInput struct {
	Name        *string         `json:"name"`
	Description *string         `json:"description"`
	Phone       *string         `json:"phone"`
	Address     *models.Address `json:"address"`
	Image       *string         `json:"image"`
}

// POST /businesses — partner registers a storefront; it stays hidden until an
// admin approves it and a subscription activates it.
func CreateBusinessHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		partnerID := c.GetString("user_id")

		var input CreateBusinessInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		businessType, ok := models.ValidBusinessType(input.BusinessType)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid business type"})
			return
		}

		business := models.Business{
			PartnerID:    partnerID,
			Name:         input.Name,
			Description:  input.Description,
			BusinessType: businessType,
			Phone:        input.Phone,
			Address:      input.Address,
			Image:        input.Image,
			CreatedAt:    time.Now(),
		}
		if err := db.Create(&business).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create business"})
			return
		}
		c.JSON(http.StatusCreated, business)
	}
}

// GET /businesses — customer storefront listing: approved and active only.
// Lapsed subscriptions are reconciled first so a storefront never outlives
// its paid window.
func ListActiveBusinessesHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		subscriptionControllers.ReconcileExpired(db)

		query := db.Where("approved = ? AND is_active = ?", true, true)
		if t := c.Query("type"); t != "" {
			businessType, ok := models.ValidBusinessType(t)
			if !ok {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid business type"})
				return
			}
			query = query.Where("business_type = ?", businessType)
		}

		var businesses []models.Business
		if err := query.Order("name").Find(&businesses).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch businesses"})
			return
		}
		c.JSON(http.StatusOK, businesses)
	}
}

// GET /businesses/:businessID
func GetBusinessHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var business models.Business
		if err := db.First(&business, "id = ?", c.Param("businessID")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
			return
		}
		c.JSON(http.StatusOK, business)
	}
}

// GET /businesses/mine — partner's own storefronts
func GetMyBusinessesHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		partnerID := c.GetString("user_id")

		var businesses []models.Business
		if err := db.Where("partner_id = ?", partnerID).Find(&businesses).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch businesses"})
			return
		}
		c.JSON(http.StatusOK, businesses)
	}
}

// PUT /businesses/:businessID
func UpdateBusinessHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		partnerID := c.GetString("user_id")

		var business models.Business
		if err := db.Where("id = ? AND partner_id = ?", c.Param("businessID"), partnerID).
			First(&business).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
			return
		}

		var input UpdateBusinessInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		updates := make(map[string]interface{})
		if input.Name != nil {
			updates["name"] = *input.Name
		}
		if input.Description != nil {
			updates["description"] = *input.Description
		}
		if input.Phone != nil {
			updates["phone"] = *input.Phone
		}
		if input.Image != nil {
			updates["image"] = *input.Image
		}
		if input.Address != nil {
			updates["street"] = input.Address.Street
			updates["city"] = input.Address.City
			updates["postal_code"] = input.Address.PostalCode
			updates["country"] = input.Address.Country
		}

		if len(updates) > 0 {
			if err := db.Model(&business).Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update business"})
				return
			}
		}
		c.JSON(http.StatusOK, business)
	}
}

// ownedBusiness loads a business only when the requesting partner owns it.
func ownedBusiness(db *gorm.DB, businessID, partnerID string) (*models.Business, error) {
	var business models.Business
	err := db.Where("id = ? AND partner_id = ?", businessID, partnerID).First(&business).Error
	if err != nil {
		return nil, err
	}
	return &business, nil
}
