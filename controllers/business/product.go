package businessControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/koulibalyamadou10/braprime-partner-sub001/models"
)

type ProductInput struct {
	Name        string                `json:"name" binding:"required"`
	Description string                `json:"description"`
	Price       int64                 `json:"price" binding:"required,min=1"` // GNF
	Image       string                `json:"image"`
	Available   *bool                 `json:"available"`
	Details     models.ProductDetails `json:"details"`
}

// POST /businesses/:businessID/products
func CreateProductHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		partnerID := c.GetString("user_id")

		business, err := ownedBusiness(db, c.Param("businessID"), partnerID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
			return
		}

		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if err := input.Details.Validate(business.BusinessType); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product details do not match the business type"})
			return
		}

		product := models.Product{
			BusinessID:  business.ID,
			Name:        input.Name,
			Description: input.Description,
			Price:       input.Price,
			Image:       input.Image,
			Available:   input.Available == nil || *input.Available,
			Details:     input.Details,
			CreatedAt:   time.Now(),
		}
		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}

// GET /businesses/:businessID/products
func ListProductsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Where("business_id = ?", c.Param("businessID")).
			Order("name").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// PUT /businesses/:businessID/products/:productID
func UpdateProductHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		partnerID := c.GetString("user_id")

		business, err := ownedBusiness(db, c.Param("businessID"), partnerID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
			return
		}

		var product models.Product
		if err := db.Where("id = ? AND business_id = ?", c.Param("productID"), business.ID).
			First(&product).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if err := input.Details.Validate(business.BusinessType); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product details do not match the business type"})
			return
		}

		product.Name = input.Name
		product.Description = input.Description
		product.Price = input.Price
		product.Image = input.Image
		if input.Available != nil {
			product.Available = *input.Available
		}
		product.Details = input.Details
		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// DELETE /businesses/:businessID/products/:productID — soft delete
func DeleteProductHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		partnerID := c.GetString("user_id")

		business, err := ownedBusiness(db, c.Param("businessID"), partnerID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Business not found"})
			return
		}

		result := db.Where("id = ? AND business_id = ?", c.Param("productID"), business.ID).
			Delete(&models.Product{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
	}
}
