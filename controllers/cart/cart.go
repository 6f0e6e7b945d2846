package cartControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/koulibalyamadou10/braprime-partner-sub001/models"
)

type AddItemInput struct {
	ProductID           uint   `json:"product_id" binding:"required"`
	Quantity            int    `json:"quantity" binding:"required,min=1"`
	SpecialInstructions string `json:"special_instructions"`
}

type UpdateQuantityInput struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

type DeliveryDetailsInput struct {
	DeliveryAddress      string `json:"delivery_address"`
	DeliveryInstructions string `json:"delivery_instructions"`
	DeliveryMethod       string `json:"delivery_method"`
}

// loadOrCreateCart fetches the customer's cart, creating it lazily on first use.
func loadOrCreateCart(db *gorm.DB, customerID string) (*models.Cart, error) {
	var cart models.Cart
	err := db.Preload("Items").Where("customer_id = ?", customerID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cart = models.Cart{CustomerID: customerID, DeliveryMethod: models.DeliveryMethodDelivery}
		if err := db.Create(&cart).Error; err != nil {
			return nil, err
		}
		return &cart, nil
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

// cartAccepts decides whether a product may enter the cart. An empty cart
// accepts any product; a non-empty cart only products from the business it
// already belongs to.
func cartAccepts(cartBusinessID uint, itemCount int, productBusinessID uint) error {
	if itemCount > 0 && cartBusinessID != productBusinessID {
		return models.ErrCrossMerchantCart
	}
	return nil
}

// AddCartItem adds a product to the cart, enforcing the single-business
// invariant: a non-empty cart only accepts products from its own business.
func AddCartItem(db *gorm.DB, customerID string, input AddItemInput) (*models.CartItem, error) {
	var product models.Product
	if err := db.First(&product, "id = ?", input.ProductID).Error; err != nil {
		return nil, err
	}

	cart, err := loadOrCreateCart(db, customerID)
	if err != nil {
		return nil, err
	}

	if err := cartAccepts(cart.BusinessID, len(cart.Items), product.BusinessID); err != nil {
		return nil, err
	}

	// Same product again just bumps the quantity.
	var item models.CartItem
	err = db.Where("cart_id = ? AND product_id = ?", cart.CartID, product.ID).First(&item).Error
	if err == nil {
		item.Quantity += input.Quantity
		if input.SpecialInstructions != "" {
			item.SpecialInstructions = input.SpecialInstructions
		}
		item.AddedAt = time.Now()
		if err := db.Save(&item).Error; err != nil {
			return nil, err
		}
		return &item, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	newItem := models.CartItem{
		CartID:              cart.CartID,
		ProductID:           product.ID,
		Name:                product.Name,
		UnitPrice:           product.Price,
		Quantity:            input.Quantity,
		SpecialInstructions: input.SpecialInstructions,
		AddedAt:             time.Now(),
	}
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&newItem).Error; err != nil {
			return err
		}
		if cart.BusinessID != product.BusinessID {
			return tx.Model(&models.Cart{}).Where("cart_id = ?", cart.CartID).
				Update("business_id", product.BusinessID).Error
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &newItem, nil
}

// POST /cart/items
func AddCartItemHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		item, err := AddCartItem(db, userID, input)
		switch {
		case errors.Is(err, models.ErrCrossMerchantCart):
			c.JSON(http.StatusConflict, gin.H{"error": "Your cart contains items from another business. Clear it first."})
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
		default:
			c.JSON(http.StatusCreated, item)
		}
	}
}

// PUT /cart/items/:itemID
func UpdateCartItemHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		itemID := c.Param("itemID")

		var input UpdateQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var cart models.Cart
		if err := db.Where("customer_id = ?", userID).First(&cart).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
			return
		}

		result := db.Model(&models.CartItem{}).
			Where("id = ? AND cart_id = ?", itemID, cart.CartID).
			Updates(map[string]interface{}{"quantity": input.Quantity, "added_at": time.Now()})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Cart item updated"})
	}
}

// DELETE /cart/items/:itemID
func DeleteCartItemHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		itemID := c.Param("itemID")

		var cart models.Cart
		if err := db.Where("customer_id = ?", userID).First(&cart).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
			return
		}

		result := db.Where("id = ? AND cart_id = ?", itemID, cart.CartID).Delete(&models.CartItem{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Cart item deleted"})
	}
}

// DELETE /cart — idempotent; clearing an already-empty cart succeeds.
func ClearCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var cart models.Cart
		err := db.Where("customer_id = ?", userID).First(&cart).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error; err != nil {
				return err
			}
			return tx.Model(&models.Cart{}).Where("cart_id = ?", cart.CartID).
				Update("business_id", 0).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}

// GET /cart
func GetCartHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		cart, err := loadOrCreateCart(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// PUT /cart/delivery
func UpdateDeliveryDetailsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var input DeliveryDetailsInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		updates := make(map[string]interface{})
		if input.DeliveryAddress != "" {
			updates["delivery_address"] = input.DeliveryAddress
		}
		if input.DeliveryInstructions != "" {
			updates["delivery_instructions"] = input.DeliveryInstructions
		}
		if input.DeliveryMethod != "" {
			method, ok := models.ValidDeliveryMethod(input.DeliveryMethod)
			if !ok {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid delivery method"})
				return
			}
			updates["delivery_method"] = method
		}

		cart, err := loadOrCreateCart(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		if len(updates) > 0 {
			if err := db.Model(cart).Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update delivery details"})
				return
			}
		}
		c.JSON(http.StatusOK, cart)
	}
}
