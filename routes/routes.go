package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up every route group.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r, db)

	// Customer routes (profile, cart, checkout)
	SetupUserRoutes(r, db)

	// Storefront + partner routes
	SetupBusinessRoutes(r, db)

	// Order routes (customer, partner, driver)
	SetupOrderRoutes(r, db)

	// Partner subscription routes
	SetupSubscriptionRoutes(r, db)

	// Driver routes
	SetupDriverRoutes(r, db)

	// Payment gateway routes
	SetupPaymentRoutes(r, db)

	// Admin routes (JWT + API key)
	SetupAdminRoutes(r, db)
}
