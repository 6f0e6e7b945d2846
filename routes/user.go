package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	authpkg "github.com/koulibalyamadou10/braprime-partner-sub001/auth"
	cartControllers "github.com/koulibalyamadou10/braprime-partner-sub001/controllers/cart"
	userControllers "github.com/koulibalyamadou10/braprime-partner-sub001/controllers/user"
	"github.com/koulibalyamadou10/braprime-partner-sub001/middleware"
)

func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	user := r.Group("/user", middleware.ValidateToken)
	{
		user.GET("", userControllers.GetUser(db))
		user.PUT("", userControllers.UpdateUser(db))
	}

	cart := r.Group("/cart", middleware.ValidateToken,
		middleware.RequireCapability(func(c authpkg.Capabilities) bool { return c.PlaceOrders }))
	{
		cart.GET("", cartControllers.GetCartHandler(db))
		cart.POST("/items", cartControllers.AddCartItemHandler(db))
		cart.PUT("/items/:itemID", cartControllers.UpdateCartItemHandler(db))
		cart.DELETE("/items/:itemID", cartControllers.DeleteCartItemHandler(db))
		cart.DELETE("", cartControllers.ClearCartHandler(db))
		cart.PUT("/delivery", cartControllers.UpdateDeliveryDetailsHandler(db))
	}
}
