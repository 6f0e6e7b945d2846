package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	authpkg "github.com/koulibalyamadou10/braprime-partner-sub001/auth"
	orderControllers "github.com/koulibalyamadou10/braprime-partner-sub001/controllers/order"
	"github.com/koulibalyamadou10/braprime-partner-sub001/middleware"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	orders := r.Group("/orders", middleware.ValidateToken)
	{
		// Checkout (customer)
		orders.POST("/checkout",
			middleware.RequireCapability(func(c authpkg.Capabilities) bool { return c.PlaceOrders }),
			orderControllers.CheckoutHandler(db))

		// Scheduling slots for the checkout form
		orders.GET("/slots", orderControllers.DeliverySlotsHandler())

		// websocket endpoint for real-time order updates
		orders.GET("/ws", orderControllers.OrderWebSocketHandler)

		// Listings per actor
		orders.GET("", orderControllers.GetMyOrdersHandler(db))
		orders.GET("/business/:businessID",
			middleware.RequireCapability(func(c authpkg.Capabilities) bool { return c.ManageStorefront }),
			orderControllers.GetBusinessOrdersHandler(db))
		orders.GET("/available",
			middleware.RequireCapability(func(c authpkg.Capabilities) bool { return c.DeliverOrders }),
			orderControllers.GetDriverOrdersHandler(db))
		orders.GET("/:orderID", orderControllers.GetOrderByIDHandler(db))

		// Status transitions; actor gating happens in the lifecycle table
		orders.PATCH("/:orderID/status", orderControllers.UpdateOrderStatusHandler(db))
		orders.PATCH("/:orderID/payment-status",
			middleware.RequireCapability(func(c authpkg.Capabilities) bool { return c.ManagePlatform }),
			orderControllers.UpdatePaymentStatusHandler(db))
	}
}
