package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	authpkg "github.com/koulibalyamadou10/braprime-partner-sub001/auth"
	businessControllers "github.com/koulibalyamadou10/braprime-partner-sub001/controllers/business"
	driverControllers "github.com/koulibalyamadou10/braprime-partner-sub001/controllers/driver"
	"github.com/koulibalyamadou10/braprime-partner-sub001/middleware"
)

func SetupBusinessRoutes(r *gin.Engine, db *gorm.DB) {
	// Public storefront browsing
	r.GET("/businesses", businessControllers.ListActiveBusinessesHandler(db))
	r.GET("/businesses/:businessID", businessControllers.GetBusinessHandler(db))
	r.GET("/businesses/:businessID/products", businessControllers.ListProductsHandler(db))

	// Partner storefront management
	partner := r.Group("/partner/businesses", middleware.ValidateToken,
		middleware.RequireCapability(func(c authpkg.Capabilities) bool { return c.ManageStorefront }))
	{
		partner.POST("", businessControllers.CreateBusinessHandler(db))
		partner.GET("", businessControllers.GetMyBusinessesHandler(db))
		partner.PUT("/:businessID", businessControllers.UpdateBusinessHandler(db))
		partner.POST("/:businessID/products", businessControllers.CreateProductHandler(db))
		partner.PUT("/:businessID/products/:productID", businessControllers.UpdateProductHandler(db))
		partner.DELETE("/:businessID/products/:productID", businessControllers.DeleteProductHandler(db))
		partner.GET("/:businessID/drivers", driverControllers.ListBusinessDriversHandler(db))
	}
}
