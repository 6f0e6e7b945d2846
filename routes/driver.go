package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	authpkg "github.com/koulibalyamadou10/braprime-partner-sub001/auth"
	driverControllers "github.com/koulibalyamadou10/braprime-partner-sub001/controllers/driver"
	"github.com/koulibalyamadou10/braprime-partner-sub001/middleware"
)

func SetupDriverRoutes(r *gin.Engine, db *gorm.DB) {
	drivers := r.Group("/drivers", middleware.ValidateToken)
	{
		drivers.POST("",
			middleware.RequireCapability(func(c authpkg.Capabilities) bool { return c.ManageStorefront || c.ManagePlatform }),
			driverControllers.CreateDriverHandler(db))

		me := drivers.Group("/me",
			middleware.RequireCapability(func(c authpkg.Capabilities) bool { return c.DeliverOrders }))
		{
			me.GET("", driverControllers.GetMyDriverProfileHandler(db))
			me.PUT("", driverControllers.UpdateMyDriverProfileHandler(db))
			me.GET("/stats", driverControllers.GetMyDriverStatsHandler(db))
		}
	}
}
