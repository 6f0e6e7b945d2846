package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	authpkg "github.com/koulibalyamadou10/braprime-partner-sub001/auth"
	adminControllers "github.com/koulibalyamadou10/braprime-partner-sub001/controllers/admin"
	orderControllers "github.com/koulibalyamadou10/braprime-partner-sub001/controllers/order"
	userControllers "github.com/koulibalyamadou10/braprime-partner-sub001/controllers/user"
	"github.com/koulibalyamadou10/braprime-partner-sub001/middleware"
)

func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	admin := r.Group("/admin", middleware.ValidateToken,
		middleware.RequireCapability(func(c authpkg.Capabilities) bool { return c.ManagePlatform }),
		middleware.ValidateAPIKey)
	{
		admin.GET("/dashboard", adminControllers.Dashboard(db))
		admin.GET("/users", userControllers.GetAllUsers(db))
		admin.GET("/orders", orderControllers.GetAllOrdersHandler(db))
		admin.GET("/orders/export", adminControllers.ExportOrdersToExcel(db))

		admin.GET("/businesses/pending", adminControllers.ListPendingBusinesses(db))
		admin.POST("/businesses/approve", adminControllers.ApproveBusiness(db))
		admin.POST("/businesses/reject", adminControllers.RejectBusiness(db))
	}
}
