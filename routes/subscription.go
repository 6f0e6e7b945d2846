package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	authpkg "github.com/koulibalyamadou10/braprime-partner-sub001/auth"
	subscriptionControllers "github.com/koulibalyamadou10/braprime-partner-sub001/controllers/subscription"
	"github.com/koulibalyamadou10/braprime-partner-sub001/middleware"
)

func SetupSubscriptionRoutes(r *gin.Engine, db *gorm.DB) {
	subs := r.Group("/subscriptions", middleware.ValidateToken,
		middleware.RequireCapability(func(c authpkg.Capabilities) bool { return c.ManageStorefront }))
	{
		subs.GET("/plans", subscriptionControllers.GetPlansHandler(db))
		subs.GET("", subscriptionControllers.GetPartnerSubscriptionsHandler(db))
		subs.POST("", subscriptionControllers.CreateSubscriptionHandler(db))
		subs.POST("/:subscriptionID/activate", subscriptionControllers.ActivateSubscriptionHandler(db))
		subs.POST("/:subscriptionID/deactivate", subscriptionControllers.DeactivateSubscriptionHandler(db))
	}
}
