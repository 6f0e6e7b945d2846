package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	paymentControllers "github.com/koulibalyamadou10/braprime-partner-sub001/controllers/payment"
	"github.com/koulibalyamadou10/braprime-partner-sub001/middleware"
)

func SetupPaymentRoutes(r *gin.Engine, db *gorm.DB) {
	payments := r.Group("/payments")
	{
		payments.POST("/initiate", middleware.ValidateToken, paymentControllers.InitiatePaymentHandler(db))

		// Provider webhook; authenticated by gateway signature, not a user token
		payments.POST("/callback",
			middleware.ValidateWebhookSignature(),
			paymentControllers.PaymentCallbackHandler(db))
	}
}
