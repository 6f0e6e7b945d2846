package paymentControllers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	subscriptionControllers "github.com/koulibalyamadou10/braprime-partner-sub001/controllers/subscription"
	"github.com/koulibalyamadou10/braprime-partner-sub001/models"
)

// GatewayResponse represents the hosted payment page the gateway returns.
type GatewayResponse struct {
	Payment struct {
		Ref string `json:"ref"`
		URL string `json:"url"`
	} `json:"payment"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

type InitiatePaymentRequest struct {
	OrderRef       string `json:"order_ref,omitempty"`
	SubscriptionID uint   `json:"subscription_id,omitempty"`
}

type CallbackRequest struct {
	Ref            string `json:"ref" binding:"required"`
	Status         string `json:"status" binding:"required"` // paid | failed
	OrderRef       string `json:"order_ref,omitempty"`
	SubscriptionID uint   `json:"subscription_id,omitempty"`
}

// getGatewayConfig reads the payment-provider credentials from the environment.
func getGatewayConfig() (storeID, authKey, apiURL string, err error) {
	storeID = os.Getenv("PAY_STORE_ID")
	authKey = os.Getenv("PAY_AUTH_KEY")
	apiURL = os.Getenv("PAY_API_URL")
	if storeID == "" || authKey == "" || apiURL == "" {
		return "", "", "", fmt.Errorf("payment gateway configuration missing")
	}
	return storeID, authKey, apiURL, nil
}

// createGatewayPayment asks the provider for a hosted payment page and
// returns its URL and reference.
func createGatewayPayment(amount int64, description string) (string, string, error) {
	storeID, authKey, apiURL, err := getGatewayConfig()
	if err != nil {
		return "", "", err
	}

	payload := map[string]interface{}{
		"store":       storeID,
		"auth_key":    authKey,
		"amount":      amount,
		"currency":    "GNF",
		"description": description,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", "", err
	}

	resp, err := http.Post(apiURL, "application/json", bytes.NewReader(body))
	if err != nil {
		return "", "", err
	}
	defer resp.Body.Close()

	var gw GatewayResponse
	if err := json.NewDecoder(resp.Body).Decode(&gw); err != nil {
		return "", "", err
	}
	if gw.Error != nil {
		return "", "", fmt.Errorf("gateway error %s: %s", gw.Error.Code, gw.Error.Message)
	}
	return gw.Payment.URL, gw.Payment.Ref, nil
}

// POST /payments/initiate — returns the gateway redirect URL for an order or
// a subscription. Gateway internals never reach the client.
func InitiatePaymentHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req InitiatePaymentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var amount int64
		var description string
		switch {
		case req.OrderRef != "":
			var order models.Order
			if err := db.Where("order_ref = ?", req.OrderRef).First(&order).Error; err != nil {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			amount = order.GrandTotal
			description = "Order " + order.OrderRef
		case req.SubscriptionID != 0:
			var sub models.Subscription
			if err := db.Preload("Plan").First(&sub, "id = ?", req.SubscriptionID).Error; err != nil {
				c.JSON(http.StatusNotFound, gin.H{"error": "Subscription not found"})
				return
			}
			amount = sub.Plan.TotalAmount
			description = "Subscription " + sub.Plan.Name
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "order_ref or subscription_id is required"})
			return
		}

		url, ref, err := createGatewayPayment(amount, description)
		if err != nil {
			log.Printf("payment gateway: %v", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "Payment service unavailable, try again"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"redirect_url": url, "ref": ref})
	}
}

// POST /payments/callback — provider webhook. Marks orders paid/failed and
// activates subscriptions on confirmed payment.
func PaymentCallbackHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CallbackRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid callback: " + err.Error()})
			return
		}

		paid := req.Status == "paid"

		switch {
		case req.OrderRef != "":
			status := models.PaymentStatusFailed
			if paid {
				status = models.PaymentStatusPaid
			}
			result := db.Model(&models.Order{}).
				Where("order_ref = ?", req.OrderRef).
				Update("payment_status", status)
			if result.Error != nil || result.RowsAffected == 0 {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
		case req.SubscriptionID != 0:
			if paid {
				// Gateway-signed callback, acts with platform rights.
				_, err := subscriptionControllers.ActivateSubscription(db, req.SubscriptionID, "", true)
				if err != nil && !errors.Is(err, models.ErrSubscriptionNotPending) {
					log.Printf("subscription activation from payment callback: %v", err)
					c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to activate subscription"})
					return
				}
			}
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "order_ref or subscription_id is required"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Callback processed"})
	}
}
