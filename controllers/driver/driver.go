package driverControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/koulibalyamadou10/braprime-partner-sub001/models"
)

type CreateDriverInput struct {
	UserID       string `json:"user_id" binding:"required"`
	Name         string `json:"name" binding:"required"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	DriverType   string `json:"driver_type" binding:"required"`
	BusinessID   *uint  `json:"business_id"`
	VehicleType  string `json:"vehicle_type"`
	VehiclePlate string `json:"vehicle_plate"`
}

type UpdateDriverInput struct {
	Name         *string `json:"name"`
	Phone        *string `json:"phone"`
	Email        *string `json:"email"`
	VehicleType  *string `json:"vehicle_type"`
	VehiclePlate *string `json:"vehicle_plate"`
}

// POST /drivers — partner or admin registers a driver. Service drivers are
// attached to a business; independent drivers carry no business id.
func CreateDriverHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateDriverInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		driverType, ok := models.ValidDriverType(input.DriverType)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid driver type"})
			return
		}
		if driverType == models.DriverTypeService && input.BusinessID == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Service drivers require a business_id"})
			return
		}
		if driverType == models.DriverTypeIndependent {
			input.BusinessID = nil
		}

		driver := models.Driver{
			UserID:       input.UserID,
			Name:         input.Name,
			Phone:        input.Phone,
			Email:        input.Email,
			DriverType:   driverType,
			BusinessID:   input.BusinessID,
			VehicleType:  input.VehicleType,
			VehiclePlate: input.VehiclePlate,
			IsActive:     true,
			CreatedAt:    time.Now(),
		}
		if err := db.Create(&driver).Error; err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": "Driver already exists for this user"})
			return
		}
		c.JSON(http.StatusCreated, driver)
	}
}

// GET /drivers/me
func GetMyDriverProfileHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var driver models.Driver
		if err := db.Where("user_id = ?", userID).First(&driver).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Driver profile not found"})
			return
		}
		c.JSON(http.StatusOK, driver)
	}
}

// PUT /drivers/me — self-service profile update
func UpdateMyDriverProfileHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var driver models.Driver
		if err := db.Where("user_id = ?", userID).First(&driver).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Driver profile not found"})
			return
		}

		var input UpdateDriverInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		updates := make(map[string]interface{})
		if input.Name != nil {
			updates["name"] = *input.Name
		}
		if input.Phone != nil {
			updates["phone"] = *input.Phone
		}
		if input.Email != nil {
			updates["email"] = *input.Email
		}
		if input.VehicleType != nil {
			updates["vehicle_type"] = *input.VehicleType
		}
		if input.VehiclePlate != nil {
			updates["vehicle_plate"] = *input.VehiclePlate
		}

		if len(updates) > 0 {
			if err := db.Model(&driver).Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update driver profile"})
				return
			}
		}
		c.JSON(http.StatusOK, driver)
	}
}

// GET /drivers/me/stats — aggregates derived from completed orders
func GetMyDriverStatsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var driver models.Driver
		if err := db.Where("user_id = ?", userID).First(&driver).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Driver profile not found"})
			return
		}

		var inFlight int64
		if err := db.Model(&models.Order{}).
			Where("driver_id = ? AND status IN ?", driver.ID,
				[]models.OrderStatus{models.OrderStatusPickedUp, models.OrderStatusOutForDelivery}).
			Count(&inFlight).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"total_deliveries": driver.TotalDeliveries,
			"total_earnings":   driver.TotalEarnings,
			"rating":           driver.Rating,
			"in_flight":        inFlight,
		})
	}
}

// GET /businesses/:businessID/drivers — partner's service drivers
func ListBusinessDriversHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var drivers []models.Driver
		if err := db.Where("business_id = ?", c.Param("businessID")).
			Find(&drivers).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch drivers"})
			return
		}
		c.JSON(http.StatusOK, drivers)
	}
}
