package models

import "time"

type DriverType string

const (
	DriverTypeIndependent DriverType = "independent"
	DriverTypeService     DriverType = "service" // attached to one business
)

type Driver struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	UserID          string     `gorm:"uniqueIndex;not null" json:"user_id"`
	Name            string     `gorm:"not null" json:"name"`
	Phone           string     `json:"phone"`
	Email           string     `json:"email"`
	DriverType      DriverType `gorm:"type:VARCHAR(20);default:'independent'" json:"driver_type"`
	BusinessID      *uint      `gorm:"index" json:"business_id"` // nil for independent drivers
	VehicleType     string     `json:"vehicle_type"`
	VehiclePlate    string     `json:"vehicle_plate"`
	Rating          float64    `gorm:"default:0" json:"rating"`
	TotalDeliveries int        `gorm:"default:0" json:"total_deliveries"`
	TotalEarnings   int64      `gorm:"default:0" json:"total_earnings"` // GNF
	IsActive        bool       `gorm:"default:true" json:"is_active"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func ValidDriverType(t string) (DriverType, bool) {
	switch DriverType(t) {
	case DriverTypeIndependent, DriverTypeService:
		return DriverType(t), true
	default:
		return "", false
	}
}
