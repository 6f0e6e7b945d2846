package models

import "time"

type BusinessType string

const (
	BusinessTypeRestaurant  BusinessType = "restaurant"
	BusinessTypeGrocery     BusinessType = "grocery"
	BusinessTypePharmacy    BusinessType = "pharmacy"
	BusinessTypeElectronics BusinessType = "electronics"
)

// Business is a partner storefront. Customers only see businesses that are
// both approved by an admin and active (an active subscription keeps IsActive
// true; deactivating or expiring the subscription flips it to false).
type Business struct {
	ID           uint         `gorm:"primaryKey" json:"id"`
	PartnerID    string       `gorm:"index;not null" json:"partner_id"`
	Name         string       `gorm:"not null" json:"name"`
	Description  string       `json:"description"`
	BusinessType BusinessType `gorm:"type:VARCHAR(20);not null" json:"business_type"`
	Phone        string       `json:"phone"`
	Address      Address      `gorm:"embedded" json:"address"`
	Image        string       `json:"image"`
	IsActive     bool         `gorm:"default:false" json:"is_active"`
	Approved     bool         `gorm:"default:false" json:"approved"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

func ValidBusinessType(t string) (BusinessType, bool) {
	switch BusinessType(t) {
	case BusinessTypeRestaurant, BusinessTypeGrocery, BusinessTypePharmacy, BusinessTypeElectronics:
		return BusinessType(t), true
	default:
		return "", false
	}
}
