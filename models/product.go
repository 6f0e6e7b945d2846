package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID          uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	BusinessID  uint           `gorm:"index;not null" json:"business_id"`
	Name        string         `gorm:"not null" json:"name"`
	Description string         `json:"description"`
	Price       int64          `gorm:"not null" json:"price"` // GNF
	Image       string         `json:"image"`
	Available   bool           `gorm:"default:true" json:"available"`
	Details     ProductDetails `gorm:"type:jsonb" json:"details"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// ProductDetails is a tagged variant keyed by the owning business type. At
// most one variant may be set, and it has to match the business type; a nil
// variant everywhere is fine (e.g. grocery items carry no extra fields).
type ProductDetails struct {
	Food        *FoodDetails        `json:"food,omitempty"`
	Pharmacy    *PharmacyDetails    `json:"pharmacy,omitempty"`
	Electronics *ElectronicsDetails `json:"electronics,omitempty"`
}

type FoodDetails struct {
	PrepTimeMinutes int    `json:"prep_time_minutes"`
	SpiceLevel      int    `json:"spice_level"`
	Vegetarian      bool   `json:"vegetarian"`
	Allergens       string `json:"allergens,omitempty"`
}

type PharmacyDetails struct {
	Dosage               string `json:"dosage"`
	RequiresPrescription bool   `json:"requires_prescription"`
	ActiveIngredient     string `json:"active_ingredient,omitempty"`
}

type ElectronicsDetails struct {
	Brand          string `json:"brand"`
	Model          string `json:"model,omitempty"`
	WarrantyMonths int    `json:"warranty_months"`
}

// Validate checks that the set variant matches the business type.
func (d ProductDetails) Validate(t BusinessType) error {
	set := 0
	if d.Food != nil {
		set++
		if t != BusinessTypeRestaurant {
			return ErrDetailsMismatch
		}
	}
	if d.Pharmacy != nil {
		set++
		if t != BusinessTypePharmacy {
			return ErrDetailsMismatch
		}
	}
	if d.Electronics != nil {
		set++
		if t != BusinessTypeElectronics {
			return ErrDetailsMismatch
		}
	}
	if set > 1 {
		return ErrDetailsMismatch
	}
	return nil
}

func (d ProductDetails) Value() (driver.Value, error) {
	return json.Marshal(d)
}

func (d *ProductDetails) Scan(value interface{}) error {
	if value == nil {
		*d = ProductDetails{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, d)
	case string:
		return json.Unmarshal([]byte(v), d)
	default:
		return fmt.Errorf("unsupported type for product details: %T", value)
	}
}
