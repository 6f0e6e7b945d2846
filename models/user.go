package models

import "time"

type Role string

const (
	RoleCustomer Role = "customer"
	RolePartner  Role = "partner"
	RoleDriver   Role = "driver"
	RoleAdmin    Role = "admin"
)

type User struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"unique;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Phone        string    `json:"phone"`
	Role         Role      `gorm:"type:VARCHAR(20);default:'customer'" json:"role"`
	Address      Address   `gorm:"embedded" json:"address"`
	CreatedAt    time.Time `json:"created_at"`
}

// Address model embedded in User; copied onto orders at checkout
type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

func ValidRole(r string) (Role, bool) {
	switch Role(r) {
	case RoleCustomer, RolePartner, RoleDriver, RoleAdmin:
		return Role(r), true
	default:
		return "", false
	}
}
