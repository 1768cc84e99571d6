package models

import (
	"time"

	"gorm.io/gorm"
)

type Customer struct {
	ID             uint   `json:"id" gorm:"primaryKey"`
	OrganizationID uint   `json:"organization_id" gorm:"not null;index"`
	Name           string `json:"name" gorm:"not null"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`

	BillingName     string `json:"billing_name"`
	BillingAddress  string `json:"billing_address" gorm:"type:text"`
	ShippingName    string `json:"shipping_name"`
	ShippingAddress string `json:"shipping_address" gorm:"type:text"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}
