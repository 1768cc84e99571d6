package models

import (
	"time"

	"gorm.io/gorm"
)

// OrderPreferences are the per-organization knobs the transition validator
// reads. They are resolved once per request and passed into the validator,
// never read from global state.
type OrderPreferences struct {
	RequireDueDateForProduction         bool `json:"require_due_date_for_production"`
	RequireBillingAddressForProduction  bool `json:"require_billing_address_for_production"`
	RequireShippingAddressForProduction bool `json:"require_shipping_address_for_production"`
	RequireAllLineItemsDoneToComplete   bool `json:"require_all_line_items_done_to_complete"`
	AllowCompletedOrderEdits            bool `json:"allow_completed_order_edits"`
}

type Organization struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"not null"`

	Preferences OrderPreferences `json:"preferences" gorm:"embedded;embeddedPrefix:pref_"`

	IsActive  bool           `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}
