package models

import (
	"time"

	"gorm.io/gorm"
)

type Order struct {
	ID             uint   `json:"id" gorm:"primaryKey"`
	OrganizationID uint   `json:"organization_id" gorm:"not null;index:idx_orders_org"`
	OrderNumber    string `json:"order_number" gorm:"unique;not null"`
	CustomerID     uint   `json:"customer_id"`

	Status            OrderStatus       `json:"status" gorm:"not null;default:'new'"`
	State             OrderState        `json:"state" gorm:"not null;default:'open'"`
	FulfillmentStatus FulfillmentStatus `json:"fulfillment_status" gorm:"not null;default:'pending'"`
	RoutingTarget     RoutingTarget     `json:"routing_target" gorm:"default:'ship'"`
	StatusPillValue   string            `json:"status_pill_value"`
	Priority          string            `json:"priority" gorm:"default:'normal'"`
	ShippingMethod    string            `json:"shipping_method" gorm:"default:'delivery'"`

	DueDate               *time.Time `json:"due_date"`
	PromisedDate          *time.Time `json:"promised_date"`
	StartedProductionAt   *time.Time `json:"started_production_at"`
	ProductionCompletedAt *time.Time `json:"production_completed_at"`
	ShippedAt             *time.Time `json:"shipped_at"`

	// Customer snapshot, copied at order creation so later customer edits
	// never rewrite order history.
	BillingName     string `json:"billing_name"`
	BillingAddress  string `json:"billing_address" gorm:"type:text"`
	ShippingName    string `json:"shipping_name"`
	ShippingAddress string `json:"shipping_address" gorm:"type:text"`

	Notes     string  `json:"notes" gorm:"type:text"`
	Total     float64 `json:"total"`
	CreatedBy uint    `json:"created_by"`

	LineItems []OrderLineItem `json:"line_items,omitempty" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

// HasBillingSnapshot reports whether the billing copy was taken.
func (o *Order) HasBillingSnapshot() bool {
	return o.BillingName != "" || o.BillingAddress != ""
}

func (o *Order) HasShippingSnapshot() bool {
	return o.ShippingName != "" || o.ShippingAddress != ""
}
