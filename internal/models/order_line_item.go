package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderLineItem struct {
	ID             uint   `json:"id" gorm:"primaryKey"`
	OrderID        uint   `json:"order_id" gorm:"not null;index"`
	OrganizationID uint   `json:"organization_id" gorm:"not null;index"`
	ItemName       string `json:"item_name" gorm:"not null"`
	Description    string `json:"description" gorm:"type:text"`

	Status LineItemStatus `json:"status" gorm:"not null;default:'queued'"`

	Quantity   int     `json:"quantity" gorm:"not null"`
	UnitPrice  float64 `json:"unit_price"`
	TotalPrice float64 `json:"total_price"`

	// Material consumption for the inventory deduction on production entry.
	MaterialID  *uint           `json:"material_id"`
	MaterialQty decimal.Decimal `json:"material_qty" gorm:"type:decimal(20,4);default:0"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

// LineItemStatus tracks a line item through the production floor.
type LineItemStatus string

const (
	ItemQueued    LineItemStatus = "queued"
	ItemPrinting  LineItemStatus = "printing"
	ItemFinishing LineItemStatus = "finishing"
	ItemDone      LineItemStatus = "done"
	ItemCanceled  LineItemStatus = "canceled"
)

var lineItemTransitions = map[LineItemStatus][]LineItemStatus{
	ItemQueued:    {ItemPrinting, ItemCanceled},
	ItemPrinting:  {ItemFinishing, ItemCanceled},
	ItemFinishing: {ItemDone, ItemCanceled},
	ItemDone:      {},
	ItemCanceled:  {},
}

func CanTransitionLineItem(from, to LineItemStatus) bool {
	for _, s := range lineItemTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

func IsValidLineItemStatus(s LineItemStatus) bool {
	_, ok := lineItemTransitions[s]
	return ok
}

// IsFinished reports whether the item no longer blocks production completion.
func (i *OrderLineItem) IsFinished() bool {
	return i.Status == ItemDone || i.Status == ItemCanceled
}

// UnfinishedStatuses are the statuses auto-completion bulk-updates to done.
func UnfinishedStatuses() []string {
	return []string{string(ItemQueued), string(ItemPrinting), string(ItemFinishing)}
}
