package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Material is a sellable or consumable stock item (paper, ink, substrate).
type Material struct {
	ID             uint            `json:"id" gorm:"primaryKey"`
	OrganizationID uint            `json:"organization_id" gorm:"not null;uniqueIndex:idx_materials_org_code"`
	Code           string          `json:"code" gorm:"not null;uniqueIndex:idx_materials_org_code"`
	Name           string          `json:"name" gorm:"not null"`
	Unit           string          `json:"unit" gorm:"default:'pcs'"`
	StockOnHand    decimal.Decimal `json:"stock_on_hand" gorm:"type:decimal(20,4);not null;default:0"`
	ReorderLevel   decimal.Decimal `json:"reorder_level" gorm:"type:decimal(20,4);default:0"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	DeletedAt      gorm.DeletedAt  `json:"deleted_at" gorm:"index"`
}

// Inventory movement reasons.
const (
	MovementProductionDeduction = "production_deduction"
	MovementManualAdjust        = "manual_adjust"
	MovementInbound             = "inbound"
)

// InventoryMovement is the append-only stock ledger. Negative deltas are
// consumption. CorrelationID groups the movements written by one deduction
// pass over an order.
type InventoryMovement struct {
	ID             string          `json:"id" gorm:"size:36;primaryKey"` // uuid
	OrganizationID uint            `json:"organization_id" gorm:"not null;index"`
	MaterialID     uint            `json:"material_id" gorm:"not null;index"`
	QtyDelta       decimal.Decimal `json:"qty_delta" gorm:"type:decimal(20,4);not null"`
	Reason         string          `json:"reason" gorm:"not null"`
	OrderID        uint            `json:"order_id" gorm:"index"`
	LineItemID     uint            `json:"line_item_id"`
	ActorUserID    uint            `json:"actor_user_id"`
	CorrelationID  string          `json:"correlation_id" gorm:"size:64;index"`
	Note           string          `json:"note"`
	CreatedAt      time.Time       `json:"created_at" gorm:"autoCreateTime"`
}
