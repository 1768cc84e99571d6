package models

import (
	"time"

	"gorm.io/datatypes"
)

// Order audit action types.
const (
	ActionStatusTransition         = "status_transition"
	ActionPriorityChange           = "priority_change"
	ActionBulkLineItemStatusUpdate = "bulk_line_item_status_update"
	ActionLineItemStatusUpdate     = "line_item_status_update"
	ActionStatusPillChange         = "status_pill_change"
	ActionFulfillmentChange        = "fulfillment_change"
	ActionOrderCreated             = "order_created"
)

// OrderAuditLog is the order-specific operational audit trail. Entries are
// append-only: there is no update or delete path anywhere in the repository.
type OrderAuditLog struct {
	ID             uint           `json:"id" gorm:"primaryKey"`
	OrganizationID uint           `json:"organization_id" gorm:"not null;index"`
	OrderID        uint           `json:"order_id" gorm:"not null;index"`
	ActorUserID    uint           `json:"actor_user_id"`
	ActorUserName  string         `json:"actor_user_name"`
	ActionType     string         `json:"action_type" gorm:"not null;index"`
	FromStatus     string         `json:"from_status"`
	ToStatus       string         `json:"to_status"`
	Note           string         `json:"note" gorm:"type:text"`
	Metadata       datatypes.JSON `json:"metadata"`
	CreatedAt      time.Time      `json:"created_at"`
}

// EntityAuditLog is the generic cross-entity audit trail used by every
// mutating route outside the state machine.
type EntityAuditLog struct {
	ID             uint           `json:"id" gorm:"primaryKey"`
	OrganizationID uint           `json:"organization_id" gorm:"not null;index"`
	EntityType     string         `json:"entity_type" gorm:"not null;index"`
	EntityID       uint           `json:"entity_id" gorm:"not null"`
	Action         string         `json:"action" gorm:"not null"` // create, update, delete
	ActorUserID    uint           `json:"actor_user_id"`
	ActorUserName  string         `json:"actor_user_name"`
	Metadata       datatypes.JSON `json:"metadata"`
	CreatedAt      time.Time      `json:"created_at"`
}
