package models

import (
	"time"

	"gorm.io/gorm"
)

// StatusPill is an organization-defined badge, orthogonal to the lifecycle
// state. StateScope limits which canonical states it may be applied to; an
// empty scope means any state. At most one pill per (organization, scope) is
// the default.
type StatusPill struct {
	ID             uint           `json:"id" gorm:"primaryKey"`
	OrganizationID uint           `json:"organization_id" gorm:"not null;uniqueIndex:idx_pills_org_value"`
	Value          string         `json:"value" gorm:"not null;uniqueIndex:idx_pills_org_value"`
	Color          string         `json:"color"`
	StateScope     string         `json:"state_scope"`
	IsDefault      bool           `json:"is_default" gorm:"default:false"`
	SortOrder      int            `json:"sort_order" gorm:"default:0"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

// AppliesTo reports whether the pill may be assigned to an order in the
// given canonical state.
func (p *StatusPill) AppliesTo(state OrderState) bool {
	return p.StateScope == "" || p.StateScope == string(state)
}
