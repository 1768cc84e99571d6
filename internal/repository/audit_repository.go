package repository

import (
	"print_shop/internal/models"

	"gorm.io/gorm"
)

// AuditLogRepository is append-only: it exposes no update or delete methods.
type AuditLogRepository interface {
	CreateOrderEntry(entry *models.OrderAuditLog) error
	CreateEntityEntry(entry *models.EntityAuditLog) error
	GetByOrderID(orgID, orderID uint) ([]models.OrderAuditLog, error)
	CountByAction(orgID, orderID uint, actionType string) (int64, error)
	WithTx(tx *gorm.DB) AuditLogRepository
}

type auditLogRepository struct {
	db *gorm.DB
}

func NewAuditLogRepository(db *gorm.DB) AuditLogRepository {
	return &auditLogRepository{db: db}
}

func (r *auditLogRepository) WithTx(tx *gorm.DB) AuditLogRepository {
	if tx == nil {
		return r
	}
	return &auditLogRepository{db: tx}
}

func (r *auditLogRepository) CreateOrderEntry(entry *models.OrderAuditLog) error {
	return r.db.Create(entry).Error
}

func (r *auditLogRepository) CreateEntityEntry(entry *models.EntityAuditLog) error {
	return r.db.Create(entry).Error
}

func (r *auditLogRepository) GetByOrderID(orgID, orderID uint) ([]models.OrderAuditLog, error) {
	var entries []models.OrderAuditLog
	err := r.db.Where("organization_id = ? AND order_id = ?", orgID, orderID).
		Order("created_at ASC, id ASC").Find(&entries).Error
	return entries, err
}

func (r *auditLogRepository) CountByAction(orgID, orderID uint, actionType string) (int64, error) {
	var count int64
	err := r.db.Model(&models.OrderAuditLog{}).
		Where("organization_id = ? AND order_id = ? AND action_type = ?", orgID, orderID, actionType).
		Count(&count).Error
	return count, err
}
