package services

import (
	"encoding/json"

	"print_shop/internal/models"
	"print_shop/internal/repository"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AuditLogger records every mutation. It is append-only: neither it nor the
// repository beneath it exposes an update or delete. Callers that mutate
// inside a transaction must use WithTx so the audit write commits with the
// mutation it describes.
type AuditLogger interface {
	RecordOrderEvent(entry *models.OrderAuditLog) error
	RecordEntityEvent(entry *models.EntityAuditLog) error
	OrderTrail(orgID, orderID uint) ([]models.OrderAuditLog, error)
	CountOrderEvents(orgID, orderID uint, actionType string) (int64, error)
	WithTx(tx *gorm.DB) AuditLogger
}

type auditLogger struct {
	auditRepo repository.AuditLogRepository
}

func NewAuditLogger(auditRepo repository.AuditLogRepository) AuditLogger {
	return &auditLogger{auditRepo: auditRepo}
}

func (l *auditLogger) WithTx(tx *gorm.DB) AuditLogger {
	if tx == nil {
		return l
	}
	return &auditLogger{auditRepo: l.auditRepo.WithTx(tx)}
}

func (l *auditLogger) RecordOrderEvent(entry *models.OrderAuditLog) error {
	return l.auditRepo.CreateOrderEntry(entry)
}

func (l *auditLogger) RecordEntityEvent(entry *models.EntityAuditLog) error {
	return l.auditRepo.CreateEntityEntry(entry)
}

func (l *auditLogger) OrderTrail(orgID, orderID uint) ([]models.OrderAuditLog, error) {
	return l.auditRepo.GetByOrderID(orgID, orderID)
}

func (l *auditLogger) CountOrderEvents(orgID, orderID uint, actionType string) (int64, error) {
	return l.auditRepo.CountByAction(orgID, orderID, actionType)
}

// auditMetadata marshals structured metadata for an audit entry. A marshal
// failure degrades to an empty object rather than blocking the mutation.
func auditMetadata(fields map[string]interface{}) datatypes.JSON {
	if len(fields) == 0 {
		return nil
	}
	raw, err := json.Marshal(fields)
	if err != nil {
		return datatypes.JSON([]byte(`{}`))
	}
	return datatypes.JSON(raw)
}
