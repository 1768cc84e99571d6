package repository

import (
	"print_shop/internal/models"

	"gorm.io/gorm"
)

type LineItemRepository interface {
	Create(item *models.OrderLineItem) error
	GetByID(orgID, id uint) (*models.OrderLineItem, error)
	GetByOrderID(orgID, orderID uint) ([]models.OrderLineItem, error)
	Update(item *models.OrderLineItem) error
	// BulkUpdateStatus moves every line item of the order whose status is in
	// fromStatuses to toStatus and returns the number of rows changed.
	BulkUpdateStatus(orgID, orderID uint, fromStatuses []string, toStatus models.LineItemStatus) (int64, error)
	WithTx(tx *gorm.DB) LineItemRepository
}

type lineItemRepository struct {
	db *gorm.DB
}

func NewLineItemRepository(db *gorm.DB) LineItemRepository {
	return &lineItemRepository{db: db}
}

func (r *lineItemRepository) WithTx(tx *gorm.DB) LineItemRepository {
	if tx == nil {
		return r
	}
	return &lineItemRepository{db: tx}
}

func (r *lineItemRepository) Create(item *models.OrderLineItem) error {
	return r.db.Create(item).Error
}

func (r *lineItemRepository) GetByID(orgID, id uint) (*models.OrderLineItem, error) {
	var item models.OrderLineItem
	err := r.db.Where("organization_id = ?", orgID).First(&item, id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *lineItemRepository) GetByOrderID(orgID, orderID uint) ([]models.OrderLineItem, error) {
	var items []models.OrderLineItem
	err := r.db.Where("organization_id = ? AND order_id = ?", orgID, orderID).Find(&items).Error
	return items, err
}

func (r *lineItemRepository) Update(item *models.OrderLineItem) error {
	return r.db.Save(item).Error
}

func (r *lineItemRepository) BulkUpdateStatus(orgID, orderID uint, fromStatuses []string, toStatus models.LineItemStatus) (int64, error) {
	res := r.db.Model(&models.OrderLineItem{}).
		Where("organization_id = ? AND order_id = ? AND status IN ?", orgID, orderID, fromStatuses).
		Update("status", toStatus)
	return res.RowsAffected, res.Error
}
