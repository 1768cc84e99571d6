package repository

import (
	"print_shop/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OrderRepository persists the Order aggregate. Every accessor is scoped by
// organization id; a cross-tenant id resolves to gorm.ErrRecordNotFound.
type OrderRepository interface {
	Create(order *models.Order) error
	GetByID(orgID, id uint) (*models.Order, error)
	GetForUpdate(orgID, id uint) (*models.Order, error)
	GetAll(orgID uint) ([]models.Order, error)
	GetByStatus(orgID uint, status models.OrderStatus) ([]models.Order, error)
	Update(order *models.Order) error
	CountAttachments(orgID, orderID uint) (int64, error)
	CountOpenJobs(orgID, orderID uint) (int64, error)
	WithTx(tx *gorm.DB) OrderRepository
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) WithTx(tx *gorm.DB) OrderRepository {
	if tx == nil {
		return r
	}
	return &orderRepository{db: tx}
}

func (r *orderRepository) Create(order *models.Order) error {
	return r.db.Create(order).Error
}

func (r *orderRepository) GetByID(orgID, id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.Where("organization_id = ?", orgID).First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// GetForUpdate takes a row lock so a concurrent transition on the same order
// blocks until this transaction finishes.
func (r *orderRepository) GetForUpdate(orgID, id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("organization_id = ?", orgID).First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetAll(orgID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Where("organization_id = ?", orgID).Order("created_at DESC").Find(&orders).Error
	return orders, err
}

func (r *orderRepository) GetByStatus(orgID uint, status models.OrderStatus) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Where("organization_id = ? AND status = ?", orgID, status).Find(&orders).Error
	return orders, err
}

func (r *orderRepository) Update(order *models.Order) error {
	return r.db.Save(order).Error
}

func (r *orderRepository) CountAttachments(orgID, orderID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.OrderAttachment{}).
		Where("organization_id = ? AND order_id = ?", orgID, orderID).Count(&count).Error
	return count, err
}

func (r *orderRepository) CountOpenJobs(orgID, orderID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.ProductionJob{}).
		Where("organization_id = ? AND order_id = ? AND status = ?", orgID, orderID, models.JobOpen).
		Count(&count).Error
	return count, err
}
