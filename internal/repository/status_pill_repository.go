package repository

import (
	"print_shop/internal/models"

	"gorm.io/gorm"
)

type StatusPillRepository interface {
	Create(pill *models.StatusPill) error
	GetByID(orgID, id uint) (*models.StatusPill, error)
	GetByValue(orgID uint, value string) (*models.StatusPill, error)
	GetAll(orgID uint) ([]models.StatusPill, error)
	GetByScope(orgID uint, stateScope string) ([]models.StatusPill, error)
	Update(pill *models.StatusPill) error
	Delete(orgID, id uint) error
	// ClearDefault removes the default flag from every pill in the scope so
	// at most one default per (organization, scope) can exist.
	ClearDefault(orgID uint, stateScope string) error
	WithTx(tx *gorm.DB) StatusPillRepository
}

type statusPillRepository struct {
	db *gorm.DB
}

func NewStatusPillRepository(db *gorm.DB) StatusPillRepository {
	return &statusPillRepository{db: db}
}

func (r *statusPillRepository) WithTx(tx *gorm.DB) StatusPillRepository {
	if tx == nil {
		return r
	}
	return &statusPillRepository{db: tx}
}

func (r *statusPillRepository) Create(pill *models.StatusPill) error {
	return r.db.Create(pill).Error
}

func (r *statusPillRepository) GetByID(orgID, id uint) (*models.StatusPill, error) {
	var pill models.StatusPill
	err := r.db.Where("organization_id = ?", orgID).First(&pill, id).Error
	if err != nil {
		return nil, err
	}
	return &pill, nil
}

func (r *statusPillRepository) GetByValue(orgID uint, value string) (*models.StatusPill, error) {
	var pill models.StatusPill
	err := r.db.Where("organization_id = ? AND value = ?", orgID, value).First(&pill).Error
	if err != nil {
		return nil, err
	}
	return &pill, nil
}

func (r *statusPillRepository) GetAll(orgID uint) ([]models.StatusPill, error) {
	var pills []models.StatusPill
	err := r.db.Where("organization_id = ?", orgID).Order("sort_order ASC, value ASC").Find(&pills).Error
	return pills, err
}

func (r *statusPillRepository) GetByScope(orgID uint, stateScope string) ([]models.StatusPill, error) {
	var pills []models.StatusPill
	err := r.db.Where("organization_id = ? AND (state_scope = ? OR state_scope = '')", orgID, stateScope).
		Order("sort_order ASC, value ASC").Find(&pills).Error
	return pills, err
}

func (r *statusPillRepository) Update(pill *models.StatusPill) error {
	return r.db.Save(pill).Error
}

func (r *statusPillRepository) Delete(orgID, id uint) error {
	return r.db.Where("organization_id = ?", orgID).Delete(&models.StatusPill{}, id).Error
}

func (r *statusPillRepository) ClearDefault(orgID uint, stateScope string) error {
	return r.db.Model(&models.StatusPill{}).
		Where("organization_id = ? AND state_scope = ? AND is_default = ?", orgID, stateScope, true).
		Update("is_default", false).Error
}
