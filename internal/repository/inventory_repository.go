package repository

import (
	"print_shop/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type InventoryRepository interface {
	CreateMaterial(material *models.Material) error
	GetMaterial(orgID, id uint) (*models.Material, error)
	GetMaterialForUpdate(orgID, id uint) (*models.Material, error)
	GetAllMaterials(orgID uint) ([]models.Material, error)
	UpdateMaterial(material *models.Material) error
	CreateMovement(movement *models.InventoryMovement) error
	GetMovementsByOrder(orgID, orderID uint) ([]models.InventoryMovement, error)
	WithTx(tx *gorm.DB) InventoryRepository
}

type inventoryRepository struct {
	db *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) InventoryRepository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) WithTx(tx *gorm.DB) InventoryRepository {
	if tx == nil {
		return r
	}
	return &inventoryRepository{db: tx}
}

func (r *inventoryRepository) CreateMaterial(material *models.Material) error {
	return r.db.Create(material).Error
}

func (r *inventoryRepository) GetMaterial(orgID, id uint) (*models.Material, error) {
	var material models.Material
	err := r.db.Where("organization_id = ?", orgID).First(&material, id).Error
	if err != nil {
		return nil, err
	}
	return &material, nil
}

func (r *inventoryRepository) GetMaterialForUpdate(orgID, id uint) (*models.Material, error) {
	var material models.Material
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("organization_id = ?", orgID).First(&material, id).Error
	if err != nil {
		return nil, err
	}
	return &material, nil
}

func (r *inventoryRepository) GetAllMaterials(orgID uint) ([]models.Material, error) {
	var materials []models.Material
	err := r.db.Where("organization_id = ?", orgID).Order("code ASC").Find(&materials).Error
	return materials, err
}

func (r *inventoryRepository) UpdateMaterial(material *models.Material) error {
	return r.db.Save(material).Error
}

func (r *inventoryRepository) CreateMovement(movement *models.InventoryMovement) error {
	return r.db.Create(movement).Error
}

func (r *inventoryRepository) GetMovementsByOrder(orgID, orderID uint) ([]models.InventoryMovement, error) {
	var movements []models.InventoryMovement
	err := r.db.Where("organization_id = ? AND order_id = ?", orgID, orderID).
		Order("created_at ASC").Find(&movements).Error
	return movements, err
}
