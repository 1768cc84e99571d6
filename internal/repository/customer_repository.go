package repository

import (
	"print_shop/internal/models"

	"gorm.io/gorm"
)

type CustomerRepository interface {
	Create(customer *models.Customer) error
	GetByID(orgID, id uint) (*models.Customer, error)
	GetAll(orgID uint) ([]models.Customer, error)
	Update(customer *models.Customer) error
}

type customerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(customer *models.Customer) error {
	return r.db.Create(customer).Error
}

func (r *customerRepository) GetByID(orgID, id uint) (*models.Customer, error) {
	var customer models.Customer
	err := r.db.Where("organization_id = ?", orgID).First(&customer, id).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) GetAll(orgID uint) ([]models.Customer, error) {
	var customers []models.Customer
	err := r.db.Where("organization_id = ?", orgID).Find(&customers).Error
	return customers, err
}

func (r *customerRepository) Update(customer *models.Customer) error {
	return r.db.Save(customer).Error
}
