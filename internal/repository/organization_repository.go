package repository

import (
	"print_shop/internal/models"

	"gorm.io/gorm"
)

type OrganizationRepository interface {
	Create(org *models.Organization) error
	GetByID(id uint) (*models.Organization, error)
	GetPreferences(orgID uint) (*models.OrderPreferences, error)
	UpdatePreferences(orgID uint, prefs models.OrderPreferences) error
}

type organizationRepository struct {
	db *gorm.DB
}

func NewOrganizationRepository(db *gorm.DB) OrganizationRepository {
	return &organizationRepository{db: db}
}

func (r *organizationRepository) Create(org *models.Organization) error {
	return r.db.Create(org).Error
}

func (r *organizationRepository) GetByID(id uint) (*models.Organization, error) {
	var org models.Organization
	err := r.db.First(&org, id).Error
	if err != nil {
		return nil, err
	}
	return &org, nil
}

func (r *organizationRepository) GetPreferences(orgID uint) (*models.OrderPreferences, error) {
	org, err := r.GetByID(orgID)
	if err != nil {
		return nil, err
	}
	prefs := org.Preferences
	return &prefs, nil
}

func (r *organizationRepository) UpdatePreferences(orgID uint, prefs models.OrderPreferences) error {
	return r.db.Model(&models.Organization{}).
		Where("id = ?", orgID).
		Updates(map[string]interface{}{
			"pref_require_due_date_for_production":          prefs.RequireDueDateForProduction,
			"pref_require_billing_address_for_production":   prefs.RequireBillingAddressForProduction,
			"pref_require_shipping_address_for_production":  prefs.RequireShippingAddressForProduction,
			"pref_require_all_line_items_done_to_complete":  prefs.RequireAllLineItemsDoneToComplete,
			"pref_allow_completed_order_edits":              prefs.AllowCompletedOrderEdits,
		}).Error
}
