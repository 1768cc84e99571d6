package migrations

import (
	"log"

	"print_shop/internal/models"
	"print_shop/internal/repository"
	"print_shop/internal/services"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SeedDefaults creates a default organization, admin user, status pills, and
// a couple of stock materials so a fresh install is usable immediately.
func SeedDefaults(db *gorm.DB) error {
	log.Println("Seeding default data...")

	orgRepo := repository.NewOrganizationRepository(db)
	userRepo := repository.NewUserRepository(db)
	userService := services.NewUserService(userRepo)
	pillRepo := repository.NewStatusPillRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)

	// Check if the default admin already exists
	if existing, err := userService.GetUserByUsername("admin"); err == nil && existing != nil {
		log.Println("Default admin user already exists, skipping seed")
		return nil
	}

	org := &models.Organization{
		Name: "Default Print Shop",
		Preferences: models.OrderPreferences{
			RequireAllLineItemsDoneToComplete: true,
		},
		IsActive: true,
	}
	if err := orgRepo.Create(org); err != nil {
		return err
	}

	admin := &models.User{
		OrganizationID: org.ID,
		Username:       "admin",
		Email:          "admin@example.com",
		Name:           "Administrator",
		Role:           models.RoleAdmin,
		IsActive:       true,
	}
	if err := userService.CreateUser(admin, "admin123"); err != nil {
		log.Printf("Warning: failed to create default admin user: %v", err)
	} else {
		log.Println("Default admin user created (username: admin)")
	}

	pills := []models.StatusPill{
		{OrganizationID: org.ID, Value: "rush", Color: "#e53935", StateScope: string(models.StateOpen), IsDefault: false, SortOrder: 1},
		{OrganizationID: org.ID, Value: "awaiting_proof", Color: "#fb8c00", StateScope: string(models.StateOpen), IsDefault: true, SortOrder: 2},
		{OrganizationID: org.ID, Value: "ready_for_pickup", Color: "#43a047", StateScope: string(models.StateProductionComplete), IsDefault: false, SortOrder: 3},
	}
	for i := range pills {
		if err := pillRepo.Create(&pills[i]); err != nil {
			log.Printf("Warning: failed to seed status pill %q: %v", pills[i].Value, err)
		}
	}

	materials := []models.Material{
		{OrganizationID: org.ID, Code: "PAPER-A4-80", Name: "A4 80gsm paper", Unit: "sheet", StockOnHand: decimal.NewFromInt(5000)},
		{OrganizationID: org.ID, Code: "INK-CMYK", Name: "CMYK ink set", Unit: "ml", StockOnHand: decimal.NewFromInt(2000)},
	}
	for i := range materials {
		if err := inventoryRepo.CreateMaterial(&materials[i]); err != nil {
			log.Printf("Warning: failed to seed material %q: %v", materials[i].Code, err)
		}
	}

	log.Println("Default data seeded successfully")
	return nil
}
