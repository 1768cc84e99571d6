package services

import (
	"fmt"
	"log"
	"strings"

	"print_shop/internal/models"
	"print_shop/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DeductionResult is the outcome of a stock deduction pass. It deliberately
// has no fatal arm: a deduction can succeed fully or surface a warning, but
// it can never abort the transition that triggered it.
type DeductionResult struct {
	Deducted      int    `json:"deducted"`
	CorrelationID string `json:"correlation_id"`
	Warning       string `json:"warning,omitempty"`
}

// OK reports whether the whole pass succeeded.
func (r DeductionResult) OK() bool {
	return r.Warning == ""
}

type InventoryService interface {
	// DeductForOrder consumes material stock for each line item of an order
	// entering production. Best effort per line: a failed line is skipped and
	// reported in the warning while the remaining lines still deduct.
	DeductForOrder(tx *gorm.DB, orgID uint, order *models.Order, items []models.OrderLineItem, actorUserID uint) DeductionResult

	CreateMaterial(orgID uint, material *models.Material, actor models.Actor) error
	ListMaterials(orgID uint) ([]models.Material, error)
	AdjustStock(orgID, materialID uint, delta decimal.Decimal, reason string, actor models.Actor) (*models.Material, error)
	MovementsForOrder(orgID, orderID uint) ([]models.InventoryMovement, error)
}

type inventoryService struct {
	inventoryRepo repository.InventoryRepository
	audit         AuditLogger
	txManager     repository.TxManager
}

func NewInventoryService(inventoryRepo repository.InventoryRepository, audit AuditLogger, txManager repository.TxManager) InventoryService {
	return &inventoryService{inventoryRepo: inventoryRepo, audit: audit, txManager: txManager}
}

func (s *inventoryService) DeductForOrder(tx *gorm.DB, orgID uint, order *models.Order, items []models.OrderLineItem, actorUserID uint) DeductionResult {
	repo := s.inventoryRepo.WithTx(tx)
	result := DeductionResult{CorrelationID: uuid.New().String()}

	var problems []string
	for _, item := range items {
		if item.MaterialID == nil || item.MaterialQty.IsZero() || item.Status == models.ItemCanceled {
			continue
		}

		material, err := repo.GetMaterialForUpdate(orgID, *item.MaterialID)
		if err != nil {
			problems = append(problems, fmt.Sprintf("line %d: material %d not found", item.ID, *item.MaterialID))
			continue
		}
		if material.StockOnHand.LessThan(item.MaterialQty) {
			problems = append(problems, fmt.Sprintf("line %d: insufficient stock of %s (need %s, have %s)",
				item.ID, material.Code, item.MaterialQty, material.StockOnHand))
			continue
		}

		material.StockOnHand = material.StockOnHand.Sub(item.MaterialQty)
		if err := repo.UpdateMaterial(material); err != nil {
			problems = append(problems, fmt.Sprintf("line %d: %v", item.ID, err))
			continue
		}

		movement := &models.InventoryMovement{
			ID:             uuid.New().String(),
			OrganizationID: orgID,
			MaterialID:     material.ID,
			QtyDelta:       item.MaterialQty.Neg(),
			Reason:         models.MovementProductionDeduction,
			OrderID:        order.ID,
			LineItemID:     item.ID,
			ActorUserID:    actorUserID,
			CorrelationID:  result.CorrelationID,
		}
		if err := repo.CreateMovement(movement); err != nil {
			problems = append(problems, fmt.Sprintf("line %d: %v", item.ID, err))
			continue
		}
		result.Deducted++
	}

	if len(problems) > 0 {
		result.Warning = "inventory deduction incomplete: " + strings.Join(problems, "; ")
		log.Printf("order %d: %s", order.ID, result.Warning)
	}
	return result
}

func (s *inventoryService) CreateMaterial(orgID uint, material *models.Material, actor models.Actor) error {
	material.OrganizationID = orgID
	return s.txManager.InTransaction(func(tx *gorm.DB) error {
		if err := s.inventoryRepo.WithTx(tx).CreateMaterial(material); err != nil {
			return err
		}
		return s.audit.WithTx(tx).RecordEntityEvent(&models.EntityAuditLog{
			OrganizationID: orgID,
			EntityType:     "material",
			EntityID:       material.ID,
			Action:         "create",
			ActorUserID:    actor.UserID,
			ActorUserName:  actor.Name,
			Metadata:       auditMetadata(map[string]interface{}{"code": material.Code}),
		})
	})
}

func (s *inventoryService) ListMaterials(orgID uint) ([]models.Material, error) {
	return s.inventoryRepo.GetAllMaterials(orgID)
}

func (s *inventoryService) AdjustStock(orgID, materialID uint, delta decimal.Decimal, reason string, actor models.Actor) (*models.Material, error) {
	var adjusted *models.Material
	err := s.txManager.InTransaction(func(tx *gorm.DB) error {
		repo := s.inventoryRepo.WithTx(tx)
		material, err := repo.GetMaterialForUpdate(orgID, materialID)
		if err != nil {
			return err
		}
		next := material.StockOnHand.Add(delta)
		if next.IsNegative() {
			return fmt.Errorf("adjustment would drive %s stock below zero", material.Code)
		}
		material.StockOnHand = next
		if err := repo.UpdateMaterial(material); err != nil {
			return err
		}

		movementReason := models.MovementManualAdjust
		if delta.IsPositive() {
			movementReason = models.MovementInbound
		}
		if err := repo.CreateMovement(&models.InventoryMovement{
			ID:             uuid.New().String(),
			OrganizationID: orgID,
			MaterialID:     material.ID,
			QtyDelta:       delta,
			Reason:         movementReason,
			ActorUserID:    actor.UserID,
			Note:           reason,
		}); err != nil {
			return err
		}
		adjusted = material
		return nil
	})
	if err != nil {
		return nil, err
	}
	return adjusted, nil
}

func (s *inventoryService) MovementsForOrder(orgID, orderID uint) ([]models.InventoryMovement, error) {
	return s.inventoryRepo.GetMovementsByOrder(orgID, orderID)
}
