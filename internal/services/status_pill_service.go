package services

import (
	"errors"
	"fmt"

	"print_shop/internal/models"
	"print_shop/internal/repository"

	"gorm.io/gorm"
)

var ErrStatusPillNotFound = errors.New("status pill not found")

type StatusPillService interface {
	List(orgID uint, stateScope string) ([]models.StatusPill, error)
	Create(orgID uint, pill *models.StatusPill, actor models.Actor) error
	Update(orgID uint, pill *models.StatusPill, actor models.Actor) error
	Delete(orgID, pillID uint, actor models.Actor) error
	SetDefault(orgID, pillID uint, actor models.Actor) error
	// Assign sets or clears (value == nil) the pill on an order. Always
	// writes an audit entry, including for a clear.
	Assign(orgID, orderID uint, value *string, actor models.Actor) (*models.Order, error)
}

type statusPillService struct {
	pillRepo    repository.StatusPillRepository
	orderRepo   repository.OrderRepository
	audit       AuditLogger
	preferences PreferenceService
	txManager   repository.TxManager
}

func NewStatusPillService(
	pillRepo repository.StatusPillRepository,
	orderRepo repository.OrderRepository,
	audit AuditLogger,
	preferences PreferenceService,
	txManager repository.TxManager,
) StatusPillService {
	return &statusPillService{
		pillRepo:    pillRepo,
		orderRepo:   orderRepo,
		audit:       audit,
		preferences: preferences,
		txManager:   txManager,
	}
}

func (s *statusPillService) List(orgID uint, stateScope string) ([]models.StatusPill, error) {
	if stateScope == "" {
		return s.pillRepo.GetAll(orgID)
	}
	return s.pillRepo.GetByScope(orgID, stateScope)
}

func (s *statusPillService) Create(orgID uint, pill *models.StatusPill, actor models.Actor) error {
	pill.OrganizationID = orgID
	if pill.StateScope != "" && !models.IsValidState(models.OrderState(pill.StateScope)) {
		return fmt.Errorf("unknown state scope %q", pill.StateScope)
	}
	return s.txManager.InTransaction(func(tx *gorm.DB) error {
		pills := s.pillRepo.WithTx(tx)
		if pill.IsDefault {
			if err := pills.ClearDefault(orgID, pill.StateScope); err != nil {
				return err
			}
		}
		if err := pills.Create(pill); err != nil {
			return err
		}
		return s.recordPillEvent(tx, orgID, pill, "create", actor)
	})
}

func (s *statusPillService) Update(orgID uint, pill *models.StatusPill, actor models.Actor) error {
	if pill.StateScope != "" && !models.IsValidState(models.OrderState(pill.StateScope)) {
		return fmt.Errorf("unknown state scope %q", pill.StateScope)
	}
	existing, err := s.pillRepo.GetByID(orgID, pill.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStatusPillNotFound
		}
		return err
	}
	pill.OrganizationID = existing.OrganizationID
	return s.txManager.InTransaction(func(tx *gorm.DB) error {
		pills := s.pillRepo.WithTx(tx)
		// Clear the target scope when the pill becomes a default there: either
		// it was not a default before, or it is one moving to another scope.
		if pill.IsDefault && (!existing.IsDefault || pill.StateScope != existing.StateScope) {
			if err := pills.ClearDefault(orgID, pill.StateScope); err != nil {
				return err
			}
		}
		if err := pills.Update(pill); err != nil {
			return err
		}
		return s.recordPillEvent(tx, orgID, pill, "update", actor)
	})
}

func (s *statusPillService) Delete(orgID, pillID uint, actor models.Actor) error {
	pill, err := s.pillRepo.GetByID(orgID, pillID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStatusPillNotFound
		}
		return err
	}
	return s.txManager.InTransaction(func(tx *gorm.DB) error {
		if err := s.pillRepo.WithTx(tx).Delete(orgID, pillID); err != nil {
			return err
		}
		return s.recordPillEvent(tx, orgID, pill, "delete", actor)
	})
}

// SetDefault makes the pill the default for its scope, clearing the previous
// default in the same transaction so the single-default invariant holds.
func (s *statusPillService) SetDefault(orgID, pillID uint, actor models.Actor) error {
	pill, err := s.pillRepo.GetByID(orgID, pillID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStatusPillNotFound
		}
		return err
	}
	return s.txManager.InTransaction(func(tx *gorm.DB) error {
		pills := s.pillRepo.WithTx(tx)
		if err := pills.ClearDefault(orgID, pill.StateScope); err != nil {
			return err
		}
		pill.IsDefault = true
		if err := pills.Update(pill); err != nil {
			return err
		}
		return s.recordPillEvent(tx, orgID, pill, "set_default", actor)
	})
}

func (s *statusPillService) Assign(orgID, orderID uint, value *string, actor models.Actor) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orgID, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	// Completed and terminal orders follow the same lock rules as edits.
	if order.Status == models.OrderCompleted || models.IsTerminalState(order.State) {
		prefs, err := s.preferences.Get(orgID)
		if err != nil {
			return nil, err
		}
		if !prefs.AllowCompletedOrderEdits {
			return nil, &TransitionError{Code: CodeOrderLockedSettingDisabled, Message: "completed orders are locked for this organization"}
		}
		if !models.IsElevatedRole(actor.Role) {
			return nil, &TransitionError{Code: CodeOrderLocked, Message: "completed orders may only be edited by a manager or admin"}
		}
	}

	newValue := ""
	if value != nil {
		pill, err := s.pillRepo.GetByValue(orgID, *value)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrStatusPillNotFound
			}
			return nil, err
		}
		if !pill.AppliesTo(order.State) {
			return nil, fmt.Errorf("pill %q does not apply to state %s", pill.Value, order.State)
		}
		newValue = pill.Value
	}

	var updated *models.Order
	err = s.txManager.InTransaction(func(tx *gorm.DB) error {
		orders := s.orderRepo.WithTx(tx)
		locked, err := orders.GetForUpdate(orgID, orderID)
		if err != nil {
			return err
		}
		previous := locked.StatusPillValue
		locked.StatusPillValue = newValue
		if err := orders.Update(locked); err != nil {
			return err
		}
		if err := s.audit.WithTx(tx).RecordOrderEvent(&models.OrderAuditLog{
			OrganizationID: orgID,
			OrderID:        orderID,
			ActorUserID:    actor.UserID,
			ActorUserName:  actor.Name,
			ActionType:     models.ActionStatusPillChange,
			Metadata: auditMetadata(map[string]interface{}{
				"from_pill": previous,
				"to_pill":   newValue,
			}),
		}); err != nil {
			return err
		}
		updated = locked
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *statusPillService) recordPillEvent(tx *gorm.DB, orgID uint, pill *models.StatusPill, action string, actor models.Actor) error {
	return s.audit.WithTx(tx).RecordEntityEvent(&models.EntityAuditLog{
		OrganizationID: orgID,
		EntityType:     "status_pill",
		EntityID:       pill.ID,
		Action:         action,
		ActorUserID:    actor.UserID,
		ActorUserName:  actor.Name,
		Metadata: auditMetadata(map[string]interface{}{
			"value":       pill.Value,
			"state_scope": pill.StateScope,
			"is_default":  pill.IsDefault,
		}),
	})
}
