package services

import (
	"errors"
	"time"

	"print_shop/internal/models"
	"print_shop/internal/repository"

	"gorm.io/gorm"
)

// ErrOrderNotFound covers both a missing order and a cross-tenant reference;
// the two are deliberately indistinguishable to the caller.
var ErrOrderNotFound = errors.New("order not found")

// TransitionError is a validation rejection. It carries the stable code and
// never indicates an infrastructure failure; nothing was mutated.
type TransitionError struct {
	Code           string `json:"code"`
	Message        string `json:"message"`
	RemainingCount int    `json:"remaining_count,omitempty"`
	CanOverride    bool   `json:"can_override,omitempty"`
}

func (e *TransitionError) Error() string {
	return e.Message
}

func rejectionError(res ValidationResult) *TransitionError {
	return &TransitionError{
		Code:           res.Code,
		Message:        res.Message,
		RemainingCount: res.RemainingCount,
		CanOverride:    res.CanOverride,
	}
}

// TransitionResult is the outcome of a successful transition.
type TransitionResult struct {
	Order           *models.Order `json:"order"`
	Warnings        []string      `json:"warnings,omitempty"`
	DidAutoMark     bool          `json:"did_auto_mark"`
	AutoMarkedCount int           `json:"auto_marked_count"`
}

// OrderStateService is the only path that mutates order lifecycle state.
// Every transition validates first, then applies the order update, line-item
// cascade, inventory deduction, and audit entry inside one transaction.
type OrderStateService interface {
	Transition(orgID, orderID uint, toStatus models.OrderStatus, reason string, actor models.Actor) (*TransitionResult, error)
	TransitionState(orgID, orderID uint, nextState models.OrderState, notes string, actor models.Actor) (*TransitionResult, error)
	CompleteProduction(orgID, orderID uint, autoMarkRemainingDone bool, actor models.Actor) (*TransitionResult, error)
	SetFulfillmentStatus(orgID, orderID uint, fulfillment models.FulfillmentStatus, actor models.Actor) (*models.Order, error)
}

type orderStateService struct {
	orderRepo    repository.OrderRepository
	lineItemRepo repository.LineItemRepository
	audit        AuditLogger
	preferences  PreferenceService
	inventory    InventoryService
	validator    *TransitionValidator
	txManager    repository.TxManager
}

func NewOrderStateService(
	orderRepo repository.OrderRepository,
	lineItemRepo repository.LineItemRepository,
	audit AuditLogger,
	preferences PreferenceService,
	inventory InventoryService,
	validator *TransitionValidator,
	txManager repository.TxManager,
) OrderStateService {
	return &orderStateService{
		orderRepo:    orderRepo,
		lineItemRepo: lineItemRepo,
		audit:        audit,
		preferences:  preferences,
		inventory:    inventory,
		validator:    validator,
		txManager:    txManager,
	}
}

// buildContext resolves everything the validator needs for one decision.
func (s *orderStateService) buildContext(order *models.Order, items []models.OrderLineItem, actor models.Actor, autoMark bool) (TransitionContext, error) {
	prefs, err := s.preferences.Get(order.OrganizationID)
	if err != nil {
		return TransitionContext{}, err
	}

	unfinished := 0
	for _, item := range items {
		if !item.IsFinished() {
			unfinished++
		}
	}

	attachments, err := s.orderRepo.CountAttachments(order.OrganizationID, order.ID)
	if err != nil {
		return TransitionContext{}, err
	}
	openJobs, err := s.orderRepo.CountOpenJobs(order.OrganizationID, order.ID)
	if err != nil {
		return TransitionContext{}, err
	}

	return TransitionContext{
		Preferences:             *prefs,
		LineItemCount:           len(items),
		UnfinishedLineItemCount: unfinished,
		AttachmentCount:         attachments,
		OpenJobCount:            openJobs,
		FulfillmentStatus:       order.FulfillmentStatus,
		HasDueDate:              order.DueDate != nil,
		HasBillingAddress:       order.HasBillingSnapshot(),
		HasShippingAddress:      order.HasShippingSnapshot(),
		ShippedAtSet:            order.ShippedAt != nil,
		ActorRole:               actor.Role,
		AutoMarkRemainingDone:   autoMark,
	}, nil
}

func (s *orderStateService) loadOrder(orgID, orderID uint) (*models.Order, []models.OrderLineItem, error) {
	order, err := s.orderRepo.GetByID(orgID, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrOrderNotFound
		}
		return nil, nil, err
	}
	items, err := s.lineItemRepo.GetByOrderID(orgID, orderID)
	if err != nil {
		return nil, nil, err
	}
	return order, items, nil
}

// applyStatus writes both lifecycle columns plus the derived fields. The
// legacy column is never written anywhere else.
func applyStatus(order *models.Order, toStatus models.OrderStatus, now time.Time) {
	order.Status = toStatus
	order.State = models.LegacyToCanonical(toStatus)
	order.RoutingTarget = models.RoutingTargetFor(order.ShippingMethod)

	// Milestones are set exactly once, by the transition that reaches them.
	switch toStatus {
	case models.OrderInProduction:
		if order.StartedProductionAt == nil {
			order.StartedProductionAt = &now
		}
	case models.OrderCompleted:
		if order.ProductionCompletedAt == nil {
			order.ProductionCompletedAt = &now
		}
	case models.OrderShipped:
		if order.ShippedAt == nil {
			order.ShippedAt = &now
		}
	}
}

func (s *orderStateService) Transition(orgID, orderID uint, toStatus models.OrderStatus, reason string, actor models.Actor) (*TransitionResult, error) {
	return s.transition(orgID, orderID, toStatus, reason, actor, false)
}

// CompleteProduction moves the order to completed, optionally bulk-marking
// the remaining line items done inside the same transaction.
func (s *orderStateService) CompleteProduction(orgID, orderID uint, autoMarkRemainingDone bool, actor models.Actor) (*TransitionResult, error) {
	return s.transition(orgID, orderID, models.OrderCompleted, "production complete", actor, autoMarkRemainingDone)
}

func (s *orderStateService) transition(orgID, orderID uint, toStatus models.OrderStatus, reason string, actor models.Actor, autoMark bool) (*TransitionResult, error) {
	order, items, err := s.loadOrder(orgID, orderID)
	if err != nil {
		return nil, err
	}

	tc, err := s.buildContext(order, items, actor, autoMark)
	if err != nil {
		return nil, err
	}

	// The terminal guard and all policy checks run before the transaction
	// opens; a rejection mutates nothing.
	verdict := s.validator.Validate(order.Status, toStatus, tc)
	if !verdict.OK {
		return nil, rejectionError(verdict)
	}

	result := &TransitionResult{Warnings: verdict.Warnings}
	fromStatus := order.Status

	err = s.txManager.InTransaction(func(tx *gorm.DB) error {
		orders := s.orderRepo.WithTx(tx)

		// Re-read under a row lock. Note: validation above ran against the
		// unlocked read, so two raced requests can both pass validation and
		// serialize only here; the second writer wins. Closing that window
		// needs a version column checked on update.
		locked, err := orders.GetForUpdate(orgID, orderID)
		if err != nil {
			return err
		}

		// Inventory deduction on entry into production. Fail-soft: a
		// deduction problem becomes a warning, never a rollback.
		if toStatus == models.OrderInProduction && fromStatus == models.OrderNew {
			deduction := s.inventory.DeductForOrder(tx, orgID, locked, items, actor.UserID)
			if !deduction.OK() {
				result.Warnings = append(result.Warnings, deduction.Warning)
			}
		}

		// Line-item cascade for opted-in auto-completion. The flag only acts
		// when the organization requires all items done; with the preference
		// off there is nothing to override and the cascade is a no-op.
		if toStatus == models.OrderCompleted && autoMark &&
			tc.Preferences.RequireAllLineItemsDoneToComplete && tc.UnfinishedLineItemCount > 0 {
			n, err := s.lineItemRepo.WithTx(tx).BulkUpdateStatus(orgID, orderID, models.UnfinishedStatuses(), models.ItemDone)
			if err != nil {
				return err
			}
			result.DidAutoMark = n > 0
			result.AutoMarkedCount = int(n)
		}

		applyStatus(locked, toStatus, time.Now())
		if err := orders.Update(locked); err != nil {
			return err
		}

		meta := map[string]interface{}{}
		if len(result.Warnings) > 0 {
			meta["warnings"] = result.Warnings
		}
		if result.DidAutoMark {
			meta["auto_marked_count"] = result.AutoMarkedCount
		}
		if err := s.audit.WithTx(tx).RecordOrderEvent(&models.OrderAuditLog{
			OrganizationID: orgID,
			OrderID:        orderID,
			ActorUserID:    actor.UserID,
			ActorUserName:  actor.Name,
			ActionType:     models.ActionStatusTransition,
			FromStatus:     string(fromStatus),
			ToStatus:       string(toStatus),
			Note:           reason,
			Metadata:       auditMetadata(meta),
		}); err != nil {
			return err
		}

		result.Order = locked
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *orderStateService) TransitionState(orgID, orderID uint, nextState models.OrderState, notes string, actor models.Actor) (*TransitionResult, error) {
	order, items, err := s.loadOrder(orgID, orderID)
	if err != nil {
		return nil, err
	}

	tc, err := s.buildContext(order, items, actor, false)
	if err != nil {
		return nil, err
	}

	verdict := s.validator.ValidateState(order.State, nextState, tc)
	if !verdict.OK {
		return nil, rejectionError(verdict)
	}

	result := &TransitionResult{Warnings: verdict.Warnings}
	fromState := order.State

	err = s.txManager.InTransaction(func(tx *gorm.DB) error {
		orders := s.orderRepo.WithTx(tx)
		locked, err := orders.GetForUpdate(orgID, orderID)
		if err != nil {
			return err
		}

		// The canonical state drives the legacy column through the single
		// mapping function; callers can never set the legacy value directly.
		applyStatus(locked, models.CanonicalToLegacy(nextState), time.Now())
		locked.State = nextState
		if err := orders.Update(locked); err != nil {
			return err
		}

		meta := map[string]interface{}{"axis": "canonical"}
		if len(result.Warnings) > 0 {
			meta["warnings"] = result.Warnings
		}
		if err := s.audit.WithTx(tx).RecordOrderEvent(&models.OrderAuditLog{
			OrganizationID: orgID,
			OrderID:        orderID,
			ActorUserID:    actor.UserID,
			ActorUserName:  actor.Name,
			ActionType:     models.ActionStatusTransition,
			FromStatus:     string(fromState),
			ToStatus:       string(nextState),
			Note:           notes,
			Metadata:       auditMetadata(meta),
		}); err != nil {
			return err
		}

		result.Order = locked
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// SetFulfillmentStatus updates the fulfillment axis. It goes through the
// same audited transactional path as lifecycle transitions so no order
// mutation escapes the trail.
func (s *orderStateService) SetFulfillmentStatus(orgID, orderID uint, fulfillment models.FulfillmentStatus, actor models.Actor) (*models.Order, error) {
	if !models.IsValidFulfillmentStatus(fulfillment) {
		return nil, &TransitionError{Code: CodeInvalidTransition, Message: "unknown fulfillment status"}
	}

	order, _, err := s.loadOrder(orgID, orderID)
	if err != nil {
		return nil, err
	}
	if models.IsTerminalState(order.State) {
		return nil, &TransitionError{Code: CodeTerminalState, Message: "order is closed"}
	}

	var updated *models.Order
	err = s.txManager.InTransaction(func(tx *gorm.DB) error {
		orders := s.orderRepo.WithTx(tx)
		locked, err := orders.GetForUpdate(orgID, orderID)
		if err != nil {
			return err
		}
		from := locked.FulfillmentStatus
		locked.FulfillmentStatus = fulfillment
		if err := orders.Update(locked); err != nil {
			return err
		}
		if err := s.audit.WithTx(tx).RecordOrderEvent(&models.OrderAuditLog{
			OrganizationID: orgID,
			OrderID:        orderID,
			ActorUserID:    actor.UserID,
			ActorUserName:  actor.Name,
			ActionType:     models.ActionFulfillmentChange,
			FromStatus:     string(from),
			ToStatus:       string(fulfillment),
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
