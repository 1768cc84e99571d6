package services

import (
	"errors"
	"fmt"
	"time"

	"print_shop/internal/models"
	"print_shop/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CreateOrderRequest struct {
	CustomerID     uint                    `json:"customer_id"`
	ShippingMethod string                  `json:"shipping_method"`
	DueDate        *time.Time              `json:"due_date"`
	PromisedDate   *time.Time              `json:"promised_date"`
	Notes          string                  `json:"notes"`
	LineItems      []CreateLineItemRequest `json:"line_items"`
}

type CreateLineItemRequest struct {
	ItemName    string          `json:"item_name" binding:"required"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity" binding:"required,gt=0"`
	UnitPrice   float64         `json:"unit_price"`
	MaterialID  *uint           `json:"material_id"`
	MaterialQty decimal.Decimal `json:"material_qty"`
}

// OrderService owns order CRUD and line-item maintenance. Lifecycle
// transitions live exclusively in OrderStateService.
type OrderService interface {
	CreateOrder(orgID uint, req CreateOrderRequest, actor models.Actor) (*models.Order, error)
	GetOrder(orgID, orderID uint) (*models.Order, error)
	ListOrders(orgID uint) ([]models.Order, error)
	AddLineItem(orgID, orderID uint, req CreateLineItemRequest, actor models.Actor) (*models.OrderLineItem, error)
	UpdateLineItemStatus(orgID, orderID, itemID uint, status models.LineItemStatus, actor models.Actor) (*models.OrderLineItem, error)
	BulkUpdateLineItemStatus(orgID, orderID uint, status models.LineItemStatus, actor models.Actor) (int64, error)
	SetPriority(orgID, orderID uint, priority string, actor models.Actor) (*models.Order, error)
	AuditTrail(orgID, orderID uint) ([]models.OrderAuditLog, error)
}

type orderService struct {
	orderRepo    repository.OrderRepository
	lineItemRepo repository.LineItemRepository
	customerRepo repository.CustomerRepository
	audit        AuditLogger
	preferences  PreferenceService
	txManager    repository.TxManager
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	lineItemRepo repository.LineItemRepository,
	customerRepo repository.CustomerRepository,
	audit AuditLogger,
	preferences PreferenceService,
	txManager repository.TxManager,
) OrderService {
	return &orderService{
		orderRepo:    orderRepo,
		lineItemRepo: lineItemRepo,
		customerRepo: customerRepo,
		audit:        audit,
		preferences:  preferences,
		txManager:    txManager,
	}
}

func generateOrderNumber(now time.Time) string {
	return fmt.Sprintf("ORD-%s-%04d", now.Format("20060102"), now.UnixNano()%10000)
}

func (s *orderService) CreateOrder(orgID uint, req CreateOrderRequest, actor models.Actor) (*models.Order, error) {
	now := time.Now()
	shippingMethod := req.ShippingMethod
	if shippingMethod == "" {
		shippingMethod = models.ShippingMethodDelivery
	}

	order := &models.Order{
		OrganizationID:    orgID,
		OrderNumber:       generateOrderNumber(now),
		CustomerID:        req.CustomerID,
		Status:            models.OrderNew,
		State:             models.StateOpen,
		FulfillmentStatus: models.FulfillmentPending,
		RoutingTarget:     models.RoutingTargetFor(shippingMethod),
		ShippingMethod:    shippingMethod,
		DueDate:           req.DueDate,
		PromisedDate:      req.PromisedDate,
		Notes:             req.Notes,
		CreatedBy:         actor.UserID,
	}

	// Snapshot the customer's billing/shipping data so later customer edits
	// never rewrite this order's history.
	if req.CustomerID != 0 {
		customer, err := s.customerRepo.GetByID(orgID, req.CustomerID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, errors.New("customer not found")
			}
			return nil, err
		}
		order.BillingName = customer.BillingName
		order.BillingAddress = customer.BillingAddress
		order.ShippingName = customer.ShippingName
		order.ShippingAddress = customer.ShippingAddress
	}

	err := s.txManager.InTransaction(func(tx *gorm.DB) error {
		orders := s.orderRepo.WithTx(tx)
		if err := orders.Create(order); err != nil {
			return err
		}

		items := s.lineItemRepo.WithTx(tx)
		total := 0.0
		for _, li := range req.LineItems {
			item := &models.OrderLineItem{
				OrderID:        order.ID,
				OrganizationID: orgID,
				ItemName:       li.ItemName,
				Description:    li.Description,
				Status:         models.ItemQueued,
				Quantity:       li.Quantity,
				UnitPrice:      li.UnitPrice,
				TotalPrice:     float64(li.Quantity) * li.UnitPrice,
				MaterialID:     li.MaterialID,
				MaterialQty:    li.MaterialQty,
			}
			if err := items.Create(item); err != nil {
				return err
			}
			total += item.TotalPrice
		}
		order.Total = total
		if err := orders.Update(order); err != nil {
			return err
		}

		audit := s.audit.WithTx(tx)
		if err := audit.RecordOrderEvent(&models.OrderAuditLog{
			OrganizationID: orgID,
			OrderID:        order.ID,
			ActorUserID:    actor.UserID,
			ActorUserName:  actor.Name,
			ActionType:     models.ActionOrderCreated,
			ToStatus:       string(models.OrderNew),
			Metadata:       auditMetadata(map[string]interface{}{"line_items": len(req.LineItems)}),
		}); err != nil {
			return err
		}
		return audit.RecordEntityEvent(&models.EntityAuditLog{
			OrganizationID: orgID,
			EntityType:     "order",
			EntityID:       order.ID,
			Action:         "create",
			ActorUserID:    actor.UserID,
			ActorUserName:  actor.Name,
			Metadata:       auditMetadata(map[string]interface{}{"order_number": order.OrderNumber}),
		})
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (s *orderService) GetOrder(orgID, orderID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orgID, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	items, err := s.lineItemRepo.GetByOrderID(orgID, orderID)
	if err != nil {
		return nil, err
	}
	order.LineItems = items
	return order, nil
}

func (s *orderService) ListOrders(orgID uint) ([]models.Order, error) {
	return s.orderRepo.GetAll(orgID)
}

// checkEditable enforces the completed/terminal lock for order-adjacent
// edits, honoring the allowCompletedOrderEdits preference.
func (s *orderService) checkEditable(order *models.Order, actor models.Actor) error {
	if order.Status != models.OrderCompleted && !models.IsTerminalState(order.State) {
		return nil
	}
	prefs, err := s.preferences.Get(order.OrganizationID)
	if err != nil {
		return err
	}
	if !prefs.AllowCompletedOrderEdits {
		return &TransitionError{Code: CodeOrderLockedSettingDisabled, Message: "completed orders are locked for this organization"}
	}
	if !models.IsElevatedRole(actor.Role) {
		return &TransitionError{Code: CodeOrderLocked, Message: "completed orders may only be edited by a manager or admin"}
	}
	return nil
}

func (s *orderService) AddLineItem(orgID, orderID uint, req CreateLineItemRequest, actor models.Actor) (*models.OrderLineItem, error) {
	order, err := s.GetOrder(orgID, orderID)
	if err != nil {
		return nil, err
	}
	if err := s.checkEditable(order, actor); err != nil {
		return nil, err
	}

	item := &models.OrderLineItem{
		OrderID:        orderID,
		OrganizationID: orgID,
		ItemName:       req.ItemName,
		Description:    req.Description,
		Status:         models.ItemQueued,
		Quantity:       req.Quantity,
		UnitPrice:      req.UnitPrice,
		TotalPrice:     float64(req.Quantity) * req.UnitPrice,
		MaterialID:     req.MaterialID,
		MaterialQty:    req.MaterialQty,
	}

	err = s.txManager.InTransaction(func(tx *gorm.DB) error {
		if err := s.lineItemRepo.WithTx(tx).Create(item); err != nil {
			return err
		}
		order.Total += item.TotalPrice
		if err := s.orderRepo.WithTx(tx).Update(order); err != nil {
			return err
		}
		return s.audit.WithTx(tx).RecordEntityEvent(&models.EntityAuditLog{
			OrganizationID: orgID,
			EntityType:     "order_line_item",
			EntityID:       item.ID,
			Action:         "create",
			ActorUserID:    actor.UserID,
			ActorUserName:  actor.Name,
			Metadata:       auditMetadata(map[string]interface{}{"order_id": orderID}),
		})
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (s *orderService) UpdateLineItemStatus(orgID, orderID, itemID uint, status models.LineItemStatus, actor models.Actor) (*models.OrderLineItem, error) {
	if !models.IsValidLineItemStatus(status) {
		return nil, fmt.Errorf("unknown line item status %q", status)
	}

	order, err := s.orderRepo.GetByID(orgID, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	if err := s.checkEditable(order, actor); err != nil {
		return nil, err
	}

	item, err := s.lineItemRepo.GetByID(orgID, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("line item not found")
		}
		return nil, err
	}
	if item.OrderID != orderID {
		return nil, errors.New("line item not found")
	}
	if !models.CanTransitionLineItem(item.Status, status) {
		return nil, fmt.Errorf("cannot move line item from %s to %s", item.Status, status)
	}

	from := item.Status
	err = s.txManager.InTransaction(func(tx *gorm.DB) error {
		item.Status = status
		if err := s.lineItemRepo.WithTx(tx).Update(item); err != nil {
			return err
		}
		return s.audit.WithTx(tx).RecordOrderEvent(&models.OrderAuditLog{
			OrganizationID: orgID,
			OrderID:        orderID,
			ActorUserID:    actor.UserID,
			ActorUserName:  actor.Name,
			ActionType:     models.ActionLineItemStatusUpdate,
			FromStatus:     string(from),
			ToStatus:       string(status),
			Metadata:       auditMetadata(map[string]interface{}{"line_item_id": itemID}),
		})
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (s *orderService) BulkUpdateLineItemStatus(orgID, orderID uint, status models.LineItemStatus, actor models.Actor) (int64, error) {
	if !models.IsValidLineItemStatus(status) {
		return 0, fmt.Errorf("unknown line item status %q", status)
	}

	order, err := s.orderRepo.GetByID(orgID, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrOrderNotFound
		}
		return 0, err
	}
	if err := s.checkEditable(order, actor); err != nil {
		return 0, err
	}

	var updated int64
	err = s.txManager.InTransaction(func(tx *gorm.DB) error {
		n, err := s.lineItemRepo.WithTx(tx).BulkUpdateStatus(orgID, orderID, models.UnfinishedStatuses(), status)
		if err != nil {
			return err
		}
		updated = n
		return s.audit.WithTx(tx).RecordOrderEvent(&models.OrderAuditLog{
			OrganizationID: orgID,
			OrderID:        orderID,
			ActorUserID:    actor.UserID,
			ActorUserName:  actor.Name,
			ActionType:     models.ActionBulkLineItemStatusUpdate,
			ToStatus:       string(status),
			Metadata:       auditMetadata(map[string]interface{}{"updated_count": n}),
		})
	})
	if err != nil {
		return 0, err
	}
	return updated, nil
}

func (s *orderService) SetPriority(orgID, orderID uint, priority string, actor models.Actor) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orgID, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	if err := s.checkEditable(order, actor); err != nil {
		return nil, err
	}

	from := order.Priority
	err = s.txManager.InTransaction(func(tx *gorm.DB) error {
		order.Priority = priority
		if err := s.orderRepo.WithTx(tx).Update(order); err != nil {
			return err
		}
		return s.audit.WithTx(tx).RecordOrderEvent(&models.OrderAuditLog{
			OrganizationID: orgID,
			OrderID:        orderID,
			ActorUserID:    actor.UserID,
			ActorUserName:  actor.Name,
			ActionType:     models.ActionPriorityChange,
			Metadata: auditMetadata(map[string]interface{}{
				"from_priority": from,
				"to_priority":   priority,
			}),
		})
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (s *orderService) AuditTrail(orgID, orderID uint) ([]models.OrderAuditLog, error) {
	if _, err := s.orderRepo.GetByID(orgID, orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return s.audit.OrderTrail(orgID, orderID)
}
