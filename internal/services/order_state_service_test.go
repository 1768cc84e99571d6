package services

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"print_shop/internal/models"
	"print_shop/internal/repository/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type stateServiceFixture struct {
	orders    *mocks.MockOrderRepository
	items     *mocks.MockLineItemRepository
	audits    *mocks.MockAuditLogRepository
	orgs      *mocks.MockOrganizationRepository
	inventory *mocks.MockInventoryRepository
	tx        *mocks.MockTxManager
	svc       OrderStateService
}

func newStateServiceFixture(t *testing.T) *stateServiceFixture {
	ctrl := gomock.NewController(t)
	f := &stateServiceFixture{
		orders:    mocks.NewMockOrderRepository(ctrl),
		items:     mocks.NewMockLineItemRepository(ctrl),
		audits:    mocks.NewMockAuditLogRepository(ctrl),
		orgs:      mocks.NewMockOrganizationRepository(ctrl),
		inventory: mocks.NewMockInventoryRepository(ctrl),
		tx:        mocks.NewMockTxManager(ctrl),
	}

	// Repositories hand themselves back for the in-test nil transaction.
	f.orders.EXPECT().WithTx(gomock.Nil()).Return(f.orders).AnyTimes()
	f.items.EXPECT().WithTx(gomock.Nil()).Return(f.items).AnyTimes()
	f.inventory.EXPECT().WithTx(gomock.Nil()).Return(f.inventory).AnyTimes()

	audit := NewAuditLogger(f.audits)
	prefs := NewPreferenceService(f.orgs, audit, nil)
	inv := NewInventoryService(f.inventory, audit, f.tx)
	f.svc = NewOrderStateService(f.orders, f.items, audit, prefs, inv, NewTransitionValidator(), f.tx)
	return f
}

// expectTx makes the transaction manager run the callback against a nil tx.
func (f *stateServiceFixture) expectTx() {
	f.tx.EXPECT().InTransaction(gomock.Any()).DoAndReturn(func(fn func(tx *gorm.DB) error) error {
		return fn(nil)
	})
}

func (f *stateServiceFixture) expectContext(order *models.Order, prefs models.OrderPreferences, attachments, openJobs int64) {
	f.orgs.EXPECT().GetPreferences(order.OrganizationID).Return(&prefs, nil)
	f.orders.EXPECT().CountAttachments(order.OrganizationID, order.ID).Return(attachments, nil)
	f.orders.EXPECT().CountOpenJobs(order.OrganizationID, order.ID).Return(openJobs, nil)
}

func testActor() models.Actor {
	return models.Actor{UserID: 7, Name: "alice", Role: models.RoleManager}
}

func uintPtr(v uint) *uint { return &v }

func TestCompleteProductionAllItemsDone(t *testing.T) {
	f := newStateServiceFixture(t)

	order := &models.Order{ID: 10, OrganizationID: 1, Status: models.OrderInProduction, State: models.StateOpen}
	items := []models.OrderLineItem{
		{ID: 1, Status: models.ItemDone},
		{ID: 2, Status: models.ItemCanceled},
	}

	f.orders.EXPECT().GetByID(uint(1), uint(10)).Return(order, nil)
	f.items.EXPECT().GetByOrderID(uint(1), uint(10)).Return(items, nil)
	f.expectContext(order, models.OrderPreferences{RequireAllLineItemsDoneToComplete: true}, 1, 0)
	f.expectTx()
	f.orders.EXPECT().GetForUpdate(uint(1), uint(10)).Return(order, nil)
	f.orders.EXPECT().Update(gomock.Any()).Return(nil)
	f.audits.EXPECT().CreateOrderEntry(gomock.Any()).Return(nil)

	result, err := f.svc.CompleteProduction(1, 10, true, testActor())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.DidAutoMark {
		t.Error("nothing was unfinished, DidAutoMark should be false")
	}
	if result.AutoMarkedCount != 0 {
		t.Errorf("AutoMarkedCount = %d, want 0", result.AutoMarkedCount)
	}
	if result.Order.Status != models.OrderCompleted {
		t.Errorf("status = %s, want completed", result.Order.Status)
	}
	if result.Order.State != models.StateProductionComplete {
		t.Errorf("state = %s, want production_complete", result.Order.State)
	}
	if result.Order.ProductionCompletedAt == nil {
		t.Error("ProductionCompletedAt milestone was not set")
	}
}

func TestCompleteProductionBlockedByUnfinishedItems(t *testing.T) {
	f := newStateServiceFixture(t)

	order := &models.Order{ID: 10, OrganizationID: 1, Status: models.OrderInProduction, State: models.StateOpen}
	items := []models.OrderLineItem{
		{ID: 1, Status: models.ItemQueued},
		{ID: 2, Status: models.ItemQueued},
		{ID: 3, Status: models.ItemDone},
	}

	f.orders.EXPECT().GetByID(uint(1), uint(10)).Return(order, nil)
	f.items.EXPECT().GetByOrderID(uint(1), uint(10)).Return(items, nil)
	f.expectContext(order, models.OrderPreferences{RequireAllLineItemsDoneToComplete: true}, 1, 0)
	// No transaction: a rejection must not open one, let alone mutate.

	_, err := f.svc.CompleteProduction(1, 10, false, testActor())
	var terr *TransitionError
	if !errors.As(err, &terr) {
		t.Fatalf("expected TransitionError, got %v", err)
	}
	if terr.Code != CodeLineItemsNotComplete {
		t.Errorf("code = %s, want %s", terr.Code, CodeLineItemsNotComplete)
	}
	if terr.RemainingCount != 2 {
		t.Errorf("RemainingCount = %d, want 2", terr.RemainingCount)
	}
	if !terr.CanOverride {
		t.Error("rejection should advertise the auto-mark override")
	}
}

func TestCompleteProductionAutoMarksRemaining(t *testing.T) {
	f := newStateServiceFixture(t)

	order := &models.Order{ID: 10, OrganizationID: 1, Status: models.OrderInProduction, State: models.StateOpen}
	items := []models.OrderLineItem{
		{ID: 1, Status: models.ItemPrinting},
		{ID: 2, Status: models.ItemQueued},
	}

	f.orders.EXPECT().GetByID(uint(1), uint(10)).Return(order, nil)
	f.items.EXPECT().GetByOrderID(uint(1), uint(10)).Return(items, nil)
	f.expectContext(order, models.OrderPreferences{RequireAllLineItemsDoneToComplete: true}, 1, 0)
	f.expectTx()
	f.orders.EXPECT().GetForUpdate(uint(1), uint(10)).Return(order, nil)
	f.items.EXPECT().
		BulkUpdateStatus(uint(1), uint(10), models.UnfinishedStatuses(), models.ItemDone).
		Return(int64(2), nil)
	f.orders.EXPECT().Update(gomock.Any()).Return(nil)

	var entry *models.OrderAuditLog
	f.audits.EXPECT().CreateOrderEntry(gomock.Any()).DoAndReturn(func(e *models.OrderAuditLog) error {
		entry = e
		return nil
	})

	result, err := f.svc.CompleteProduction(1, 10, true, testActor())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.DidAutoMark || result.AutoMarkedCount != 2 {
		t.Errorf("got (DidAutoMark=%v, AutoMarkedCount=%d), want (true, 2)", result.DidAutoMark, result.AutoMarkedCount)
	}

	var meta map[string]interface{}
	if err := json.Unmarshal(entry.Metadata, &meta); err != nil {
		t.Fatalf("audit metadata is not valid JSON: %v", err)
	}
	if meta["auto_marked_count"] != float64(2) {
		t.Errorf("audit metadata auto_marked_count = %v, want 2", meta["auto_marked_count"])
	}
}

// With the all-items-done preference off there is no gate to override, so
// the auto-mark flag must leave line items untouched.
func TestCompleteProductionAutoMarkIsNoOpWithoutPreference(t *testing.T) {
	f := newStateServiceFixture(t)

	order := &models.Order{ID: 10, OrganizationID: 1, Status: models.OrderInProduction, State: models.StateOpen}
	items := []models.OrderLineItem{
		{ID: 1, Status: models.ItemQueued},
		{ID: 2, Status: models.ItemQueued},
	}

	f.orders.EXPECT().GetByID(uint(1), uint(10)).Return(order, nil)
	f.items.EXPECT().GetByOrderID(uint(1), uint(10)).Return(items, nil)
	f.expectContext(order, models.OrderPreferences{RequireAllLineItemsDoneToComplete: false}, 1, 0)
	f.expectTx()
	f.orders.EXPECT().GetForUpdate(uint(1), uint(10)).Return(order, nil)
	// No BulkUpdateStatus expectation: the cascade must not run.
	f.orders.EXPECT().Update(gomock.Any()).Return(nil)
	f.audits.EXPECT().CreateOrderEntry(gomock.Any()).Return(nil)

	result, err := f.svc.CompleteProduction(1, 10, true, testActor())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.DidAutoMark || result.AutoMarkedCount != 0 {
		t.Errorf("got (DidAutoMark=%v, AutoMarkedCount=%d), want a no-op", result.DidAutoMark, result.AutoMarkedCount)
	}
	if result.Order.Status != models.OrderCompleted {
		t.Errorf("status = %s, want completed", result.Order.Status)
	}
}

// An inventory problem on production entry degrades to a warning; the
// transition itself still succeeds.
func TestTransitionToProductionSurvivesInventoryFailure(t *testing.T) {
	f := newStateServiceFixture(t)

	order := &models.Order{ID: 10, OrganizationID: 1, Status: models.OrderNew, State: models.StateOpen}
	items := []models.OrderLineItem{
		{ID: 1, Status: models.ItemQueued, MaterialID: uintPtr(7), MaterialQty: decimal.NewFromInt(5)},
	}

	f.orders.EXPECT().GetByID(uint(1), uint(10)).Return(order, nil)
	f.items.EXPECT().GetByOrderID(uint(1), uint(10)).Return(items, nil)
	f.expectContext(order, models.OrderPreferences{}, 1, 0)
	f.expectTx()
	f.orders.EXPECT().GetForUpdate(uint(1), uint(10)).Return(order, nil)
	f.inventory.EXPECT().GetMaterialForUpdate(uint(1), uint(7)).Return(nil, gorm.ErrRecordNotFound)
	f.orders.EXPECT().Update(gomock.Any()).Return(nil)
	f.audits.EXPECT().CreateOrderEntry(gomock.Any()).Return(nil)

	result, err := f.svc.Transition(1, 10, models.OrderInProduction, "start run", testActor())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Order.Status != models.OrderInProduction {
		t.Errorf("status = %s, want in_production", result.Order.Status)
	}
	if result.Order.StartedProductionAt == nil {
		t.Error("StartedProductionAt milestone was not set")
	}
	if len(result.Warnings) != 1 || !strings.Contains(result.Warnings[0], "inventory deduction incomplete") {
		t.Errorf("expected an inventory warning, got %v", result.Warnings)
	}
}

func TestTransitionFromTerminalStatus(t *testing.T) {
	f := newStateServiceFixture(t)

	order := &models.Order{ID: 10, OrganizationID: 1, Status: models.OrderClosed, State: models.StateClosed}
	f.orders.EXPECT().GetByID(uint(1), uint(10)).Return(order, nil)
	f.items.EXPECT().GetByOrderID(uint(1), uint(10)).Return(nil, nil)
	f.expectContext(order, models.OrderPreferences{}, 0, 0)

	_, err := f.svc.Transition(1, 10, models.OrderNew, "", testActor())
	var terr *TransitionError
	if !errors.As(err, &terr) {
		t.Fatalf("expected TransitionError, got %v", err)
	}
	if terr.Code != CodeTerminalState {
		t.Errorf("code = %s, want %s", terr.Code, CodeTerminalState)
	}
}

// A cross-tenant order id resolves exactly like a missing one.
func TestTransitionCrossTenantOrderIsNotFound(t *testing.T) {
	f := newStateServiceFixture(t)

	f.orders.EXPECT().GetByID(uint(2), uint(10)).Return(nil, gorm.ErrRecordNotFound)

	_, err := f.svc.Transition(2, 10, models.OrderInProduction, "", testActor())
	if !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestTransitionAuditFailureRollsBack(t *testing.T) {
	f := newStateServiceFixture(t)

	order := &models.Order{ID: 10, OrganizationID: 1, Status: models.OrderCompleted, State: models.StateProductionComplete}
	f.orders.EXPECT().GetByID(uint(1), uint(10)).Return(order, nil)
	f.items.EXPECT().GetByOrderID(uint(1), uint(10)).Return(nil, nil)
	f.expectContext(order, models.OrderPreferences{}, 1, 0)
	f.expectTx()
	f.orders.EXPECT().GetForUpdate(uint(1), uint(10)).Return(order, nil)
	f.orders.EXPECT().Update(gomock.Any()).Return(nil)
	f.audits.EXPECT().CreateOrderEntry(gomock.Any()).Return(errors.New("audit write failed"))

	_, err := f.svc.Transition(1, 10, models.OrderShipped, "", models.Actor{UserID: 7, Role: models.RoleManager})
	if err == nil {
		t.Fatal("an audit failure must fail the transaction")
	}
}

func TestTransitionStateDrivesLegacyColumn(t *testing.T) {
	f := newStateServiceFixture(t)

	order := &models.Order{ID: 10, OrganizationID: 1, Status: models.OrderInProduction, State: models.StateOpen}
	f.orders.EXPECT().GetByID(uint(1), uint(10)).Return(order, nil)
	f.items.EXPECT().GetByOrderID(uint(1), uint(10)).Return(nil, nil)
	f.expectContext(order, models.OrderPreferences{}, 1, 0)
	f.expectTx()
	f.orders.EXPECT().GetForUpdate(uint(1), uint(10)).Return(order, nil)
	f.orders.EXPECT().Update(gomock.Any()).Return(nil)

	var entry *models.OrderAuditLog
	f.audits.EXPECT().CreateOrderEntry(gomock.Any()).DoAndReturn(func(e *models.OrderAuditLog) error {
		entry = e
		return nil
	})

	result, err := f.svc.TransitionState(1, 10, models.StateProductionComplete, "qa pass", testActor())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Order.State != models.StateProductionComplete {
		t.Errorf("state = %s, want production_complete", result.Order.State)
	}
	if result.Order.Status != models.OrderCompleted {
		t.Errorf("legacy status = %s, want completed to stay in sync", result.Order.Status)
	}

	var meta map[string]interface{}
	if err := json.Unmarshal(entry.Metadata, &meta); err != nil {
		t.Fatalf("audit metadata is not valid JSON: %v", err)
	}
	if meta["axis"] != "canonical" {
		t.Errorf("audit axis = %v, want canonical", meta["axis"])
	}
}

func TestSetFulfillmentStatus(t *testing.T) {
	t.Run("updates and audits", func(t *testing.T) {
		f := newStateServiceFixture(t)

		order := &models.Order{ID: 10, OrganizationID: 1, Status: models.OrderCompleted, State: models.StateProductionComplete, FulfillmentStatus: models.FulfillmentPending}
		f.orders.EXPECT().GetByID(uint(1), uint(10)).Return(order, nil)
		f.items.EXPECT().GetByOrderID(uint(1), uint(10)).Return(nil, nil)
		f.expectTx()
		f.orders.EXPECT().GetForUpdate(uint(1), uint(10)).Return(order, nil)
		f.orders.EXPECT().Update(gomock.Any()).Return(nil)

		var entry *models.OrderAuditLog
		f.audits.EXPECT().CreateOrderEntry(gomock.Any()).DoAndReturn(func(e *models.OrderAuditLog) error {
			entry = e
			return nil
		})

		updated, err := f.svc.SetFulfillmentStatus(1, 10, models.FulfillmentPacked, testActor())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.FulfillmentStatus != models.FulfillmentPacked {
			t.Errorf("fulfillment = %s, want packed", updated.FulfillmentStatus)
		}
		if entry.ActionType != models.ActionFulfillmentChange {
			t.Errorf("audit action = %s, want %s", entry.ActionType, models.ActionFulfillmentChange)
		}
	})

	t.Run("rejected on a terminal order", func(t *testing.T) {
		f := newStateServiceFixture(t)

		order := &models.Order{ID: 10, OrganizationID: 1, Status: models.OrderCanceled, State: models.StateCanceled}
		f.orders.EXPECT().GetByID(uint(1), uint(10)).Return(order, nil)
		f.items.EXPECT().GetByOrderID(uint(1), uint(10)).Return(nil, nil)

		_, err := f.svc.SetFulfillmentStatus(1, 10, models.FulfillmentPacked, testActor())
		var terr *TransitionError
		if !errors.As(err, &terr) || terr.Code != CodeTerminalState {
			t.Fatalf("expected %s rejection, got %v", CodeTerminalState, err)
		}
	})

	t.Run("rejects unknown values", func(t *testing.T) {
		f := newStateServiceFixture(t)

		_, err := f.svc.SetFulfillmentStatus(1, 10, "lost", testActor())
		var terr *TransitionError
		if !errors.As(err, &terr) || terr.Code != CodeInvalidTransition {
			t.Fatalf("expected %s rejection, got %v", CodeInvalidTransition, err)
		}
	})
}
