package services

import (
	"reflect"
	"testing"

	"print_shop/internal/models"
)

func TestValidateGraphMatrix(t *testing.T) {
	v := NewTransitionValidator()
	tc := TransitionContext{AttachmentCount: 1}

	cases := []struct {
		name     string
		from, to models.OrderStatus
		wantOK   bool
		wantCode string
	}{
		{"new to production", models.OrderNew, models.OrderInProduction, true, ""},
		{"new to canceled", models.OrderNew, models.OrderCanceled, true, ""},
		{"new to shipped skips production", models.OrderNew, models.OrderShipped, false, CodeInvalidTransition},
		{"production to completed", models.OrderInProduction, models.OrderCompleted, true, ""},
		{"production back to new", models.OrderInProduction, models.OrderNew, false, CodeInvalidTransition},
		{"completed to shipped", models.OrderCompleted, models.OrderShipped, true, ""},
		{"shipped to closed", models.OrderShipped, models.OrderClosed, true, ""},
		{"shipped to canceled", models.OrderShipped, models.OrderCanceled, false, CodeInvalidTransition},
		{"closed is terminal", models.OrderClosed, models.OrderNew, false, CodeTerminalState},
		{"canceled is terminal", models.OrderCanceled, models.OrderInProduction, false, CodeTerminalState},
		{"unknown target", models.OrderNew, "pending", false, CodeInvalidTransition},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			res := v.Validate(c.from, c.to, tc)
			if res.OK != c.wantOK {
				t.Fatalf("Validate(%s, %s).OK = %v, want %v (code %s)", c.from, c.to, res.OK, c.wantOK, res.Code)
			}
			if !c.wantOK && res.Code != c.wantCode {
				t.Errorf("Validate(%s, %s).Code = %s, want %s", c.from, c.to, res.Code, c.wantCode)
			}
		})
	}
}

func TestValidateIsDeterministic(t *testing.T) {
	v := NewTransitionValidator()
	tc := TransitionContext{
		Preferences:             models.OrderPreferences{RequireAllLineItemsDoneToComplete: true},
		LineItemCount:           4,
		UnfinishedLineItemCount: 2,
		OpenJobCount:            1,
	}
	first := v.Validate(models.OrderInProduction, models.OrderCompleted, tc)
	second := v.Validate(models.OrderInProduction, models.OrderCompleted, tc)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("same inputs produced different verdicts: %+v vs %+v", first, second)
	}
}

func TestValidateLineItemsGate(t *testing.T) {
	v := NewTransitionValidator()

	t.Run("blocks when unfinished items remain", func(t *testing.T) {
		tc := TransitionContext{
			Preferences:             models.OrderPreferences{RequireAllLineItemsDoneToComplete: true},
			LineItemCount:           3,
			UnfinishedLineItemCount: 2,
		}
		res := v.Validate(models.OrderInProduction, models.OrderCompleted, tc)
		if res.OK {
			t.Fatal("expected rejection")
		}
		if res.Code != CodeLineItemsNotComplete {
			t.Errorf("code = %s, want %s", res.Code, CodeLineItemsNotComplete)
		}
		if res.RemainingCount != 2 {
			t.Errorf("RemainingCount = %d, want 2", res.RemainingCount)
		}
		if !res.CanOverride {
			t.Error("the rejection should advertise the auto-mark override")
		}
	})

	t.Run("auto-mark overrides the gate", func(t *testing.T) {
		tc := TransitionContext{
			Preferences:             models.OrderPreferences{RequireAllLineItemsDoneToComplete: true},
			UnfinishedLineItemCount: 2,
			AutoMarkRemainingDone:   true,
		}
		if res := v.Validate(models.OrderInProduction, models.OrderCompleted, tc); !res.OK {
			t.Errorf("expected success with auto-mark, got %s", res.Code)
		}
	})

	t.Run("preference off disables the gate", func(t *testing.T) {
		tc := TransitionContext{UnfinishedLineItemCount: 2}
		if res := v.Validate(models.OrderInProduction, models.OrderCompleted, tc); !res.OK {
			t.Errorf("expected success with preference off, got %s", res.Code)
		}
	})
}

func TestValidateCompletedOrderReopen(t *testing.T) {
	v := NewTransitionValidator()

	t.Run("locked when preference disabled", func(t *testing.T) {
		tc := TransitionContext{ActorRole: models.RoleAdmin}
		res := v.Validate(models.OrderCompleted, models.OrderInProduction, tc)
		if res.OK || res.Code != CodeOrderLockedSettingDisabled {
			t.Errorf("got (%v, %s), want rejection with %s", res.OK, res.Code, CodeOrderLockedSettingDisabled)
		}
	})

	t.Run("locked for non-elevated roles", func(t *testing.T) {
		tc := TransitionContext{
			Preferences: models.OrderPreferences{AllowCompletedOrderEdits: true},
			ActorRole:   models.RoleOperator,
		}
		res := v.Validate(models.OrderCompleted, models.OrderInProduction, tc)
		if res.OK || res.Code != CodeOrderLocked {
			t.Errorf("got (%v, %s), want rejection with %s", res.OK, res.Code, CodeOrderLocked)
		}
	})

	t.Run("manager may reopen when allowed", func(t *testing.T) {
		tc := TransitionContext{
			Preferences:     models.OrderPreferences{AllowCompletedOrderEdits: true},
			ActorRole:       models.RoleManager,
			AttachmentCount: 1,
		}
		if res := v.Validate(models.OrderCompleted, models.OrderInProduction, tc); !res.OK {
			t.Errorf("expected reopen to succeed, got %s", res.Code)
		}
	})
}

func TestValidateProductionEntryRequirements(t *testing.T) {
	v := NewTransitionValidator()

	cases := []struct {
		name     string
		tc       TransitionContext
		wantCode string
	}{
		{
			"due date required",
			TransitionContext{Preferences: models.OrderPreferences{RequireDueDateForProduction: true}},
			CodeDueDateRequired,
		},
		{
			"billing address required",
			TransitionContext{Preferences: models.OrderPreferences{RequireBillingAddressForProduction: true}},
			CodeBillingAddressRequired,
		},
		{
			"shipping address required",
			TransitionContext{Preferences: models.OrderPreferences{RequireShippingAddressForProduction: true}},
			CodeShippingAddressRequired,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			res := v.Validate(models.OrderNew, models.OrderInProduction, c.tc)
			if res.OK || res.Code != c.wantCode {
				t.Errorf("got (%v, %s), want rejection with %s", res.OK, res.Code, c.wantCode)
			}
		})
	}

	t.Run("satisfied requirements pass", func(t *testing.T) {
		tc := TransitionContext{
			Preferences: models.OrderPreferences{
				RequireDueDateForProduction:         true,
				RequireBillingAddressForProduction:  true,
				RequireShippingAddressForProduction: true,
			},
			HasDueDate:         true,
			HasBillingAddress:  true,
			HasShippingAddress: true,
			AttachmentCount:    1,
		}
		if res := v.Validate(models.OrderNew, models.OrderInProduction, tc); !res.OK {
			t.Errorf("expected success, got %s", res.Code)
		}
	})
}

// Warnings ride along on a passing verdict; they never flip OK to false.
func TestValidateWarningsDoNotBlock(t *testing.T) {
	v := NewTransitionValidator()

	t.Run("no attachments entering production", func(t *testing.T) {
		res := v.Validate(models.OrderNew, models.OrderInProduction, TransitionContext{})
		if !res.OK {
			t.Fatalf("expected success, got %s", res.Code)
		}
		if len(res.Warnings) != 1 {
			t.Fatalf("expected 1 warning, got %v", res.Warnings)
		}
	})

	t.Run("open jobs on completion", func(t *testing.T) {
		res := v.Validate(models.OrderInProduction, models.OrderCompleted, TransitionContext{OpenJobCount: 2})
		if !res.OK {
			t.Fatalf("expected success, got %s", res.Code)
		}
		if len(res.Warnings) != 1 {
			t.Fatalf("expected 1 warning, got %v", res.Warnings)
		}
	})

	t.Run("pending fulfillment on ship", func(t *testing.T) {
		res := v.Validate(models.OrderCompleted, models.OrderShipped, TransitionContext{FulfillmentStatus: models.FulfillmentPending})
		if !res.OK {
			t.Fatalf("expected success, got %s", res.Code)
		}
		if len(res.Warnings) != 1 {
			t.Fatalf("expected 1 warning, got %v", res.Warnings)
		}
	})

	t.Run("clean transition carries no warnings", func(t *testing.T) {
		res := v.Validate(models.OrderCompleted, models.OrderShipped, TransitionContext{FulfillmentStatus: models.FulfillmentPacked})
		if !res.OK || len(res.Warnings) != 0 {
			t.Errorf("got (%v, %v), want clean pass", res.OK, res.Warnings)
		}
	})
}

func TestValidateState(t *testing.T) {
	v := NewTransitionValidator()

	cases := []struct {
		name     string
		from, to models.OrderState
		tc       TransitionContext
		wantOK   bool
		wantCode string
	}{
		{"open to production complete", models.StateOpen, models.StateProductionComplete, TransitionContext{}, true, ""},
		{"open to canceled", models.StateOpen, models.StateCanceled, TransitionContext{}, true, ""},
		{"open to shipped skips completion", models.StateOpen, models.StateShipped, TransitionContext{}, false, CodeInvalidTransition},
		{"production complete to shipped", models.StateProductionComplete, models.StateShipped, TransitionContext{}, true, ""},
		{"closed is terminal", models.StateClosed, models.StateOpen, TransitionContext{}, false, CodeTerminalState},
		{"unknown state", models.StateOpen, "archived", TransitionContext{}, false, CodeInvalidTransition},
		{
			"line items gate applies on the canonical axis too",
			models.StateOpen, models.StateProductionComplete,
			TransitionContext{
				Preferences:             models.OrderPreferences{RequireAllLineItemsDoneToComplete: true},
				UnfinishedLineItemCount: 1,
			},
			false, CodeLineItemsNotComplete,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			res := v.ValidateState(c.from, c.to, c.tc)
			if res.OK != c.wantOK {
				t.Fatalf("ValidateState(%s, %s).OK = %v, want %v (code %s)", c.from, c.to, res.OK, c.wantOK, res.Code)
			}
			if !c.wantOK && res.Code != c.wantCode {
				t.Errorf("code = %s, want %s", res.Code, c.wantCode)
			}
		})
	}
}
