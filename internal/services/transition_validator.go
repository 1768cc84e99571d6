package services

import (
	"fmt"

	"print_shop/internal/models"
)

// Stable rejection codes surfaced to API callers.
const (
	CodeInvalidTransition          = "INVALID_TRANSITION"
	CodeLineItemsNotComplete       = "LINE_ITEMS_NOT_COMPLETE"
	CodeTerminalState              = "TERMINAL_STATE"
	CodeOrderLocked                = "ORDER_LOCKED"
	CodeOrderLockedSettingDisabled = "ORDER_LOCKED_SETTING_DISABLED"
	CodeDueDateRequired            = "DUE_DATE_REQUIRED"
	CodeBillingAddressRequired     = "BILLING_ADDRESS_REQUIRED"
	CodeShippingAddressRequired    = "SHIPPING_ADDRESS_REQUIRED"
	CodeNotFound                   = "NOT_FOUND"
)

// TransitionContext bundles everything the validator needs. The caller
// resolves all of it up front; the validator itself performs no I/O.
type TransitionContext struct {
	Preferences             models.OrderPreferences
	LineItemCount           int
	UnfinishedLineItemCount int
	AttachmentCount         int64
	OpenJobCount            int64
	FulfillmentStatus       models.FulfillmentStatus
	HasDueDate              bool
	HasBillingAddress       bool
	HasShippingAddress      bool
	ShippedAtSet            bool
	ActorRole               string
	AutoMarkRemainingDone   bool
}

// ValidationResult is the validator verdict. Warnings never block; a result
// with OK=true may still carry warnings.
type ValidationResult struct {
	OK             bool
	Code           string
	Message        string
	RemainingCount int
	CanOverride    bool
	Warnings       []string
}

func reject(code, message string) ValidationResult {
	return ValidationResult{OK: false, Code: code, Message: message}
}

// TransitionValidator decides whether a requested transition is legal. It is
// a pure function of its inputs so the full (status, preferences, counts)
// matrix can be unit-tested without a database.
type TransitionValidator struct{}

func NewTransitionValidator() *TransitionValidator {
	return &TransitionValidator{}
}

// Validate checks a legacy-status transition request.
func (v *TransitionValidator) Validate(current, requested models.OrderStatus, tc TransitionContext) ValidationResult {
	if models.IsTerminalStatus(current) {
		return reject(CodeTerminalState, fmt.Sprintf("order is %s and cannot change state", current))
	}
	if !models.IsValidStatus(requested) {
		return reject(CodeInvalidTransition, fmt.Sprintf("unknown status %q", requested))
	}

	if !models.CanTransitionStatus(current, requested) {
		// The one sanctioned off-graph move: reopening a completed order,
		// gated by the organization preference and an elevated role.
		if current == models.OrderCompleted && requested == models.OrderInProduction {
			if !tc.Preferences.AllowCompletedOrderEdits {
				return reject(CodeOrderLockedSettingDisabled, "completed orders are locked for this organization")
			}
			if !models.IsElevatedRole(tc.ActorRole) {
				return reject(CodeOrderLocked, "completed orders may only be reopened by a manager or admin")
			}
		} else {
			return reject(CodeInvalidTransition,
				fmt.Sprintf("cannot transition from %s to %s", current, requested))
		}
	}

	result := ValidationResult{OK: true}

	switch requested {
	case models.OrderInProduction:
		if tc.Preferences.RequireDueDateForProduction && !tc.HasDueDate {
			return reject(CodeDueDateRequired, "a due date is required before production can start")
		}
		if tc.Preferences.RequireBillingAddressForProduction && !tc.HasBillingAddress {
			return reject(CodeBillingAddressRequired, "a billing address is required before production can start")
		}
		if tc.Preferences.RequireShippingAddressForProduction && !tc.HasShippingAddress {
			return reject(CodeShippingAddressRequired, "a shipping address is required before production can start")
		}
		if tc.AttachmentCount == 0 {
			result.Warnings = append(result.Warnings, "order has no artwork attachments")
		}

	case models.OrderCompleted:
		if tc.Preferences.RequireAllLineItemsDoneToComplete &&
			tc.UnfinishedLineItemCount > 0 && !tc.AutoMarkRemainingDone {
			return ValidationResult{
				OK:             false,
				Code:           CodeLineItemsNotComplete,
				Message:        fmt.Sprintf("%d line items are not done", tc.UnfinishedLineItemCount),
				RemainingCount: tc.UnfinishedLineItemCount,
				CanOverride:    true,
			}
		}
		if tc.OpenJobCount > 0 {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("%d production jobs are still open", tc.OpenJobCount))
		}

	case models.OrderShipped:
		if tc.FulfillmentStatus == models.FulfillmentPending {
			result.Warnings = append(result.Warnings, "fulfillment is still pending")
		}
	}

	return result
}

// ValidateState checks a canonical-state transition request. The per-state
// rules mirror Validate through the canonical-to-legacy mapping.
func (v *TransitionValidator) ValidateState(current, next models.OrderState, tc TransitionContext) ValidationResult {
	if models.IsTerminalState(current) {
		return reject(CodeTerminalState, fmt.Sprintf("order is %s and cannot change state", current))
	}
	if !models.IsValidState(next) {
		return reject(CodeInvalidTransition, fmt.Sprintf("unknown state %q", next))
	}
	if !models.CanTransitionState(current, next) {
		return reject(CodeInvalidTransition,
			fmt.Sprintf("cannot transition from %s to %s", current, next))
	}

	result := ValidationResult{OK: true}

	switch next {
	case models.StateProductionComplete:
		if tc.Preferences.RequireAllLineItemsDoneToComplete &&
			tc.UnfinishedLineItemCount > 0 && !tc.AutoMarkRemainingDone {
			return ValidationResult{
				OK:             false,
				Code:           CodeLineItemsNotComplete,
				Message:        fmt.Sprintf("%d line items are not done", tc.UnfinishedLineItemCount),
				RemainingCount: tc.UnfinishedLineItemCount,
				CanOverride:    true,
			}
		}
		if tc.OpenJobCount > 0 {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("%d production jobs are still open", tc.OpenJobCount))
		}

	case models.StateShipped:
		if tc.FulfillmentStatus == models.FulfillmentPending {
			result.Warnings = append(result.Warnings, "fulfillment is still pending")
		}
	}

	return result
}
