package models

// OrderStatus is the legacy lifecycle enum. Older consumers (exports, the
// classic dashboard) only understand these values, so the column is kept and
// derived from the canonical state on every transition.
type OrderStatus string

const (
	OrderNew          OrderStatus = "new"
	OrderInProduction OrderStatus = "in_production"
	OrderCompleted    OrderStatus = "completed"
	OrderShipped      OrderStatus = "shipped"
	OrderClosed       OrderStatus = "closed"
	OrderCanceled     OrderStatus = "canceled"
)

// OrderState is the canonical lifecycle enum.
type OrderState string

const (
	StateOpen               OrderState = "open"
	StateProductionComplete OrderState = "production_complete"
	StateShipped            OrderState = "shipped"
	StateClosed             OrderState = "closed"
	StateCanceled           OrderState = "canceled"
)

// FulfillmentStatus is an axis independent of the lifecycle state.
type FulfillmentStatus string

const (
	FulfillmentPending   FulfillmentStatus = "pending"
	FulfillmentPacked    FulfillmentStatus = "packed"
	FulfillmentShipped   FulfillmentStatus = "shipped"
	FulfillmentDelivered FulfillmentStatus = "delivered"
)

// RoutingTarget tells fulfillment where a finished order goes.
type RoutingTarget string

const (
	RoutingShip   RoutingTarget = "ship"
	RoutingPickup RoutingTarget = "pickup"
)

const (
	ShippingMethodDelivery = "delivery"
	ShippingMethodCourier  = "courier"
	ShippingMethodPickup   = "pickup"
)

var statusTransitions = map[OrderStatus][]OrderStatus{
	OrderNew:          {OrderInProduction, OrderCanceled},
	OrderInProduction: {OrderCompleted, OrderCanceled},
	OrderCompleted:    {OrderShipped, OrderCanceled},
	OrderShipped:      {OrderClosed},
	OrderClosed:       {},
	OrderCanceled:     {},
}

var stateTransitions = map[OrderState][]OrderState{
	StateOpen:               {StateProductionComplete, StateCanceled},
	StateProductionComplete: {StateShipped, StateCanceled},
	StateShipped:            {StateClosed},
	StateClosed:             {},
	StateCanceled:           {},
}

// CanTransitionStatus reports whether the legacy graph allows from -> to.
func CanTransitionStatus(from, to OrderStatus) bool {
	for _, s := range statusTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// CanTransitionState reports whether the canonical graph allows from -> to.
func CanTransitionState(from, to OrderState) bool {
	for _, s := range stateTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// AllowedStatusTransitions returns a copy of the reachable legacy statuses.
func AllowedStatusTransitions(from OrderStatus) []OrderStatus {
	out := make([]OrderStatus, len(statusTransitions[from]))
	copy(out, statusTransitions[from])
	return out
}

func IsValidStatus(s OrderStatus) bool {
	_, ok := statusTransitions[s]
	return ok
}

func IsValidState(s OrderState) bool {
	_, ok := stateTransitions[s]
	return ok
}

func IsValidFulfillmentStatus(s FulfillmentStatus) bool {
	switch s {
	case FulfillmentPending, FulfillmentPacked, FulfillmentShipped, FulfillmentDelivered:
		return true
	}
	return false
}

// IsTerminalStatus reports whether the legacy status is absorbing.
func IsTerminalStatus(s OrderStatus) bool {
	return s == OrderClosed || s == OrderCanceled
}

// IsTerminalState reports whether the canonical state is absorbing.
func IsTerminalState(s OrderState) bool {
	return s == StateClosed || s == StateCanceled
}

// LegacyToCanonical maps a legacy status onto the canonical state. The
// canonical enum is coarser: both "new" and "in_production" are "open".
func LegacyToCanonical(s OrderStatus) OrderState {
	switch s {
	case OrderNew, OrderInProduction:
		return StateOpen
	case OrderCompleted:
		return StateProductionComplete
	case OrderShipped:
		return StateShipped
	case OrderClosed:
		return StateClosed
	case OrderCanceled:
		return StateCanceled
	}
	return StateOpen
}

// CanonicalToLegacy maps a canonical state onto the legacy status column.
// Callers never write the legacy column directly; this is the only bridge.
func CanonicalToLegacy(s OrderState) OrderStatus {
	switch s {
	case StateOpen:
		return OrderNew
	case StateProductionComplete:
		return OrderCompleted
	case StateShipped:
		return OrderShipped
	case StateClosed:
		return OrderClosed
	case StateCanceled:
		return OrderCanceled
	}
	return OrderNew
}

// RoutingTargetFor derives the routing flag from the shipping method.
func RoutingTargetFor(shippingMethod string) RoutingTarget {
	if shippingMethod == ShippingMethodPickup {
		return RoutingPickup
	}
	return RoutingShip
}

// Actor identifies the authenticated user applying a mutation.
type Actor struct {
	UserID uint   `json:"user_id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
}

const (
	RoleAdmin    = "admin"
	RoleManager  = "manager"
	RoleOperator = "operator"
)

// IsElevatedRole reports whether the role may edit completed orders when the
// organization preference allows it.
func IsElevatedRole(role string) bool {
	return role == RoleAdmin || role == RoleManager
}
