package models

import "time"

// OrderStatus is the derived logical state of an order. It is a pure
// function of the set of event types present, never of arrival order.
type OrderStatus string

const (
	StatusCompleted      OrderStatus = "completed"
	StatusOutForDelivery OrderStatus = "out_for_delivery"
	StatusReadyForPickup OrderStatus = "ready_for_pickup"
	StatusPreparing      OrderStatus = "preparing"
	StatusCreated        OrderStatus = "created"
	StatusUnknown        OrderStatus = "unknown"
)

// IsTerminal reports whether the status admits no further progression.
func (s OrderStatus) IsTerminal() bool {
	return s == StatusCompleted
}

// OrderState is the reconstructed view of one order. It is always
// recomputable from its event set and carries no independent identity.
type OrderState struct {
	OrderID     string      `json:"orderId"`
	Location    string      `json:"location"`
	Brand       string      `json:"brand"`
	CustomerLat *float64    `json:"customerLat,omitempty"`
	CustomerLon *float64    `json:"customerLon,omitempty"`
	Status      OrderStatus `json:"status"`
	CreatedAt   time.Time   `json:"createdAt"`
	CompletedAt *time.Time  `json:"completedAt,omitempty"`
	Events      []*Event    `json:"events"`
}
