package models

import (
	"sort"
	"time"
)

// EventType identifies a stage in the delivery order lifecycle.
type EventType string

const (
	EventOrderCreated   EventType = "order_created"
	EventKitchenStarted EventType = "gk_started"
	EventKitchenDone    EventType = "gk_finished"
	EventKitchenReady   EventType = "gk_ready"
	EventDriverPickedUp EventType = "driver_picked_up"
	EventDriverPing     EventType = "driver_ping"
	EventDelivered      EventType = "delivered"
)

// Event is a single immutable lifecycle event. Events arrive in arbitrary
// order; Sequence, when present, is the authoritative ordering tiebreaker
// since wall-clock timestamps can collide or carry clock skew.
type Event struct {
	OrderID   string     `json:"orderId"`
	EventType EventType  `json:"eventType"`
	Timestamp time.Time  `json:"timestamp"`
	Location  string     `json:"location,omitempty"`
	Sequence  *int64     `json:"sequence,omitempty"`
	Body      *EventBody `json:"body,omitempty"`
}

// EventBody is the opportunistically-parsed event payload. A payload that
// fails to parse leaves Body nil; the event itself is still admitted.
type EventBody struct {
	Brand        string      `json:"brand,omitempty"`
	CustomerLat  *float64    `json:"customerLat,omitempty"`
	CustomerLon  *float64    `json:"customerLon,omitempty"`
	CustomerAddr string      `json:"customerAddr,omitempty"`
	Items        []OrderItem `json:"items,omitempty"`
}

// OrderItem is one line item of an order_created payload.
type OrderItem struct {
	ID         int64   `json:"id"`
	CategoryID int64   `json:"categoryId"`
	MenuID     int64   `json:"menuId"`
	BrandID    int64   `json:"brandId"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Qty        int64   `json:"qty"`
}

// ExtendedPrice is the revenue contribution of this line item.
func (i OrderItem) ExtendedPrice() float64 {
	return i.Price * float64(i.Qty)
}

// Before reports whether e orders strictly before other. Sequence numbers
// are preferred when both events carry one; otherwise timestamps decide.
// Equal keys compare false, so a stable sort keeps insertion order for ties.
func (e *Event) Before(other *Event) bool {
	if e.Sequence != nil && other.Sequence != nil {
		return *e.Sequence < *other.Sequence
	}
	return e.Timestamp.Before(other.Timestamp)
}

// SortEvents sorts events in place by their ordering key, ascending.
// The sort is stable: ties keep insertion order.
func SortEvents(events []*Event) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Before(events[j])
	})
}
