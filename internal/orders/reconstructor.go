package orders

import (
	"errors"
	"fmt"

	"delivery-analytics/internal/models"
)

// ErrEmptyOrder signals that reconstruction was invoked with zero events.
// This is a programmer error on the caller's side and is propagated as-is;
// a synthetic default state is never fabricated.
var ErrEmptyOrder = errors.New("order has no events")

//go:generate mockgen -source=reconstructor.go -destination=./mocks/reconstructor_mock.go -package=mocks
type Reconstructor interface {
	// Reconstruct derives the order's state from its full event set.
	// The input slice may arrive in any order; the result is deterministic
	// for a fixed event set. The input slice is not mutated.
	Reconstruct(orderID, location string, events []*models.Event) (*models.OrderState, error)
}

type reconstructor struct{}

func NewReconstructor() Reconstructor {
	return &reconstructor{}
}

func (r *reconstructor) Reconstruct(orderID, location string, events []*models.Event) (*models.OrderState, error) {
	if len(events) == 0 {
		return nil, fmt.Errorf("order %s: %w", orderID, ErrEmptyOrder)
	}

	sorted := make([]*models.Event, len(events))
	copy(sorted, events)
	models.SortEvents(sorted)

	state := &models.OrderState{
		OrderID:   orderID,
		Location:  location,
		Brand:     "Unknown",
		CreatedAt: sorted[0].Timestamp,
		Events:    sorted,
	}

	// Brand and coordinates come from the first order_created payload by
	// sort key. Corrections sent via a later order_created are ignored;
	// documented behavior of the lifecycle model.
	present := make(map[models.EventType]bool, len(sorted))
	for _, ev := range sorted {
		present[ev.EventType] = true
	}
	for _, ev := range sorted {
		if ev.EventType != models.EventOrderCreated || ev.Body == nil {
			continue
		}
		if ev.Body.Brand != "" {
			state.Brand = ev.Body.Brand
		}
		state.CustomerLat = ev.Body.CustomerLat
		state.CustomerLon = ev.Body.CustomerLon
		break
	}

	state.Status = deriveStatus(present)

	if state.Status == models.StatusCompleted {
		for i := len(sorted) - 1; i >= 0; i-- {
			if sorted[i].EventType == models.EventDelivered {
				ts := sorted[i].Timestamp
				state.CompletedAt = &ts
				break
			}
		}
	}

	return state, nil
}
