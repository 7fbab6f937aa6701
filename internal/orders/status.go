package orders

import "delivery-analytics/internal/models"

// statusRule maps a set of qualifying event types to a resulting status.
// Rules are evaluated top-down; the first rule with any member present in
// the order's event-type set wins. Adding a lifecycle stage is a data
// change, not new branching.
type statusRule struct {
	anyOf  []models.EventType
	status models.OrderStatus
}

var statusRules = []statusRule{
	{anyOf: []models.EventType{models.EventDelivered}, status: models.StatusCompleted},
	{anyOf: []models.EventType{models.EventDriverPickedUp, models.EventDriverPing}, status: models.StatusOutForDelivery},
	{anyOf: []models.EventType{models.EventKitchenReady}, status: models.StatusReadyForPickup},
	{anyOf: []models.EventType{models.EventKitchenStarted, models.EventKitchenDone}, status: models.StatusPreparing},
	{anyOf: []models.EventType{models.EventOrderCreated}, status: models.StatusCreated},
}

// deriveStatus classifies an order by the event types present. A later
// event of lower rank never regresses the status: this is set membership,
// not a transition graph.
func deriveStatus(present map[models.EventType]bool) models.OrderStatus {
	for _, rule := range statusRules {
		for _, et := range rule.anyOf {
			if present[et] {
				return rule.status
			}
		}
	}
	return models.StatusUnknown
}
