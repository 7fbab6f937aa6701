package streaming

import (
	"strconv"

	"delivery-analytics/internal/models"
)

// contribution is one event's delta against a single group key's bucket.
// The order identifier feeds the distinct estimator separately.
type contribution struct {
	groupKey string
	qty      int64
	revenue  float64
}

// contributionsFor extracts the grouping-specific deltas from an event.
//
// Item and brand keys exist only on order_created payloads that carry line
// items; other event types contribute nothing to those dimensions. The
// location dimension counts every event's order toward its bucket, with
// revenue and quantity added when a payload is present.
func contributionsFor(grouping models.Grouping, ev *models.Event) []contribution {
	switch grouping {
	case models.GroupingLocation:
		if ev.Location == "" {
			return nil
		}
		c := contribution{groupKey: ev.Location}
		if ev.Body != nil {
			for _, item := range ev.Body.Items {
				c.qty += item.Qty
				c.revenue += item.ExtendedPrice()
			}
		}
		return []contribution{c}

	case models.GroupingItem:
		return itemContributions(ev, func(item models.OrderItem) string {
			return strconv.FormatInt(item.ID, 10)
		})

	case models.GroupingBrand:
		return itemContributions(ev, func(item models.OrderItem) string {
			return strconv.FormatInt(item.BrandID, 10)
		})
	}
	return nil
}

func itemContributions(ev *models.Event, keyOf func(models.OrderItem) string) []contribution {
	if ev.EventType != models.EventOrderCreated || ev.Body == nil || len(ev.Body.Items) == 0 {
		return nil
	}
	byKey := make(map[string]*contribution, len(ev.Body.Items))
	order := make([]string, 0, len(ev.Body.Items))
	for _, item := range ev.Body.Items {
		key := keyOf(item)
		c, ok := byKey[key]
		if !ok {
			c = &contribution{groupKey: key}
			byKey[key] = c
			order = append(order, key)
		}
		c.qty += item.Qty
		c.revenue += item.ExtendedPrice()
	}
	out := make([]contribution, 0, len(order))
	for _, key := range order {
		out = append(out, *byKey[key])
	}
	return out
}
