package orders

import (
	"time"

	"delivery-analytics/internal/models"
)

//go:generate mockgen -source=summarizer.go -destination=./mocks/summarizer_mock.go -package=mocks
type Summarizer interface {
	// Summarize folds a collection of reconstructed orders into aggregate
	// statistics. Averages are nil when no order contributed to them.
	Summarize(orders []*models.OrderState) models.MetricsSummary
}

type summarizer struct{}

func NewSummarizer() Summarizer {
	return &summarizer{}
}

func (s *summarizer) Summarize(orders []*models.OrderState) models.MetricsSummary {
	acc := summaryAccumulator{}
	for _, order := range orders {
		acc.add(order)
	}
	return acc.summary()
}

// summaryAccumulator folds orders one at a time. add is associative and
// commutative over the order set, and merge combines two accumulators, so
// partial summaries can be computed independently and merged.
type summaryAccumulator struct {
	total     int
	completed int

	prepSum     float64
	prepN       int
	deliverySum float64
	deliveryN   int
	totalSum    float64
	totalN      int
}

func (a *summaryAccumulator) add(order *models.OrderState) {
	a.total++
	if order.Status != models.StatusCompleted || order.CompletedAt == nil {
		return
	}
	a.completed++

	// Last occurrence per event type wins, matching the event set's sorted
	// view: for delivered this is the same timestamp as CompletedAt.
	lastSeen := make(map[models.EventType]time.Time, len(order.Events))
	for _, ev := range order.Events {
		lastSeen[ev.EventType] = ev.Timestamp
	}

	createdTS, hasCreated := lastSeen[models.EventOrderCreated]
	readyTS, hasReady := lastSeen[models.EventKitchenReady]
	deliveredTS, hasDelivered := lastSeen[models.EventDelivered]

	if hasCreated && hasReady {
		a.prepSum += readyTS.Sub(createdTS).Minutes()
		a.prepN++
	}
	if hasReady && hasDelivered {
		a.deliverySum += deliveredTS.Sub(readyTS).Minutes()
		a.deliveryN++
	}
	a.totalSum += order.CompletedAt.Sub(order.CreatedAt).Minutes()
	a.totalN++
}

func (a *summaryAccumulator) merge(other *summaryAccumulator) {
	a.total += other.total
	a.completed += other.completed
	a.prepSum += other.prepSum
	a.prepN += other.prepN
	a.deliverySum += other.deliverySum
	a.deliveryN += other.deliveryN
	a.totalSum += other.totalSum
	a.totalN += other.totalN
}

func (a *summaryAccumulator) summary() models.MetricsSummary {
	return models.MetricsSummary{
		TotalOrders:        a.total,
		CompletedOrders:    a.completed,
		InProgressOrders:   a.total - a.completed,
		AvgPrepMinutes:     mean(a.prepSum, a.prepN),
		AvgDeliveryMinutes: mean(a.deliverySum, a.deliveryN),
		AvgTotalMinutes:    mean(a.totalSum, a.totalN),
	}
}

// mean returns nil for an empty contributor set; averaging over zero
// orders must never divide by zero.
func mean(sum float64, n int) *float64 {
	if n == 0 {
		return nil
	}
	v := sum / float64(n)
	return &v
}
