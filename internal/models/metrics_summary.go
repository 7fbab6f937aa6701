package models

import "time"

// MetricsSummary holds aggregate statistics over a set of reconstructed
// orders. Averages are nil, not zero, when no order contributed to them.
type MetricsSummary struct {
	TotalOrders        int      `json:"totalOrders"`
	CompletedOrders    int      `json:"completedOrders"`
	InProgressOrders   int      `json:"inProgressOrders"`
	AvgPrepMinutes     *float64 `json:"avgPrepMinutes,omitempty"`
	AvgDeliveryMinutes *float64 `json:"avgDeliveryMinutes,omitempty"`
	AvgTotalMinutes    *float64 `json:"avgTotalMinutes,omitempty"`
}

// RangeResult is the response of a location time-range query.
type RangeResult struct {
	Location  string         `json:"location"`
	StartTime time.Time      `json:"startTime"`
	EndTime   time.Time      `json:"endTime"`
	Metrics   MetricsSummary `json:"metrics"`
	Orders    []*OrderState  `json:"orders"`
	Truncated bool           `json:"truncated"`
}
