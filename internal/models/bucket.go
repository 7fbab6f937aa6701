package models

import (
	"fmt"
	"time"
)

// Granularity is the fixed width of an aggregation time bucket.
type Granularity string

const (
	GranularityHour Granularity = "hour"
	GranularityDay  Granularity = "day"
)

func NewGranularityFromString(s string) (Granularity, error) {
	switch Granularity(s) {
	case GranularityHour:
		return GranularityHour, nil
	case GranularityDay:
		return GranularityDay, nil
	default:
		return "", fmt.Errorf("invalid granularity: %q", s)
	}
}

func (g Granularity) Duration() time.Duration {
	switch g {
	case GranularityHour:
		return time.Hour
	case GranularityDay:
		return 24 * time.Hour
	default:
		panic(fmt.Sprintf("invalid Granularity: %q", g))
	}
}

// Truncate returns the start of the bucket containing t, in UTC.
func (g Granularity) Truncate(t time.Time) time.Time {
	utc := t.UTC()
	switch g {
	case GranularityHour:
		return utc.Truncate(time.Hour)
	case GranularityDay:
		return time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)
	default:
		panic(fmt.Sprintf("invalid Granularity: %q", g))
	}
}

// FormatBucketStart renders a bucket start as a compact storage key segment.
func (g Granularity) FormatBucketStart(t time.Time) string {
	switch g {
	case GranularityHour:
		return g.Truncate(t).Format("20060102T15Z")
	case GranularityDay:
		return g.Truncate(t).Format("20060102Z")
	}
	return ""
}

// Grouping is the dimension a streaming aggregation instance groups by.
type Grouping string

const (
	GroupingItem     Grouping = "item"
	GroupingBrand    Grouping = "brand"
	GroupingLocation Grouping = "location"
)

func NewGroupingFromString(s string) (Grouping, error) {
	switch Grouping(s) {
	case GroupingItem:
		return GroupingItem, nil
	case GroupingBrand:
		return GroupingBrand, nil
	case GroupingLocation:
		return GroupingLocation, nil
	default:
		return "", fmt.Errorf("invalid grouping: %q", s)
	}
}

// BucketAggregate is one materialized aggregate row for a grouping key and
// time bucket. Rows are mutated incrementally while open; once IsFinalized
// flips true the row is immutable and late events are dropped.
type BucketAggregate struct {
	Grouping    Grouping    `json:"grouping"`
	Granularity Granularity `json:"granularity"`
	GroupKey    string      `json:"groupKey"`
	BucketStart time.Time   `json:"bucketStart"`
	Orders      float64     `json:"orders"` // approximate distinct order count
	Items       int64       `json:"items"`
	Revenue     float64     `json:"revenue"`
	IsFinalized bool        `json:"isFinalized"`
}

// BucketEnd is the exclusive upper bound of the bucket's time interval.
func (b *BucketAggregate) BucketEnd() time.Time {
	return b.BucketStart.Add(b.Granularity.Duration())
}
