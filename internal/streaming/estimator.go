package streaming

import (
	"github.com/axiomhq/hyperloglog"
)

// DistinctEstimator counts distinct keys in bounded memory. Exactness is
// traded for bounded state under unbounded order volume; implementations
// must degrade accuracy rather than fail when saturated. Callers serialize
// access per bucket, so implementations need not be thread-safe.
//
//go:generate mockgen -source=estimator.go -destination=./mocks/estimator_mock.go -package=mocks
type DistinctEstimator interface {
	Add(key string)
	Estimate() float64
}

// EstimatorFactory builds a fresh estimator per open bucket.
type EstimatorFactory func() DistinctEstimator

type hllEstimator struct {
	sketch *hyperloglog.Sketch
}

// NewHLLEstimator returns a HyperLogLog-backed estimator (precision 14,
// ~0.8% standard error, fixed 16KB dense state per bucket).
func NewHLLEstimator() DistinctEstimator {
	return &hllEstimator{sketch: hyperloglog.New14()}
}

func (e *hllEstimator) Add(key string) {
	e.sketch.Insert([]byte(key))
}

func (e *hllEstimator) Estimate() float64 {
	return float64(e.sketch.Estimate())
}

type exactEstimator struct {
	seen map[string]struct{}
}

// NewExactEstimator returns an exact, unbounded-memory counter. Intended
// for tests that assert precise bucket aggregates.
func NewExactEstimator() DistinctEstimator {
	return &exactEstimator{seen: make(map[string]struct{})}
}

func (e *exactEstimator) Add(key string) {
	e.seen[key] = struct{}{}
}

func (e *exactEstimator) Estimate() float64 {
	return float64(len(e.seen))
}
