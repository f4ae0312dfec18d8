// Package status is a small metrics facade shared by the engine, the clock and the viewer.
package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Registry groups integer and float metrics
// Writers cache pointers during setup; hot loops write straight to the atomics
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count()
}

// String renders all metrics as sorted "key=value" pairs, ints first
func (r *Registry) String() string {
	var parts []string
	r.Ints.Range(func(key string, v *atomic.Int64) {
		parts = append(parts, fmt.Sprintf("%s=%d", key, v.Load()))
	})
	r.Floats.Range(func(key string, v *AtomicFloat) {
		parts = append(parts, fmt.Sprintf("%s=%.2f", key, v.Load()))
	})
	return strings.Join(parts, " ")
}
