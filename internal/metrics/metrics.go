// Package metrics exposes process-wide Execution Engine counters via
// Prometheus, wired in only when the caller opts in with a listen
// address. When unused the engine never touches this package.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector aggregates counters for one ndtmsim process. A nil
// *Collector is valid and every method on it is a no-op, so callers
// that didn't opt into metrics can pass one around unconditionally.
type Collector struct {
	configurationsExpanded prometheus.Counter
	tapesSharedNoOp        prometheus.Counter
	tapesMutatedInPlace    prometheus.Counter
	tapesDuplicated        prometheus.Counter
	verdicts               *prometheus.CounterVec
	queueHighWaterMark     prometheus.Gauge
	queueDepthMax          int
}

// New registers and returns a Collector against a fresh registry,
// returning both so the caller can mount the registry's handler.
func New() (*Collector, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	c := &Collector{
		configurationsExpanded: factory.NewCounter(prometheus.CounterOpts{
			Name: "ndtm_configurations_expanded_total",
			Help: "Configurations dequeued and expanded by the execution engine.",
		}),
		tapesSharedNoOp: factory.NewCounter(prometheus.CounterOpts{
			Name: "ndtm_tape_writes_shared_total",
			Help: "Writes that reused a tape unchanged because the symbol already matched.",
		}),
		tapesMutatedInPlace: factory.NewCounter(prometheus.CounterOpts{
			Name: "ndtm_tape_writes_in_place_total",
			Help: "Writes that mutated a uniquely-owned tape in place.",
		}),
		tapesDuplicated: factory.NewCounter(prometheus.CounterOpts{
			Name: "ndtm_tape_writes_duplicated_total",
			Help: "Writes that triggered a copy-on-write duplication of a shared tape.",
		}),
		verdicts: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ndtm_verdicts_total",
			Help: "Verdicts emitted, partitioned by kind.",
		}, []string{"verdict"}),
		queueHighWaterMark: factory.NewGauge(prometheus.GaugeOpts{
			Name: "ndtm_queue_high_water_mark",
			Help: "The largest configuration queue depth observed across all runs in this process.",
		}),
	}
	return c, reg
}

// Handler returns an http.Handler exposing reg in the Prometheus text
// exposition format.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func (c *Collector) ConfigurationExpanded() {
	if c == nil {
		return
	}
	c.configurationsExpanded.Inc()
}

func (c *Collector) TapeSharedNoOp() {
	if c == nil {
		return
	}
	c.tapesSharedNoOp.Inc()
}

func (c *Collector) TapeMutatedInPlace() {
	if c == nil {
		return
	}
	c.tapesMutatedInPlace.Inc()
}

func (c *Collector) TapeDuplicated() {
	if c == nil {
		return
	}
	c.tapesDuplicated.Inc()
}

func (c *Collector) Verdict(kind string) {
	if c == nil {
		return
	}
	c.verdicts.WithLabelValues(kind).Inc()
}

// ObserveQueueDepth records depth as a high-water mark: the gauge only
// moves up, tracking the largest depth seen across the process's runs
// rather than whatever depth happened to be current at the last call.
func (c *Collector) ObserveQueueDepth(depth int) {
	if c == nil {
		return
	}
	if depth <= c.queueDepthMax {
		return
	}
	c.queueDepthMax = depth
	c.queueHighWaterMark.Set(float64(depth))
}
