package obs

import (
	"fmt"
	"net/http"
	"sync/atomic"
)

// Metrics tracks application counters using atomics.
type Metrics struct {
	plans           atomic.Int64
	optionsProduced atomic.Int64
	skips           atomic.Int64
	upstreamErrors  atomic.Int64
	images          atomic.Int64
}

// NewMetrics creates a new Metrics instance.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// IncPlans increments the completed-plan counter.
func (m *Metrics) IncPlans() { m.plans.Add(1) }

// AddOptions adds to the produced trip-option counter.
func (m *Metrics) AddOptions(n int) { m.optionsProduced.Add(int64(n)) }

// AddSkips adds to the skipped-destination counter.
func (m *Metrics) AddSkips(n int) { m.skips.Add(int64(n)) }

// IncUpstreamErrors increments the upstream error counter.
func (m *Metrics) IncUpstreamErrors() { m.upstreamErrors.Add(1) }

// IncImages increments the generated-image counter.
func (m *Metrics) IncImages() { m.images.Add(1) }

// Snapshot returns current metric values.
func (m *Metrics) Snapshot() Snapshot {
	return Snapshot{
		Plans:           m.plans.Load(),
		OptionsProduced: m.optionsProduced.Load(),
		Skips:           m.skips.Load(),
		UpstreamErrors:  m.upstreamErrors.Load(),
		Images:          m.images.Load(),
	}
}

// Snapshot is a point-in-time view of the counters.
type Snapshot struct {
	Plans           int64
	OptionsProduced int64
	Skips           int64
	UpstreamErrors  int64
	Images          int64
}

// Handler serves the counters in Prometheus text format.
func (m *Metrics) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := m.Snapshot()

		w.Header().Set("Content-Type", "text/plain; version=0.0.4")
		w.WriteHeader(http.StatusOK)

		writeCounter(w, "plans_total", "Total number of completed plan requests", s.Plans)
		writeCounter(w, "trip_options_total", "Total number of trip options produced", s.OptionsProduced)
		writeCounter(w, "skipped_destinations_total", "Total number of destinations skipped during assembly", s.Skips)
		writeCounter(w, "upstream_errors_total", "Total number of upstream collaborator errors", s.UpstreamErrors)
		writeCounter(w, "images_generated_total", "Total number of itinerary images generated", s.Images)
	}
}

func writeCounter(w http.ResponseWriter, name, help string, value int64) {
	fmt.Fprintf(w, "# HELP %s %s\n", name, help)
	fmt.Fprintf(w, "# TYPE %s counter\n", name)
	fmt.Fprintf(w, "%s %d\n", name, value)
}
