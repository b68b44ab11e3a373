package metrics

import (
	"sort"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"
)

const namespace = "infosys"

var (
	// Request metrics
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "Total number of resolve and send requests by kind and outcome status",
		},
		[]string{"op", "kind", "status"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "request_duration_seconds",
			Help:      "Duration of resolve and send work units in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"op", "kind"},
	)

	// Transport metrics
	TransportCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transport_calls_total",
			Help:      "Total number of HTTP calls to the catalog API",
		},
		[]string{"method", "result"},
	)

	TransportDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "transport_duration_seconds",
			Help:      "Duration of HTTP calls to the catalog API in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	// Circuit breaker metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "circuit_breaker_state",
			Help:      "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "circuit_breaker_transitions_total",
			Help:      "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from", "to"},
	)

	// Worker pool metrics
	QueueDepth = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "queue_depth",
			Help:      "Number of queued work units per priority lane",
		},
		[]string{"lane"},
	)

	// Identity metrics
	IdentityLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "identity_lookups_total",
			Help:      "Total number of user identity resolutions by source",
		},
		[]string{"source"},
	)
)

// RecordRequest records the outcome of a single resolve or send work unit.
func RecordRequest(op, kind, status string, d time.Duration) {
	RequestsTotal.WithLabelValues(op, kind, status).Inc()
	RequestDuration.WithLabelValues(op, kind).Observe(d.Seconds())
}

// RecordTransport records a single HTTP call.
func RecordTransport(method string, d time.Duration, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	TransportCalls.WithLabelValues(method, result).Inc()
	TransportDuration.WithLabelValues(method).Observe(d.Seconds())
}

// Sample is a single flattened metric value.
type Sample struct {
	Name   string            `json:"name"`
	Labels map[string]string `json:"labels,omitempty"`
	Value  float64           `json:"value"`
}

// Snapshot gathers the info system's families from g, sorted by name.
// Histograms are reported as their sample count and sum.
func Snapshot(g prometheus.Gatherer) ([]Sample, error) {
	families, err := g.Gather()
	if err != nil {
		return nil, err
	}

	var samples []Sample
	for _, mf := range families {
		if len(mf.GetName()) < len(namespace) || mf.GetName()[:len(namespace)] != namespace {
			continue
		}
		for _, m := range mf.GetMetric() {
			samples = append(samples, flatten(mf.GetName(), mf.GetType(), m)...)
		}
	}

	sort.SliceStable(samples, func(i, j int) bool { return samples[i].Name < samples[j].Name })
	return samples, nil
}

func flatten(name string, typ dto.MetricType, m *dto.Metric) []Sample {
	labels := make(map[string]string, len(m.GetLabel()))
	for _, lp := range m.GetLabel() {
		labels[lp.GetName()] = lp.GetValue()
	}

	switch typ {
	case dto.MetricType_COUNTER:
		return []Sample{{Name: name, Labels: labels, Value: m.GetCounter().GetValue()}}
	case dto.MetricType_GAUGE:
		return []Sample{{Name: name, Labels: labels, Value: m.GetGauge().GetValue()}}
	case dto.MetricType_HISTOGRAM:
		h := m.GetHistogram()
		return []Sample{
			{Name: name + "_count", Labels: labels, Value: float64(h.GetSampleCount())},
			{Name: name + "_sum", Labels: labels, Value: h.GetSampleSum()},
		}
	default:
		return nil
	}
}
