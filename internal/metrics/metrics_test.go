package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordRequest(t *testing.T) {
	before := testutil.ToFloat64(RequestsTotal.WithLabelValues("resolve", "artists", "done"))
	RecordRequest("resolve", "artists", "done", 20*time.Millisecond)
	after := testutil.ToFloat64(RequestsTotal.WithLabelValues("resolve", "artists", "done"))

	if after != before+1 {
		t.Errorf("expected counter to increase by 1, got %v -> %v", before, after)
	}
}

func TestRecordTransport(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		result string
	}{
		{"success", nil, "success"},
		{"failure", errors.New("connection refused"), "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := testutil.ToFloat64(TransportCalls.WithLabelValues("GET", tt.result))
			RecordTransport("GET", time.Millisecond, tt.err)
			after := testutil.ToFloat64(TransportCalls.WithLabelValues("GET", tt.result))
			if after != before+1 {
				t.Errorf("expected %s counter to increase by 1, got %v -> %v", tt.result, before, after)
			}
		})
	}
}

func TestSnapshot(t *testing.T) {
	reg := prometheus.NewRegistry()
	counter := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "infosys_test_total", Help: "test"}, []string{"kind"})
	hist := prometheus.NewHistogram(prometheus.HistogramOpts{Name: "infosys_test_seconds", Help: "test"})
	other := prometheus.NewGauge(prometheus.GaugeOpts{Name: "unrelated_gauge", Help: "test"})
	reg.MustRegister(counter, hist, other)

	counter.WithLabelValues("albums").Add(3)
	hist.Observe(0.5)
	hist.Observe(1.5)
	other.Set(7)

	samples, err := Snapshot(reg)
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}

	got := make(map[string]float64)
	for _, s := range samples {
		got[s.Name] = s.Value
	}

	if got["infosys_test_total"] != 3 {
		t.Errorf("expected counter value 3, got %v", got["infosys_test_total"])
	}
	if got["infosys_test_seconds_count"] != 2 || got["infosys_test_seconds_sum"] != 2 {
		t.Errorf("unexpected histogram samples: %v", got)
	}
	if _, ok := got["unrelated_gauge"]; ok {
		t.Error("expected families outside the namespace to be skipped")
	}
	for i := 1; i < len(samples); i++ {
		if samples[i-1].Name > samples[i].Name {
			t.Errorf("samples not sorted: %q before %q", samples[i-1].Name, samples[i].Name)
		}
	}
}
