package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNewRegistersCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.AccountsRegistered.Inc()
	m.ResolveCacheHits.WithLabelValues("discord").Add(2)

	if got := testutil.ToFloat64(m.AccountsRegistered); got != 1 {
		t.Fatalf("expected 1 registration, got %v", got)
	}
	if got := testutil.ToFloat64(m.ResolveCacheHits.WithLabelValues("discord")); got != 2 {
		t.Fatalf("expected 2 cache hits, got %v", got)
	}
}

func TestNewDoubleRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)

	defer func() {
		if recover() == nil {
			t.Fatal("expected duplicate registration to panic")
		}
	}()
	New(reg)
}
