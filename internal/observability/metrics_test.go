package observability

import (
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics(t *testing.T) {
	m := GetMetrics()

	if m.HTTPRequestsTotal == nil {
		t.Error("HTTPRequestsTotal metric not initialized")
	}
	if m.HTTPRequestDuration == nil {
		t.Error("HTTPRequestDuration metric not initialized")
	}
	if m.EchoRequestsTotal == nil {
		t.Error("EchoRequestsTotal metric not initialized")
	}

	before := testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("POST", "/echo", "200"))
	m.HTTPRequestsTotal.WithLabelValues("POST", "/echo", "200").Inc()
	after := testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("POST", "/echo", "200"))
	if after != before+1 {
		t.Errorf("expected counter to increase by 1, got %f -> %f", before, after)
	}

	m.HTTPRequestsInFlight.Set(3)
	if testutil.ToFloat64(m.HTTPRequestsInFlight) != 3 {
		t.Errorf("expected in-flight gauge to be 3, got %f", testutil.ToFloat64(m.HTTPRequestsInFlight))
	}
	m.HTTPRequestsInFlight.Set(0)
}

func TestMetricsSingleton(t *testing.T) {
	m1 := GetMetrics()
	m2 := GetMetrics()

	if m1 != m2 {
		t.Error("GetMetrics should return the same instance")
	}
}

func TestMetricsConcurrentIncrements(t *testing.T) {
	m := GetMetrics()
	counter := m.HTTPRequestsTotal.WithLabelValues("GET", "/health", "200")

	const n = 200
	before := testutil.ToFloat64(counter)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			counter.Inc()
		}()
	}
	wg.Wait()

	after := testutil.ToFloat64(counter)
	if after != before+n {
		t.Errorf("expected %d concurrent increments to all land, got %f -> %f", n, before, after)
	}
}
