package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheus_Counter(t *testing.T) {
	p := NewPrometheus("test")
	tags := map[string]string{"shape": "circle", "category": "standard"}

	p.Counter("calculations_total", 1, tags)
	p.Counter("calculations_total", 2, tags)
	p.Counter("calculations_total", -5, tags)

	expected := `
# HELP test_calculations_total Counter calculations_total
# TYPE test_calculations_total counter
test_calculations_total{category="standard",shape="circle"} 3
`
	require.NoError(t, testutil.GatherAndCompare(p.Registry(), strings.NewReader(expected), "test_calculations_total"))
}

func TestPrometheus_GaugeAndHistogram(t *testing.T) {
	p := NewPrometheus("test")

	p.Gauge("catalog_products", 3, nil)
	p.Gauge("catalog_products", 4, nil)
	p.Histogram("margined_fluid_ounces", 167.56, map[string]string{"shape": "rectangle"})
	p.Timing("calculation_duration", 2*time.Millisecond, map[string]string{"shape": "rectangle"})

	families, err := p.Registry().Gather()
	require.NoError(t, err)

	byName := make(map[string]bool)
	for _, f := range families {
		byName[f.GetName()] = true
		if f.GetName() == "test_catalog_products" {
			require.Len(t, f.GetMetric(), 1)
			assert.Equal(t, 4.0, f.GetMetric()[0].GetGauge().GetValue())
		}
		if f.GetName() == "test_calculation_duration_seconds" {
			require.Len(t, f.GetMetric(), 1)
			assert.Equal(t, uint64(1), f.GetMetric()[0].GetHistogram().GetSampleCount())
			assert.InDelta(t, 0.002, f.GetMetric()[0].GetHistogram().GetSampleSum(), 1e-9)
		}
	}

	assert.True(t, byName["test_catalog_products"])
	assert.True(t, byName["test_margined_fluid_ounces"])
	assert.True(t, byName["test_calculation_duration_seconds"])
	assert.True(t, byName["go_goroutines"], "runtime collector registered")
}

func TestPrometheus_MismatchedLabelsAreDropped(t *testing.T) {
	p := NewPrometheus("test")

	p.Counter("requests_total", 1, map[string]string{"method": "GET"})
	assert.NotPanics(t, func() {
		p.Counter("requests_total", 1, map[string]string{"route": "/x"})
	})

	assert.Equal(t, 1, testutil.CollectAndCount(p.counters["requests_total"]))
}

func TestPrometheus_Handler(t *testing.T) {
	p := NewPrometheus("test")
	p.Counter("calculations_total", 1, map[string]string{"shape": "rectangle"})

	rec := httptest.NewRecorder()
	p.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `test_calculations_total{shape="rectangle"} 1`)
}
