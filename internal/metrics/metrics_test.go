package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveRequestCountsByRouteAndStatus(t *testing.T) {
	m := New()

	m.ObserveRequest("/clients/{id}", http.StatusOK, 3*time.Millisecond)
	m.ObserveRequest("/clients/{id}", http.StatusNotFound, time.Millisecond)
	m.ObserveRequest("/clients/{id}", http.StatusNotFound, time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.PageRenders.WithLabelValues("/clients/{id}", "200")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.PageRenders.WithLabelValues("/clients/{id}", "404")))
}

func TestObserveReloadKeepsGaugeOnError(t *testing.T) {
	m := New()

	m.ObserveReload("blog", 4, nil)
	m.ObserveReload("blog", 0, errors.New("disk gone"))

	assert.Equal(t, 4.0, testutil.ToFloat64(m.PostsLoaded.WithLabelValues("blog")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ContentReloads.WithLabelValues("blog", "error")))
}

func TestNilMetricsAreSafe(t *testing.T) {
	var m *Metrics
	m.ObserveRequest("/", http.StatusOK, time.Millisecond)
	m.ObserveReload("blog", 1, nil)
	m.CacheHit()
	m.CacheMiss()
	m.IncrementRecoveredPanics()
}

func TestHandlerExposesRegistry(t *testing.T) {
	m := New()
	m.CacheMiss()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `zkevmsite_markdown_cache_total{result="miss"} 1`))
}
