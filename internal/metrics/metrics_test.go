package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_RecordRequest(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordRequest(200, 15*time.Millisecond)
	c.RecordRequest(404, 2*time.Millisecond)
	c.RecordRequest(200, 8*time.Millisecond)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `courseboard_http_requests_total{status_code="200"} 2`)
	assert.Contains(t, body, `courseboard_http_requests_total{status_code="404"} 1`)
	assert.Contains(t, body, "courseboard_http_request_duration_seconds_count 3")
}
