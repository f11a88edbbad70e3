package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SscSPs/fieldops_console/internal/platform/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *metrics.Metrics
	assert.NotPanics(t, func() {
		m.ObserveRequest("GET", "/x", "200")
		m.LeaveDebited("annual", 2)
		m.DebitRefused("insufficient")
		m.DebitRetried()
		m.SetOnline(3)
	})
	assert.Nil(t, m.Registry())
}

func TestMetrics_Exposition(t *testing.T) {
	m := metrics.New()
	m.LeaveDebited("annual", 3)
	m.LeaveDebited("annual", 4)
	m.DebitRefused("insufficient")
	m.SetOnline(2)

	expected := `
# HELP fieldops_leave_debits_total Leave days debited, by pool.
# TYPE fieldops_leave_debits_total counter
fieldops_leave_debits_total{pool="annual"} 7
`
	require.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "fieldops_leave_debits_total"))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "fieldops_online_accounts 2")
	assert.Contains(t, rec.Body.String(), `fieldops_leave_debit_refusals_total{reason="insufficient"} 1`)
}
