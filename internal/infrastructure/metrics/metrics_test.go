package metrics_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pg-hostel-api/internal/infrastructure/metrics"
)

func TestMetrics_Recorder(t *testing.T) {
	m := metrics.New()

	m.ResidentRegistered("self")
	m.ResidentRegistered("admin")
	m.ResidentRegistered("admin")
	m.RoomAllocated()
	m.RentStatusChanged(true)
	m.ComplaintFiled()
	m.ComplaintResolved()
	m.NoticePosted()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.ResidentsRegistered.WithLabelValues("self")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.ResidentsRegistered.WithLabelValues("admin")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RoomsAllocated))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RentChanges.WithLabelValues("true")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.RentChanges.WithLabelValues("false")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.NoticesPosted))
}

func TestMetrics_HTTP(t *testing.T) {
	m := metrics.New()
	m.ObserveHTTP("GET", "/api/notices", 200, time.Now())

	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("GET", "/api/notices", "200")))

	families, err := m.Registry.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "smartpg_http_request_duration_seconds")
	assert.Contains(t, names, "go_goroutines")
}
