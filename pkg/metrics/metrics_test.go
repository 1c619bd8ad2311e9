package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWithRegisterer("lummoo-core", reg)

	m.IncBookingCreated("b1")
	m.IncBookingCreated("b1")
	m.IncBookingConflict("b1")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.BookingsCreated.WithLabelValues("b1")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BookingConflicts.WithLabelValues("b1")))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.IncBookingCreated("b1")
		m.IncBookingConflict("b1")
		m.IncRateLimitRejected("/bookings")
	})
}
