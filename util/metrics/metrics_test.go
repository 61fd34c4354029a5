package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/joaomarcosmb/cd-rental/util/metrics"
)

func TestNilMetricsIsNoop(t *testing.T) {
	var m *metrics.Metrics
	require.NotPanics(t, func() {
		m.RentalOpened()
		m.RentalClosed()
		m.ItemTransition("rent", true)
		m.PaymentTransition("complete", false)
		m.Rejected("rental", "NOT_FOUND")
	})
}

func TestCounters(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())

	m.RentalOpened()
	m.RentalOpened()
	m.ItemTransition("rent", false)
	m.Rejected("person", "VALIDATION_FAILED")

	require.Equal(t, 2.0, testutil.ToFloat64(m.RentalsOpened))
	require.Equal(t, 1.0, testutil.ToFloat64(m.ItemTransitions.WithLabelValues("rent", "rejected")))
	require.Equal(t, 0.0, testutil.ToFloat64(m.ItemTransitions.WithLabelValues("rent", "ok")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.Rejections.WithLabelValues("person", "VALIDATION_FAILED")))
}
