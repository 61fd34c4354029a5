package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks rental lifecycle transitions and rejected mutations.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	RentalsOpened      prometheus.Counter
	RentalsClosed      prometheus.Counter
	ItemTransitions    *prometheus.CounterVec
	PaymentTransitions *prometheus.CounterVec
	Rejections         *prometheus.CounterVec
}

// New registers the counters on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		RentalsOpened: f.NewCounter(prometheus.CounterOpts{
			Name: "cdrental_rentals_opened_total",
			Help: "Total number of rentals opened",
		}),
		RentalsClosed: f.NewCounter(prometheus.CounterOpts{
			Name: "cdrental_rentals_closed_total",
			Help: "Total number of rentals returned",
		}),
		ItemTransitions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "cdrental_item_transitions_total",
			Help: "Guarded inventory item transitions by operation and result",
		}, []string{"op", "result"}),
		PaymentTransitions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "cdrental_payment_transitions_total",
			Help: "Payment transitions by operation and result",
		}, []string{"op", "result"}),
		Rejections: f.NewCounterVec(prometheus.CounterOpts{
			Name: "cdrental_rejections_total",
			Help: "Rejected mutations by entity and error code",
		}, []string{"entity", "code"}),
	}
}

func (m *Metrics) RentalOpened() {
	if m == nil {
		return
	}
	m.RentalsOpened.Inc()
}

func (m *Metrics) RentalClosed() {
	if m == nil {
		return
	}
	m.RentalsClosed.Inc()
}

// ItemTransition records a rent/return attempt; ok=false counts a refused one.
func (m *Metrics) ItemTransition(op string, ok bool) {
	if m == nil {
		return
	}
	m.ItemTransitions.WithLabelValues(op, result(ok)).Inc()
}

func (m *Metrics) PaymentTransition(op string, ok bool) {
	if m == nil {
		return
	}
	m.PaymentTransitions.WithLabelValues(op, result(ok)).Inc()
}

func (m *Metrics) Rejected(entity, code string) {
	if m == nil || code == "" {
		return
	}
	m.Rejections.WithLabelValues(entity, code).Inc()
}

func result(ok bool) string {
	if ok {
		return "ok"
	}
	return "rejected"
}
