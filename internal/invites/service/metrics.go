package service

import "github.com/prometheus/client_golang/prometheus"

// Metrics counts invite lifecycle events. A nil *Metrics records nothing.
type Metrics struct {
	created     prometheus.Counter
	collisions  prometheus.Counter
	rateLimited prometheus.Counter
	revoked     prometheus.Counter
	redeemed    prometheus.Counter
	validations *prometheus.CounterVec
}

// NewMetrics registers the invite counters on reg.
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	counter := func(name, help string) prometheus.Counter {
		return prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "invites",
			Name:      name,
			Help:      help,
		})
	}

	m := &Metrics{
		created:     counter("created_total", "Invites issued."),
		collisions:  counter("code_collisions_total", "Generated codes that clashed with an existing code."),
		rateLimited: counter("rate_limited_total", "Invite creations rejected by the per-inviter window."),
		revoked:     counter("revoked_total", "Invites revoked by their inviter."),
		redeemed:    counter("redeemed_total", "Invites redeemed during signup."),
		validations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "invites",
			Name:      "validations_total",
			Help:      "Invite code validations by outcome.",
		}, []string{"outcome"}),
	}
	reg.MustRegister(m.created, m.collisions, m.rateLimited, m.revoked, m.redeemed, m.validations)
	return m
}

func (m *Metrics) incCreated() {
	if m != nil {
		m.created.Inc()
	}
}

func (m *Metrics) incCollision() {
	if m != nil {
		m.collisions.Inc()
	}
}

func (m *Metrics) incRateLimited() {
	if m != nil {
		m.rateLimited.Inc()
	}
}

func (m *Metrics) incRevoked() {
	if m != nil {
		m.revoked.Inc()
	}
}

func (m *Metrics) incRedeemed() {
	if m != nil {
		m.redeemed.Inc()
	}
}

func (m *Metrics) observeValidation(outcome string) {
	if m != nil {
		m.validations.WithLabelValues(outcome).Inc()
	}
}
