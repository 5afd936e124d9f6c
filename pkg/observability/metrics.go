package observability

import (
	"github.com/aretw0/lattice/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records style mutations, registry membership and theme switches.
type Metrics struct {
	StyleMutations *prometheus.CounterVec
	Registrations  *prometheus.CounterVec
	ThemeSwitches  *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		StyleMutations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lattice_style_mutations_total",
				Help: "Total number of node style mutations",
			},
			[]string{"kind", "notified"},
		),
		Registrations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lattice_registry_events_total",
				Help: "Total number of nodes registered and unregistered",
			},
			[]string{"event"},
		),
		ThemeSwitches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lattice_theme_switches_total",
				Help: "Total number of active theme changes",
			},
			[]string{"theme"},
		),
	}
	if reg != nil {
		reg.MustRegister(m.StyleMutations, m.Registrations, m.ThemeSwitches)
	}
	return m
}

// Hooks returns hooks that record into m.
func (m *Metrics) Hooks() domain.Hooks {
	return domain.Hooks{
		OnStyleChange: func(e *domain.StyleEvent) {
			m.StyleMutations.WithLabelValues(string(e.Kind), boolLabel(e.Notified)).Inc()
		},
		OnRegister: func(*domain.NodeEvent) {
			m.Registrations.WithLabelValues("register").Inc()
		},
		OnUnregister: func(*domain.NodeEvent) {
			m.Registrations.WithLabelValues("unregister").Inc()
		},
		OnThemeChange: func(e *domain.ThemeEvent) {
			m.ThemeSwitches.WithLabelValues(e.Current).Inc()
		},
	}
}

func boolLabel(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
