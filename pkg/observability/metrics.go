// Package observability exposes Prometheus collectors for the rules engine.
package observability

import "github.com/prometheus/client_golang/prometheus"

// Outcome labels for finished games.
const (
	OutcomeWon  = "won"
	OutcomeDraw = "draw"
)

// Recorder counts committed transitions and finished games. A nil Recorder
// is valid and records nothing, so callers need no guards.
type Recorder struct {
	transitions *prometheus.CounterVec
	outcomes    *prometheus.CounterVec
}

// NewRecorder creates a recorder and registers its collectors.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fourline_transitions_total",
				Help: "Total number of transitions committed to the state store",
			},
			[]string{"transition"},
		),
		outcomes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fourline_games_finished_total",
				Help: "Total number of finished games by outcome",
			},
			[]string{"outcome"},
		),
	}
	reg.MustRegister(r.transitions, r.outcomes)
	return r
}

// Transition records one committed transition by name.
func (r *Recorder) Transition(name string) {
	if r == nil {
		return
	}
	r.transitions.WithLabelValues(name).Inc()
}

// GameFinished records a terminal game status by outcome.
func (r *Recorder) GameFinished(outcome string) {
	if r == nil {
		return
	}
	r.outcomes.WithLabelValues(outcome).Inc()
}
