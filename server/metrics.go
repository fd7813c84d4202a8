// Prometheus metrics for the game API, served at /metrics in the standard
// text exposition format:
//   - game_actions_total{action,outcome}  – actions processed
//   - game_level_advances_total{level}    – successful level transitions
//   - game_chat_total{outcome}            – coach questions answered vs apologized
//   - game_sessions                       – live sessions (gauge)
package server

import "github.com/prometheus/client_golang/prometheus"

var (
	mtxActions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "game_actions_total",
			Help: "Actions processed",
		},
		[]string{"action", "outcome"}, // outcome: success|failure
	)

	mtxAdvances = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "game_level_advances_total",
			Help: "Successful level transitions",
		},
		[]string{"level"},
	)

	mtxChat = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "game_chat_total",
			Help: "Coach questions processed",
		},
		[]string{"outcome"}, // outcome: answered|apologized|gated
	)

	mtxSessions = prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "game_sessions",
			Help: "Live sessions",
		},
		func() float64 { return float64(sessionCount()) },
	)
)

// sessionCount is set by New once the game is known.
var sessionCount = func() int { return 0 }

func init() {
	prometheus.MustRegister(mtxActions, mtxAdvances, mtxChat, mtxSessions)
}

func outcome(success bool) string {
	if success {
		return "success"
	}
	return "failure"
}
