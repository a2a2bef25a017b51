package match

import "github.com/prometheus/client_golang/prometheus"

var (
	connectedClients = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "voodo_connected_clients",
		Help: "Number of currently connected clients",
	})

	waitingClients = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "voodo_waiting_clients",
		Help: "Number of clients waiting for a partner by session kind",
	}, []string{"kind"})

	matchesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "voodo_matches_total",
		Help: "Total pairs committed by session kind",
	}, []string{"kind"})

	relayedEventsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "voodo_relayed_events_total",
		Help: "Total session events relayed between paired clients by type",
	}, []string{"event"})
)

func init() {
	prometheus.MustRegister(connectedClients)
	prometheus.MustRegister(waitingClients)
	prometheus.MustRegister(matchesTotal)
	prometheus.MustRegister(relayedEventsTotal)
}
