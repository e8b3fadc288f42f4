package gateway

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	occupancyGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "lazygate_occupancy",
		Help: "Current number of sessions counted against occupancy (relayed or in lobby).",
	})

	backendStateGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "lazygate_backend_state",
		Help: "Current BackendState as an integer (Stopped=0, Starting=1, Started=2, Stopping=3, Crashed=4).",
	})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "lazygate_request_duration_seconds",
		Help:    "Time spent handling a single client connection end to end.",
		Buckets: prometheus.DefBuckets,
	}, []string{"intent"})
)
