package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	MarkersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "yollar_markers_created_total",
		Help: "Markers accepted by the mutation gateway.",
	})

	MarkersDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "yollar_markers_deleted_total",
		Help: "Markers removed by delete requests.",
	})

	MarkersSwept = promauto.NewCounter(prometheus.CounterOpts{
		Name: "yollar_markers_swept_total",
		Help: "Expired markers pruned by the background sweeper.",
	})

	Subscribers = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "yollar_ws_subscribers",
		Help: "Currently connected broadcast subscribers.",
	})

	BroadcastsDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "yollar_broadcasts_dropped_total",
		Help: "Snapshot publishes dropped because the hub queue was full.",
	})
)
