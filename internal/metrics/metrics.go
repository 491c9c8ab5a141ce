// Package metrics exposes the application's Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	FramesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "janken_frames_processed_total",
			Help: "Total camera frames run through the detection pipeline",
		},
	)
	GesturesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "janken_gestures_classified_total",
			Help: "Total classified frames by gesture label",
		},
		[]string{"gesture"},
	)
	RoundsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "janken_rounds_total",
			Help: "Total completed rounds by outcome",
		},
		[]string{"outcome"},
	)
	WSClients = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "janken_ws_clients",
			Help: "Currently connected websocket clients",
		},
	)
)

func init() {
	prometheus.MustRegister(FramesTotal)
	prometheus.MustRegister(GesturesTotal)
	prometheus.MustRegister(RoundsTotal)
	prometheus.MustRegister(WSClients)
}
