package database

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.mongodb.org/mongo-driver/event"
)

var (
	dbCommandDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dinesaver_db_command_duration_seconds",
			Help:    "MongoDB command execution time in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"command", "status"},
	)

	dbCommandTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dinesaver_db_command_total",
			Help: "Total number of MongoDB commands",
		},
		[]string{"command", "status"},
	)

	dbSlowCommandsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dinesaver_db_slow_commands_total",
			Help: "Total number of slow MongoDB commands (>1 second)",
		},
		[]string{"command"},
	)

	dbConnectionsOpen = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dinesaver_db_connections_open",
			Help: "Number of open connections in the MongoDB pool",
		},
	)

	dbConnectionsInUse = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dinesaver_db_connections_in_use",
			Help: "Number of MongoDB connections currently checked out",
		},
	)
)

// commandMonitor records per-command duration and counts. The driver
// reports the duration itself, so no start times need tracking.
func commandMonitor() *event.CommandMonitor {
	return &event.CommandMonitor{
		Succeeded: func(_ context.Context, evt *event.CommandSucceededEvent) {
			observeCommand(evt.CommandName, evt.Duration, "success")
		},
		Failed: func(_ context.Context, evt *event.CommandFailedEvent) {
			observeCommand(evt.CommandName, evt.Duration, "error")
		},
	}
}

func observeCommand(command string, duration time.Duration, status string) {
	seconds := duration.Seconds()
	dbCommandDuration.WithLabelValues(command, status).Observe(seconds)
	dbCommandTotal.WithLabelValues(command, status).Inc()
	if seconds > 1.0 {
		dbSlowCommandsTotal.WithLabelValues(command).Inc()
	}
}

// poolMonitor keeps the connection pool gauges current.
func poolMonitor() *event.PoolMonitor {
	return &event.PoolMonitor{
		Event: func(evt *event.PoolEvent) {
			switch evt.Type {
			case event.ConnectionCreated:
				dbConnectionsOpen.Inc()
			case event.ConnectionClosed:
				dbConnectionsOpen.Dec()
			case event.GetSucceeded:
				dbConnectionsInUse.Inc()
			case event.ConnectionReturned:
				dbConnectionsInUse.Dec()
			}
		},
	}
}
