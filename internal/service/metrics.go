package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("github.com/shenikar/cad_state_system/internal/service")

var (
	syncDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "cad_sync_duration_seconds",
		Help:    "Duration of CAD sync requests by sync mode",
		Buckets: prometheus.DefBuckets,
	}, []string{"mode", "result"})

	syncSkipped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cad_sync_skipped_total",
		Help: "Map syncs skipped because the visible area barely changed",
	})

	syncCoalesced = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cad_sync_coalesced_total",
		Help: "Sync requests merged into an already queued sync",
	})

	indexedEntities = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "cad_indexed_entities",
		Help: "Number of entities in the current snapshot by kind",
	}, []string{"kind"})

	detailsCacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cad_details_cache_lookups_total",
		Help: "Details cache lookups by entity and result",
	}, []string{"entity", "result"})

	statusChanges = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cad_status_changes_total",
		Help: "Callsign status changes by new status",
	}, []string{"status"})

	eventsPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cad_state_events_published_total",
		Help: "State events published by type",
	}, []string{"type"})
)
