package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus метрики сервиса. Отдаются по GET /metrics.

const namespace = "crypto_tracker"

// ============ Синхронизация цен ============

// SyncRuns - количество запусков синхронизации по результату (success|upstream_error|store_error)
var SyncRuns = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "sync",
		Name:      "runs_total",
		Help:      "Total number of price sync runs by result",
	},
	[]string{"result"},
)

// CoinsSynced - сколько наблюдений цен записано синхронизацией
var CoinsSynced = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "sync",
		Name:      "coins_recorded_total",
		Help:      "Total number of price observations recorded by sync",
	},
)

// CoinsSkipped - монеты каталога без цены в ответе фида
var CoinsSkipped = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "sync",
		Name:      "coins_skipped_total",
		Help:      "Total number of catalog coins skipped because the feed had no usable price",
	},
)

// SyncDuration - длительность одной синхронизации в секундах
var SyncDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "sync",
		Name:      "duration_seconds",
		Help:      "Duration of a price sync run in seconds",
		Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
	},
)

// ============ Аутентификация ============

// AuthFailures - отказы аутентификации по причине (credentials|missing_token|invalid_token|expired_token|unknown_user)
var AuthFailures = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "auth",
		Name:      "failures_total",
		Help:      "Total number of rejected authentication attempts by reason",
	},
	[]string{"reason"},
)

// TokensIssued - выданные токены доступа
var TokensIssued = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "auth",
		Name:      "tokens_issued_total",
		Help:      "Total number of issued access tokens",
	},
)

// Значения label result для SyncRuns
const (
	ResultSuccess       = "success"
	ResultUpstreamError = "upstream_error"
	ResultStoreError    = "store_error"
)
