package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Business Metrics
var (
	DragonsHatched = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDragonsHatched,
			Help: HelpTextDragonsHatched,
		},
		[]string{LabelRarity},
	)

	MissionsDispatched = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMissionsStarted,
			Help: HelpTextMissionsStarted,
		},
		[]string{LabelRegion},
	)

	MissionsResolved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMissionsResolved,
			Help: HelpTextMissionsResolved,
		},
		[]string{LabelTier},
	)

	ItemsSold = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsSold,
			Help: HelpTextItemsSold,
		},
		[]string{LabelItem},
	)

	ItemsBought = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsBought,
			Help: HelpTextItemsBought,
		},
		[]string{LabelItem},
	)

	CoinsEarned = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCoinsEarned,
			Help: HelpTextCoinsEarned,
		},
		[]string{LabelSource},
	)

	CoinsSpent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCoinsSpent,
			Help: HelpTextCoinsSpent,
		},
	)

	DailyRewardsClaimed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDailyRewards,
			Help: HelpTextDailyRewards,
		},
	)

	CareActions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCareActions,
			Help: HelpTextCareActions,
		},
		[]string{LabelAction},
	)

	CropsHarvested = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCropsHarvested,
			Help: HelpTextCropsHarvested,
		},
	)

	UsersRegistered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameUsersRegistered,
			Help: HelpTextUsersRegistered,
		},
	)

	LoginFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameLoginFailures,
			Help: HelpTextLoginFailures,
		},
	)

	CatalogCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCatalogCacheHits,
			Help: HelpTextCatalogCacheHits,
		},
	)

	CatalogCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCatalogCacheMiss,
			Help: HelpTextCatalogCacheMiss,
		},
	)
)
