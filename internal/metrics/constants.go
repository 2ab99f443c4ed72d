package metrics

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Business metric names
const (
	MetricNameDragonsHatched    = "dragons_hatched_total"
	MetricNameMissionsStarted   = "missions_dispatched_total"
	MetricNameMissionsResolved  = "missions_resolved_total"
	MetricNameItemsSold         = "items_sold_total"
	MetricNameItemsBought       = "items_bought_total"
	MetricNameCoinsEarned       = "coins_earned_total"
	MetricNameCoinsSpent        = "coins_spent_total"
	MetricNameDailyRewards      = "daily_rewards_claimed_total"
	MetricNameCareActions       = "care_actions_total"
	MetricNameCropsHarvested    = "crops_harvested_total"
	MetricNameUsersRegistered   = "users_registered_total"
	MetricNameLoginFailures     = "login_failures_total"
	MetricNameCatalogCacheHits  = "catalog_cache_hits_total"
	MetricNameCatalogCacheMiss  = "catalog_cache_misses_total"
)

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Business metric help text
const (
	HelpTextDragonsHatched   = "Total number of eggs hatched, by species rarity"
	HelpTextMissionsStarted  = "Total number of missions dispatched, by region"
	HelpTextMissionsResolved = "Total number of missions resolved, by reward tier"
	HelpTextItemsSold        = "Total number of items sold to the store"
	HelpTextItemsBought      = "Total number of items bought from the store"
	HelpTextCoinsEarned      = "Total coins credited to players"
	HelpTextCoinsSpent       = "Total coins spent in the store"
	HelpTextDailyRewards     = "Total number of daily login rewards granted"
	HelpTextCareActions      = "Total number of successful care actions, by action"
	HelpTextCropsHarvested   = "Total number of crops harvested"
	HelpTextUsersRegistered  = "Total number of accounts created"
	HelpTextLoginFailures    = "Total number of rejected logins"
	HelpTextCatalogCacheHits = "Species catalog cache hits"
	HelpTextCatalogCacheMiss = "Species catalog cache misses"
)

// Label names
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelItem   = "item"
	LabelRarity = "rarity"
	LabelRegion = "region"
	LabelTier   = "tier"
	LabelAction = "action"
	LabelSource = "source"
)

// Coin sources for CoinsEarned
const (
	SourceSale    = "sale"
	SourceDaily   = "daily"
	SourceStarter = "starter"
)

// HTTPLatencyBuckets covers page renders from sub-millisecond to several seconds
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5}
