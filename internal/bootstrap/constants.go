package bootstrap

import "time"

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized   = "Logging initialized"
	LogMsgStartingDragonKeeper = "Starting DragonKeeper"
	LogMsgConfigurationLoaded  = "Configuration loaded"
)

// Log messages for storage and catalog startup
const (
	LogMsgUsingMemoryStore   = "Using in-memory store, data is lost on restart"
	LogMsgDatabaseConnected  = "Database connected"
	LogMsgMigrationsApplied  = "Migrations applied"
	LogMsgSyncingCatalog     = "Syncing species catalog..."
	LogMsgMailerSMTP         = "Sending mail through SMTP"
	LogMsgMailerLog          = "SMTP not configured, confirmation mail goes to the log"
	ErrMsgFailedConnectDB    = "failed to connect to database"
	ErrMsgFailedMigrate      = "failed to apply migrations"
	ErrMsgFailedLoadCatalog  = "failed to load species catalog"
	ErrMsgFailedSyncCatalog  = "failed to sync species catalog"
	ErrMsgFailedInitRenderer = "failed to parse page templates"
)

// Pool sizing for pgxpool
const (
	DBMaxConnIdleTime = 5 * time.Minute
	DBMaxConnLifetime = time.Hour
)

// Outbound mail queue
const (
	MailWorkers   = 2
	MailQueueSize = 100
)

// Shutdown messages
const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgClosingDatabase      = "Closing database pool..."
	LogMsgDrainingMailQueue    = "Draining mail queue..."
	LogMsgMailQueueFailed      = "Mail queue did not drain"
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
)
