package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
)

// Unique constraints mapped to domain errors
const (
	ConstraintUsersUsername = "users_username_key"
	ConstraintUsersEmail    = "users_email_key"
)

// Table names
const (
	TableUsers     = "users"
	TableSpecies   = "species"
	TableInventory = "inventory_stacks"
	TableDragons   = "dragons"
	TableMissions  = "missions"
	TablePlots     = "plots"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction = "failed to begin transaction"
	ErrMsgFailedToBuildQuery       = "failed to build query"
)

// LockSuffix locks selected rows until the transaction ends
const LockSuffix = "FOR UPDATE"
