package config

// Storage backends
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)
