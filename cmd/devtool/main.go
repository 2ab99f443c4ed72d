package main

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

func newRegistry() *Registry {
	return NewRegistry(
		&WaitForDBCommand{},
		&MigrateCommand{},
		&SeedCommand{},
		&HealthCheckCommand{},
	)
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	registry := newRegistry()
	err := registry.Dispatch(os.Args[1:])
	switch {
	case err == nil:
	case errors.Is(err, errNoCommand):
		registry.WriteHelp(os.Stdout)
		os.Exit(2)
	case errors.Is(err, errUnknownCommand):
		PrintError("%v", err)
		registry.WriteHelp(os.Stdout)
		os.Exit(2)
	default:
		PrintError("%v", err)
		os.Exit(1)
	}
}
