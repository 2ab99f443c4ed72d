package repository

import (
	"context"

	"github.com/osse101/DragonKeeper_Go/internal/domain"
)

// User handles account lookups outside gameplay transactions
type User interface {
	// Lookups return domain.ErrUserNotFound when no row matches
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)

	ConfirmEmail(ctx context.Context, userID string) error
}
