package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/osse101/DragonKeeper_Go/internal/domain"
)

var userColumns = []string{
	"user_id", "username", "email", "password_hash", "coins",
	"login_streak", "last_reward_date", "email_confirmed", "created_at", "updated_at",
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Coins,
		&u.LoginStreak, &u.LastRewardDate, &u.EmailConfirmed, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}
	if u.LastRewardDate != nil {
		d := u.LastRewardDate.UTC()
		u.LastRewardDate = &d
	}
	return &u, nil
}

func getUser(ctx context.Context, q querier, where squirrel.Sqlizer, suffix string) (*domain.User, error) {
	b := psql.Select(userColumns...).From(TableUsers).Where(where)
	if suffix != "" {
		b = b.Suffix(suffix)
	}
	row, err := queryRow(ctx, q, b)
	if err != nil {
		return nil, err
	}
	return scanUser(row)
}

// GetUserByID returns domain.ErrUserNotFound for unknown or malformed IDs
func (s *Store) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	id, err := parseUserUUID(userID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}
	return getUser(ctx, s.db, squirrel.Eq{"user_id": id}, "")
}

// GetUserByUsername looks a user up by exact username
func (s *Store) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return getUser(ctx, s.db, squirrel.Eq{"username": username}, "")
}

// GetUserByEmail looks a user up by exact email
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return getUser(ctx, s.db, squirrel.Eq{"email": email}, "")
}

// ConfirmEmail marks the user's address as confirmed
func (s *Store) ConfirmEmail(ctx context.Context, userID string) error {
	id, err := parseUserUUID(userID)
	if err != nil {
		return domain.ErrUserNotFound
	}
	sql, args, err := psql.Update(TableUsers).
		Set("email_confirmed", true).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"user_id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBuildQuery, err)
	}
	tag, err := s.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("failed to confirm email: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (t *gameTx) InsertUser(ctx context.Context, user *domain.User) error {
	b := psql.Insert(TableUsers).
		Columns("username", "email", "password_hash", "coins", "login_streak", "email_confirmed").
		Values(user.Username, user.Email, user.PasswordHash, user.Coins, user.LoginStreak, user.EmailConfirmed).
		Suffix("RETURNING user_id, created_at, updated_at")
	row, err := queryRow(ctx, t.tx, b)
	if err != nil {
		return err
	}
	if err := row.Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt); err != nil {
		if constraint, ok := uniqueViolation(err); ok {
			switch constraint {
			case ConstraintUsersUsername:
				return domain.ErrUsernameTaken
			case ConstraintUsersEmail:
				return domain.ErrEmailTaken
			}
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

func (t *gameTx) GetUserForUpdate(ctx context.Context, userID string) (*domain.User, error) {
	id, err := parseUserUUID(userID)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}
	return getUser(ctx, t.tx, squirrel.Eq{"user_id": id}, LockSuffix)
}

func (t *gameTx) UpdateUser(ctx context.Context, user domain.User) error {
	id, err := parseUserUUID(user.ID)
	if err != nil {
		return err
	}
	sql, args, err := psql.Update(TableUsers).
		Set("coins", user.Coins).
		Set("login_streak", user.LoginStreak).
		Set("last_reward_date", user.LastRewardDate).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"user_id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBuildQuery, err)
	}
	tag, err := t.tx.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
