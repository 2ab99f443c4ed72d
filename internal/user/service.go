// Package user manages accounts: registration, login and email confirmation.
package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/osse101/DragonKeeper_Go/internal/auth"
	"github.com/osse101/DragonKeeper_Go/internal/domain"
	"github.com/osse101/DragonKeeper_Go/internal/inventory"
	"github.com/osse101/DragonKeeper_Go/internal/logger"
	"github.com/osse101/DragonKeeper_Go/internal/mail"
	"github.com/osse101/DragonKeeper_Go/internal/metrics"
	"github.com/osse101/DragonKeeper_Go/internal/repository"
)

// Session is a logged-in user with a signed session token
type Session struct {
	User      domain.User
	Token     string
	ExpiresAt time.Time
}

// Service defines the account operations
type Service interface {
	Register(ctx context.Context, username, email, password string) (*Session, error)
	Login(ctx context.Context, username, password string) (*Session, error)
	Confirm(ctx context.Context, token string) (*domain.User, error)
	ResendConfirmation(ctx context.Context, userID string) error
	GetUser(ctx context.Context, userID string) (*domain.User, error)
}

// Store is the repository surface the account service needs
type Store interface {
	repository.Game
	repository.User
}

type service struct {
	repo    Store
	hasher  *auth.PasswordHasher
	tokens  *auth.TokenManager
	mailer  mail.Mailer
	baseURL string
}

// NewService creates a new user service
func NewService(repo Store, hasher *auth.PasswordHasher, tokens *auth.TokenManager, mailer mail.Mailer, baseURL string) Service {
	return &service{
		repo:    repo,
		hasher:  hasher,
		tokens:  tokens,
		mailer:  mailer,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Register creates the account with the starting balance and egg, then mails a confirmation link
func (s *service) Register(ctx context.Context, username, email, password string) (*Session, error) {
	log := logger.FromContext(ctx)
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))
	log.Info(LogMsgRegisterCalled, "username", username)

	if username == "" || email == "" || password == "" {
		return nil, domain.ErrInvalidInput
	}

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	u := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: hashed,
		Coins:        domain.StartingCoins,
	}
	if err := tx.InsertUser(ctx, u); err != nil {
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	inv, err := tx.GetInventory(ctx, u.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory: %w", err)
	}
	if err := inventory.Add(inv, domain.ItemEgg, StarterEggs); err != nil {
		return nil, err
	}
	if err := tx.UpdateInventory(ctx, u.ID, *inv); err != nil {
		return nil, fmt.Errorf("failed to update inventory: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	metrics.UsersRegistered.Inc()
	metrics.CoinsEarned.WithLabelValues(metrics.SourceStarter).Add(domain.StartingCoins)
	log.Info(LogMsgUserRegistered, "userID", u.ID, "username", u.Username)

	// The account exists at this point; a failed mail can be retried from /unconfirmed
	s.sendConfirmation(ctx, u)

	return s.newSession(*u)
}

// Login checks the credentials. Unknown users and wrong passwords both yield ErrInvalidCredentials.
func (s *service) Login(ctx context.Context, username, password string) (*Session, error) {
	log := logger.FromContext(ctx)
	username = strings.TrimSpace(username)
	log.Info(LogMsgLoginCalled, "username", username)

	u, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginFailures.Inc()
			log.Info(LogMsgLoginRejected, "username", username, "reason", "unknown user")
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if err := s.hasher.Verify(password, u.PasswordHash); err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginFailures.Inc()
			log.Info(LogMsgLoginRejected, "username", username, "reason", "bad password")
		}
		return nil, err
	}

	return s.newSession(*u)
}

// Confirm marks the token's user as confirmed
func (s *service) Confirm(ctx context.Context, token string) (*domain.User, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgConfirmCalled)

	userID, err := s.tokens.ParseConfirmation(token)
	if err != nil {
		return nil, err
	}
	if err := s.repo.ConfirmEmail(ctx, userID); err != nil {
		return nil, fmt.Errorf("failed to confirm email: %w", err)
	}
	u, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	log.Info(LogMsgEmailConfirmed, "userID", userID)
	return u, nil
}

// ResendConfirmation mails a fresh token unless the email is already confirmed
func (s *service) ResendConfirmation(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgResendCalled, "userID", userID)

	u, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}
	if u.EmailConfirmed {
		log.Info(LogMsgAlreadyConfirmedSkips, "userID", userID)
		return nil
	}

	token, err := s.tokens.IssueConfirmation(u.ID)
	if err != nil {
		return err
	}
	return s.mailer.Send(ctx, s.confirmationMessage(u, token))
}

// GetUser returns the user by ID
func (s *service) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	u, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}

func (s *service) newSession(u domain.User) (*Session, error) {
	token, exp, err := s.tokens.IssueSession(u.ID)
	if err != nil {
		return nil, err
	}
	return &Session{User: u, Token: token, ExpiresAt: exp}, nil
}

func (s *service) sendConfirmation(ctx context.Context, u *domain.User) {
	log := logger.FromContext(ctx)
	token, err := s.tokens.IssueConfirmation(u.ID)
	if err != nil {
		log.Error(LogErrFailedToIssueToken, "error", err, "userID", u.ID)
		return
	}
	if err := s.mailer.Send(ctx, s.confirmationMessage(u, token)); err != nil {
		log.Error(LogErrFailedToSendMail, "error", err, "userID", u.ID)
	}
}

func (s *service) confirmationMessage(u *domain.User, token string) mail.Message {
	return mail.Message{
		To:      u.Email,
		Subject: ConfirmSubject,
		Body:    fmt.Sprintf(ConfirmBodyTmpl, u.Username, s.baseURL, token),
	}
}
