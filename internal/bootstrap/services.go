package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/DragonKeeper_Go/internal/auth"
	"github.com/osse101/DragonKeeper_Go/internal/catalog"
	"github.com/osse101/DragonKeeper_Go/internal/config"
	"github.com/osse101/DragonKeeper_Go/internal/dragon"
	"github.com/osse101/DragonKeeper_Go/internal/economy"
	"github.com/osse101/DragonKeeper_Go/internal/farm"
	"github.com/osse101/DragonKeeper_Go/internal/gacha"
	"github.com/osse101/DragonKeeper_Go/internal/handler"
	"github.com/osse101/DragonKeeper_Go/internal/inventory"
	"github.com/osse101/DragonKeeper_Go/internal/mail"
	"github.com/osse101/DragonKeeper_Go/internal/mission"
	"github.com/osse101/DragonKeeper_Go/internal/repository"
	"github.com/osse101/DragonKeeper_Go/internal/reward"
	"github.com/osse101/DragonKeeper_Go/internal/server"
	"github.com/osse101/DragonKeeper_Go/internal/streak"
	"github.com/osse101/DragonKeeper_Go/internal/user"
	"github.com/osse101/DragonKeeper_Go/internal/worker"
)

// Services holds every domain service the site uses
type Services struct {
	Tokens    *auth.TokenManager
	Catalog   catalog.Catalog
	User      user.Service
	Streak    streak.Service
	Mission   mission.Service
	Dragon    dragon.Service
	Inventory inventory.Service
	Gacha     gacha.Service
	Economy   economy.Service
	Farm      farm.Service
}

// NewMailer picks SMTP when a host is configured and the log mailer otherwise.
// SMTP delivery runs on the returned pool, which the caller stops on shutdown.
func NewMailer(cfg *config.Config) (mail.Mailer, *worker.Pool) {
	if !cfg.SMTPEnabled() {
		slog.Info(LogMsgMailerLog)
		return mail.LogMailer{}, nil
	}

	slog.Info(LogMsgMailerSMTP, "host", cfg.SMTPHost, "port", cfg.SMTPPort)
	pool := worker.NewPool(MailWorkers, MailQueueSize)
	pool.Start()
	smtpMailer := mail.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.MailFrom)
	return mail.NewQueuedMailer(smtpMailer, pool), pool
}

// InitializeServices wires the domain services over one store
func InitializeServices(cfg *config.Config, store repository.Store, mailer mail.Mailer) *Services {
	tokens := auth.NewTokenManager(cfg.SecretKey, cfg.SessionTTL, cfg.ConfirmTokenTTL)
	cat := catalog.New(store, cfg.CatalogCacheTTL)

	return &Services{
		Tokens:    tokens,
		Catalog:   cat,
		User:      user.NewService(store, auth.NewPasswordHasher(0), tokens, mailer, cfg.BaseURL),
		Streak:    streak.NewService(store),
		Mission:   mission.NewService(store, cat, reward.NewRoller(nil)),
		Dragon:    dragon.NewService(store, cat),
		Inventory: inventory.NewService(store),
		Gacha:     gacha.NewService(store, cat, nil),
		Economy:   economy.NewService(store),
		Farm:      farm.NewService(store),
	}
}

// InitializeHandlers builds the page handlers over the services
func InitializeHandlers(svcs *Services) (server.Handlers, error) {
	rend, err := handler.NewRenderer()
	if err != nil {
		return server.Handlers{}, fmt.Errorf("%s: %w", ErrMsgFailedInitRenderer, err)
	}

	return server.Handlers{
		Renderer:  rend,
		Pages:     handler.NewPageHandler(svcs.Catalog, rend),
		Account:   handler.NewAccountHandler(svcs.User, rend),
		Home:      handler.NewHomeHandler(svcs.Streak, rend),
		Missions:  handler.NewMissionHandler(svcs.Mission, rend),
		Dragons:   handler.NewDragonHandler(svcs.Dragon, rend),
		Inventory: handler.NewInventoryHandler(svcs.Inventory, svcs.Gacha, rend),
		Store:     handler.NewStoreHandler(svcs.Economy, rend),
		Farm:      handler.NewFarmHandler(svcs.Farm, rend),
	}, nil
}
