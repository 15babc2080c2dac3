package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/heartmarshall/kitchentory-backend/internal/access"
	"github.com/heartmarshall/kitchentory-backend/internal/adapter/email"
	"github.com/heartmarshall/kitchentory-backend/internal/adapter/postgres"
	auditrepo "github.com/heartmarshall/kitchentory-backend/internal/adapter/postgres/audit"
	householdrepo "github.com/heartmarshall/kitchentory-backend/internal/adapter/postgres/household"
	invitationrepo "github.com/heartmarshall/kitchentory-backend/internal/adapter/postgres/invitation"
	pantryrepo "github.com/heartmarshall/kitchentory-backend/internal/adapter/postgres/pantry"
	shoppingrepo "github.com/heartmarshall/kitchentory-backend/internal/adapter/postgres/shopping"
	userrepo "github.com/heartmarshall/kitchentory-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/kitchentory-backend/internal/auth"
	"github.com/heartmarshall/kitchentory-backend/internal/config"
	authsvc "github.com/heartmarshall/kitchentory-backend/internal/service/auth"
	"github.com/heartmarshall/kitchentory-backend/internal/service/household"
	"github.com/heartmarshall/kitchentory-backend/internal/service/invitation"
	"github.com/heartmarshall/kitchentory-backend/internal/service/pantry"
	"github.com/heartmarshall/kitchentory-backend/internal/service/shopping"
	usersvc "github.com/heartmarshall/kitchentory-backend/internal/service/user"
	"github.com/heartmarshall/kitchentory-backend/internal/transport/middleware"
	"github.com/heartmarshall/kitchentory-backend/internal/transport/rest"
	"github.com/heartmarshall/kitchentory-backend/internal/transport/websocket"
	"github.com/heartmarshall/kitchentory-backend/migrations"
)

const rateLimitCleanup = 5 * time.Minute

// Run loads configuration, connects to PostgreSQL, wires services and serves
// HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	if !cfg.Database.SkipMigrate {
		if err := Migrate(ctx, pool, logger); err != nil {
			return err
		}
	}

	limiter := middleware.NewRateLimiter(rateLimitCleanup)
	defer limiter.Stop()

	handler := NewHandler(cfg, pool, logger, limiter)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

// Migrate applies pending schema migrations through the pool.
func Migrate(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()
	if err := migrations.Up(ctx, db, logger); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// NewHandler builds repositories, services and the HTTP handler tree.
func NewHandler(cfg *config.Config, pool *pgxpool.Pool, logger *slog.Logger, limiter *middleware.RateLimiter) http.Handler {
	txm := postgres.NewTxManager(pool, logger)

	users := userrepo.New(pool)
	households := householdrepo.New(pool)
	invitations := invitationrepo.New(pool)
	lists := shoppingrepo.New(pool)
	inventory := pantryrepo.New(pool)
	audits := auditrepo.New(pool)

	checker := access.NewChecker(households)
	hub := websocket.NewHub(logger)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	authService := authsvc.NewService(logger, users, auth.NewPasswordHasher(cfg.Auth.BcryptCost), jwtManager)
	householdService := household.NewService(logger, households, lists, checker, audits, txm)
	invitationService := invitation.NewService(logger, invitations, households, users, checker,
		newMailer(cfg.Email, logger), audits, txm, cfg.Invitation)
	shoppingService := shopping.NewService(logger, lists, checker, audits, txm, hub)
	pantryService := pantry.NewService(logger, inventory, lists, checker, audits, txm, hub)
	userService := usersvc.NewService(logger, users)

	router := rest.NewRouter(rest.Handlers{
		Health:     rest.NewHealthHandler(pool, hub, BuildVersion()),
		Auth:       rest.NewAuthHandler(authService, logger),
		User:       rest.NewUserHandler(userService, logger),
		Household:  rest.NewHouseholdHandler(householdService, hub, logger),
		Invitation: rest.NewInvitationHandler(invitationService, logger),
		Shopping:   rest.NewShoppingHandler(shoppingService, logger),
		Pantry:     rest.NewPantryHandler(pantryService, logger),
		Realtime: rest.NewRealtimeHandler(checker,
			websocket.NewUpgrader(hub, originPatterns(cfg.CORS.AllowedOrigins), logger), logger),
	}, limiter.Limit(cfg.RateLimit.AuthPerMinute))

	return middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(authService),
		middleware.Logger(logger),
		limiter.Limit(cfg.RateLimit.APIPerMinute),
	)(router)
}

type invitationMailer interface {
	SendInvitation(ctx context.Context, to, householdName, acceptURL string, expiresAt time.Time) error
}

func newMailer(cfg config.EmailConfig, logger *slog.Logger) invitationMailer {
	if !cfg.Enabled() {
		logger.Warn("postmark token not set, invitation emails are logged only")
		return email.NewLogMailer(logger)
	}
	return email.NewClient(cfg)
}

// originPatterns converts CORS origins into WebSocket host patterns.
func originPatterns(allowed string) []string {
	var out []string
	for _, o := range middleware.ParseOrigins(allowed) {
		if _, host, ok := strings.Cut(o, "://"); ok {
			o = host
		}
		out = append(out, o)
	}
	return out
}
