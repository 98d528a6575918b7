package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"campaign-hub/internal/adapter/estimator"
	"campaign-hub/internal/adapter/http"
	"campaign-hub/internal/adapter/postgres"
	"campaign-hub/internal/adapter/usecase"
	"campaign-hub/internal/config"
	"campaign-hub/internal/core/domain"
	"campaign-hub/internal/db"
)

// main wires the campaign-hub commands. serve starts the HTTP API, migrate
// applies or reverts the schema and seed loads demo data.
func main() {
	root := &cobra.Command{
		Use:           "campaign-hub",
		Short:         "Marketing campaign management backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(serveCommand(), migrateCommand(), seedCommand())

	if err := root.ExecuteContext(context.Background()); err != nil {
		slog.Error("command failed", slog.Any("error", err))
		os.Exit(1)
	}
}

// setup loads configuration and builds the logger shared by all commands.
func setup() (config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, nil, fmt.Errorf("load config: %w", err)
	}
	logger := cfg.Log.New(os.Stdout).With(slog.String("env", cfg.Env))
	return cfg, logger, nil
}

func serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "start the HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg, logger)
		},
	}
}

// serve optionally runs migrations, initializes the database pool and
// repositories, then starts the HTTP server. On receiving a termination
// signal it gracefully shuts down the server.
func serve(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	if cfg.Psql.RunMigrations {
		if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied successfully")
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return fmt.Errorf("database connection: %w", err)
	}
	defer pool.Close()

	segments := postgres.NewSegmentRepository(pool)
	accounts := postgres.NewRewardAccountRepository(pool)
	campaigns := postgres.NewCampaignRepository(pool)
	reports := postgres.NewReportRepository(pool)
	users := postgres.NewUserRepository(pool)
	est := estimator.New(cfg.Env)
	lifecycle := domain.Lifecycle{RequirePending: cfg.Approval.RequirePending}

	handler := httpadapter.NewHandler(httpadapter.Services{
		Segments:       usecase.NewSegmentUseCase(segments, est, logger),
		RewardAccounts: usecase.NewRewardAccountUseCase(accounts, logger),
		Campaigns:      usecase.NewCampaignUseCase(campaigns, segments, accounts, users, est, lifecycle, logger),
		Reports:        usecase.NewReportUseCase(reports, logger),
		Dashboard:      usecase.NewDashboardUseCase(campaigns, est),
	}, cfg.CORS, logger)

	srv := &http.Server{
		Addr:        fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:     handler.Router(),
		ReadTimeout: cfg.HTTP.ReadTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening",
			slog.Int("port", int(cfg.HTTP.Port)),
			slog.Bool("approval_require_pending", lifecycle.RequirePending))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err = <-errCh:
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	logger.Info("server gracefully stopped")
	return nil
}

func migrateCommand() *cobra.Command {
	var down bool
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "apply database migrations",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}
			addr := cfg.Psql.Addr.String()
			if down {
				if err = db.Rollback(addr); err != nil {
					return fmt.Errorf("rollback: %w", err)
				}
				logger.Info("migrations rolled back")
				return nil
			}
			if err = db.Migrate(addr); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			logger.Info("migrations applied successfully")
			return nil
		},
	}
	cmd.Flags().BoolVar(&down, "down", false, "revert every migration")
	return cmd
}

func seedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "load demo users, segments, reward accounts and campaigns",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			pool, err := db.NewPostgresPool(ctx, cfg.Psql)
			if err != nil {
				return fmt.Errorf("database connection: %w", err)
			}
			defer pool.Close()

			if err = db.Seed(ctx, pool); err != nil {
				return fmt.Errorf("seed: %w", err)
			}
			logger.Info("seed data loaded")
			return nil
		},
	}
}
