package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"laundry/api"
	httpin "laundry/internal/adapters/in/http"
	"laundry/internal/adapters/out/postgres"
	"laundry/internal/core/application/usecases/queries"
	"laundry/internal/logger"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

// NewRootCommand builds the laundry CLI.
func NewRootCommand() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:          "laundry",
		Short:        "Laundry order intake, fulfillment tracking and owner-profit reconciliation",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file read before the environment")

	root.AddCommand(
		serveCmd(&envFile),
		migrateCmd(&envFile),
		reportCmd(&envFile),
	)
	return root
}

func serveCmd(envFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the scheduled jobs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			app, log, cleanup, err := bootstrap(ctx, *envFile)
			if err != nil {
				return err
			}
			defer cleanup()

			doc, err := api.Load()
			if err != nil {
				return fmt.Errorf("loading API contract: %w", err)
			}

			e, err := httpin.NewRouter(doc, httpin.NewServer(app.Handlers(), log), log)
			if err != nil {
				return err
			}

			if app.config.JobsEnabled {
				jobManager := app.CreateJobManager()
				if err := jobManager.StartAll(); err != nil {
					return err
				}
				defer jobManager.StopAll()
			}

			errCh := make(chan error, 1)
			go func() {
				errCh <- e.Start(fmt.Sprintf("0.0.0.0:%s", app.config.HTTPPort))
			}()

			select {
			case err := <-errCh:
				if !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			case <-ctx.Done():
			}

			log.Info("Shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return e.Shutdown(shutdownCtx)
		},
	}
}

func migrateCmd(envFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := LoadConfig(*envFile)
			if err != nil {
				return err
			}

			db, err := OpenDatabase(cfg)
			if err != nil {
				return err
			}

			if err := postgres.Migrate(db); err != nil {
				return fmt.Errorf("migrating: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Schema is up to date")
			return nil
		},
	}
}

func reportCmd(envFile *string) *cobra.Command {
	var period string

	c := &cobra.Command{
		Use:   "report",
		Short: "Print the financial summary of a period type",
		RunE: func(cmd *cobra.Command, _ []string) error {
			query, err := queries.NewGetFinancialSummaryQuery(period)
			if err != nil {
				return err
			}

			app, _, cleanup, err := bootstrap(cmd.Context(), *envFile)
			if err != nil {
				return err
			}
			defer cleanup()

			report, err := app.CreateGetFinancialSummaryQueryHandler().Handle(cmd.Context(), query)
			if err != nil {
				return err
			}

			return printReport(cmd.OutOrStdout(), report)
		},
	}

	c.Flags().StringVarP(&period, "period", "p", "monthly", "monthly, yearly or all")
	return c
}

func printReport(out io.Writer, report queries.GetFinancialSummaryQueryResponse) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "PERIOD\tREVENUE\tBUSINESS EXPENSES\tSALARIES\tNET INCOME\tPER OWNER\tREMAINDER\t")
	for _, s := range report.Summaries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			s.Period, s.Revenue, s.BusinessExpenses, s.SalaryTotal, s.NetIncome, s.PerOwnerShare, s.ShareRemainder)
	}
	return w.Flush()
}

// bootstrap loads the configuration and opens every outbound dependency.
func bootstrap(ctx context.Context, envFile string) (*CompositionRoot, *slog.Logger, func(), error) {
	cfg, err := LoadConfig(envFile)
	if err != nil {
		return nil, nil, nil, err
	}

	log, err := logger.New(logger.Config{Level: cfg.LogLevel, Output: os.Stdout})
	if err != nil {
		return nil, nil, nil, err
	}

	db, err := OpenDatabase(cfg)
	if err != nil {
		return nil, nil, nil, err
	}

	c, closeCache, err := NewCache(ctx, cfg)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("connecting cache: %w", err)
	}

	app, err := NewCompositionRoot(cfg, db, c, log)
	if err != nil {
		_ = closeCache()
		return nil, nil, nil, err
	}

	cleanup := func() {
		if err := closeCache(); err != nil {
			log.Warn("Closing cache failed", "error", err)
		}
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	return app, log, cleanup, nil
}

// OpenDatabase connects through pgx, or through lib/pq when DB_DRIVER is pq.
func OpenDatabase(cfg Config) (*gorm.DB, error) {
	dialector := gormpostgres.Open(cfg.DSN())
	if cfg.DBDriver == "pq" {
		dialector = gormpostgres.New(gormpostgres.Config{DriverName: "postgres", DSN: cfg.DSN()})
	}

	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	return db, nil
}
