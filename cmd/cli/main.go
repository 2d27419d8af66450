package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hinterbergers/mycliniq-sub005/cmd/cli/commands"
	"github.com/hinterbergers/mycliniq-sub005/internal/config"
	"github.com/hinterbergers/mycliniq-sub005/pkg/core/rules"
	"github.com/hinterbergers/mycliniq-sub005/pkg/postgres"
	"github.com/hinterbergers/mycliniq-sub005/pkg/utils/logging"
)

var (
	env        string
	configPath string
	app        *commands.AppContext
	store      *postgres.DB
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "roster",
		Short: "Duty roster CLI - solve and publish monthly duty rosters",
		Long:  `A CLI tool for solving monthly hospital duty rosters: preview and commit solver runs, manage admin locks, and export the published sheet.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil && app.Logger != nil {
				app.Logger.Sync()
			}
			if store != nil {
				store.Close()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (required: test, prod, etc.)")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default roster_config.yaml)")
	rootCmd.MarkPersistentFlagRequired("env")

	rootCmd.AddCommand(commands.PreviewCmd(appRef()))
	rootCmd.AddCommand(commands.RunCmd(appRef()))
	rootCmd.AddCommand(commands.StateCmd(appRef()))
	rootCmd.AddCommand(commands.LockCmd(appRef()))
	rootCmd.AddCommand(commands.SummaryCmd(appRef()))
	rootCmd.AddCommand(commands.ExportCmd(appRef()))
	rootCmd.AddCommand(commands.ServeCmd(appRef()))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// appRef returns the shared AppContext, created empty here and filled
// in by initApp before any command runs.
func appRef() *commands.AppContext {
	if app == nil {
		app = &commands.AppContext{}
	}
	return app
}

// initApp sets up logger, config, catalog, and database
func initApp() error {
	var err error
	appRef()
	app.Ctx = context.Background()

	app.Logger, err = logging.InitLogger(env)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.Logger.Info("Starting application", zap.String("environment", env))

	app.Logger.Info("Loading configuration")
	if configPath != "" {
		app.Cfg, err = config.LoadFromPath(configPath)
	} else {
		app.Cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.Logger.Debug("Configuration loaded successfully")

	app.Catalog = rules.NewCatalog()
	app.Logger.Debug("Rule catalog built",
		zap.String("version", app.Catalog.Version()),
		zap.Int("rules", app.Catalog.Len()))

	app.Logger.Info("Connecting to database")
	store, err = postgres.NewDB(app.Ctx, app.Cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := store.RunMigrations(app.Ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	app.Store = store
	app.Logger.Info("Database initialized successfully")

	return nil
}
