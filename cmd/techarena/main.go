package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dukerupert/techarena/internal/config"
	"github.com/dukerupert/techarena/internal/dashboard"
	"github.com/dukerupert/techarena/internal/database"
	"github.com/dukerupert/techarena/internal/logging"
	"github.com/dukerupert/techarena/internal/model"
)

// App holds what every subcommand needs after config is loaded.
type App struct {
	cfg    *config.Config
	logger *slog.Logger
}

var (
	configPath string
	app        *App
)

// operator is the actor for CLI commands: an admin that is not a stored user.
var operator = model.User{Role: model.RoleAdmin}

func main() {
	rootCmd := &cobra.Command{
		Use:           "techarena",
		Short:         "Field technician task tracking and bonus compliance",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to techarena.yaml")

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(reportCmd())
	rootCmd.AddCommand(rankingCmd())
	rootCmd.AddCommand(userCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func initApp() error {
	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadFromPath(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return err
	}
	app = &App{cfg: cfg, logger: logging.Setup(cfg.Log.Level)}
	return nil
}

// openService opens the database and builds a service without a live hub,
// for one-shot commands.
func openService() (*sql.DB, *dashboard.Service, error) {
	db, err := database.Open(app.cfg.Database.Path)
	if err != nil {
		return nil, nil, err
	}
	svc := dashboard.New(db, nil, dashboard.Options{
		DefaultPassword: app.cfg.Seed.DefaultPassword,
		SessionTTL:      app.cfg.Session.TTL,
	}, app.logger)
	return db, svc, nil
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := database.Open(app.cfg.Database.Path)
			if err != nil {
				return err
			}
			defer db.Close()

			v, err := database.Version(db)
			if err != nil {
				return err
			}
			app.logger.Info("database migrated", "path", app.cfg.Database.Path, "version", v)
			return nil
		},
	}
}
