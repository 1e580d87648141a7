package main

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"rasbita/internal/adapters/memory"
	pg "rasbita/internal/adapters/postgres"
	"rasbita/internal/config"
	"rasbita/internal/logging"
	"rasbita/internal/ports"
)

var rootCmd = &cobra.Command{
	Use:   "rasbita",
	Short: "RASBITA cybersecurity self-assessment service",
	Long: `rasbita serves the self-assessment questionnaire, the SOS relevance mappings
and the device risk matrix, and turns submissions into scored reports.`,
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "YAML config file (defaults to $RASBITA_CONFIG)")
}

// store is the full set of repositories; both adapters implement it.
type store interface {
	ports.AdminRepository
	ports.SessionRepository
	ports.AssessmentRepository
	ports.ReportRepository
	ports.JobRepository
}

func loadConfig(cmd *cobra.Command) (config.Config, *logrus.Logger, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, nil, err
	}
	return cfg, logging.New(cfg.Env, cfg.LogLevel), nil
}

// openStore connects to Postgres when DATABASE_URL is set. Outside production
// an empty URL selects the in-memory store.
func openStore(ctx context.Context, cfg config.Config, log logrus.FieldLogger) (store, func(), error) {
	if cfg.DatabaseURL == "" && !cfg.Production() {
		log.Warn("DATABASE_URL not set, using in-memory store")
		return memory.New(), func() {}, nil
	}
	db, err := openDB(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return db, db.Close, nil
}

func openDB(ctx context.Context, cfg config.Config) (*pg.DB, error) {
	if err := cfg.RequireDatabase(); err != nil {
		return nil, err
	}
	return pg.Connect(ctx, cfg.DatabaseURL)
}
