package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	httpadapter "rasbita/internal/adapters/http"
	pg "rasbita/internal/adapters/postgres"
	"rasbita/internal/mapping"
	"rasbita/internal/questionnaire"
	assesssvc "rasbita/internal/services/assessments"
	authsvc "rasbita/internal/services/auth"
	catalogsvc "rasbita/internal/services/catalog"
	reportsvc "rasbita/internal/services/reports"
	"rasbita/internal/workers/reportrunner"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and report workers",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		// Static tables are compiled in; refuse to start on a broken build.
		if err := errors.Join(mapping.ValidateTable(), questionnaire.Check()); err != nil {
			return fmt.Errorf("reference data: %w", err)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		repo, closeRepo, err := openStore(ctx, cfg, log)
		if err != nil {
			return fmt.Errorf("db connect error: %w", err)
		}
		defer closeRepo()
		if migrateOnStart, _ := cmd.Flags().GetBool("migrate"); migrateOnStart {
			if db, ok := repo.(*pg.DB); ok {
				if err := db.Migrate(ctx, "up", log); err != nil {
					return fmt.Errorf("migrate: %w", err)
				}
			}
		}

		auth := authsvc.New(repo, repo, cfg.SessionTTL, log)
		processor := reportrunner.ReportProcessor{Assessments: repo, Reports: repo, Jobs: repo}
		srv := httpadapter.New(auth, assesssvc.New(repo), reportsvc.New(repo), catalogsvc.New(),
			repo, processor, log, httpadapter.Options{CookieSecure: cfg.CookieSecure})

		var bg sync.WaitGroup
		if cfg.ReportWorkers > 0 {
			bg.Add(1)
			go func() {
				defer bg.Done()
				reportrunner.Run(ctx, repo, processor, cfg.ReportWorkers, 500*time.Millisecond, log)
			}()
			log.WithField("workers", cfg.ReportWorkers).Info("report workers started")
		}
		bg.Add(1)
		go func() {
			defer bg.Done()
			purgeSessions(ctx, auth, time.Hour, log)
		}()

		httpSrv := &http.Server{
			Addr:              cfg.ListenAddr,
			Handler:           srv.Routes(),
			ReadHeaderTimeout: 10 * time.Second,
		}
		errCh := make(chan error, 1)
		go func() { errCh <- httpSrv.ListenAndServe() }()
		log.WithField("addr", cfg.ListenAddr).Info("listening")

		select {
		case <-ctx.Done():
			log.Info("shutting down")
		case err := <-errCh:
			if !errors.Is(err, http.ErrServerClosed) {
				stop()
				bg.Wait()
				return fmt.Errorf("server error: %w", err)
			}
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Warn("http shutdown")
		}
		bg.Wait()
		return nil
	},
}

func purgeSessions(ctx context.Context, auth *authsvc.Service, every time.Duration, log logrus.FieldLogger) {
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			n, err := auth.PurgeExpired(ctx)
			if err != nil {
				log.WithError(err).Warn("session purge")
				continue
			}
			if n > 0 {
				log.WithField("sessions", n).Debug("expired sessions purged")
			}
		}
	}
}

func init() {
	serveCmd.Flags().Bool("migrate", false, "apply pending migrations before serving")
	rootCmd.AddCommand(serveCmd)
}
