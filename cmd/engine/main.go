package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofrs/flock"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"jobboard-engine/internal/apply"
	"jobboard-engine/internal/config"
	"jobboard-engine/internal/events"
	"jobboard-engine/internal/httpapi"
	"jobboard-engine/internal/jobs"
	"jobboard-engine/internal/logger"
	"jobboard-engine/internal/polls"
	"jobboard-engine/internal/scheduler"
	"jobboard-engine/internal/upstream"
)

func main() {
	_ = godotenv.Load()

	dataDir := os.Getenv("JOBBOARD_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	userCfgPath, err := config.EnsureUserConfig(dataDir, filepath.Join("config", "config.yml"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "config bootstrap failed: %v\n", err)
		os.Exit(1)
	}

	loadCfg := func() (config.Config, error) {
		raw, err := config.Load(userCfgPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg, vr := config.NormalizeAndValidate(raw)
		if !vr.OK() {
			return config.Config{}, fmt.Errorf("invalid config: %v", vr.Errors)
		}
		return cfg, nil
	}
	cfg, err := loadCfg()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed (%s): %v\n", userCfgPath, err)
		os.Exit(1)
	}

	logger.Init(cfg.Production())
	log := logger.Get()

	// One engine per data dir.
	lock := flock.New(filepath.Join(dataDir, "engine.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		log.Fatal().Err(err).Msg("instance lock failed")
	}
	if !locked {
		log.Fatal().Str("data_dir", dataDir).Msg("another engine already holds the lock")
	}
	defer lock.Unlock()

	var cfgVal atomic.Value
	cfgVal.Store(cfg)

	hub := events.NewHub()

	client := upstream.New(upstream.Config{
		BaseURL:    cfg.Upstream.BaseURL,
		ClientID:   cfg.Upstream.ClientID,
		Timeout:    cfg.UpstreamTimeout(),
		RatePerSec: cfg.Upstream.RatePerSec,
		Burst:      cfg.Upstream.Burst,
	}, log)
	svc := jobs.NewService(client, log)
	snap := jobs.NewSnapshot(svc, hub, log)

	var pollStore *polls.Store
	if cfg.Polls.Enabled {
		dsn := cfg.Polls.DSN
		if dsn != "" && !filepath.IsAbs(dsn) {
			dsn = filepath.Join(dataDir, dsn)
		}
		pollStore, err = polls.Open(dsn)
		if err != nil {
			log.Fatal().Err(err).Msg("polls store open failed")
		}
		defer pollStore.Close()
	}

	deps := httpapi.Deps{
		Jobs:        svc,
		Snapshot:    snap,
		Apps:        apply.NewStore(),
		Polls:       pollStore,
		Hub:         hub,
		CfgVal:      &cfgVal,
		UserCfgPath: userCfgPath,
		LoadCfg:     loadCfg,
		Validate:    validator.New(),
		Log:         log,
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf("127.0.0.1:%d", cfg.App.Port),
		Handler:           httpapi.Handler(deps),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		scheduler.Every(ctx, cfg.RefreshInterval(), "jobs_refresh", log, snap.Refresh)
		return nil
	})
	g.Go(func() error {
		log.Info().Str("addr", srv.Addr).Str("config", userCfgPath).Msg("engine listening")
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("engine exited")
	}
	log.Info().Msg("engine stopped")
}
