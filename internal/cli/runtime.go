package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"

	fetcher "github.com/spacemagneto/panel-fetcher"
	"github.com/spacemagneto/panel-fetcher/internal/config"
	"github.com/spacemagneto/panel-fetcher/internal/logging"
)

const shutdownTimeout = 5 * time.Second

// runtime holds the collaborators shared by every command, built once from config and flags.
type runtime struct {
	cfg       *config.Config
	logger    zerolog.Logger
	client    *fetcher.HTTPClient
	journal   *fetcher.RedisJournal
	observers []fetcher.Observer
	closers   []func() error
}

// loadConfig reads the config file and applies flag overrides on top of it.
func loadConfig(cmd *cli.Command) (*config.Config, error) {
	cfg, err := config.Load(cmd.String(flagConfig))
	if err != nil {
		return nil, err
	}

	if cmd.IsSet(flagBaseURL) {
		cfg.BaseURL = cmd.String(flagBaseURL)
	}
	if cmd.IsSet(flagToken) {
		cfg.Token = cmd.String(flagToken)
	}
	if cmd.IsSet(flagTimeout) {
		cfg.Timeout = cmd.Duration(flagTimeout)
	}
	if cmd.IsSet(flagLogLevel) {
		cfg.LogLevel = cmd.String(flagLogLevel)
	}
	if cmd.IsSet(flagLogFormat) {
		cfg.LogFormat = cmd.String(flagLogFormat)
	}
	if cmd.IsSet(flagRedisAddress) {
		cfg.Redis.Address = cmd.String(flagRedisAddress)
	}
	if cmd.IsSet(flagMetricsAddress) {
		cfg.Metrics.Address = cmd.String(flagMetricsAddress)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func newRuntime(cmd *cli.Command) (*runtime, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(stderr(cmd), cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, err
	}

	rt := &runtime{
		cfg:    cfg,
		logger: logger,
		client: fetcher.NewHTTPClient(
			fetcher.WithSettings(cfg.Settings()),
			fetcher.WithTimeout(cfg.Timeout),
			fetcher.WithClientLogger(logger),
		),
	}

	if cfg.Redis.Address != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		rt.closers = append(rt.closers, rdb.Close)

		journal, err := fetcher.NewRedisJournal(
			fetcher.WithRedisClient(rdb),
			fetcher.WithJournalKey(cfg.Redis.JournalKey),
			fetcher.WithJournalLogger(logger),
		)
		if err != nil {
			rt.close()
			return nil, err
		}

		rt.journal = journal
		rt.observers = append(rt.observers, journal)
		logger.Debug().Str("addr", cfg.Redis.Address).Str("key", journal.Key()).Msg("transition journal enabled")
	}

	if cfg.Metrics.Address != "" {
		if err := rt.serveMetrics(cfg.Metrics.Address); err != nil {
			rt.close()
			return nil, err
		}
	}

	return rt, nil
}

// serveMetrics exposes session metrics on addr until the runtime is closed.
func (rt *runtime) serveMetrics(addr string) error {
	registry := prometheus.NewRegistry()

	metrics, err := fetcher.NewMetricsObserver(registry)
	if err != nil {
		return err
	}
	rt.observers = append(rt.observers, metrics)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	server := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			rt.logger.Error().Err(err).Str("addr", addr).Msg("metrics server failed")
		}
	}()

	rt.closers = append(rt.closers, func() error {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(ctx)
	})

	rt.logger.Info().Str("addr", addr).Msg("serving metrics")

	return nil
}

func (rt *runtime) close() {
	for i := len(rt.closers) - 1; i >= 0; i-- {
		if err := rt.closers[i](); err != nil {
			rt.logger.Warn().Err(err).Msg("failed to release resource")
		}
	}
}
