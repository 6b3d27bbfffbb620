package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/Flarenzy/rdap-registry/internal/bootstrap"
	appdb "github.com/Flarenzy/rdap-registry/internal/db"
	"github.com/Flarenzy/rdap-registry/internal/domain"
	apihttp "github.com/Flarenzy/rdap-registry/internal/http"
)

type Config struct {
	Port             string
	DSN              string
	LogLevel         slog.Level
	BootstrapFiles   []string
	BootstrapWorkers int
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	ShutdownTimeout  time.Duration
}

// LoadConfig reads the environment, after loading a .env file when present.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := Config{
		DSN:              os.Getenv("DB_CONN"),
		Port:             os.Getenv("PORT"),
		BootstrapWorkers: 4,
		ReadTimeout:      3 * time.Second,
		WriteTimeout:     3 * time.Second,
		ShutdownTimeout:  5 * time.Second,
	}

	if cfg.DSN == "" {
		return Config{}, errors.New("missing required environment variable: DB_CONN")
	}
	if cfg.Port == "" {
		cfg.Port = "4040"
	}

	level, err := parseLogLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		return Config{}, err
	}
	cfg.LogLevel = level

	cfg.BootstrapFiles = splitList(os.Getenv("BOOTSTRAP_NETWORK_FILES"))

	if v := os.Getenv("BOOTSTRAP_WORKERS"); v != "" {
		workers, err := strconv.Atoi(v)
		if err != nil || workers <= 0 {
			return Config{}, fmt.Errorf("invalid BOOTSTRAP_WORKERS %q", v)
		}
		cfg.BootstrapWorkers = workers
	}

	return cfg, nil
}

func parseLogLevel(s string) (slog.Level, error) {
	if s == "" {
		return slog.LevelInfo, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid LOG_LEVEL %q: %w", s, err)
	}
	return level, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func newLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}

func Run(ctx context.Context, cfg Config) error {
	listener, err := net.Listen("tcp", ":"+cfg.Port)
	if err != nil {
		return fmt.Errorf("listen on port %s: %w", cfg.Port, err)
	}
	return Serve(ctx, cfg, listener)
}

// Serve wires the registry on top of cfg and serves HTTP on listener until
// ctx is done. It fails before serving if the database is unreachable.
func Serve(ctx context.Context, cfg Config, listener net.Listener) error {
	logger := newLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	pool, err := appdb.NewPool(ctx, cfg.DSN)
	if err != nil {
		return err
	}
	defer pool.Close()

	networks := appdb.NewNetworkRepository(pool)
	service := domain.NewLoggingNetworkService(logger, domain.NewNetworkService(networks, logger))

	table := bootstrap.NewTable()
	if len(cfg.BootstrapFiles) > 0 {
		loader := bootstrap.NewLoader(
			logger,
			bootstrap.NewBuilder(logger, nil),
			table,
			appdb.NewRedirectRepository(pool),
			cfg.BootstrapWorkers,
		)
		if _, err := loader.LoadFiles(ctx, cfg.BootstrapFiles...); err != nil {
			return fmt.Errorf("load bootstrap registry: %w", err)
		}
	}

	api := apihttp.NewAPI(logger, pool, service, table)

	server := &http.Server{
		Handler:      api.Router(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("serving http", "addr", listener.Addr().String())
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server")

	timeout := cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}
