package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/poseidoncompute/poseidonstore/internal/config"
	"github.com/poseidoncompute/poseidonstore/internal/handlers/cli"
	"github.com/poseidoncompute/poseidonstore/internal/infra/blockchain/solana"
	"github.com/poseidoncompute/poseidonstore/internal/infra/storage/leveldb"
	"github.com/poseidoncompute/poseidonstore/internal/pkg/logger"
	"github.com/poseidoncompute/poseidonstore/internal/pkg/resilience/retry"
	"github.com/poseidoncompute/poseidonstore/internal/pkg/telemetry"
	"github.com/poseidoncompute/poseidonstore/internal/pkg/transport/http"
	"github.com/poseidoncompute/poseidonstore/internal/pkg/transport/jsonrpc"
	"github.com/poseidoncompute/poseidonstore/internal/txstore"
)

const shutdownTimeout = 5 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "poseidon:", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	shutdown := telemetry.Noop()
	if cfg.TelemetryEnabled {
		var opts []telemetry.Option
		if cfg.TelemetryEndpoint != "" {
			opts = append(opts, telemetry.WithEndpoint(cfg.TelemetryEndpoint))
		}
		if cfg.TelemetryInsecure {
			opts = append(opts, telemetry.WithInsecure())
		}

		if shutdown, err = telemetry.Init(ctx, cfg.ServiceName, opts...); err != nil {
			return fmt.Errorf("initializing telemetry: %w", err)
		}
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()

		if err := shutdown(ctx); err != nil {
			logger.Warn(ctx, "telemetry shutdown failed", "error", err)
		}
	}()

	conn := jsonrpc.NewClient(cfg.RPCEndpoint,
		jsonrpc.WithHTTPClient(http.NewStandardClient(http.WithTimeout(cfg.RPCTimeout))),
	)
	source := solana.NewClient(conn,
		solana.WithCommitment(cfg.RPCCommitment),
		solana.WithRetryOptions(retry.WithAttempts(cfg.RPCRetries)),
	)

	unopened, err := txstore.New(cfg.BaseDir, cfg.Fingerprint, source)
	if err != nil {
		return err
	}

	if err := unopened.InitRepo(ctx); err != nil {
		return err
	}

	repo, err := unopened.InitDatabases(ctx, leveldb.Opener())
	if err != nil {
		return err
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Error(ctx, "closing repository failed", "error", err)
		}
	}()

	return cli.Run(ctx, repo)
}
