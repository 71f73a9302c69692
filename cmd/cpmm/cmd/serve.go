// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ava-labs/cpmm/chain"
	"github.com/ava-labs/cpmm/config"
	"github.com/ava-labs/cpmm/consts"
	"github.com/ava-labs/cpmm/genesis"
	"github.com/ava-labs/cpmm/pebble"
	"github.com/ava-labs/cpmm/rpc"
	"github.com/ava-labs/cpmm/server"
	"github.com/ava-labs/cpmm/state"
	"github.com/ava-labs/cpmm/storage"
	"github.com/ava-labs/cpmm/trace"
	"github.com/ava-labs/cpmm/utils"
)

const (
	logsFolder     = "logs"
	databaseFolder = "db"
	metricsRoute   = "metrics"
)

type closableDatabase interface {
	state.Database
	Close() error
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the pool API",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load(cmd.Flags())
		if err != nil {
			return err
		}
		logDir, err := utils.InitSubDirectory(cfg.DataDir, logsFolder)
		if err != nil {
			return err
		}
		logFactory := logging.NewFactory(logging.Config{
			RotatingWriterConfig: logging.RotatingWriterConfig{
				MaxSize:   8,
				MaxFiles:  5,
				MaxAge:    7,
				Directory: logDir,
			},
			LogLevel:     cfg.LogLevel,
			DisplayLevel: cfg.LogDisplayLevel,
		})
		defer logFactory.Close()
		log, err := logFactory.Make(consts.Name)
		if err != nil {
			return err
		}
		return serve(cmd.Context(), log, cfg)
	},
}

func openDatabase(cfg *config.Config) (closableDatabase, prometheus.Gatherer, error) {
	if cfg.InMemory {
		return memdb.New(), prometheus.NewRegistry(), nil
	}
	dir, err := utils.InitSubDirectory(cfg.DataDir, databaseFolder)
	if err != nil {
		return nil, nil, err
	}
	db, registry, err := pebble.New(dir, pebble.NewDefaultConfig())
	if err != nil {
		return nil, nil, err
	}
	return db, registry, nil
}

func loadGenesis(path string) (*genesis.Genesis, error) {
	if len(path) == 0 {
		return genesis.NewDefaultGenesis(nil), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return genesis.Load(b)
}

func serve(ctx context.Context, log logging.Logger, cfg *config.Config) error {
	tracer, err := trace.New(&cfg.Trace)
	if err != nil {
		return err
	}
	defer func() {
		if err := tracer.Close(); err != nil {
			log.Error("failed to close tracer", zap.Error(err))
		}
	}()

	db, dbRegistry, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("failed to close database", zap.Error(err))
		}
	}()

	g, err := loadGenesis(cfg.GenesisFile)
	if err != nil {
		return err
	}
	applied, err := g.InitializeState(ctx, tracer, db)
	if err != nil {
		return err
	}
	log.Info("loaded genesis",
		zap.Bool("applied", applied),
		zap.Int("allocations", len(g.CustomAllocation)),
	)

	registry := prometheus.NewRegistry()
	processor, err := chain.NewProcessor(log, tracer, registry, db, g.Rules, storage.NewBank())
	if err != nil {
		return err
	}

	listener, err := net.Listen("tcp", cfg.Address())
	if err != nil {
		return err
	}
	srv := server.New(log, listener, cfg.Server)
	handler, err := server.NewHandler(rpc.NewJSONRPCServer(processor, tracer), rpc.Name)
	if err != nil {
		return err
	}
	if err := srv.AddRoute(handler, rpc.Name, ""); err != nil {
		return err
	}
	metrics := promhttp.HandlerFor(
		prometheus.Gatherers{registry, dbRegistry},
		promhttp.HandlerOpts{},
	)
	if err := srv.AddRoute(metrics, metricsRoute, ""); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(srv.Dispatch)
	eg.Go(func() error {
		<-ctx.Done()
		log.Info("shutting down")
		return srv.Shutdown()
	})
	return eg.Wait()
}
