// Command contactauth-dump exports the ContactAuth contact directory to a JSON
// Lines file and/or PostgreSQL table.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	os.Exit(runCommand(os.Args[1:]))
}

// runCommand executes the command and returns its exit code.
func runCommand(args []string) int {
	cfg, err := loadConfig(args)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	log, err := newLogger(cfg.Debug)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer func() { _ = log.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err = run(ctx, cfg, log); err != nil {
		log.Error("export failed", zap.Error(err))
		return 1
	}

	return 0
}

func newLogger(debug bool) (*zap.Logger, error) {
	c := zap.NewProductionConfig()
	c.Encoding = "console"
	c.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if debug {
		c.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	return c.Build()
}

func run(ctx context.Context, cfg *Config, log *zap.Logger) error {
	contract, err := parseContract(cfg.Contract)
	if err != nil {
		return err
	}

	b, err := newRemoteBlockChain(ctx, cfg.RPC, contract, cfg.Timeout)
	if err != nil {
		return fmt.Errorf("init remote blockchain: %w", err)
	}

	defer b.close()

	log.Info("exporting contact directory",
		zap.Stringer("contract", contract), zap.Uint32("block", b.currentBlock))

	var (
		sinks []Sink
		pr    pruner
	)

	if cfg.Out != "" {
		js, err := newJSONSink(cfg.Out)
		if err != nil {
			return err
		}
		sinks = append(sinks, js)
	}

	if cfg.Postgres != "" {
		pg, err := newPostgresSink(ctx, cfg.Postgres, b.currentBlock)
		if err != nil {
			closeSinks(sinks, log)
			return err
		}
		sinks = append(sinks, pg)
		pr = pg
	}

	n, err := exportAll(ctx, b.contract, cfg.PageSize, log, pr, sinks...)

	closeSinks(sinks, log)

	if err != nil {
		return err
	}

	log.Info("contact directory exported", zap.Int("records", n))

	return nil
}

func closeSinks(sinks []Sink, log *zap.Logger) {
	for _, s := range sinks {
		if err := s.Close(); err != nil {
			log.Error("failed to close sink", zap.Error(err))
		}
	}
}
