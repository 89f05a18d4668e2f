/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/kpeletidis/perfplot/pkg/diskstats"
	"github.com/kpeletidis/perfplot/pkg/logging"
)

const (
	name           = "diskstats"
	versionDefault = "dev"

	envMetricsFile = "DISKSTATS_METRICS_FILE"
	envInput       = "DISKSTATS_INPUT"
)

const (
	exitOK          = 0
	exitError       = 1
	exitInterrupted = 2
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

func newRootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		EnableShellCompletion: true,
		Usage:                 "Decode and compare Linux block device I/O statistics",
		Version:               fmt.Sprintf("%s (commit: %s, date: %s)", version, commit, date),
		Description: `Reads the per-device I/O counters the kernel exposes in /proc/diskstats.

show - prints the named counters of every (or the selected) device.
diff - compares two saved snapshots and reports the percentage change
       of every counter.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level (debug, info, warn, error)",
				Value:   "info",
				Sources: cli.EnvVars(logging.EnvLogLevel),
			},
			&cli.StringFlag{
				Name:    "metrics-file",
				Usage:   "Write Prometheus metrics to this file on exit (node_exporter textfile format)",
				Sources: cli.EnvVars(envMetricsFile),
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logLevel := cmd.String("log-level")
			logging.SetDefaultStructuredLoggerWithLevel(name, version, logLevel)
			slog.Debug("starting",
				"name", name,
				"version", version,
				"commit", commit,
				"date", date,
				"logLevel", logLevel)
			return ctx, nil
		},
		After: func(_ context.Context, cmd *cli.Command) error {
			path := cmd.String("metrics-file")
			if path == "" {
				return nil
			}
			return diskstats.WriteMetrics(path)
		},
		Commands: []*cli.Command{
			showCmd(),
			diffCmd(),
		},
	}
}

// Execute runs the root command with the process arguments and exits with
// 0 on success, 1 on error and 2 when interrupted.
// This is called by main.main().
func Execute() {
	os.Exit(run(context.Background(), os.Args, os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	// Handle SIGINT/SIGTERM for graceful shutdown
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := newRootCmd()
	cmd.Writer = stdout
	cmd.ErrWriter = stderr

	err := cmd.Run(ctx, args)
	if err == nil {
		return exitOK
	}

	if errors.Is(err, context.Canceled) {
		fmt.Fprintln(stderr, "interrupted")
		return exitInterrupted
	}
	slog.Debug("command failed", "error", err)
	fmt.Fprintf(stderr, "Error: %v\n", err)
	return exitError
}
