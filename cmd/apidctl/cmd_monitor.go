// cmd/apidctl/cmd_monitor.go
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/tamzrod/apid-namespace/internal/monitor"
	"github.com/tamzrod/apid-namespace/internal/namespace"
	"github.com/tamzrod/apid-namespace/internal/poller"
	"github.com/tamzrod/apid-namespace/internal/reset"
	"github.com/tamzrod/apid-namespace/internal/status"
	"github.com/tamzrod/apid-namespace/internal/writer"
)

var monitorCmd = &cobra.Command{
	Use:   "monitor <config.yaml>",
	Short: "Poll a processor's reset registers and publish its boot status",
	Long: `Reads the raw reset type and subtype registers of the configured source
processor, classifies them, and writes a boot status block to the downlink.

Unknown reset codes do not stop the monitor: they are published verbatim
with an anomaly health code and logged.`,
	Args: cobra.ExactArgs(1),
	RunE: runMonitor,
}

func runMonitor(cmd *cobra.Command, args []string) error {
	cfg, layout, err := loadLayout(args[0])
	if err != nil {
		return err
	}
	if cfg.Monitor == nil {
		return fmt.Errorf("config %s has no monitor section", args[0])
	}

	src := cfg.Monitor.Source
	log := logger.With(zap.String("processor", src.Processor))

	for _, p := range layout.Processors() {
		if p.Name == src.Processor {
			log.Info("monitoring processor block",
				zap.Uint16("base", p.Base),
				zap.Uint16("block_size", layout.BlockSize()),
				zap.Int("command_ids", countOwned(layout, p.Name, namespace.Command)),
				zap.Int("telemetry_ids", countOwned(layout, p.Name, namespace.Telemetry)),
			)
		}
	}

	// --------------------
	// Poller (source)
	// --------------------

	p, closePoller, err := poller.Build(src)
	if err != nil {
		return fmt.Errorf("poller build failed: %w", err)
	}
	defer closePoller()

	// --------------------
	// Writer (downlink)
	// --------------------

	plan, err := writer.BuildPlan(*cfg.Monitor)
	if err != nil {
		return fmt.Errorf("writer plan failed: %w", err)
	}

	clients, closeWriter, err := writer.BuildEndpointClient(
		plan,
		time.Duration(cfg.Monitor.Downlink.TimeoutMs)*time.Millisecond,
	)
	if err != nil {
		return fmt.Errorf("writer client failed: %w", err)
	}
	defer closeWriter()

	statusWriter, _ := writer.NewStatusWriter(plan, clients)

	m, err := monitor.New(reset.Standard(), statusWriter, log)
	if err != nil {
		return err
	}

	// --------------------
	// Run until signalled
	// --------------------

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := make(chan poller.Result)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		p.Run(gctx, out)
		return nil
	})
	g.Go(func() error {
		return m.Run(gctx, out)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	final := m.Snapshot()
	log.Info("monitor stopped",
		zap.Uint16("raw_type", final.ResetType),
		zap.Uint16("raw_subtype", final.ResetSubtype),
		zap.String("health", status.HealthName(final.Health)),
	)
	return nil
}

func countOwned(l *namespace.Layout, processor string, class namespace.Class) int {
	n := 0
	for _, a := range l.Assignments(class) {
		if a.Processor == processor {
			n++
		}
	}
	return n
}
