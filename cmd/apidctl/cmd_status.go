// cmd/apidctl/cmd_status.go
package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tamzrod/apid-namespace/internal/config"
	pmodbus "github.com/tamzrod/apid-namespace/internal/poller/modbus"
	"github.com/tamzrod/apid-namespace/internal/reset"
	"github.com/tamzrod/apid-namespace/internal/status"
)

var statusCmd = &cobra.Command{
	Use:   "status <config.yaml>",
	Short: "Read back the boot status block the monitor publishes",
	Long: `Reads the monitored processor's boot status block from the downlink
endpoint and prints it. Only the modbus transport can be read back;
ingest endpoints are write-only.`,
	Args: cobra.ExactArgs(1),
	RunE: runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadLayout(args[0])
	if err != nil {
		return err
	}
	if cfg.Monitor == nil {
		return fmt.Errorf("config %s has no monitor section", args[0])
	}

	dl := cfg.Monitor.Downlink
	if dl.Transport != config.TransportModbus {
		return fmt.Errorf("downlink transport %q cannot be read back", dl.Transport)
	}

	c, err := pmodbus.New(pmodbus.Config{
		Endpoint: dl.Endpoint,
		UnitID:   dl.UnitID,
		Timeout:  time.Duration(dl.TimeoutMs) * time.Millisecond,
	})
	if err != nil {
		return fmt.Errorf("connect %s: %w", dl.Endpoint, err)
	}
	defer c.Close()

	addr := dl.StatusSlot * status.SlotsPerProcessor
	logger.Debug("reading boot status block",
		zap.String("endpoint", dl.Endpoint),
		zap.Uint16("address", addr),
	)

	regs, err := c.ReadHoldingRegisters(addr, status.SlotsPerProcessor)
	if err != nil {
		return fmt.Errorf("read status block: %w", err)
	}

	return writeStatusBlock(cmd.OutOrStdout(), regs, reset.Standard())
}

// writeStatusBlock prints one decoded block. Raw codes outside the taxonomy
// are printed by number, never replaced.
func writeStatusBlock(w io.Writer, regs []uint16, x *reset.Taxonomy) error {
	snap, err := status.Decode(regs)
	if err != nil {
		return err
	}
	name := status.DecodeName(regs[status.SlotNameStart : status.SlotNameEnd+1])

	typeName, subtypeName := x.Names(reset.Descriptor{
		Type:    reset.Type(snap.ResetType),
		Subtype: reset.Subtype(snap.ResetSubtype),
	})

	_, err = fmt.Fprintf(w, "processor=%s health=%s type=%s(%d) subtype=%s(%d)\n",
		name, status.HealthName(snap.Health),
		typeName, snap.ResetType, subtypeName, snap.ResetSubtype,
	)
	return err
}
