// internal/config/validate.go
package config

import (
	"fmt"

	"github.com/tamzrod/apid-namespace/internal/namespace"
	"github.com/tamzrod/apid-namespace/internal/status"
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config: nil config")
	}

	ns := cfg.Namespace

	blockSize := ns.BlockSize
	if blockSize == 0 {
		blockSize = namespace.DefaultBlockSize
	}

	if len(ns.Processors) == 0 {
		return fmt.Errorf("namespace: at least one processor required")
	}
	if len(ns.Components) == 0 {
		return fmt.Errorf("namespace: at least one component required")
	}

	// ------------------------------------------------------------
	// PROCESSOR BLOCKS
	// ------------------------------------------------------------

	procNames := make(map[string]struct{})

	for i, p := range ns.Processors {
		if err := checkName("processor", i, p.Name); err != nil {
			return err
		}
		if _, exists := procNames[p.Name]; exists {
			return fmt.Errorf("processor %q: defined twice", p.Name)
		}
		procNames[p.Name] = struct{}{}

		if p.Base%blockSize != 0 {
			return fmt.Errorf(
				"processor %q: base %d is not a multiple of block_size %d",
				p.Name,
				p.Base,
				blockSize,
			)
		}
	}

	// ------------------------------------------------------------
	// COMPONENT OFFSETS
	// ------------------------------------------------------------

	compNames := make(map[string]struct{})

	for i, c := range ns.Components {
		if err := checkName("component", i, c.Name); err != nil {
			return err
		}
		if _, exists := compNames[c.Name]; exists {
			return fmt.Errorf("component %q: defined twice", c.Name)
		}
		compNames[c.Name] = struct{}{}

		if c.CommandOffset == nil && c.TelemetryOffset == nil {
			return fmt.Errorf("component %q: no command_offset or telemetry_offset", c.Name)
		}

		for _, class := range namespace.Classes {
			off := c.offset(class)
			if off.Assigned() && off >= namespace.Offset(blockSize) {
				return fmt.Errorf(
					"component %q: %s offset %d outside block_size %d",
					c.Name,
					class,
					off,
					blockSize,
				)
			}
		}
	}

	// ------------------------------------------------------------
	// IDENTIFIER UNIQUENESS (PER CLASS)
	// ------------------------------------------------------------

	bases := make([]namespace.Base, 0, len(ns.Processors))
	for _, p := range ns.Processors {
		bases = append(bases, namespace.Base{Processor: p.Name, Value: p.Base})
	}

	for _, class := range namespace.Classes {
		offsets := make([]namespace.ComponentOffset, 0, len(ns.Components))
		for _, c := range ns.Components {
			offsets = append(offsets, namespace.ComponentOffset{
				Component: c.Name,
				Offset:    c.offset(class),
			})
		}

		if err := namespace.ValidateClass(class, bases, offsets); err != nil {
			return fmt.Errorf("%s identifiers: %w", class, err)
		}
	}

	// ------------------------------------------------------------
	// MONITOR (OPT-IN)
	// ------------------------------------------------------------

	m := cfg.Monitor
	if m == nil {
		return nil
	}

	if m.Source.Endpoint == "" {
		return fmt.Errorf("monitor: source endpoint required")
	}
	if _, ok := procNames[m.Source.Processor]; !ok {
		return fmt.Errorf("monitor: source processor %q is not defined in namespace", m.Source.Processor)
	}
	if m.Source.TimeoutMs < 0 || m.Source.IntervalMs < 0 {
		return fmt.Errorf("monitor: source timeout_ms and interval_ms must be >= 0")
	}
	if uint32(m.Source.Address)+2 > 0x10000 {
		return fmt.Errorf("monitor: source address %d leaves no room for 2 registers", m.Source.Address)
	}

	if m.Downlink.Endpoint == "" {
		return fmt.Errorf("monitor: downlink endpoint required")
	}
	switch m.Downlink.Transport {
	case "", TransportModbus, TransportIngest:
	default:
		return fmt.Errorf("monitor: unknown downlink transport %q", m.Downlink.Transport)
	}
	if m.Downlink.TimeoutMs < 0 {
		return fmt.Errorf("monitor: downlink timeout_ms must be >= 0")
	}
	if end := (uint32(m.Downlink.StatusSlot) + 1) * status.SlotsPerProcessor; end > 0x10000 {
		return fmt.Errorf(
			"monitor: status_slot %d exceeds register space (block of %d registers)",
			m.Downlink.StatusSlot,
			status.SlotsPerProcessor,
		)
	}

	return nil
}

// checkName requires a non-empty ASCII name.
func checkName(kind string, idx int, name string) error {
	if name == "" {
		return fmt.Errorf("%s %d: name required", kind, idx)
	}
	for i := 0; i < len(name); i++ {
		if name[i] > 0x7F {
			return fmt.Errorf("%s %q: name must contain ASCII characters only", kind, name)
		}
	}
	return nil
}

func (c ComponentConfig) offset(class namespace.Class) namespace.Offset {
	off := c.TelemetryOffset
	if class == namespace.Command {
		off = c.CommandOffset
	}
	if off == nil {
		return namespace.Unassigned
	}
	return namespace.Offset(*off)
}
