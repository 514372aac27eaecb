// internal/poller/builder.go
package poller

import (
	"time"

	cfg "github.com/tamzrod/apid-namespace/internal/config"
	pmodbus "github.com/tamzrod/apid-namespace/internal/poller/modbus"
)

// Build constructs a Poller for the monitor source and wires the Modbus
// client lifecycle. The connection is reused while healthy; after a
// transport failure the poller asks the factory again on a later tick.
func Build(src cfg.SourceConfig) (*Poller, func() error, error) {
	var current *pmodbus.Client

	// client factory: ONE attempt per call
	factory := func() (Client, error) {
		if current != nil {
			_ = current.Close()
		}
		c, err := pmodbus.New(pmodbus.Config{
			Endpoint: src.Endpoint,
			UnitID:   src.UnitID,
			Timeout:  time.Duration(src.TimeoutMs) * time.Millisecond,
		})
		if err != nil {
			current = nil
			return nil, err
		}
		current = c
		return c, nil
	}

	// initial client (fail fast at startup)
	client, err := factory()
	if err != nil {
		return nil, nil, err
	}

	p, err := New(
		Config{
			Processor: src.Processor,
			Interval:  time.Duration(src.IntervalMs) * time.Millisecond,
			Address:   src.Address,
		},
		client,
		factory,
	)
	if err != nil {
		_ = current.Close()
		return nil, nil, err
	}

	closer := func() error {
		if current == nil {
			return nil
		}
		return current.Close()
	}

	return p, closer, nil
}
