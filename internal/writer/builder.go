// internal/writer/builder.go
package writer

import (
	"errors"
	"fmt"
	"time"

	cfg "github.com/tamzrod/apid-namespace/internal/config"
	"github.com/tamzrod/apid-namespace/internal/writer/ingest"
	wmodbus "github.com/tamzrod/apid-namespace/internal/writer/modbus"
)

// BuildPlan converts the monitor section into a downlink Plan.
// Assumes config has already passed validation.
func BuildPlan(m cfg.MonitorConfig) (Plan, error) {
	if m.Source.Processor == "" {
		return Plan{}, errors.New("writer: source processor required")
	}
	if m.Downlink.Endpoint == "" {
		return Plan{}, errors.New("writer: downlink endpoint required")
	}

	transport := m.Downlink.Transport
	if transport == "" {
		transport = cfg.TransportModbus
	}

	return Plan{
		Processor: m.Source.Processor,
		Transport: transport,
		Status: &StatusPlan{
			Endpoint: m.Downlink.Endpoint,
			UnitID:   m.Downlink.UnitID,
			BaseSlot: m.Downlink.StatusSlot,
			Name:     m.Source.StatusName(),
		},
	}, nil
}

// BuildEndpointClient creates the downlink client for the plan's transport.
func BuildEndpointClient(plan Plan, timeout time.Duration) (map[string]endpointClient, func() error, error) {
	if plan.Status == nil {
		return nil, func() error { return nil }, nil
	}

	endpoint := plan.Status.Endpoint

	switch plan.Transport {
	case cfg.TransportModbus:
		c, err := wmodbus.NewEndpointClient(wmodbus.Config{
			Endpoint: endpoint,
			Timeout:  timeout,
		})
		if err != nil {
			return nil, nil, err
		}
		return map[string]endpointClient{endpoint: c}, c.Close, nil

	case cfg.TransportIngest:
		c, err := ingest.NewEndpointClient(ingest.Config{
			Endpoint: endpoint,
			Timeout:  timeout,
		})
		if err != nil {
			return nil, nil, err
		}
		return map[string]endpointClient{endpoint: c}, c.Close, nil

	default:
		return nil, nil, fmt.Errorf("writer: unknown transport %q", plan.Transport)
	}
}
