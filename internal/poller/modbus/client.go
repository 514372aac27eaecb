// internal/poller/modbus/client.go
package modbus

import (
	"errors"
	"fmt"
	"time"

	"github.com/goburrow/modbus"

	"github.com/tamzrod/apid-namespace/internal/status"
)

// Client implements poller.Client using Modbus TCP.
// It only reads; decoding of the codes belongs to the reset taxonomy.
type Client struct {
	handler *modbus.TCPClientHandler
	client  modbus.Client
}

// Config is minimal transport config.
type Config struct {
	Endpoint string
	UnitID   uint8
	Timeout  time.Duration
}

// New creates a connected Modbus TCP client.
func New(cfg Config) (*Client, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("modbus client: endpoint required")
	}

	h := modbus.NewTCPClientHandler(cfg.Endpoint)
	h.Timeout = cfg.Timeout
	h.SlaveId = cfg.UnitID

	if err := h.Connect(); err != nil {
		return nil, err
	}

	return &Client{
		handler: h,
		client:  modbus.NewClient(h),
	}, nil
}

// Close closes the TCP connection.
func (c *Client) Close() error {
	if c == nil || c.handler == nil {
		return nil
	}
	return c.handler.Close()
}

// ---- poller.Client interface ----

func (c *Client) ReadHoldingRegisters(addr, qty uint16) ([]uint16, error) {
	if qty == 0 {
		return nil, nil
	}

	p, err := c.client.ReadHoldingRegisters(addr, qty)
	if err != nil {
		return nil, err
	}
	if len(p) != int(qty)*2 {
		return nil, fmt.Errorf("modbus: read-registers payload %d bytes, want %d", len(p), int(qty)*2)
	}
	return status.UnpackRegisters(p)
}
