// internal/writer/modbus/client.go
package modbus

import (
	"errors"
	"sync"
	"time"

	"github.com/goburrow/modbus"

	"github.com/tamzrod/apid-namespace/internal/status"
)

// EndpointClient is a single TCP connection to one status memory endpoint.
// It serializes requests because it mutates SlaveId per write.
type EndpointClient struct {
	mu      sync.Mutex
	handler *modbus.TCPClientHandler
	client  modbus.Client
}

type Config struct {
	Endpoint string
	Timeout  time.Duration
}

func NewEndpointClient(cfg Config) (*EndpointClient, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("writer modbus: endpoint required")
	}

	h := modbus.NewTCPClientHandler(cfg.Endpoint)
	h.Timeout = cfg.Timeout

	if err := h.Connect(); err != nil {
		return nil, err
	}

	return &EndpointClient{
		handler: h,
		client:  modbus.NewClient(h),
	}, nil
}

func (c *EndpointClient) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.handler.Close()
}

// WriteRegisters writes holding registers (FC 16) on unitID.
func (c *EndpointClient) WriteRegisters(unitID uint8, addr uint16, regs []uint16) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.handler.SlaveId = unitID

	qty := uint16(len(regs))
	payload := status.PackRegisters(regs)

	_, err := c.client.WriteMultipleRegisters(addr, qty, payload)
	return err
}
