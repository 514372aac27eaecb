// internal/poller/poller.go
package poller

import (
	"errors"
	"fmt"
	"time"
)

// Client abstracts the Modbus read the poller needs.
type Client interface {
	ReadHoldingRegisters(addr, qty uint16) ([]uint16, error) // FC 3
}

// Factory creates a fresh client after a transport failure.
type Factory func() (Client, error)

// Config is the minimal runtime config the poller needs.
type Config struct {
	Processor string
	Interval  time.Duration
	Address   uint16
}

// Poller is a dumb, clock-driven reader of one processor's reset registers.
type Poller struct {
	cfg     Config
	client  Client
	factory Factory
}

// New creates a poller with immutable config.
// factory may be nil; the poller then keeps its first client forever.
func New(cfg Config, client Client, factory Factory) (*Poller, error) {
	if cfg.Processor == "" {
		return nil, errors.New("poller: processor required")
	}
	if cfg.Interval <= 0 {
		return nil, errors.New("poller: interval must be > 0")
	}
	if client == nil && factory == nil {
		return nil, errors.New("poller: client or factory required")
	}
	return &Poller{cfg: cfg, client: client, factory: factory}, nil
}

// PollOnce performs exactly one read of the reset registers.
// On failure the client is discarded; the next cycle asks the factory.
func (p *Poller) PollOnce() Result {
	res := Result{
		Processor: p.cfg.Processor,
		At:        time.Now(),
	}

	if p.client == nil {
		c, err := p.factory()
		if err != nil {
			res.Err = fmt.Errorf("poller: connect: %w", err)
			return res
		}
		p.client = c
	}

	regs, err := p.client.ReadHoldingRegisters(p.cfg.Address, ResetRegisters)
	if err != nil {
		if p.factory != nil {
			p.client = nil
		}
		res.Err = err
		return res
	}
	if len(regs) != ResetRegisters {
		res.Err = fmt.Errorf("poller: expected %d registers, got %d", ResetRegisters, len(regs))
		return res
	}

	res.RawType = regs[0]
	res.RawSubtype = regs[1]
	return res
}
