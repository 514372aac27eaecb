// internal/writer/ingest/client.go
package ingest

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"net"
	"time"

	"github.com/tamzrod/apid-namespace/internal/status"
)

// Raw Ingest v1 frame (LOCKED):
//
//	0-1  magic "RI"
//	2    version 0x01
//	3    area (0x03 holding registers)
//	4-5  unit id
//	6-7  start address
//	8-9  register count
//	10+  registers, big-endian
//
// The server answers with a single status byte.
const (
	magic     = "RI"
	versionV1 = 0x01
	headerLen = 10

	// boot status blocks always land in holding registers
	areaHoldingRegisters = 0x03
)

const (
	respOK       byte = 0x00
	respRejected byte = 0x01
)

// ErrRejected is returned when the endpoint refuses a frame.
var ErrRejected = errors.New("writer ingest: frame rejected")

type frame struct {
	area   byte
	unitID uint8
	addr   uint16
	regs   []uint16
}

func (f frame) MarshalBinary() ([]byte, error) {
	if len(f.regs) > 0xFFFF {
		return nil, fmt.Errorf("writer ingest: %d registers exceed one frame", len(f.regs))
	}

	b := make([]byte, headerLen, headerLen+2*len(f.regs))
	copy(b[0:2], magic)
	b[2] = versionV1
	b[3] = f.area
	binary.BigEndian.PutUint16(b[4:6], uint16(f.unitID))
	binary.BigEndian.PutUint16(b[6:8], f.addr)
	binary.BigEndian.PutUint16(b[8:10], uint16(len(f.regs)))

	return append(b, status.PackRegisters(f.regs)...), nil
}

// EndpointClient opens one connection per frame. It holds no socket
// between writes, so Close is a no-op.
type EndpointClient struct {
	endpoint string
	timeout  time.Duration
}

type Config struct {
	Endpoint string
	Timeout  time.Duration
}

func NewEndpointClient(cfg Config) (*EndpointClient, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("writer ingest: endpoint required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 2 * time.Second
	}
	return &EndpointClient{endpoint: cfg.Endpoint, timeout: cfg.Timeout}, nil
}

func (c *EndpointClient) Close() error { return nil }

// WriteRegisters sends one frame and waits for the status byte.
func (c *EndpointClient) WriteRegisters(unitID uint8, addr uint16, regs []uint16) error {
	pkt, err := frame{area: areaHoldingRegisters, unitID: unitID, addr: addr, regs: regs}.MarshalBinary()
	if err != nil {
		return err
	}

	conn, err := net.DialTimeout("tcp", c.endpoint, c.timeout)
	if err != nil {
		return fmt.Errorf("writer ingest: dial %s: %w", c.endpoint, err)
	}
	defer conn.Close()

	if err := conn.SetDeadline(time.Now().Add(c.timeout)); err != nil {
		return fmt.Errorf("writer ingest: deadline: %w", err)
	}

	// net.Conn.Write returns an error on any short write
	if _, err := conn.Write(pkt); err != nil {
		return fmt.Errorf("writer ingest: send: %w", err)
	}

	var reply [1]byte
	if _, err := io.ReadFull(conn, reply[:]); err != nil {
		return fmt.Errorf("writer ingest: read status: %w", err)
	}

	switch reply[0] {
	case respOK:
		return nil
	case respRejected:
		return fmt.Errorf("%w (unit %d, addr %d, %d regs)", ErrRejected, unitID, addr, len(regs))
	default:
		return fmt.Errorf("writer ingest: unknown status 0x%02x", reply[0])
	}
}
