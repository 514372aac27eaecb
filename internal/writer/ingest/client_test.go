// internal/writer/ingest/client_test.go
package ingest

import (
	"bytes"
	"errors"
	"io"
	"net"
	"testing"
	"time"
)

func TestFrame_Layout(t *testing.T) {
	pkt, err := frame{area: areaHoldingRegisters, unitID: 7, addr: 24, regs: []uint16{0x0002, 0x0104}}.MarshalBinary()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	want := []byte{
		'R', 'I', 0x01, 0x03,
		0x00, 0x07, // unit
		0x00, 0x18, // address 24
		0x00, 0x02, // count
		0x00, 0x02, 0x01, 0x04,
	}
	if !bytes.Equal(pkt, want) {
		t.Fatalf("packet mismatch:\n got=% x\nwant=% x", pkt, want)
	}
}

// serveOnce accepts one connection, captures the packet, and answers status.
func serveOnce(t *testing.T, status byte, size int) (string, <-chan []byte) {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	t.Cleanup(func() { _ = ln.Close() })

	got := make(chan []byte, 1)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			close(got)
			return
		}
		defer conn.Close()

		buf := make([]byte, size)
		if _, err := io.ReadFull(conn, buf); err != nil {
			close(got)
			return
		}
		_, _ = conn.Write([]byte{status})
		got <- buf
	}()

	return ln.Addr().String(), got
}

func TestWriteRegisters_OK(t *testing.T) {
	regs := []uint16{3, 9, 1}
	addr, got := serveOnce(t, respOK, headerLen+len(regs)*2)

	c, err := NewEndpointClient(Config{Endpoint: addr, Timeout: time.Second})
	if err != nil {
		t.Fatalf("NewEndpointClient: %v", err)
	}

	if err := c.WriteRegisters(1, 12, regs); err != nil {
		t.Fatalf("WriteRegisters: %v", err)
	}

	pkt := <-got
	if pkt[3] != areaHoldingRegisters {
		t.Fatalf("area: got=%d", pkt[3])
	}
	if pkt[7] != 12 || pkt[9] != 3 {
		t.Fatalf("address/count: got=%d/%d", pkt[7], pkt[9])
	}
}

func TestWriteRegisters_Rejected(t *testing.T) {
	addr, _ := serveOnce(t, respRejected, headerLen+2)

	c, _ := NewEndpointClient(Config{Endpoint: addr, Timeout: time.Second})
	err := c.WriteRegisters(1, 0, []uint16{1})
	if !errors.Is(err, ErrRejected) {
		t.Fatalf("expected ErrRejected, got %v", err)
	}
}

func TestNewEndpointClient_RequiresEndpoint(t *testing.T) {
	if _, err := NewEndpointClient(Config{}); err == nil {
		t.Fatalf("expected endpoint error")
	}
}
