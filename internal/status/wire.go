// internal/status/wire.go
package status

import (
	"encoding/binary"
	"fmt"
)

// PackRegisters lays registers out in Modbus memory order (big-endian).
func PackRegisters(regs []uint16) []byte {
	out := make([]byte, len(regs)*2)
	for i, r := range regs {
		binary.BigEndian.PutUint16(out[2*i:], r)
	}
	return out
}

// UnpackRegisters reverses PackRegisters. The payload must hold whole registers.
func UnpackRegisters(b []byte) ([]uint16, error) {
	if len(b)%2 != 0 {
		return nil, fmt.Errorf("status: odd register payload (%d bytes)", len(b))
	}
	out := make([]uint16, len(b)/2)
	for i := range out {
		out[i] = binary.BigEndian.Uint16(b[2*i:])
	}
	return out, nil
}
