// internal/status/encode.go
package status

import "fmt"

// Encode converts a Snapshot into the live slots of a boot status block.
// Name slots are left zero; the writer owns them.
// No IO. No side effects.
func Encode(s Snapshot) []uint16 {
	regs := make([]uint16, SlotsPerProcessor)

	regs[SlotResetType] = s.ResetType
	regs[SlotResetSubtype] = s.ResetSubtype
	regs[SlotHealthCode] = s.Health

	return regs
}

// Decode reads the live slots back out of a full block.
func Decode(regs []uint16) (Snapshot, error) {
	if len(regs) != SlotsPerProcessor {
		return Snapshot{}, fmt.Errorf("status: block must be %d registers, got %d", SlotsPerProcessor, len(regs))
	}
	if regs[SlotHealthCode] > HealthUnreachable {
		return Snapshot{}, fmt.Errorf("status: unknown health code %d", regs[SlotHealthCode])
	}

	return Snapshot{
		ResetType:    regs[SlotResetType],
		ResetSubtype: regs[SlotResetSubtype],
		Health:       regs[SlotHealthCode],
	}, nil
}

// EncodeName packs up to NameMaxChars ASCII characters into SlotNameSlots
// registers, two bytes per register, big-endian. Non-printable bytes become '?'.
func EncodeName(name string) []uint16 {
	out := make([]uint16, SlotNameSlots)

	b := []byte(name)
	if len(b) > NameMaxChars {
		b = b[:NameMaxChars]
	}

	for i := 0; i < len(b); i++ {
		if b[i] < 0x20 || b[i] > 0x7E {
			b[i] = '?'
		}
	}

	for i := 0; i < NameMaxChars; i += 2 {
		var hi, lo byte
		if i < len(b) {
			hi = b[i]
		}
		if i+1 < len(b) {
			lo = b[i+1]
		}
		out[i/2] = uint16(hi)<<8 | uint16(lo)
	}

	return out
}

// DecodeName reverses EncodeName, dropping trailing NUL padding.
func DecodeName(regs []uint16) string {
	b := make([]byte, 0, NameMaxChars)
	for _, r := range regs {
		b = append(b, byte(r>>8), byte(r))
	}
	for len(b) > 0 && b[len(b)-1] == 0 {
		b = b[:len(b)-1]
	}
	return string(b)
}
