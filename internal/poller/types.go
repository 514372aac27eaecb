// internal/poller/types.go
package poller

import "time"

// ResetRegisters is the number of holding registers read per poll:
// raw reset type, raw reset subtype.
const ResetRegisters = 2

// Result is the raw outcome of one poll cycle.
// Codes are copied verbatim from the device; classification happens later.
type Result struct {
	Processor string
	At        time.Time

	RawType    uint16
	RawSubtype uint16

	Err error // non-nil means the read failed and the codes are zero
}
