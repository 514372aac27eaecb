// internal/namespace/apid.go
package namespace

import (
	"errors"
	"fmt"
)

// APID is a routing identifier: processor base + component offset.
// The value crosses the wire unchanged.
type APID uint16

// MaxAPID is the highest value the 11-bit CCSDS APID field can carry.
const MaxAPID APID = 0x07FF

// DefaultBlockSize is the number of identifiers reserved per processor.
const DefaultBlockSize uint16 = 32

// Offset is a component's position inside a processor block.
// Unassigned marks a component that has no identifier for a class;
// it is never treated as offset zero.
type Offset int32

// Unassigned is the offset of a component that has no identifier in a class.
const Unassigned Offset = -1

// Assigned reports whether o is anything other than Unassigned.
// Other negative values are assigned and invalid; Compute rejects them.
func (o Offset) Assigned() bool { return o != Unassigned }

func (o Offset) String() string {
	if !o.Assigned() {
		return "unassigned"
	}
	return fmt.Sprintf("%d", int32(o))
}

// Class is the message class. It is carried by the packet-type bit,
// so identifiers only need to be unique within one class.
type Class uint8

const (
	Telemetry Class = 0
	Command   Class = 1
)

// Classes lists every class in wire order.
var Classes = []Class{Command, Telemetry}

func (c Class) String() string {
	switch c {
	case Command:
		return "command"
	case Telemetry:
		return "telemetry"
	default:
		return fmt.Sprintf("class(%d)", uint8(c))
	}
}

// ParseClass accepts "command"/"cmd" and "telemetry"/"tlm".
func ParseClass(s string) (Class, error) {
	switch s {
	case "command", "cmd":
		return Command, nil
	case "telemetry", "tlm":
		return Telemetry, nil
	default:
		return 0, fmt.Errorf("namespace: unknown message class %q", s)
	}
}

var (
	ErrUnassignedOffset  = errors.New("namespace: offset unassigned")
	ErrOutOfRange        = errors.New("namespace: identifier out of range")
	ErrCollision         = errors.New("namespace: identifier collision")
	ErrUnknownIdentifier = errors.New("namespace: unknown identifier")
)

// Compute returns base + off.
// Unassigned yields ErrUnassignedOffset. Any other negative offset or a
// sum past MaxAPID yields ErrOutOfRange.
func Compute(base uint16, off Offset) (APID, error) {
	if !off.Assigned() {
		return 0, ErrUnassignedOffset
	}
	if off < 0 {
		return 0, fmt.Errorf("%w: base=%d negative offset %d", ErrOutOfRange, base, off)
	}

	sum := uint32(base) + uint32(off)
	if sum > uint32(MaxAPID) {
		return 0, fmt.Errorf("%w: base=%d offset=%d sum=%d max=%d", ErrOutOfRange, base, off, sum, MaxAPID)
	}

	return APID(sum), nil
}
