// internal/namespace/streamid.go
package namespace

import "fmt"

// CCSDS primary header stream ID (16 bits):
//
//	bits 15-13  version (always 0)
//	bit  12     packet type (1 = command)
//	bit  11     secondary header flag (always set)
//	bits 10-0   APID
const (
	streamVersionMask uint16 = 0xE000
	streamTypeBit     uint16 = 0x1000
	streamSecHdrBit   uint16 = 0x0800
	streamAPIDMask    uint16 = 0x07FF
)

// StreamID builds the message ID a routing peer sees on the bus.
// Command identifiers land in 0x18xx, telemetry in 0x08xx.
func StreamID(class Class, id APID) uint16 {
	sid := streamSecHdrBit | (uint16(id) & streamAPIDMask)
	if class == Command {
		sid |= streamTypeBit
	}
	return sid
}

// ParseStreamID splits a stream ID back into class and identifier.
func ParseStreamID(sid uint16) (Class, APID, error) {
	if sid&streamVersionMask != 0 {
		return 0, 0, fmt.Errorf("namespace: stream id 0x%04X: unsupported version %d", sid, sid>>13)
	}
	if sid&streamSecHdrBit == 0 {
		return 0, 0, fmt.Errorf("namespace: stream id 0x%04X: secondary header flag not set", sid)
	}

	class := Telemetry
	if sid&streamTypeBit != 0 {
		class = Command
	}
	return class, APID(sid & streamAPIDMask), nil
}
