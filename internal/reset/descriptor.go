// internal/reset/descriptor.go
package reset

import (
	"encoding/binary"
	"fmt"
)

// DescriptorSize is the encoded size: type(2) subtype(2), big-endian.
const DescriptorSize = 4

// Descriptor records why the system most recently started.
// It is produced once per boot and read-only afterwards.
type Descriptor struct {
	Type    Type
	Subtype Subtype
}

func (d Descriptor) String() string {
	return fmt.Sprintf("%s/%s", d.Type, d.Subtype)
}

// MarshalBinary encodes the two fields independently.
func (d Descriptor) MarshalBinary() ([]byte, error) {
	b := make([]byte, DescriptorSize)
	binary.BigEndian.PutUint16(b[0:2], uint16(d.Type))
	binary.BigEndian.PutUint16(b[2:4], uint16(d.Subtype))
	return b, nil
}

// DecodeDescriptor parses an encoded descriptor and classifies both fields.
func (x *Taxonomy) DecodeDescriptor(b []byte) (Descriptor, error) {
	if len(b) != DescriptorSize {
		return Descriptor{}, fmt.Errorf("reset: descriptor must be %d bytes, got %d", DescriptorSize, len(b))
	}

	return x.Describe(
		uint32(binary.BigEndian.Uint16(b[0:2])),
		uint32(binary.BigEndian.Uint16(b[2:4])),
	)
}
