// internal/reset/taxonomy.go
package reset

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrUnknownResetType    = errors.New("reset: unknown reset type")
	ErrUnknownResetSubtype = errors.New("reset: unknown reset subtype")
)

// UnknownCodeError reports a raw code outside the closed enumeration.
// Field is "type" or "subtype".
type UnknownCodeError struct {
	Field string
	Code  uint32
}

func (e *UnknownCodeError) Error() string {
	return fmt.Sprintf("reset: unknown reset %s code %d", e.Field, e.Code)
}

func (e *UnknownCodeError) Is(target error) bool {
	switch target {
	case ErrUnknownResetType:
		return e.Field == "type"
	case ErrUnknownResetSubtype:
		return e.Field == "subtype"
	}
	return false
}

// Taxonomy is an immutable code table. Build it once and pass it to
// whatever classifies raw codes; it is safe for concurrent reads.
type Taxonomy struct {
	types    map[Type]string
	subtypes map[Subtype]string
}

// Standard returns the flight taxonomy.
func Standard() *Taxonomy {
	t, err := NewTaxonomy(typeNames, subtypeNames)
	if err != nil {
		// the built-in tables are constant
		panic(err)
	}
	return t
}

// NewTaxonomy builds a taxonomy from alternate tables.
// Code 0 is reserved and names must be non-empty and unique.
func NewTaxonomy(types map[Type]string, subtypes map[Subtype]string) (*Taxonomy, error) {
	x := &Taxonomy{
		types:    make(map[Type]string, len(types)),
		subtypes: make(map[Subtype]string, len(subtypes)),
	}

	seen := make(map[string]struct{})
	for code, name := range types {
		if err := checkEntry("type", uint32(code), name, seen); err != nil {
			return nil, err
		}
		x.types[code] = name
	}

	seen = make(map[string]struct{})
	for code, name := range subtypes {
		if err := checkEntry("subtype", uint32(code), name, seen); err != nil {
			return nil, err
		}
		x.subtypes[code] = name
	}

	return x, nil
}

func checkEntry(field string, code uint32, name string, seen map[string]struct{}) error {
	if code == 0 {
		return fmt.Errorf("reset: %s code 0 is reserved (name %q)", field, name)
	}
	if name == "" {
		return fmt.Errorf("reset: %s code %d has no name", field, code)
	}
	key := strings.ToLower(name)
	if _, dup := seen[key]; dup {
		return fmt.Errorf("reset: duplicate %s name %q", field, name)
	}
	seen[key] = struct{}{}
	return nil
}

// Classify maps a raw code to a Type. Unmapped codes are an error,
// never a default.
func (x *Taxonomy) Classify(raw uint32) (Type, error) {
	if raw <= 0xFFFF {
		if _, ok := x.types[Type(raw)]; ok {
			return Type(raw), nil
		}
	}
	return 0, &UnknownCodeError{Field: "type", Code: raw}
}

// ClassifySubtype maps a raw code to a Subtype with the same contract.
func (x *Taxonomy) ClassifySubtype(raw uint32) (Subtype, error) {
	if raw <= 0xFFFF {
		if _, ok := x.subtypes[Subtype(raw)]; ok {
			return Subtype(raw), nil
		}
	}
	return 0, &UnknownCodeError{Field: "subtype", Code: raw}
}

// Describe classifies both fields independently. Whatever classified is
// kept in the returned descriptor; failures are joined.
func (x *Taxonomy) Describe(rawType, rawSubtype uint32) (Descriptor, error) {
	var d Descriptor
	var errs []error

	t, err := x.Classify(rawType)
	if err != nil {
		errs = append(errs, err)
	} else {
		d.Type = t
	}

	s, err := x.ClassifySubtype(rawSubtype)
	if err != nil {
		errs = append(errs, err)
	} else {
		d.Subtype = s
	}

	return d, errors.Join(errs...)
}

// TypeName returns the configured name of t.
func (x *Taxonomy) TypeName(t Type) (string, bool) {
	n, ok := x.types[t]
	return n, ok
}

// SubtypeName returns the configured name of s.
func (x *Taxonomy) SubtypeName(s Subtype) (string, bool) {
	n, ok := x.subtypes[s]
	return n, ok
}

// Names returns the names this taxonomy gives d's fields. Codes it does
// not map fall back to Type(n) / Subtype(n).
func (x *Taxonomy) Names(d Descriptor) (typeName, subtypeName string) {
	typeName, ok := x.TypeName(d.Type)
	if !ok {
		typeName = fmt.Sprintf("Type(%d)", uint16(d.Type))
	}
	subtypeName, ok = x.SubtypeName(d.Subtype)
	if !ok {
		subtypeName = fmt.Sprintf("Subtype(%d)", uint16(d.Subtype))
	}
	return typeName, subtypeName
}

// ParseType resolves a type by name (case-insensitive).
func (x *Taxonomy) ParseType(name string) (Type, error) {
	for code, n := range x.types {
		if strings.EqualFold(n, name) {
			return code, nil
		}
	}
	return 0, fmt.Errorf("%w: name %q", ErrUnknownResetType, name)
}

// ParseSubtype resolves a subtype by name (case-insensitive).
func (x *Taxonomy) ParseSubtype(name string) (Subtype, error) {
	for code, n := range x.subtypes {
		if strings.EqualFold(n, name) {
			return code, nil
		}
	}
	return 0, fmt.Errorf("%w: name %q", ErrUnknownResetSubtype, name)
}

// Types lists the type codes in ascending order.
func (x *Taxonomy) Types() []Type {
	out := make([]Type, 0, len(x.types))
	for code := range x.types {
		out = append(out, code)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Subtypes lists the subtype codes in ascending order.
func (x *Taxonomy) Subtypes() []Subtype {
	out := make([]Subtype, 0, len(x.subtypes))
	for code := range x.subtypes {
		out = append(out, code)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
