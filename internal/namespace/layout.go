// internal/namespace/layout.go
package namespace

import (
	"errors"
	"fmt"
	"sort"
)

// Processor owns one block of identifiers starting at Base.
type Processor struct {
	Name string
	Base uint16
}

// Component is a subsystem type. Its offsets are defined once and
// reused unchanged inside every processor block.
type Component struct {
	Name      string
	Command   Offset
	Telemetry Offset
}

// Offset returns the component's offset for class c.
func (c Component) Offset(class Class) Offset {
	if class == Command {
		return c.Command
	}
	return c.Telemetry
}

// Layout is the validated, immutable identifier namespace.
// It is safe for concurrent use once NewLayout returns.
type Layout struct {
	blockSize  uint16
	processors []Processor
	components []Component

	procByName map[string]int
	compByName map[string]int
	procByBase map[uint16]int
}

// NewLayout builds a Layout and rejects any configuration that would
// break routing: misaligned bases, offsets outside a block, duplicate
// names, or identifier collisions in either class.
func NewLayout(blockSize uint16, procs []Processor, comps []Component) (*Layout, error) {
	if blockSize == 0 {
		return nil, errors.New("namespace: block size must be > 0")
	}

	l := &Layout{
		blockSize:  blockSize,
		processors: append([]Processor(nil), procs...),
		components: append([]Component(nil), comps...),
		procByName: make(map[string]int, len(procs)),
		compByName: make(map[string]int, len(comps)),
		procByBase: make(map[uint16]int, len(procs)),
	}

	for i, p := range l.processors {
		if p.Name == "" {
			return nil, fmt.Errorf("namespace: processor %d: name required", i)
		}
		if _, dup := l.procByName[p.Name]; dup {
			return nil, fmt.Errorf("namespace: duplicate processor %q", p.Name)
		}
		if p.Base%blockSize != 0 {
			return nil, fmt.Errorf(
				"namespace: processor %q: base %d not aligned to block size %d",
				p.Name, p.Base, blockSize,
			)
		}
		if prev, dup := l.procByBase[p.Base]; dup {
			return nil, fmt.Errorf(
				"namespace: processors %q and %q share base %d",
				l.processors[prev].Name, p.Name, p.Base,
			)
		}
		l.procByName[p.Name] = i
		l.procByBase[p.Base] = i
	}

	for i, c := range l.components {
		if c.Name == "" {
			return nil, fmt.Errorf("namespace: component %d: name required", i)
		}
		if _, dup := l.compByName[c.Name]; dup {
			return nil, fmt.Errorf("namespace: duplicate component %q", c.Name)
		}
		for _, class := range Classes {
			off := c.Offset(class)
			if off < Unassigned {
				return nil, fmt.Errorf("namespace: component %q: invalid %s offset %d", c.Name, class, off)
			}
			if off.Assigned() && off >= Offset(blockSize) {
				return nil, fmt.Errorf(
					"namespace: component %q: %s offset %d outside block size %d",
					c.Name, class, off, blockSize,
				)
			}
		}
		l.compByName[c.Name] = i
	}

	for _, class := range Classes {
		if err := ValidateClass(class, l.bases(), l.offsets(class)); err != nil {
			return nil, err
		}
	}

	return l, nil
}

// BlockSize returns the number of identifiers per processor block.
func (l *Layout) BlockSize() uint16 { return l.blockSize }

// Processors returns a copy of the processor table.
func (l *Layout) Processors() []Processor {
	return append([]Processor(nil), l.processors...)
}

// Components returns a copy of the component table.
func (l *Layout) Components() []Component {
	return append([]Component(nil), l.components...)
}

// Identifier resolves the identifier of (processor, component, class).
func (l *Layout) Identifier(processor, component string, class Class) (APID, error) {
	pi, ok := l.procByName[processor]
	if !ok {
		return 0, fmt.Errorf("namespace: unknown processor %q", processor)
	}
	ci, ok := l.compByName[component]
	if !ok {
		return 0, fmt.Errorf("namespace: unknown component %q", component)
	}

	id, err := Compute(l.processors[pi].Base, l.components[ci].Offset(class))
	if err != nil {
		return 0, fmt.Errorf("%s/%s/%s: %w", processor, component, class, err)
	}
	return id, nil
}

// Decode recovers the owner of id: the processor block by division,
// the component by remainder.
func (l *Layout) Decode(id APID, class Class) (Assignment, error) {
	base := uint16(id) / l.blockSize * l.blockSize
	off := Offset(uint16(id) % l.blockSize)

	pi, ok := l.procByBase[base]
	if !ok {
		return Assignment{}, fmt.Errorf("%w: apid=%d: no processor at base %d", ErrUnknownIdentifier, id, base)
	}

	for _, c := range l.components {
		if c.Offset(class) == off {
			return Assignment{
				Processor: l.processors[pi].Name,
				Component: c.Name,
				Class:     class,
				ID:        id,
			}, nil
		}
	}

	return Assignment{}, fmt.Errorf(
		"%w: apid=%d: no %s component at offset %d of processor %s",
		ErrUnknownIdentifier, id, class, off, l.processors[pi].Name,
	)
}

// Assignments lists every assigned identifier of class, sorted by identifier.
func (l *Layout) Assignments(class Class) []Assignment {
	var out []Assignment
	for _, p := range l.processors {
		for _, c := range l.components {
			id, err := Compute(p.Base, c.Offset(class))
			if err != nil {
				// unassigned; range was checked by NewLayout
				continue
			}
			out = append(out, Assignment{
				Processor: p.Name,
				Component: c.Name,
				Class:     class,
				ID:        id,
			})
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (l *Layout) bases() []Base {
	out := make([]Base, 0, len(l.processors))
	for _, p := range l.processors {
		out = append(out, Base{Processor: p.Name, Value: p.Base})
	}
	return out
}

func (l *Layout) offsets(class Class) []ComponentOffset {
	out := make([]ComponentOffset, 0, len(l.components))
	for _, c := range l.components {
		out = append(out, ComponentOffset{Component: c.Name, Offset: c.Offset(class)})
	}
	return out
}
