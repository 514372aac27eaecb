// internal/namespace/validate.go
package namespace

import "fmt"

// Base is one processor's block start.
type Base struct {
	Processor string
	Value     uint16
}

// ComponentOffset is one component's offset for a single class.
type ComponentOffset struct {
	Component string
	Offset    Offset
}

// Assignment is one resolved (processor, component, class) identifier.
type Assignment struct {
	Processor string
	Component string
	Class     Class
	ID        APID
}

func (a Assignment) String() string {
	return fmt.Sprintf("%s/%s/%s=%d", a.Processor, a.Component, a.Class, a.ID)
}

// CollisionError names two assignments that resolve to the same identifier.
type CollisionError struct {
	ID APID
	A  Assignment
	B  Assignment
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf(
		"identifier collision: apid=%d used by processor=%s component=%s and processor=%s component=%s",
		e.ID,
		e.A.Processor,
		e.A.Component,
		e.B.Processor,
		e.B.Component,
	)
}

// Is lets callers match any collision with errors.Is(err, ErrCollision).
func (e *CollisionError) Is(target error) bool { return target == ErrCollision }

// Validate checks that every (base, offset) pair in the cross product
// resolves to a distinct identifier. Only Unassigned offsets are skipped;
// any other negative offset fails with ErrOutOfRange.
// It stops at the first collision or compute failure.
// Offsets are taken as one class; use ValidateClass to label it.
func Validate(bases []Base, offsets []ComponentOffset) error {
	return ValidateClass(Telemetry, bases, offsets)
}

// ValidateClass is Validate with the class recorded in reported assignments.
func ValidateClass(class Class, bases []Base, offsets []ComponentOffset) error {
	// key = identifier
	owner := make(map[APID]Assignment, len(bases)*len(offsets))

	for _, b := range bases {
		for _, o := range offsets {
			if o.Offset == Unassigned {
				continue
			}

			id, err := Compute(b.Value, o.Offset)
			if err != nil {
				return fmt.Errorf("processor %q component %q: %w", b.Processor, o.Component, err)
			}

			a := Assignment{
				Processor: b.Processor,
				Component: o.Component,
				Class:     class,
				ID:        id,
			}

			if prev, exists := owner[id]; exists {
				return &CollisionError{ID: id, A: prev, B: a}
			}

			owner[id] = a
		}
	}

	return nil
}
