// internal/report/table.go
package report

import (
	"fmt"
	"io"

	"github.com/tamzrod/apid-namespace/internal/namespace"
)

const (
	headerFormat = "%-10s %-12s %-9s %5s %s\n"
	rowFormat    = "%-10s %-12s %-9s %5d 0x%04X\n"
)

// WriteTable renders every assigned identifier of the given classes,
// one row per (processor, component), sorted by APID within a class.
// With no classes, both classes are written, commands first.
func WriteTable(w io.Writer, l *namespace.Layout, classes ...namespace.Class) error {
	if len(classes) == 0 {
		classes = namespace.Classes
	}

	if _, err := fmt.Fprintf(w, headerFormat, "PROCESSOR", "COMPONENT", "CLASS", "APID", "STREAM"); err != nil {
		return err
	}

	for _, class := range classes {
		for _, a := range l.Assignments(class) {
			if _, err := fmt.Fprintf(w, rowFormat,
				a.Processor,
				a.Component,
				a.Class,
				a.ID,
				namespace.StreamID(a.Class, a.ID),
			); err != nil {
				return err
			}
		}
	}

	return nil
}

// WriteAssignment renders one decoded identifier.
func WriteAssignment(w io.Writer, a namespace.Assignment) error {
	_, err := fmt.Fprintf(w, "apid=%d class=%s processor=%s component=%s stream=0x%04X\n",
		a.ID, a.Class, a.Processor, a.Component, namespace.StreamID(a.Class, a.ID))
	return err
}
