// cmd/apidctl/cmd_classify.go
package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tamzrod/apid-namespace/internal/reset"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <type> <subtype>",
	Short: "Classify a reset type and subtype (codes or names)",
	Long: `Classify a reset descriptor. Each field is classified independently;
an unknown code is reported as an error and never replaced by a default.

Example:
  apidctl classify 2 4
  apidctl classify PowerOnReset HardwareWatchdog`,
	Args: cobra.ExactArgs(2),
	RunE: runClassify,
}

func runClassify(cmd *cobra.Command, args []string) error {
	x := reset.Standard()

	var errs []error

	t, err := classifyType(x, args[0])
	if err != nil {
		errs = append(errs, err)
	}
	s, err := classifySubtype(x, args[1])
	if err != nil {
		errs = append(errs, err)
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}

	d := reset.Descriptor{Type: t, Subtype: s}
	b, _ := d.MarshalBinary()

	typeName, subtypeName := x.Names(d)

	fmt.Fprintf(cmd.OutOrStdout(), "type=%s(%d) subtype=%s(%d) wire=% X\n",
		typeName, uint16(d.Type), subtypeName, uint16(d.Subtype), b)
	return nil
}

func classifyType(x *reset.Taxonomy, arg string) (reset.Type, error) {
	if v, err := strconv.ParseUint(arg, 0, 32); err == nil {
		return x.Classify(uint32(v))
	}
	return x.ParseType(arg)
}

func classifySubtype(x *reset.Taxonomy, arg string) (reset.Subtype, error) {
	if v, err := strconv.ParseUint(arg, 0, 32); err == nil {
		return x.ClassifySubtype(uint32(v))
	}
	return x.ParseSubtype(arg)
}
