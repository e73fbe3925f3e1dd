package parser

import (
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"

	"github.com/gitrdm/ndtmsim/pkg/ndtm"
)

// WriteVerdict emits exactly one line naming v ("0", "1", or "U") to w.
func WriteVerdict(w io.Writer, v ndtm.Verdict) error {
	_, err := fmt.Fprintln(w, v.String())
	return err
}

// debugDumpConfig is a package-level spew.ConfigState rather than the
// shared spew.Config, so dump output here is never affected by another
// package's customization of it.
var debugDumpConfig = &spew.ConfigState{
	Indent:                  "  ",
	DisableMethods:          true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// DumpMachine pretty-prints a parsed Machine's transition table,
// accepting set, and step budget to w, for diagnosing a malformed or
// surprising machine description before evaluation begins.
func DumpMachine(w io.Writer, m *Machine) {
	fmt.Fprintln(w, "--- parsed machine description ---")
	debugDumpConfig.Fdump(w, m)
	fmt.Fprintln(w, "--- end machine description ---")
}
