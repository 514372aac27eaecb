// internal/reset/codes.go
package reset

import "fmt"

// Reset codes cross the telemetry link to ground tools.
// These values MUST NOT be renumbered. Zero is reserved.

// Type is the top-level reason the system started.
type Type uint16

const (
	ProcessorReset Type = 1
	PowerOnReset   Type = 2
	AppRestart     Type = 3
)

// Subtype is the finer-grained cause. It is a flat table shared by
// every Type; no (type, subtype) pairing is enforced.
type Subtype uint16

const (
	PowerCycle             Subtype = 1
	PushButton             Subtype = 2
	HardwareSpecialCommand Subtype = 3
	HardwareWatchdog       Subtype = 4
	ResetCommand           Subtype = 5
	Exception              Subtype = 6
	UndefinedReset         Subtype = 7
	HardwareDebugReset     Subtype = 8
	BankSwitchReset        Subtype = 9
)

var typeNames = map[Type]string{
	ProcessorReset: "ProcessorReset",
	PowerOnReset:   "PowerOnReset",
	AppRestart:     "AppRestart",
}

var subtypeNames = map[Subtype]string{
	PowerCycle:             "PowerCycle",
	PushButton:             "PushButton",
	HardwareSpecialCommand: "HardwareSpecialCommand",
	HardwareWatchdog:       "HardwareWatchdog",
	ResetCommand:           "ResetCommand",
	Exception:              "Exception",
	UndefinedReset:         "UndefinedReset",
	HardwareDebugReset:     "HardwareDebugReset",
	BankSwitchReset:        "BankSwitchReset",
}

func (t Type) String() string {
	if n, ok := typeNames[t]; ok {
		return n
	}
	return fmt.Sprintf("Type(%d)", uint16(t))
}

func (s Subtype) String() string {
	if n, ok := subtypeNames[s]; ok {
		return n
	}
	return fmt.Sprintf("Subtype(%d)", uint16(s))
}
