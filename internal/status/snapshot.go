// internal/status/snapshot.go
package status

import "fmt"

// Snapshot is exactly what the downlink is allowed to deliver.
// Reset codes are raw: an unclassifiable code is carried, not replaced.
type Snapshot struct {
	ResetType    uint16
	ResetSubtype uint16
	Health       uint16
}

var healthNames = map[uint16]string{
	HealthUnknown:     "unknown",
	HealthOK:          "ok",
	HealthAnomaly:     "anomaly",
	HealthUnreachable: "unreachable",
}

// HealthName names a health code; unmapped codes render as health(n).
func HealthName(h uint16) string {
	if n, ok := healthNames[h]; ok {
		return n
	}
	return fmt.Sprintf("health(%d)", h)
}
