// internal/config/config.go
package config

type Config struct {
	Namespace NamespaceConfig `yaml:"namespace"`
	Monitor   *MonitorConfig  `yaml:"monitor"`
}

// ---- NAMESPACE ----

type NamespaceConfig struct {
	BlockSize  uint16            `yaml:"block_size"` // 0 => default (32)
	Processors []ProcessorConfig `yaml:"processors"`
	Components []ComponentConfig `yaml:"components"`
}

type ProcessorConfig struct {
	Name string `yaml:"name"`
	Base uint16 `yaml:"base"`
}

// ComponentConfig offsets are optional per class.
// An absent offset is unassigned, never zero.
type ComponentConfig struct {
	Name            string  `yaml:"name"`
	CommandOffset   *uint16 `yaml:"command_offset"`
	TelemetryOffset *uint16 `yaml:"telemetry_offset"`
}

// ---- MONITOR (optional) ----

const (
	TransportModbus = "modbus"
	TransportIngest = "ingest"
)

type MonitorConfig struct {
	Source   SourceConfig   `yaml:"source"`
	Downlink DownlinkConfig `yaml:"downlink"`
}

// SourceConfig locates a processor's raw reset registers.
type SourceConfig struct {
	Processor  string `yaml:"processor"`
	Endpoint   string `yaml:"endpoint"`
	UnitID     uint8  `yaml:"unit_id"`
	Address    uint16 `yaml:"address"` // [type, subtype] holding registers
	TimeoutMs  int    `yaml:"timeout_ms"`
	IntervalMs int    `yaml:"interval_ms"`
}

// DownlinkConfig locates the boot status memory.
type DownlinkConfig struct {
	Transport  string `yaml:"transport"` // "modbus" (default) or "ingest"
	Endpoint   string `yaml:"endpoint"`
	UnitID     uint8  `yaml:"unit_id"`
	StatusSlot uint16 `yaml:"status_slot"`
	TimeoutMs  int    `yaml:"timeout_ms"`
}
