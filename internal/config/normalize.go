// internal/config/normalize.go
package config

import "github.com/tamzrod/apid-namespace/internal/namespace"

const (
	defaultTimeoutMs  = 1000
	defaultIntervalMs = 1000

	// matches status.NameMaxChars
	maxProcessorNameChars = 16
)

// Normalize applies defaults that Validate tolerates as zero.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.Namespace.BlockSize == 0 {
		cfg.Namespace.BlockSize = namespace.DefaultBlockSize
	}

	m := cfg.Monitor
	if m == nil {
		return
	}

	if m.Source.TimeoutMs <= 0 {
		m.Source.TimeoutMs = defaultTimeoutMs
	}
	if m.Source.IntervalMs <= 0 {
		m.Source.IntervalMs = defaultIntervalMs
	}
	if m.Downlink.Transport == "" {
		m.Downlink.Transport = TransportModbus
	}
	if m.Downlink.TimeoutMs <= 0 {
		m.Downlink.TimeoutMs = defaultTimeoutMs
	}
}

// StatusName is the processor name as written into the status block:
// truncated to the block's name capacity.
func (s SourceConfig) StatusName() string {
	if len(s.Processor) > maxProcessorNameChars {
		return s.Processor[:maxProcessorNameChars]
	}
	return s.Processor
}
