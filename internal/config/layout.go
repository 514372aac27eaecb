// internal/config/layout.go
package config

import "github.com/tamzrod/apid-namespace/internal/namespace"

// BuildLayout converts the namespace section into an immutable Layout.
// Call after Validate and Normalize.
func BuildLayout(cfg *Config) (*namespace.Layout, error) {
	ns := cfg.Namespace

	procs := make([]namespace.Processor, 0, len(ns.Processors))
	for _, p := range ns.Processors {
		procs = append(procs, namespace.Processor{Name: p.Name, Base: p.Base})
	}

	comps := make([]namespace.Component, 0, len(ns.Components))
	for _, c := range ns.Components {
		comps = append(comps, namespace.Component{
			Name:      c.Name,
			Command:   c.offset(namespace.Command),
			Telemetry: c.offset(namespace.Telemetry),
		})
	}

	blockSize := ns.BlockSize
	if blockSize == 0 {
		blockSize = namespace.DefaultBlockSize
	}

	return namespace.NewLayout(blockSize, procs, comps)
}
