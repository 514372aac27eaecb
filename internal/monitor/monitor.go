// internal/monitor/monitor.go
package monitor

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/tamzrod/apid-namespace/internal/poller"
	"github.com/tamzrod/apid-namespace/internal/reset"
	"github.com/tamzrod/apid-namespace/internal/status"
	"github.com/tamzrod/apid-namespace/internal/writer"
)

// Monitor owns the boot status snapshot of one processor.
// It classifies raw reset codes and publishes the snapshot on change.
// An unclassifiable code never stops the monitor: it is logged and
// published with HealthAnomaly, raw codes untouched.
type Monitor struct {
	taxonomy *reset.Taxonomy
	out      writer.StatusWriter
	log      *zap.Logger

	snap      status.Snapshot
	published bool
}

// New creates a Monitor. out may be nil when no downlink is configured.
func New(taxonomy *reset.Taxonomy, out writer.StatusWriter, log *zap.Logger) (*Monitor, error) {
	if taxonomy == nil {
		return nil, errors.New("monitor: taxonomy required")
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Monitor{
		taxonomy: taxonomy,
		out:      out,
		log:      log,
		snap:     status.Snapshot{Health: status.HealthUnknown},
	}, nil
}

// Snapshot returns the current state.
func (m *Monitor) Snapshot() status.Snapshot { return m.snap }

// Handle folds one poll result into the snapshot and publishes it if it changed.
func (m *Monitor) Handle(res poller.Result) status.Snapshot {
	log := m.log.With(zap.String("processor", res.Processor))

	next := m.snap

	if res.Err != nil {
		// keep last known codes; only health moves
		next.Health = status.HealthUnreachable
		if m.snap.Health != status.HealthUnreachable {
			log.Warn("reset registers unreadable", zap.Error(res.Err))
		}
	} else {
		next.ResetType = res.RawType
		next.ResetSubtype = res.RawSubtype

		d, err := m.taxonomy.Describe(uint32(res.RawType), uint32(res.RawSubtype))
		if err != nil {
			next.Health = status.HealthAnomaly
			if next != m.snap {
				log.Warn("unclassifiable reset cause",
					zap.Uint16("raw_type", res.RawType),
					zap.Uint16("raw_subtype", res.RawSubtype),
					zap.Error(err),
				)
			}
		} else {
			next.Health = status.HealthOK
			if next != m.snap {
				typeName, subtypeName := m.taxonomy.Names(d)
				log.Info("reset cause",
					zap.String("type", typeName),
					zap.String("subtype", subtypeName),
				)
			}
		}
	}

	if next == m.snap && m.published {
		return m.snap
	}

	m.snap = next
	m.publish(log)
	return m.snap
}

func (m *Monitor) publish(log *zap.Logger) {
	if m.out == nil {
		m.published = true
		return
	}

	if err := m.out.WriteStatus(m.snap); err != nil {
		// retried on the next result; the writer re-asserts the full block
		m.published = false
		log.Error("status write failed", zap.Error(err))
		return
	}
	m.published = true
}

// Run consumes results until ctx is done or in is closed.
func (m *Monitor) Run(ctx context.Context, in <-chan poller.Result) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case res, ok := <-in:
			if !ok {
				return nil
			}
			m.Handle(res)
		}
	}
}
