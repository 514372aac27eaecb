// internal/writer/status_writer.go
package writer

import (
	"errors"
	"fmt"

	"github.com/tamzrod/apid-namespace/internal/status"
)

// StatusWriter is the delivery-only contract for boot status.
// It receives a snapshot and writes it verbatim.
// No logic, no interpretation.
type StatusWriter interface {
	WriteStatus(s status.Snapshot) error
}

// liveSlots are rewritten individually when they change.
var liveSlots = [...]int{status.SlotResetType, status.SlotResetSubtype, status.SlotHealthCode}

// bootStatusWriter is the concrete implementation used by the monitor.
type bootStatusWriter struct {
	plan *StatusPlan
	cli  endpointClient

	needFull bool
	last     []uint16 // encoded block as last confirmed by the endpoint
	nameRegs []uint16
}

// NewStatusWriter builds a status writer if the plan carries a status block.
// If plan.Status is nil, the downlink is disabled.
func NewStatusWriter(plan Plan, clients map[string]endpointClient) (StatusWriter, bool) {
	if plan.Status == nil {
		return nil, false
	}

	sp := plan.Status

	return &bootStatusWriter{
		plan:     sp,
		cli:      clients[sp.Endpoint],
		needFull: true,
		last:     status.Encode(status.Snapshot{Health: status.HealthUnknown}),
		nameRegs: status.EncodeName(sp.Name),
	}, true
}

// WriteStatus delivers a boot status snapshot into status memory.
// The first call writes the whole block, name included; later calls touch
// only the live slots that changed. Any failure forces a full write next time.
func (sw *bootStatusWriter) WriteStatus(s status.Snapshot) error {
	if sw == nil || sw.plan == nil {
		return errors.New("status writer: disabled")
	}
	if sw.cli == nil {
		return fmt.Errorf("status writer: missing client for endpoint %s", sw.plan.Endpoint)
	}

	base := sw.baseAddr()
	unitID := sw.plan.UnitID
	next := status.Encode(s)

	if sw.needFull {
		if err := sw.cli.WriteRegisters(unitID, base, sw.fullBlockRegs(next)); err != nil {
			return fmt.Errorf("status writer: full block write failed: %w", err)
		}
		sw.needFull = false
		sw.last = next
		return nil
	}

	var errs []error
	for _, slot := range liveSlots {
		if sw.last[slot] == next[slot] {
			continue
		}
		if err := sw.cli.WriteRegisters(unitID, base+uint16(slot), next[slot:slot+1]); err != nil {
			errs = append(errs, fmt.Errorf("slot %d: %w", slot, err))
			continue
		}
		sw.last[slot] = next[slot]
	}

	if err := errors.Join(errs...); err != nil {
		sw.needFull = true
		return fmt.Errorf("status writer: %w", err)
	}
	return nil
}

// baseAddr is the first register of this processor's block.
func (sw *bootStatusWriter) baseAddr() uint16 {
	return sw.plan.BaseSlot * status.SlotsPerProcessor
}

// fullBlockRegs adds the name to an encoded block. Reserved slots stay zero.
func (sw *bootStatusWriter) fullBlockRegs(live []uint16) []uint16 {
	regs := make([]uint16, status.SlotsPerProcessor)
	copy(regs, live)
	copy(regs[status.SlotNameStart:status.SlotNameEnd+1], sw.nameRegs)
	return regs
}
