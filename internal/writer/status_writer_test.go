// internal/writer/status_writer_test.go
package writer

import (
	"errors"
	"testing"

	"github.com/tamzrod/apid-namespace/internal/status"
)

// ---- fake endpoint client ----

type writeCall struct {
	unitID uint8
	addr   uint16
	regs   []uint16
}

type fakeEndpointClient struct {
	writes []writeCall
	fail   bool
}

func (f *fakeEndpointClient) WriteRegisters(unitID uint8, addr uint16, regs []uint16) error {
	if f.fail {
		return errors.New("link down")
	}
	f.writes = append(f.writes, writeCall{
		unitID: unitID,
		addr:   addr,
		regs:   append([]uint16(nil), regs...),
	})
	return nil
}

func (f *fakeEndpointClient) last() writeCall { return f.writes[len(f.writes)-1] }

func newTestWriter(t *testing.T, cli *fakeEndpointClient, slot uint16) StatusWriter {
	t.Helper()

	plan := Plan{
		Processor: "cpu2",
		Status: &StatusPlan{
			Endpoint: "status-endpoint",
			UnitID:   1,
			BaseSlot: slot,
			Name:     "cpu2",
		},
	}

	sw, enabled := NewStatusWriter(plan, map[string]endpointClient{"status-endpoint": cli})
	if !enabled {
		t.Fatalf("status writer should be enabled")
	}
	return sw
}

// ---- tests ----

func TestNameWrittenOnFullAssertOnly(t *testing.T) {
	cli := &fakeEndpointClient{}
	sw := newTestWriter(t, cli, 1)

	// ---- first write: FULL ASSERT ----
	first := status.Snapshot{ResetType: 2, ResetSubtype: 1, Health: status.HealthOK}
	if err := sw.WriteStatus(first); err != nil {
		t.Fatalf("initial full assert failed: %v", err)
	}

	w := cli.last()
	if len(w.regs) != status.SlotsPerProcessor {
		t.Fatalf("expected full block write (%d regs), got %d", status.SlotsPerProcessor, len(w.regs))
	}
	if w.addr != status.SlotsPerProcessor {
		t.Fatalf("block addr: got=%d want=%d", w.addr, status.SlotsPerProcessor)
	}
	if got := status.DecodeName(w.regs[status.SlotNameStart : status.SlotNameEnd+1]); got != "cpu2" {
		t.Fatalf("name slots: got=%q want=cpu2", got)
	}
	if w.regs[status.SlotResetType] != 2 || w.regs[status.SlotResetSubtype] != 1 {
		t.Fatalf("reset slots: got=%d/%d", w.regs[status.SlotResetType], w.regs[status.SlotResetSubtype])
	}

	// ---- second write: INCREMENTAL ONLY ----
	second := status.Snapshot{ResetType: 1, ResetSubtype: 4, Health: status.HealthOK}
	if err := sw.WriteStatus(second); err != nil {
		t.Fatalf("incremental write failed: %v", err)
	}

	if len(cli.writes) != 3 {
		t.Fatalf("expected 2 incremental writes, got %d", len(cli.writes)-1)
	}
	for _, w := range cli.writes[1:] {
		if len(w.regs) != 1 {
			t.Fatalf("incremental write should touch one slot, got %d", len(w.regs))
		}
	}
}

func TestUnchangedSnapshotWritesNothing(t *testing.T) {
	cli := &fakeEndpointClient{}
	sw := newTestWriter(t, cli, 0)

	s := status.Snapshot{ResetType: 3, ResetSubtype: 5, Health: status.HealthOK}
	_ = sw.WriteStatus(s)
	_ = sw.WriteStatus(s)

	if len(cli.writes) != 1 {
		t.Fatalf("expected 1 write, got %d", len(cli.writes))
	}
}

func TestHealthSlotAddress(t *testing.T) {
	cli := &fakeEndpointClient{}
	sw := newTestWriter(t, cli, 2)

	_ = sw.WriteStatus(status.Snapshot{ResetType: 99, ResetSubtype: 4, Health: status.HealthAnomaly})
	_ = sw.WriteStatus(status.Snapshot{ResetType: 99, ResetSubtype: 4, Health: status.HealthUnreachable})

	expectedAddr := uint16(2*status.SlotsPerProcessor + status.SlotHealthCode)

	w := cli.last()
	if w.addr != expectedAddr {
		t.Fatalf("unexpected write addr: got=%d want=%d", w.addr, expectedAddr)
	}
	if w.regs[0] != status.HealthUnreachable {
		t.Fatalf("health: got=%d want=%d", w.regs[0], status.HealthUnreachable)
	}
}

func TestFailureForcesFullReassert(t *testing.T) {
	cli := &fakeEndpointClient{}
	sw := newTestWriter(t, cli, 0)

	_ = sw.WriteStatus(status.Snapshot{ResetType: 2, ResetSubtype: 1, Health: status.HealthOK})

	cli.fail = true
	if err := sw.WriteStatus(status.Snapshot{ResetType: 1, ResetSubtype: 5, Health: status.HealthOK}); err == nil {
		t.Fatalf("expected write failure")
	}

	cli.fail = false
	if err := sw.WriteStatus(status.Snapshot{ResetType: 1, ResetSubtype: 5, Health: status.HealthOK}); err != nil {
		t.Fatalf("recovery write failed: %v", err)
	}

	if len(cli.last().regs) != status.SlotsPerProcessor {
		t.Fatalf("expected full block after failure, got %d regs", len(cli.last().regs))
	}
}

func TestDisabledWithoutStatusPlan(t *testing.T) {
	if _, enabled := NewStatusWriter(Plan{Processor: "cpu1"}, nil); enabled {
		t.Fatalf("status writer should be disabled")
	}
}

func TestMissingClient(t *testing.T) {
	sw, _ := NewStatusWriter(Plan{Status: &StatusPlan{Endpoint: "nowhere"}}, map[string]endpointClient{})
	if err := sw.WriteStatus(status.Snapshot{}); err == nil {
		t.Fatalf("expected missing client error")
	}
}
