// internal/writer/builder_test.go
package writer

import (
	"testing"

	cfg "github.com/tamzrod/apid-namespace/internal/config"
)

func TestBuildPlan(t *testing.T) {
	plan, err := BuildPlan(cfg.MonitorConfig{
		Source:   cfg.SourceConfig{Processor: "payload-processor-a", Endpoint: "src:502"},
		Downlink: cfg.DownlinkConfig{Endpoint: "dst:502", UnitID: 4, StatusSlot: 3},
	})
	if err != nil {
		t.Fatalf("BuildPlan: %v", err)
	}

	if plan.Transport != cfg.TransportModbus {
		t.Fatalf("default transport: got=%q", plan.Transport)
	}
	if plan.Status == nil || plan.Status.BaseSlot != 3 || plan.Status.UnitID != 4 {
		t.Fatalf("status plan: %+v", plan.Status)
	}
	if plan.Status.Name != "payload-processo" {
		t.Fatalf("name should be truncated, got %q", plan.Status.Name)
	}
}

func TestBuildPlan_Rejects(t *testing.T) {
	if _, err := BuildPlan(cfg.MonitorConfig{Downlink: cfg.DownlinkConfig{Endpoint: "dst"}}); err == nil {
		t.Fatalf("expected processor error")
	}
	if _, err := BuildPlan(cfg.MonitorConfig{Source: cfg.SourceConfig{Processor: "cpu1"}}); err == nil {
		t.Fatalf("expected endpoint error")
	}
}

func TestBuildEndpointClient_Ingest(t *testing.T) {
	plan := Plan{
		Processor: "cpu1",
		Transport: cfg.TransportIngest,
		Status:    &StatusPlan{Endpoint: "127.0.0.1:1"},
	}

	clients, closer, err := BuildEndpointClient(plan, 0)
	if err != nil {
		t.Fatalf("ingest client is dial-per-write and must build offline: %v", err)
	}
	defer closer()

	if clients["127.0.0.1:1"] == nil {
		t.Fatalf("missing client for endpoint")
	}
}

func TestBuildEndpointClient_UnknownTransport(t *testing.T) {
	plan := Plan{Transport: "serial", Status: &StatusPlan{Endpoint: "x"}}
	if _, _, err := BuildEndpointClient(plan, 0); err == nil {
		t.Fatalf("expected transport error")
	}
}
