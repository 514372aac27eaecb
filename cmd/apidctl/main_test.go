// cmd/apidctl/main_test.go
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tamzrod/apid-namespace/internal/reset"
	"github.com/tamzrod/apid-namespace/internal/status"
)

const testMission = `
namespace:
  processors:
    - { name: cpu1, base: 0 }
    - { name: cpu2, base: 32 }
  components:
    - { name: evs, command_offset: 1, telemetry_offset: 1 }
    - { name: sb, command_offset: 3 }
    - { name: es, command_offset: 6, telemetry_offset: 0 }
`

func writeMission(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mission.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	logger = zap.NewNop()
	verbose = false
	tableClass = ""
	decodeClass = "command"

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestValidateCommand(t *testing.T) {
	out, err := execute(t, "validate", writeMission(t, testMission))
	require.NoError(t, err)
	assert.Contains(t, out, "2 processors, 3 components, 6 command + 4 telemetry identifiers (block size 32)")
}

func TestValidateCommand_Collision(t *testing.T) {
	body := testMission + "    - { name: to, command_offset: 3 }\n"

	_, err := execute(t, "validate", writeMission(t, body))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sb")
	assert.Contains(t, err.Error(), "to")
}

func TestTableCommand_SingleClass(t *testing.T) {
	out, err := execute(t, "table", writeMission(t, testMission), "--class", "telemetry")
	require.NoError(t, err)
	assert.Contains(t, out, "0x0820")
	assert.NotContains(t, out, "command")
}

func TestDecodeCommand(t *testing.T) {
	path := writeMission(t, testMission)

	out, err := execute(t, "decode", path, "38")
	require.NoError(t, err)
	assert.Contains(t, out, "processor=cpu2 component=es")

	// stream ID carries its own class
	out, err = execute(t, "decode", path, "0x0820")
	require.NoError(t, err)
	assert.Contains(t, out, "class=telemetry processor=cpu2 component=es")

	_, err = execute(t, "decode", path, "2")
	assert.Error(t, err)
}

func TestClassifyCommand(t *testing.T) {
	out, err := execute(t, "classify", "2", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "type=PowerOnReset(2) subtype=HardwareWatchdog(4)")
	assert.Contains(t, out, "wire=00 02 00 04")

	out, err = execute(t, "classify", "apprestart", "BankSwitchReset")
	require.NoError(t, err)
	assert.Contains(t, out, "type=AppRestart(3) subtype=BankSwitchReset(9)")
}

func TestClassifyCommand_UnknownBothFields(t *testing.T) {
	_, err := execute(t, "classify", "0", "99")
	require.Error(t, err)
	assert.ErrorIs(t, err, reset.ErrUnknownResetType)
	assert.ErrorIs(t, err, reset.ErrUnknownResetSubtype)
}

func TestMonitorCommand_RequiresMonitorSection(t *testing.T) {
	_, err := execute(t, "monitor", writeMission(t, testMission))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no monitor section")
}

func TestWriteStatusBlock(t *testing.T) {
	regs := status.Encode(status.Snapshot{ResetType: 2, ResetSubtype: 4, Health: status.HealthOK})
	copy(regs[status.SlotNameStart:], status.EncodeName("cpu1"))

	var out bytes.Buffer
	require.NoError(t, writeStatusBlock(&out, regs, reset.Standard()))
	assert.Equal(t, "processor=cpu1 health=ok type=PowerOnReset(2) subtype=HardwareWatchdog(4)\n", out.String())

	// anomalous codes come back as published
	regs = status.Encode(status.Snapshot{ResetType: 99, ResetSubtype: 4, Health: status.HealthAnomaly})
	out.Reset()
	require.NoError(t, writeStatusBlock(&out, regs, reset.Standard()))
	assert.Contains(t, out.String(), "health=anomaly type=Type(99)(99)")

	assert.Error(t, writeStatusBlock(&out, regs[:3], reset.Standard()))
}

func TestStatusCommand_RejectsIngestDownlink(t *testing.T) {
	body := testMission + `
monitor:
  source:
    processor: cpu1
    endpoint: "127.0.0.1:1502"
  downlink:
    transport: ingest
    endpoint: "127.0.0.1:1503"
`
	_, err := execute(t, "status", writeMission(t, body))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be read back")
}
