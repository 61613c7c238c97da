package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cfgPath := filepath.Join(t.TempDir(), "gutwipe.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("log:\n  level: error\n"), 0644))

	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--config", cfgPath}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "gutwipe version dev")
}

func TestScheduleCmd(t *testing.T) {
	out, err := execute(t, "schedule")
	require.NoError(t, err)

	assert.Equal(t, 35, strings.Count(out, "Pass "))
	assert.Contains(t, out, "Pass 01: random\n")
	assert.Contains(t, out, "Pass 05: fixed  row  0  55 55 55\n")
	assert.Contains(t, out, "Pass 31: fixed  row 26  DB 6D B6\n")
	assert.Contains(t, out, "Pass 35: random\n")
}

func TestInfoCmd(t *testing.T) {
	path := writeSecret(t, strings.Repeat("a", 2048))
	out, err := execute(t, "info", path)
	require.NoError(t, err)

	assert.Contains(t, out, "Filename: secret.txt")
	assert.Contains(t, out, "Filesize: 2.0 KiB (2,048 bytes)")
	assert.Contains(t, out, "Bytes to write: 210 KiB (215,040)")
	assert.Contains(t, out, "Chunk writes per pass: 3")
}

func TestInfoCmdMissingFile(t *testing.T) {
	_, err := execute(t, "info", filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestWipeCmdEndToEnd(t *testing.T) {
	path := writeSecret(t, strings.Repeat("b", 5000))
	reportDir := t.TempDir()

	out, err := execute(t, "wipe", "--yes", "--no-progress", "--chunk-size", "1024", "--random-source", "clock", "--report-dir", reportDir, path)
	require.NoError(t, err)

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
	assert.NotContains(t, out, "01 02 03")

	r := loadReport(t, reportDir)
	assert.Equal(t, "clock", r.RandomSource)
	assert.Equal(t, 1024, r.ChunkSize)
	assert.EqualValues(t, 105*5000, r.BytesWritten)
}

func TestWipeCmdBadConfig(t *testing.T) {
	path := writeSecret(t, "x")
	_, err := execute(t, "wipe", "--yes", "--random-source", "dice", path)
	assert.ErrorContains(t, err, "random_source")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "x", string(data))
}

func TestReportsCmd(t *testing.T) {
	reportDir := t.TempDir()
	for i := 0; i < 2; i++ {
		path := writeSecret(t, "data")
		_, err := execute(t, "wipe", "--yes", "--no-progress", "--report-dir", reportDir, path)
		require.NoError(t, err)
	}

	out, err := execute(t, "reports", "--report-dir", reportDir)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "  ID: "))
	assert.Contains(t, out, "Status: success, 35/35 passes")
	assert.Contains(t, out, "Total: 2")

	out, err = execute(t, "reports", "--report-dir", reportDir, "--status", "failure")
	require.NoError(t, err)
	assert.Contains(t, out, "No reports found")
}

func TestReportsCmdNeedsDir(t *testing.T) {
	_, err := execute(t, "reports")
	assert.ErrorContains(t, err, "no report directory")
}
