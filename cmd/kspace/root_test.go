package main

import (
	"bytes"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())

	return out.String()
}

func writeRun(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestVersion(t *testing.T) {
	assert.Contains(t, run(t, "version"), "kspace version ")
}

func TestFermiCommand(t *testing.T) {
	cfg := writeRun(t, "fermi: {points: 4, seed: 3}\n")
	plot := filepath.Join(t.TempDir(), "fermi.svg")

	var got fermiOutput
	require.NoError(t, json.Unmarshal([]byte(run(t, "fermi", "-c", cfg, "--workers", "2", "--plot", plot)), &got))
	require.Len(t, got.Points, 4)
	for _, k := range got.Points {
		assert.InDelta(t, 0, math.Cos(k[0])+math.Cos(k[1]), 1e-4)
	}

	info, err := os.Stat(plot)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestBandsCommand(t *testing.T) {
	cfg := writeRun(t, `
lattice: {preset: honeycomb-kitaev}
path: {resolution: 3}
bands: {policy: heisenberg-kitaev}
`)
	var got bandsOutput
	require.NoError(t, json.Unmarshal([]byte(run(t, "bands", "--config", cfg)), &got))

	assert.Equal(t, 3, got.SpinDim)
	assert.Equal(t, []int{3, 3, 3}, got.Resolutions)
	assert.Equal(t, []string{"Γ", "K", "M", "Γ"}, got.Labels)
	require.Len(t, got.Bands, 3)
	require.Len(t, got.Bands[0], 6)
	assert.InDelta(t, -0.5, got.Bands[0][0][0], 1e-9)
	require.Len(t, got.Constraints[2][5], 3)
}

func TestCommandErrors(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs([]string{"bands", "--log-level", "loud"})
	require.Error(t, cmd.Execute())

	cmd = newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"fermi", "-c", filepath.Join(t.TempDir(), "absent.yaml")})
	require.Error(t, cmd.Execute())

	cmd = newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"bands", "--plot", filepath.Join(t.TempDir(), "bands.gif")})
	require.Error(t, cmd.Execute())
}
