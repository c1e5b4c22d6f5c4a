package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sim "github.com/parcel-sim/parcel-sim/sim"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	rootCmd.SetArgs(nil)
	return buf.String(), err
}

func TestRootCommand_RunsInputFile(t *testing.T) {
	input := `1 10 100 1
2
0 1
0 0
1
0 pac 1 org 0 dst 1
`
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(input), 0o644))

	out, err := execute(t, path)
	require.NoError(t, err)
	want := `0000000 pacote 000 armazenado em 000 na secao 001
0000101 pacote 000 removido de 000 na secao 001
0000101 pacote 000 em transito de 000 para 001
0000111 pacote 000 entregue em 001
`
	assert.Equal(t, want, out)
}

func TestRootCommand_MissingFileFails(t *testing.T) {
	_, err := execute(t, filepath.Join(t.TempDir(), "absent.txt"))
	assert.Error(t, err)
}

func TestGenCommand_ProducesLoadableInput(t *testing.T) {
	spec := `seed: 7
warehouses: 5
edge_probability: 0.4
ring_backbone: true
postings: 10
posting_window: 100
transport_capacity: 2
transit_latency: 3
transport_interval: 40
removal_cost: 1
`
	dir := t.TempDir()
	specPath := filepath.Join(dir, "scenario.yaml")
	outPath := filepath.Join(dir, "generated.txt")
	require.NoError(t, os.WriteFile(specPath, []byte(spec), 0o644))

	_, err := execute(t, "gen", "--spec", specPath, "--out", outPath)
	require.NoError(t, err)

	cfg, err := sim.LoadConfig(outPath)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.NumWarehouses)
	assert.Len(t, cfg.Postings, 10)
	assert.Equal(t, 2, cfg.TransportCapacity)
}
