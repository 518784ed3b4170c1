package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/half-rabbit/geode/internal/model"
)

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	// Flag variables survive between Execute calls.
	packProjectFlag, packOutFlag = "", ""
	unpackFileFlag, unpackIntoFlag, unpackOutFlag = "", "", "geometry.json"
	viewFileFlag = ""

	var out bytes.Buffer

	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()

	return out.String(), err
}

func writeGeometryFile(t *testing.T, dir string) string {
	t.Helper()

	geo := m.NewGeometry()
	geo.Volumes = append(geo.Volumes, &m.Instance{
		Name:         "Bench_000",
		Type:         m.ShapeBox,
		Material:     "G4_AIR",
		MotherVolume: m.WorldName,
		Dimensions:   m.Dimensions{Size: m.Vector3{X: 10, Y: 10, Z: 10}},
	})
	geo.Materials["G4_AIR"] = m.Material{Density: 0.0012, DensityUnit: "g/cm3"}

	data, err := json.Marshal(geo)
	require.NoError(t, err)

	path := filepath.Join(dir, "bench.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	return path
}

func TestPackListUnpack(t *testing.T) {
	dir := t.TempDir()
	store := filepath.Join(dir, "store")
	input := writeGeometryFile(t, dir)

	_, err := executeCommand(t, "--store", store, "pack", input, "--project", "bench")
	require.NoError(t, err)

	out, err := executeCommand(t, "--store", store, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "bench")
	assert.Contains(t, out, "Total Projects 1")

	restored := filepath.Join(dir, "restored.json")
	_, err = executeCommand(t, "--store", store, "unpack", "bench", "--out", restored)
	require.NoError(t, err)

	data, err := os.ReadFile(restored)
	require.NoError(t, err)

	var geo m.Geometry
	require.NoError(t, json.Unmarshal(data, &geo))
	require.Len(t, geo.Volumes, 1)
	assert.Equal(t, "Bench_000", geo.Volumes[0].Name)
	assert.Contains(t, geo.Materials, "G4_AIR")
}

func TestPackToDocumentFile(t *testing.T) {
	dir := t.TempDir()
	input := writeGeometryFile(t, dir)
	docPath := filepath.Join(dir, "bench-doc.json")

	_, err := executeCommand(t, "--store", filepath.Join(dir, "store"), "pack", input, "--out", docPath)
	require.NoError(t, err)

	data, err := os.ReadFile(docPath)
	require.NoError(t, err)

	var doc m.Document
	require.NoError(t, json.Unmarshal(data, &doc))
	require.NotNil(t, doc.World)
	require.Len(t, doc.Volumes, 1)
}

func TestUnpackFromDocumentFile(t *testing.T) {
	dir := t.TempDir()
	input := writeGeometryFile(t, dir)
	docPath := filepath.Join(dir, "bench-doc.json")
	restored := filepath.Join(dir, "restored.json")

	_, err := executeCommand(t, "--store", filepath.Join(dir, "store"), "pack", input, "--out", docPath)
	require.NoError(t, err)

	_, err = executeCommand(t, "--store", filepath.Join(dir, "store"),
		"unpack", "--file", docPath, "--out", restored)
	require.NoError(t, err)

	_, err = os.Stat(restored)
	assert.NoError(t, err)
}

func TestViewPrintsHierarchy(t *testing.T) {
	dir := t.TempDir()
	store := filepath.Join(dir, "store")
	input := writeGeometryFile(t, dir)

	_, err := executeCommand(t, "--store", store, "pack", input, "--project", "bench")
	require.NoError(t, err)

	out, err := executeCommand(t, "--store", store, "view", "bench")
	require.NoError(t, err)
	assert.Contains(t, out, m.WorldName)
	assert.Contains(t, out, "Bench")
}

func TestUnpackWithoutSource(t *testing.T) {
	dir := t.TempDir()

	_, err := executeCommand(t, "--store", filepath.Join(dir, "store"),
		"unpack", "--out", filepath.Join(dir, "geo.json"))
	assert.Error(t, err)
}

func TestProjectNameFromPath(t *testing.T) {
	assert.Equal(t, "bench", projectNameFromPath("/data/geo/bench.json"))
	assert.Equal(t, "bench", projectNameFromPath("bench.json"))
	assert.Equal(t, "bench", projectNameFromPath("bench"))
}
