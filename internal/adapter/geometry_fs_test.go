package adapter

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/half-rabbit/geode/internal/model"
)

func TestLocalGeometryFS_GeometryRoundTrip(t *testing.T) {
	fs := NewLocalGeometryFS()
	path := filepath.Join(t.TempDir(), "geo.json")

	geo := m.NewGeometry()
	geo.Volumes = append(geo.Volumes, &m.Instance{
		Name:         "Target_000",
		Type:         m.ShapeCylinder,
		Material:     "G4_Cu",
		MotherVolume: m.WorldName,
		Dimensions:   m.Dimensions{Radius: 25, Height: 50},
	})

	require.NoError(t, fs.WriteGeometry(path, geo))

	loaded, err := fs.ReadGeometry(path)
	require.NoError(t, err)

	require.Len(t, loaded.Volumes, 1)
	assert.Equal(t, "Target_000", loaded.Volumes[0].Name)
	assert.Equal(t, 25.0, loaded.Volumes[0].Dimensions.Radius)
}

func TestLocalGeometryFS_DocumentRoundTrip(t *testing.T) {
	fs := NewLocalGeometryFS()
	path := filepath.Join(t.TempDir(), "doc.json")

	require.NoError(t, fs.WriteDocument(path, sampleDocument()))

	loaded, err := fs.ReadDocument(path)
	require.NoError(t, err)

	require.Len(t, loaded.Volumes, 1)
	assert.Equal(t, "Bench_000", loaded.Volumes[0].Name)
}

func TestLocalGeometryFS_ReadErrors(t *testing.T) {
	fs := NewLocalGeometryFS()
	missing := filepath.Join(t.TempDir(), "absent.json")

	_, err := fs.ReadGeometry(missing)
	assert.Error(t, err)

	_, err = fs.ReadDocument(missing)
	assert.Error(t, err)
}
