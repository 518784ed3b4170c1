package domain

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/half-rabbit/geode/internal/model"
)

func testDecompressor(sessionID string) *decompressor {
	return &decompressor{newSessionID: func() string { return sessionID }}
}

func assemblyDocument() *m.Document {
	return &m.Document{
		World: &m.Volume{
			Name:       "world",
			G4Name:     m.WorldName,
			Type:       m.ShapeBox,
			Dimensions: map[string]any{"x": 1000.0, "y": 1000.0, "z": 1000.0},
			Placements: []m.Placement{{}},
		},
		Volumes: []m.Volume{
			{
				Name:   "Arm",
				G4Name: "Arm",
				Type:   m.ShapeAssembly,
				Components: []m.Volume{
					{
						Name:        "ArmBody_000",
						G4Name:      "ArmBody_000",
						Type:        m.ShapeBox,
						Material:    "G4_WATER",
						Dimensions:  map[string]any{"x": 10.0, "y": 20.0, "z": 30.0},
						ComponentID: "body",
						Placements: []m.Placement{
							{G4Name: "ArmBody_000", X: 5},
						},
					},
				},
				Placements: []m.Placement{
					{G4Name: "Arm_000", X: 100, Rotation: m.Vector3{Z: 1.57}},
					{G4Name: "Arm_001", X: -100},
				},
			},
		},
		Materials: map[string]m.Material{
			"G4_WATER": {Density: 1, DensityUnit: "g/cm3"},
		},
	}
}

func TestDecompress_AssemblyEndToEnd(t *testing.T) {
	doc := assemblyDocument()

	geo := NewDecompressor().Decompress(doc, nil)

	// 2 placements x (1 root + 1 component) = 4 flat volumes beside the world.
	require.Len(t, geo.Volumes, 4)
	assert.Equal(t, m.Vector3{X: 1000, Y: 1000, Z: 1000}, geo.WorldSize)

	names := map[string]bool{}
	for _, inst := range geo.Volumes {
		assert.False(t, names[inst.Name], "instance names must be pairwise distinct: %s", inst.Name)
		names[inst.Name] = true
	}

	roots := []*m.Instance{geo.Volumes[0], geo.Volumes[2]}
	comps := []*m.Instance{geo.Volumes[1], geo.Volumes[3]}

	assert.Equal(t, "Arm_000", roots[0].Name)
	assert.Equal(t, "Arm_001", roots[1].Name)

	for i, root := range roots {
		assert.Equal(t, m.ShapeAssembly, root.Type)
		assert.Equal(t, m.WorldName, root.MotherVolume)
		assert.Equal(t, "Arm", root.CompoundID)
		assert.Equal(t, strconv.Itoa(i), root.InstanceID,
			"full-document instance ids are bare placement indexes")

		comp := comps[i]
		assert.Equal(t, m.ShapeBox, comp.Type)
		assert.Equal(t, root.Name, comp.MotherVolume, "component attaches to its own root")
		assert.Equal(t, root.InstanceID, comp.InstanceID)
		assert.Equal(t, "body", comp.ComponentID)
		assert.Equal(t, m.Vector3{X: 10, Y: 20, Z: 30}, comp.Dimensions.Size)
	}

	// Sibling component names derive by suffix increment.
	assert.Equal(t, "ArmBody_000", comps[0].Name)
	assert.Equal(t, "ArmBody_001", comps[1].Name)

	require.Contains(t, geo.Materials, "G4_WATER")
	assert.Equal(t, 1.0, geo.Materials["G4_WATER"].Density)
}

func TestDecompress_DisplayNamesUnique(t *testing.T) {
	geo := NewDecompressor().Decompress(assemblyDocument(), nil)

	seen := map[string]bool{}
	for _, inst := range geo.Volumes {
		assert.False(t, seen[inst.DisplayName], "display name %s assigned twice", inst.DisplayName)
		seen[inst.DisplayName] = true
	}
}

// pasteDocument carries session-style names: the second segment is a prior
// session token, the trailing segment the instance counter. ConvertName
// rewrites the former, NextName increments the latter.
func pasteDocument() *m.Document {
	return &m.Document{
		Volumes: []m.Volume{
			{
				Name:   "Arm",
				G4Name: "Arm",
				Type:   m.ShapeAssembly,
				Components: []m.Volume{
					{
						Name:        "ArmBody_00_000",
						G4Name:      "ArmBody_00_000",
						Type:        m.ShapeBox,
						Dimensions:  map[string]any{"x": 10.0, "y": 20.0, "z": 30.0},
						ComponentID: "body",
						Placements: []m.Placement{
							{G4Name: "ArmBody_00_000", X: 5},
						},
					},
				},
				Placements: []m.Placement{
					{G4Name: "Arm_00_000", X: 100},
					{G4Name: "Arm_00_001", X: -100},
				},
			},
		},
	}
}

func TestDecompress_PasteModeRenames(t *testing.T) {
	existing := m.NewGeometry()
	existing.Volumes = append(existing.Volumes, &m.Instance{
		Name:         "Arm_000",
		DisplayName:  "Arm_0",
		Type:         m.ShapeAssembly,
		MotherVolume: m.WorldName,
		CompoundID:   "Arm",
	})

	d := testDecompressor("f3a9")
	geo := d.Decompress(pasteDocument(), existing)

	require.Len(t, geo.Volumes, 5, "pasted instances merge into the existing geometry")

	pasted := geo.Volumes[1:]
	assert.Equal(t, "Arm_f3a9_000", pasted[0].Name, "session token replaces the second name segment")
	assert.Equal(t, "ArmBody_f3a9_000", pasted[1].Name)
	assert.Equal(t, "Arm_f3a9_001", pasted[2].Name)
	assert.Equal(t, "ArmBody_f3a9_001", pasted[3].Name)
	assert.Equal(t, "f3a9_0", pasted[0].InstanceID)
	assert.Equal(t, "f3a9_1", pasted[2].InstanceID)

	// The existing Arm_0 display name must not be reused.
	seen := map[string]bool{}
	for _, inst := range geo.Volumes {
		assert.False(t, seen[inst.DisplayName], "display name %s assigned twice", inst.DisplayName)
		seen[inst.DisplayName] = true
	}
}

func TestDecompress_PasteTwiceStaysDistinct(t *testing.T) {
	doc := pasteDocument()

	geo := testDecompressor("aaaa").Decompress(doc, m.NewGeometry())
	geo = testDecompressor("bbbb").Decompress(doc, geo)

	require.Len(t, geo.Volumes, 8)

	seen := map[string]bool{}
	for _, inst := range geo.Volumes {
		assert.False(t, seen[inst.Name], "name %s collides across pastes", inst.Name)
		seen[inst.Name] = true
	}
}

func TestDecompress_PasteMultiPlacementStandalone(t *testing.T) {
	doc := &m.Document{
		Volumes: []m.Volume{
			{
				Name:       "Target_001",
				G4Name:     "Target_001",
				Type:       m.ShapeCylinder,
				Material:   "G4_Cu",
				Dimensions: map[string]any{"radius": 25.0, "height": 50.0},
				Placements: []m.Placement{{X: 1}, {X: 2}, {X: 3}},
			},
		},
	}

	geo := testDecompressor("f3a9").Decompress(doc, m.NewGeometry())

	require.Len(t, geo.Volumes, 3)

	// The session token takes the numeric segment of the two-segment name;
	// the placement counter must still keep siblings apart.
	assert.Equal(t, "Target_f3a9", geo.Volumes[0].Name)
	assert.Equal(t, "Target_f3a9_1", geo.Volumes[1].Name)
	assert.Equal(t, "Target_f3a9_2", geo.Volumes[2].Name)

	seen := map[string]bool{}
	for _, inst := range geo.Volumes {
		assert.False(t, seen[inst.Name], "instance name %s minted twice", inst.Name)
		seen[inst.Name] = true
	}
}

func TestDecompress_StandaloneVolume(t *testing.T) {
	doc := &m.Document{
		Volumes: []m.Volume{
			{
				Name:       "Target_001",
				G4Name:     "Target_001",
				Type:       m.ShapeCylinder,
				Material:   "G4_Cu",
				Dimensions: map[string]any{"radius": 25.0, "height": 50.0},
				Placements: []m.Placement{
					{Z: -200, Parent: "Bench_002"},
				},
				HitsCollectionName: "targetHits",
			},
		},
		World: &m.Volume{Type: m.ShapeBox, Dimensions: map[string]any{}},
	}

	geo := NewDecompressor().Decompress(doc, nil)

	assert.Equal(t, m.Vector3{X: 1000, Y: 1000, Z: 1000}, geo.WorldSize, "missing axes default")
	require.Len(t, geo.Volumes, 1)

	inst := geo.Volumes[0]
	assert.Equal(t, "Target_001", inst.Name, "full-document mode keeps names")
	assert.Equal(t, "Bench_002", inst.MotherVolume, "mother volume maps directly")
	assert.Equal(t, 25.0, inst.Dimensions.Radius)
	assert.Equal(t, 50.0, inst.Dimensions.Height)
	assert.Equal(t, "targetHits", inst.HitsCollectionName)
}

func TestDecompress_MalformedVolumeSkipped(t *testing.T) {
	doc := &m.Document{
		World: &m.Volume{Type: m.ShapeBox},
		Volumes: []m.Volume{
			{Name: "Broken_001", Type: m.ShapeBox}, // no placements, not a template
			{
				Name:       "Kept_001",
				G4Name:     "Kept_001",
				Type:       m.ShapeBox,
				Placements: []m.Placement{{}},
			},
		},
	}

	geo := NewDecompressor().Decompress(doc, nil)

	require.Len(t, geo.Volumes, 1)
	assert.Equal(t, "Kept_001", geo.Volumes[0].Name)
}

func TestDecompress_NilDocument(t *testing.T) {
	existing := m.NewGeometry()
	existing.Volumes = append(existing.Volumes, testBox("Keep_000", m.WorldName))

	geo := NewDecompressor().Decompress(nil, existing)

	require.Len(t, geo.Volumes, 1, "nil input leaves the geometry unchanged")

	geo = NewDecompressor().Decompress(nil, nil)
	require.NotNil(t, geo)
	assert.Empty(t, geo.Volumes)
}

func TestDecompress_DuplicateComponentIDSuppressed(t *testing.T) {
	doc := assemblyDocument()
	tpl := &doc.Volumes[0]
	dup := tpl.Components[0]
	dup.Name = "Arm_000_BodyCopy"
	tpl.Components = append(tpl.Components, dup) // same componentId "body"

	geo := NewDecompressor().Decompress(doc, nil)

	require.Len(t, geo.Volumes, 4, "duplicate component ids expand only once per placement")
}

func TestCompressDecompress_RoundTrip(t *testing.T) {
	geo := m.NewGeometry()

	for _, suffix := range []string{"000", "001"} {
		arm := testAssembly("Arm_"+suffix, "arm")
		body := testBox("Arm_"+suffix+"_Body", arm.Name)
		geo.Volumes = append(geo.Volumes, arm, body)
	}

	geo.Volumes = append(geo.Volumes, testBox("Bench_000", m.WorldName))
	geo.Materials["scint"] = m.Material{Density: 1.032}

	doc := NewCompressor().Compress(geo)
	restored := NewDecompressor().Decompress(doc, nil)

	require.Len(t, restored.Volumes, len(geo.Volumes))
	require.Contains(t, restored.Materials, "scint")

	// The converters are not perfect inverses: names may be regenerated.
	// Structure must survive: same shape population and parent topology.
	byType := map[m.ShapeType]int{}
	for _, inst := range restored.Volumes {
		byType[inst.Type]++
	}

	assert.Equal(t, 2, byType[m.ShapeAssembly])
	assert.Equal(t, 3, byType[m.ShapeBox])

	for _, inst := range restored.Volumes {
		if inst.MotherVolume == m.WorldName {
			continue
		}

		assert.NotNil(t, restored.Find(inst.MotherVolume),
			"mother %s of %s must exist", inst.MotherVolume, inst.Name)
	}
}
