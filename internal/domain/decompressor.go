package domain

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/half-rabbit/geode/internal/domain/shapes"
	m "github.com/half-rabbit/geode/internal/model"
)

// Decompressor expands a compound-format document back into the flat editing
// geometry. A document with a world volume replaces the geometry wholesale;
// a document without one is pasted into the supplied geometry, with a fresh
// session token spliced into every generated name so repeated pastes of the
// same template stay distinct. Expansion is best-effort and never fails.
type Decompressor interface {
	Decompress(doc *m.Document, geo *m.Geometry) *m.Geometry
}

type decompressor struct {
	newSessionID func() string
}

// NewDecompressor creates a new Decompressor instance.
func NewDecompressor() Decompressor {
	return &decompressor{newSessionID: sessionID}
}

// sessionID returns a short token unique to one paste-mode decompression.
// The first uuid group is plenty: it only has to differ between pastes into
// the same geometry, and it must not contain underscores.
func sessionID() string {
	return strings.SplitN(uuid.NewString(), "-", 2)[0]
}

func (d *decompressor) Decompress(doc *m.Document, geo *m.Geometry) *m.Geometry {
	if geo == nil {
		geo = m.NewGeometry()
	}

	if doc == nil {
		Logger().Warn("decompress called with no document")

		return geo
	}

	middleID := ""

	if doc.World != nil {
		// Full-document mode: the incoming world replaces the geometry.
		geo = m.NewGeometry()
		geo.WorldSize = worldSizeFrom(doc.World)
		geo.WorldMaterial = doc.World.Material
	} else {
		middleID = d.newSessionID()
	}

	reg := NewNameRegistry(geo.DisplayNames()...)

	for i := range doc.Volumes {
		vol := &doc.Volumes[i]

		switch {
		case vol.IsTemplate():
			d.expandTemplate(geo, vol, middleID, reg)
		case len(vol.Placements) > 0:
			d.expandStandalone(geo, vol, middleID, reg)
		default:
			Logger().Warn("volume has no placements and is not a template, skipping",
				zap.String("volume", vol.Name))
		}
	}

	if len(doc.Materials) > 0 {
		if geo.Materials == nil {
			geo.Materials = make(map[string]m.Material, len(doc.Materials))
		}

		for name, mat := range doc.Materials {
			geo.Materials[name] = mat
		}
	}

	return geo
}

// expandTemplate synthesizes one root instance per placement plus that
// placement's copy of every component.
func (d *decompressor) expandTemplate(geo *m.Geometry, vol *m.Volume, middleID string, reg *NameRegistry) {
	for i, pl := range vol.Placements {
		rootName := ConvertName(pl.G4Name, middleID)

		// Full-document mode has no session token; the bare index is id enough.
		instanceID := strconv.Itoa(i)
		if middleID != "" {
			instanceID = fmt.Sprintf("%s_%d", middleID, i)
		}

		root := &m.Instance{
			Name:         rootName,
			DisplayName:  reg.MakeG4Name(rootName),
			Type:         vol.Type,
			Material:     vol.Material,
			Position:     m.Vector3{X: pl.X, Y: pl.Y, Z: pl.Z},
			Rotation:     pl.Rotation,
			MotherVolume: orWorld(pl.Parent),
			CompoundID:   vol.Name,
			InstanceID:   instanceID,
		}

		geo.Volumes = append(geo.Volumes, root)

		seen := map[string]bool{}

		for ci := range vol.Components {
			comp := &vol.Components[ci]

			key := comp.ComponentID
			if key == "" {
				key = comp.Name
			}

			// The component list is built from a single representative;
			// repeated component ids are collapsed to the first occurrence.
			if seen[key] {
				continue
			}

			seen[key] = true

			if len(comp.Placements) == 0 {
				Logger().Warn("template component has no placement, skipping",
					zap.String("template", vol.Name),
					zap.String("component", comp.Name))

				continue
			}

			cp := comp.Placements[0]

			// Sibling names for the i-th instance derive from the template's
			// own component names by suffix increment.
			name := ConvertName(NextName(cp.G4Name, i), middleID)

			mother := root.Name
			if cp.Parent != "" {
				mother = ConvertName(NextName(cp.Parent, i), middleID)
			}

			geo.Volumes = append(geo.Volumes, &m.Instance{
				Name:               name,
				DisplayName:        reg.MakeG4Name(name),
				Type:               comp.Type,
				Material:           comp.Material,
				Position:           m.Vector3{X: cp.X, Y: cp.Y, Z: cp.Z},
				Rotation:           cp.Rotation,
				Dimensions:         shapes.ToInternal(comp.Type, comp.Dimensions),
				MotherVolume:       mother,
				CompoundID:         vol.Name,
				ComponentID:        key,
				InstanceID:         root.InstanceID,
				Visible:            comp.Visible,
				HitsCollectionName: comp.HitsCollectionName,
				BooleanOperation:   comp.BooleanOperation,
				IsBooleanComponent: comp.IsBooleanComponent,
				BooleanParent:      comp.BooleanParent,
			})
		}
	}
}

// expandStandalone pushes one flat instance per listed placement. Names pass
// through untouched in full-document mode; paste mode splices the session
// token into names and parent references alike.
func (d *decompressor) expandStandalone(geo *m.Geometry, vol *m.Volume, middleID string, reg *NameRegistry) {
	for i, pl := range vol.Placements {
		// The token splice runs first: for two-segment names it lands in the
		// numeric segment, and incrementing before it would be undone.
		name := ConvertName(vol.Name, middleID)
		if i > 0 {
			name = NextName(name, i)
		}

		display := vol.G4Name
		if display == "" {
			display = name
		}

		if middleID == "" {
			reg.Add(display)
		} else {
			display = reg.MakeG4Name(display)
		}

		mother := m.WorldName
		if pl.Parent != "" {
			mother = ConvertName(pl.Parent, middleID)
		}

		geo.Volumes = append(geo.Volumes, &m.Instance{
			Name:               name,
			DisplayName:        display,
			Type:               vol.Type,
			Material:           vol.Material,
			Position:           m.Vector3{X: pl.X, Y: pl.Y, Z: pl.Z},
			Rotation:           pl.Rotation,
			Dimensions:         shapes.ToInternal(vol.Type, vol.Dimensions),
			MotherVolume:       mother,
			ComponentID:        vol.ComponentID,
			Visible:            vol.Visible,
			HitsCollectionName: vol.HitsCollectionName,
			BooleanOperation:   vol.BooleanOperation,
			IsBooleanComponent: vol.IsBooleanComponent,
			BooleanParent:      vol.BooleanParent,
		})
	}
}

func orWorld(parent string) string {
	if parent == "" {
		return m.WorldName
	}

	return parent
}

// worldSizeFrom reads the world box extents, falling back to the default on
// any missing or zero axis.
func worldSizeFrom(world *m.Volume) m.Vector3 {
	return m.Vector3{
		X: worldAxis(world.Dimensions, "x"),
		Y: worldAxis(world.Dimensions, "y"),
		Z: worldAxis(world.Dimensions, "z"),
	}
}

func worldAxis(dims map[string]any, key string) float64 {
	v, ok := dims[key]
	if !ok {
		return m.DefaultWorldSize
	}

	switch n := v.(type) {
	case float64:
		if n != 0 {
			return n
		}
	case int:
		if n != 0 {
			return float64(n)
		}
	}

	return m.DefaultWorldSize
}
