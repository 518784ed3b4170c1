// Package model defines the data structures for detector geometry editing.
package model

// WorldName is the sentinel mother volume for top-level instances.
const WorldName = "World"

// ShapeType identifies the solid kind of a placed volume.
type ShapeType string

const (
	// ShapeBox represents a rectangular box solid.
	ShapeBox ShapeType = "box"
	// ShapeCylinder represents a cylindrical tube, optionally hollow.
	ShapeCylinder ShapeType = "cylinder"
	// ShapeSphere represents a full sphere.
	ShapeSphere ShapeType = "sphere"
	// ShapeEllipsoid represents an ellipsoid with three half-axes.
	ShapeEllipsoid ShapeType = "ellipsoid"
	// ShapeTrapezoid represents a general trapezoid solid.
	ShapeTrapezoid ShapeType = "trapezoid"
	// ShapeTorus represents a torus.
	ShapeTorus ShapeType = "torus"
	// ShapePolycone represents a solid of revolution over z-sections.
	ShapePolycone ShapeType = "polycone"
	// ShapePolyhedra represents a polygonal solid over z-sections.
	ShapePolyhedra ShapeType = "polyhedra"
	// ShapeAssembly is a pure container grouping repeated structure.
	ShapeAssembly ShapeType = "assembly"
	// ShapeUnion is a boolean composition of component solids.
	ShapeUnion ShapeType = "union"
)

// IsCompound reports whether the shape is a template type (assembly or union)
// rather than a plain solid.
func (s ShapeType) IsCompound() bool {
	return s == ShapeAssembly || s == ShapeUnion
}

// BooleanOperation describes how a boolean component combines with its parent.
type BooleanOperation string

const (
	// BooleanUnion adds the component solid to the composition.
	BooleanUnion BooleanOperation = "union"
	// BooleanSubtract carves the component solid out of the composition.
	BooleanSubtract BooleanOperation = "subtract"
)

// Vector3 is a 3-component vector. Lengths are millimetres, angles radians.
type Vector3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// ZSection is one z-plane of a polycone or polyhedra.
type ZSection struct {
	Z    float64 `json:"z"`
	RMin float64 `json:"rMin"`
	RMax float64 `json:"rMax"`
}

// Dimensions holds shape-specific size fields. Only the fields belonging to
// the owning instance's ShapeType are meaningful; the rest stay zero.
type Dimensions struct {
	Size        Vector3    `json:"size,omitzero"`
	Radius      float64    `json:"radius,omitempty"`
	InnerRadius float64    `json:"innerRadius,omitempty"`
	Height      float64    `json:"height,omitempty"`
	XRadius     float64    `json:"xRadius,omitempty"`
	YRadius     float64    `json:"yRadius,omitempty"`
	ZRadius     float64    `json:"zRadius,omitempty"`
	DX1         float64    `json:"dx1,omitempty"`
	DX2         float64    `json:"dx2,omitempty"`
	DY1         float64    `json:"dy1,omitempty"`
	DY2         float64    `json:"dy2,omitempty"`
	DZ          float64    `json:"dz,omitempty"`
	MajorRadius float64    `json:"majorRadius,omitempty"`
	MinorRadius float64    `json:"minorRadius,omitempty"`
	ZSections   []ZSection `json:"zSections,omitempty"`

	// Raw carries dimensions of shape kinds the codec does not know about.
	Raw map[string]any `json:"raw,omitempty"`
}

// Instance is one placed solid in the flat editing geometry.
type Instance struct {
	Name        string     `json:"name"`
	DisplayName string     `json:"displayName"`
	Type        ShapeType  `json:"type"`
	Material    string     `json:"material,omitempty"`
	Position    Vector3    `json:"position"`
	Rotation    Vector3    `json:"rotation"`
	Dimensions  Dimensions `json:"dimensions"`

	// MotherVolume names the parent instance, or WorldName for top-level.
	MotherVolume string `json:"motherVolume"`

	// CompoundID groups instances belonging to the same template.
	CompoundID string `json:"compoundId,omitempty"`
	// ComponentID identifies the instance's role inside its compound.
	ComponentID string `json:"componentId,omitempty"`
	// InstanceID identifies which physical compound instance this belongs to.
	InstanceID string `json:"instanceId,omitempty"`

	Visible            bool   `json:"visible,omitempty"`
	IsActive           bool   `json:"isActive,omitempty"`
	HitsCollectionName string `json:"hitsCollectionName,omitempty"`

	BooleanOperation   BooleanOperation `json:"booleanOperation,omitempty"`
	IsBooleanComponent bool             `json:"isBooleanComponent,omitempty"`
	BooleanParent      string           `json:"booleanParent,omitempty"`
}

// Material describes one entry of the geometry's materials table.
type Material struct {
	Density         float64            `json:"density,omitempty"`
	DensityUnit     string             `json:"density_unit,omitempty"`
	Composition     map[string]float64 `json:"composition,omitempty"`
	State           string             `json:"state,omitempty"`
	Temperature     float64            `json:"temperature,omitempty"`
	TemperatureUnit string             `json:"temperature_unit,omitempty"`
	Type            string             `json:"type,omitempty"`
	Color           string             `json:"color,omitempty"`
}

// Geometry is the flat, in-memory editing representation: a list of placed
// instances inside a world box, plus a materials table keyed by name.
type Geometry struct {
	WorldSize     Vector3             `json:"worldSize"`
	WorldMaterial string              `json:"worldMaterial,omitempty"`
	Volumes       []*Instance         `json:"volumes"`
	Materials     map[string]Material `json:"materials,omitempty"`
}

// NewGeometry returns an empty geometry with the default world size.
func NewGeometry() *Geometry {
	return &Geometry{
		WorldSize: Vector3{X: DefaultWorldSize, Y: DefaultWorldSize, Z: DefaultWorldSize},
		Materials: map[string]Material{},
	}
}

// DefaultWorldSize is the fallback extent of the world box on each axis, mm.
const DefaultWorldSize = 1000

// Find returns the instance with the given name, or nil.
func (g *Geometry) Find(name string) *Instance {
	for _, inst := range g.Volumes {
		if inst.Name == name {
			return inst
		}
	}

	return nil
}

// DisplayNames returns the display names of all instances, in order.
func (g *Geometry) DisplayNames() []string {
	names := make([]string, 0, len(g.Volumes))
	for _, inst := range g.Volumes {
		names = append(names, inst.DisplayName)
	}

	return names
}
