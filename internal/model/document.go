package model

// Placement binds a document volume into the scene: a world-frame position,
// rotation and parent reference. Template placements additionally carry the
// generated g4name of that physical instance.
type Placement struct {
	G4Name   string  `json:"g4name,omitempty"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Z        float64 `json:"z"`
	Rotation Vector3 `json:"rotation"`
	Parent   string  `json:"parent,omitempty"`
}

// Volume is one entry of a document's volumes list. A standalone volume
// carries dimensions and placements; a template volume (assembly/union)
// carries a component list and one placement per physical instance. A
// component is itself a reduced Volume with exactly one relative placement.
type Volume struct {
	Name     string    `json:"name"`
	G4Name   string    `json:"g4name"`
	Type     ShapeType `json:"type"`
	Material string    `json:"material,omitempty"`

	Dimensions map[string]any `json:"dimensions,omitempty"`
	Components []Volume       `json:"components,omitempty"`
	Placements []Placement    `json:"placements,omitempty"`

	Visible            bool   `json:"visible,omitempty"`
	HitsCollectionName string `json:"hitsCollectionName,omitempty"`

	ComponentID        string           `json:"_componentId,omitempty"`
	BooleanOperation   BooleanOperation `json:"boolean_operation,omitempty"`
	IsBooleanComponent bool             `json:"_is_boolean_component,omitempty"`
	BooleanParent      string           `json:"_boolean_parent,omitempty"`
}

// IsTemplate reports whether the volume is a compound template entry.
func (v *Volume) IsTemplate() bool {
	return v.Type.IsCompound()
}

// Document is the external compound-format representation: a world volume,
// standalone volumes and deduplicated templates, plus a materials map.
type Document struct {
	World     *Volume             `json:"world,omitempty"`
	Volumes   []Volume            `json:"volumes"`
	Materials map[string]Material `json:"materials,omitempty"`
}
