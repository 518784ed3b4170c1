package shapes

import (
	m "github.com/half-rabbit/geode/internal/model"
)

const (
	defaultCylinderRadius = 5
	defaultCylinderHeight = 10
)

func cylinderExternal(d m.Dimensions) map[string]any {
	ext := map[string]any{
		"radius": orDefault(d.Radius, defaultCylinderRadius),
		"height": orDefault(d.Height, defaultCylinderHeight),
	}

	// A solid cylinder has no inner radius; the field is omitted entirely.
	if d.InnerRadius != 0 {
		ext["inner_radius"] = d.InnerRadius
	}

	return ext
}

func cylinderInternal(ext map[string]any) m.Dimensions {
	return m.Dimensions{
		Radius:      num(ext, "radius", defaultCylinderRadius),
		Height:      num(ext, "height", defaultCylinderHeight),
		InnerRadius: num(ext, "inner_radius", 0),
	}
}
