package shapes

import (
	m "github.com/half-rabbit/geode/internal/model"
)

const defaultSphereRadius = 5

func sphereExternal(d m.Dimensions) map[string]any {
	return map[string]any{
		"radius": orDefault(d.Radius, defaultSphereRadius),
	}
}

func sphereInternal(ext map[string]any) m.Dimensions {
	return m.Dimensions{
		Radius: num(ext, "radius", defaultSphereRadius),
	}
}
