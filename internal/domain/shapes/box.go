package shapes

import (
	m "github.com/half-rabbit/geode/internal/model"
)

// Default box edge lengths, mm.
const (
	defaultBoxX = 10
	defaultBoxY = 10
	defaultBoxZ = 10
)

func boxExternal(d m.Dimensions) map[string]any {
	return map[string]any{
		"x": orDefault(d.Size.X, defaultBoxX),
		"y": orDefault(d.Size.Y, defaultBoxY),
		"z": orDefault(d.Size.Z, defaultBoxZ),
	}
}

func boxInternal(ext map[string]any) m.Dimensions {
	return m.Dimensions{
		Size: m.Vector3{
			X: num(ext, "x", defaultBoxX),
			Y: num(ext, "y", defaultBoxY),
			Z: num(ext, "z", defaultBoxZ),
		},
	}
}
