package shapes

import (
	m "github.com/half-rabbit/geode/internal/model"
)

const (
	defaultTorusMajor = 3
	defaultTorusMinor = 1
)

func torusExternal(d m.Dimensions) map[string]any {
	return map[string]any{
		"major_radius": orDefault(d.MajorRadius, defaultTorusMajor),
		"minor_radius": orDefault(d.MinorRadius, defaultTorusMinor),
	}
}

func torusInternal(ext map[string]any) m.Dimensions {
	return m.Dimensions{
		MajorRadius: num(ext, "major_radius", defaultTorusMajor),
		MinorRadius: num(ext, "minor_radius", defaultTorusMinor),
	}
}
