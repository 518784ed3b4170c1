package shapes

import (
	m "github.com/half-rabbit/geode/internal/model"
)

const (
	defaultEllipsoidX = 5
	defaultEllipsoidY = 3
	defaultEllipsoidZ = 4
)

func ellipsoidExternal(d m.Dimensions) map[string]any {
	return map[string]any{
		"x_radius": orDefault(d.XRadius, defaultEllipsoidX),
		"y_radius": orDefault(d.YRadius, defaultEllipsoidY),
		"z_radius": orDefault(d.ZRadius, defaultEllipsoidZ),
	}
}

func ellipsoidInternal(ext map[string]any) m.Dimensions {
	return m.Dimensions{
		XRadius: num(ext, "x_radius", defaultEllipsoidX),
		YRadius: num(ext, "y_radius", defaultEllipsoidY),
		ZRadius: num(ext, "z_radius", defaultEllipsoidZ),
	}
}
