package shapes

import (
	m "github.com/half-rabbit/geode/internal/model"
)

const (
	defaultTrapezoidDX1 = 2
	defaultTrapezoidDX2 = 5
	defaultTrapezoidDY1 = 1
	defaultTrapezoidDY2 = 5
	defaultTrapezoidDZ  = 9
)

func trapezoidExternal(d m.Dimensions) map[string]any {
	return map[string]any{
		"dx1": orDefault(d.DX1, defaultTrapezoidDX1),
		"dx2": orDefault(d.DX2, defaultTrapezoidDX2),
		"dy1": orDefault(d.DY1, defaultTrapezoidDY1),
		"dy2": orDefault(d.DY2, defaultTrapezoidDY2),
		"dz":  orDefault(d.DZ, defaultTrapezoidDZ),
	}
}

func trapezoidInternal(ext map[string]any) m.Dimensions {
	return m.Dimensions{
		DX1: num(ext, "dx1", defaultTrapezoidDX1),
		DX2: num(ext, "dx2", defaultTrapezoidDX2),
		DY1: num(ext, "dy1", defaultTrapezoidDY1),
		DY2: num(ext, "dy2", defaultTrapezoidDY2),
		DZ:  num(ext, "dz", defaultTrapezoidDZ),
	}
}
