package shapes

import (
	m "github.com/half-rabbit/geode/internal/model"
)

// codec maps one shape kind between internal fields and external document
// fields. Both directions are exact inverses of each other.
type codec struct {
	external func(d m.Dimensions) map[string]any
	internal func(ext map[string]any) m.Dimensions
}

var codecs = map[m.ShapeType]codec{
	m.ShapeBox:       {external: boxExternal, internal: boxInternal},
	m.ShapeCylinder:  {external: cylinderExternal, internal: cylinderInternal},
	m.ShapeSphere:    {external: sphereExternal, internal: sphereInternal},
	m.ShapeEllipsoid: {external: ellipsoidExternal, internal: ellipsoidInternal},
	m.ShapeTrapezoid: {external: trapezoidExternal, internal: trapezoidInternal},
	m.ShapeTorus:     {external: torusExternal, internal: torusInternal},
	m.ShapePolycone:  {external: polyconeExternal, internal: polyconeInternal},
	m.ShapePolyhedra: {external: polyconeExternal, internal: polyconeInternal},
}

// ToExternal converts internal dimensions to the external document fields for
// the given shape kind. Unknown kinds pass their raw map through unchanged.
func ToExternal(t m.ShapeType, d m.Dimensions) map[string]any {
	c, ok := codecs[t]
	if !ok {
		return rawCopy(d.Raw)
	}

	return c.external(d)
}

// ToInternal converts external document fields back to internal dimensions.
// Missing fields fall back to the shape's defaults; unknown kinds keep the
// map as raw passthrough.
func ToInternal(t m.ShapeType, ext map[string]any) m.Dimensions {
	c, ok := codecs[t]
	if !ok {
		return m.Dimensions{Raw: rawCopy(ext)}
	}

	if ext == nil {
		ext = map[string]any{}
	}

	return c.internal(ext)
}

func rawCopy(src map[string]any) map[string]any {
	out := make(map[string]any, len(src))
	for k, v := range src {
		out[k] = v
	}

	return out
}
