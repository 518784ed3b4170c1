package shapes

import (
	m "github.com/half-rabbit/geode/internal/model"
)

// defaultZSections is the fallback profile for polycone and polyhedra:
// three z-planes with solid radii.
func defaultZSections() []m.ZSection {
	return []m.ZSection{
		{Z: -5, RMin: 0, RMax: 3},
		{Z: 0, RMin: 0, RMax: 5},
		{Z: 5, RMin: 0, RMax: 2},
	}
}

// polyconeExternal serves both polycone and polyhedra: the z-section list is
// split into three parallel, index-aligned arrays.
func polyconeExternal(d m.Dimensions) map[string]any {
	sections := d.ZSections
	if len(sections) == 0 {
		sections = defaultZSections()
	}

	z := make([]float64, 0, len(sections))
	rmin := make([]float64, 0, len(sections))
	rmax := make([]float64, 0, len(sections))

	for _, s := range sections {
		z = append(z, s.Z)
		rmin = append(rmin, s.RMin)
		rmax = append(rmax, s.RMax)
	}

	return map[string]any{
		"z":    z,
		"rmin": rmin,
		"rmax": rmax,
	}
}

func polyconeInternal(ext map[string]any) m.Dimensions {
	z := nums(ext, "z")
	if len(z) == 0 {
		return m.Dimensions{ZSections: defaultZSections()}
	}

	rmin := nums(ext, "rmin")
	rmax := nums(ext, "rmax")

	// The z array drives the section count; short rmin/rmax arrays pad with
	// zeroes so the sections stay index-aligned.
	sections := make([]m.ZSection, 0, len(z))
	for i, zv := range z {
		sections = append(sections, m.ZSection{
			Z:    zv,
			RMin: at(rmin, i),
			RMax: at(rmax, i),
		})
	}

	return m.Dimensions{ZSections: sections}
}
