package domain

import (
	"sort"

	"go.uber.org/zap"

	"github.com/half-rabbit/geode/internal/domain/shapes"
	m "github.com/half-rabbit/geode/internal/model"
)

// Compressor folds a flat instance list into the deduplicated
// "template + placements" document form. Repeated structure (assemblies and
// boolean unions sharing a compound id) is emitted once as a template with
// one placement per physical instance; everything else becomes a standalone
// volume. Compression is best-effort and never fails: malformed instances
// are skipped with a diagnostic.
type Compressor interface {
	Compress(geo *m.Geometry) *m.Document
}

type compressor struct{}

// NewCompressor creates a new Compressor instance.
func NewCompressor() Compressor {
	return &compressor{}
}

func (c *compressor) Compress(geo *m.Geometry) *m.Document {
	if geo == nil {
		Logger().Warn("compress called with no geometry")

		geo = m.NewGeometry()
	}

	doc := &m.Document{
		World:   worldVolume(geo),
		Volumes: []m.Volume{},
	}

	if len(geo.Materials) > 0 {
		doc.Materials = make(map[string]m.Material, len(geo.Materials))
		for name, mat := range geo.Materials {
			doc.Materials[name] = mat
		}
	}

	s := newCompressState(geo)
	s.partition()

	assemblies := s.assemblyTemplates()
	compounds := s.compoundTemplates()

	// World first, then standalone volumes, then templates.
	doc.Volumes = append(doc.Volumes, s.standaloneVolumes()...)
	doc.Volumes = append(doc.Volumes, assemblies...)
	doc.Volumes = append(doc.Volumes, compounds...)

	return doc
}

// worldVolume emits the singleton world pseudo-instance, a box centred at the
// origin.
func worldVolume(geo *m.Geometry) *m.Volume {
	size := geo.WorldSize
	if size.X == 0 {
		size.X = m.DefaultWorldSize
	}

	if size.Y == 0 {
		size.Y = m.DefaultWorldSize
	}

	if size.Z == 0 {
		size.Z = m.DefaultWorldSize
	}

	return &m.Volume{
		Name:       "world",
		G4Name:     m.WorldName,
		Type:       m.ShapeBox,
		Material:   geo.WorldMaterial,
		Dimensions: map[string]any{"x": size.X, "y": size.Y, "z": size.Z},
		Placements: []m.Placement{{}},
	}
}

// compressState carries the partition of the flat instance list while the
// document is assembled.
type compressState struct {
	geo      *m.Geometry
	byName   map[string]*m.Instance
	children map[string][]*m.Instance

	assemblies    map[string]*m.Instance   // assembly instances by name
	assemblyTypes map[string][]*m.Instance // compound id -> assembly instances
	assemblyOrder []string                 // compound ids, first-encounter order

	groups     map[string][]*m.Instance // compound id -> non-assembly members
	groupOrder []string

	// captured marks instances already represented by a template, by name.
	captured map[string]bool
}

func newCompressState(geo *m.Geometry) *compressState {
	return &compressState{
		geo:           geo,
		byName:        make(map[string]*m.Instance, len(geo.Volumes)),
		children:      map[string][]*m.Instance{},
		assemblies:    map[string]*m.Instance{},
		assemblyTypes: map[string][]*m.Instance{},
		groups:        map[string][]*m.Instance{},
		captured:      map[string]bool{},
	}
}

// partition implements the four-way split: assemblies keyed by name and by
// compound id, non-assembly compound groups, and (implicitly) standalone
// instances, which are whatever ends up uncaptured.
func (s *compressState) partition() {
	for _, inst := range s.geo.Volumes {
		s.byName[inst.Name] = inst
		s.children[inst.MotherVolume] = append(s.children[inst.MotherVolume], inst)
	}

	for _, inst := range s.geo.Volumes {
		if inst.Type != m.ShapeAssembly {
			continue
		}

		if inst.CompoundID == "" {
			// An assembly without a grouping id cannot be merged into a
			// template; it is skipped entirely.
			Logger().Warn("assembly has no compound id, skipping",
				zap.String("volume", inst.Name))

			s.captured[inst.Name] = true

			continue
		}

		s.assemblies[inst.Name] = inst

		if _, ok := s.assemblyTypes[inst.CompoundID]; !ok {
			s.assemblyOrder = append(s.assemblyOrder, inst.CompoundID)
		}

		s.assemblyTypes[inst.CompoundID] = append(s.assemblyTypes[inst.CompoundID], inst)
	}

	for _, inst := range s.geo.Volumes {
		if inst.Type == m.ShapeAssembly || inst.CompoundID == "" {
			continue
		}

		// Instances attached to an assembly, or sharing its type-level id,
		// are consumed by the assembly's component walk instead.
		if _, ok := s.assemblies[inst.MotherVolume]; ok {
			continue
		}

		if _, ok := s.assemblyTypes[inst.CompoundID]; ok {
			continue
		}

		if _, ok := s.groups[inst.CompoundID]; !ok {
			s.groupOrder = append(s.groupOrder, inst.CompoundID)
		}

		s.groups[inst.CompoundID] = append(s.groups[inst.CompoundID], inst)
	}
}

// assemblyTemplates builds one template per distinct assembly compound id.
// The component tree comes from the first-encountered instance only; every
// instance of the type contributes a placement.
func (s *compressState) assemblyTemplates() []m.Volume {
	var out []m.Volume

	for _, cid := range s.assemblyOrder {
		group := s.assemblyTypes[cid]
		tpl := group[0]

		comps := s.walkComponents(tpl)

		// The remaining instances' subtrees are represented by the template's
		// placements; their members must not leak out as standalone volumes.
		for _, inst := range group[1:] {
			s.captureSubtree(inst)
		}

		for _, inst := range group {
			s.captured[inst.Name] = true
		}

		if len(comps) == 0 {
			Logger().Warn("assembly template has no components, skipping",
				zap.String("compound", cid),
				zap.String("volume", tpl.Name))

			continue
		}

		vol := m.Volume{
			Name:       BaseName(tpl.Name),
			G4Name:     BaseName(tpl.DisplayName),
			Type:       m.ShapeAssembly,
			Components: comps,
		}

		for _, inst := range group {
			vol.Placements = append(vol.Placements, instancePlacement(inst, inst.MotherVolume))
		}

		out = append(out, vol)
	}

	return out
}

// walkComponents collects the declared descendants of an assembly root into
// the template's component list, depth first in declaration order. A
// visited set guards against cyclic mother volume chains.
func (s *compressState) walkComponents(root *m.Instance) []m.Volume {
	var comps []m.Volume

	visited := map[string]bool{root.Name: true}

	var walk func(parent *m.Instance, direct bool)
	walk = func(parent *m.Instance, direct bool) {
		for _, child := range s.children[parent.Name] {
			if visited[child.Name] {
				Logger().Warn("cyclic mother volume chain, dropping from template",
					zap.String("volume", child.Name),
					zap.String("template", root.Name))

				continue
			}

			visited[child.Name] = true
			s.captured[child.Name] = true

			comps = append(comps, s.component(child, root, direct))
			walk(child, false)
		}
	}
	walk(root, true)

	return comps
}

// component reduces one instance to a template-relative component record.
// A direct child of the assembly root has its rotation zeroed: the
// assembly-level placement carries the orientation for the whole group.
// Positions are copied as-is.
func (s *compressState) component(inst, root *m.Instance, direct bool) m.Volume {
	rot := inst.Rotation
	if direct {
		rot = m.Vector3{}
	}

	p := m.Placement{
		G4Name:   inst.DisplayName,
		X:        inst.Position.X,
		Y:        inst.Position.Y,
		Z:        inst.Position.Z,
		Rotation: rot,
	}

	if inst.MotherVolume != root.Name {
		if parent, ok := s.byName[inst.MotherVolume]; ok {
			p.Parent = parent.DisplayName
		} else {
			p.Parent = inst.MotherVolume
		}
	}

	return m.Volume{
		Name:               inst.Name,
		G4Name:             inst.DisplayName,
		Type:               inst.Type,
		Material:           inst.Material,
		Dimensions:         shapes.ToExternal(inst.Type, inst.Dimensions),
		Placements:         []m.Placement{p},
		Visible:            inst.Visible,
		HitsCollectionName: inst.HitsCollectionName,
		ComponentID:        inst.ComponentID,
		BooleanOperation:   inst.BooleanOperation,
		IsBooleanComponent: inst.IsBooleanComponent,
		BooleanParent:      inst.BooleanParent,
	}
}

// captureSubtree marks an instance and all its declared descendants as
// represented by a template.
func (s *compressState) captureSubtree(root *m.Instance) {
	visited := map[string]bool{}

	var walk func(inst *m.Instance)
	walk = func(inst *m.Instance) {
		if visited[inst.Name] {
			return
		}

		visited[inst.Name] = true
		s.captured[inst.Name] = true

		for _, child := range s.children[inst.Name] {
			walk(child)
		}
	}
	walk(root)
}

// compoundTemplates builds templates for the non-assembly compound groups:
// boolean unions and repeated sub-object sets sharing a compound id.
func (s *compressState) compoundTemplates() []m.Volume {
	var out []m.Volume

	for _, cid := range s.groupOrder {
		group := s.groups[cid]

		inGroup := make(map[string]*m.Instance, len(group))
		for _, inst := range group {
			inGroup[inst.Name] = inst
		}

		// A root's parent is absent, the world, or outside the group.
		var roots []*m.Instance

		for _, inst := range group {
			if inst.MotherVolume == "" || inst.MotherVolume == m.WorldName {
				roots = append(roots, inst)

				continue
			}

			if _, ok := inGroup[inst.MotherVolume]; !ok {
				roots = append(roots, inst)
			}
		}

		if len(roots) == 0 {
			Logger().Warn("compound group has no root instances, skipping",
				zap.String("compound", cid))

			for _, inst := range group {
				s.captured[inst.Name] = true
			}

			continue
		}

		out = append(out, s.compoundRootGroups(cid, group, roots, inGroup)...)
	}

	return out
}

// compoundRootGroups splits a compound group's roots by base name and emits
// one template per base, with one placement per root.
func (s *compressState) compoundRootGroups(cid string, group, roots []*m.Instance, inGroup map[string]*m.Instance) []m.Volume {
	var out []m.Volume

	byBase := map[string][]*m.Instance{}

	var baseOrder []string

	for _, root := range roots {
		base := BaseName(root.Name)
		if _, ok := byBase[base]; !ok {
			baseOrder = append(baseOrder, base)
		}

		byBase[base] = append(byBase[base], root)
	}

	reached := map[string]bool{}

	for _, base := range baseOrder {
		rootGroup := byBase[base]
		tplRoot := rootGroup[0]

		comps := s.compoundComponents(tplRoot, group, inGroup)

		// Members under the other roots are represented by the shared
		// component list; they are accounted for, not dropped.
		for _, root := range rootGroup {
			s.markReachable(root, group, inGroup, reached)
		}

		for _, inst := range group {
			s.captured[inst.Name] = true
		}

		if len(comps) == 0 {
			Logger().Warn("compound template has no components, skipping",
				zap.String("compound", cid),
				zap.String("volume", tplRoot.Name))

			continue
		}

		vol := m.Volume{
			Name:       base,
			G4Name:     BaseName(tplRoot.DisplayName),
			Type:       tplRoot.Type,
			Material:   tplRoot.Material,
			Components: comps,
		}

		// A named (non-world) parent propagates as its base name onto every
		// placement, so all instances re-attach to the same document volume.
		parentBase := ""
		if tplRoot.MotherVolume != "" && tplRoot.MotherVolume != m.WorldName {
			if parent, ok := s.byName[tplRoot.MotherVolume]; ok {
				parentBase = BaseName(parent.DisplayName)
			} else {
				parentBase = BaseName(tplRoot.MotherVolume)
			}
		}

		for _, root := range rootGroup {
			vol.Placements = append(vol.Placements, instancePlacement(root, parentBase))
		}

		out = append(out, vol)
	}

	for _, inst := range group {
		if !reached[inst.Name] {
			Logger().Warn("compound member unreachable from any root, dropping",
				zap.String("compound", cid),
				zap.String("volume", inst.Name))
		}
	}

	return out
}

// compoundComponents picks the component list for one compound template from
// a single representative instance: members matched by the root's recorded
// instance id when present, the root's declared subtree otherwise. Components
// sharing a component id collapse to the first seen; union components sort
// before subtract components, stable for ties.
func (s *compressState) compoundComponents(root *m.Instance, group []*m.Instance, inGroup map[string]*m.Instance) []m.Volume {
	var sources []*m.Instance

	if root.InstanceID != "" {
		for _, inst := range group {
			if inst != root && inst.InstanceID == root.InstanceID {
				sources = append(sources, inst)
			}
		}
	} else {
		visited := map[string]bool{root.Name: true}

		var walk func(parent *m.Instance)
		walk = func(parent *m.Instance) {
			for _, child := range s.children[parent.Name] {
				if visited[child.Name] {
					Logger().Warn("cyclic mother volume chain, dropping from template",
						zap.String("volume", child.Name),
						zap.String("template", root.Name))

					continue
				}

				if _, ok := inGroup[child.Name]; !ok {
					continue
				}

				visited[child.Name] = true

				sources = append(sources, child)
				walk(child)
			}
		}
		walk(root)
	}

	seen := map[string]bool{}

	var comps []m.Volume

	for _, inst := range sources {
		key := inst.ComponentID
		if key == "" {
			key = BaseName(inst.Name)
		}

		if seen[key] {
			continue
		}

		seen[key] = true

		comps = append(comps, s.component(inst, root, false))
	}

	sort.SliceStable(comps, func(i, j int) bool {
		return booleanRank(comps[i]) < booleanRank(comps[j])
	})

	return comps
}

// markReachable records every group member that belongs to one root's
// physical instance: matched by instance id when recorded, by the declared
// subtree otherwise.
func (s *compressState) markReachable(root *m.Instance, group []*m.Instance, inGroup map[string]*m.Instance, reached map[string]bool) {
	reached[root.Name] = true

	if root.InstanceID != "" {
		for _, inst := range group {
			if inst.InstanceID == root.InstanceID {
				reached[inst.Name] = true
			}
		}

		return
	}

	var walk func(parent *m.Instance)
	walk = func(parent *m.Instance) {
		for _, child := range s.children[parent.Name] {
			if _, ok := inGroup[child.Name]; !ok {
				continue
			}

			if reached[child.Name] {
				continue
			}

			reached[child.Name] = true
			walk(child)
		}
	}
	walk(root)
}

func booleanRank(v m.Volume) int {
	if v.BooleanOperation == m.BooleanSubtract {
		return 1
	}

	return 0
}

// instancePlacement emits the world-frame placement of a template instance.
func instancePlacement(inst *m.Instance, parent string) m.Placement {
	p := m.Placement{
		G4Name:   inst.DisplayName,
		X:        inst.Position.X,
		Y:        inst.Position.Y,
		Z:        inst.Position.Z,
		Rotation: inst.Rotation,
	}

	if parent != "" && parent != m.WorldName {
		p.Parent = parent
	}

	return p
}

// standaloneVolumes converts every instance not captured by a template into
// a standalone document volume with a single placement.
func (s *compressState) standaloneVolumes() []m.Volume {
	var out []m.Volume

	for _, inst := range s.geo.Volumes {
		if inst.Type == m.ShapeAssembly || s.captured[inst.Name] {
			continue
		}

		if inst.MotherVolume != "" && inst.MotherVolume != m.WorldName {
			if _, ok := s.byName[inst.MotherVolume]; !ok {
				Logger().Warn("mother volume not found, keeping as standalone",
					zap.String("volume", inst.Name),
					zap.String("mother", inst.MotherVolume))
			}
		}

		// The volume's own g4name covers its single placement.
		pl := instancePlacement(inst, inst.MotherVolume)
		pl.G4Name = ""

		vol := m.Volume{
			Name:               inst.Name,
			G4Name:             inst.DisplayName,
			Type:               inst.Type,
			Material:           inst.Material,
			Dimensions:         shapes.ToExternal(inst.Type, inst.Dimensions),
			Placements:         []m.Placement{pl},
			Visible:            inst.Visible,
			HitsCollectionName: inst.HitsCollectionName,
			ComponentID:        inst.ComponentID,
			BooleanOperation:   inst.BooleanOperation,
			IsBooleanComponent: inst.IsBooleanComponent,
			BooleanParent:      inst.BooleanParent,
		}

		out = append(out, vol)
	}

	return out
}
