package domain

import (
	"fmt"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/half-rabbit/geode/internal/adapter"
	"github.com/half-rabbit/geode/internal/controller"
	m "github.com/half-rabbit/geode/internal/model"
)

// PackArgs holds parameters for converting a geometry into a document.
type PackArgs struct {
	Input   string // geometry JSON path
	Project string // project name to save under, optional
	Output  string // document JSON path, optional
}

// UnpackArgs holds parameters for converting a document into a geometry.
type UnpackArgs struct {
	Project string // project name to load, mutually exclusive with Input
	Input   string // document JSON path
	Into    string // existing geometry to paste into, optional
	Output  string // geometry JSON path
}

// ViewArgs holds parameters for browsing a document's volume hierarchy.
type ViewArgs struct {
	Project string
	Input   string
}

// Workflow defines the interface for geometry conversion operations.
type Workflow interface {
	Pack(args PackArgs) error
	Unpack(args UnpackArgs) error
	ListProjects() error
	View(args ViewArgs) error
}

type workflow struct {
	store adapter.ProjectStore
	fs    adapter.GeometryFS
	ui    controller.UI
	comp  Compressor
	dec   Decompressor
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(store adapter.ProjectStore, fs adapter.GeometryFS, ui controller.UI) Workflow {
	return &workflow{
		store: store,
		fs:    fs,
		ui:    ui,
		comp:  NewCompressor(),
		dec:   NewDecompressor(),
	}
}

// Pack reads a flat geometry, compresses it into a compound document and
// stores the result under a project name, a file path, or both.
func (w *workflow) Pack(args PackArgs) error {
	if args.Project == "" && args.Output == "" {
		return fmt.Errorf("pack needs a project name or an output path")
	}

	geo, err := w.fs.ReadGeometry(args.Input)
	if err != nil {
		return err
	}

	doc := w.comp.Compress(geo)

	if args.Project != "" {
		if err := w.store.Save(args.Project, doc); err != nil {
			return err
		}

		w.ui.DisplayMessage("saved project %s (%d volumes)\n", args.Project, len(doc.Volumes))
	}

	if args.Output != "" {
		if err := w.fs.WriteDocument(args.Output, doc); err != nil {
			return err
		}

		w.ui.DisplayMessage("wrote document %s\n", args.Output)
	}

	return nil
}

// Unpack loads a compound document and expands it into a flat geometry.
// When Into points at an existing geometry, the document is pasted into it
// under fresh session names.
func (w *workflow) Unpack(args UnpackArgs) error {
	doc, err := w.loadDocument(args.Project, args.Input)
	if err != nil {
		return err
	}

	var base *m.Geometry

	if args.Into != "" {
		base, err = w.fs.ReadGeometry(args.Into)
		if err != nil {
			return err
		}
	}

	geo := w.dec.Decompress(doc, base)

	if err := w.fs.WriteGeometry(args.Output, geo); err != nil {
		return err
	}

	w.ui.DisplayMessage("wrote geometry %s (%d volumes)\n", args.Output, len(geo.Volumes))

	return nil
}

// ListProjects displays every stored project with its volume counts.
func (w *workflow) ListProjects() error {
	names, err := w.store.List()
	if err != nil {
		return err
	}

	infos := make([]controller.ProjectInfo, len(names))

	var group errgroup.Group

	for i, name := range names {
		group.Go(func() error {
			doc, err := w.store.Load(name)
			if err != nil {
				return err
			}

			infos[i] = projectInfo(name, doc)

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	return w.ui.DisplayProjects(infos)
}

// View expands a document and opens the volume hierarchy browser.
func (w *workflow) View(args ViewArgs) error {
	doc, err := w.loadDocument(args.Project, args.Input)
	if err != nil {
		return err
	}

	geo := w.dec.Decompress(doc, nil)

	title := args.Project
	if title == "" {
		title = args.Input
	}

	return w.ui.BrowseTree(title, treeNodes(geo))
}

func (w *workflow) loadDocument(project string, input string) (*m.Document, error) {
	switch {
	case project != "" && input != "":
		return nil, fmt.Errorf("specify a project or a document file, not both")
	case project != "":
		return w.store.Load(project)
	case input != "":
		return w.fs.ReadDocument(input)
	default:
		return nil, fmt.Errorf("no project or document file given")
	}
}

func projectInfo(name string, doc *m.Document) controller.ProjectInfo {
	info := controller.ProjectInfo{
		Name:      name,
		Volumes:   len(doc.Volumes),
		Materials: len(doc.Materials),
	}

	for _, vol := range doc.Volumes {
		if vol.IsTemplate() {
			info.Templates++
		}
	}

	return info
}

// treeNodes flattens the mother-volume hierarchy into depth-annotated rows,
// children sorted by name under each parent.
func treeNodes(geo *m.Geometry) []controller.TreeNode {
	children := make(map[string][]*m.Instance)

	for _, inst := range geo.Volumes {
		mother := inst.MotherVolume
		if mother == "" || geo.Find(mother) == nil {
			mother = m.WorldName
		}

		children[mother] = append(children[mother], inst)
	}

	for _, siblings := range children {
		sort.Slice(siblings, func(i, j int) bool {
			return siblings[i].Name < siblings[j].Name
		})
	}

	nodes := []controller.TreeNode{{Name: m.WorldName, Type: string(m.ShapeBox)}}

	visited := map[string]bool{}

	var walk func(parent string, depth int)
	walk = func(parent string, depth int) {
		for _, inst := range children[parent] {
			if visited[inst.Name] {
				Logger().Warn("volume hierarchy loop", zap.String("volume", inst.Name))
				continue
			}

			visited[inst.Name] = true

			name := inst.DisplayName
			if name == "" {
				name = inst.Name
			}

			nodes = append(nodes, controller.TreeNode{
				Depth:    depth,
				Name:     name,
				Type:     string(inst.Type),
				Material: inst.Material,
			})
			walk(inst.Name, depth+1)
		}
	}
	walk(m.WorldName, 1)

	return nodes
}
