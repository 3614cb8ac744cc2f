package mapper

import (
	"log/slog"

	"github.com/salt-lab/figgen/core/catalog"
	"github.com/salt-lab/figgen/core/design"
)

// Mapper walks a design tree and produces the mapped component tree.
type Mapper struct {
	classifier *Classifier
	logger     *slog.Logger
}

// NewMapper builds a mapper over the given catalog. A nil logger defaults to
// slog.Default.
func NewMapper(cat *catalog.Catalog, logger *slog.Logger) *Mapper {
	if logger == nil {
		logger = slog.Default()
	}
	return &Mapper{
		classifier: NewClassifier(cat),
		logger:     logger,
	}
}

// Map converts the design tree rooted at root into an ordered sequence of
// root-level components. Design nodes with no mapping produce no output node;
// their children attach to the nearest mapped ancestor instead, so invisible
// wrapper groups never yield empty components.
func (m *Mapper) Map(root *design.Node) []*Component {
	var roots []*Component
	m.walk(root, nil, &roots)
	for i, r := range roots {
		roots[i] = collapseStacks(r)
	}
	m.logger.Debug("mapped design tree", "roots", len(roots))
	return roots
}

func (m *Mapper) walk(node *design.Node, parent *Component, roots *[]*Component) {
	if node == nil {
		return
	}

	entry := m.classifier.Classify(node)
	if entry == nil {
		// Unmapped wrapper: children bubble up past it.
		for _, child := range node.Children {
			m.walk(child, parent, roots)
		}
		return
	}

	mapped := &Component{
		Type:       entry.Name,
		ImportPath: entry.ImportPath,
		Props:      ExtractProps(node, entry.Name),
	}
	if node.Type == "TEXT" {
		mapped.Text = node.Characters
	}

	if parent == nil {
		*roots = append(*roots, mapped)
	} else {
		parent.Children = append(parent.Children, mapped)
	}

	for _, child := range node.Children {
		m.walk(child, mapped, roots)
	}
}

// collapseStacks merges a StackLayout whose single child is itself a
// StackLayout. One level per node only; the child's props win on conflict.
func collapseStacks(c *Component) *Component {
	for i, child := range c.Children {
		c.Children[i] = collapseStacks(child)
	}

	if c.Type != catalog.TypeStack || len(c.Children) != 1 {
		return c
	}
	child := c.Children[0]
	if child.Type != catalog.TypeStack {
		return c
	}

	merged := &Component{
		Type:       catalog.TypeStack,
		ImportPath: c.ImportPath,
		Props:      make(map[string]any, len(c.Props)+len(child.Props)),
		Text:       child.Text,
		Children:   child.Children,
	}
	for k, v := range c.Props {
		merged.Props[k] = v
	}
	for k, v := range child.Props {
		merged.Props[k] = v
	}
	return merged
}
