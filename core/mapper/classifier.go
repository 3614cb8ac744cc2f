package mapper

import (
	"strings"

	"github.com/salt-lab/figgen/core/catalog"
	"github.com/salt-lab/figgen/core/design"
)

// Classifier assigns a catalog component to a single design node. It is a
// pure function of the node's own fields; children are never inspected.
type Classifier struct {
	cat *catalog.Catalog
}

// NewClassifier builds a classifier over the given catalog.
func NewClassifier(cat *catalog.Catalog) *Classifier {
	return &Classifier{cat: cat}
}

// Classify returns the catalog entry for the node, or nil when the node has
// no design-system equivalent. First match wins: layer-name substring over
// catalog names, then node-kind fallbacks.
func (c *Classifier) Classify(node *design.Node) *catalog.Entry {
	if node == nil {
		return nil
	}

	if entry := c.cat.MatchName(node.Name); entry != nil {
		return entry
	}

	switch node.Type {
	case "TEXT":
		return c.lookup(catalog.TypeText)
	case "FRAME", "COMPONENT":
		return c.classifyFrame(node)
	case "RECTANGLE":
		return c.classifyRectangle(node)
	case "INSTANCE":
		return c.cat.MatchKeywords(node.Name)
	}

	return nil
}

// classifyFrame picks a container by layout axis: vertical auto-layout maps
// to a stack, horizontal to flex, radiused static frames to a card, anything
// else to the generic panel.
func (c *Classifier) classifyFrame(node *design.Node) *catalog.Entry {
	switch node.LayoutMode {
	case "VERTICAL":
		return c.lookup(catalog.TypeStack)
	case "HORIZONTAL":
		return c.lookup(catalog.TypeFlex)
	}
	if node.CornerRadius > 0 {
		return c.lookup(catalog.TypeCard)
	}
	return c.lookup(catalog.TypePanel)
}

func (c *Classifier) classifyRectangle(node *design.Node) *catalog.Entry {
	name := strings.ToLower(node.Name)
	if strings.Contains(name, "button") || strings.Contains(name, "btn") || strings.Contains(name, "cta") {
		return c.lookup(catalog.TypeButton)
	}
	if node.CornerRadius > 0 {
		return c.lookup(catalog.TypeCard)
	}
	return c.lookup(catalog.TypePanel)
}

func (c *Classifier) lookup(name string) *catalog.Entry {
	entry, _ := c.cat.Lookup(name)
	return entry
}
