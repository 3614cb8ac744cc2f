// Package mapper converts a Figma design tree into a tree of Salt design
// system components. Classification is a best-effort heuristic: layer name
// substrings first, then node-kind and layout fallbacks.
package mapper

// Component is one node of the mapped output tree. Prop values are scalars
// only (string, int, float64 or bool); nested structures never appear.
type Component struct {
	Type       string         `json:"type"`
	ImportPath string         `json:"importPath"`
	Props      map[string]any `json:"props,omitempty"`
	Text       string         `json:"text,omitempty"`
	Children   []*Component   `json:"children,omitempty"`
}

// CollectTypes walks the trees and returns the distinct component types in
// first-appearance order.
func CollectTypes(roots []*Component) []string {
	seen := make(map[string]bool)
	var types []string
	var walk func(c *Component)
	walk = func(c *Component) {
		if !seen[c.Type] {
			seen[c.Type] = true
			types = append(types, c.Type)
		}
		for _, child := range c.Children {
			walk(child)
		}
	}
	for _, root := range roots {
		walk(root)
	}
	return types
}
