// Package prompt assembles the completion prompt from a mapped component
// tree, the raw design data and fetched usage examples. The section order is
// a fixed template tuned for completion quality.
package prompt

import (
	"fmt"
	"sort"
	"strings"

	"github.com/salt-lab/figgen/core/mapper"
)

// Example is one fetched usage example for a component type.
type Example struct {
	Type string
	Text string
}

// Input carries everything the renderer inlines into the prompt.
type Input struct {
	Components   []*mapper.Component
	RawDesign    string    // design JSON, inlined verbatim
	Examples     []Example // ordered, at most one per type
	Requirements []string  // rendered as extra numbered instructions
}

// Render produces the full user prompt.
func Render(in Input) string {
	var b strings.Builder

	b.WriteString("Generate a React component using the Salt design system (@salt-ds/core).\n\n")

	b.WriteString("## Component hierarchy\n\n")
	b.WriteString(RenderTree(in.Components))
	b.WriteString("\n## Required imports\n\n")
	b.WriteString(RenderImports(in.Components))

	if len(in.Examples) > 0 {
		b.WriteString("\n## Usage examples\n")
		for _, ex := range in.Examples {
			b.WriteString(fmt.Sprintf("\n### %s\n%s\n", ex.Type, ex.Text))
		}
	}

	if in.RawDesign != "" {
		b.WriteString("\n## Raw design data\n\n```json\n")
		b.WriteString(in.RawDesign)
		if !strings.HasSuffix(in.RawDesign, "\n") {
			b.WriteString("\n")
		}
		b.WriteString("```\n")
	}

	b.WriteString("\n## Instructions\n\n")
	n := 0
	writeReq := func(line string) {
		n++
		b.WriteString(fmt.Sprintf("%d. %s\n", n, line))
	}
	writeReq("Produce a single functional component in TypeScript.")
	writeReq("Wrap the output in a SaltProvider.")
	writeReq("Use only components from the import list above.")
	writeReq("Match the component hierarchy and text content exactly.")
	for _, req := range in.Requirements {
		if req = strings.TrimSpace(req); req != "" {
			writeReq(req)
		}
	}
	b.WriteString("\nRespond with one fenced tsx code block and nothing else.\n")

	return b.String()
}

// RenderTree pretty-prints the mapped tree as nested tags, two spaces per
// depth level, literal text content on its own indented line.
func RenderTree(roots []*mapper.Component) string {
	var b strings.Builder
	for _, root := range roots {
		renderNode(&b, root, 0)
	}
	return b.String()
}

func renderNode(b *strings.Builder, c *mapper.Component, depth int) {
	indent := strings.Repeat("  ", depth)
	attrs := renderProps(c.Props)

	if len(c.Children) == 0 && c.Text == "" {
		fmt.Fprintf(b, "%s<%s%s />\n", indent, c.Type, attrs)
		return
	}

	fmt.Fprintf(b, "%s<%s%s>\n", indent, c.Type, attrs)
	if c.Text != "" {
		fmt.Fprintf(b, "%s  %s\n", indent, c.Text)
	}
	for _, child := range c.Children {
		renderNode(b, child, depth+1)
	}
	fmt.Fprintf(b, "%s</%s>\n", indent, c.Type)
}

// renderProps renders a prop bag deterministically (sorted keys) in JSX
// attribute syntax.
func renderProps(props map[string]any) string {
	if len(props) == 0 {
		return ""
	}
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		switch v := props[k].(type) {
		case string:
			fmt.Fprintf(&b, " %s=%q", k, v)
		case bool:
			if v {
				fmt.Fprintf(&b, " %s", k)
			} else {
				fmt.Fprintf(&b, " %s={false}", k)
			}
		default:
			fmt.Fprintf(&b, " %s={%v}", k, v)
		}
	}
	return b.String()
}

// RenderImports emits one import line per distinct source module, grouping
// all component names imported from that module. Each line is preceded by the
// module's display name: the first path segment after the package scope.
func RenderImports(roots []*mapper.Component) string {
	var moduleOrder []string
	names := make(map[string][]string)
	seen := make(map[string]bool)

	var walk func(c *mapper.Component)
	walk = func(c *mapper.Component) {
		key := c.ImportPath + "/" + c.Type
		if !seen[key] {
			seen[key] = true
			if _, ok := names[c.ImportPath]; !ok {
				moduleOrder = append(moduleOrder, c.ImportPath)
			}
			names[c.ImportPath] = append(names[c.ImportPath], c.Type)
		}
		for _, child := range c.Children {
			walk(child)
		}
	}
	for _, root := range roots {
		walk(root)
	}

	var b strings.Builder
	for _, module := range moduleOrder {
		fmt.Fprintf(&b, "// %s\n", ModuleSymbol(module))
		fmt.Fprintf(&b, "import { %s } from %q;\n", strings.Join(names[module], ", "), module)
	}
	return b.String()
}

// ModuleSymbol returns the display name for a module path: the first segment
// after the package scope for scoped packages, otherwise the first segment.
func ModuleSymbol(module string) string {
	segments := strings.Split(module, "/")
	if strings.HasPrefix(module, "@") && len(segments) > 1 {
		return segments[1]
	}
	return segments[0]
}
