package mapper

import (
	"strings"

	"github.com/salt-lab/figgen/core/catalog"
	"github.com/salt-lab/figgen/core/design"
)

// SpacingBucket quantizes a pixel measurement onto Salt's 6-step spacing
// scale. The quantization is lossy on purpose: the target system only
// exposes ordinal spacing, so nearby pixel values collapse into one bucket.
// Exact boundaries round down.
func SpacingBucket(px float64) int {
	switch {
	case px <= 4:
		return 1
	case px <= 8:
		return 2
	case px <= 16:
		return 3
	case px <= 24:
		return 4
	case px <= 32:
		return 5
	default:
		return 6
	}
}

// alignMap translates Figma primary-axis alignment values to Salt alignment
// keywords. Unmapped values fall back to "start".
var alignMap = map[string]string{
	"MIN":           "start",
	"CENTER":        "center",
	"MAX":           "end",
	"STRETCH":       "stretch",
	"SPACE_BETWEEN": "space-between",
}

// justifyMap translates counter-axis alignment to justify keywords.
var justifyMap = map[string]string{
	"MIN":           "start",
	"CENTER":        "center",
	"MAX":           "end",
	"SPACE_BETWEEN": "space-between",
	"BASELINE":      "baseline",
}

func mapAlign(value string) string {
	if v, ok := alignMap[value]; ok {
		return v
	}
	return "start"
}

func mapJustify(value string) string {
	if v, ok := justifyMap[value]; ok {
		return v
	}
	return "start"
}

// placeholderKeywords maps layer-name hints to input placeholder text.
// Checked in declaration order.
var placeholderKeywords = []struct {
	keyword     string
	placeholder string
}{
	{"email", "Enter email address"},
	{"password", "Enter password"},
	{"search", "Search..."},
	{"name", "Enter your name"},
}

// ExtractProps derives the prop mapping for a node resolved to the given
// component type. Each rule is independent of the others.
func ExtractProps(node *design.Node, componentType string) map[string]any {
	props := make(map[string]any)
	name := strings.ToLower(node.Name)

	switch componentType {
	case catalog.TypeButton:
		extractButtonProps(node, name, props)
	case catalog.TypeInput:
		extractInputProps(node, name, props)
	case catalog.TypeStack:
		extractContainerProps(node, props, false)
	case catalog.TypeFlex:
		extractContainerProps(node, props, true)
	case catalog.TypeCard:
		extractCardProps(node, props)
	case catalog.TypeText:
		extractTextProps(node, props)
	}

	if !node.IsVisible() {
		props["hidden"] = true
	}

	return props
}

func extractButtonProps(node *design.Node, name string, props map[string]any) {
	switch {
	case strings.Contains(name, "primary") || node.HasSolidFill():
		props["variant"] = "primary"
	case strings.Contains(name, "secondary"):
		props["variant"] = "secondary"
	case strings.Contains(name, "ghost") || strings.Contains(name, "text"):
		props["variant"] = "ghost"
	default:
		props["variant"] = "primary"
	}

	switch {
	case (node.Height > 0 && node.Height < 32) || strings.Contains(name, "small"):
		props["size"] = "small"
	case node.Height > 48 || strings.Contains(name, "large"):
		props["size"] = "large"
	default:
		props["size"] = "medium"
	}

	if strings.Contains(name, "disabled") {
		props["disabled"] = true
	}
}

func extractInputProps(node *design.Node, name string, props map[string]any) {
	placeholder := ""
	for _, pk := range placeholderKeywords {
		if strings.Contains(name, pk.keyword) {
			placeholder = pk.placeholder
			break
		}
	}
	if placeholder == "" {
		placeholder = node.FirstChildText()
	}
	if placeholder == "" {
		placeholder = "Enter text..."
	}
	props["placeholder"] = placeholder

	if strings.Contains(name, "error") {
		props["validationStatus"] = "error"
	}
}

func extractContainerProps(node *design.Node, props map[string]any, flex bool) {
	props["gap"] = SpacingBucket(node.ItemSpacing)
	props["align"] = mapAlign(node.PrimaryAxisAlign)
	if flex {
		props["justify"] = mapJustify(node.CounterAxisAlign)
	}
}

func extractCardProps(node *design.Node, props map[string]any) {
	variant := "primary"
	if fill := node.FirstVisibleFill(); fill != nil && fill.Opacity > 0 && fill.Opacity < 1 {
		variant = "secondary"
	}
	props["variant"] = variant

	if node.HasPadding() {
		props["padding"] = SpacingBucket(node.AveragePadding())
	}
}

func extractTextProps(node *design.Node, props map[string]any) {
	size := 0.0
	if node.Style != nil {
		size = node.Style.FontSize
	}
	switch {
	case size >= 32:
		props["styleAs"] = "display1"
	case size >= 24:
		props["styleAs"] = "h1"
	case size >= 20:
		props["styleAs"] = "h2"
	case size >= 18:
		props["styleAs"] = "h3"
	default:
		props["styleAs"] = "body"
	}

	if node.Style != nil && node.Style.TextAlignHorizontal != "" {
		props["align"] = strings.ToLower(node.Style.TextAlignHorizontal)
	}
}
