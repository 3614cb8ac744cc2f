package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/salt-lab/figgen/core/catalog"
	"github.com/salt-lab/figgen/core/design"
)

func TestSpacingBucketBoundaries(t *testing.T) {
	tests := []struct {
		px   float64
		want int
	}{
		{0, 1}, {4, 1}, {5, 2}, {8, 2}, {16, 3}, {24, 4}, {32, 5}, {33, 6}, {100, 6},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SpacingBucket(tt.px), "bucket(%v)", tt.px)
	}
}

func TestSpacingBucketMonotonic(t *testing.T) {
	prev := 0
	for px := 0.0; px <= 64; px++ {
		b := SpacingBucket(px)
		assert.GreaterOrEqual(t, b, prev, "bucket must never decrease")
		prev = b
	}
}

func TestButtonProps(t *testing.T) {
	tests := []struct {
		name string
		node *design.Node
		key  string
		want any
	}{
		{"primary by name", &design.Node{Name: "Primary action"}, "variant", "primary"},
		{"primary by fill", &design.Node{Name: "Go", Fills: []design.Paint{{Type: "SOLID", Opacity: 1}}}, "variant", "primary"},
		{"secondary", &design.Node{Name: "secondary action"}, "variant", "secondary"},
		{"ghost", &design.Node{Name: "ghost action"}, "variant", "ghost"},
		{"default primary", &design.Node{Name: "Go"}, "variant", "primary"},
		{"small by height", &design.Node{Name: "Go", Height: 24}, "size", "small"},
		{"small by name", &design.Node{Name: "small go"}, "size", "small"},
		{"large by height", &design.Node{Name: "Go", Height: 56}, "size", "large"},
		{"medium default", &design.Node{Name: "Go", Height: 40}, "size", "medium"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			props := ExtractProps(tt.node, catalog.TypeButton)
			assert.Equal(t, tt.want, props[tt.key])
		})
	}
}

func TestButtonDisabled(t *testing.T) {
	props := ExtractProps(&design.Node{Name: "Submit disabled"}, catalog.TypeButton)
	assert.Equal(t, true, props["disabled"])

	props = ExtractProps(&design.Node{Name: "Submit"}, catalog.TypeButton)
	assert.NotContains(t, props, "disabled")
}

func TestInputPlaceholder(t *testing.T) {
	tests := []struct {
		name string
		node *design.Node
		want string
	}{
		{"email keyword", &design.Node{Name: "Email field"}, "Enter email address"},
		{"password keyword", &design.Node{Name: "password input"}, "Enter password"},
		{"search keyword", &design.Node{Name: "Search box"}, "Search..."},
		{"name keyword", &design.Node{Name: "Name field"}, "Enter your name"},
		{
			"child text fallback",
			&design.Node{Name: "Field", Children: []*design.Node{{Type: "TEXT", Characters: "Your address"}}},
			"Your address",
		},
		{"generic fallback", &design.Node{Name: "Field"}, "Enter text..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			props := ExtractProps(tt.node, catalog.TypeInput)
			assert.Equal(t, tt.want, props["placeholder"])
		})
	}
}

func TestInputValidationStatus(t *testing.T) {
	props := ExtractProps(&design.Node{Name: "email error"}, catalog.TypeInput)
	assert.Equal(t, "error", props["validationStatus"])
}

func TestContainerProps(t *testing.T) {
	node := &design.Node{
		Name:             "Layer",
		ItemSpacing:      12,
		PrimaryAxisAlign: "CENTER",
		CounterAxisAlign: "SPACE_BETWEEN",
	}

	stack := ExtractProps(node, catalog.TypeStack)
	assert.Equal(t, 3, stack["gap"])
	assert.Equal(t, "center", stack["align"])
	assert.NotContains(t, stack, "justify")

	flex := ExtractProps(node, catalog.TypeFlex)
	assert.Equal(t, "space-between", flex["justify"])
}

func TestContainerUnmappedAlignmentDefaultsToStart(t *testing.T) {
	props := ExtractProps(&design.Node{Name: "Layer", PrimaryAxisAlign: "WEIRD"}, catalog.TypeStack)
	assert.Equal(t, "start", props["align"])
}

func TestCardProps(t *testing.T) {
	translucent := &design.Node{
		Name:  "Card",
		Fills: []design.Paint{{Type: "SOLID", Opacity: 0.6}},
	}
	props := ExtractProps(translucent, catalog.TypeCard)
	assert.Equal(t, "secondary", props["variant"])

	opaque := &design.Node{
		Name:  "Card",
		Fills: []design.Paint{{Type: "SOLID", Opacity: 1}},
	}
	props = ExtractProps(opaque, catalog.TypeCard)
	assert.Equal(t, "primary", props["variant"])

	padded := &design.Node{Name: "Card", PaddingLeft: 16, PaddingRight: 16, PaddingTop: 8, PaddingBottom: 8}
	props = ExtractProps(padded, catalog.TypeCard)
	assert.Equal(t, 3, props["padding"])

	bare := &design.Node{Name: "Card"}
	props = ExtractProps(bare, catalog.TypeCard)
	assert.NotContains(t, props, "padding")
}

func TestTextProps(t *testing.T) {
	tests := []struct {
		size float64
		want string
	}{
		{36, "display1"}, {32, "display1"}, {24, "h1"}, {20, "h2"}, {18, "h3"}, {14, "body"}, {0, "body"},
	}

	for _, tt := range tests {
		props := ExtractProps(&design.Node{Name: "T", Style: &design.TextStyle{FontSize: tt.size}}, catalog.TypeText)
		assert.Equal(t, tt.want, props["styleAs"], "font size %v", tt.size)
	}

	props := ExtractProps(&design.Node{
		Name:  "T",
		Style: &design.TextStyle{FontSize: 14, TextAlignHorizontal: "CENTER"},
	}, catalog.TypeText)
	assert.Equal(t, "center", props["align"])
}

func TestHiddenProp(t *testing.T) {
	hidden := false
	node := &design.Node{Name: "Submit Button", Visible: &hidden}
	props := ExtractProps(node, catalog.TypeButton)
	assert.Equal(t, true, props["hidden"])

	visible := true
	node = &design.Node{Name: "Submit Button", Visible: &visible}
	props = ExtractProps(node, catalog.TypeButton)
	assert.NotContains(t, props, "hidden")
}
