package mapper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salt-lab/figgen/core/catalog"
	"github.com/salt-lab/figgen/core/design"
)

func classify(t *testing.T, node *design.Node) string {
	t.Helper()
	entry := NewClassifier(catalog.Default()).Classify(node)
	if entry == nil {
		return ""
	}
	return entry.Name
}

func TestClassifyByNameWinsRegardlessOfKind(t *testing.T) {
	tests := []struct {
		name string
		node *design.Node
		want string
	}{
		{"button named frame", &design.Node{Name: "Submit Button", Type: "FRAME"}, "Button"},
		{"button named vector", &design.Node{Name: "CTA button", Type: "VECTOR"}, "Button"},
		{"card named text", &design.Node{Name: "Pricing Card", Type: "TEXT"}, "Card"},
		{"input named rectangle", &design.Node{Name: "email input", Type: "RECTANGLE"}, "Input"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classify(t, tt.node))
		})
	}
}

func TestClassifyFrameByLayout(t *testing.T) {
	tests := []struct {
		name string
		node *design.Node
		want string
	}{
		{"vertical layout", &design.Node{Name: "Layer 1", Type: "FRAME", LayoutMode: "VERTICAL"}, catalog.TypeStack},
		{"horizontal layout", &design.Node{Name: "Layer 2", Type: "FRAME", LayoutMode: "HORIZONTAL"}, catalog.TypeFlex},
		{"no layout with radius", &design.Node{Name: "Layer 3", Type: "FRAME", CornerRadius: 8}, catalog.TypeCard},
		{"plain frame", &design.Node{Name: "Layer 4", Type: "FRAME"}, catalog.TypePanel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classify(t, tt.node))
		})
	}
}

func TestClassifyText(t *testing.T) {
	node := &design.Node{Name: "Layer 9", Type: "TEXT", Characters: "Hello"}
	assert.Equal(t, catalog.TypeText, classify(t, node))
}

func TestClassifyRectangle(t *testing.T) {
	tests := []struct {
		name string
		node *design.Node
		want string
	}{
		{"btn keyword", &design.Node{Name: "primary btn", Type: "RECTANGLE"}, catalog.TypeButton},
		{"cta keyword", &design.Node{Name: "hero cta", Type: "RECTANGLE"}, catalog.TypeButton},
		{"radiused", &design.Node{Name: "Layer 5", Type: "RECTANGLE", CornerRadius: 4}, catalog.TypeCard},
		{"plain", &design.Node{Name: "Layer 6", Type: "RECTANGLE"}, catalog.TypePanel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classify(t, tt.node))
		})
	}
}

func TestClassifyInstanceUsesExtendedKeywords(t *testing.T) {
	assert.Equal(t, "Dialog", classify(t, &design.Node{Name: "Confirm modal", Type: "INSTANCE"}))
	assert.Equal(t, "Card", classify(t, &design.Node{Name: "Promo tile", Type: "INSTANCE"}))
	assert.Equal(t, "", classify(t, &design.Node{Name: "Mystery", Type: "INSTANCE"}))
}

func TestClassifyUnknownKind(t *testing.T) {
	assert.Equal(t, "", classify(t, &design.Node{Name: "Layer 7", Type: "VECTOR"}))
	assert.Equal(t, "", classify(t, &design.Node{Name: "Layer 8", Type: "BOOLEAN_OPERATION"}))
	// Wrapper groups are transparent; only a name match can map them.
	assert.Equal(t, "", classify(t, &design.Node{Name: "Layer 9", Type: "GROUP", LayoutMode: "VERTICAL"}))
	assert.Equal(t, "Card", classify(t, &design.Node{Name: "Profile card", Type: "GROUP"}))
}

func TestClassifyIsLocal(t *testing.T) {
	// Classification must not look at children: a plain frame stays a panel
	// even when a child is a button.
	node := &design.Node{
		Name: "Layer 10",
		Type: "FRAME",
		Children: []*design.Node{
			{Name: "Submit Button", Type: "RECTANGLE"},
		},
	}
	require.Equal(t, catalog.TypePanel, classify(t, node))
}
