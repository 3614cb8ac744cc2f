// Package design models the Figma document tree consumed by the mapper.
// The shapes mirror the Figma REST API response structure.
package design

// Node is one element of the Figma document tree. Child order is visual
// order and must be preserved.
type Node struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Type       string  `json:"type"` // FRAME, TEXT, RECTANGLE, INSTANCE, GROUP, VECTOR, ...
	Characters string  `json:"characters,omitempty"`
	Visible    *bool   `json:"visible,omitempty"` // absent means visible
	Children   []*Node `json:"children,omitempty"`

	// Auto-layout properties
	LayoutMode       string  `json:"layoutMode,omitempty"` // HORIZONTAL, VERTICAL, NONE
	PrimaryAxisAlign string  `json:"primaryAxisAlignItems,omitempty"`
	CounterAxisAlign string  `json:"counterAxisAlignItems,omitempty"`
	ItemSpacing      float64 `json:"itemSpacing,omitempty"`
	PaddingLeft      float64 `json:"paddingLeft,omitempty"`
	PaddingRight     float64 `json:"paddingRight,omitempty"`
	PaddingTop       float64 `json:"paddingTop,omitempty"`
	PaddingBottom    float64 `json:"paddingBottom,omitempty"`

	// Visual properties
	Fills        []Paint `json:"fills,omitempty"`
	CornerRadius float64 `json:"cornerRadius,omitempty"`

	// Text properties
	Style *TextStyle `json:"style,omitempty"`

	// Bounding box
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
}

// Paint is a fill on a node.
type Paint struct {
	Type    string  `json:"type"` // SOLID, GRADIENT_LINEAR, IMAGE, ...
	Visible *bool   `json:"visible,omitempty"`
	Opacity float64 `json:"opacity"`
	Color   *Color  `json:"color,omitempty"`
}

// Color is an RGBA color in Figma's 0-1 float range.
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// TextStyle holds typography properties for TEXT nodes.
type TextStyle struct {
	FontFamily          string  `json:"fontFamily,omitempty"`
	FontSize            float64 `json:"fontSize,omitempty"`
	FontWeight          float64 `json:"fontWeight,omitempty"`
	TextAlignHorizontal string  `json:"textAlignHorizontal,omitempty"` // LEFT, CENTER, RIGHT, JUSTIFIED
}

// IsVisible reports whether the node is rendered. Figma omits the visible
// flag for visible nodes.
func (n *Node) IsVisible() bool {
	return n.Visible == nil || *n.Visible
}

// FirstVisibleFill returns the first visible fill, or nil.
func (n *Node) FirstVisibleFill() *Paint {
	for i := range n.Fills {
		f := &n.Fills[i]
		if f.Visible == nil || *f.Visible {
			return f
		}
	}
	return nil
}

// HasSolidFill reports whether the node carries at least one visible solid fill.
func (n *Node) HasSolidFill() bool {
	for i := range n.Fills {
		f := &n.Fills[i]
		if f.Type == "SOLID" && (f.Visible == nil || *f.Visible) {
			return true
		}
	}
	return false
}

// FirstChildText returns the literal text of the first TEXT descendant found
// in a pre-order walk, or the empty string.
func (n *Node) FirstChildText() string {
	for _, child := range n.Children {
		if child.Type == "TEXT" && child.Characters != "" {
			return child.Characters
		}
		if text := child.FirstChildText(); text != "" {
			return text
		}
	}
	return ""
}

// HasPadding reports whether any padding side is set.
func (n *Node) HasPadding() bool {
	return n.PaddingLeft > 0 || n.PaddingRight > 0 || n.PaddingTop > 0 || n.PaddingBottom > 0
}

// AveragePadding returns the mean of the four padding sides.
func (n *Node) AveragePadding() float64 {
	return (n.PaddingLeft + n.PaddingRight + n.PaddingTop + n.PaddingBottom) / 4
}
