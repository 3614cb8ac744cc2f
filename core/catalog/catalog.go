// Package catalog holds the table of recognized Salt design system components
// and their import paths. The catalog is immutable configuration injected at
// construction; declaration order is significant because it is the tie-break
// order for name-substring matches.
package catalog

import "strings"

// Well-known component type names used by the mapper's structural fallbacks.
const (
	TypeButton = "Button"
	TypeInput  = "Input"
	TypeCard   = "Card"
	TypeText   = "Text"
	TypeStack  = "StackLayout"
	TypeFlex   = "FlexLayout"
	TypePanel  = "Panel"
	TypeDialog = "Dialog"
)

// ModuleCore is the primary Salt component package.
const ModuleCore = "@salt-ds/core"

// ModuleLab is the pre-release Salt component package.
const ModuleLab = "@salt-ds/lab"

// Entry describes one recognized component: its exported name, the package it
// is imported from, and extra name keywords that map onto it.
type Entry struct {
	Name       string
	ImportPath string
	Keywords   []string
}

// Catalog is an ordered, immutable set of component entries.
type Catalog struct {
	entries []Entry
	byName  map[string]int
}

// New builds a catalog from entries. Entry order is preserved and significant.
func New(entries []Entry) *Catalog {
	c := &Catalog{
		entries: make([]Entry, len(entries)),
		byName:  make(map[string]int, len(entries)),
	}
	copy(c.entries, entries)
	for i, e := range c.entries {
		c.byName[e.Name] = i
	}
	return c
}

// Default returns the standard Salt catalog. Longer, more specific names are
// declared before short ones so substring collisions (a layer named
// "Dropdown input", say) resolve the same way every run.
func Default() *Catalog {
	return New([]Entry{
		{Name: "ComboBox", ImportPath: ModuleCore, Keywords: []string{"combo box", "combobox", "autocomplete"}},
		{Name: "Dropdown", ImportPath: ModuleCore, Keywords: []string{"select", "picker"}},
		{Name: "Checkbox", ImportPath: ModuleCore, Keywords: []string{"check box"}},
		{Name: "RadioButton", ImportPath: ModuleCore, Keywords: []string{"radio"}},
		{Name: "ToggleButton", ImportPath: ModuleCore, Keywords: []string{"toggle"}},
		{Name: TypeButton, ImportPath: ModuleCore, Keywords: []string{"btn", "cta"}},
		{Name: TypeInput, ImportPath: ModuleCore, Keywords: []string{"text field", "textfield", "field"}},
		{Name: "Switch", ImportPath: ModuleCore},
		{Name: "Badge", ImportPath: ModuleCore, Keywords: []string{"chip", "tag", "pill"}},
		{Name: "Avatar", ImportPath: ModuleCore, Keywords: []string{"profile pic", "profile image"}},
		{Name: "Banner", ImportPath: ModuleCore, Keywords: []string{"alert", "notification"}},
		{Name: "Spinner", ImportPath: ModuleCore, Keywords: []string{"loader", "loading"}},
		{Name: "Tooltip", ImportPath: ModuleCore},
		{Name: "Link", ImportPath: ModuleCore},
		{Name: TypeCard, ImportPath: ModuleCore, Keywords: []string{"tile"}},
		{Name: TypeText, ImportPath: ModuleCore, Keywords: []string{"label", "heading", "title", "paragraph"}},
		{Name: TypeStack, ImportPath: ModuleCore, Keywords: []string{"stack"}},
		{Name: TypeFlex, ImportPath: ModuleCore, Keywords: []string{"flex"}},
		{Name: TypePanel, ImportPath: ModuleCore},
		{Name: TypeDialog, ImportPath: ModuleLab, Keywords: []string{"modal", "popup", "pop up"}},
		{Name: "Slider", ImportPath: ModuleLab},
	})
}

// Entries returns the catalog entries in declaration order. The returned
// slice must not be mutated.
func (c *Catalog) Entries() []Entry {
	return c.entries
}

// Size returns the number of entries.
func (c *Catalog) Size() int {
	return len(c.entries)
}

// Lookup finds an entry by its exact component name.
func (c *Catalog) Lookup(name string) (*Entry, bool) {
	i, ok := c.byName[name]
	if !ok {
		return nil, false
	}
	return &c.entries[i], true
}

// MatchName returns the first entry whose name is a case-insensitive
// substring of display, or nil. Iteration is in declaration order.
func (c *Catalog) MatchName(display string) *Entry {
	lower := strings.ToLower(display)
	for i := range c.entries {
		if strings.Contains(lower, strings.ToLower(c.entries[i].Name)) {
			return &c.entries[i]
		}
	}
	return nil
}

// MatchKeywords is MatchName extended with each entry's keyword aliases.
// Used for INSTANCE nodes where layer names tend to be freer ("Confirm
// modal", "Promo tile").
func (c *Catalog) MatchKeywords(display string) *Entry {
	lower := strings.ToLower(display)
	for i := range c.entries {
		e := &c.entries[i]
		if strings.Contains(lower, strings.ToLower(e.Name)) {
			return e
		}
		for _, kw := range e.Keywords {
			if strings.Contains(lower, kw) {
				return e
			}
		}
	}
	return nil
}
