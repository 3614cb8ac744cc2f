package codegen

import (
	"fmt"
	"strings"

	"github.com/salt-lab/figgen/core/catalog"
)

// ValidationResult is the structured outcome of validating arbitrary source
// text. Findings are reported here, never as an error return: errors make the
// code invalid, suggestions are advisory only.
type ValidationResult struct {
	Valid       bool     `json:"valid"`
	Errors      []string `json:"errors"`
	Suggestions []string `json:"suggestions"`
}

// Validator performs hard checks against Salt component source text.
type Validator struct {
	cat *catalog.Catalog
}

// NewValidator builds a validator over the given catalog.
func NewValidator(cat *catalog.Catalog) *Validator {
	return &Validator{cat: cat}
}

// Validate checks code for required structure: a Salt core import, an export
// statement, and an import for every catalog component referenced by tag
// name. Valid is true iff no errors were found.
func (v *Validator) Validate(code string) *ValidationResult {
	result := &ValidationResult{}
	imports := ExtractImports(code)

	if !v.hasSaltCoreImport(imports) {
		result.Errors = append(result.Errors, fmt.Sprintf("missing %s import", catalog.ModuleCore))
	}

	if !strings.Contains(code, "export default") &&
		!strings.Contains(code, "export function") &&
		!strings.Contains(code, "export const") {
		result.Errors = append(result.Errors, "missing export statement")
	}

	for _, entry := range v.cat.Entries() {
		if !usesComponentTag(code, entry.Name) {
			continue
		}
		if !importsName(imports, entry.Name) {
			result.Errors = append(result.Errors,
				fmt.Sprintf("component %s is used but never imported", entry.Name))
		}
	}

	if strings.Contains(code, "className=") {
		result.Suggestions = append(result.Suggestions,
			"prefer Salt component props over raw className styling")
	}
	if strings.Contains(code, ".map(") && !strings.Contains(code, "key=") {
		result.Suggestions = append(result.Suggestions,
			"list rendering detected without key props; add a key per item")
	}

	result.Valid = len(result.Errors) == 0
	return result
}

// hasSaltCoreImport accepts the core package itself and its subpaths, but not
// sibling packages that merely share the prefix.
func (v *Validator) hasSaltCoreImport(imports []ImportStatement) bool {
	for _, imp := range imports {
		if imp.Module == catalog.ModuleCore || strings.HasPrefix(imp.Module, catalog.ModuleCore+"/") {
			return true
		}
	}
	return false
}

// usesComponentTag reports whether code opens a JSX tag for name. The tag
// must end at a word boundary so `<Button` does not match `<ButtonGroup`.
func usesComponentTag(code, name string) bool {
	tag := "<" + name
	for offset := 0; ; {
		i := strings.Index(code[offset:], tag)
		if i < 0 {
			return false
		}
		end := offset + i + len(tag)
		if end >= len(code) {
			return true
		}
		next := code[end]
		if next == ' ' || next == '>' || next == '/' || next == '\n' || next == '\t' || next == '\r' {
			return true
		}
		offset = end
	}
}

func importsName(imports []ImportStatement, name string) bool {
	for _, imp := range imports {
		if containsWord(imp.Statement, name) {
			return true
		}
	}
	return false
}

func containsWord(s, word string) bool {
	for offset := 0; ; {
		i := strings.Index(s[offset:], word)
		if i < 0 {
			return false
		}
		start := offset + i
		end := start + len(word)
		beforeOK := start == 0 || !isIdentChar(s[start-1])
		afterOK := end == len(s) || !isIdentChar(s[end])
		if beforeOK && afterOK {
			return true
		}
		offset = start + 1
	}
}

func isIdentChar(c byte) bool {
	return c == '_' || c == '$' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
