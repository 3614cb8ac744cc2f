// Package codegen extracts and checks the source code produced by the
// completion step. Parsing is pattern matching on purpose: the completion
// output is markdown-flavoured text, not a compilation unit, and the regex
// behavior here is the compatibility contract with it.
package codegen

import (
	"errors"
	"regexp"
	"strings"
)

// ErrNoCodeBlock signals a completion response without a fenced code block.
var ErrNoCodeBlock = errors.New("no code block found in completion response")

var (
	fenceRe  = regexp.MustCompile("(?s)```(?:tsx|jsx|typescript|javascript|ts|js)[ \t]*\n(.*?)```")
	importRe = regexp.MustCompile(`(?m)^[ \t]*import\s+[^;\n]*?from\s+['"]([^'"]+)['"];?`)
)

// ExtractCodeBlock returns the body of the first fenced code block carrying a
// source-language tag. A response without one is malformed completion output
// and fails with ErrNoCodeBlock; there is no fallback heuristic.
func ExtractCodeBlock(text string) (string, error) {
	m := fenceRe.FindStringSubmatch(text)
	if m == nil {
		return "", ErrNoCodeBlock
	}
	return m[1], nil
}

// ImportStatement is one import line as it appears in the source.
type ImportStatement struct {
	// Statement is the literal matched text.
	Statement string
	// Module is the quoted module path.
	Module string
}

// ExtractImports returns every `import ... from '<module>'` statement in
// order of appearance. Duplicates are preserved exactly as written.
func ExtractImports(code string) []ImportStatement {
	matches := importRe.FindAllStringSubmatch(code, -1)
	imports := make([]ImportStatement, 0, len(matches))
	for _, m := range matches {
		imports = append(imports, ImportStatement{
			Statement: strings.TrimSpace(m[0]),
			Module:    m[1],
		})
	}
	return imports
}

// Dependencies derives the deduplicated external package names from import
// statements. Relative module paths carry no dependency; scoped packages keep
// their scope plus name, unscoped packages keep their first path segment.
// Result order is first appearance.
func Dependencies(imports []ImportStatement) []string {
	seen := make(map[string]bool)
	var deps []string
	for _, imp := range imports {
		pkg := packageName(imp.Module)
		if pkg == "" || seen[pkg] {
			continue
		}
		seen[pkg] = true
		deps = append(deps, pkg)
	}
	return deps
}

func packageName(module string) string {
	if strings.HasPrefix(module, ".") {
		return ""
	}
	segments := strings.Split(module, "/")
	if strings.HasPrefix(module, "@") {
		if len(segments) >= 2 {
			return segments[0] + "/" + segments[1]
		}
		return module
	}
	return segments[0]
}
