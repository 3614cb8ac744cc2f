package codegen

import "strings"

// reviewCheck is one advisory check over generated code. Checks are substring
// heuristics; each is independent and none blocks generation.
type reviewCheck struct {
	passes  func(code string) bool
	warning string
}

// reviewChecks run in this fixed order; warnings come out in the same order.
var reviewChecks = []reviewCheck{
	{
		passes: func(code string) bool {
			return strings.Contains(code, "SaltProvider")
		},
		warning: "generated component is not wrapped in a SaltProvider",
	},
	{
		passes: func(code string) bool {
			return strings.Contains(code, "interface ") ||
				strings.Contains(code, "type ") ||
				strings.Contains(code, ": React.")
		},
		warning: "no TypeScript type annotations detected",
	},
	{
		passes: func(code string) bool {
			return strings.Contains(code, "aria-") ||
				strings.Contains(code, "role=") ||
				strings.Contains(code, "alt=")
		},
		warning: "no accessibility attributes (aria-*, role, alt) detected",
	},
	{
		passes: func(code string) bool {
			return strings.Contains(code, "try") ||
				strings.Contains(code, "catch") ||
				strings.Contains(code, "ErrorBoundary") ||
				strings.Contains(code, "onError")
		},
		warning: "no error handling constructs detected",
	},
}

// Review runs the advisory checklist against generated code and returns a
// warning string per failed check, in check order. Warnings never fail a
// generation.
func Review(code string) []string {
	var warnings []string
	for _, check := range reviewChecks {
		if !check.passes(code) {
			warnings = append(warnings, check.warning)
		}
	}
	return warnings
}
