package tool

import "github.com/ianlancetaylor/demangle"

// demangledName returns the human-readable form of a mangled symbol, or
// the symbol unchanged when it does not demangle.
func demangledName(raw string) string {
	return demangle.Filter(raw)
}

// baseName returns the bare function name: demangled, with parameters and
// template arguments stripped. Falls back to the raw symbol.
func baseName(raw string) string {
	return demangle.Filter(raw, demangle.NoParams, demangle.NoTemplateParams)
}
