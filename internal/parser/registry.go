package parser

import "strings"

// Registry maps format identifiers to their parsers.
type Registry struct {
	parsers map[string]Parser
}

// NewRegistry creates a registry with all built-in parsers.
// browsers is passed to the Playwright parser.
func NewRegistry(browsers []string) *Registry {
	r := &Registry{
		parsers: make(map[string]Parser),
	}

	jest := NewJestParser()
	playwright := NewPlaywrightParser(browsers)
	gotest := NewGoTestParser()

	r.parsers["jest"] = jest
	r.parsers["api"] = jest
	r.parsers["playwright"] = playwright
	r.parsers["ui"] = playwright
	r.parsers["gotest"] = gotest
	r.parsers["go"] = gotest

	return r
}

// Get returns the parser for a format identifier, or nil if unknown.
func (r *Registry) Get(format string) Parser {
	return r.parsers[strings.ToLower(strings.TrimSpace(format))]
}
