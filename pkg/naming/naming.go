// Package naming converts arbitrary schema names into legal TypeScript
// identifiers.
//
// Names in an OpenAPI document are almost unconstrained ("version 2.0",
// "NOT_AVAILABLE", "order#123"), while everything we emit must lex as an
// identifier. The package offers two strategies: the defensive strategy
// escapes every disallowed character into a word token and never fails, and
// the opt-in idiomatic strategy produces conventional camel/Pascal casing for
// names built only from letters, digits and a fixed separator set, deferring
// to the defensive strategy for everything else. Callers can pin the exact
// spelling of any input name through an override table, which bypasses both
// strategies entirely.
package naming

import "fmt"

// Role selects the casing convention for a projected identifier.
type Role int

const (
	// RoleTypeName names a type declaration; leading capital.
	RoleTypeName Role = iota
	// RoleMemberName names a property, parameter or function; leading lowercase.
	RoleMemberName
	// RoleEnumCase names an enum member; leading capital.
	RoleEnumCase
	// RoleContentType names a token derived from a media type; leading lowercase.
	RoleContentType
)

// Strategy selects how raw names are projected. It is chosen once per
// generation run and never changes mid-run, so regenerating against an
// unchanged document always yields identical identifiers.
type Strategy string

const (
	// StrategyDefensive escapes disallowed characters and preserves letter
	// case. This is the default and the backward-compatible choice.
	StrategyDefensive Strategy = "defensive"
	// StrategyIdiomatic produces conventional casing where the input allows
	// it and falls back to StrategyDefensive where it does not.
	StrategyIdiomatic Strategy = "idiomatic"
)

// ParseStrategy parses a strategy name from configuration. The empty string
// maps to StrategyDefensive so that existing configs keep their output.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "", string(StrategyDefensive):
		return StrategyDefensive, nil
	case string(StrategyIdiomatic):
		return StrategyIdiomatic, nil
	}
	return "", fmt.Errorf("naming: unknown strategy %q (expected %q or %q)", s, StrategyDefensive, StrategyIdiomatic)
}

// Option configures a Projector at construction time.
type Option func(*Projector)

// WithAccentFolding strips diacritics during idiomatic tokenization, so
// "configuração" projects to "Configuracao" instead of carrying the accented
// letters through. Folding never applies to the defensive strategy.
func WithAccentFolding() Option {
	return func(p *Projector) { p.foldAccents = true }
}

// Projector maps raw document names to legal identifiers. It is immutable
// after construction and safe for concurrent use.
type Projector struct {
	strategy    Strategy
	overrides   map[string]string
	foldAccents bool
}

// NewProjector builds a projector for one generation run. The overrides map
// is copied, so later mutation by the caller does not affect the projector.
func NewProjector(strategy Strategy, overrides map[string]string, opts ...Option) *Projector {
	p := &Projector{strategy: strategy}
	if len(overrides) > 0 {
		p.overrides = make(map[string]string, len(overrides))
		for k, v := range overrides {
			p.overrides[k] = v
		}
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Project returns a legal identifier for raw under the given role. It never
// fails: the worst case is a verbose escaped spelling of the input.
//
// An override entry wins over everything else and is returned verbatim; the
// override table is a trusted escape hatch and its values are deliberately
// not re-validated here.
func (p *Projector) Project(raw string, role Role) string {
	if v, ok := p.overrides[raw]; ok {
		return v
	}
	if p.strategy == StrategyIdiomatic {
		if out, ok := p.idiomaticName(raw, role); ok {
			return out
		}
	}
	return defensiveName(raw)
}

// ContentTypeToken projects a media type string such as "application/json"
// into an identifier fragment ("applicationJson").
func (p *Projector) ContentTypeToken(mediaType string) string {
	return p.Project(mediaType, RoleContentType)
}
