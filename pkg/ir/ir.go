// Package ir holds the intermediate representation passed between the
// OpenAPI document adapter, the server variable translator and the emitter.
// The input side mirrors the document's server objects; the output side is
// the declaration model the TypeScript emitter renders.
package ir

import "fmt"

// ServerVariable is a substitution slot in a server URL template, read
// verbatim from the document. Enum is nil when the variable accepts any
// string; when present it is non-empty and kept in document order.
type ServerVariable struct {
	Name        string
	Default     string
	Enum        []string
	Description string
}

// ServerDefinition is one entry of the document's servers list.
type ServerDefinition struct {
	URLTemplate string
	Description string
	Variables   []ServerVariable
}

// VariableKind discriminates the translated variable variants.
type VariableKind int

const (
	// RawStringVariable is a variable without an allowed-value set; it
	// becomes a plain string parameter.
	RawStringVariable VariableKind = iota
	// GeneratedEnumVariable is a variable with an allowed-value set; it
	// becomes a generated string enum plus a typed parameter.
	GeneratedEnumVariable
)

// EnumCase is one member of a generated enum. RawValue is the untouched
// document string: identifier spelling never leaks into the wire value.
type EnumCase struct {
	Name     string
	RawValue string
}

// EnumDecl is a generated string-valued enum declaration.
type EnumDecl struct {
	Name  string
	Doc   string
	Cases []EnumCase
}

// TranslatedVariable is the per-variable translation result. Kind selects
// the variant; Enum and DefaultCase are populated only for
// GeneratedEnumVariable.
type TranslatedVariable struct {
	Kind    VariableKind
	RawName string
	// Name is the member-role identifier used for the function parameter.
	Name string
	Doc  string
	// Default is the raw default value from the document.
	Default string
	// Enum is the generated declaration for GeneratedEnumVariable.
	Enum *EnumDecl
	// DefaultCase is the case name whose raw value equals Default. It is
	// empty if the document's default is missing from the allowed values,
	// in which case the parameter is emitted without a default.
	DefaultCase string
}

// Declaration returns the enum declaration to emit for this variable, or
// nil when the variable is a plain string.
func (v TranslatedVariable) Declaration() *EnumDecl {
	if v.Kind == GeneratedEnumVariable {
		return v.Enum
	}
	return nil
}

// ParamSignature returns the TypeScript parameter fragment for the typed
// accessor, e.g. `environment: Environment = Environment.Prod`. The enum
// type is referenced unqualified because the accessor lives inside the same
// namespace as the declaration.
func (v TranslatedVariable) ParamSignature() string {
	switch v.Kind {
	case GeneratedEnumVariable:
		if v.DefaultCase == "" {
			return fmt.Sprintf("%s: %s", v.Name, v.Enum.Name)
		}
		return fmt.Sprintf("%s: %s = %s.%s", v.Name, v.Enum.Name, v.Enum.Name, v.DefaultCase)
	default:
		return fmt.Sprintf("%s: string = %q", v.Name, v.Default)
	}
}

// Initializer returns the expression handed to the runtime template
// substitution call. Both variants pass the parameter itself: a string
// parameter carries its value directly and an enum member evaluates to its
// raw document value at runtime.
func (v TranslatedVariable) Initializer() string {
	return v.Name
}

// ServerNamespace groups the declarations generated for one server. Each
// server gets its own namespace, keyed by position ("Server1", "Server2"),
// so two servers may declare same-named variables with different allowed
// values without colliding.
type ServerNamespace struct {
	Name        string
	Doc         string
	URLTemplate string
	Variables   []TranslatedVariable
}

// LegacyParam is one parameter of the backward-compatible flat accessor.
// AllowedValues, when non-empty, is checked at runtime instead of through a
// generated type.
type LegacyParam struct {
	Name          string
	RawName       string
	Default       string
	AllowedValues []string
	Doc           string
}

// LegacyAccessor preserves the pre-namespace accessor signature: one flat
// function per server with untyped string parameters. It is emitted
// alongside the namespace and marked deprecated in its documentation.
type LegacyAccessor struct {
	Name        string
	URLTemplate string
	Params      []LegacyParam
}

// ServerTranslation pairs the two artifacts derived from one server
// definition. They are independent: a problem in one does not block the
// other.
type ServerTranslation struct {
	Namespace ServerNamespace
	Legacy    LegacyAccessor
}
