package servervars

import "fmt"

// Diagnostic reports that two distinct allowed values of one variable
// project to the same enum case name. The collision is not auto-resolved by
// suffixing, because silently renaming a case could mask an authoring error
// in the document; the later value is omitted from the generated enum and
// the fix is a naming override for one of the values.
type Diagnostic struct {
	// Server is the namespace name of the affected server, e.g. "Server1".
	Server string
	// Variable is the raw variable name from the document.
	Variable string
	// CaseName is the identifier both values projected to.
	CaseName string
	// Values are the two colliding raw allowed values, in document order.
	Values [2]string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf(
		"%s: variable %q: allowed values %q and %q both project to enum case %q; the later value was omitted, add a naming override to keep it",
		d.Server, d.Variable, d.Values[0], d.Values[1], d.CaseName,
	)
}
