// Package servervars translates server URL templates and their variable
// definitions into declaration IR: a namespace with generated enums and a
// typed url() accessor per server, plus the backward-compatible flat
// accessor. Translation never fails; anything suspicious is accumulated as
// a diagnostic so a caller sees every problem in a document in one pass.
package servervars

import (
	"fmt"
	"sync"

	"github.com/blimu-dev/server-gen/pkg/ir"
	"github.com/blimu-dev/server-gen/pkg/naming"
)

// Translator turns server definitions into declaration IR. It holds only a
// read-only projector, so one translator may serve concurrent translations.
type Translator struct {
	proj *naming.Projector
}

// New returns a translator that names every emitted declaration through
// proj.
func New(proj *naming.Projector) *Translator {
	return &Translator{proj: proj}
}

// TranslateAll translates the document's servers, one goroutine per server.
// Results and diagnostics are returned in original server order regardless
// of scheduling, so output and diagnostics stay deterministic.
func (t *Translator) TranslateAll(defs []ir.ServerDefinition) ([]ir.ServerTranslation, []Diagnostic) {
	out := make([]ir.ServerTranslation, len(defs))
	perServer := make([][]Diagnostic, len(defs))
	var wg sync.WaitGroup
	for i, def := range defs {
		wg.Add(1)
		go func(i int, def ir.ServerDefinition) {
			defer wg.Done()
			out[i], perServer[i] = t.TranslateServer(i, def)
		}(i, def)
	}
	wg.Wait()

	var diags []Diagnostic
	for _, d := range perServer {
		diags = append(diags, d...)
	}
	return out, diags
}

// TranslateServer translates the server at the given zero-based position.
// The namespace and the legacy accessor are derived independently from the
// same definition.
func (t *Translator) TranslateServer(index int, def ir.ServerDefinition) (ir.ServerTranslation, []Diagnostic) {
	nsName := fmt.Sprintf("Server%d", index+1)

	var diags []Diagnostic
	vars := make([]ir.TranslatedVariable, 0, len(def.Variables))
	for _, sv := range def.Variables {
		tv, d := t.translateVariable(nsName, sv)
		vars = append(vars, tv)
		diags = append(diags, d...)
	}

	return ir.ServerTranslation{
		Namespace: ir.ServerNamespace{
			Name:        nsName,
			Doc:         def.Description,
			URLTemplate: def.URLTemplate,
			Variables:   vars,
		},
		Legacy: t.legacyAccessor(index, def),
	}, diags
}

func (t *Translator) translateVariable(nsName string, sv ir.ServerVariable) (ir.TranslatedVariable, []Diagnostic) {
	tv := ir.TranslatedVariable{
		RawName: sv.Name,
		Name:    t.proj.Project(sv.Name, naming.RoleMemberName),
		Doc:     sv.Description,
		Default: sv.Default,
	}
	if len(sv.Enum) == 0 {
		tv.Kind = ir.RawStringVariable
		return tv, nil
	}

	tv.Kind = ir.GeneratedEnumVariable
	enum := &ir.EnumDecl{
		Name: t.proj.Project(sv.Name, naming.RoleTypeName),
		Doc:  sv.Description,
	}

	var diags []Diagnostic
	seen := make(map[string]string, len(sv.Enum))
	for _, val := range sv.Enum {
		caseName := t.proj.Project(val, naming.RoleEnumCase)
		if prev, dup := seen[caseName]; dup {
			// Duplicate case names cannot legally coexist in one enum. The
			// later value is omitted and reported; the caller decides
			// whether that fails the run.
			diags = append(diags, Diagnostic{
				Server:   nsName,
				Variable: sv.Name,
				CaseName: caseName,
				Values:   [2]string{prev, val},
			})
			continue
		}
		seen[caseName] = val
		enum.Cases = append(enum.Cases, ir.EnumCase{Name: caseName, RawValue: val})
		if val == sv.Default {
			tv.DefaultCase = caseName
		}
	}
	tv.Enum = enum
	return tv, diags
}

// legacyAccessor builds the flat pre-namespace accessor: string parameters,
// literal string defaults, allowed values forwarded for runtime checking.
func (t *Translator) legacyAccessor(index int, def ir.ServerDefinition) ir.LegacyAccessor {
	acc := ir.LegacyAccessor{
		Name:        fmt.Sprintf("server%dURL", index+1),
		URLTemplate: def.URLTemplate,
	}
	for _, sv := range def.Variables {
		p := ir.LegacyParam{
			Name:    t.proj.Project(sv.Name, naming.RoleMemberName),
			RawName: sv.Name,
			Default: sv.Default,
			Doc:     sv.Description,
		}
		if len(sv.Enum) > 0 {
			p.AllowedValues = append([]string(nil), sv.Enum...)
		}
		acc.Params = append(acc.Params, p)
	}
	return acc
}
