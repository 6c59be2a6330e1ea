package openapi

import (
	"regexp"
	"sort"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/blimu-dev/server-gen/pkg/ir"
)

var placeholderRe = regexp.MustCompile(`\{([^{}]+)\}`)

// CollectServers converts the document's servers list into IR definitions.
// kin-openapi stores server variables in a map, so a deterministic order is
// imposed here: variables appear in the order their placeholders occur in
// the URL template, followed by any declared-but-unreferenced variables
// sorted by name.
func CollectServers(doc *openapi3.T) []ir.ServerDefinition {
	defs := make([]ir.ServerDefinition, 0, len(doc.Servers))
	for _, srv := range doc.Servers {
		if srv == nil {
			continue
		}
		defs = append(defs, collectServer(srv))
	}
	return defs
}

func collectServer(srv *openapi3.Server) ir.ServerDefinition {
	def := ir.ServerDefinition{
		URLTemplate: srv.URL,
		Description: srv.Description,
	}

	seen := make(map[string]bool)
	for _, m := range placeholderRe.FindAllStringSubmatch(srv.URL, -1) {
		name := m[1]
		if seen[name] {
			continue
		}
		seen[name] = true
		if v, ok := srv.Variables[name]; ok && v != nil {
			def.Variables = append(def.Variables, convertVariable(name, v))
		}
	}

	var rest []string
	for name, v := range srv.Variables {
		if !seen[name] && v != nil {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	for _, name := range rest {
		def.Variables = append(def.Variables, convertVariable(name, srv.Variables[name]))
	}
	return def
}

func convertVariable(name string, v *openapi3.ServerVariable) ir.ServerVariable {
	sv := ir.ServerVariable{
		Name:        name,
		Default:     v.Default,
		Description: v.Description,
	}
	if len(v.Enum) > 0 {
		sv.Enum = append([]string(nil), v.Enum...)
	}
	return sv
}
