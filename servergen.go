// Package servergen generates typed TypeScript server URL helpers from the
// servers section of an OpenAPI specification.
//
// Each server in the document becomes a namespace ("Server1", "Server2")
// containing a string enum per variable that declares an allowed-value set,
// and a type-safe url() accessor. A deprecated flat accessor with string
// parameters is emitted alongside for backward compatibility.
//
// Quick Start:
//
//	import servergen "github.com/blimu-dev/server-gen"
//
//	err := servergen.Generate(servergen.Options{
//		Spec:           "./openapi.yaml",
//		OutDir:         "./generated",
//		PackageName:    "my-api",
//		NamingStrategy: "idiomatic",
//	})
//
// Identifier naming is controlled by the naming strategy. The default
// "defensive" strategy escapes every character that cannot appear in an
// identifier and never alters letter case, so it is safe for any input and
// stable across releases. The opt-in "idiomatic" strategy produces
// conventional camel/Pascal-cased names for inputs made of letters, digits
// and common separators, and defers to the defensive strategy otherwise.
package servergen

import (
	"github.com/blimu-dev/server-gen/internal/cli"
)

// Options configure a generation run.
type Options struct {
	// Spec is a path to the OpenAPI document or an HTTP(S) URL.
	Spec string
	// OutDir is the output directory for the generated TypeScript files.
	OutDir string
	// PackageName names the generated package in emitted file headers.
	PackageName string
	// NamingStrategy is "defensive" (default) or "idiomatic".
	NamingStrategy string
	// FoldAccents strips diacritics during idiomatic naming.
	FoldAccents bool
	// FailOnNameCollision exits non-zero when enum case names collide.
	FailOnNameCollision bool
}

// Generate runs one generation pass with the given options.
func Generate(opts Options) error {
	return cli.RunGenerate(cli.RunGenerateParams{
		Fallback: cli.FallbackParams{
			Spec:                opts.Spec,
			OutDir:              opts.OutDir,
			PackageName:         opts.PackageName,
			NamingStrategy:      opts.NamingStrategy,
			FoldAccents:         opts.FoldAccents,
			FailOnNameCollision: opts.FailOnNameCollision,
		},
	})
}

// GenerateFromConfig runs a generation pass from a YAML configuration file.
func GenerateFromConfig(configPath string) error {
	return cli.RunGenerate(cli.RunGenerateParams{ConfigPath: configPath})
}

// ValidateSpec loads and validates an OpenAPI specification.
func ValidateSpec(spec string) error {
	return cli.RunValidate(spec)
}
