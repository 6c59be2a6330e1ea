// Package cli wires configuration, document loading, translation and
// emission together for the command line entry points.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/blimu-dev/server-gen/pkg/config"
	"github.com/blimu-dev/server-gen/pkg/generator/typescript"
	"github.com/blimu-dev/server-gen/pkg/naming"
	"github.com/blimu-dev/server-gen/pkg/openapi"
	"github.com/blimu-dev/server-gen/pkg/servervars"
)

// FallbackParams configure a run when no config file is given.
type FallbackParams struct {
	Spec                string
	OutDir              string
	PackageName         string
	NamingStrategy      string
	FoldAccents         bool
	FailOnNameCollision bool
}

// RunGenerateParams are the inputs of the generate command.
type RunGenerateParams struct {
	ConfigPath string
	Fallback   FallbackParams
}

// RunValidate loads and validates an OpenAPI document.
func RunValidate(input string) error {
	return openapi.ValidateDocument(input)
}

// RunGenerate runs one generation pass from either a config file or the
// fallback flags.
func RunGenerate(p RunGenerateParams) error {
	var cfg *config.Config
	if p.ConfigPath == "" {
		if p.Fallback.Spec == "" || p.Fallback.OutDir == "" {
			return errors.New("either --config or both --input and --out must be provided")
		}
		cfg = &config.Config{
			Spec:        p.Fallback.Spec,
			OutDir:      absPath(p.Fallback.OutDir),
			PackageName: p.Fallback.PackageName,
			Naming: config.Naming{
				Strategy:    p.Fallback.NamingStrategy,
				FoldAccents: p.Fallback.FoldAccents,
			},
			FailOnNameCollision: p.Fallback.FailOnNameCollision,
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
	} else {
		loaded, err := config.Load(p.ConfigPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	return generateFromConfig(cfg)
}

func generateFromConfig(cfg *config.Config) error {
	doc, err := openapi.LoadDocument(cfg.Spec)
	if err != nil {
		return fmt.Errorf("load spec %s: %w", cfg.Spec, err)
	}
	if err := doc.Validate(context.Background()); err != nil {
		return fmt.Errorf("validate spec %s: %w", cfg.Spec, err)
	}

	strategy, err := naming.ParseStrategy(cfg.Naming.Strategy)
	if err != nil {
		return err
	}
	var opts []naming.Option
	if cfg.Naming.FoldAccents {
		opts = append(opts, naming.WithAccentFolding())
	}
	proj := naming.NewProjector(strategy, cfg.Naming.Overrides, opts...)

	servers := openapi.CollectServers(doc)
	translations, diags := servervars.New(proj).TranslateAll(servers)
	for _, d := range diags {
		fmt.Fprintln(os.Stderr, "warning:", d)
	}
	if cfg.FailOnNameCollision && len(diags) > 0 {
		return fmt.Errorf("%d enum case collision(s) reported", len(diags))
	}

	return typescript.New().Generate(cfg.OutDir, cfg.PackageName, translations)
}

func absPath(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	abs, _ := filepath.Abs(p)
	return abs
}
