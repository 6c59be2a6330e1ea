// Package typescript renders translated server declarations into TypeScript
// source files.
package typescript

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/blimu-dev/server-gen/pkg/ir"
)

//go:embed templates/*
var templatesFS embed.FS

// Generator writes the servers module and its runtime helper.
type Generator struct{}

// New creates a TypeScript generator.
func New() *Generator {
	return &Generator{}
}

// Generate renders servers.ts and runtime.ts into outDir.
func (g *Generator) Generate(outDir, packageName string, servers []ir.ServerTranslation) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	funcMap := template.FuncMap{
		"tsString": func(s string) string { return fmt.Sprintf("%q", s) },
	}
	for k, v := range sprig.FuncMap() {
		funcMap[k] = v
	}

	data := map[string]any{
		"PackageName": packageName,
		"Servers":     servers,
	}
	if err := renderFile("servers.ts.gotmpl", filepath.Join(outDir, "servers.ts"), funcMap, data); err != nil {
		return err
	}
	return renderFile("runtime.ts.gotmpl", filepath.Join(outDir, "runtime.ts"), funcMap, data)
}

// renderFile renders a template file to the target path.
func renderFile(templateName, targetPath string, funcMap template.FuncMap, data map[string]any) error {
	tmplContent, err := templatesFS.ReadFile("templates/" + templateName)
	if err != nil {
		return fmt.Errorf("failed to read template %s: %w", templateName, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcMap).Parse(string(tmplContent))
	if err != nil {
		return fmt.Errorf("failed to parse template %s: %w", templateName, err)
	}

	file, err := os.Create(targetPath)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", targetPath, err)
	}
	defer file.Close()

	if err := tmpl.Execute(file, data); err != nil {
		return fmt.Errorf("failed to execute template %s: %w", templateName, err)
	}
	return nil
}
