package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	cli "github.com/blimu-dev/server-gen/internal/cli"
)

func main() {
	root := &cobra.Command{
		Use:   "server-gen",
		Short: "Generate typed server URL helpers from OpenAPI specs",
	}

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newValidateCmd())

	if err := root.Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func newGenerateCmd() *cobra.Command {
	var configPath string
	var input string
	var outDir string
	var packageName string
	var strategy string
	var foldAccents bool
	var failOnCollision bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate server URL declarations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunGenerate(cli.RunGenerateParams{
				ConfigPath: configPath,
				Fallback: cli.FallbackParams{
					Spec:                input,
					OutDir:              outDir,
					PackageName:         packageName,
					NamingStrategy:      strategy,
					FoldAccents:         foldAccents,
					FailOnNameCollision: failOnCollision,
				},
			})
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to servergen.yaml config")
	// Fallback flags for running without a config file
	cmd.Flags().StringVar(&input, "input", "", "OpenAPI spec file (yaml/json) or URL")
	cmd.Flags().StringVar(&outDir, "out", "", "Output directory")
	cmd.Flags().StringVar(&packageName, "package-name", "", "Package name for generated file headers")
	cmd.Flags().StringVar(&strategy, "naming-strategy", "", "Naming strategy: defensive (default) or idiomatic")
	cmd.Flags().BoolVar(&foldAccents, "fold-accents", false, "Strip diacritics during idiomatic naming")
	cmd.Flags().BoolVar(&failOnCollision, "fail-on-name-collision", false, "Exit non-zero when enum case names collide")

	return cmd
}

func newValidateCmd() *cobra.Command {
	var input string
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate an OpenAPI spec",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunValidate(input)
		},
	}
	cmd.Flags().StringVar(&input, "input", "", "OpenAPI spec file (yaml/json) or URL")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}
