package main

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vango-dev/markup/internal/errors"
	"github.com/vango-dev/markup/internal/gen"
	"github.com/vango-dev/markup/pkg/render"
)

func genCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen <type>",
		Short: "Generate code",
		Long: `Generate the module's generated sources.

Types:
  elements    Generate pkg/render/elements_gen.go from the element table

Examples:
  markup gen elements
  markup gen elements --check`,
	}

	cmd.AddCommand(genElementsCmd())
	return cmd
}

func genElementsCmd() *cobra.Command {
	var (
		root  string
		check bool
	)

	cmd := &cobra.Command{
		Use:   "elements",
		Short: "Generate the per-element Renderer methods",
		Long: `Write one Renderer method per entry of the element table to
pkg/render/elements_gen.go. Run it from anywhere inside the module.

With --check nothing is written; the command fails when the file is
out of date.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if root == "" {
				wd, err := os.Getwd()
				if err != nil {
					return err
				}
				root, err = moduleRoot(wd)
				if err != nil {
					return err
				}
			}

			src, err := gen.Elements(render.Elements())
			if err != nil {
				return err
			}
			file := filepath.Join(root, filepath.FromSlash(gen.ElementsFile))

			if check {
				current, err := os.ReadFile(file)
				if err != nil {
					return err
				}
				if !bytes.Equal(current, src) {
					return errors.New("E140").
						WithDetail(gen.ElementsFile + " is out of date").
						WithSuggestion("Run: markup gen elements")
				}
				success(cmd.OutOrStdout(), "%s is up to date", gen.ElementsFile)
				return nil
			}

			if err := os.WriteFile(file, src, 0644); err != nil {
				return err
			}
			success(cmd.OutOrStdout(), "Generated %s", gen.ElementsFile)
			return nil
		},
	}

	cmd.Flags().StringVar(&root, "root", "", "Module root (default: nearest directory with go.mod)")
	cmd.Flags().BoolVar(&check, "check", false, "Fail if the generated file is stale")

	return cmd
}

// moduleRoot returns the nearest directory at or above dir holding a
// go.mod.
func moduleRoot(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("E140").
				WithDetail("no go.mod found above the working directory").
				WithSuggestion("Run the command inside the markup module or pass --root")
		}
		dir = parent
	}
}
