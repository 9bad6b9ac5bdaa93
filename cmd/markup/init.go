package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vango-dev/markup/internal/templates"
)

func initCmd() *cobra.Command {
	var (
		template    string
		title       string
		description string
	)

	cmd := &cobra.Command{
		Use:   "init [DIR]",
		Short: "Create a new project",
		Long: `Create markup.json, a pages directory and a stylesheet.

Templates:
  minimal   markup.json and a single page
  site      a few linked pages, a docs section and a stylesheet

Examples:
  markup init
  markup init my-site --template=site --title="My Site"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			abs, err := filepath.Abs(dir)
			if err != nil {
				return err
			}

			tmpl, err := templates.Get(template)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(abs, 0755); err != nil {
				return err
			}
			if err := tmpl.Create(abs, templates.Config{
				ProjectName: filepath.Base(abs),
				Title:       title,
				Description: description,
			}); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			success(out, "Created %s from the %s template", abs, tmpl.Name)
			info(out, "cd %s && markup serve --dev", dir)
			return nil
		},
	}

	cmd.Flags().StringVarP(&template, "template", "t", "minimal", "Project template")
	cmd.Flags().StringVar(&title, "title", "", "Document title (default: directory name)")
	cmd.Flags().StringVar(&description, "description", "", "Short description for the home page")

	return cmd
}
