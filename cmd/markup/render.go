package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vango-dev/markup/pkg/jsonml"
	"github.com/vango-dev/markup/pkg/render"
)

func renderCmd(opts *globalOptions) *cobra.Command {
	var (
		document bool
		title    string
		path     string
	)

	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Render one page to standard output",
		Long: `Render a single JSON page and print the HTML.

By default only the page fragment is printed. With --document the
fragment is wrapped in the site's document shell from markup.json.

Examples:
  markup render pages/index.json
  markup render --document --title=Home pages/index.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProject(opts, true)
			if err != nil {
				return err
			}
			nodes, err := jsonml.ParseFile(args[0])
			if err != nil {
				return err
			}

			site := p.site()
			if title != "" {
				site.Title = title
			}
			build := jsonml.Build(nodes)
			if document {
				build = site.Page(build).Document
			}

			host := site.Host(map[string]any{"path": path})
			out, err := render.New(host, build, site.Options...).Render(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			if !document {
				fmt.Fprintln(cmd.OutOrStdout())
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&document, "document", "d", false, "Wrap the page in the document shell")
	cmd.Flags().StringVar(&title, "title", "", "Document title (default from markup.json)")
	cmd.Flags().StringVar(&path, "path", "/", "Value of the path ambient")

	return cmd
}
