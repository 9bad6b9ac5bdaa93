// Command markup renders JSON page documents to HTML.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	markuperrors "github.com/vango-dev/markup/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts globalOptions

	rootCmd := &cobra.Command{
		Use:   "markup",
		Short: "Render JSON page documents to HTML",
		Long: `markup renders pages written as JSON element trees to HTML.

A page is a JSON array such as ["h1", {"class": "title"}, "Hello"].
Pages live in the pages directory named in markup.json and can be
rendered one at a time, built into a static site, or served.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Path to markup.json (default: search upward from the working directory)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log debug output")
	rootCmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(
		initCmd(),
		renderCmd(&opts),
		buildCmd(&opts),
		serveCmd(&opts),
		genCmd(),
		versionCmd(),
	)
	return rootCmd
}

// printError prints markup errors in their long form.
func printError(w io.Writer, err error) {
	var me *markuperrors.MarkupError
	if errors.As(err, &me) {
		fmt.Fprintln(w, me.Format())
		return
	}
	fmt.Fprintf(w, "\033[31mError:\033[0m %s\n", err)
}

// success prints a success message.
func success(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "  %s\n", fmt.Sprintf(format, args...))
}
