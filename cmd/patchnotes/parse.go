package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ersonp/patchnotes/internal/application/handlers"
	"github.com/ersonp/patchnotes/internal/infrastructure/render"
)

type parseFlags struct {
	format  string
	url     string
	output  string
	render  bool
	refresh bool
}

func newParseCmd() *cobra.Command {
	var flags parseFlags

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a saved patch post",
		Long: `Parses a patch post saved as text, JSON or HTML and prints its JSON mirror.

A text post starts with the title line, then a run of '=' and the bullet list.
Optional "Date:" and "URL:" lines may come first. Saved HTML pages need --url
so the right site layout can be used.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", "auto", "Input format (auto, text, json, html)")
	cmd.Flags().StringVarP(&flags.url, "url", "u", "", "Source URL of the post")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().BoolVar(&flags.render, "render", false, "Also write the HTML page to the patch directory")
	cmd.Flags().BoolVar(&flags.refresh, "refresh", false, "Refresh the catalog from the Steam Web API first")

	return cmd
}

func runParse(cmd *cobra.Command, path string, flags parseFlags) error {
	if !contains(validFormats, flags.format) {
		return fmt.Errorf("invalid format %q, valid formats: %v", flags.format, validFormats)
	}

	ctx := cmd.Context()

	return withDeps(ctx, func(d *Deps) error {
		record, err := d.ParseHandler.Handle(ctx, path, handlers.ParseOptions{
			Format:         flags.format,
			URL:            flags.url,
			RefreshCatalog: flags.refresh,
		})
		if err != nil {
			return err
		}

		if flags.render {
			written, err := d.Output.Write(ctx, record, handlers.WriteOptions{})
			if err != nil {
				return fmt.Errorf("writing page: %w", err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s\n", written.Page)
		}

		var w io.Writer = cmd.OutOrStdout()
		if flags.output != "" {
			f, err := os.Create(flags.output)
			if err != nil {
				return fmt.Errorf("creating output file: %w", err)
			}
			defer f.Close()
			w = f
		}

		return render.JSONExporter{}.Export(w, record)
	})
}
