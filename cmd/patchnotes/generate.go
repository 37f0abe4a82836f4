package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ersonp/patchnotes/internal/application/handlers"
)

func newGenerateCmd() *cobra.Command {
	var opts handlers.GenerateOptions

	cmd := &cobra.Command{
		Use:   "generate <url>...",
		Short: "Generate patch pages from patch posts",
		Long: `Fetches each patch post, sorts its changes into general, item and hero
sections, and writes an HTML page to its own directory under the patch
directory. A post that fails is reported and the remaining posts are still
processed.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Also write <ID>.json next to each page")
	cmd.Flags().BoolVar(&opts.FetchIcons, "icons", false, "Download missing hero and item icons first")
	cmd.Flags().BoolVar(&opts.RefreshCatalog, "refresh", false, "Refresh the catalog from the Steam Web API first")

	return cmd
}

func runGenerate(cmd *cobra.Command, urls []string, opts handlers.GenerateOptions) error {
	ctx := cmd.Context()

	return withDeps(ctx, func(d *Deps) error {
		results, err := d.GenerateHandler.Handle(ctx, urls, opts)
		if err != nil {
			return err
		}

		failed := printGenerateResults(cmd.OutOrStdout(), results)
		if failed > 0 {
			return fmt.Errorf("%d of %d posts failed", failed, len(urls))
		}
		return nil
	})
}
