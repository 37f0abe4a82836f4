package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ersonp/patchnotes/internal/domain/entities"
)

func newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the hero and item catalog",
	}

	cmd.AddCommand(
		newCatalogRefreshCmd(),
		newCatalogShowCmd(),
	)

	return cmd
}

func newCatalogRefreshCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Download the catalog from the Steam Web API",
		Long:  "Replaces the local catalog snapshot with the current hero and item lists. Requires steam.api_key or STEAM_API_KEY.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return withDeps(ctx, func(d *Deps) error {
				summary, err := d.CatalogHandler.Refresh(ctx)
				if err != nil {
					return err
				}
				printCatalogSummary(cmd.OutOrStdout(), summary)
				return nil
			})
		},
	}
}

func newCatalogShowCmd() *cobra.Command {
	var (
		category string
		keys     bool
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "List the cataloged heroes and items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !contains(validCategories, category) {
				return fmt.Errorf("invalid category %q, valid categories: %v", category, validCategories)
			}

			ctx := cmd.Context()
			return withDeps(ctx, func(d *Deps) error {
				records, summary, err := d.CatalogHandler.Show(ctx, categoryFromFlag(category))
				if err != nil {
					return err
				}
				printCatalogRecords(cmd.OutOrStdout(), records, keys)
				printCatalogSummary(cmd.OutOrStdout(), summary)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "all", "Category to list (all, heroes, items)")
	cmd.Flags().BoolVarP(&keys, "keys", "k", false, "Show canonical keys")

	return cmd
}

func categoryFromFlag(flag string) entities.Category {
	switch flag {
	case "heroes":
		return entities.CategoryHero
	case "items":
		return entities.CategoryItem
	default:
		return entities.CategoryNone
	}
}
