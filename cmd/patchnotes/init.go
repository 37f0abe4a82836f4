package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ersonp/patchnotes/internal/application/handlers"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize a patchnotes workspace",
		Long:  "Creates a .patchnotes directory with default configuration, the patch and media directories, and the local database.",
		Args:  cobra.NoArgs,
		RunE:  runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	base, err := workspaceDir()
	if err != nil {
		return err
	}

	result, err := handlers.NewInitHandler().Handle(base)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created %s\n", result.ConfigPath)
	fmt.Fprintf(out, "Patch pages go to %s\n", result.PatchDir)
	fmt.Fprintf(out, "Icons are read from %s\n", result.MediaDir)

	// Opening the dependencies creates the database and its schema.
	return withDeps(cmd.Context(), func(d *Deps) error {
		fmt.Fprintf(out, "Database ready at %s\n", d.Config.Storage.SQLite.Path)
		fmt.Fprintln(out, "Run 'patchnotes catalog refresh' with STEAM_API_KEY set to download the hero and item catalog.")
		return nil
	})
}
