package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/JaimeStill/curator/internal/infrastructure"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the seeded fraud type registry",
	RunE:  runTypes,
}

func runTypes(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	registry, err := loadRegistry(cmd.Context(), cfg.Curator.SeedFile, infrastructure.NewLogger())
	if err != nil {
		return err
	}

	types, err := registry.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("list fraud types: %w", err)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tDESCRIPTION")
	for _, t := range types {
		fmt.Fprintf(w, "%s\t%s\n", t.Name, t.Description)
	}
	return w.Flush()
}
