package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/skillplan/internal/taxonomy"
)

var checkTaxonomyCommand = &cobra.Command{
	Use:   "check-taxonomy FILE",
	Short: "Validate a taxonomy definition file",
	Long: `Validates a taxonomy definition against the taxonomy JSON Schema and checks
the registry build invariants: no alias may map to two different canonical
skills. A taxonomy that fails these checks must not be served.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheckTaxonomy,
}

func init() {
	rootCmd.AddCommand(checkTaxonomyCommand)
}

func runCheckTaxonomy(cmd *cobra.Command, args []string) error {
	registry, err := taxonomy.LoadFile(args[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "OK: %s defines %d canonical skills\n", args[0], registry.Len())
	return nil
}
