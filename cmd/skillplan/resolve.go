package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/skillplan/internal/taxonomy"
)

var resolveCommand = &cobra.Command{
	Use:   "resolve TOKEN...",
	Short: "Resolve a free-form token or phrase to its canonical skill",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runResolve,
}

var resolveTaxonomy string

// resolution is the CLI output shape for a resolved token.
type resolution struct {
	Token    string  `json:"token"`
	Skill    string  `json:"skill"`
	Category string  `json:"category"`
	Weight   float64 `json:"weight"`
	Trending bool    `json:"trending,omitempty"`
	Match    string  `json:"match"`
}

func init() {
	resolveCommand.Flags().StringVarP(&resolveTaxonomy, "taxonomy", "t", "", "Path to a taxonomy definition replacing the built-in one")
	rootCmd.AddCommand(resolveCommand)
}

func runResolve(cmd *cobra.Command, args []string) error {
	registry, err := loadRegistry(resolveTaxonomy)
	if err != nil {
		return err
	}

	token := strings.Join(args, " ")
	sk, kind := registry.Resolve(token)
	if sk == nil {
		return fmt.Errorf("no canonical skill matches %q", token)
	}

	match := "canonical"
	if kind == taxonomy.MatchAlias {
		match = "alias"
	}
	out, err := json.MarshalIndent(resolution{
		Token:    token,
		Skill:    sk.Name,
		Category: string(sk.Category),
		Weight:   sk.Weight,
		Trending: sk.Trending,
		Match:    match,
	}, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
