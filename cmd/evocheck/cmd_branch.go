package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonklee99/PKHeX-Gengar/internal/evolution"
	"github.com/jonklee99/PKHeX-Gengar/internal/shared"
)

func newBranchCmd() *cobra.Command {
	var (
		ec   uint32
		form uint8
	)
	cmd := &cobra.Command{
		Use:   "branch <species>",
		Short: "Resolve or check an encryption-constant branch evolution",
		Long: `For Tandemaus or Dunsparce, print the form the evolution yields.
For Maushold or Dudunsparce with --form, report whether the form matches.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			species, ok := shared.ParseSpecies(args[0])
			if !ok {
				return fmt.Errorf("unknown species %q", args[0])
			}
			rare := evolution.IsEvolvedSpeciesFormRare(ec)
			out := cmd.OutOrStdout()

			if cmd.Flags().Changed("form") {
				expected, err := evolution.IsExpectedForm(species, shared.Form(form), rare)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "rare=%t expected=%t\n", rare, expected)
				return nil
			}

			evolved, err := evolution.ResolveEvolvedForm(species, rare)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "rare=%t evolves into %s (form %d)\n", rare, evolved.Species, evolved.Form)
			return nil
		},
	}
	cmd.Flags().Uint32Var(&ec, "ec", 0, "encryption constant")
	cmd.Flags().Uint8Var(&form, "form", 0, "stored form of the evolved species")
	_ = cmd.MarkFlagRequired("ec")
	return cmd
}
