package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonklee99/PKHeX-Gengar/internal/evolution"
	"github.com/jonklee99/PKHeX-Gengar/internal/shared"
)

type requirementResult struct {
	Species          string                `json:"species"`
	Requirement      evolution.Requirement `json:"requirement"`
	PreEvolution     string                `json:"pre_evolution,omitempty"`
	FormArgEvolution bool                  `json:"form_arg_evolution"`
}

func newRequirementCmd(st *cliState) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "requirement <species>",
		Short: "Show the move an evolved species needed to evolve",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			species, ok := shared.ParseSpecies(args[0])
			if !ok {
				return fmt.Errorf("unknown species %q", args[0])
			}
			res := requirementResult{
				Species:          species.String(),
				Requirement:      evolution.RequiredMove(species),
				FormArgEvolution: evolution.IsFormArgEvolution(species),
			}
			if pre := evolution.PreEvolution(species); !pre.IsEmpty() {
				res.PreEvolution = pre.String()
			}
			st.logger.Debug("requirement lookup", "species", res.Species, "kind", res.Requirement.Kind().String())

			out := cmd.OutOrStdout()
			if asJSON {
				return outputJSON(out, res)
			}
			fmt.Fprintf(out, "%s: %s\n", res.Species, res.Requirement)
			if res.PreEvolution != "" {
				fmt.Fprintf(out, "pre-evolution: %s\n", res.PreEvolution)
			}
			if res.FormArgEvolution {
				fmt.Fprintln(out, "form-arg evolution: yes")
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "output JSON")
	return cmd
}
