package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jonklee99/PKHeX-Gengar/internal/evolution"
	"github.com/jonklee99/PKHeX-Gengar/internal/evolution/oracles"
	"github.com/jonklee99/PKHeX-Gengar/internal/shared"
)

var errVerdictInvalid = errors.New("evolution is not valid")

// caseFile describes one creature to check. Learnsets is resolved relative to
// the case file. Knowable switches to the static oracle.
type caseFile struct {
	Creature  evolution.Creature  `yaml:"creature"`
	Encounter evolution.Encounter `yaml:"encounter"`
	History   evolution.History   `yaml:"history"`
	Moves     []shared.MoveResult `yaml:"moves"`
	Learnsets string              `yaml:"learnsets"`
	Knowable  []shared.Move       `yaml:"knowable"`
}

type validateResult struct {
	Species         string            `json:"species"`
	Verdict         evolution.Verdict `json:"verdict"`
	BranchFormValid bool              `json:"branch_form_valid"`
}

func loadCase(path string) (caseFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return caseFile{}, err
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var cf caseFile
	if err := dec.Decode(&cf); err != nil {
		return caseFile{}, fmt.Errorf("parse case %s: %w", path, err)
	}
	if err := evolution.CheckInput(cf.Creature, cf.Encounter); err != nil {
		return caseFile{}, fmt.Errorf("case %s: %w", path, err)
	}
	if cf.Learnsets != "" && !filepath.IsAbs(cf.Learnsets) {
		cf.Learnsets = filepath.Join(filepath.Dir(path), cf.Learnsets)
	}
	return cf, nil
}

func (cf caseFile) oracle(st *cliState) (evolution.Oracle, error) {
	if len(cf.Knowable) > 0 {
		return oracles.New(oracles.Static, oracles.Config{Moves: cf.Knowable})
	}
	path := cf.Learnsets
	if path == "" {
		path = st.cfg.Learnsets
	}
	return oracles.New(oracles.Learnset, oracles.Config{LearnsetPath: path})
}

func newValidateCmd(st *cliState) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "validate <case.yaml>",
		Short: "Check whether a creature's evolution satisfied its move requirement",
		Long: `Reads a YAML case with creature, encounter, history and moves.
Exits 1 when the evolution is not valid.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cf, err := loadCase(args[0])
			if err != nil {
				return err
			}
			oracle, err := cf.oracle(st)
			if err != nil {
				return err
			}
			v, err := evolution.NewValidator(oracle, evolution.PreEvolutionPruner{})
			if err != nil {
				return err
			}

			verdict := v.Evaluate(cf.Creature, cf.Encounter, cf.History, cf.Moves)
			branchOK, err := evolution.IsValidBranchForm(cf.Creature, cf.Encounter)
			if err != nil {
				return err
			}
			st.logger.Debug("case evaluated", "case", args[0], "reason", verdict.Reason.String())

			res := validateResult{
				Species:         cf.Creature.Species.String(),
				Verdict:         verdict,
				BranchFormValid: branchOK,
			}
			out := cmd.OutOrStdout()
			if asJSON {
				if err := outputJSON(out, res); err != nil {
					return err
				}
			} else {
				printVerdict(cmd, res)
			}
			if !verdict.Valid || !branchOK {
				return errVerdictInvalid
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "output JSON")
	return cmd
}

func printVerdict(cmd *cobra.Command, res validateResult) {
	out := cmd.OutOrStdout()
	status := "VALID"
	if !res.Verdict.Valid {
		status = "INVALID"
	}
	fmt.Fprintf(out, "%s: %s (%s)\n", res.Species, status, res.Verdict.Reason)
	if !res.Verdict.Requirement.IsNone() {
		fmt.Fprintf(out, "requires: %s\n", res.Verdict.Requirement)
	}
	if res.Verdict.Move != shared.MoveNone {
		fmt.Fprintf(out, "knowable: %s\n", res.Verdict.Move)
	}
	if !res.BranchFormValid {
		fmt.Fprintln(out, "branch form: mismatch")
	}
}
