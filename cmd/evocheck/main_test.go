package main

import (
	"bytes"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonklee99/PKHeX-Gengar/internal/evolution"
	"github.com/jonklee99/PKHeX-Gengar/internal/evolution/rules"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRequirementCommand(t *testing.T) {
	out, err := run(t, "requirement", "Sylveon")
	require.NoError(t, err)
	assert.Contains(t, out, "Sylveon: any of Charm, Baby-Doll Eyes, Disarming Voice")
	assert.Contains(t, out, "pre-evolution: Eevee")

	out, err = run(t, "requirement", "Wyrdeer", "--json")
	require.NoError(t, err)
	var res struct {
		Species          string `json:"species"`
		PreEvolution     string `json:"pre_evolution"`
		FormArgEvolution bool   `json:"form_arg_evolution"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "Wyrdeer", res.Species)
	assert.Equal(t, "Stantler", res.PreEvolution)
	assert.True(t, res.FormArgEvolution)
}

func TestRequirementCommandUnknownSpecies(t *testing.T) {
	_, err := run(t, "requirement", "Missingno")
	assert.Error(t, err)
}

func TestBranchCommand(t *testing.T) {
	out, err := run(t, "branch", "Tandemaus", "--ec", "500")
	require.NoError(t, err)
	assert.Equal(t, "rare=true evolves into Maushold (form 0)\n", out)

	out, err = run(t, "branch", "Dunsparce", "--ec", "501")
	require.NoError(t, err)
	assert.Equal(t, "rare=false evolves into Dudunsparce (form 0)\n", out)

	out, err = run(t, "branch", "Maushold", "--ec", "501", "--form", "1")
	require.NoError(t, err)
	assert.Equal(t, "rare=false expected=true\n", out)
}

func TestBranchCommandRejectsOtherSpecies(t *testing.T) {
	_, err := run(t, "branch", "Eevee", "--ec", "100")
	assert.Error(t, err)

	_, err = run(t, "branch", "Tandemaus")
	assert.Error(t, err, "--ec is required")
}

func TestValidateCommand(t *testing.T) {
	cases := []struct {
		file    string
		invalid bool
		want    string
	}{
		{file: "mamoswine_valid.yaml", want: "Mamoswine: VALID (move_knowable)"},
		{file: "ambipom_egg_only.yaml", invalid: true, want: "Ambipom: INVALID (no_move_slot)"},
		{file: "sylveon_static.yaml", want: "knowable: Disarming Voice"},
		{file: "maushold_wrong_form.yaml", invalid: true, want: "branch form: mismatch"},
	}
	for _, tc := range cases {
		t.Run(tc.file, func(t *testing.T) {
			out, err := run(t, "validate", filepath.Join("testdata", tc.file))
			if tc.invalid {
				assert.ErrorIs(t, err, errVerdictInvalid)
			} else {
				assert.NoError(t, err)
			}
			assert.Contains(t, out, tc.want)
		})
	}
}

func TestValidateCommandJSON(t *testing.T) {
	out, err := run(t, "validate", "--json", filepath.Join("testdata", "sylveon_static.yaml"))
	require.NoError(t, err)

	var res struct {
		Verdict struct {
			Valid  bool   `json:"valid"`
			Reason string `json:"reason"`
		} `json:"verdict"`
		BranchFormValid bool `json:"branch_form_valid"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.True(t, res.Verdict.Valid)
	assert.Equal(t, "move_knowable", res.Verdict.Reason)
	assert.True(t, res.BranchFormValid)
}

func TestValidateCommandBadCase(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("creature: {species: Mamoswine}\nunknown: 1\n"), 0o600))

	_, err := run(t, "validate", bad)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, errVerdictInvalid)

	_, err = run(t, "validate", filepath.Join(dir, "absent.yaml"))
	assert.Error(t, err)
}

func TestValidateCommandRejectsMissingContext(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ambipom.yaml")
	data := `creature: {species: Ambipom}
encounter: {species: Aipom}
moves:
  - {move: Double Hit, method: EggMove}
knowable: [Double Hit]
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	out, err := run(t, "validate", path)
	require.Error(t, err)
	assert.ErrorIs(t, err, evolution.ErrIncompleteInput)
	assert.NotErrorIs(t, err, errVerdictInvalid)
	assert.NotContains(t, out, "VALID")
}

func TestRulesVerifyEmbedded(t *testing.T) {
	out, err := run(t, "rules", "verify", "--json")
	require.NoError(t, err)

	var res rulesVerifyResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, "embedded", res.Source)
	assert.Equal(t, 16, res.Rules)
	assert.Equal(t, len(rules.MoveEvolutions), res.ByteSize)
	assert.Equal(t, fmt.Sprintf("sha256:%x", sha256.Sum256(rules.MoveEvolutions)), res.Hash)
}

func TestRulesVerifyRejectsBrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: 1\nevolutions:\n  - species: Sylveon\n    move: Charm\n"), 0o600))

	_, err := run(t, "rules", "verify", "--file", path)
	assert.Error(t, err)
}

func TestRulesDump(t *testing.T) {
	out, err := run(t, "rules", "dump")
	require.NoError(t, err)
	assert.Equal(t, string(rules.MoveEvolutions), out)

	out, err = run(t, "rules", "dump", "--json")
	require.NoError(t, err)
	var views []ruleView
	require.NoError(t, json.Unmarshal([]byte(out), &views))
	require.Len(t, views, 16)
	for _, v := range views {
		if v.Species == "Overqwil" {
			assert.Equal(t, "Qwilfish-1", v.PreEvolution)
		}
	}
}
