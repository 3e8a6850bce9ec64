package oracles

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonklee99/PKHeX-Gengar/internal/evolution"
	"github.com/jonklee99/PKHeX-Gengar/internal/learnset"
	"github.com/jonklee99/PKHeX-Gengar/internal/shared"
)

const swinubLine = `
version: 1
learnsets:
  - species: Piloswine
    contexts: [Gen4]
    moves: [Ancient Power]
  - species: Sylveon
    moves: [Charm]
`

func piloswineHistory() evolution.History {
	return evolution.History{
		shared.Gen4: {
			{Species: shared.Mamoswine, LevelMin: 40, LevelMax: 40},
			{Species: shared.Piloswine, LevelMin: 33, LevelMax: 40},
		},
	}
}

func TestLearnsetOracleInline(t *testing.T) {
	oracle, err := New(Learnset, Config{Learnsets: []byte(swinubLine)})
	require.NoError(t, err)

	c := evolution.Creature{Species: shared.Mamoswine, Context: shared.Gen4}
	head := evolution.CurrentLearnGroup(c)
	history := piloswineHistory()

	assert.True(t, oracle.CanKnowMove(evolution.Encounter{}, shared.AncientPower, history, c, head))
	assert.False(t, oracle.CanKnowMove(evolution.Encounter{}, shared.Mimic, history, c, head))
}

func TestLearnsetOracleSearchesOtherContexts(t *testing.T) {
	table := learnset.New()
	table.Add(shared.Gen8, shared.SpeciesForm{Species: shared.Piloswine}, shared.AncientPower)
	oracle := NewLearnsetOracle(table)

	history := evolution.History{
		shared.Gen8: {{Species: shared.Piloswine}},
		shared.Gen9: {{Species: shared.Mamoswine}},
	}
	c := evolution.Creature{Species: shared.Mamoswine, Context: shared.Gen9}

	assert.True(t, oracle.CanKnowMove(evolution.Encounter{}, shared.AncientPower, history, c, evolution.CurrentLearnGroup(c)))
}

func TestLearnsetOracleContextMismatch(t *testing.T) {
	oracle, err := New(Learnset, Config{Learnsets: []byte(swinubLine)})
	require.NoError(t, err)

	history := evolution.History{shared.Gen8: {{Species: shared.Piloswine}}}
	c := evolution.Creature{Species: shared.Mamoswine, Context: shared.Gen8}

	assert.False(t, oracle.CanKnowMove(evolution.Encounter{}, shared.AncientPower, history, c, evolution.CurrentLearnGroup(c)))
}

func TestLearnsetOracleFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "learnsets.yaml")
	require.NoError(t, os.WriteFile(path, []byte(swinubLine), 0o600))

	oracle, err := New(Learnset, Config{LearnsetPath: path})
	require.NoError(t, err)

	history := evolution.History{shared.Gen9: {{Species: shared.Sylveon}}}
	c := evolution.Creature{Species: shared.Sylveon, Context: shared.Gen9}
	assert.True(t, oracle.CanKnowMove(evolution.Encounter{}, shared.Charm, history, c, evolution.CurrentLearnGroup(c)))
}

func TestLearnsetOracleMissingFile(t *testing.T) {
	_, err := New(Learnset, Config{LearnsetPath: filepath.Join(t.TempDir(), "absent.yaml")})
	assert.Error(t, err)
}

func TestLearnsetOracleRequiresSource(t *testing.T) {
	_, err := New(Learnset, Config{})
	assert.ErrorIs(t, err, ErrNoLearnsetSource)
}

func TestLearnsetOracleDrivesValidator(t *testing.T) {
	oracle, err := New(Learnset, Config{Learnsets: []byte(swinubLine)})
	require.NoError(t, err)
	v, err := evolution.NewValidator(oracle, evolution.PreEvolutionPruner{})
	require.NoError(t, err)

	c := evolution.Creature{Species: shared.Mamoswine, Context: shared.Gen4}
	enc := evolution.Encounter{Species: shared.Piloswine, Context: shared.Gen4}
	moves := []shared.MoveResult{{Move: shared.AncientPower, Method: shared.LearnLevelUp}}

	verdict := v.Evaluate(c, enc, piloswineHistory(), moves)
	assert.True(t, verdict.Valid)
	assert.Equal(t, evolution.ReasonMoveKnowable, verdict.Reason)
	assert.Equal(t, shared.AncientPower, verdict.Move)
}
