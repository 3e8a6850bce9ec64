package learnset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonklee99/PKHeX-Gengar/internal/shared"
)

const sample = `version: 1
learnsets:
  - species: Eevee
    moves: [Charm, Baby-Doll Eyes]
  - species: Qwilfish
    form: 1
    contexts: [Gen8a]
    moves: [Barb Barrage]
`

func TestParse(t *testing.T) {
	table, err := Parse([]byte(sample))
	require.NoError(t, err)
	assert.Equal(t, 2, table.Len())

	eevee := shared.SpeciesForm{Species: shared.Eevee}
	assert.True(t, table.CanLearn(shared.Gen6, eevee, shared.Charm))
	assert.True(t, table.CanLearn(shared.Gen9, eevee, shared.BabyDollEyes))
	assert.False(t, table.CanLearn(shared.Gen9, eevee, shared.DisarmingVoice))

	hisuian := shared.SpeciesForm{Species: shared.Qwilfish, Form: 1}
	assert.True(t, table.CanLearn(shared.Gen8a, hisuian, shared.BarbBarrage))
	assert.False(t, table.CanLearn(shared.Gen9, hisuian, shared.BarbBarrage))
	assert.False(t, table.CanLearn(shared.Gen8a, shared.SpeciesForm{Species: shared.Qwilfish}, shared.BarbBarrage))
}

func TestParseErrors(t *testing.T) {
	cases := map[string]string{
		"version":         "version: 3\n",
		"missing species": "version: 1\nlearnsets:\n  - moves: [Charm]\n",
		"bad move":        "version: 1\nlearnsets:\n  - species: Eevee\n    moves: [Flail Dance]\n",
		"bad context":     "version: 1\nlearnsets:\n  - species: Eevee\n    contexts: [Gen42]\n    moves: [Charm]\n",
		"unknown field":   "version: 1\nlearnsets:\n  - species: Eevee\n    tms: [Charm]\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "learnsets.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0644))

	table, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, table.Len())

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestAddDeduplicates(t *testing.T) {
	table := New()
	sf := shared.SpeciesForm{Species: shared.Dipplin}
	table.Add(shared.Gen9, sf, shared.DragonCheer, shared.DragonCheer)
	table.Add(shared.Gen9, sf, shared.DragonCheer)
	assert.Equal(t, shared.MoveList{shared.DragonCheer}, table.entries[key{sf: sf, ctx: shared.Gen9}])
}
