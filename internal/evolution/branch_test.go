package evolution

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonklee99/PKHeX-Gengar/internal/shared"
)

func TestIsEvolvedSpeciesFormRare(t *testing.T) {
	cases := []struct {
		ec   uint32
		want bool
	}{
		{0, true},
		{100, true},
		{4_294_967_200, true},
		{1, false},
		{99, false},
		{101, false},
		{0xFFFFFFFF, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, IsEvolvedSpeciesFormRare(tc.ec), "ec %d", tc.ec)
	}
}

func TestResolveEvolvedForm(t *testing.T) {
	cases := []struct {
		species shared.Species
		rare    bool
		want    shared.SpeciesForm
	}{
		{shared.Tandemaus, true, shared.SpeciesForm{Species: shared.Maushold, Form: MausholdFamilyOfThree}},
		{shared.Tandemaus, false, shared.SpeciesForm{Species: shared.Maushold, Form: MausholdFamilyOfFour}},
		{shared.Dunsparce, true, shared.SpeciesForm{Species: shared.Dudunsparce, Form: DudunsparceThreeSegment}},
		{shared.Dunsparce, false, shared.SpeciesForm{Species: shared.Dudunsparce, Form: DudunsparceTwoSegment}},
	}
	for _, tc := range cases {
		got, err := ResolveEvolvedForm(tc.species, tc.rare)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "%s rare=%t", tc.species, tc.rare)
	}
}

func TestResolvedFormsAreComplementary(t *testing.T) {
	for _, species := range []shared.Species{shared.Tandemaus, shared.Dunsparce} {
		rare, err := ResolveEvolvedForm(species, true)
		require.NoError(t, err)
		common, err := ResolveEvolvedForm(species, false)
		require.NoError(t, err)
		assert.NotEqual(t, rare, common)

		for _, bit := range []bool{true, false} {
			sf, err := ResolveEvolvedForm(species, bit)
			require.NoError(t, err)
			ok, err := IsExpectedForm(sf.Species, sf.Form, bit)
			require.NoError(t, err)
			assert.True(t, ok, "%s rare=%t", sf, bit)

			ok, err = IsExpectedForm(sf.Species, sf.Form, !bit)
			require.NoError(t, err)
			assert.False(t, ok, "%s rare=%t", sf, !bit)
		}
	}
}

func TestBranchResolversRejectOtherSpecies(t *testing.T) {
	// Evolved species are not valid resolver input and vice versa.
	for _, s := range []shared.Species{shared.Maushold, shared.Dudunsparce, shared.Eevee, shared.SpeciesNone} {
		_, err := ResolveEvolvedForm(s, true)
		assert.True(t, errors.Is(err, ErrInvalidBranchSpecies), "resolve %s: %v", s, err)
	}
	for _, s := range []shared.Species{shared.Tandemaus, shared.Dunsparce, shared.Sylveon, shared.SpeciesNone} {
		_, err := IsExpectedForm(s, 0, false)
		assert.True(t, errors.Is(err, ErrInvalidBranchSpecies), "expected form %s: %v", s, err)
	}
}

func TestIsValidBranchForm(t *testing.T) {
	cases := []struct {
		name string
		c    Creature
		enc  Encounter
		want bool
	}{
		{
			name: "rare maushold family of three",
			c:    Creature{Species: shared.Maushold, Form: MausholdFamilyOfThree, Context: shared.Gen9, EncryptionConstant: 300},
			enc:  Encounter{Species: shared.Tandemaus},
			want: true,
		},
		{
			name: "common ec cannot be family of three",
			c:    Creature{Species: shared.Maushold, Form: MausholdFamilyOfThree, Context: shared.Gen9, EncryptionConstant: 301},
			enc:  Encounter{Species: shared.Tandemaus},
			want: false,
		},
		{
			name: "three segment needs rare ec",
			c:    Creature{Species: shared.Dudunsparce, Form: DudunsparceThreeSegment, Context: shared.Gen9, EncryptionConstant: 7},
			enc:  Encounter{Species: shared.Dunsparce},
			want: false,
		},
		{
			name: "encountered evolved keeps its form",
			c:    Creature{Species: shared.Dudunsparce, Form: DudunsparceThreeSegment, Context: shared.Gen9, EncryptionConstant: 7},
			enc:  Encounter{Species: shared.Dudunsparce},
			want: true,
		},
		{
			name: "other species pass",
			c:    Creature{Species: shared.Sylveon, Context: shared.Gen9, EncryptionConstant: 7},
			enc:  Encounter{Species: shared.Eevee},
			want: true,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := IsValidBranchForm(tc.c, tc.enc)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
