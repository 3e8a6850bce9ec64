package evolution

import (
	"fmt"

	"github.com/jonklee99/PKHeX-Gengar/internal/shared"
)

// Forms selected by the encryption constant branch.
const (
	MausholdFamilyOfThree shared.Form = 0
	MausholdFamilyOfFour  shared.Form = 1

	DudunsparceTwoSegment   shared.Form = 0
	DudunsparceThreeSegment shared.Form = 1
)

// IsEvolvedSpeciesFormRare derives the branch bit from a creature's
// encryption constant. The constant never changes, so the bit seen at
// evolution time is the bit seen now.
func IsEvolvedSpeciesFormRare(encryptionConstant uint32) bool {
	return encryptionConstant%100 == 0
}

// ResolveEvolvedForm returns the species and form a Tandemaus or Dunsparce
// evolves into for the given branch bit.
func ResolveEvolvedForm(species shared.Species, rare bool) (shared.SpeciesForm, error) {
	switch species {
	case shared.Tandemaus:
		return shared.SpeciesForm{Species: shared.Maushold, Form: mausholdForm(rare)}, nil
	case shared.Dunsparce:
		return shared.SpeciesForm{Species: shared.Dudunsparce, Form: dudunsparceForm(rare)}, nil
	default:
		return shared.SpeciesForm{}, fmt.Errorf("%w: %s", ErrInvalidBranchSpecies, species)
	}
}

// IsExpectedForm reports whether an evolved Maushold or Dudunsparce carries
// the form its branch bit dictates.
func IsExpectedForm(species shared.Species, form shared.Form, rare bool) (bool, error) {
	switch species {
	case shared.Maushold:
		return form == mausholdForm(rare), nil
	case shared.Dudunsparce:
		return form == dudunsparceForm(rare), nil
	default:
		return false, fmt.Errorf("%w: %s", ErrInvalidBranchSpecies, species)
	}
}

// IsBranchEvolution reports whether the evolved species' form comes from the
// encryption constant branch.
func IsBranchEvolution(species shared.Species) bool {
	return species == shared.Maushold || species == shared.Dudunsparce
}

// IsValidBranchForm checks an evolved Maushold or Dudunsparce against the
// form its encryption constant dictates. Creatures that were encountered
// already evolved, and all other species, pass.
func IsValidBranchForm(c Creature, enc Encounter) (bool, error) {
	if !IsBranchEvolution(c.Species) || enc.Species == c.Species {
		return true, nil
	}
	return IsExpectedForm(c.Species, c.Form, IsEvolvedSpeciesFormRare(c.EncryptionConstant))
}

func mausholdForm(rare bool) shared.Form {
	if rare {
		return MausholdFamilyOfThree
	}
	return MausholdFamilyOfFour
}

func dudunsparceForm(rare bool) shared.Form {
	if rare {
		return DudunsparceThreeSegment
	}
	return DudunsparceTwoSegment
}
