package evolution

import (
	"fmt"

	"github.com/jonklee99/PKHeX-Gengar/internal/shared"
)

// Creature is the resolved state of the creature under check.
type Creature struct {
	Species            shared.Species `json:"species" yaml:"species"`
	Form               shared.Form    `json:"form" yaml:"form"`
	Context            shared.Context `json:"context" yaml:"context"`
	EncryptionConstant uint32         `json:"encryption_constant" yaml:"encryption_constant"`
}

// Format is the generation of the creature's data format.
func (c Creature) Format() uint8 { return c.Context.Generation() }

// Encounter is the original encounter the creature was obtained from.
type Encounter struct {
	Species shared.Species `json:"species" yaml:"species"`
	Form    shared.Form    `json:"form" yaml:"form"`
	Context shared.Context `json:"context" yaml:"context"`
}

// CheckInput rejects a creature or encounter that cannot be evaluated. A
// creature without a data format would otherwise pass as predating move
// evolutions.
func CheckInput(c Creature, enc Encounter) error {
	if c.Species == shared.SpeciesNone {
		return fmt.Errorf("%w: creature species", ErrIncompleteInput)
	}
	if enc.Species == shared.SpeciesNone {
		return fmt.Errorf("%w: encounter species", ErrIncompleteInput)
	}
	if c.Format() == 0 {
		return fmt.Errorf("%w: creature context", ErrIncompleteInput)
	}
	return nil
}

// LearnGroup is the game group whose learnsets are checked first.
type LearnGroup shared.Context

func (g LearnGroup) String() string { return shared.Context(g).String() }

// CurrentLearnGroup returns the learn group of the creature's current context.
func CurrentLearnGroup(c Creature) LearnGroup {
	return LearnGroup(c.Context)
}

// Oracle answers whether a move could have been known at some point of a
// (pruned) evolution history. Implementations must be safe for concurrent use.
type Oracle interface {
	CanKnowMove(enc Encounter, move shared.Move, history History, c Creature, head LearnGroup) bool
}

// OracleFunc adapts a function to Oracle.
type OracleFunc func(enc Encounter, move shared.Move, history History, c Creature, head LearnGroup) bool

func (f OracleFunc) CanKnowMove(enc Encounter, move shared.Move, history History, c Creature, head LearnGroup) bool {
	return f(enc, move, history, c, head)
}
