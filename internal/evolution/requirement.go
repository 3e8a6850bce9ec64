package evolution

import (
	"encoding/json"
	"strings"

	"github.com/jonklee99/PKHeX-Gengar/internal/shared"
)

// RequirementKind tags what an evolution demands of the pre-evolution's moves.
type RequirementKind uint8

const (
	// RequirementNone means the evolution is not gated by a move.
	RequirementNone RequirementKind = iota
	// RequirementMove means one specific move must be known.
	RequirementMove
	// RequirementAnyOf means any one of a list of moves is enough.
	RequirementAnyOf
)

func (k RequirementKind) String() string {
	switch k {
	case RequirementNone:
		return "none"
	case RequirementMove:
		return "move"
	case RequirementAnyOf:
		return "any_of"
	default:
		return "?"
	}
}

// Requirement is the move condition attached to an evolved species. The zero
// value is RequirementNone.
type Requirement struct {
	kind  RequirementKind
	moves shared.MoveList
}

func NoRequirement() Requirement { return Requirement{} }

func SingleMove(m shared.Move) Requirement {
	return Requirement{kind: RequirementMove, moves: shared.MoveList{m}}
}

// AnyOf keeps the candidates in the given order; that order is the order the
// oracle is consulted in.
func AnyOf(moves ...shared.Move) Requirement {
	return Requirement{kind: RequirementAnyOf, moves: shared.MoveList(moves).Clone()}
}

func (r Requirement) Kind() RequirementKind { return r.kind }

func (r Requirement) IsNone() bool { return r.kind == RequirementNone }

// Move returns the single required move.
func (r Requirement) Move() (shared.Move, bool) {
	if r.kind != RequirementMove {
		return shared.MoveNone, false
	}
	return r.moves[0], true
}

// Candidates returns every move that satisfies the requirement.
func (r Requirement) Candidates() shared.MoveList {
	return r.moves.Clone()
}

func (r Requirement) String() string {
	switch r.kind {
	case RequirementMove:
		return r.moves[0].String()
	case RequirementAnyOf:
		return "any of " + strings.Join(r.moves.Strings(), ", ")
	default:
		return "none"
	}
}

func (r Requirement) MarshalJSON() ([]byte, error) {
	out := struct {
		Kind  string   `json:"kind"`
		Moves []uint16 `json:"moves,omitempty"`
		Names []string `json:"names,omitempty"`
	}{Kind: r.kind.String()}
	for _, m := range r.moves {
		out.Moves = append(out.Moves, uint16(m))
		out.Names = append(out.Names, m.String())
	}
	return json.Marshal(out)
}
