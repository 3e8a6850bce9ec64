package evolution

import (
	"github.com/jonklee99/PKHeX-Gengar/internal/shared"
)

// Move-gated evolutions first appeared in generation 4.
const minMoveEvolutionGeneration = 4

// Reason names the step that decided a verdict.
type Reason uint8

const (
	ReasonPredatesMoveEvolution Reason = iota
	ReasonUnevolved
	ReasonNotMoveEvolution
	ReasonNoMoveSlot
	ReasonMoveKnowable
	ReasonMoveNotKnowable
)

func (r Reason) String() string {
	switch r {
	case ReasonPredatesMoveEvolution:
		return "predates_move_evolution"
	case ReasonUnevolved:
		return "unevolved"
	case ReasonNotMoveEvolution:
		return "not_move_evolution"
	case ReasonNoMoveSlot:
		return "no_move_slot"
	case ReasonMoveKnowable:
		return "move_knowable"
	case ReasonMoveNotKnowable:
		return "move_not_knowable"
	default:
		return "unknown"
	}
}

func (r Reason) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// Verdict is the outcome of a move-evolution check. Move is the candidate the
// oracle accepted, when there was one.
type Verdict struct {
	Valid       bool        `json:"valid"`
	Reason      Reason      `json:"reason"`
	Requirement Requirement `json:"requirement"`
	Move        shared.Move `json:"move,omitempty"`
}

// Validator decides whether a move-gated evolution could have happened. It
// holds no mutable state and is safe for concurrent use when its oracle and
// pruner are.
type Validator struct {
	registry *Registry
	oracle   Oracle
	pruner   Pruner
}

// NewValidator builds a validator over the embedded rule table.
func NewValidator(oracle Oracle, pruner Pruner) (*Validator, error) {
	if oracle == nil {
		return nil, ErrNilOracle
	}
	if pruner == nil {
		return nil, ErrNilPruner
	}
	return &Validator{registry: defaultRegistry, oracle: oracle, pruner: pruner}, nil
}

// WithRegistry returns a copy of the validator using another rule table.
func (v *Validator) WithRegistry(reg *Registry) *Validator {
	cp := *v
	if reg != nil {
		cp.registry = reg
	}
	return &cp
}

// Registry returns the rule table in use.
func (v *Validator) Registry() *Registry { return v.registry }

// IsValidEvolutionWithMove reports whether the creature's current species is
// consistent with any move its evolution required. True when the check does
// not apply.
func (v *Validator) IsValidEvolutionWithMove(c Creature, enc Encounter, history History, moves []shared.MoveResult) bool {
	return v.Evaluate(c, enc, history, moves).Valid
}

// Evaluate is IsValidEvolutionWithMove with the deciding step attached.
func (v *Validator) Evaluate(c Creature, enc Encounter, history History, moves []shared.MoveResult) Verdict {
	if c.Format() < minMoveEvolutionGeneration {
		return Verdict{Valid: true, Reason: ReasonPredatesMoveEvolution}
	}
	if enc.Species == c.Species {
		return Verdict{Valid: true, Reason: ReasonUnevolved}
	}

	req := v.registry.RequiredMove(c.Species)
	if req.IsNone() {
		return Verdict{Valid: true, Reason: ReasonNotMoveEvolution}
	}
	if !IsMoveSlotAvailable(moves) {
		return Verdict{Valid: false, Reason: ReasonNoMoveSlot, Requirement: req}
	}

	head := CurrentLearnGroup(c)
	pruned := v.pruner.Prune(history, c.Species)

	switch req.Kind() {
	case RequirementAnyOf:
		for _, m := range req.Candidates() {
			if v.oracle.CanKnowMove(enc, m, pruned, c, head) {
				return Verdict{Valid: true, Reason: ReasonMoveKnowable, Requirement: req, Move: m}
			}
		}
		return Verdict{Valid: false, Reason: ReasonMoveNotKnowable, Requirement: req}
	default:
		m, _ := req.Move()
		if v.oracle.CanKnowMove(enc, m, pruned, c, head) {
			return Verdict{Valid: true, Reason: ReasonMoveKnowable, Requirement: req, Move: m}
		}
		return Verdict{Valid: false, Reason: ReasonMoveNotKnowable, Requirement: req}
	}
}
