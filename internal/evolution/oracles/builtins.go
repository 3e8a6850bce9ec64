package oracles

import (
	"github.com/jonklee99/PKHeX-Gengar/internal/evolution"
	"github.com/jonklee99/PKHeX-Gengar/internal/learnset"
	"github.com/jonklee99/PKHeX-Gengar/internal/shared"
)

const (
	// Learnset answers from a learnset table over the pruned history.
	Learnset = "learnset"
	// Static treats a fixed list of moves as knowable.
	Static = "static"
)

func init() {
	mustRegisterBuiltin(Learnset, newLearnsetOracle)
	mustRegisterBuiltin(Static, newStaticOracle)
}

func mustRegisterBuiltin(name string, ctor Factory) {
	if err := Register(name, ctor); err != nil {
		panic(err)
	}
}

func newLearnsetOracle(cfg Config) (evolution.Oracle, error) {
	var (
		table *learnset.Table
		err   error
	)
	switch {
	case cfg.LearnsetPath != "":
		table, err = learnset.Load(cfg.LearnsetPath)
	case len(cfg.Learnsets) > 0:
		table, err = learnset.Parse(cfg.Learnsets)
	default:
		return nil, ErrNoLearnsetSource
	}
	if err != nil {
		return nil, err
	}
	return NewLearnsetOracle(table), nil
}

// LearnsetOracle reports a move as knowable when any stage of the pruned
// history can learn it in that stage's context.
type LearnsetOracle struct {
	table *learnset.Table
}

func NewLearnsetOracle(table *learnset.Table) *LearnsetOracle {
	return &LearnsetOracle{table: table}
}

func (o *LearnsetOracle) CanKnowMove(_ evolution.Encounter, move shared.Move, history evolution.History, _ evolution.Creature, head evolution.LearnGroup) bool {
	// The head group is checked first; the answer does not depend on order.
	if o.chainCanLearn(shared.Context(head), history[shared.Context(head)], move) {
		return true
	}
	for _, ctx := range history.Contexts() {
		if ctx == shared.Context(head) {
			continue
		}
		if o.chainCanLearn(ctx, history[ctx], move) {
			return true
		}
	}
	return false
}

func (o *LearnsetOracle) chainCanLearn(ctx shared.Context, chain []evolution.Stage, move shared.Move) bool {
	for _, st := range chain {
		if o.table.CanLearn(ctx, shared.SpeciesForm{Species: st.Species, Form: st.Form}, move) {
			return true
		}
	}
	return false
}

func newStaticOracle(cfg Config) (evolution.Oracle, error) {
	known := shared.MoveList(cfg.Moves).Clone()
	return evolution.OracleFunc(func(_ evolution.Encounter, move shared.Move, _ evolution.History, _ evolution.Creature, _ evolution.LearnGroup) bool {
		return known.Contains(move)
	}), nil
}
