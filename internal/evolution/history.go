package evolution

import (
	"sort"

	"github.com/jonklee99/PKHeX-Gengar/internal/shared"
)

// Stage is one species the creature existed as within a context.
type Stage struct {
	Species  shared.Species `json:"species" yaml:"species"`
	Form     shared.Form    `json:"form" yaml:"form"`
	LevelMin uint8          `json:"level_min" yaml:"level_min"`
	LevelMax uint8          `json:"level_max" yaml:"level_max"`
}

// History holds the evolution chain of a creature for each context it could
// have visited. Within a chain the most evolved stage comes first.
type History map[shared.Context][]Stage

// Contexts lists the contexts with a non-empty chain in ascending order.
func (h History) Contexts() []shared.Context {
	out := make([]shared.Context, 0, len(h))
	for ctx, chain := range h {
		if len(chain) > 0 {
			out = append(out, ctx)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Contains reports whether any chain has a stage of the species.
func (h History) Contains(species shared.Species) bool {
	for _, chain := range h {
		if indexOfSpecies(chain, species) >= 0 {
			return true
		}
	}
	return false
}

// IsEmpty reports whether no context has any stage.
func (h History) IsEmpty() bool {
	return len(h.Contexts()) == 0
}

// PruneKeepPreEvolutions drops the target species and everything evolved
// from it, leaving only the stages it evolved from. A chain without the
// target is kept as is. The receiver is not modified.
func (h History) PruneKeepPreEvolutions(species shared.Species) History {
	out := make(History, len(h))
	for ctx, chain := range h {
		idx := indexOfSpecies(chain, species)
		if idx < 0 {
			out[ctx] = append([]Stage(nil), chain...)
			continue
		}
		out[ctx] = append([]Stage(nil), chain[idx+1:]...)
	}
	return out
}

func indexOfSpecies(chain []Stage, species shared.Species) int {
	for i, st := range chain {
		if st.Species == species {
			return i
		}
	}
	return -1
}

// Pruner reduces a full history to the stages relevant to one species.
type Pruner interface {
	Prune(history History, species shared.Species) History
}

// PrunerFunc adapts a function to Pruner.
type PrunerFunc func(History, shared.Species) History

func (f PrunerFunc) Prune(history History, species shared.Species) History {
	return f(history, species)
}

// PreEvolutionPruner keeps the pre-evolutions of the target species.
type PreEvolutionPruner struct{}

func (PreEvolutionPruner) Prune(history History, species shared.Species) History {
	return history.PruneKeepPreEvolutions(species)
}
