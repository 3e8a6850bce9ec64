package evolution

import (
	"bytes"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/jonklee99/PKHeX-Gengar/internal/evolution/rules"
	"github.com/jonklee99/PKHeX-Gengar/internal/shared"
)

// Rule ties an evolved species to the move condition of its evolution and
// the pre-evolution stage that has to satisfy it.
type Rule struct {
	Evolved      shared.Species     `json:"species"`
	PreEvolution shared.SpeciesForm `json:"pre_evolution"`
	Requirement  Requirement        `json:"requirement"`
}

// Registry is an immutable lookup of move-gated evolutions.
type Registry struct {
	rules map[shared.Species]Rule
	order []shared.Species
}

type ruleFile struct {
	Version    int       `yaml:"version"`
	Evolutions []ruleRow `yaml:"evolutions"`
}

type ruleRow struct {
	Species shared.Species     `yaml:"species"`
	From    shared.SpeciesForm `yaml:"from"`
	Move    *shared.Move       `yaml:"move"`
	AnyOf   []shared.Move      `yaml:"any_of"`
}

// LoadRules parses and validates a YAML rule table. Each row carries both the
// requirement and the pre-evolution, so the two lookups cannot drift apart.
func LoadRules(data []byte) (*Registry, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var file ruleFile
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRuleTable, err)
	}
	if file.Version != 1 {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrInvalidRuleTable, file.Version)
	}

	reg := &Registry{rules: make(map[shared.Species]Rule, len(file.Evolutions))}
	for i, row := range file.Evolutions {
		rule, err := row.rule()
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrInvalidRuleTable, i, err)
		}
		if _, dup := reg.rules[rule.Evolved]; dup {
			return nil, fmt.Errorf("%w: row %d: duplicate species %s", ErrInvalidRuleTable, i, rule.Evolved)
		}
		reg.rules[rule.Evolved] = rule
		reg.order = append(reg.order, rule.Evolved)
	}
	sort.Slice(reg.order, func(i, j int) bool { return reg.order[i] < reg.order[j] })
	return reg, nil
}

func (row ruleRow) rule() (Rule, error) {
	if row.Species == shared.SpeciesNone {
		return Rule{}, fmt.Errorf("missing species")
	}
	if row.From.IsEmpty() {
		return Rule{}, fmt.Errorf("%s: missing pre-evolution", row.Species)
	}
	if row.From.Species == row.Species {
		return Rule{}, fmt.Errorf("%s: evolves from itself", row.Species)
	}

	var req Requirement
	switch {
	case row.Move != nil && row.AnyOf != nil:
		return Rule{}, fmt.Errorf("%s: move and any_of are exclusive", row.Species)
	case row.Move != nil:
		if *row.Move == shared.MoveNone {
			return Rule{}, fmt.Errorf("%s: empty move", row.Species)
		}
		req = SingleMove(*row.Move)
	case len(row.AnyOf) > 0:
		for _, m := range row.AnyOf {
			if m == shared.MoveNone {
				return Rule{}, fmt.Errorf("%s: empty move in any_of", row.Species)
			}
		}
		req = AnyOf(row.AnyOf...)
	default:
		return Rule{}, fmt.Errorf("%s: no move requirement", row.Species)
	}

	return Rule{Evolved: row.Species, PreEvolution: row.From, Requirement: req}, nil
}

// RequiredMove returns the move condition for an evolved species, or
// RequirementNone when the species is not a move evolution.
func (r *Registry) RequiredMove(species shared.Species) Requirement {
	return r.rules[species].Requirement
}

// PreEvolution returns the stage that must know the move, or the empty pair.
func (r *Registry) PreEvolution(species shared.Species) shared.SpeciesForm {
	return r.rules[species].PreEvolution
}

// Lookup returns the full rule for a species.
func (r *Registry) Lookup(species shared.Species) (Rule, bool) {
	rule, ok := r.rules[species]
	return rule, ok
}

// Rules lists every rule ordered by species.
func (r *Registry) Rules() []Rule {
	out := make([]Rule, 0, len(r.order))
	for _, s := range r.order {
		out = append(out, r.rules[s])
	}
	return out
}

func (r *Registry) Len() int { return len(r.order) }

var defaultRegistry = mustLoadDefault()

func mustLoadDefault() *Registry {
	reg, err := LoadRules(rules.MoveEvolutions)
	if err != nil {
		panic(err)
	}
	return reg
}

// DefaultRegistry returns the registry built from the embedded table.
func DefaultRegistry() *Registry { return defaultRegistry }

// RequiredMove looks a species up in the embedded table.
func RequiredMove(species shared.Species) Requirement {
	return defaultRegistry.RequiredMove(species)
}

// PreEvolution looks a species up in the embedded table.
func PreEvolution(species shared.Species) shared.SpeciesForm {
	return defaultRegistry.PreEvolution(species)
}

// MoveEvolutions lists the embedded table ordered by species.
func MoveEvolutions() []Rule {
	return defaultRegistry.Rules()
}

// IsFormArgEvolution reports whether the species' evolution is driven by a
// form argument tracked on the creature rather than by a known move.
func IsFormArgEvolution(species shared.Species) bool {
	switch species {
	case shared.Runerigus, shared.Wyrdeer, shared.Annihilape,
		shared.Basculegion, shared.Kingambit, shared.Overqwil:
		return true
	default:
		return false
	}
}
