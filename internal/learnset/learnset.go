// Package learnset holds per-species move lists used to answer "could this
// stage have learned that move" without the full learn-source engine.
package learnset

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jonklee99/PKHeX-Gengar/internal/shared"
)

type key struct {
	sf  shared.SpeciesForm
	ctx shared.Context
}

// Table maps a species-form within a context to the moves it can learn.
// Entries without contexts apply to every context. A Table is read-only
// once loaded.
type Table struct {
	entries map[key]shared.MoveList
}

type file struct {
	Version   int     `yaml:"version"`
	Learnsets []entry `yaml:"learnsets"`
}

type entry struct {
	Species  shared.Species   `yaml:"species"`
	Form     shared.Form      `yaml:"form"`
	Contexts []shared.Context `yaml:"contexts"`
	Moves    []shared.Move    `yaml:"moves"`
}

// Parse decodes a YAML learnset document.
func Parse(data []byte) (*Table, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f file
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("parse learnsets: %w", err)
	}
	if f.Version != 1 {
		return nil, fmt.Errorf("parse learnsets: unsupported version %d", f.Version)
	}

	t := New()
	for i, e := range f.Learnsets {
		if e.Species == shared.SpeciesNone {
			return nil, fmt.Errorf("parse learnsets: entry %d: missing species", i)
		}
		sf := shared.SpeciesForm{Species: e.Species, Form: e.Form}
		if len(e.Contexts) == 0 {
			t.Add(shared.ContextNone, sf, e.Moves...)
			continue
		}
		for _, ctx := range e.Contexts {
			t.Add(ctx, sf, e.Moves...)
		}
	}
	return t, nil
}

// Load reads and parses a learnset file.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}
	return Parse(data)
}

// New returns an empty table.
func New() *Table {
	return &Table{entries: make(map[key]shared.MoveList)}
}

// Add records moves for a species-form. ContextNone means every context.
// Add is meant for building a table and must not race with lookups.
func (t *Table) Add(ctx shared.Context, sf shared.SpeciesForm, moves ...shared.Move) {
	k := key{sf: sf, ctx: ctx}
	for _, m := range moves {
		if !t.entries[k].Contains(m) {
			t.entries[k] = append(t.entries[k], m)
		}
	}
}

// CanLearn reports whether the species-form can learn the move in ctx.
func (t *Table) CanLearn(ctx shared.Context, sf shared.SpeciesForm, move shared.Move) bool {
	if t.entries[key{sf: sf, ctx: ctx}].Contains(move) {
		return true
	}
	return t.entries[key{sf: sf, ctx: shared.ContextNone}].Contains(move)
}

// Len counts species-form/context entries.
func (t *Table) Len() int { return len(t.entries) }
