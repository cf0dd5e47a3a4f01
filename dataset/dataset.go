// Package dataset provides the reference creature catalog compiled into the
// binary. It is the only record source the module ships; the engine itself
// takes any []engine.Creature.
package dataset

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/spektr-org/pokequery/engine"
)

//go:embed pokemon.json
var pokemonJSON []byte

var (
	loadOnce sync.Once
	loaded   []engine.Creature
	loadErr  error
)

// Creatures returns the reference catalog in id order.
// The embedded document is decoded once; every call returns a deep copy so
// callers cannot change what later callers see.
func Creatures() ([]engine.Creature, error) {
	loadOnce.Do(func() {
		loaded, loadErr = decode(pokemonJSON)
	})
	if loadErr != nil {
		return nil, loadErr
	}
	return clone(loaded), nil
}

// MustCreatures is Creatures for program start-up. It panics on a decode error.
func MustCreatures() []engine.Creature {
	records, err := Creatures()
	if err != nil {
		panic(err)
	}
	return records
}

func decode(data []byte) ([]engine.Creature, error) {
	var records []engine.Creature
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode pokemon.json: %w", err)
	}
	return records, nil
}

func clone(records []engine.Creature) []engine.Creature {
	out := make([]engine.Creature, len(records))
	for i, r := range records {
		types := make([]string, len(r.Types))
		copy(types, r.Types)
		out[i] = engine.Creature{ID: r.ID, Name: r.Name, Types: types}
	}
	return out
}
