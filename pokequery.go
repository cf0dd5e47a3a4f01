// Package pokequery answers questions about a creature catalog.
//
// Usage:
//
//	import (
//	    "github.com/spektr-org/pokequery/dataset"
//	    "github.com/spektr-org/pokequery/engine"
//	)
//
//	records := dataset.MustCreatures()
//	water := engine.FilterByType(records, "water")
//	names := engine.NamesAboveID(records, 57)
//
// Queries can also be described as data and run through engine.Execute.
// The engine never loads, mutates or persists records; all computation is
// local and synchronous.
package pokequery
