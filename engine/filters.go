package engine

// ============================================================================
// FILTERS — Single-pass record selection
// ============================================================================
// Every filter walks the input once, keeps input order and returns a freshly
// allocated slice. Nothing here sorts, logs or mutates its input.
// ============================================================================

// filter returns copies of the records for which keep is true.
// Neither the result slice nor any record's Types shares memory with the input.
func filter(records []Creature, keep func(Creature) bool) []Creature {
	out := make([]Creature, 0)
	for _, r := range records {
		if keep(r) {
			out = append(out, cloneCreature(r))
		}
	}
	return out
}

func cloneCreature(c Creature) Creature {
	if c.Types != nil {
		types := make([]string, len(c.Types))
		copy(types, c.Types)
		c.Types = types
	}
	return c
}

// FilterByDivisibleID keeps records whose ID is a multiple of factor.
// A zero factor matches nothing.
func FilterByDivisibleID(records []Creature, factor int) []Creature {
	if factor == 0 {
		return []Creature{}
	}
	return filter(records, func(c Creature) bool { return c.ID%factor == 0 })
}

// FilterByType keeps records carrying typ in any position.
func FilterByType(records []Creature, typ string) []Creature {
	return filter(records, func(c Creature) bool { return c.HasType(typ) })
}

// FilterMultiType keeps records with more than one type.
func FilterMultiType(records []Creature) []Creature {
	return filter(records, func(c Creature) bool { return len(c.Types) > 1 })
}

// NamesAboveID returns the names of records with ID strictly greater than minID.
func NamesAboveID(records []Creature, minID int) []string {
	names := make([]string, 0)
	for _, r := range records {
		if r.ID > minID {
			names = append(names, r.Name)
		}
	}
	return names
}

// NamesOfSoleType returns the names of records whose only type is typ.
func NamesOfSoleType(records []Creature, typ string) []string {
	names := make([]string, 0)
	for _, r := range records {
		if len(r.Types) == 1 && r.Types[0] == typ {
			names = append(names, r.Name)
		}
	}
	return names
}

// PrimaryTypeBySecondary returns the first type of every record whose second
// type is secondType. Single-type records never match, even when their only
// type equals secondType.
func PrimaryTypeBySecondary(records []Creature, secondType string) []string {
	primaries := make([]string, 0)
	for _, r := range records {
		if second, ok := r.SecondaryType(); ok && second == secondType {
			primaries = append(primaries, r.Types[0])
		}
	}
	return primaries
}
