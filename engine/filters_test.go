package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── Test Data ─────────────────────────────────────────────────────────────────

func sampleCreatures() []Creature {
	return []Creature{
		{ID: 1, Name: "Bulbasaur", Types: []string{"grass", "poison"}},
		{ID: 7, Name: "Squirtle", Types: []string{"water"}},
		{ID: 25, Name: "Pikachu", Types: []string{"electric"}},
	}
}

func widerCreatures() []Creature {
	return []Creature{
		{ID: 6, Name: "Charizard", Types: []string{"fire", "flying"}},
		{ID: 10, Name: "Caterpie", Types: []string{"bug"}},
		{ID: 16, Name: "Pidgey", Types: []string{"normal", "flying"}},
		{ID: 19, Name: "Rattata", Types: []string{"normal"}},
		{ID: 20, Name: "Raticate", Types: []string{"normal"}},
		{ID: 39, Name: "Jigglypuff", Types: []string{"normal", "fairy"}},
		{ID: 40, Name: "Wigglytuff", Types: []string{"normal", "fairy"}},
		{ID: 99, Name: "Flyer", Types: []string{"flying"}},
		{ID: 100, Name: "Voltorb", Types: []string{"electric"}},
	}
}

func ids(records []Creature) []int {
	out := make([]int, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

// ============================================================================
// EXAMPLE DATASET
// ============================================================================

func TestSampleDataset(t *testing.T) {
	ds := sampleCreatures()

	assert.Equal(t, []int{25}, ids(FilterByDivisibleID(ds, 5)))
	assert.Equal(t, []int{1}, ids(FilterByType(ds, "poison")))
	assert.Equal(t, []int{1}, ids(FilterMultiType(ds)))
	assert.Equal(t, []string{"Squirtle", "Pikachu"}, NamesAboveID(ds, 5))
	assert.Equal(t, 1, CountByType(ds, "water"))
	assert.Equal(t, []string{"grass"}, PrimaryTypeBySecondary(ds, "poison"))
}

// ============================================================================
// FILTER BY DIVISIBLE ID
// ============================================================================

func TestFilterByDivisibleID(t *testing.T) {
	testCases := []struct {
		name     string
		records  []Creature
		factor   int
		expected []int
	}{
		{name: "multiples of five", records: widerCreatures(), factor: 5, expected: []int{10, 20, 40, 100}},
		{name: "every id divides by one", records: sampleCreatures(), factor: 1, expected: []int{1, 7, 25}},
		{name: "negative factor", records: widerCreatures(), factor: -10, expected: []int{10, 20, 40, 100}},
		{name: "no matches", records: sampleCreatures(), factor: 1000, expected: []int{}},
		{name: "zero factor matches nothing", records: sampleCreatures(), factor: 0, expected: []int{}},
		{name: "empty input", records: nil, factor: 5, expected: []int{}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := FilterByDivisibleID(tc.records, tc.factor)
			require.NotNil(t, got)
			assert.Equal(t, tc.expected, ids(got))
			for _, r := range got {
				assert.Zero(t, r.ID%tc.factor)
			}
		})
	}
}

// ============================================================================
// FILTER BY TYPE / COUNT BY TYPE
// ============================================================================

func TestFilterByType(t *testing.T) {
	testCases := []struct {
		name     string
		typ      string
		expected []int
	}{
		{name: "primary position", typ: "fire", expected: []int{6}},
		{name: "secondary position", typ: "fairy", expected: []int{39, 40}},
		{name: "both positions", typ: "flying", expected: []int{6, 16, 99}},
		{name: "case sensitive", typ: "Normal", expected: []int{}},
		{name: "no normalization", typ: " normal", expected: []int{}},
		{name: "unknown type", typ: "dragon", expected: []int{}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			records := widerCreatures()
			got := FilterByType(records, tc.typ)
			assert.Equal(t, tc.expected, ids(got))
			for _, r := range got {
				assert.Contains(t, r.Types, tc.typ)
			}
			assert.Equal(t, len(got), CountByType(records, tc.typ))
		})
	}
}

func TestFilterByTypeEmptyInput(t *testing.T) {
	assert.Empty(t, FilterByType(nil, "water"))
	assert.Equal(t, 0, CountByType(nil, "water"))
	assert.Equal(t, 0, CountByType([]Creature{}, "water"))
}

// ============================================================================
// FILTER MULTI TYPE
// ============================================================================

func TestFilterMultiType(t *testing.T) {
	records := append(widerCreatures(), Creature{ID: 200, Name: "Typeless"})

	got := FilterMultiType(records)

	assert.Equal(t, []int{6, 16, 39, 40}, ids(got))
	for _, r := range got {
		assert.Greater(t, len(r.Types), 1)
	}
	assert.Empty(t, FilterMultiType(nil))
}

// ============================================================================
// NAMES ABOVE ID
// ============================================================================

func TestNamesAboveID(t *testing.T) {
	testCases := []struct {
		name     string
		min      int
		expected []string
	}{
		{name: "strictly greater", min: 39, expected: []string{"Wigglytuff", "Flyer", "Voltorb"}},
		{name: "below every id", min: 0, expected: []string{"Charizard", "Caterpie", "Pidgey", "Rattata", "Raticate", "Jigglypuff", "Wigglytuff", "Flyer", "Voltorb"}},
		{name: "negative min", min: -5, expected: []string{"Charizard", "Caterpie", "Pidgey", "Rattata", "Raticate", "Jigglypuff", "Wigglytuff", "Flyer", "Voltorb"}},
		{name: "above every id", min: 100, expected: []string{}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := NamesAboveID(widerCreatures(), tc.min)
			if diff := cmp.Diff(tc.expected, got); diff != "" {
				t.Errorf("NamesAboveID(%d) mismatch (-want +got):\n%s", tc.min, diff)
			}
		})
	}
}

// ============================================================================
// NAMES OF SOLE TYPE
// ============================================================================

func TestNamesOfSoleType(t *testing.T) {
	records := widerCreatures()

	assert.Equal(t, []string{"Rattata", "Raticate"}, NamesOfSoleType(records, "normal"))
	assert.Equal(t, []string{"Flyer"}, NamesOfSoleType(records, "flying"))
	assert.Empty(t, NamesOfSoleType(records, "fairy"), "secondary-only type never counts as sole")
	assert.Empty(t, NamesOfSoleType(nil, "normal"))
}

// ============================================================================
// PRIMARY TYPE BY SECONDARY
// ============================================================================

func TestPrimaryTypeBySecondary(t *testing.T) {
	testCases := []struct {
		name       string
		records    []Creature
		secondType string
		expected   []string
	}{
		{name: "flying secondaries", records: widerCreatures(), secondType: "flying", expected: []string{"fire", "normal"}},
		{name: "duplicates kept", records: widerCreatures(), secondType: "fairy", expected: []string{"normal", "normal"}},
		{name: "primary position does not match", records: widerCreatures(), secondType: "normal", expected: []string{}},
		{name: "single type equal to secondType", records: []Creature{{ID: 1, Name: "Flyer", Types: []string{"flying"}}}, secondType: "flying", expected: []string{}},
		{name: "no types", records: []Creature{{ID: 1, Name: "Empty"}}, secondType: "flying", expected: []string{}},
		{name: "empty input", records: nil, secondType: "flying", expected: []string{}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, PrimaryTypeBySecondary(tc.records, tc.secondType))
		})
	}
}

// ============================================================================
// PURITY
// ============================================================================

func TestFiltersDoNotMutateInput(t *testing.T) {
	records := widerCreatures()
	before := widerCreatures()

	FilterByDivisibleID(records, 5)
	FilterByType(records, "normal")
	FilterMultiType(records)
	NamesAboveID(records, 10)
	NamesOfSoleType(records, "normal")
	PrimaryTypeBySecondary(records, "flying")
	CountByType(records, "normal")
	_, err := ProjectField(records, FieldTypes)
	require.NoError(t, err)

	if diff := cmp.Diff(before, records); diff != "" {
		t.Fatalf("input mutated (-want +got):\n%s", diff)
	}
}

func TestFilterResultDoesNotAliasInput(t *testing.T) {
	records := sampleCreatures()

	got := FilterMultiType(records)
	require.Len(t, got, 1)
	got[0] = Creature{ID: 999, Name: "Changed"}

	assert.Equal(t, 1, records[0].ID)
	assert.Equal(t, "Bulbasaur", records[0].Name)
}

func TestFilterResultTypesDoNotAliasInput(t *testing.T) {
	records := sampleCreatures()

	for _, got := range [][]Creature{
		FilterByType(records, "grass"),
		FilterMultiType(records),
		FilterByDivisibleID(records, 1),
	} {
		require.NotEmpty(t, got)
		got[0].Types[0] = "fire"
	}

	assert.Equal(t, []string{"grass", "poison"}, records[0].Types)
}
