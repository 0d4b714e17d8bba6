package sorter

import (
	"errors"
	"testing"

	"github.com/Thomas-M-Krystyan/LeetCode-RoyalNamesSorter/internal/apperr"
	"github.com/Thomas-M-Krystyan/LeetCode-RoyalNamesSorter/internal/roman"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSorter() *Sorter {
	return New(roman.NewConverter())
}

func TestSorter_Sort(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		sorted, err := newSorter().Sort([]string{})
		require.NoError(t, err)
		assert.Empty(t, sorted)
	})

	t.Run("numeric tie-break within same name", func(t *testing.T) {
		sorted, err := newSorter().Sort([]string{"Louis IX", "Louis VIII"})
		require.NoError(t, err)
		assert.Equal(t, []string{"Louis VIII", "Louis IX"}, sorted)
	})

	t.Run("name order dominates numeral value", func(t *testing.T) {
		sorted, err := newSorter().Sort([]string{"Philippe I", "Philip II"})
		require.NoError(t, err)
		assert.Equal(t, []string{"Philip II", "Philippe I"}, sorted)
	})

	t.Run("mixed names and ordinals", func(t *testing.T) {
		input := []string{
			"Louis XIV",
			"Henry VIII",
			"Louis IX",
			"Elizabeth II",
			"Henry V",
			"Louis XVI",
		}

		sorted, err := newSorter().Sort(input)
		require.NoError(t, err)
		assert.Equal(t, []string{
			"Elizabeth II",
			"Henry V",
			"Henry VIII",
			"Louis IX",
			"Louis XIV",
			"Louis XVI",
		}, sorted)
	})

	t.Run("duplicate records keep input order", func(t *testing.T) {
		sorted, err := newSorter().Sort([]string{"Louis IX", "Louis IX", "Louis I"})
		require.NoError(t, err)
		assert.Equal(t, []string{"Louis I", "Louis IX", "Louis IX"}, sorted)
	})
}

func TestSorter_Sort_RoundTrip(t *testing.T) {
	input := []string{"Louis XIV", "Henry VIII", "Louis IX", "Henry VIII"}

	sorted, err := newSorter().Sort(input)
	require.NoError(t, err)
	require.Len(t, sorted, len(input))

	// output is the exact input strings, as a multiset
	counts := make(map[string]int)
	for _, record := range input {
		counts[record]++
	}
	for _, record := range sorted {
		counts[record]--
	}
	for record, count := range counts {
		assert.Zerof(t, count, "record %q count mismatch", record)
	}

	// input is untouched
	assert.Equal(t, []string{"Louis XIV", "Henry VIII", "Louis IX", "Henry VIII"}, input)
}

func TestSorter_Sort_AbortsOnInvalidNumeral(t *testing.T) {
	tests := []struct {
		name   string
		input  []string
		kind   apperr.Kind
		symbol string
	}{
		{
			name:   "unrecognized symbol",
			input:  []string{"Louis IX", "Charlemagne MCMXCVII"},
			kind:   apperr.UnrecognizedSymbol,
			symbol: "M",
		},
		{
			name:   "illegal repetition",
			input:  []string{"Louis VV", "Louis I"},
			kind:   apperr.IllegalRepetition,
			symbol: "V",
		},
		{
			name:   "too many repetitions",
			input:  []string{"Henry IIII"},
			kind:   apperr.TooManyRepetitions,
			symbol: "I",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sorted, err := newSorter().Sort(tt.input)
			require.Error(t, err)
			assert.Nil(t, sorted)

			var ve *apperr.ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tt.kind, ve.Kind)
			assert.Equal(t, tt.symbol, ve.Symbol)
		})
	}
}
