package sorter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Thomas-M-Krystyan/LeetCode-RoyalNamesSorter/internal/roman"
)

// RoyalName is a transient record built per sort call: the original input
// string plus the pieces it was split into and the resolved ordinal value.
type RoyalName struct {
	Full    string
	Name    string
	Numeral string
	Value   int
}

// Sorter orders royal name records by name, then by ordinal value. It owns no
// state beyond the injected converter.
type Sorter struct {
	converter *roman.Converter
}

func New(converter *roman.Converter) *Sorter {
	return &Sorter{
		converter: converter,
	}
}

// Sort reorders records of the form "<Name> <RomanNumeral>" lexicographically
// by name and numerically by ordinal. The output contains the exact input
// strings; the first record with an invalid numeral aborts the whole sort.
func (s *Sorter) Sort(records []string) ([]string, error) {
	if len(records) == 0 {
		return []string{}, nil
	}

	royals := make([]RoyalName, 0, len(records))
	for _, record := range records {
		name, numeral, _ := strings.Cut(record, " ")
		value, err := s.converter.Convert(numeral)
		if err != nil {
			return nil, fmt.Errorf("invalid record %q: %w", record, err)
		}
		royals = append(royals, RoyalName{
			Full:    record,
			Name:    name,
			Numeral: numeral,
			Value:   value,
		})
	}

	sort.SliceStable(royals, func(i, j int) bool {
		if royals[i].Name != royals[j].Name {
			return royals[i].Name < royals[j].Name
		}
		return royals[i].Value < royals[j].Value
	})

	sorted := make([]string, len(royals))
	for i, royal := range royals {
		sorted[i] = royal.Full
	}
	return sorted, nil
}
