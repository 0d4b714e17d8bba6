package roman

import (
	"sync"

	"github.com/Thomas-M-Krystyan/LeetCode-RoyalNamesSorter/internal/apperr"
)

// symbols maps each supported numeral character to its base value. The grammar
// is deliberately restricted to {I, V, X, L}: numerals above the range they can
// express (C, D, M and friends) are rejected as unrecognized.
var symbols = map[byte]int{
	'I': 1,
	'V': 5,
	'X': 10,
	'L': 50,
}

const maxRepetitions = 3

// repeatable reports whether a symbol may appear in a consecutive run.
func repeatable(symbol byte) bool {
	return symbol == 'I' || symbol == 'X'
}

// Converter turns a Roman numeral token into its Arabic value. Validated
// tokens are memoized; the cache is guarded so a single Converter can be
// shared across concurrent callers.
type Converter struct {
	cacheLock sync.RWMutex
	cache     map[string]int
}

func NewConverter() *Converter {
	return &Converter{
		cache: make(map[string]int),
	}
}

// Convert returns the Arabic value of token, or a *apperr.ValidationError
// describing the first grammar violation. Only successful conversions are
// cached; a failing token is re-validated on every call.
func (c *Converter) Convert(token string) (int, error) {
	if value, ok := c.lookup(token); ok {
		return value, nil
	}

	value, err := scan(token)
	if err != nil {
		return 0, err
	}

	c.store(token, value)
	return value, nil
}

// scan walks the token left to right, accumulating values pairwise: a symbol
// followed by a smaller or equal one adds, a symbol followed by a larger one
// subtracts. Only adjacent pairs are inspected, so sequences like "IIV" pass
// through; that gap is a known property of the grammar, not enforced here.
func scan(token string) (int, error) {
	total := 0
	repetitions := 1

	for i := 0; i < len(token); i++ {
		current := token[i]
		value, ok := symbols[current]
		if !ok {
			return 0, apperr.NewUnrecognizedSymbol(string(current), token)
		}

		if i+1 == len(token) {
			total += value
			break
		}

		next := token[i+1]
		nextValue, ok := symbols[next]
		if !ok {
			return 0, apperr.NewUnrecognizedSymbol(string(next), token)
		}

		switch {
		case next == current:
			if !repeatable(current) {
				return 0, apperr.NewIllegalRepetition(string(current))
			}
			repetitions++
			if repetitions > maxRepetitions {
				return 0, apperr.NewTooManyRepetitions(string(current))
			}
			total += value
		case nextValue < value:
			total += value
			repetitions = 1
		default:
			total -= value
			repetitions = 1
		}
	}

	return total, nil
}

func (c *Converter) lookup(token string) (int, bool) {
	c.cacheLock.RLock()
	defer c.cacheLock.RUnlock()
	value, ok := c.cache[token]
	return value, ok
}

func (c *Converter) store(token string, value int) {
	c.cacheLock.Lock()
	defer c.cacheLock.Unlock()
	c.cache[token] = value
}
