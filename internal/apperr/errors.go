package apperr

import "fmt"

type Kind int

const (
	UnrecognizedSymbol Kind = iota
	IllegalRepetition
	TooManyRepetitions
)

func (k Kind) String() string {
	switch k {
	case UnrecognizedSymbol:
		return "UnrecognizedSymbol"
	case IllegalRepetition:
		return "IllegalRepetition"
	case TooManyRepetitions:
		return "TooManyRepetitions"
	default:
		return "UNKNOWN"
	}
}

// ValidationError is a grammar violation detected while converting a numeral
// token. Symbol holds the offending character and Token the full input where
// that context exists.
type ValidationError struct {
	Kind   Kind
	Symbol string
	Token  string
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case UnrecognizedSymbol:
		return fmt.Sprintf("unrecognized symbol %q in token %q", e.Symbol, e.Token)
	case IllegalRepetition:
		return fmt.Sprintf("symbol %q may not be repeated", e.Symbol)
	case TooManyRepetitions:
		return fmt.Sprintf("symbol %q repeated more than 3 times", e.Symbol)
	default:
		return fmt.Sprintf("validation failed for token %q", e.Token)
	}
}

func NewUnrecognizedSymbol(symbol, token string) *ValidationError {
	return &ValidationError{Kind: UnrecognizedSymbol, Symbol: symbol, Token: token}
}

func NewIllegalRepetition(symbol string) *ValidationError {
	return &ValidationError{Kind: IllegalRepetition, Symbol: symbol}
}

func NewTooManyRepetitions(symbol string) *ValidationError {
	return &ValidationError{Kind: TooManyRepetitions, Symbol: symbol}
}
