// Package cmdargs provides a minimal command-line flag lookup: a linear
// search over raw argument tokens. It is meant for small tools that only
// need "is flag present" and "value after flag", not a full flag grammar.
package cmdargs

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned by Value when the flag is not present.
	ErrNotFound = errors.New("cmdargs: flag not found")

	// ErrEmptyValue is returned by Value when the flag is the last token
	// and nothing follows it.
	ErrEmptyValue = errors.New("cmdargs: flag has no value")
)

// Parser holds the raw argument tokens, typically os.Args[1:].
type Parser struct {
	tokens []string
}

// New creates a parser over the given argument tokens.
func New(args []string) *Parser {
	tokens := make([]string, len(args))
	copy(tokens, args)
	return &Parser{tokens: tokens}
}

// Has reports whether the given flag appears among the tokens.
func (p *Parser) Has(flag string) bool {
	for _, tok := range p.tokens {
		if tok == flag {
			return true
		}
	}
	return false
}

// Value returns the token immediately following the given flag. Returns
// ErrNotFound when the flag is absent and ErrEmptyValue when nothing
// follows it.
func (p *Parser) Value(flag string) (string, error) {
	for i, tok := range p.tokens {
		if tok != flag {
			continue
		}
		if i+1 >= len(p.tokens) {
			return "", fmt.Errorf("%w: %q", ErrEmptyValue, flag)
		}
		return p.tokens[i+1], nil
	}
	return "", fmt.Errorf("%w: %q", ErrNotFound, flag)
}
