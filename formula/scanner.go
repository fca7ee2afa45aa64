// SPDX-License-Identifier: MIT
// Package formula - finite-state scanner.
//
// States:
//
//	stStart  -> UPPER -> stSymbol
//	stSymbol -> lower -> stSymbol | DIGIT -> stCount | UPPER/EOF -> emit
//	stCount  -> DIGIT -> stCount  | UPPER/EOF -> emit
//
// Any other byte in any state is an error. The scanner never backtracks.

package formula

import (
	"fmt"
	"strconv"
)

// Token is one element occurrence inside a compound.
type Token struct {
	Symbol string // element symbol, e.g. "Al"
	Count  int64  // atom count, >= 1
	Pos    int    // byte offset of the symbol's first letter
}

// Scanner yields Tokens from a formula string, bufio.Scanner style:
//
//	s := NewScanner("H2O")
//	for s.Scan() {
//		tok := s.Token()
//	}
//	if err := s.Err(); err != nil { ... }
type Scanner struct {
	src string
	pos int
	tok Token
	err error
}

// NewScanner returns a Scanner positioned at the start of src.
func NewScanner(src string) *Scanner {
	return &Scanner{src: src}
}

// Token returns the most recent token produced by Scan.
func (s *Scanner) Token() Token { return s.tok }

// Err returns the first error met by Scan, or nil at a clean end of input.
func (s *Scanner) Err() error { return s.err }

// Scan advances to the next token. It returns false at end of input or on
// error; Err distinguishes the two.
// Complexity: O(len(token)).
func (s *Scanner) Scan() bool {
	if s.err != nil || s.pos >= len(s.src) {
		return false
	}

	start := s.pos
	c := s.src[s.pos]
	if !isUpper(c) {
		s.err = s.classify(c)
		return false
	}
	s.pos++ // stStart -> stSymbol

	for s.pos < len(s.src) && isLower(s.src[s.pos]) {
		s.pos++
	}
	symbol := s.src[start:s.pos]

	digits := s.pos
	for s.pos < len(s.src) && isDigit(s.src[s.pos]) {
		s.pos++
	}

	count := int64(1)
	if s.pos > digits {
		n, err := strconv.ParseInt(s.src[digits:s.pos], 10, 64)
		if err != nil || n == 0 {
			s.err = fmt.Errorf("at %d: %w %q", digits, ErrBadCount, s.src[digits:s.pos])
			return false
		}
		count = n
	}

	// The next byte, if any, must start a new symbol.
	if s.pos < len(s.src) && !isUpper(s.src[s.pos]) {
		s.err = s.classify(s.src[s.pos])
		return false
	}

	s.tok = Token{Symbol: symbol, Count: count, Pos: start}

	return true
}

// classify maps a byte that cannot start a symbol to the matching sentinel.
func (s *Scanner) classify(c byte) error {
	switch {
	case s.pos == 0 && isDigit(c):
		return fmt.Errorf("at %d: %w", s.pos, ErrLeadingCoefficient)
	case c == '(' || c == ')' || c == '[' || c == ']' || c == '.' || c == '*':
		return fmt.Errorf("at %d: %w %q", s.pos, ErrUnsupported, c)
	default:
		return fmt.Errorf("at %d: %w %q", s.pos, ErrUnexpectedChar, c)
	}
}

func isUpper(c byte) bool { return 'A' <= c && c <= 'Z' }
func isLower(c byte) bool { return 'a' <= c && c <= 'z' }
func isDigit(c byte) bool { return '0' <= c && c <= '9' }
