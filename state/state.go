// Copyright 2017 Denis Bernard <db047h@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
// the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
// FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
// COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
// IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

// Package state provides state functions for lexing XPath literals, numbers,
// names and operators.
//
// State functions in this package expect that the first byte of the lexed
// entity has already been read by State.Next. For example:
//
//	switch s.Next() {
//	case '"', '\'':
//		// do not call s.Backup() here
//		return state.Literal(token.Literal)
//	}
//
// All functions are constructors that take at least a token type as argument
// and return closures. The returned state functions hold no mutable state and
// can be shared by any number of tokenizers.
//
package state

import (
	"fmt"

	"github.com/db47h/xpathlex"
	"github.com/db47h/xpathlex/token"
)

// Single returns a StateFn that emits a token of type t for the byte already
// read.
//
func Single(t token.Type) xpathlex.StateFn {
	return func(s *xpathlex.State) xpathlex.StateFn {
		s.Emit(t)
		return nil
	}
}

// Pair returns a StateFn for one or two byte operators: if the next byte is
// second, it emits a token of type double, otherwise it pushes the byte back
// and emits a token of type single.
//
func Pair(second byte, double, single token.Type) xpathlex.StateFn {
	return func(s *xpathlex.State) xpathlex.StateFn {
		if s.Next() == int(second) {
			s.Emit(double)
			return nil
		}
		s.Backup()
		s.Emit(single)
		return nil
	}
}

// Require returns a StateFn for two byte operators whose first byte is not
// valid on its own: if the next byte is second, it emits a token of type t,
// otherwise it reports an xpathlex.ErrMalformed error.
//
func Require(second byte, t token.Type) xpathlex.StateFn {
	return func(s *xpathlex.State) xpathlex.StateFn {
		first := s.Current()
		if s.Next() != int(second) {
			s.Errorf(xpathlex.ErrMalformed, "%q must be followed by %q", first, second)
			return nil
		}
		s.Emit(t)
		return nil
	}
}

// Literal returns a StateFn that lexes a quoted literal. There are no escape
// sequences: the literal ends at the first occurrence of the opening quote.
//
// When entering the StateFn, the opening quote has already been read and will
// be reused as end-delimiter.
//
func Literal(t token.Type) xpathlex.StateFn {
	return func(s *xpathlex.State) xpathlex.StateFn {
		quote := s.Current()
		for {
			switch s.Next() {
			case quote:
				s.Emit(t)
				return nil
			case xpathlex.EOF:
				s.Errorf(xpathlex.ErrUnterminatedLiteral, "unterminated literal")
				return nil
			}
		}
	}
}

// Describe returns a printable description of byte c for error messages.
//
func Describe(c int) string {
	switch {
	case c == xpathlex.EOF:
		return "EOF"
	case c >= 0x20 && c < 0x7f:
		return fmt.Sprintf("%q (%#02x)", rune(c), c)
	default:
		return fmt.Sprintf("%#02x", c)
	}
}

func isDigit(c int) bool {
	return c >= '0' && c <= '9'
}

func isLetter(c int) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}
