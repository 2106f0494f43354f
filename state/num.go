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

package state

import (
	"github.com/db47h/xpathlex"
	"github.com/db47h/xpathlex/token"
)

// Number returns a StateFn that lexes numbers starting with a digit.
//
// A run of digits followed by a decimal point and at least one digit is
// emitted as a token of type number. Otherwise the decimal point, if any, is
// not part of the lexeme and the digits are emitted as a token of type
// digits. Signs are separate tokens.
//
func Number(digits, number token.Type) xpathlex.StateFn {
	return func(s *xpathlex.State) xpathlex.StateFn {
		if acceptDigits(s) == '.' {
			if isDigit(s.Next()) {
				acceptDigits(s)
				s.Backup()
				s.Emit(number)
				return nil
			}
			s.Backup()
		}
		s.Backup()
		s.Emit(digits)
		return nil
	}
}

// Dot returns a StateFn for input starting with a '.': a decimal point
// followed by digits is emitted as a token of type number, ".." as a token of
// type parent and a single '.' as a token of type current.
//
func Dot(number, parent, current token.Type) xpathlex.StateFn {
	return func(s *xpathlex.State) xpathlex.StateFn {
		switch c := s.Next(); {
		case isDigit(c):
			acceptDigits(s)
			s.Backup()
			s.Emit(number)
		case c == '.':
			s.Emit(parent)
		default:
			s.Backup()
			s.Emit(current)
		}
		return nil
	}
}

// acceptDigits reads bytes while they are digits and returns the first byte
// that is not. That byte is not backed up.
//
func acceptDigits(s *xpathlex.State) int {
	c := s.Next()
	for isDigit(c) {
		c = s.Next()
	}
	return c
}
