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
	"github.com/db47h/xpathlex/trie"
)

// Name returns a StateFn that lexes names: a letter, or an underscore
// followed by a letter, then any number of letters, digits, '.' and '-'. A
// '-' is part of the name only if it is followed by a letter.
//
// The name is looked up in kw while it is read. If it is a keyword whose tag
// is in tags, the token type registered for that keyword is emitted. Otherwise
// a token of type ident is emitted.
//
// An underscore not followed by a letter is reported as an
// xpathlex.ErrMalformed error.
//
func Name(kw *trie.Trie, tags trie.Tag, ident token.Type) xpathlex.StateFn {
	return func(s *xpathlex.State) xpathlex.StateFn {
		var n *trie.Node
		c := s.Current()
		if c == '_' {
			// no keyword starts with '_', n stays nil.
			if c = s.Next(); !isLetter(c) {
				s.Errorf(xpathlex.ErrMalformed, "'_' must be followed by a letter, got %s", Describe(c))
				return nil
			}
		} else {
			n = kw.Root().Next(byte(c))
		}
		for {
			c = s.Next()
			if c == '-' {
				if c = s.Next(); !isLetter(c) {
					s.Backup()
					s.Backup()
					break
				}
				if n != nil {
					n = n.Next('-')
				}
			} else if !isLetter(c) && !isDigit(c) && c != '.' {
				s.Backup()
				break
			}
			if n != nil {
				n = n.Next(byte(c))
			}
		}
		if n.Is(tags) {
			s.Emit(n.Type())
		} else {
			s.Emit(ident)
		}
		return nil
	}
}
