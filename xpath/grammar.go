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

// Package xpath provides the XPath grammars for package xpathlex.
//
// A Grammar is a dispatch table indexed by the first byte of a lexeme, plus
// the keyword trie used to classify names. Grammars are immutable and can be
// shared by any number of tokenizers.
//
package xpath

import (
	"sync"

	"github.com/db47h/xpathlex"
	"github.com/db47h/xpathlex/state"
	"github.com/db47h/xpathlex/token"
	"github.com/db47h/xpathlex/trie"
)

// Version is an XPath version.
//
type Version int

// Supported versions. XPath 3.0 and 3.1 currently share the XPath 1.0 rules.
//
const (
	Version10 Version = iota
	Version30
	Version31
)

var versionNames = [...]string{"1.0", "3.0", "3.1"}

func (v Version) String() string {
	if v >= 0 && int(v) < len(versionNames) {
		return versionNames[v]
	}
	return "unknown"
}

// ParseVersion returns the Version for a version string like "1.0".
//
func ParseVersion(s string) (Version, bool) {
	for i, n := range versionNames {
		if n == s {
			return Version(i), true
		}
	}
	return 0, false
}

// A Grammar is the set of lexical rules for a version of XPath.
//
type Grammar struct {
	version Version
	kw      *trie.Trie
	tags    trie.Tag
	rules   [256]xpathlex.StateFn
}

var (
	once     sync.Once
	grammars [len(versionNames)]*Grammar
)

func initGrammars() {
	kw := Keywords()
	g := newGrammar(Version10, kw)
	grammars[Version10] = g
	for _, v := range []Version{Version30, Version31} {
		c := *g
		c.version = v
		grammars[v] = &c
	}
}

// XPath10 returns the grammar for https://www.w3.org/TR/xpath-10/#exprlex.
//
func XPath10() *Grammar {
	return ByVersion(Version10)
}

// XPath30 returns the grammar for XPath 3.0. It does not recognize any
// XPath 3.0 specific syntax yet.
//
func XPath30() *Grammar {
	return ByVersion(Version30)
}

// XPath31 returns the grammar for XPath 3.1. It does not recognize any
// XPath 3.1 specific syntax yet.
//
func XPath31() *Grammar {
	return ByVersion(Version31)
}

// ByVersion returns the grammar for version v. It panics if v is not a known
// version.
//
func ByVersion(v Version) *Grammar {
	once.Do(initGrammars)
	return grammars[v]
}

func newGrammar(v Version, kw *trie.Trie) *Grammar {
	g := &Grammar{
		version: v,
		kw:      kw,
		tags:    trie.Axis | trie.Function | trie.Keyword,
	}
	g.setNameRules()

	r := &g.rules
	number := state.Number(token.Digits, token.Number)
	for c := '0'; c <= '9'; c++ {
		r[c] = number
	}
	r['.'] = state.Dot(token.Number, token.ParentAxis, token.CurrentAxis)

	literal := state.Literal(token.Literal)
	r['"'] = literal
	r['\''] = literal

	r['/'] = state.Pair('/', token.DoubleSlash, token.Slash)
	r['>'] = state.Pair('=', token.GreaterThanEqualTo, token.GreaterThan)
	r['<'] = state.Pair('=', token.LessThanEqualTo, token.LessThan)
	r[':'] = state.Pair(':', token.AxisSeparator, token.Colon)
	r['!'] = state.Require('=', token.NotEqualTo)

	for c, t := range map[byte]token.Type{
		'+': token.Plus,
		'-': token.Minus,
		'*': token.MultiplyOperator,
		'=': token.EqualTo,
		'|': token.UnionOperator,
		'(': token.LParen,
		')': token.RParen,
		'[': token.LBracket,
		']': token.RBracket,
		'@': token.AtOperator,
		',': token.Comma,
	} {
		r[c] = state.Single(t)
	}
	return g
}

func (g *Grammar) setNameRules() {
	name := state.Name(g.kw, g.tags, token.Identifier)
	for c := 'a'; c <= 'z'; c++ {
		g.rules[c] = name
		g.rules[c-'a'+'A'] = name
	}
	g.rules['_'] = name
}

// Version returns the grammar's XPath version.
//
func (g *Grammar) Version() Version {
	return g.version
}

// Keywords returns the keyword trie used by the grammar.
//
func (g *Grammar) Keywords() *trie.Trie {
	return g.kw
}

// Rule returns the state function registered for lexemes starting with b, or
// nil.
//
func (g *Grammar) Rule(b byte) xpathlex.StateFn {
	return g.rules[b]
}

// With returns a copy of g where lexemes starting with b are handled by fn.
// When fn is called, b has already been read. A nil fn makes b an invalid
// character.
//
func (g *Grammar) With(b byte, fn xpathlex.StateFn) *Grammar {
	c := *g
	c.rules[b] = fn
	return &c
}

// WithNodeTypes returns a copy of g that emits token.NodeType,
// token.TextNode, token.CommentNode and token.ProcessingInstruction for the
// names node, text, comment and processing-instruction instead of
// token.Identifier. Rules for letters and '_' set with With are replaced.
//
func (g *Grammar) WithNodeTypes() *Grammar {
	c := *g
	c.tags |= trie.NodeType
	c.setNameRules()
	return &c
}

// Init is the initial state function of the grammar. It skips white space
// then dispatches on the first byte of the lexeme.
//
func (g *Grammar) Init(s *xpathlex.State) xpathlex.StateFn {
	c := s.Next()
	for s.IsWhitespace(c) {
		s.Skip()
		c = s.Next()
	}
	if c == xpathlex.EOF {
		s.Backup()
		s.Emit(token.EOF)
		return nil
	}
	if fn := g.rules[c]; fn != nil {
		return fn
	}
	s.Errorf(xpathlex.ErrInvalidChar, "unexpected character %s", state.Describe(c))
	return nil
}

// NewTokenizer returns a tokenizer for g reading from src. See xpathlex.New.
//
func (g *Grammar) NewTokenizer(src xpathlex.Source, size int, cc xpathlex.CharClass) (*xpathlex.Tokenizer, error) {
	return xpathlex.New(src, size, cc, g.Init)
}

// NewTokenizer returns an XPath 1.0 tokenizer reading from src.
//
func NewTokenizer(src xpathlex.Source, size int, cc xpathlex.CharClass) (*xpathlex.Tokenizer, error) {
	return XPath10().NewTokenizer(src, size, cc)
}
