// Copyright 2017-2018 Denis Bernard <db047h@gmail.com>
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

package xpathlex

import (
	"fmt"

	"github.com/db47h/xpathlex/token"
)

// A Token is a classified lexeme.
//
// Tokens are recycled: after a call to Release, the Token and the slice
// returned by Bytes must no longer be used.
//
type Token struct {
	typ  token.Type
	pos  Position
	b    []byte
	pool *pool
	free bool // true while owned by the pool
}

// Type returns the token type.
//
func (t *Token) Type() token.Type {
	return t.typ
}

// Bytes returns the lexeme. The returned slice is owned by the token.
//
func (t *Token) Bytes() []byte {
	return t.b
}

// Lexeme returns the lexeme as a string.
//
func (t *Token) Lexeme() string {
	return string(t.b)
}

// Pos returns the position of the first byte of the lexeme.
//
func (t *Token) Pos() Position {
	return t.pos
}

// String returns a string representation of the token. This should be used
// only for debugging purposes as the output format is not guaranteed to be
// stable.
//
func (t *Token) String() string {
	return fmt.Sprintf("%s %q", t.typ, t.b)
}

// Release returns the token to the tokenizer that produced it. Releasing a
// token more than once is a no-op.
//
func (t *Token) Release() {
	if t.free || t.pool == nil {
		return
	}
	t.pool.put(t)
}

func (t *Token) reset() {
	t.typ = token.Invalid
	t.pos = Position{}
	t.b = t.b[:0]
	t.free = false
}

// pool is a LIFO stack of released tokens.
//
type pool struct {
	free []*Token
}

// get pops the most recently released token or allocates a new one.
//
func (p *pool) get() *Token {
	n := len(p.free)
	if n == 0 {
		return &Token{pool: p}
	}
	t := p.free[n-1]
	p.free[n-1] = nil
	p.free = p.free[:n-1]
	t.reset()
	return t
}

func (p *pool) put(t *Token) {
	t.free = true
	p.free = append(p.free, t)
}

// grow adds n new tokens to the pool.
//
func (p *pool) grow(n int) {
	for ; n > 0; n-- {
		p.put(&Token{pool: p})
	}
}

func (p *pool) len() int {
	return len(p.free)
}
