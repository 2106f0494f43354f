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
	"io"

	"github.com/db47h/xpathlex/token"
)

// EOF is the return value from State.Next when the end of input is reached.
//
const EOF = -1

// A Source is a named byte stream. The Tokenizer only calls Read; the Source
// is closed by whoever created it.
//
type Source interface {
	io.Reader
	io.Closer
	// Name returns an identifier for the source, used in positions.
	Name() string
}

// CharClass classifies bytes according to a version of the XML
// specification. See package xmlchar.
//
type CharClass interface {
	IsWhitespace(b byte) bool
}

// A StateFn is a state function.
//
// A StateFn that has called Emit or Errorf should return nil. If a StateFn
// returns nil without having emitted a token, the bytes read so far are
// discarded and the tokenizer transitions back to its initial state function.
// Returning nil without emitting nor reading any byte since the last restart
// would loop forever and panics.
//
type StateFn func(s *State) StateFn

// Tokenizer produces tokens from a Source.
//
type Tokenizer state

// State holds the internal state of the tokenizer while processing a given
// input. Its methods should only be called from StateFn functions.
//
type State state

type state struct {
	buffers
	name    string
	cc      CharClass
	init    StateFn
	pool    pool
	t       token.Type // type of the emitted token, token.Invalid if none
	err     error      // sticky error
	line    int        // line of the lexeme start
	lineOff int64      // offset of the first byte of that line
	scratch []byte
}

// New creates a new tokenizer reading from src.
//
// size is the capacity of each of the two input buffers. A lexeme and one
// byte of look-ahead must fit within the remainder of the buffer the lexeme
// starts in plus one full buffer; longer lexemes cause Next to fail with
// ErrBufferFull.
//
// cc classifies white space and init is the initial state function of the
// grammar (see package xpath).
//
// New reads the first two buffers from src before returning. Read errors are
// reported by Next when the tokenizer reaches the point where input stopped.
//
func New(src Source, size int, cc CharClass, init StateFn, opts ...Option) (*Tokenizer, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBufferSize, size)
	}
	if cc == nil {
		panic("no character class provided")
	}
	if init == nil {
		panic("no initial state function provided")
	}
	o := options{name: src.Name()}
	for _, opt := range opts {
		opt(&o)
	}
	t := &Tokenizer{
		name: o.name,
		cc:   cc,
		init: init,
		line: 1,
	}
	t.pool.grow(o.poolSize)
	t.buffers.init(src, size)
	return t, nil
}

// Name returns the file name reported in positions.
//
func (t *Tokenizer) Name() string {
	return t.name
}

// BufferSize returns the capacity of each input buffer.
//
func (t *Tokenizer) BufferSize() int {
	return int(t.size)
}

// Next returns the next token. Once the end of input has been reached, Next
// returns a token.EOF token with an empty lexeme on every call.
//
// Any error is final: subsequent calls return the same error.
//
// The returned token is owned by the caller. Calling Release when done with
// it allows the tokenizer to reuse it.
//
func (t *Tokenizer) Next() (*Token, error) {
	if t.err != nil {
		return nil, t.err
	}
	s := (*State)(t)
	t.t = token.Invalid
	start := t.begin
	for st := t.init; t.t == token.Invalid && t.err == nil; {
		st = st(s)
		if st != nil || t.t != token.Invalid || t.err != nil {
			continue
		}
		if t.fwd < start {
			panic("state function returned without consuming input or emitting a token")
		}
		s.Skip()
		start = t.begin
		st = t.init
	}
	if t.err != nil {
		return nil, t.err
	}
	tok := t.pool.get()
	tok.typ = t.t
	tok.pos = s.position(t.begin)
	tok.b = t.appendLexeme(tok.b)
	s.commit(tok.b)
	return tok, nil
}

// Next advances to the next byte of input and returns it. It returns EOF at
// the end of input or if an error occurred.
//
func (s *State) Next() int {
	if s.err != nil {
		return EOF
	}
	if !s.advance(1) {
		s.fail(&Error{
			Pos: s.position(s.begin),
			Err: ErrBufferFull,
			Msg: fmt.Sprintf("out of buffer space: lexeme longer than buffer size %d", s.size),
		})
		return EOF
	}
	c := s.current()
	if c == EOF && s.ioErr != nil {
		s.fail(s.ioErr)
	}
	return c
}

// Backup reverts the last call to Next. Backing up past the start of the
// current lexeme is a programming error and panics.
//
func (s *State) Backup() {
	if s.err != nil {
		return
	}
	s.retreat(1)
}

// Peek returns the next byte without consuming it.
//
func (s *State) Peek() int {
	c := s.Next()
	s.Backup()
	return c
}

// Current returns the last byte returned by Next, or EOF if no byte of the
// current lexeme has been read yet.
//
func (s *State) Current() int {
	return s.current()
}

// Pos returns the offset of the last byte returned by Next.
//
func (s *State) Pos() int64 {
	return s.fwd
}

// TokenPos returns the offset of the first byte of the current lexeme.
//
func (s *State) TokenPos() int64 {
	return s.begin
}

// IsWhitespace returns true if c is a white space character.
//
func (s *State) IsWhitespace(c int) bool {
	return c >= 0 && s.cc.IsWhitespace(byte(c))
}

// Skip discards the bytes read so far and starts a new lexeme after the last
// byte returned by Next.
//
func (s *State) Skip() {
	s.scratch = s.appendLexeme(s.scratch[:0])
	s.commit(s.scratch)
}

// Emit sets the type of the token to be returned by Tokenizer.Next. The
// lexeme spans from the lexeme start up to and including the last byte
// returned by Next.
//
func (s *State) Emit(t token.Type) {
	if t == token.Invalid {
		panic("emit of invalid token type")
	}
	s.t = t
}

// Errorf reports a lexical error at the start of the current lexeme. err
// should be one of the Err* variables of this package. Only the first error
// is kept.
//
func (s *State) Errorf(err error, format string, args ...interface{}) {
	s.fail(&Error{
		Pos: s.position(s.begin),
		Err: err,
		Msg: fmt.Sprintf(format, args...),
	})
}

// Err returns the error reported so far, if any.
//
func (s *State) Err() error {
	return s.err
}

func (s *State) fail(err error) {
	if s.err == nil {
		s.err = err
	}
}

// commit updates line information with the lexeme b then starts a new lexeme.
//
func (s *State) commit(b []byte) {
	for i, c := range b {
		if c == '\n' {
			s.line++
			s.lineOff = s.begin + int64(i) + 1
		}
	}
	s.mark()
}

// position returns the Position of offset pos, which must not be before
// the start of the line of the current lexeme.
//
func (s *State) position(pos int64) Position {
	return Position{
		Filename: s.name,
		Offset:   pos,
		Line:     s.line,
		Column:   int(pos-s.lineOff) + 1,
	}
}
