// Copyright 2017-2020 Denis Bernard <db047h@gmail.com>
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

/*
Package xpathlex provides the core of a streaming tokenizer for XPath
expressions, built as a Deterministic Finite State Automaton whose states and
associated actions are implemented as functions.

The grammar itself is provided as an initial state function. Package xpath
provides the XPath 1.0 grammar and package state the state functions it is
made of:

	src := source.String("child::book[@price > 10]")
	defer src.Close()
	t, err := xpath.NewTokenizer(src, 4096, xmlchar.XML10)
	if err != nil {
		// invalid buffer size
		return err
	}
	for {
		tok, err := t.Next()
		if err != nil {
			// lexical or I/O error, the tokenizer cannot be used any more
			return err
		}
		fmt.Println(tok)
		if tok.Type() == token.EOF {
			break
		}
		tok.Release()
	}

Custom grammars call New directly with their own initial state function.
Options such as Filename and PoolSize can be passed to New.

Input buffering

Input is read from a Source into two fixed size buffers used alternately, so
that memory use does not depend on the input size. A forward pointer
scans ahead of the lexeme start; when the lexeme start moves past a buffer,
that buffer is refilled with the next block of input. A lexeme (plus one byte of
look-ahead) must therefore fit in the two buffers: scanning a longer lexeme
fails with ErrBufferFull.

State functions

The implementation is similar to https://golang.org/src/text/template/parse/lex.go.
See also Rob Pike's talk about combining states and actions into state
functions: https://talks.golang.org/2011/lex.slide.

A StateFn is both state and action. It takes a State argument (to allow it to
read from the input stream and emit tokens) and returns another state
function:

	type StateFn func(*State) StateFn

Each call to Tokenizer.Next runs the state machine from the initial state
until a StateFn calls Emit or Errorf, then returns a single token. By
convention, a StateFn that emits a token returns nil. A StateFn that returns
nil without emitting anything (e.g. after reading a comment) causes the bytes
read so far to be discarded and the tokenizer to transition back to the
initial state.

EOF conditions must be handled manually. This means that at the very least,
the initial state function should always check for EOF and emit a token.EOF
token after backing up. Other states should not have to deal with it
explicitly since EOF is not a valid byte. A common exception is tokens that
need a terminator (like quoted literals) where EOF should be checked
explicitly in order to report errors in the absence of a terminator.

Tokens

Tokens are allocated from a per-tokenizer pool. The lexeme is copied into the
token, so a token remains valid while the tokenizer reads more input. Once a
caller is done with a token, it should call Token.Release so that the token
can be reused. Releasing tokens is optional.

Error handling

Errors are not recoverable. Lexical errors are reported as *Error values
carrying the position of the offending lexeme; use errors.Is to check for
ErrBufferFull, ErrUnterminatedLiteral, ErrInvalidChar or ErrMalformed. I/O
errors from the Source are returned as is.

*/
package xpathlex
