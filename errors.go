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
	"errors"
	"fmt"
)

// Common errors. Lexical errors are reported as *Error values wrapping one of
// these.
//
var (
	ErrBufferSize          = errors.New("buffer size must be greater than zero")
	ErrBufferFull          = errors.New("out of buffer space")
	ErrUnterminatedLiteral = errors.New("unterminated literal")
	ErrInvalidChar         = errors.New("unexpected character")
	ErrMalformed           = errors.New("malformed token")
)

// Position describes a source position including the source name, byte
// offset, line, and column location.
//
type Position struct {
	Filename string
	Offset   int64 // 0-based byte offset
	Line     int   // 1-based line number
	Column   int   // 1-based column number (byte index)
}

// IsValid returns true if p is a valid position.
//
func (p Position) IsValid() bool {
	return p.Line > 0
}

func (p Position) String() string {
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
}

// Error is a lexical error. Lexical errors are not recoverable: once Next has
// returned an error, it will keep returning the same error.
//
type Error struct {
	Pos Position // start of the offending lexeme
	Err error    // one of the Err* variables in this package
	Msg string
}

func (e *Error) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = e.Err.Error()
	}
	return e.Pos.String() + ": " + msg
}

// Unwrap returns the underlying error.
//
func (e *Error) Unwrap() error {
	return e.Err
}
