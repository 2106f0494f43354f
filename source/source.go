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

// Package source provides xpathlex.Source implementations for in-memory
// buffers, strings, files and generic readers.
//
package source

import (
	"bytes"
	"errors"
	"fmt"
	"hash/fnv"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrClosed is returned by Read after Close has been called.
//
var ErrClosed = errors.New("read from closed source")

// A Reader is a named io.Reader. It implements xpathlex.Source.
//
type Reader struct {
	name   string
	r      io.Reader
	c      io.Closer
	closed bool
}

// New returns a Source reading from r. If r implements io.Closer, closing the
// Source closes r.
//
func New(name string, r io.Reader) *Reader {
	c, _ := r.(io.Closer)
	return &Reader{name: name, r: r, c: c}
}

// Bytes returns a Source reading from b.
//
func Bytes(name string, b []byte) *Reader {
	return New(name, bytes.NewReader(b))
}

// String returns a Source reading from s. Its name is derived from a hash of
// s.
//
func String(s string) *Reader {
	h := fnv.New32a()
	io.WriteString(h, s)
	return NamedString(fmt.Sprintf("string/0x%08X", h.Sum32()), s)
}

// NamedString returns a Source named name reading from s.
//
func NamedString(name, s string) *Reader {
	return New(name, strings.NewReader(s))
}

// Open opens the named file. The source is named after the absolute path of
// the file.
//
func Open(path string) (*Reader, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(abs)
	if err != nil {
		return nil, err
	}
	return New(abs, f), nil
}

// Decode returns a Source that transcodes r from encoding e to UTF-8. A
// leading byte order mark overrides e and is removed. If e is nil, r is
// expected to be UTF-8 with an optional BOM.
//
func Decode(name string, r io.Reader, e encoding.Encoding) *Reader {
	var d transform.Transformer
	if e != nil {
		d = e.NewDecoder()
	} else {
		d = unicode.UTF8.NewDecoder()
	}
	s := New(name, transform.NewReader(r, unicode.BOMOverride(d)))
	s.c, _ = r.(io.Closer)
	return s
}

// Lookup returns the encoding for the given label (e.g. "utf-8", "utf-16le",
// "iso-8859-1"), as defined by the WHATWG Encoding Standard.
//
func Lookup(label string) (encoding.Encoding, error) {
	return htmlindex.Get(label)
}

// Name returns the source name.
//
func (s *Reader) Name() string {
	return s.name
}

// Read implements io.Reader.
//
func (s *Reader) Read(p []byte) (int, error) {
	if s.closed {
		return 0, ErrClosed
	}
	if len(p) == 0 {
		return 0, nil
	}
	return s.r.Read(p)
}

// Close closes the source. Subsequent calls to Read return ErrClosed.
//
func (s *Reader) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if s.c != nil {
		return s.c.Close()
	}
	return nil
}
