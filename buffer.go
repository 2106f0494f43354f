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

import "io"

// sentinel marks the end of valid data in a partially filled buffer.
//
const sentinel = 0

// buffers implements double buffering over a Source.
//
// The input is split in blocks of size bytes. Block k lives in buf[k&1].
// Blocks lo and lo+1 are loaded at all times. All offsets are absolute
// stream offsets.
//
type buffers struct {
	src   io.Reader
	size  int64
	buf   [2][]byte // size+1 bytes each, the extra byte holds the sentinel
	n     [2]int    // valid bytes in each buffer
	lo    int64     // block held by the older buffer
	fwd   int64     // offset of the last byte read, begin-1 if none
	begin int64     // offset of the first byte of the current lexeme
	eof   bool      // src is exhausted or failed, no more reads
	ioErr error     // first I/O error other than io.EOF
}

// init primes both buffers with the first two blocks of input.
//
func (b *buffers) init(src io.Reader, size int) {
	b.src = src
	b.size = int64(size)
	for i := range b.buf {
		b.buf[i] = make([]byte, size+1)
	}
	b.fwd = -1
	b.fill(0)
	b.fill(1)
}

// fill loads the next block of input into buf[slot]. A block shorter than
// size means that the end of input has been reached.
//
func (b *buffers) fill(slot int) {
	buf := b.buf[slot][:b.size]
	n := 0
	for empty := 0; n < len(buf) && !b.eof; {
		m, err := b.src.Read(buf[n:])
		n += m
		if err != nil {
			b.eof = true
			if err != io.EOF {
				b.ioErr = err
			}
			break
		}
		if m > 0 {
			empty = 0
		} else if empty++; empty == 100 {
			b.eof = true
			b.ioErr = io.ErrNoProgress
		}
	}
	b.n[slot] = n
	b.buf[slot][n] = sentinel
}

// advance moves the forward pointer count bytes ahead. It returns false and
// leaves the forward pointer unchanged if the new position is not within the
// two loaded blocks, i.e. if the lexeme would need a third buffer.
//
func (b *buffers) advance(count int) bool {
	p := b.fwd + int64(count)
	if p/b.size > b.lo+1 {
		return false
	}
	b.fwd = p
	return true
}

// retreat moves the forward pointer count bytes back. It panics if the
// forward pointer would end up before the lexeme start.
//
func (b *buffers) retreat(count int) {
	p := b.fwd - int64(count)
	if p < b.begin-1 {
		panic("retreat past lexeme start")
	}
	b.fwd = p
}

// current returns the byte at the forward pointer, or EOF if the forward
// pointer is at or past the end of input, or if no byte of the current lexeme
// has been read.
//
func (b *buffers) current() int {
	if b.fwd < b.begin {
		return EOF
	}
	blk := b.fwd / b.size
	i := int(b.fwd - blk*b.size)
	if i < b.n[blk&1] {
		return int(b.buf[blk&1][i])
	}
	return EOF
}

// mark sets the lexeme start right after the forward pointer. Blocks that
// the lexeme start leaves behind are refilled.
//
func (b *buffers) mark() {
	b.begin = b.fwd + 1
	for b.begin/b.size > b.lo {
		b.fill(int(b.lo & 1))
		b.lo++
	}
}

// appendLexeme appends the bytes in [begin, fwd] to dst and returns the
// extended slice.
//
func (b *buffers) appendLexeme(dst []byte) []byte {
	for p := b.begin; p <= b.fwd; {
		blk := p / b.size
		end := (blk + 1) * b.size
		if end > b.fwd+1 {
			end = b.fwd + 1
		}
		i := p - blk*b.size
		dst = append(dst, b.buf[blk&1][i:i+end-p]...)
		p = end
	}
	return dst
}
