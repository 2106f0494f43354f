package xpathlex

import (
	"testing"

	"github.com/db47h/xpathlex/token"
	"github.com/stretchr/testify/assert"
)

func TestPool_LIFO(t *testing.T) {
	var p pool
	t1, t2, t3 := p.get(), p.get(), p.get()
	assert.Equal(t, 0, p.len())
	t1.Release()
	t2.Release()
	t3.Release()
	assert.Equal(t, 3, p.len())

	assert.Same(t, t3, p.get())
	assert.Same(t, t2, p.get())
	assert.Same(t, t1, p.get())
	assert.NotSame(t, t1, p.get(), "empty pool must allocate")
}

func TestPool_ReleaseIsIdempotent(t *testing.T) {
	var p pool
	tok := p.get()
	tok.Release()
	tok.Release()
	assert.Equal(t, 1, p.len())

	a, b := p.get(), p.get()
	assert.Same(t, tok, a)
	assert.NotSame(t, a, b)

	// released again after reuse
	a.Release()
	assert.Equal(t, 1, p.len())
}

func TestPool_Reset(t *testing.T) {
	var p pool
	tok := p.get()
	tok.typ = token.Literal
	tok.b = append(tok.b, "'abc'"...)
	tok.pos = Position{Filename: "x", Line: 1, Column: 3}
	tok.Release()

	tok = p.get()
	assert.Equal(t, token.Invalid, tok.Type())
	assert.Empty(t, tok.Bytes())
	assert.False(t, tok.Pos().IsValid())
	assert.True(t, cap(tok.b) >= 5, "lexeme storage is reused")
}

func TestToken_ReleaseOrphan(t *testing.T) {
	var tok Token
	assert.NotPanics(t, tok.Release)
}

func TestPool_Grow(t *testing.T) {
	var p pool
	p.grow(2)
	assert.Equal(t, 2, p.len())
	a, b := p.get(), p.get()
	assert.NotSame(t, a, b)
	assert.Equal(t, 0, p.len())
	b.Release()
	a.Release()
	assert.Same(t, a, p.get())
}
