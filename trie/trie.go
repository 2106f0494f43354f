// Package trie implements the byte-keyed search tree used to classify
// identifier-shaped runs as XPath keywords.
//
// A Trie is built once and is read-only afterwards. It can then be shared by
// any number of tokenizers without synchronization.
//
package trie

import "github.com/db47h/xpathlex/token"

// A Tag is a set of keyword categories.
//
type Tag uint8

// Keyword categories.
//
const (
	Axis     Tag = 1 << iota // axis names
	Function                 // core function library
	Keyword                  // operator keywords and, or, div, mod
	NodeType                 // node type tests
)

type nodeList map[byte]*Node

// A Node is a node in the search tree.
//
type Node struct {
	c   nodeList // child nodes
	tag Tag
	t   token.Type
}

// Next returns the child node for byte b, or nil if there is no match. Next
// can be called on a nil *Node and will return nil.
//
func (n *Node) Next(b byte) *Node {
	if n == nil {
		return nil
	}
	return n.c[b]
}

// Tag returns the categories of the keyword ending at n. It is zero for
// intermediate nodes.
//
func (n *Node) Tag() Tag {
	if n == nil {
		return 0
	}
	return n.tag
}

// Type returns the token type registered for the keyword ending at n, or
// token.Invalid.
//
func (n *Node) Type() token.Type {
	if n == nil {
		return token.Invalid
	}
	return n.t
}

// Is returns true if the keyword ending at n belongs to any of the categories
// in tag.
//
func (n *Node) Is(tag Tag) bool {
	return n.Tag()&tag != 0
}

// A Trie holds a set of keywords.
//
type Trie struct {
	root Node
}

// New returns an empty Trie.
//
func New() *Trie {
	return &Trie{root: Node{c: make(nodeList)}}
}

// Root returns the root node. Traversal of a keyword starts with
// Root().Next(firstByte).
//
func (t *Trie) Root() *Node {
	return &t.root
}

// Insert registers the keyword w with the given category and token type.
// It panics if w is empty or has already been registered with a different
// token type.
//
func (t *Trie) Insert(w string, tag Tag, typ token.Type) {
	if w == "" {
		panic("empty keyword")
	}
	n := &t.root
	for i := 0; i < len(w); i++ {
		c, ok := n.c[w[i]]
		if !ok {
			c = &Node{c: make(nodeList)}
			n.c[w[i]] = c
		}
		n = c
	}
	if n.t != token.Invalid && n.t != typ {
		panic("keyword " + w + " registered twice")
	}
	n.tag |= tag
	n.t = typ
}

// Lookup traverses the trie for the whole word w and returns the node where
// it ends, or nil.
//
func (t *Trie) Lookup(w string) *Node {
	n := &t.root
	for i := 0; i < len(w) && n != nil; i++ {
		n = n.Next(w[i])
	}
	return n
}
