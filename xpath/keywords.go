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

package xpath

import (
	"sync"

	"github.com/db47h/xpathlex/token"
	"github.com/db47h/xpathlex/trie"
)

// Axes lists the XPath 1.0 axis names.
//
var Axes = []string{
	"ancestor",
	"ancestor-or-self",
	"attribute",
	"child",
	"descendant",
	"descendant-or-self",
	"following",
	"following-sibling",
	"namespace",
	"parent",
	"preceding",
	"preceding-sibling",
	"self",
}

// Functions lists the XPath 1.0 core function library.
//
var Functions = []string{
	// node set
	"last", "position", "count", "id", "local-name", "namespace-uri", "name",
	// string
	"string", "concat", "starts-with", "contains", "substring-before",
	"substring-after", "substring", "string-length", "normalize-space",
	"translate",
	// boolean
	"boolean", "not", "true", "false", "lang",
	// number
	"number", "sum", "floor", "ceiling", "round",
}

var operators = []struct {
	w string
	t token.Type
}{
	{"and", token.And},
	{"or", token.Or},
	{"div", token.Div},
	{"mod", token.Mod},
}

var nodeTypes = []struct {
	w string
	t token.Type
}{
	{"node", token.NodeType},
	{"text", token.TextNode},
	{"comment", token.CommentNode},
	{"processing-instruction", token.ProcessingInstruction},
}

var (
	kwOnce sync.Once
	kw     *trie.Trie
)

// Keywords returns the XPath 1.0 keyword trie. It is built on first use and
// must not be modified.
//
func Keywords() *trie.Trie {
	kwOnce.Do(func() {
		t := trie.New()
		for _, w := range Axes {
			t.Insert(w, trie.Axis, token.AxisName)
		}
		for _, w := range Functions {
			t.Insert(w, trie.Function, token.Function)
		}
		for _, o := range operators {
			t.Insert(o.w, trie.Keyword, o.t)
		}
		for _, n := range nodeTypes {
			t.Insert(n.w, trie.NodeType, n.t)
		}
		kw = t
	})
	return kw
}
