package xpath_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/db47h/xpathlex"
	"github.com/db47h/xpathlex/source"
	"github.com/db47h/xpathlex/token"
	"github.com/db47h/xpathlex/xmlchar"
	"github.com/db47h/xpathlex/xpath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type res []string

type testData struct {
	name string
	in   string
	res  res
}

// lex returns the tokens of input as "TYPE lexeme" strings. It stops after
// EOF or the first error, formatted as "error: message".
func lex(t *testing.T, g *xpath.Grammar, in string, size int) res {
	t.Helper()
	tk, err := g.NewTokenizer(source.String(in), size, xmlchar.XML10)
	require.NoError(t, err)
	var r res
	for {
		tok, err := tk.Next()
		if err != nil {
			var e *xpathlex.Error
			if errors.As(err, &e) {
				r = append(r, "error: "+e.Msg)
			} else {
				r = append(r, "error: "+err.Error())
			}
			return r
		}
		r = append(r, tok.Type().String()+" "+tok.Lexeme())
		typ := tok.Type()
		tok.Release()
		if typ == token.EOF {
			return r
		}
	}
}

func runTests(t *testing.T, g *xpath.Grammar, td []testData) {
	t.Helper()
	for _, sample := range td {
		t.Run(sample.name, func(t *testing.T) {
			assert.Equal(t, sample.res, lex(t, g, sample.in, 64))
		})
	}
}

func TestXPath10(t *testing.T) {
	runTests(t, xpath.XPath10(), []testData{
		{"empty", "", res{"EOF "}},
		{"whitespace", " \t\n\r  \n", res{"EOF "}},
		{"child::book", "child::book", res{"AXIS_NAME child", "AXIS_SEPARATOR ::", "IDENTIFIER book", "EOF "}},
		{"literals", ` "double" 'single' "" '' "it's" '"quote"' `, res{
			`LITERAL "double"`, `LITERAL 'single'`, `LITERAL ""`, `LITERAL ''`,
			`LITERAL "it's"`, `LITERAL '"quote"'`, "EOF ",
		}},
		{"numbers", " 123 0 45.67 0.5 .5 ", res{"DIGITS 123", "DIGITS 0", "NUMBER 45.67", "NUMBER 0.5", "NUMBER .5", "EOF "}},
		{"operators", "+ - * = | / @", res{
			"PLUS +", "MINUS -", "MULTIPLY_OPERATOR *", "EQUAL_TO =",
			"UNION_OPERATOR |", "SLASH /", "AT_OPERATOR @", "EOF ",
		}},
		{"comparison", "< > <= >= = !=", res{
			"LESS_THAN <", "GREATER_THAN >", "LESS_THAN_EQUAL_TO <=",
			"GREATER_THAN_EQUAL_TO >=", "EQUAL_TO =", "NOT_EQUAL_TO !=", "EOF ",
		}},
		{"paths", "/ // . .. ::", res{"SLASH /", "DOUBLE_SLASH //", "CURRENT_AXIS .", "PARENT_AXIS ..", "AXIS_SEPARATOR ::", "EOF "}},
		{"punctuation", "( ) [ ] ,", res{"LPAREN (", "RPAREN )", "LBRACKET [", "RBRACKET ]", "COMMA ,", "EOF "}},
		{"no spaces", "a<=b!=c", res{"IDENTIFIER a", "LESS_THAN_EQUAL_TO <=", "IDENTIFIER b", "NOT_EQUAL_TO !=", "IDENTIFIER c", "EOF "}},
		{"dot", ".", res{"CURRENT_AXIS .", "EOF "}},
		{"dot dot", "..", res{"PARENT_AXIS ..", "EOF "}},
		{"dot number", ".5", res{"NUMBER .5", "EOF "}},
		{"dot dot digits", "..5", res{"PARENT_AXIS ..", "DIGITS 5", "EOF "}},
		{"three dots", "...", res{"PARENT_AXIS ..", "CURRENT_AXIS .", "EOF "}},
		{"trailing dot", "1.", res{"DIGITS 1", "CURRENT_AXIS .", "EOF "}},
		{"count()", "count()", res{"FUNCTION count", "LPAREN (", "RPAREN )", "EOF "}},
		{"unary minus", "-5", res{"MINUS -", "DIGITS 5", "EOF "}},
		{"minus decimal", "-.5", res{"MINUS -", "NUMBER .5", "EOF "}},
		{"minus space", "- 5", res{"MINUS -", "DIGITS 5", "EOF "}},
		{"operator keywords", "and or mod div", res{"AND and", "OR or", "MOD mod", "DIV div", "EOF "}},
		{"identifiers", " simple _underscore with-hyphen with.dot a123", res{
			"IDENTIFIER simple", "IDENTIFIER _underscore", "IDENTIFIER with-hyphen",
			"IDENTIFIER with.dot", "IDENTIFIER a123", "EOF ",
		}},
		{"keyword prefix", "childish counter an", res{"IDENTIFIER childish", "IDENTIFIER counter", "IDENTIFIER an", "EOF "}},
		{"hyphen minus", "a - b", res{"IDENTIFIER a", "MINUS -", "IDENTIFIER b", "EOF "}},
		{"hyphen digit", "a-1", res{"IDENTIFIER a", "MINUS -", "DIGITS 1", "EOF "}},
		{"node types off", "node() text()", res{
			"IDENTIFIER node", "LPAREN (", "RPAREN )",
			"IDENTIFIER text", "LPAREN (", "RPAREN )", "EOF ",
		}},
		{"colon", "a:b", res{"IDENTIFIER a", "COLON :", "IDENTIFIER b", "EOF "}},
		{"predicate", "//book[@price > 10.5 and starts-with(title, 'XPath')]", res{
			"DOUBLE_SLASH //", "IDENTIFIER book", "LBRACKET [", "AT_OPERATOR @",
			"IDENTIFIER price", "GREATER_THAN >", "NUMBER 10.5", "AND and",
			"FUNCTION starts-with", "LPAREN (", "IDENTIFIER title", "COMMA ,",
			"LITERAL 'XPath'", "RPAREN )", "RBRACKET ]", "EOF ",
		}},
		{"union", "sum(//@value | /data/item/@val) + count(//*)", res{
			"FUNCTION sum", "LPAREN (", "DOUBLE_SLASH //", "AT_OPERATOR @",
			"IDENTIFIER value", "UNION_OPERATOR |", "SLASH /", "IDENTIFIER data",
			"SLASH /", "IDENTIFIER item", "SLASH /", "AT_OPERATOR @",
			"IDENTIFIER val", "RPAREN )", "PLUS +", "FUNCTION count",
			"LPAREN (", "DOUBLE_SLASH //", "MULTIPLY_OPERATOR *", "RPAREN )", "EOF ",
		}},
	})
}

func TestXPath10_Errors(t *testing.T) {
	runTests(t, xpath.XPath10(), []testData{
		{"unterminated", "'abc", res{"error: unterminated literal"}},
		{"unterminated after token", "a 'abc", res{"IDENTIFIER a", "error: unterminated literal"}},
		{"bang", "!a", res{`error: '!' must be followed by '='`}},
		{"bang eof", "a !", res{"IDENTIFIER a", `error: '!' must be followed by '='`}},
		{"invalid", "a # b", res{"IDENTIFIER a", "error: unexpected character '#' (0x23)"}},
		{"dollar", "$x", res{"error: unexpected character '$' (0x24)"}},
		{"control", "\x01", res{"error: unexpected character 0x01"}},
		{"non ascii", "é", res{"error: unexpected character 0xc3"}},
		{"underscore", "_1", res{"error: '_' must be followed by a letter, got '1' (0x31)"}},
		{"nul", "a\x00", res{"IDENTIFIER a", "error: unexpected character 0x00"}},
	})
}

func TestAxes(t *testing.T) {
	var in strings.Builder
	var exp res
	for _, a := range xpath.Axes {
		in.WriteString(a + ":: ")
		exp = append(exp, "AXIS_NAME "+a, "AXIS_SEPARATOR ::")
	}
	exp = append(exp, "EOF ")
	assert.Equal(t, exp, lex(t, xpath.XPath10(), in.String(), 64))
}

func TestFunctions(t *testing.T) {
	var in strings.Builder
	var exp res
	for _, f := range xpath.Functions {
		in.WriteString(" " + f + "()")
		exp = append(exp, "FUNCTION "+f, "LPAREN (", "RPAREN )")
	}
	exp = append(exp, "EOF ")
	assert.Equal(t, exp, lex(t, xpath.XPath10(), in.String(), 64))
}

func TestWithNodeTypes(t *testing.T) {
	g := xpath.XPath10().WithNodeTypes()
	runTests(t, g, []testData{
		{"node types", "node() text() comment() processing-instruction()", res{
			"NODE_TYPE node", "LPAREN (", "RPAREN )",
			"TEXT_NODE text", "LPAREN (", "RPAREN )",
			"COMMENT_NODE comment", "LPAREN (", "RPAREN )",
			"PROCESSING_INSTRUCTION processing-instruction", "LPAREN (", "RPAREN )",
			"EOF ",
		}},
		{"others unchanged", "child::nodes", res{"AXIS_NAME child", "AXIS_SEPARATOR ::", "IDENTIFIER nodes", "EOF "}},
	})
	// the source grammar is unchanged
	assert.Equal(t, res{"IDENTIFIER node", "EOF "}, lex(t, xpath.XPath10(), "node", 64))
}

func TestWith(t *testing.T) {
	const tokVar = token.User
	varRef := func(s *xpathlex.State) xpathlex.StateFn {
		for c := s.Next(); c >= 'a' && c <= 'z'; c = s.Next() {
		}
		s.Backup()
		s.Emit(tokVar)
		return nil
	}
	g := xpath.XPath10().With('$', varRef)
	assert.Equal(t, res{"IDENTIFIER a", "EQUAL_TO =", "Type(64) $foo", "EOF "}, lex(t, g, "a = $foo", 64))
	assert.NotNil(t, g.Rule('$'))
	assert.Nil(t, xpath.XPath10().Rule('$'))

	g = xpath.XPath10().With('@', nil)
	assert.Equal(t, res{"error: unexpected character '@' (0x40)"}, lex(t, g, "@id", 64))

	// a rule returning nil without emitting discards what it read
	discard := func(s *xpathlex.State) xpathlex.StateFn { return nil }
	g = xpath.XPath10().With('#', discard)
	assert.Equal(t, res{"IDENTIFIER a", "EOF "}, lex(t, g, "#a", 64))
	assert.Equal(t, res{"IDENTIFIER a", "IDENTIFIER b", "EOF "}, lex(t, g, "a #b#", 1))

	skipWord := func(s *xpathlex.State) xpathlex.StateFn {
		for c := s.Next(); c >= 'a' && c <= 'z'; c = s.Next() {
		}
		s.Backup()
		return nil
	}
	g = xpath.XPath10().With('#', skipWord)
	assert.Equal(t, res{"IDENTIFIER a", "PLUS +", "IDENTIFIER b", "EOF "}, lex(t, g, "a #xyz+ b", 64))
}

func TestVersions(t *testing.T) {
	td := []struct {
		s string
		v xpath.Version
		g *xpath.Grammar
	}{
		{"1.0", xpath.Version10, xpath.XPath10()},
		{"3.0", xpath.Version30, xpath.XPath30()},
		{"3.1", xpath.Version31, xpath.XPath31()},
	}
	for _, d := range td {
		t.Run(d.s, func(t *testing.T) {
			v, ok := xpath.ParseVersion(d.s)
			require.True(t, ok)
			assert.Equal(t, d.v, v)
			assert.Equal(t, d.s, v.String())
			assert.Same(t, d.g, xpath.ByVersion(v))
			assert.Equal(t, d.v, d.g.Version())
			assert.Same(t, xpath.Keywords(), d.g.Keywords())
			assert.Equal(t, res{"AXIS_NAME child", "AXIS_SEPARATOR ::", "IDENTIFIER book", "EOF "}, lex(t, d.g, "child::book", 64))
		})
	}
	_, ok := xpath.ParseVersion("2.0")
	assert.False(t, ok)
	assert.Equal(t, "unknown", xpath.Version(42).String())
}

func TestBufferSizeInvariance(t *testing.T) {
	// Results at size 4096 are the reference. A lexeme plus its look-ahead
	// byte must fit in the remainder of the block it starts in plus one full
	// block; longer lexemes fail with ErrBufferFull. With a buffer size of 1,
	// that leaves room for single byte lexemes only (two byte operators like
	// "//" or "!=" need no look-ahead after their second byte), hence the
	// three input sets.
	td := []struct {
		sizes []int
		in    []string
	}{
		{[]int{1, 8, 64}, []string{
			"",
			"   ",
			"1+2*(3-4)",
			"a|b/c//d",
			"@x[.!=..]",
			"a:b::c , 5<=6>=7",
			"\n\t x \r\n y",
		}},
		{[]int{8, 64}, []string{
			"child::book",
			"...",
			"//book[@price > 10.5 and title = 'XPath']",
			"self::x/text() div 3.25 mod .5",
			"'abc",
			"a ! b",
		}},
		{[]int{64}, []string{
			"sum(//@value | /data/item/@val) + count(//*)",
			"ancestor-or-self::node()[position() != last()]",
			"concat('a long literal that spans more than eight bytes', \"x\")",
		}},
	}
	g := xpath.XPath10()
	for _, d := range td {
		for _, in := range d.in {
			exp := lex(t, g, in, 4096)
			for _, size := range d.sizes {
				assert.Equal(t, exp, lex(t, g, in, size), "size %d: %q", size, in)
			}
		}
	}
}

func TestBufferFull(t *testing.T) {
	tk, err := xpath.NewTokenizer(source.String("'0123456789'"), 4, xmlchar.XML10)
	require.NoError(t, err)
	_, err = tk.Next()
	assert.True(t, errors.Is(err, xpathlex.ErrBufferFull))
	_, err2 := tk.Next()
	assert.Equal(t, err, err2)
}

func TestPositions(t *testing.T) {
	tk, err := xpath.NewTokenizer(source.NamedString("expr", "a\n  b\r\n\tc"), 8, xmlchar.XML10)
	require.NoError(t, err)
	var pos []string
	for {
		tok, err := tk.Next()
		require.NoError(t, err)
		pos = append(pos, tok.Pos().String())
		if tok.Type() == token.EOF {
			break
		}
	}
	assert.Equal(t, []string{"expr:1:1", "expr:2:3", "expr:3:2", "expr:3:3"}, pos)
}

func TestXML11Whitespace(t *testing.T) {
	tk, err := xpath.NewTokenizer(source.String("a\u0085b"), 16, xmlchar.XML11)
	require.NoError(t, err)
	tok, err := tk.Next()
	require.NoError(t, err)
	assert.Equal(t, "a", tok.Lexeme())
	// NEL is not white space at the byte level
	_, err = tk.Next()
	assert.True(t, errors.Is(err, xpathlex.ErrInvalidChar))
}

func TestEOFRepeats(t *testing.T) {
	tk, err := xpath.NewTokenizer(source.String(" a "), 1, xmlchar.XML10)
	require.NoError(t, err)
	tok, err := tk.Next()
	require.NoError(t, err)
	assert.Equal(t, "a", tok.Lexeme())
	for i := 0; i < 3; i++ {
		tok, err = tk.Next()
		require.NoError(t, err)
		assert.Equal(t, token.EOF, tok.Type())
		assert.Empty(t, tok.Bytes())
		assert.Equal(t, 4, tok.Pos().Column)
	}
}
