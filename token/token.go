// Package token defines constants representing the lexical tokens of XPath
// expressions.
//
package token

import "strconv"

// Type represents a token's type.
//
type Type uint

// Token types.
//
const (
	Invalid              Type = iota // never emitted
	EOF                              // end of input
	Literal                          // "..." or '...'
	AxisName                         // child, descendant-or-self, ...
	Function                         // count, starts-with, ...
	Digits                           // 123
	Number                           // 1.5, .5
	Slash                            // /
	DoubleSlash                      // //
	UnionOperator                    // |
	Plus                             // +
	Minus                            // -
	EqualTo                          // =
	NotEqualTo                       // !=
	LessThan                         // <
	LessThanEqualTo                  // <=
	GreaterThan                      // >
	GreaterThanEqualTo               // >=
	MultiplyOperator                 // *
	LParen                           // (
	RParen                           // )
	LBracket                         // [
	RBracket                         // ]
	AtOperator                       // @
	Comma                            // ,
	CurrentAxis                      // .
	ParentAxis                       // ..
	AxisSeparator                    // ::
	Colon                            // :
	Identifier                       // any name that is not a keyword
	And                              // and
	Or                               // or
	Div                              // div
	Mod                              // mod
	NodeType                         // node
	TextNode                         // text
	CommentNode                      // comment
	ProcessingInstruction            // processing-instruction

	// User is the first token type available to custom grammars.
	User Type = 64
)

var names = [...]string{
	Invalid:               "INVALID",
	EOF:                   "EOF",
	Literal:               "LITERAL",
	AxisName:              "AXIS_NAME",
	Function:              "FUNCTION",
	Digits:                "DIGITS",
	Number:                "NUMBER",
	Slash:                 "SLASH",
	DoubleSlash:           "DOUBLE_SLASH",
	UnionOperator:         "UNION_OPERATOR",
	Plus:                  "PLUS",
	Minus:                 "MINUS",
	EqualTo:               "EQUAL_TO",
	NotEqualTo:            "NOT_EQUAL_TO",
	LessThan:              "LESS_THAN",
	LessThanEqualTo:       "LESS_THAN_EQUAL_TO",
	GreaterThan:           "GREATER_THAN",
	GreaterThanEqualTo:    "GREATER_THAN_EQUAL_TO",
	MultiplyOperator:      "MULTIPLY_OPERATOR",
	LParen:                "LPAREN",
	RParen:                "RPAREN",
	LBracket:              "LBRACKET",
	RBracket:              "RBRACKET",
	AtOperator:            "AT_OPERATOR",
	Comma:                 "COMMA",
	CurrentAxis:           "CURRENT_AXIS",
	ParentAxis:            "PARENT_AXIS",
	AxisSeparator:         "AXIS_SEPARATOR",
	Colon:                 "COLON",
	Identifier:            "IDENTIFIER",
	And:                   "AND",
	Or:                    "OR",
	Div:                   "DIV",
	Mod:                   "MOD",
	NodeType:              "NODE_TYPE",
	TextNode:              "TEXT_NODE",
	CommentNode:           "COMMENT_NODE",
	ProcessingInstruction: "PROCESSING_INSTRUCTION",
}

func (t Type) String() string {
	if int(t) < len(names) {
		return names[t]
	}
	return "Type(" + strconv.FormatUint(uint64(t), 10) + ")"
}

// IsKeyword returns true for the operator keywords and, or, div and mod.
//
func (t Type) IsKeyword() bool {
	return t >= And && t <= Mod
}

// IsNodeType returns true for the node type tokens node, text, comment and
// processing-instruction.
//
func (t Type) IsNodeType() bool {
	return t >= NodeType && t <= ProcessingInstruction
}
