package token_test

import (
	"testing"

	"github.com/db47h/xpathlex/token"
	"github.com/stretchr/testify/assert"
)

func TestType_String(t *testing.T) {
	tests := []struct {
		t    token.Type
		want string
	}{
		{token.EOF, "EOF"},
		{token.AxisName, "AXIS_NAME"},
		{token.GreaterThanEqualTo, "GREATER_THAN_EQUAL_TO"},
		{token.Colon, "COLON"},
		{token.ProcessingInstruction, "PROCESSING_INSTRUCTION"},
		{token.User, "Type(64)"},
		{token.User + 3, "Type(67)"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, tc.t.String())
	}
}

func TestType_Classes(t *testing.T) {
	for _, tt := range []token.Type{token.And, token.Or, token.Div, token.Mod} {
		assert.True(t, tt.IsKeyword(), tt.String())
		assert.False(t, tt.IsNodeType(), tt.String())
	}
	for _, tt := range []token.Type{token.NodeType, token.TextNode, token.CommentNode, token.ProcessingInstruction} {
		assert.True(t, tt.IsNodeType(), tt.String())
		assert.False(t, tt.IsKeyword(), tt.String())
	}
	assert.False(t, token.Identifier.IsKeyword())
	assert.False(t, token.Function.IsNodeType())
}
