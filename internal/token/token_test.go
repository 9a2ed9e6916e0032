package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenEqualComparesByPayloadForLiterals(t *testing.T) {
	a := New(Identifier, "foo", nil, 1)
	b := New(Identifier, "foo", nil, 9)
	c := New(Identifier, "bar", nil, 1)
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))

	n1 := New(NumberTok, "1", NewInteger(1), 1)
	n2 := New(NumberTok, "1", NewDecimal(1.0), 2)
	assert.True(t, n1.Equal(n2))
}

func TestTokenEqualIgnoresLineForNonLiterals(t *testing.T) {
	a := New(Plus, "+", nil, 1)
	b := New(Plus, "+", nil, 99)
	assert.True(t, a.Equal(b))
}

func TestTokenStringRendersEOFSpecially(t *testing.T) {
	tok := New(EOF, "", nil, 3)
	assert.Contains(t, tok.String(), "END OF FILE")
}
