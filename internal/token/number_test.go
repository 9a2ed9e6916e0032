package token

import "testing"

import "github.com/stretchr/testify/assert"

func TestParseNumberIntegerVsDecimal(t *testing.T) {
	n, err := ParseNumber("42")
	assert.NoError(t, err)
	assert.True(t, n.IsInteger())
	assert.Equal(t, int64(42), n.Int64())

	n, err = ParseNumber("3.5")
	assert.NoError(t, err)
	assert.False(t, n.IsInteger())
	assert.Equal(t, 3.5, n.Float64())
}

func TestNumberArithmeticPromotesOnMixedTags(t *testing.T) {
	i := NewInteger(2)
	d := NewDecimal(0.5)

	sum := i.Add(d)
	assert.False(t, sum.IsInteger())
	assert.Equal(t, 2.5, sum.Float64())

	sameTag := NewInteger(2).Add(NewInteger(3))
	assert.True(t, sameTag.IsInteger())
	assert.Equal(t, int64(5), sameTag.Int64())
}

func TestNumberStringFormatsAreHostStable(t *testing.T) {
	assert.Equal(t, "3", NewDecimal(3.0).String())
	assert.Equal(t, "3.5", NewDecimal(3.5).String())
	assert.Equal(t, "42", NewInteger(42).String())
}

func TestNumberComparisonAcrossTags(t *testing.T) {
	assert.True(t, NewInteger(1).Less(NewDecimal(1.5)))
	assert.True(t, NewDecimal(2.0).Eq(NewInteger(2)))
	assert.True(t, NewInteger(3).GreaterEq(NewInteger(3)))
}

func TestNumberIsZero(t *testing.T) {
	assert.True(t, NewInteger(0).IsZero())
	assert.True(t, NewDecimal(0).IsZero())
	assert.False(t, NewDecimal(0.1).IsZero())
}
