package dice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corelayer/tilebot/internal/domain"
)

func TestParseSimple(t *testing.T) {
	expr, err := Parse("2d6+3")
	require.NoError(t, err)

	assert.Equal(t, []Group{{Rolls: 2, Sides: 6, Sign: 1}}, expr.Groups)
	assert.Equal(t, 3, expr.Modifier)
}

func TestParseMixedGroupsAndModifiers(t *testing.T) {
	expr, err := Parse("2d6+3-2+1d4")
	require.NoError(t, err)

	assert.Equal(t, []Group{
		{Rolls: 2, Sides: 6, Sign: 1},
		{Rolls: 1, Sides: 4, Sign: 1},
	}, expr.Groups)
	assert.Equal(t, 1, expr.Modifier)
}

func TestParseNegativeGroup(t *testing.T) {
	expr, err := Parse("3d8-1d6")
	require.NoError(t, err)

	require.Len(t, expr.Groups, 2)
	assert.Equal(t, -1, expr.Groups[1].Sign)
}

func TestParseUppercaseAndSpaces(t *testing.T) {
	expr, err := Parse("2D10 + 1")
	require.NoError(t, err)
	assert.Equal(t, []Group{{Rolls: 2, Sides: 10, Sign: 1}}, expr.Groups)
	assert.Equal(t, 1, expr.Modifier)
}

func TestParseRejections(t *testing.T) {
	tests := []string{
		"",
		"banana",
		"2d6junk",
		"+5",       // modifier only, no dice
		"51d6",     // too many rolls
		"1d100000", // too many sides
		"0d6",
	}
	for _, expression := range tests {
		t.Run(expression, func(t *testing.T) {
			_, err := Parse(expression)
			assert.ErrorIs(t, err, domain.ErrInvalidDiceExpr)
		})
	}
}

func TestRollBounds(t *testing.T) {
	for i := 0; i < 50; i++ {
		result, err := Roll("4d6+2")
		require.NoError(t, err)

		require.Len(t, result.Groups, 1)
		require.Len(t, result.Groups[0].Results, 4)

		sum := 2
		for _, die := range result.Groups[0].Results {
			assert.GreaterOrEqual(t, die, 1)
			assert.LessOrEqual(t, die, 6)
			sum += die
		}
		assert.Equal(t, sum, result.Total)
	}
}

func TestRollNegativeGroupSubtracts(t *testing.T) {
	result, err := Roll("1d1-2d1")
	require.NoError(t, err)
	// Every d1 rolls 1, so 1 - 2 = -1.
	assert.Equal(t, -1, result.Total)
}

func TestSummary(t *testing.T) {
	result, err := Roll("2d1+1d1")
	require.NoError(t, err)
	assert.Equal(t, "2d1: 1, 1\n1d1: 1", result.Summary())
}
