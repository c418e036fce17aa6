package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultExpectedData(t *testing.T) {
	expected := DefaultExpectedData()
	require.Len(t, expected.Categories, 4)

	assert.Equal(t, "Collections", expected.Categories[0].Name)
	assert.Equal(t, 2, expected.Categories[0].Total())
	assert.Equal(t, "Documents", expected.Categories[1].Name)
	assert.Equal(t, 7, expected.Categories[1].Total())
	assert.Equal(t, "Fields", expected.Categories[2].Name)
	assert.Equal(t, 8, expected.Categories[2].Total())
	assert.Equal(t, "Values", expected.Categories[3].Name)
	assert.Equal(t, 9, expected.Categories[3].Total())

	assert.Contains(t, expected.Categories[0].Tokens, "users")
	assert.Contains(t, expected.Categories[1].Tokens, "alovelace")
	assert.Contains(t, expected.Categories[2].Tokens, "population")
	assert.Contains(t, expected.Categories[3].Tokens, "San Francisco")
}

func TestCategoryTally_FoundCount(t *testing.T) {
	tally := CategoryTally{Category: "Collections", Total: 2, Found: []string{"users"}}
	assert.Equal(t, 1, tally.FoundCount())
	assert.LessOrEqual(t, tally.FoundCount(), tally.Total)
}
