package utils

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), *date)

	date, err = ParseDate("")
	assert.NoError(t, err)
	assert.Nil(t, date)

	_, err = ParseDate("29/02/2024")
	assert.Error(t, err)
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
	assert.Equal(t, 1234.57, RoundWithTwoDecimalPlace(1234.5678))
	assert.Equal(t, -3.14, RoundWithTwoDecimalPlace(-3.14159))
	assert.Equal(t, 0.13, RoundWithTwoDecimalPlace(0.125))
	assert.True(t, math.IsNaN(RoundWithTwoDecimalPlace(math.NaN())))
}

func TestGenerateID(t *testing.T) {
	first, err := GenerateID()
	require.NoError(t, err)
	second, err := GenerateID()
	require.NoError(t, err)

	assert.Len(t, first, idLength)
	assert.NotEqual(t, first, second)
}

func TestPrettyJson(t *testing.T) {
	assert.Equal(t, "{\n\t\"horizon\": 6\n}", PrettyJson(map[string]int{"horizon": 6}))
	assert.Equal(t, "[\n\t1,\n\t2\n]", PrettyJson([]byte("[1,2]")))
	assert.Equal(t, "{\n\t\"label\": \"Linear\",\n\t\"value\": 1.5\n}", PrettyJson(struct {
		Label string  `json:"label"`
		Value float64 `json:"value"`
	}{Label: "Linear", Value: 1.5}))
	assert.Equal(t, "{quebrado", PrettyJson([]byte("{quebrado")))
}
