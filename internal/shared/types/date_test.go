package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSONRoundTrip(t *testing.T) {
	d, err := ParseDate("1775-12-16")
	require.NoError(t, err)

	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"1775-12-16"`, string(raw))

	var back Date
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, d.String(), back.String())
}

func TestParseDateRejectsOtherLayouts(t *testing.T) {
	_, err := ParseDate("16/12/1775")
	assert.Error(t, err)

	_, err = ParseDate("1775-12-16T00:00:00Z")
	assert.Error(t, err)
}

func TestAddDaysAndComparisons(t *testing.T) {
	d, err := ParseDate("2024-03-01")
	require.NoError(t, err)

	earlier := d.AddDays(-30)
	assert.Equal(t, "2024-01-31", earlier.String())
	assert.True(t, earlier.Before(d))
	assert.True(t, d.After(earlier))
}
