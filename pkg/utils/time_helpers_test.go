package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNullDate(t *testing.T) {
	d, err := ParseNullDate("")
	require.NoError(t, err)
	assert.False(t, d.Valid)

	d, err = ParseNullDate("2024-03-15")
	require.NoError(t, err)
	assert.True(t, d.Valid)
	assert.Equal(t, "2024-03-15", *NullDateToPtr(d))

	_, err = ParseNullDate("15/03/2024")
	assert.Error(t, err)
}

func TestNullString(t *testing.T) {
	assert.False(t, NullString("   ").Valid)
	s := NullString("  HR ")
	assert.True(t, s.Valid)
	assert.Equal(t, "HR", s.String)
	assert.Nil(t, NullStringToPtr(NullString("")))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "2024-01-02", FormatDate(time.Date(2024, 1, 2, 23, 0, 0, 0, time.UTC)))
}
