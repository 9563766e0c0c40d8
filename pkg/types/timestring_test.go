package types

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	valid := []string{"00:00", "09:00", "13:30", "23:59"}
	for _, s := range valid {
		ts, err := NewTimeStringFromString(s)
		require.NoError(t, err, s)
		assert.Equal(t, s, ts.String())
	}

	invalid := []string{"", "9:00", "24:00", "12:60", "noon", "12:00:00"}
	for _, s := range invalid {
		_, err := NewTimeStringFromString(s)
		assert.ErrorIs(t, err, ErrInvalidTimeString, s)
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	got, err := TimeString("10:00").AddMinutes(50)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:50"), got)

	got, err = TimeString("19:00").AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("20:30"), got)

	_, err = TimeString("23:30").AddMinutes(30)
	assert.ErrorIs(t, err, ErrTimeOverflow)
}

func TestTimeString_Compare(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.False(t, TimeString("bad").IsBefore("12:00"))
}

func TestTimeString_On(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Lisbon")
	require.NoError(t, err)

	date := time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)
	got, err := TimeString("09:00").On(date, loc)
	require.NoError(t, err)

	// Лиссабон летом UTC+1
	assert.Equal(t, time.Date(2025, 7, 15, 8, 0, 0, 0, time.UTC), got.UTC())
}
