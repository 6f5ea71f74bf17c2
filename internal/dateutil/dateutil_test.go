package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsPast(t *testing.T) {
	now := time.Date(2025, 5, 10, 12, 0, 0, 0, time.UTC)

	check := IsPast(now.Add(-time.Hour), now)
	assert.True(t, check.IsPast)
	assert.Equal(t, "meetup date must be in the future", check.Message)

	// "exactly now" is not strictly in the future
	check = IsPast(now, now)
	assert.True(t, check.IsPast)
	assert.NotEmpty(t, check.Message)

	check = IsPast(now.Add(time.Minute), now)
	assert.False(t, check.IsPast)
	assert.Empty(t, check.Message)
}

func TestDayBounds(t *testing.T) {
	d := time.Date(2025, 5, 10, 15, 4, 5, 123, time.UTC)

	start, end := DayBounds(d)
	assert.Equal(t, time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC), start)
	assert.True(t, end.After(time.Date(2025, 5, 10, 23, 59, 59, 0, time.UTC)))
	assert.True(t, end.Before(time.Date(2025, 5, 11, 0, 0, 0, 0, time.UTC)))

	// midnight input still spans the whole day
	start, end = DayBounds(start)
	assert.Equal(t, time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC), start)
	assert.True(t, end.Sub(start) > 23*time.Hour)
}
