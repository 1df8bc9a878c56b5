package calendar_test

import (
	"testing"
	"time"

	"github.com/roadstead/vehicle_rental_app/internal/utils/calendar"
	"github.com/stretchr/testify/assert"
)

func TestKey(t *testing.T) {
	assert.Equal(t, "2025-03", calendar.Key(time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2025-12", calendar.Key(time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC)))
}

func TestPreviousKey(t *testing.T) {
	assert.Equal(t, "2025-02", calendar.PreviousKey(time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)))
}

func TestPreviousKey_YearBoundary(t *testing.T) {
	assert.Equal(t, "2024-12", calendar.PreviousKey(time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC)))
}

func TestPreviousKey_EndOfMonthNormalization(t *testing.T) {
	// March 31st must roll back to February, never skip to January via
	// day-of-month overflow.
	assert.Equal(t, "2025-02", calendar.PreviousKey(time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC)))
}

func TestKeyFromDateString(t *testing.T) {
	assert.Equal(t, "2025-06", calendar.KeyFromDateString("2025-06-30"))
	assert.Equal(t, "2025-06", calendar.KeyFromDateString("2025-06"))
	assert.Equal(t, "bad", calendar.KeyFromDateString("bad"))
}

func TestIsValidKey(t *testing.T) {
	assert.True(t, calendar.IsValidKey("2025-01"))
	assert.True(t, calendar.IsValidKey("1999-12"))
	assert.False(t, calendar.IsValidKey("2025-13"))
	assert.False(t, calendar.IsValidKey("2025-00"))
	assert.False(t, calendar.IsValidKey("2025-1"))
	assert.False(t, calendar.IsValidKey("2025-06-30"))
	assert.False(t, calendar.IsValidKey(""))
}
