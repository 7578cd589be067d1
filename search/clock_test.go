package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClockElapsedAdvancesWithNowFn(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	defer func() { nowFn = time.Now }()

	current := base
	nowFn = func() time.Time { return current }

	c := newClock()
	assert.Equal(t, float64(0), c.ElapsedSeconds())

	current = base.Add(2500 * time.Millisecond)
	assert.Equal(t, 2.5, c.ElapsedSeconds())
}

func TestClockStop(t *testing.T) {
	c := newClock()
	assert.False(t, c.Stopped())
	c.Stop()
	assert.True(t, c.Stopped())
}
