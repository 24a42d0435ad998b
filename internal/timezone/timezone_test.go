package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLocation_FallsBackToUTC(t *testing.T) {
	assert.Equal(t, time.UTC, Location(""))
	assert.Equal(t, time.UTC, Location("Not/AZone"))
	assert.Equal(t, "UTC", Location("UTC").String())
}

func TestFixedClock_Dates(t *testing.T) {
	c := FixedClock(time.Date(2024, 6, 2, 23, 30, 0, 0, time.UTC))

	assert.Equal(t, "2024-06-02", c.Today())
	assert.Equal(t, "2024-06-03", c.Tomorrow())
}

func TestZeroClock_UsesWallTime(t *testing.T) {
	var c Clock
	assert.WithinDuration(t, time.Now(), c.Now(), time.Second)
}
