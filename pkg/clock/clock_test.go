package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSystemReturnsUTC(t *testing.T) {
	now := System().Now()
	assert.Equal(t, time.UTC, now.Location())
	assert.WithinDuration(t, time.Now().UTC(), now, time.Second)
}

func TestFixedAlwaysReturnsSameInstant(t *testing.T) {
	instant := time.Date(2025, time.March, 11, 12, 0, 0, 0, time.UTC)
	clk := Fixed(instant)

	assert.True(t, clk.Now().Equal(instant))
	assert.True(t, clk.Now().Equal(instant), "repeated reads must not advance")
}
