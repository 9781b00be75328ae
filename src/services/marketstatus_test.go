package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCurrentMarketStatus(t *testing.T) {
	eastern, err := time.LoadLocation("America/New_York")
	assert.NoError(t, err)

	at := func(moment time.Time) func() time.Time {
		return func() time.Time { return moment }
	}

	t.Run("open during regular hours", func(t *testing.T) {
		// Monday 2026-03-02 at 11:00 ET.
		status := CurrentMarketStatus(at(time.Date(2026, 3, 2, 11, 0, 0, 0, eastern)))

		assert.True(t, status.IsOpen)
		assert.Equal(t, "Market Open", status.Message)
		assert.Equal(t, "Live", status.DataTime)
	})

	t.Run("open exactly at the bell", func(t *testing.T) {
		status := CurrentMarketStatus(at(time.Date(2026, 3, 2, 9, 30, 0, 0, eastern)))

		assert.True(t, status.IsOpen)
	})

	t.Run("closed at four", func(t *testing.T) {
		status := CurrentMarketStatus(at(time.Date(2026, 3, 2, 16, 0, 0, 0, eastern)))

		assert.False(t, status.IsOpen)
		assert.Equal(t, "Market Closed (After-Hours)", status.Message)
	})

	t.Run("pre-market", func(t *testing.T) {
		status := CurrentMarketStatus(at(time.Date(2026, 3, 2, 7, 45, 0, 0, eastern)))

		assert.False(t, status.IsOpen)
		assert.Equal(t, "Market Closed (Pre-Market)", status.Message)
	})

	t.Run("weekend", func(t *testing.T) {
		// Saturday 2026-03-07.
		status := CurrentMarketStatus(at(time.Date(2026, 3, 7, 12, 0, 0, 0, eastern)))

		assert.False(t, status.IsOpen)
		assert.Equal(t, "Market Closed (Weekend)", status.Message)
	})

	t.Run("classifies in eastern time regardless of input zone", func(t *testing.T) {
		// 18:00 UTC on a Monday is 2:00 PM ET during daylight saving: open.
		status := CurrentMarketStatus(at(time.Date(2026, 6, 1, 18, 0, 0, 0, time.UTC)))

		assert.True(t, status.IsOpen)
	})
}
