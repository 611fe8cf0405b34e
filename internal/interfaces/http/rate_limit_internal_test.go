package http

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func TestLimiterSet_BarreClientesInactivos(t *testing.T) {
	now := time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC)
	s := newLimiterSet(rate.Limit(0.001), 1, func() time.Time { return now })

	assert.True(t, s.allow("10.0.0.1"))
	assert.False(t, s.allow("10.0.0.1"))
	assert.True(t, s.allow("10.0.0.2"))
	assert.Len(t, s.entries, 2)

	now = now.Add(limiterIdleTTL / 2)
	assert.False(t, s.allow("10.0.0.2"))

	// 10.0.0.1 lleva un TTL sin pedir nada; 10.0.0.2 pidió hace medio TTL.
	now = now.Add(limiterIdleTTL / 2)
	assert.True(t, s.allow("10.0.0.3"))
	assert.NotContains(t, s.entries, "10.0.0.1")
	assert.Contains(t, s.entries, "10.0.0.2")
	assert.Len(t, s.entries, 2)
}
