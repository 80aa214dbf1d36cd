package kernel_test

import (
	"testing"
	"time"

	"laundry/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
)

func TestDay(t *testing.T) {
	plus3 := time.FixedZone("UTC+3", 3*60*60)
	local := time.Date(2026, 1, 31, 1, 15, 0, 0, plus3)

	assert.Equal(t, time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC), kernel.Day(local))
}

func TestFixedClock(t *testing.T) {
	at := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	clock := kernel.FixedClock(at)

	assert.Equal(t, at, clock())
	assert.Equal(t, time.UTC, kernel.SystemClock()().Location())
}
