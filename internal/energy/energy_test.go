package energy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAccrue(t *testing.T) {
	base := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		current       int
		max           int
		elapsed       time.Duration
		wantEnergy    int
		wantRefillAdv time.Duration
		wantChanged   bool
	}{
		{
			name:    "no time passed",
			current: 50, max: 100,
			elapsed:    0,
			wantEnergy: 50, wantRefillAdv: 0, wantChanged: false,
		},
		{
			name:    "below one tick",
			current: 50, max: 100,
			elapsed:    4 * time.Minute,
			wantEnergy: 50, wantRefillAdv: 0, wantChanged: false,
		},
		{
			name:    "single tick with remainder",
			current: 50, max: 100,
			elapsed:    7 * time.Minute,
			wantEnergy: 51, wantRefillAdv: 5 * time.Minute, wantChanged: true,
		},
		{
			name:    "many ticks",
			current: 0, max: 100,
			elapsed:    52 * time.Minute,
			wantEnergy: 10, wantRefillAdv: 50 * time.Minute, wantChanged: true,
		},
		{
			name:    "clamped at capacity",
			current: 98, max: 100,
			elapsed:    30 * time.Minute,
			wantEnergy: 100, wantRefillAdv: 30 * time.Minute, wantChanged: true,
		},
		{
			name:    "already full",
			current: 100, max: 100,
			elapsed:    2 * time.Hour,
			wantEnergy: 100, wantRefillAdv: 0, wantChanged: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, refill, changed := Accrue(tt.current, tt.max, base, base.Add(tt.elapsed))
			assert.Equal(t, tt.wantEnergy, got)
			assert.Equal(t, base.Add(tt.wantRefillAdv), refill)
			assert.Equal(t, tt.wantChanged, changed)
		})
	}
}

func TestAccrueIdempotent(t *testing.T) {
	base := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
	now := base.Add(23 * time.Minute)

	e1, r1, changed := Accrue(40, 100, base, now)
	assert.True(t, changed)
	assert.Equal(t, 44, e1)

	// A second settlement with the same "now" must be a no-op.
	e2, r2, changed := Accrue(e1, 100, r1, now)
	assert.False(t, changed)
	assert.Equal(t, e1, e2)
	assert.Equal(t, r1, r2)
}

func TestAccruePreservesPartialTick(t *testing.T) {
	start := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)

	// T+7m: one unit, refill advances to T+5m only.
	e, refill, changed := Accrue(10, 100, start, start.Add(7*time.Minute))
	assert.True(t, changed)
	assert.Equal(t, 11, e)
	assert.Equal(t, start.Add(5*time.Minute), refill)

	// T+10m: the preserved 2 minutes make up the next tick, one more unit.
	e, refill, changed = Accrue(e, 100, refill, start.Add(10*time.Minute))
	assert.True(t, changed)
	assert.Equal(t, 12, e)
	assert.Equal(t, start.Add(10*time.Minute), refill)
}

func TestAccrueNeverExceedsBounds(t *testing.T) {
	base := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)

	for elapsed := time.Duration(0); elapsed <= 12*time.Hour; elapsed += 17 * time.Minute {
		for _, current := range []int{0, 1, 50, 99, 100} {
			e, refill, _ := Accrue(current, 100, base, base.Add(elapsed))
			assert.GreaterOrEqual(t, e, current)
			assert.LessOrEqual(t, e, 100)
			assert.False(t, refill.After(base.Add(elapsed)))
		}
	}
}
