package energy

import "time"

const (
	// TickInterval is one regeneration quantum: one unit of energy per five minutes.
	TickInterval = 5 * time.Minute
	UnitsPerTick = 1
)

// Accrue settles energy regeneration for the wall-clock span between
// lastRefill and now. It returns the new energy value, the new settled-up-to
// timestamp and whether anything changed.
//
// lastRefill advances by the exact number of whole ticks consumed, never to
// now, so partial-tick progress survives to the next call. When the cap clamps
// the added units, the surplus ticks are discarded rather than banked: a full
// battery wastes regeneration.
func Accrue(current, max int, lastRefill, now time.Time) (int, time.Time, bool) {
	if current >= max {
		return current, lastRefill, false
	}

	minutesPassed := int(now.Sub(lastRefill) / time.Minute)
	unitsToAdd := minutesPassed / int(TickInterval/time.Minute) * UnitsPerTick
	if unitsToAdd <= 0 {
		return current, lastRefill, false
	}

	actualUnits := unitsToAdd
	if room := max - current; actualUnits > room {
		actualUnits = room
	}

	return current + actualUnits, lastRefill.Add(time.Duration(unitsToAdd) * TickInterval), true
}
