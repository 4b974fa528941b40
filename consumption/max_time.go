package consumption

import (
	"math"
	"time"

	log "github.com/sirupsen/logrus"

	"diveplan/options"
	"diveplan/profile"
	"diveplan/tank"
)

const (
	// maxDuration limits the bottom time search to 3 days
	maxDuration     = 72 * time.Hour
	searchStart     = time.Hour
	searchPrecision = time.Second
)

// CalculateMaxBottomTime finds the longest dive in minutes, which still keeps the reserve in all tanks.
// The last segment of the profile is extended at its depth. The tanks are not modified.
// Returns 0, if even the profile itself doesn't keep the reserve.
func (c *Consumption) CalculateMaxBottomTime(segments []profile.Segment, tanks []*tank.Tank, diver Diver, opts *options.Options) int {
	if len(segments) == 0 || len(tanks) == 0 {
		return 0
	}

	testTanks := tank.CopyAll(tanks)
	last := segments[len(segments)-1]
	trials := 0

	hasReserve := func(extension time.Duration) bool {
		trials++
		extended := make([]profile.Segment, 0, len(segments)+1)
		extended = append(extended, segments...)
		extended = append(extended, profile.NewSegment(last.EndDepth, last.EndDepth, last.Gas, extension))

		complete := c.CompleteProfile(extended, opts, testTanks)
		if err := c.ConsumeFromTanks(complete, opts, testTanks, diver); err != nil {
			return false
		}
		return tank.HaveReserve(testTanks)
	}

	if !hasReserve(0) {
		return 0
	}

	low, high := c.searchLimits(hasReserve)
	for high-low > searchPrecision {
		middle := low + (high-low)/2
		if hasReserve(middle) {
			low = middle
		} else {
			high = middle
		}
	}

	total := profile.Duration(segments) + low
	c.log.WithFields(log.Fields{
		"trials":    trials,
		"extension": low,
	}).Debug("max bottom time found")
	return int(math.Max(0, math.Floor(total.Minutes())))
}

// searchLimits doubles the extension until the reserve is lost.
func (c *Consumption) searchLimits(hasReserve func(time.Duration) bool) (time.Duration, time.Duration) {
	low := time.Duration(0)
	high := searchStart

	for hasReserve(high) {
		low = high
		if high >= maxDuration {
			return low, low
		}
		high *= 2
		if high > maxDuration {
			high = maxDuration
		}
	}

	return low, high
}
