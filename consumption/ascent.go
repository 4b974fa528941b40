package consumption

import (
	"math"
	"time"

	"diveplan/gas"
	"diveplan/options"
	"diveplan/profile"
)

// AscentPlanner builds the ascent to the surface from the end of given profile.
// Decompression algorithms plug in here, the engine only consumes the produced segments.
type AscentPlanner interface {
	Ascent(segments []profile.Segment, gases *gas.Gases, opts *options.Options) []profile.Segment
}

// DirectAscent ascends without decompression stops by deco stop distance levels,
// switching to the best available gas and adding the safety stop.
type DirectAscent struct {
	converter DepthConverter
}

func NewDirectAscent(converter DepthConverter) *DirectAscent {
	return &DirectAscent{converter: converter}
}

type leg struct {
	segment profile.Segment
	speed   float64 // m/min, 0 for stops
}

func (a *DirectAscent) Ascent(segments []profile.Segment, gases *gas.Gases, opts *options.Options) []profile.Segment {
	if len(segments) == 0 {
		return nil
	}

	last := segments[len(segments)-1]
	startDepth := last.EndDepth
	if startDepth <= 0 {
		return nil
	}

	addSafetyStop := opts.AddSafetyStop(profile.MaxDepth(segments))
	currentGas := last.Gas
	var legs []leg

	stay := func(depth float64, g gas.Gas, duration time.Duration) {
		if duration <= 0 {
			return
		}
		legs = append(legs, leg{segment: profile.NewSegment(depth, depth, g, duration)})
	}

	switchGas := func(depth float64) {
		best := gases.BestGas(a.converter, a.bestGasOptions(depth, currentGas, opts))
		if !best.CompositionEquals(currentGas) {
			currentGas = best
			stay(depth, currentGas, opts.GasSwitchDuration)
		}
	}

	switchGas(startDepth)
	depth := startDepth
	safetyStopDone := false

	for depth > 0 {
		next := nextLevel(depth, opts.DecoStopDistance)
		speed := opts.AscentSpeed(depth, startDepth)
		duration := ascentDuration(depth-next, speed)
		legs = appendAscent(legs, profile.NewSegment(depth, next, currentGas, duration), speed)
		depth = next

		if depth <= 0 {
			break
		}

		switchGas(depth)

		if addSafetyStop && !safetyStopDone && depth <= opts.SafetyStopDepth {
			stay(depth, currentGas, opts.SafetyStopDuration)
			safetyStopDone = true
		}
	}

	result := make([]profile.Segment, 0, len(legs))
	for _, item := range legs {
		result = append(result, item.segment)
	}
	return result
}

func (a *DirectAscent) bestGasOptions(depth float64, current gas.Gas, opts *options.Options) gas.BestGasOptions {
	return gas.BestGasOptions{
		CurrentDepth:   depth,
		MaxDecoPpO2:    opts.MaxDecoPpO2,
		MaxEndPressure: opts.MaxEndPressure(a.converter),
		OxygenNarcotic: opts.OxygenNarcotic,
		CurrentGas:     current,
	}
}

// appendAscent merges the segment to previous ascent with the same gas and speed.
func appendAscent(legs []leg, segment profile.Segment, speed float64) []leg {
	if len(legs) > 0 {
		previous := &legs[len(legs)-1]
		if previous.speed == speed && previous.segment.Gas.CompositionEquals(segment.Gas) {
			previous.segment.EndDepth = segment.EndDepth
			previous.segment.Duration += segment.Duration
			return legs
		}
	}
	return append(legs, leg{segment: segment, speed: speed})
}

// nextLevel returns the next shallower multiple of the stop distance.
func nextLevel(depth, distance float64) float64 {
	next := (math.Ceil(depth/distance) - 1) * distance
	if next < 0 {
		return 0
	}
	return next
}

func ascentDuration(distance, speed float64) time.Duration {
	seconds := distance / speed * 60
	return time.Duration(math.Round(seconds * float64(time.Second)))
}
