// Package profile describes the planned dive as ordered list of segments.
package profile

import (
	"time"

	"diveplan/gas"
)

// Segment is one leg of the dive. Depths are in meters.
type Segment struct {
	StartDepth float64
	EndDepth   float64
	Duration   time.Duration
	Gas        gas.Gas
	// TankID refers the tank in the tanks registry, 0 lets the consumption choose the tank
	TankID int
}

func NewSegment(startDepth, endDepth float64, g gas.Gas, duration time.Duration) Segment {
	return Segment{
		StartDepth: startDepth,
		EndDepth:   endDepth,
		Duration:   duration,
		Gas:        g,
	}
}

func (s Segment) WithTank(id int) Segment {
	s.TankID = id
	return s
}

// Speed in meters per second, positive for descent, negative for ascent.
func (s Segment) Speed() float64 {
	seconds := s.Duration.Seconds()
	if seconds <= 0 {
		return 0
	}
	return (s.EndDepth - s.StartDepth) / seconds
}

func (s Segment) AverageDepth() float64 {
	return (s.StartDepth + s.EndDepth) / 2
}

func (s Segment) IsFlat() bool {
	return s.StartDepth == s.EndDepth
}

func (s Segment) IsAscent() bool {
	return s.EndDepth < s.StartDepth
}

func (s Segment) IsDescent() bool {
	return s.EndDepth > s.StartDepth
}

// DepthAt returns depth reached after elapsed time from start of the segment.
func (s Segment) DepthAt(elapsed time.Duration) float64 {
	if elapsed >= s.Duration {
		return s.EndDepth
	}
	if elapsed <= 0 {
		return s.StartDepth
	}
	return s.StartDepth + s.Speed()*elapsed.Seconds()
}

// Minutes of the segment duration as fraction.
func (s Segment) Minutes() float64 {
	return s.Duration.Minutes()
}
