package profile

import (
	"time"

	"diveplan/gas"
	"diveplan/options"
	"diveplan/tank"
)

// Segments builds continuous profile, each segment starts where the previous ended.
type Segments struct {
	items []Segment
}

func NewSegments(items ...Segment) *Segments {
	s := &Segments{}
	s.items = append(s.items, items...)
	return s
}

func (s *Segments) Add(startDepth, endDepth float64, g gas.Gas, duration time.Duration) Segment {
	segment := NewSegment(startDepth, endDepth, g, duration)
	s.items = append(s.items, segment)
	return segment
}

func (s *Segments) AddFlat(depth float64, g gas.Gas, duration time.Duration) Segment {
	return s.Add(depth, depth, g, duration)
}

// AddChangeTo continues from the end of last segment, from the surface if empty.
func (s *Segments) AddChangeTo(newDepth float64, g gas.Gas, duration time.Duration) Segment {
	startDepth := 0.0
	if last, ok := s.Last(); ok {
		startDepth = last.EndDepth
	}
	return s.Add(startDepth, newDepth, g, duration)
}

// Append adds segments as they are.
func (s *Segments) Append(segments ...Segment) {
	s.items = append(s.items, segments...)
}

func (s *Segments) Items() []Segment {
	result := make([]Segment, len(s.items))
	copy(result, s.items)
	return result
}

func (s *Segments) Len() int {
	return len(s.items)
}

func (s *Segments) Any() bool {
	return len(s.items) > 0
}

func (s *Segments) Last() (Segment, bool) {
	if len(s.items) == 0 {
		return Segment{}, false
	}
	return s.items[len(s.items)-1], true
}

func (s *Segments) Copy() *Segments {
	return NewSegments(s.items...)
}

func (s *Segments) MaxDepth() float64 {
	return MaxDepth(s.items)
}

func (s *Segments) Duration() time.Duration {
	return Duration(s.items)
}

func (s *Segments) AverageDepth() float64 {
	return AverageDepth(s.items)
}

// FixStartDepths makes the profile continuous starting from the surface.
func (s *Segments) FixStartDepths() {
	previousEnd := 0.0
	for index := range s.items {
		s.items[index].StartDepth = previousEnd
		previousEnd = s.items[index].EndDepth
	}
}

func (s *Segments) DeepestPart() []Segment {
	return DeepestPart(s.items)
}

func (s *Segments) StartAscentIndex() int {
	return len(DeepestPart(s.items))
}

func MaxDepth(segments []Segment) float64 {
	maxDepth := 0.0
	for _, segment := range segments {
		if segment.EndDepth > maxDepth {
			maxDepth = segment.EndDepth
		}
	}
	return maxDepth
}

func Duration(segments []Segment) time.Duration {
	var total time.Duration
	for _, segment := range segments {
		total += segment.Duration
	}
	return total
}

// AverageDepth weighted by duration of the segments in meters.
func AverageDepth(segments []Segment) float64 {
	total := Duration(segments)
	if total <= 0 {
		return 0
	}

	sum := 0.0
	for _, segment := range segments {
		sum += segment.AverageDepth() * segment.Duration.Seconds()
	}
	return sum / total.Seconds()
}

// DeepestPart returns the profile up to the last segment, which reached the max depth.
// Emergency ascent always starts from the end of this part.
func DeepestPart(segments []Segment) []Segment {
	maxDepth := MaxDepth(segments)
	lastIndex := -1
	for index, segment := range segments {
		if segment.EndDepth == maxDepth {
			lastIndex = index
		}
	}
	return segments[:lastIndex+1]
}

// CreateForPlan builds simple square profile: descent by descent speed and the bottom part.
// Total duration of both segments is the duration.
func CreateForPlan(targetDepth float64, duration time.Duration, t *tank.Tank, opts *options.Options) *Segments {
	descent := time.Duration(targetDepth / opts.DescentSpeed * float64(time.Minute))
	bottom := duration - descent
	if bottom < 0 {
		bottom = 0
	}

	segments := NewSegments()
	segments.Append(NewSegment(0, targetDepth, t.Gas, descent).WithTank(t.ID))
	segments.Append(NewSegment(targetDepth, targetDepth, t.Gas, bottom).WithTank(t.ID))
	return segments
}
