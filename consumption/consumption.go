// Package consumption distributes the gas consumed during the dive to the tanks
// and sizes the rock bottom reserve needed for an emergency ascent.
package consumption

import (
	"math"

	"github.com/ansel1/merry"
	log "github.com/sirupsen/logrus"

	"diveplan/options"
	"diveplan/profile"
	"diveplan/tank"
)

const (
	// StressFactor multiplies the diver RMV during emergency ascent.
	StressFactor = 3.0
	// DefaultRMV liters per minute
	DefaultRMV = 20.0
)

var ErrProfileTooShort = merry.New("profile has to contain at least two segments")

type DepthConverter interface {
	ToBar(depth float64) float64
	ToDecoStop(bars float64) float64
}

// Diver breathes RMV liters per minute at surface pressure.
type Diver struct {
	RMV float64
}

func DefaultDiver() Diver {
	return Diver{RMV: DefaultRMV}
}

func (d Diver) StressRMV() float64 {
	return d.RMV * StressFactor
}

type Consumption struct {
	converter DepthConverter
	ascent    AscentPlanner
	log       log.FieldLogger
}

type Option func(*Consumption)

func WithAscentPlanner(planner AscentPlanner) Option {
	return func(c *Consumption) {
		c.ascent = planner
	}
}

func WithLogger(logger log.FieldLogger) Option {
	return func(c *Consumption) {
		c.log = logger
	}
}

func New(converter DepthConverter, opts ...Option) *Consumption {
	c := &Consumption{
		converter: converter,
		ascent:    NewDirectAscent(converter),
		log:       log.StandardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ConsumeFromTanks updates consumed gas and reserve of the tanks.
// Consumed and reserve of all tanks are reset first, so the result doesn't depend on previous calls.
func (c *Consumption) ConsumeFromTanks(segments []profile.Segment, opts *options.Options, tanks []*tank.Tank, diver Diver) error {
	if len(segments) < 2 {
		return ErrProfileTooShort.Here().Appendf("got %d", len(segments))
	}

	for _, t := range tanks {
		t.ResetConsumption()
	}

	remainToConsume := c.consumeByTanks(segments, tanks, diver.RMV)
	c.consumeByGases(segments, tanks, diver.RMV, remainToConsume)

	emergencyAscent := c.EmergencyAscent(segments, opts, tanks)
	c.updateReserve(emergencyAscent, tanks, diver.StressRMV())
	return nil
}

// consumeByTanks charges segments with assigned tank. Returns liters by gas content code,
// which didn't fit to the assigned tank.
func (c *Consumption) consumeByTanks(segments []profile.Segment, tanks []*tank.Tank, rmv float64) *gasPools {
	remainToConsume := newGasPools()

	for _, segment := range segments {
		t := byID(tanks, segment.TankID)
		if t == nil {
			continue
		}

		liters := c.consumedLiters(segment, rmv)
		bars := math.Min(math.Ceil(liters/t.Size), t.EndPressure())
		t.Consumed += bars

		remaining := liters - bars*t.Size
		if remaining > 0 {
			remainToConsume.add(segment.Gas.ContentCode(), remaining)
		}
	}

	return remainToConsume
}

// consumeByGases charges the segments without tank from the last tank of the same gas,
// so the stages are used before the bottom tank.
func (c *Consumption) consumeByGases(segments []profile.Segment, tanks []*tank.Tank, rmv float64, pools *gasPools) {
	for _, segment := range segments {
		if byID(tanks, segment.TankID) != nil {
			continue
		}
		pools.add(segment.Gas.ContentCode(), c.consumedLiters(segment, rmv))
	}

	for _, code := range pools.codes {
		remaining := pools.liters[code]
		for index := len(tanks) - 1; index >= 0 && remaining > 0; index-- {
			remaining = consumeFromTank(tanks[index], code, remaining)
		}

		// gas not carried by any tank is not counted at all
		if remaining > 0 {
			c.log.WithFields(log.Fields{
				"gas":    code,
				"liters": remaining,
			}).Debug("gas not consumed from any tank")
		}
	}
}

func consumeFromTank(t *tank.Tank, code int64, liters float64) float64 {
	if t.Gas.ContentCode() != code {
		return liters
	}

	bars := math.Min(math.Ceil(liters/t.Size), t.EndPressure())
	t.Consumed += bars
	return math.Max(0, liters-bars*t.Size)
}

// updateReserve is always counted from the first tank of the gas. The first tank keeps at least the minimum reserve.
func (c *Consumption) updateReserve(emergencyAscent []profile.Segment, tanks []*tank.Tank, stressRMV float64) {
	pools := newGasPools()
	for _, segment := range emergencyAscent {
		pools.add(segment.Gas.ContentCode(), c.consumedLiters(segment, stressRMV))
	}

	for _, code := range pools.codes {
		remaining := pools.liters[code]
		for _, t := range tanks {
			if remaining <= 0 {
				break
			}
			remaining = reserveFromTank(t, code, remaining)
		}
	}

	if len(tanks) > 0 {
		first := tanks[0]
		first.Reserve = math.Max(first.Reserve, tank.MinimumReserve)
	}
}

func reserveFromTank(t *tank.Tank, code int64, liters float64) float64 {
	if t.Gas.ContentCode() != code {
		return liters
	}

	available := math.Max(0, t.StartPressure-t.Reserve)
	bars := math.Min(math.Ceil(liters/t.Size), available)
	t.Reserve += bars
	return math.Max(0, liters-bars*t.Size)
}

// EmergencyAscent starts at the last deepest point of the profile. The diver needs to solve
// the problem first and then ascends using all available gases.
func (c *Consumption) EmergencyAscent(segments []profile.Segment, opts *options.Options, tanks []*tank.Tank) []profile.Segment {
	deepest := profile.DeepestPart(segments)
	if len(deepest) == 0 {
		return nil
	}

	last := deepest[len(deepest)-1]
	gases := tank.GasesOf(tanks)
	if last.EndDepth <= 0 || !gases.IsRegistered(last.Gas) {
		return nil
	}

	solving := profile.NewSegment(last.EndDepth, last.EndDepth, last.Gas, opts.ProblemSolvingDuration)
	start := make([]profile.Segment, 0, len(deepest)+1)
	start = append(start, deepest...)
	start = append(start, solving)

	result := []profile.Segment{solving}
	return append(result, c.ascent.Ascent(start, gases, opts)...)
}

// CompleteProfile adds ascent to profile, which doesn't end at the surface.
func (c *Consumption) CompleteProfile(segments []profile.Segment, opts *options.Options, tanks []*tank.Tank) []profile.Segment {
	result := make([]profile.Segment, len(segments))
	copy(result, segments)

	if len(segments) == 0 || segments[len(segments)-1].EndDepth <= 0 {
		return result
	}

	return append(result, c.ascent.Ascent(segments, tank.GasesOf(tanks), opts)...)
}

// TimeToSurface in minutes needed to reach surface in case of emergency, rounded up.
func (c *Consumption) TimeToSurface(segments []profile.Segment, opts *options.Options, tanks []*tank.Tank) int {
	emergencyAscent := c.EmergencyAscent(segments, opts, tanks)
	duration := profile.Duration(emergencyAscent)
	return int(math.Ceil(duration.Minutes()))
}

func (c *Consumption) consumedLiters(segment profile.Segment, rmv float64) float64 {
	averagePressure := c.converter.ToBar(segment.AverageDepth())
	return averagePressure * segment.Minutes() * rmv
}

func byID(tanks []*tank.Tank, id int) *tank.Tank {
	if id <= 0 {
		return nil
	}
	for _, t := range tanks {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// gasPools keeps liters by gas content code in order of first occurrence.
type gasPools struct {
	codes  []int64
	liters map[int64]float64
}

func newGasPools() *gasPools {
	return &gasPools{liters: map[int64]float64{}}
}

func (p *gasPools) add(code int64, liters float64) {
	if _, found := p.liters[code]; !found {
		p.codes = append(p.codes, code)
	}
	p.liters[code] += liters
}
