// Package planner runs complete calculation of a dive plan and serializes recalculations
// requested by interactive clients.
package planner

import (
	"time"

	"github.com/ansel1/merry"
	log "github.com/sirupsen/logrus"

	"diveplan/consumption"
	"diveplan/events"
	"diveplan/gas"
	"diveplan/options"
	"diveplan/physics"
	"diveplan/profile"
	"diveplan/tank"
)

var (
	ErrInvalidOptions = merry.New("invalid options")
	ErrNoTanks        = merry.New("plan has no tanks")
)

// Plan is the user input. Segments are only the user defined part of the dive,
// the ascent is added by the planner.
type Plan struct {
	Tanks    *tank.Tanks
	Segments []profile.Segment
	Diver    consumption.Diver
	Options  *options.Options
}

// Result of the calculation. Infeasible plan is still a result, see Events.
type Result struct {
	Profile              []profile.Segment
	Tanks                []*tank.Tank
	Events               []events.Event
	MaxTime              int // minutes
	TimeToSurface        int // minutes
	EmergencyAscentStart time.Duration
	AverageDepth         float64 // m
	Duration             time.Duration
	NotEnoughGas         bool
	NotEnoughTime        bool
}

// HasErrors reports results, which can't be presented as profile.
func (r Result) HasErrors() bool {
	return r.NotEnoughTime || events.HasErrors(r.Events)
}

type Planner struct {
	log log.FieldLogger
}

type Option func(*Planner)

func WithLogger(logger log.FieldLogger) Option {
	return func(p *Planner) {
		p.log = logger
	}
}

func New(opts ...Option) *Planner {
	p := &Planner{log: log.StandardLogger()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Calculate never modifies the plan tanks, the result contains their updated copies.
func (p *Planner) Calculate(plan Plan) (Result, error) {
	if plan.Options == nil {
		plan.Options = options.Default()
	}
	if err := plan.Options.Validate(); err != nil {
		return Result{}, ErrInvalidOptions.Here().Append(err.Error())
	}
	if plan.Tanks == nil || plan.Tanks.Len() == 0 {
		return Result{}, ErrNoTanks.Here()
	}
	if len(plan.Segments) < 2 {
		return Result{}, consumption.ErrProfileTooShort.Here().Appendf("got %d", len(plan.Segments))
	}

	opts := plan.Options
	converter := opts.DepthConverter()
	tanks := plan.Tanks.Copy().Items()
	result := Result{Tanks: tanks}

	result.Events = gas.Validate(tank.GasesOf(tanks), opts.GasOptions(), converter.SurfacePressure())
	if events.HasErrors(result.Events) {
		p.log.WithFields(log.Fields{
			"events": len(result.Events),
		}).Info("plan has invalid gases")
		return result, nil
	}

	c := consumption.New(converter, consumption.WithLogger(p.log))
	result.Profile = c.CompleteProfile(plan.Segments, opts, tanks)
	if err := c.ConsumeFromTanks(result.Profile, opts, tanks, plan.Diver); err != nil {
		return Result{}, err
	}

	result.MaxTime = c.CalculateMaxBottomTime(plan.Segments, tanks, plan.Diver, opts)
	result.TimeToSurface = c.TimeToSurface(result.Profile, opts, tanks)
	result.EmergencyAscentStart = profile.Duration(profile.DeepestPart(result.Profile))
	result.AverageDepth = physics.RoundTwoDecimals(profile.AverageDepth(result.Profile))
	result.Duration = profile.Duration(result.Profile)
	result.Events = append(result.Events, consumption.ProfileEvents(result.Profile, opts, converter)...)

	result.NotEnoughGas = !tank.HaveReserve(tanks)
	if result.NotEnoughGas {
		result.Events = append(result.Events, events.New(events.NotEnoughGas, result.Duration, 0, "Not enough gas to keep the reserve."))
	}

	result.NotEnoughTime = notEnoughTime(plan.Segments)
	if result.NotEnoughTime {
		result.Events = append(result.Events, events.New(events.NotEnoughTime, 0, 0, "Not enough time to reach the bottom."))
	}

	p.log.WithFields(log.Fields{
		"maxTime":       result.MaxTime,
		"timeToSurface": result.TimeToSurface,
		"notEnoughGas":  result.NotEnoughGas,
		"events":        len(result.Events),
	}).Debug("plan calculated")
	return result, nil
}

// notEnoughTime is the simple plan, where the descent took the whole duration.
func notEnoughTime(segments []profile.Segment) bool {
	return len(segments) == 2 && segments[1].Duration == 0
}
