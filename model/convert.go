package model

import (
	"fmt"
	"math"
	"time"

	"github.com/hashicorp/go-multierror"

	"diveplan/consumption"
	"diveplan/events"
	"diveplan/gas"
	"diveplan/options"
	"diveplan/physics"
	"diveplan/planner"
	"diveplan/profile"
	"diveplan/tank"
)

// ToPlan converts the request on top of default options and diver. All invalid values are reported at once.
func (r PlanRequest) ToPlan(defaults *options.Options, diver consumption.Diver) (planner.Plan, error) {
	var result error

	opts := defaults.Copy()
	if r.Options != nil {
		r.Options.apply(opts)
	}
	if r.RMV > 0 {
		diver.RMV = r.RMV
	}

	tanks := tank.NewTanks()
	for index, dto := range r.Tanks {
		t, err := dto.toTank()
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("tank %d: %w", index+1, err))
			continue
		}
		tanks.Add(t)
	}

	if tanks.Len() == 0 {
		result = multierror.Append(result, fmt.Errorf("at least one tank is required"))
		return planner.Plan{}, result
	}

	var segments []profile.Segment
	if len(r.Segments) == 0 {
		if r.Depth <= 0 {
			result = multierror.Append(result, fmt.Errorf("depth has to be positive, got %g", r.Depth))
		}
		if r.Duration <= 0 {
			result = multierror.Append(result, fmt.Errorf("duration has to be positive, got %g", r.Duration))
		}
		if result != nil {
			return planner.Plan{}, result
		}
		segments = profile.CreateForPlan(r.Depth, minutes(r.Duration), tanks.First(), opts).Items()
	}

	for index, dto := range r.Segments {
		segment, err := dto.toSegment(tanks)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("segment %d: %w", index+1, err))
			continue
		}
		segments = append(segments, segment)
	}

	if result != nil {
		return planner.Plan{}, result
	}

	return planner.Plan{
		Tanks:    tanks,
		Segments: segments,
		Diver:    diver,
		Options:  opts,
	}, nil
}

func (t TankDto) toTank() (*tank.Tank, error) {
	if t.Size <= 0 {
		return nil, fmt.Errorf("size has to be positive")
	}
	if t.StartPressure <= 0 {
		return nil, fmt.Errorf("start pressure has to be positive")
	}

	g, err := parseGas(t.Gas, t.O2, t.He)
	if err != nil {
		return nil, err
	}

	result := tank.New(t.Size, t.StartPressure, g)
	if t.WorkingPressure > 0 {
		result.WorkingPressure = t.WorkingPressure
	}
	return result, nil
}

func parseGas(name string, o2, he float64) (gas.Gas, error) {
	if name != "" {
		found, ok := gas.ByName(name)
		if !ok {
			return gas.Gas{}, fmt.Errorf("unknown gas %q", name)
		}
		return found, nil
	}

	if o2 == 0 && he == 0 {
		return gas.Air, nil
	}
	if o2 <= 0 || he < 0 || o2+he > 100 {
		return gas.Gas{}, fmt.Errorf("invalid gas content %g/%g", o2, he)
	}
	return gas.FromPercents(o2, he), nil
}

func (s SegmentDto) toSegment(tanks *tank.Tanks) (profile.Segment, error) {
	if s.StartDepth < 0 || s.EndDepth < 0 {
		return profile.Segment{}, fmt.Errorf("depth can't be negative")
	}
	if s.Duration < 0 {
		return profile.Segment{}, fmt.Errorf("duration can't be negative")
	}

	source := tanks.First()
	if s.Tank != 0 {
		source = tanks.ByID(s.Tank)
		if source == nil {
			return profile.Segment{}, fmt.Errorf("unknown tank %d", s.Tank)
		}
	}

	g := source.Gas
	if s.Gas != "" {
		found, ok := gas.ByName(s.Gas)
		if !ok {
			return profile.Segment{}, fmt.Errorf("unknown gas %q", s.Gas)
		}
		g = found
	}

	return profile.NewSegment(s.StartDepth, s.EndDepth, g, minutes(s.Duration)).WithTank(s.Tank), nil
}

func (o *OptionsDto) apply(opts *options.Options) {
	setFloat(&opts.MaxPpO2, o.MaxPpO2)
	setFloat(&opts.MaxDecoPpO2, o.MaxDecoPpO2)
	setFloat(&opts.MaxEND, o.MaxEND)
	setFloat(&opts.DecoStopDistance, o.DecoStopDistance)
	setFloat(&opts.DescentSpeed, o.DescentSpeed)
	setFloat(&opts.AscentSpeed50perc, o.AscentSpeed50perc)
	setFloat(&opts.AscentSpeed50percTo6m, o.AscentSpeed50percTo6m)
	setFloat(&opts.AscentSpeed6m, o.AscentSpeed6m)
	setFloat(&opts.Altitude, o.Altitude)

	if o.OxygenNarcotic != nil {
		opts.OxygenNarcotic = *o.OxygenNarcotic
	}
	if o.ProblemSolvingDuration != nil {
		opts.ProblemSolvingDuration = minutes(*o.ProblemSolvingDuration)
	}
	if o.GasSwitchDuration != nil {
		opts.GasSwitchDuration = minutes(*o.GasSwitchDuration)
	}
	if o.SafetyStop != "" {
		opts.SafetyStop = options.ParseSafetyStop(o.SafetyStop)
	}
	if o.Salinity != "" {
		opts.Salinity = physics.ParseSalinity(o.Salinity)
	}
}

func setFloat(target *float64, value *float64) {
	if value != nil {
		*target = *value
	}
}

// FromResult converts the calculated result to the reply.
func FromResult(result planner.Result) PlanResult {
	reply := PlanResult{
		Tanks:                make([]TankResult, 0, len(result.Tanks)),
		Profile:              make([]SegmentResult, 0, len(result.Profile)),
		Events:               make([]EventDto, 0, len(result.Events)),
		MaxTime:              result.MaxTime,
		TimeToSurface:        result.TimeToSurface,
		EmergencyAscentStart: toMinutes(result.EmergencyAscentStart),
		AverageDepth:         result.AverageDepth,
		Duration:             toMinutes(result.Duration),
		NotEnoughGas:         result.NotEnoughGas,
		NotEnoughTime:        result.NotEnoughTime,
		HasErrors:            result.HasErrors(),
	}

	for _, t := range result.Tanks {
		reply.Tanks = append(reply.Tanks, TankResult{
			ID:                t.ID,
			Label:             t.Label(),
			Gas:               t.Name(),
			Size:              t.Size,
			StartPressure:     t.StartPressure,
			EndPressure:       t.EndPressure(),
			Consumed:          t.Consumed,
			Reserve:           t.Reserve,
			PercentsRemaining: t.PercentsRemaining(),
			PercentsReserve:   t.PercentsReserve(),
			HasReserve:        t.HasReserve(),
		})
	}

	for _, s := range result.Profile {
		reply.Profile = append(reply.Profile, SegmentResult{
			StartDepth: s.StartDepth,
			EndDepth:   s.EndDepth,
			Duration:   toMinutes(s.Duration),
			Gas:        s.Gas.Name(),
			Tank:       s.TankID,
		})
	}

	for _, e := range result.Events {
		reply.Events = append(reply.Events, fromEvent(e))
	}

	return reply
}

func fromEvent(e events.Event) EventDto {
	return EventDto{
		Type:    e.Type.String(),
		Message: e.Message,
		Depth:   e.Depth,
		Time:    toMinutes(e.Time),
		Gas:     e.GasName,
	}
}

func minutes(value float64) time.Duration {
	return time.Duration(math.Round(value * float64(time.Minute)))
}

func toMinutes(d time.Duration) float64 {
	return physics.RoundTwoDecimals(d.Minutes())
}
