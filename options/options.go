// Package options holds the parameters of one plan calculation.
package options

import (
	"fmt"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"

	"diveplan/gas"
	"diveplan/physics"
)

type SafetyStop int

const (
	SafetyStopNever SafetyStop = iota
	// SafetyStopAuto adds the stop only to dives deeper than AutoSafetyStopDepth
	SafetyStopAuto
	SafetyStopAlways
)

func (s SafetyStop) String() string {
	switch s {
	case SafetyStopNever:
		return "never"
	case SafetyStopAlways:
		return "always"
	default:
		return "auto"
	}
}

// ParseSafetyStop falls back to auto for unknown names.
func ParseSafetyStop(name string) SafetyStop {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "never":
		return SafetyStopNever
	case "always":
		return SafetyStopAlways
	default:
		return SafetyStopAuto
	}
}

type Options struct {
	MaxPpO2        float64 // bar
	MaxDecoPpO2    float64 // bar
	MaxEND         float64 // m
	OxygenNarcotic bool

	ProblemSolvingDuration time.Duration
	GasSwitchDuration      time.Duration

	SafetyStop          SafetyStop
	SafetyStopDepth     float64 // m
	SafetyStopDuration  time.Duration
	AutoSafetyStopDepth float64 // m
	DecoStopDistance    float64 // m

	DescentSpeed          float64 // m/min
	AscentSpeed50perc     float64 // m/min, from bottom up to 50 % of the depth
	AscentSpeed50percTo6m float64 // m/min
	AscentSpeed6m         float64 // m/min, last 6 meters to the surface

	Salinity physics.Salinity
	Altitude float64 // m.a.s.l.
}

func Default() *Options {
	return &Options{
		MaxPpO2:                1.4,
		MaxDecoPpO2:            1.6,
		MaxEND:                 30,
		OxygenNarcotic:         true,
		ProblemSolvingDuration: time.Minute,
		GasSwitchDuration:      time.Minute,
		SafetyStop:             SafetyStopAuto,
		SafetyStopDepth:        3,
		SafetyStopDuration:     3 * time.Minute,
		AutoSafetyStopDepth:    20,
		DecoStopDistance:       physics.DecoStopDistance,
		DescentSpeed:           18,
		AscentSpeed50perc:      9,
		AscentSpeed50percTo6m:  6,
		AscentSpeed6m:          3,
		Salinity:               physics.Fresh,
		Altitude:               0,
	}
}

func (o *Options) Copy() *Options {
	c := *o
	return &c
}

// Validate reports all invalid values at once.
func (o *Options) Validate() error {
	var result error

	positive := func(name string, value float64) {
		if value <= 0 {
			result = multierror.Append(result, fmt.Errorf("%s has to be positive, got %g", name, value))
		}
	}

	positive("max ppO2", o.MaxPpO2)
	positive("max deco ppO2", o.MaxDecoPpO2)
	positive("max END", o.MaxEND)
	positive("descent speed", o.DescentSpeed)
	positive("ascent speed from bottom", o.AscentSpeed50perc)
	positive("ascent speed to 6 m", o.AscentSpeed50percTo6m)
	positive("ascent speed from 6 m", o.AscentSpeed6m)
	positive("deco stop distance", o.DecoStopDistance)

	if o.MaxDecoPpO2 < o.MaxPpO2 {
		result = multierror.Append(result, fmt.Errorf("max deco ppO2 %g is lower than max ppO2 %g", o.MaxDecoPpO2, o.MaxPpO2))
	}

	if o.ProblemSolvingDuration < 0 || o.GasSwitchDuration < 0 || o.SafetyStopDuration < 0 {
		result = multierror.Append(result, fmt.Errorf("durations can't be negative"))
	}

	if o.SafetyStopDepth < 0 || o.AutoSafetyStopDepth < 0 {
		result = multierror.Append(result, fmt.Errorf("safety stop depths can't be negative"))
	}

	if o.Altitude < 0 || o.Altitude > 5000 {
		result = multierror.Append(result, fmt.Errorf("altitude %g m is out of range 0-5000 m", o.Altitude))
	}

	if o.Salinity < physics.Fresh || o.Salinity > physics.Salt {
		result = multierror.Append(result, fmt.Errorf("unknown salinity %d", int(o.Salinity)))
	}

	return result
}

// DepthConverter creates converter for the water and altitude of the dive.
func (o *Options) DepthConverter() *physics.DepthConverter {
	return physics.NewDepthConverter(o.Salinity, o.Altitude).WithDecoStopDistance(o.DecoStopDistance)
}

// MaxEndPressure converts the max narcotic depth to bars.
func (o *Options) MaxEndPressure(converter gas.DepthConverter) float64 {
	return converter.ToBar(o.MaxEND)
}

func (o *Options) GasOptions() gas.Options {
	return gas.Options{MaxPpO2: o.MaxPpO2, MaxDecoPpO2: o.MaxDecoPpO2}
}

// AddSafetyStop decides the safety stop for dive to given max depth in meters.
func (o *Options) AddSafetyStop(maxDepth float64) bool {
	switch o.SafetyStop {
	case SafetyStopAlways:
		return true
	case SafetyStopAuto:
		return maxDepth >= o.AutoSafetyStopDepth
	default:
		return false
	}
}

// AscentSpeed in meters per minute at current depth of ascent starting at startDepth.
func (o *Options) AscentSpeed(currentDepth, startDepth float64) float64 {
	if currentDepth > startDepth/2 {
		return o.AscentSpeed50perc
	}
	if currentDepth > 6 {
		return o.AscentSpeed50percTo6m
	}
	return o.AscentSpeed6m
}
