package consumption

import (
	"fmt"
	"math"
	"time"

	"diveplan/events"
	"diveplan/gas"
	"diveplan/options"
	"diveplan/profile"
)

// ProfileEvents finds dangerous parts of the profile and gas switches. Only start of each
// condition is reported. Ascent part of the profile is checked against the deco ppO2 limit.
func ProfileEvents(segments []profile.Segment, opts *options.Options, converter DepthConverter) []events.Event {
	var result []events.Event
	startAscentIndex := len(profile.DeepestPart(segments))
	maxEndPressure := opts.MaxEndPressure(converter)

	var elapsed time.Duration
	lowPpO2, highPpO2, highEnd := false, false, false

	for index, segment := range segments {
		deeper := math.Max(segment.StartDepth, segment.EndDepth)
		shallower := math.Min(segment.StartDepth, segment.EndDepth)

		if index > 0 && !segment.Gas.CompositionEquals(segments[index-1].Gas) {
			name := segment.Gas.Name()
			e := events.New(events.GasSwitch, elapsed, segment.StartDepth, "Switch to "+name)
			result = append(result, e.WithGas(name))
		}

		maxPpO2 := opts.MaxPpO2
		if index >= startAscentIndex {
			maxPpO2 = opts.MaxDecoPpO2
		}

		isLow := segment.Gas.PpO2(converter.ToBar(shallower)) < gas.MinPpO2
		if isLow && !lowPpO2 {
			message := fmt.Sprintf("Low ppO2 of %s at %g m", segment.Gas.Name(), shallower)
			result = append(result, events.New(events.LowPpO2, elapsed, shallower, message).WithGas(segment.Gas.Name()))
		}
		lowPpO2 = isLow

		isHigh := segment.Gas.PpO2(converter.ToBar(deeper)) > maxPpO2
		if isHigh && !highPpO2 {
			message := fmt.Sprintf("High ppO2 of %s at %g m", segment.Gas.Name(), deeper)
			result = append(result, events.New(events.HighPpO2, elapsed, deeper, message).WithGas(segment.Gas.Name()))
		}
		highPpO2 = isHigh

		isNarcotic := segment.Gas.End(converter.ToBar(deeper), opts.OxygenNarcotic) > maxEndPressure
		if isNarcotic && !highEnd {
			message := fmt.Sprintf("Narcotic depth exceeded by %s at %g m", segment.Gas.Name(), deeper)
			result = append(result, events.New(events.HighEND, elapsed, deeper, message).WithGas(segment.Gas.Name()))
		}
		highEnd = isNarcotic

		elapsed += segment.Duration
	}

	return result
}
