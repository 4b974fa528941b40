package gas

import (
	"sort"

	"diveplan/events"
)

// DepthConverter translates depths in meters to absolute pressure.
type DepthConverter interface {
	ToBar(depth float64) float64
	ToDecoStop(bars float64) float64
}

// Options the validation depends on.
type Options struct {
	MaxPpO2     float64
	MaxDecoPpO2 float64
}

type BestGasOptions struct {
	CurrentDepth   float64 // m
	MaxDecoPpO2    float64
	MaxEndPressure float64 // bar
	OxygenNarcotic bool
	// we are searching for better gas than the current
	CurrentGas Gas
}

// Gases is ordered collection of gases carried during the dive.
// The order decides which gas wins, if more gases are equally good.
type Gases struct {
	items []Gas
}

func NewGases(items ...Gas) *Gases {
	g := &Gases{}
	for _, item := range items {
		g.Add(item)
	}
	return g
}

func (g *Gases) Add(gas Gas) {
	g.items = append(g.items, gas)
}

// All returns copy of the gases in the order they were added.
func (g *Gases) All() []Gas {
	result := make([]Gas, len(g.items))
	copy(result, g.items)
	return result
}

func (g *Gases) Len() int {
	return len(g.items)
}

func (g *Gases) HasBottomGas() bool {
	return len(g.items) >= 1
}

// IsRegistered compares the gas content, not the gas instance.
func (g *Gases) IsRegistered(gas Gas) bool {
	code := gas.ContentCode()
	for _, item := range g.items {
		if item.ContentCode() == code {
			return true
		}
	}
	return false
}

// BestGas finds better gas to switch to at current depth, used to find decompression gas during ascent.
// Better gas is breathable at current depth and has higher O2 content, since we need to off-gas
// both helium and nitrogen. Returns the current gas, if no better gas was found.
func (g *Gases) BestGas(converter DepthConverter, options BestGasOptions) Gas {
	currentPressure := converter.ToBar(options.CurrentDepth)
	found := options.CurrentGas

	for _, candidate := range g.items {
		modPressure := candidate.Mod(options.MaxDecoPpO2)
		mod := converter.ToDecoStop(modPressure)
		end := candidate.End(currentPressure, options.OxygenNarcotic)

		// ceiling doesn't matter here, it is covered by the higher O2 content,
		// EAN50 is better than trimix 25/25
		if options.CurrentDepth <= mod && end <= options.MaxEndPressure {
			if found.FO2 < candidate.FO2 {
				found = candidate
			}
		}
	}

	return found
}

// Validate returns list of errors, if the gases don't allow to breathe at all depths
// up to the surface. Empty list means the gases are valid.
func Validate(gases *Gases, options Options, surfacePressure float64) []events.Event {
	var result []events.Event

	if gases == nil || !gases.HasBottomGas() {
		return append(result, events.NewError("At least one bottom gas has to be defined."))
	}

	// gas with ceiling at the surface doesn't have to be checked, it is covered by the descent
	sorted := gases.All()
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Mod(options.MaxPpO2) > sorted[j].Mod(options.MaxPpO2)
	})

	for index := 0; index < len(sorted)-1; index++ {
		ceiling := sorted[index].Ceiling(surfacePressure)
		nextMod := sorted[index+1].Mod(options.MaxDecoPpO2)
		if nextMod < ceiling {
			result = append(result, events.NewError("Gases don't cover all depths."))
			break
		}
	}

	return result
}
