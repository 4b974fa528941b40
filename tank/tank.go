// Package tank models the cylinders carried during the dive.
package tank

import (
	"math"
	"strconv"

	"diveplan/gas"
)

const (
	// MinimumReserve is the lowest rock bottom in bars kept in the first tank.
	MinimumReserve = 30.0

	defaultSize     = 15.0
	defaultPressure = 200.0
)

// Tank is a physical gas source. Consumed and Reserve are written only by the consumption engine
// or by explicit user edits.
type Tank struct {
	ID              int     // 1 based position in the registry, 0 when not registered
	Size            float64 // liters of water volume
	WorkingPressure float64 // bar
	StartPressure   float64 // bar
	Consumed        float64 // bar
	Reserve         float64 // bar
	Gas             gas.Gas
}

func New(size, startPressure float64, g gas.Gas) *Tank {
	return &Tank{
		Size:            size,
		WorkingPressure: startPressure,
		StartPressure:   startPressure,
		Gas:             g,
	}
}

// Default returns 15 L tank filled by air to 200 bar.
func Default() *Tank {
	return New(defaultSize, defaultPressure, gas.Air)
}

func (t *Tank) EndPressure() float64 {
	return math.Max(0, t.StartPressure-t.Consumed)
}

// HasReserve reports, if the rock bottom is still available at the end of the dive.
func (t *Tank) HasReserve() bool {
	return t.EndPressure() >= t.Reserve
}

func (t *Tank) PercentsRemaining() int {
	if t.StartPressure <= 0 {
		return 0
	}
	return int(math.Round(100 - t.Consumed/t.StartPressure*100))
}

func (t *Tank) PercentsReserve() int {
	if t.StartPressure <= 0 {
		return 0
	}
	return int(math.Round(t.Reserve / t.StartPressure * 100))
}

// Volume of gas in liters at surface pressure.
func (t *Tank) Volume() float64 {
	return t.Size * t.StartPressure
}

// AssignStandardGas keeps current gas, if the name is not recognized.
func (t *Tank) AssignStandardGas(name string) bool {
	found, ok := gas.ByName(name)
	if ok {
		t.Gas = found
	}
	return ok
}

func (t *Tank) Name() string {
	return t.Gas.Name()
}

// Label e.g. "1. Air/15/200"
func (t *Tank) Label() string {
	return strconv.Itoa(t.ID) + ". " + t.Name() + "/" + formatFloat(t.Size) + "/" + formatFloat(t.StartPressure)
}

func (t *Tank) ResetConsumption() {
	t.Consumed = 0
	t.Reserve = 0
}

func (t *Tank) Copy() *Tank {
	c := *t
	return &c
}

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
