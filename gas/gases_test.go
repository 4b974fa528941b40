package gas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"diveplan/events"
	"diveplan/physics"
)

var validationOptions = Options{MaxPpO2: 1.4, MaxDecoPpO2: 1.6}

func bestGasOptions(converter *physics.DepthConverter, depth float64, current Gas) BestGasOptions {
	return BestGasOptions{
		CurrentDepth:   depth,
		MaxDecoPpO2:    1.6,
		MaxEndPressure: converter.ToBar(30),
		OxygenNarcotic: true,
		CurrentGas:     current,
	}
}

func TestGasesRegistration(t *testing.T) {
	gases := NewGases(Air, EAN50)
	assert.True(t, gases.HasBottomGas())
	assert.True(t, gases.IsRegistered(New(0.5, 0)))
	assert.False(t, gases.IsRegistered(Oxygen))
	assert.Equal(t, 2, gases.Len())

	all := gases.All()
	all[0] = Oxygen
	assert.False(t, gases.IsRegistered(Oxygen))
}

func TestEmptyGases(t *testing.T) {
	assert.False(t, NewGases().HasBottomGas())
}

func TestBestGas(t *testing.T) {
	converter := physics.ForFreshWater()
	gases := NewGases(Air, EAN50, Oxygen)

	cases := []struct {
		depth    float64
		expected Gas
	}{
		{depth: 30, expected: Air},
		{depth: 22, expected: Air},
		{depth: 21, expected: EAN50},
		{depth: 9, expected: EAN50},
		{depth: 6, expected: Oxygen},
		{depth: 0, expected: Oxygen},
	}

	for _, c := range cases {
		found := gases.BestGas(converter, bestGasOptions(converter, c.depth, Air))
		assert.Equal(t, c.expected, found, "depth %v", c.depth)
	}
}

func TestBestGasKeepsCurrentGasWhenNothingFits(t *testing.T) {
	converter := physics.ForFreshWater()
	gases := NewGases(Air, Trimix1845)

	// air is too narcotic at 40 m, but trimix has less oxygen
	found := gases.BestGas(converter, bestGasOptions(converter, 40, Air))
	assert.Equal(t, Air, found)
}

func TestBestGasRespectsNarcoticDepth(t *testing.T) {
	converter := physics.ForFreshWater()
	gases := NewGases(Trimix1845, Air)

	found := gases.BestGas(converter, bestGasOptions(converter, 40, Trimix1845))
	assert.Equal(t, Trimix1845, found)

	found = gases.BestGas(converter, bestGasOptions(converter, 30, Trimix1845))
	assert.Equal(t, Air, found)
}

func TestBestGasTieKeepsFirstFound(t *testing.T) {
	converter := physics.ForFreshWater()
	nitrox := New(0.5, 0)
	trimix := New(0.5, 0.2)

	found := NewGases(nitrox, trimix).BestGas(converter, bestGasOptions(converter, 15, Air))
	assert.Equal(t, nitrox, found)

	found = NewGases(trimix, nitrox).BestGas(converter, bestGasOptions(converter, 15, Air))
	assert.Equal(t, trimix, found)
}

func TestValidateNoGas(t *testing.T) {
	result := Validate(NewGases(), validationOptions, physics.StandardPressure)
	require.Len(t, result, 1)
	assert.Equal(t, events.Error, result[0].Type)
	assert.Equal(t, "At least one bottom gas has to be defined.", result[0].Message)
}

func TestValidateCoveredDepths(t *testing.T) {
	result := Validate(NewGases(Air, EAN50, Oxygen), validationOptions, physics.StandardPressure)
	assert.Empty(t, result)

	result = Validate(NewGases(Trimix1070, EAN50), validationOptions, physics.StandardPressure)
	assert.Empty(t, result)
}

func TestValidateGap(t *testing.T) {
	// oxygen can't be used deeper than 6 m, but 10/70 can't be breathed above 8 m
	result := Validate(NewGases(Oxygen, Trimix1070), validationOptions, physics.StandardPressure)
	require.Len(t, result, 1)
	assert.Equal(t, "Gases don't cover all depths.", result[0].Message)
	assert.True(t, events.HasErrors(result))
}
