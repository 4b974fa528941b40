package consumption

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"diveplan/events"
	"diveplan/gas"
	"diveplan/options"
	"diveplan/physics"
	"diveplan/profile"
)

func profileEvents(segments ...profile.Segment) []events.Event {
	return ProfileEvents(segments, options.Default(), physics.ForFreshWater())
}

func TestNoEventsForSafeProfile(t *testing.T) {
	found := profileEvents(
		segment(0, 20, gas.Air, minutes(2)),
		segment(20, 20, gas.Air, minutes(20)),
		segment(20, 0, gas.Air, minutes(5)),
	)
	assert.Empty(t, found)
}

func TestHighEndIsReportedOnce(t *testing.T) {
	found := profileEvents(
		segment(0, 40, gas.Air, minutes(2)),
		segment(40, 40, gas.Air, minutes(10)),
		segment(40, 21, gas.Air, minutes(3)),
		segment(21, 21, gas.EAN50, minutes(1)),
		segment(21, 0, gas.EAN50, minutes(3)),
	)

	require.Len(t, found, 2)
	assert.Equal(t, events.HighEND, found[0].Type)
	assert.Equal(t, 40.0, found[0].Depth)
	assert.Equal(t, events.GasSwitch, found[1].Type)
	assert.Equal(t, "EAN50", found[1].GasName)
	assert.Equal(t, minutes(15), found[1].Time)
	assert.Equal(t, 21.0, found[1].Depth)
}

func TestHighPpO2AtBottom(t *testing.T) {
	found := profileEvents(
		segment(0, 30, gas.EAN50, minutes(2)),
		segment(30, 30, gas.EAN50, minutes(10)),
		segment(30, 0, gas.EAN50, minutes(5)),
	)

	require.Len(t, found, 1)
	assert.Equal(t, events.HighPpO2, found[0].Type)
	assert.Equal(t, 30.0, found[0].Depth)
	assert.Equal(t, "EAN50", found[0].GasName)
}

func TestLowPpO2OfHypoxicGas(t *testing.T) {
	found := profileEvents(
		segment(0, 30, gas.Trimix1070, minutes(2)),
		segment(30, 30, gas.Trimix1070, minutes(10)),
	)

	require.Len(t, found, 1)
	assert.Equal(t, events.LowPpO2, found[0].Type)
	assert.Equal(t, 0.0, found[0].Depth)
}
