package planner

import (
	"testing"
	"time"

	"github.com/ansel1/merry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"diveplan/consumption"
	"diveplan/events"
	"diveplan/gas"
	"diveplan/options"
	"diveplan/profile"
	"diveplan/tank"
)

func simplePlan(bottom time.Duration, tanks ...*tank.Tank) Plan {
	return Plan{
		Tanks: tank.NewTanks(tanks...),
		Segments: []profile.Segment{
			profile.NewSegment(0, 30, gas.Air, 30*time.Second),
			profile.NewSegment(30, 30, gas.Air, bottom),
		},
		Diver:   consumption.DefaultDiver(),
		Options: options.Default(),
	}
}

func TestCalculateSimplePlan(t *testing.T) {
	plan := simplePlan(630*time.Second, tank.New(15, 200, gas.Air))
	result, err := New().Calculate(plan)
	require.NoError(t, err)

	require.Len(t, result.Profile, 7)
	assert.Equal(t, 0.0, result.Profile[6].EndDepth)
	assert.Equal(t, 19, result.MaxTime)
	assert.Equal(t, 10, result.TimeToSurface)
	assert.Equal(t, 11*time.Minute, result.EmergencyAscentStart)
	assert.Equal(t, 20.39, result.AverageDepth)
	assert.Equal(t, 1150*time.Second, result.Duration)
	assert.False(t, result.NotEnoughGas)
	assert.False(t, result.NotEnoughTime)
	assert.False(t, result.HasErrors())
	assert.Empty(t, result.Events)

	require.Len(t, result.Tanks, 1)
	assert.Equal(t, 77.0, result.Tanks[0].Consumed)
	assert.Equal(t, 76.0, result.Tanks[0].Reserve)
}

func TestCalculateDoesNotChangePlanTanks(t *testing.T) {
	plan := simplePlan(10*time.Minute, tank.New(15, 200, gas.Air))
	_, err := New().Calculate(plan)
	require.NoError(t, err)
	assert.Equal(t, 0.0, plan.Tanks.First().Consumed)
	assert.Equal(t, 0.0, plan.Tanks.First().Reserve)
}

func TestCalculateNotEnoughGas(t *testing.T) {
	result, err := New().Calculate(simplePlan(40*time.Minute, tank.New(15, 200, gas.Air)))
	require.NoError(t, err)

	assert.True(t, result.NotEnoughGas)
	assert.Equal(t, 0, result.MaxTime)
	require.NotEmpty(t, result.Events)
	last := result.Events[len(result.Events)-1]
	assert.Equal(t, events.NotEnoughGas, last.Type)
	assert.False(t, result.HasErrors())
}

func TestCalculateNotEnoughTime(t *testing.T) {
	result, err := New().Calculate(simplePlan(0, tank.New(15, 200, gas.Air)))
	require.NoError(t, err)
	assert.True(t, result.NotEnoughTime)
	assert.True(t, result.HasErrors())
}

func TestCalculateWithDecoGas(t *testing.T) {
	plan := simplePlan(1100*time.Second, tank.New(20, 200, gas.Air), tank.New(10, 200, gas.EAN50))
	plan.Segments[0].Duration = 100 * time.Second

	result, err := New().Calculate(plan)
	require.NoError(t, err)

	assert.Equal(t, 42, result.MaxTime)
	assert.Equal(t, 11, result.TimeToSurface)
	assert.Equal(t, 81.0, result.Tanks[0].Consumed)
	assert.Equal(t, 30.0, result.Tanks[1].Consumed)
	assert.Equal(t, 88.0, result.Tanks[1].Reserve)

	require.Len(t, result.Events, 1)
	assert.Equal(t, events.GasSwitch, result.Events[0].Type)
	assert.Equal(t, "EAN50", result.Events[0].GasName)
}

func TestCalculateInvalidGases(t *testing.T) {
	plan := simplePlan(10*time.Minute, tank.New(15, 200, gas.Oxygen), tank.New(15, 200, gas.Trimix1070))
	result, err := New().Calculate(plan)
	require.NoError(t, err)
	assert.True(t, result.HasErrors())
	assert.Empty(t, result.Profile)
}

func TestCalculateInvalidInput(t *testing.T) {
	plan := simplePlan(10*time.Minute, tank.Default())
	plan.Options.DescentSpeed = 0
	_, err := New().Calculate(plan)
	assert.True(t, merry.Is(err, ErrInvalidOptions))

	plan = simplePlan(10*time.Minute)
	_, err = New().Calculate(plan)
	assert.True(t, merry.Is(err, ErrNoTanks))

	plan = simplePlan(10*time.Minute, tank.Default())
	plan.Segments = plan.Segments[:1]
	_, err = New().Calculate(plan)
	assert.True(t, merry.Is(err, consumption.ErrProfileTooShort))
}
