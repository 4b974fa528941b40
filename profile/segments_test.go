package profile

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"diveplan/gas"
	"diveplan/options"
	"diveplan/tank"
)

func TestSegmentSpeed(t *testing.T) {
	descent := NewSegment(0, 30, gas.Air, 2*time.Minute)
	assert.InDelta(t, 0.25, descent.Speed(), 1e-9)
	assert.True(t, descent.IsDescent())

	ascent := NewSegment(30, 0, gas.Air, 3*time.Minute)
	assert.InDelta(t, -1.0/6, ascent.Speed(), 1e-9)
	assert.True(t, ascent.IsAscent())

	flat := NewSegment(30, 30, gas.Air, time.Minute)
	assert.Equal(t, 0.0, flat.Speed())
	assert.True(t, flat.IsFlat())

	empty := NewSegment(30, 20, gas.Air, 0)
	assert.Equal(t, 0.0, empty.Speed())
}

func TestSegmentDepthAt(t *testing.T) {
	descent := NewSegment(0, 30, gas.Air, 2*time.Minute)
	assert.InDelta(t, 15, descent.DepthAt(time.Minute), 1e-9)
	assert.Equal(t, 0.0, descent.DepthAt(-time.Second))
	assert.Equal(t, 30.0, descent.DepthAt(3*time.Minute))
	assert.Equal(t, 15.0, descent.AverageDepth())
}

func TestBuilderContinues(t *testing.T) {
	segments := NewSegments()
	segments.AddChangeTo(30, gas.Air, 2*time.Minute)
	segments.AddFlat(30, gas.Air, 10*time.Minute)
	segments.AddChangeTo(20, gas.EAN50, time.Minute)

	items := segments.Items()
	require.Len(t, items, 3)
	assert.Equal(t, 0.0, items[0].StartDepth)
	assert.Equal(t, 30.0, items[2].StartDepth)
	assert.Equal(t, 20.0, items[2].EndDepth)
	assert.Equal(t, 13*time.Minute, segments.Duration())
	assert.Equal(t, 30.0, segments.MaxDepth())

	last, ok := segments.Last()
	require.True(t, ok)
	assert.Equal(t, gas.EAN50, last.Gas)
}

func TestEmptySegments(t *testing.T) {
	segments := NewSegments()
	_, ok := segments.Last()
	assert.False(t, ok)
	assert.False(t, segments.Any())
	assert.Equal(t, 0.0, segments.AverageDepth())
	assert.Empty(t, segments.DeepestPart())
}

func TestFixStartDepths(t *testing.T) {
	segments := NewSegments(
		NewSegment(5, 20, gas.Air, time.Minute),
		NewSegment(0, 20, gas.Air, time.Minute),
		NewSegment(3, 0, gas.Air, time.Minute),
	)
	segments.FixStartDepths()
	items := segments.Items()
	assert.Equal(t, 0.0, items[0].StartDepth)
	assert.Equal(t, 20.0, items[1].StartDepth)
	assert.Equal(t, 20.0, items[2].StartDepth)
}

func TestAverageDepth(t *testing.T) {
	segments := NewSegments()
	segments.Add(0, 20, gas.Air, 2*time.Minute)
	segments.AddFlat(20, gas.Air, 8*time.Minute)
	// (10 * 2 + 20 * 8) / 10
	assert.InDelta(t, 18, segments.AverageDepth(), 1e-9)
}

func TestDeepestPartUsesLastDeepestSegment(t *testing.T) {
	segments := NewSegments()
	segments.Add(0, 20, gas.Air, 2*time.Minute)
	segments.AddFlat(20, gas.Air, 10*time.Minute)
	segments.AddChangeTo(10, gas.Air, time.Minute)
	segments.AddFlat(10, gas.Air, 10*time.Minute)
	segments.AddChangeTo(20, gas.Air, time.Minute)
	segments.AddFlat(20, gas.Air, 10*time.Minute)
	segments.AddChangeTo(10, gas.Air, time.Minute)

	assert.Len(t, segments.DeepestPart(), 6)
	assert.Equal(t, 6, segments.StartAscentIndex())
}

func TestDeepestPartOfDeeperThanShallowerDive(t *testing.T) {
	segments := NewSegments()
	segments.Add(0, 30, gas.Air, 3*time.Minute)
	segments.AddFlat(30, gas.Air, 10*time.Minute)
	segments.AddChangeTo(10, gas.Air, time.Minute)
	segments.AddChangeTo(20, gas.Air, time.Minute)
	segments.AddFlat(20, gas.Air, 10*time.Minute)

	assert.Len(t, segments.DeepestPart(), 2)
}

func TestCreateForPlan(t *testing.T) {
	opts := options.Default()
	tanks := tank.NewTanks(tank.Default())
	segments := CreateForPlan(30, 12*time.Minute, tanks.First(), opts)

	items := segments.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 100*time.Second, items[0].Duration)
	assert.Equal(t, 12*time.Minute, segments.Duration())
	assert.Equal(t, 1, items[1].TankID)
	assert.Equal(t, gas.Air, items[1].Gas)
}

func TestCreateForPlanShorterThanDescent(t *testing.T) {
	segments := CreateForPlan(36, time.Minute, tank.Default(), options.Default())
	items := segments.Items()
	assert.Equal(t, 2*time.Minute, items[0].Duration)
	assert.Equal(t, time.Duration(0), items[1].Duration)
}
