package physics

import "math"

// DecoStopDistance distance between two decompression stops in meters
const DecoStopDistance = 3.0

// DepthConverter translates depth in meters of water column to absolute pressure in bars
// and back. Surface pressure depends on altitude, the water column weight on salinity.
type DepthConverter struct {
	salinity        Salinity
	altitude        float64 // m.a.s.l.
	surfacePressure float64 // bar
	weightDensity   float64 // N/m³
	stopDistance    float64 // m
}

func NewDepthConverter(salinity Salinity, altitude float64) *DepthConverter {
	return &DepthConverter{
		salinity:        salinity,
		altitude:        altitude,
		surfacePressure: PascalToBar(AtmosphericPressureAtAltitude(altitude)),
		weightDensity:   salinity.Density() * StandardGravity,
		stopDistance:    DecoStopDistance,
	}
}

// WithDecoStopDistance returns copy of the converter rounding deco stops to given distance.
func (c *DepthConverter) WithDecoStopDistance(distance float64) *DepthConverter {
	copied := *c
	if distance > 0 {
		copied.stopDistance = distance
	}
	return &copied
}

func ForFreshWater() *DepthConverter {
	return NewDepthConverter(Fresh, 0)
}

func ForSaltWater() *DepthConverter {
	return NewDepthConverter(Salt, 0)
}

func (c *DepthConverter) Salinity() Salinity {
	return c.salinity
}

func (c *DepthConverter) Altitude() float64 {
	return c.altitude
}

// SurfacePressure in bars
func (c *DepthConverter) SurfacePressure() float64 {
	return c.surfacePressure
}

// ToBar returns absolute pressure in bars at given depth in meters.
func (c *DepthConverter) ToBar(depth float64) float64 {
	return PascalToBar(c.weightDensity*depth) + c.surfacePressure
}

// FromBar returns depth in meters, pressures lower than surface pressure map to the surface.
func (c *DepthConverter) FromBar(bars float64) float64 {
	if bars <= c.surfacePressure {
		return 0
	}
	return BarToPascal(bars-c.surfacePressure) / c.weightDensity
}

// ToDecoStop converts pressure to depth rounded to the nearest deco stop.
// e.g. oxygen at 1.6 bar is 5.98 m, which has to be still usable at the 6 m stop.
func (c *DepthConverter) ToDecoStop(bars float64) float64 {
	depth := c.FromBar(bars)
	return math.Round(depth/c.stopDistance) * c.stopDistance
}
