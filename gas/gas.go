package gas

import "math"

const (
	// O2InAir relative partial pressure of oxygen in air at surface
	O2InAir = 0.209
	// NitrogenInAir everything else than oxygen is considered nitrogen
	NitrogenInAir = 1 - O2InAir

	// MinPpO2 lowest partial pressure of oxygen considered breathable
	MinPpO2 = 0.18

	contentScale = 10000
)

// Gas is a breathing mixture. Fractions are in range 0-1, nitrogen is the rest.
// Gas is a value, two gases are the same gas if they have the same content.
type Gas struct {
	FO2 float64 `json:"o2" yaml:"o2"`
	FHe float64 `json:"he" yaml:"he"`
}

func New(fO2, fHe float64) Gas {
	return Gas{FO2: fO2, FHe: fHe}
}

func (g Gas) FN2() float64 {
	return 1 - g.FO2 - g.FHe
}

// Mod returns maximum operation depth in bars for given partial pressure of oxygen.
func (g Gas) Mod(ppO2 float64) float64 {
	return Mod(ppO2, g.FO2)
}

// End returns equivalent narcotic depth in bars. Helium is never narcotic.
func (g Gas) End(depthPressure float64, oxygenNarcotic bool) float64 {
	fO2 := 0.0
	if oxygenNarcotic {
		fO2 = g.FO2
	}
	return End(depthPressure, g.FN2(), fO2)
}

// Ceiling returns minimum absolute pressure in bars at which the gas is breathable.
func (g Gas) Ceiling(surfacePressure float64) float64 {
	return Ceiling(g.FO2, surfacePressure)
}

// PpO2 partial pressure of oxygen in bars at given absolute pressure.
func (g Gas) PpO2(depthPressure float64) float64 {
	return PartialPressure(depthPressure, g.FO2)
}

func (g Gas) CompositionEquals(other Gas) bool {
	return g.FO2 == other.FO2 && g.FHe == other.FHe
}

// ContentCode identifies the content of the gas. Gases equal after rounding
// to the packing precision share the same code.
func (g Gas) ContentCode() int64 {
	o2 := int64(math.Round(g.FO2 * contentScale))
	he := int64(math.Round(g.FHe * contentScale))
	return o2*contentScale + he
}

// Name returns standard label of the gas, e.g. "EAN32" or "18/45".
func (g Gas) Name() string {
	return NameFor(g.FO2, g.FHe)
}

func (g Gas) String() string {
	return g.Name()
}

// PartialPressure of gas component in bars absolute.
func PartialPressure(absPressure, volumeFraction float64) float64 {
	return absPressure * volumeFraction
}

// Mod returns depth in bars.
func Mod(ppO2, fO2 float64) float64 {
	return ppO2 / fO2
}

// BestMix returns fraction of oxygen giving exactly ppO2 at the pressure in bars.
func BestMix(ppO2, depthPressure float64) float64 {
	result := ppO2 / depthPressure
	if result > 1 {
		return 1
	}
	return result
}

// EquivalentAirDepth converts depth in bars of a nitrox mix to air depth in bars.
func EquivalentAirDepth(fO2, depthPressure float64) float64 {
	fN2 := 1 - fO2
	return End(depthPressure, fN2, 0) / NitrogenInAir
}

// End equivalent narcotic depth in bars. Nitrogen and oxygen have the narcotic factor 1.
func End(depthPressure, fN2, fO2 float64) float64 {
	narcoticIndex := fO2 + fN2
	return depthPressure * narcoticIndex
}

// Ceiling returns pressure in bars, never lower than surface pressure.
func Ceiling(fO2, surfacePressure float64) float64 {
	ratio := MinPpO2 / fO2
	bars := ratio * surfacePressure

	// hyperoxic gases would be breathable above the surface
	if bars < surfacePressure {
		return surfacePressure
	}
	return bars
}
