package physics

import (
	"math"

	"github.com/ansel1/merry"
)

const (
	pascalsPerBar = 100000.0

	// StandardGravity m/s²
	StandardGravity = 9.80665
	earthRadius     = 6371000.0 // m

	// StandardPressure sea level pressure in bars
	StandardPressure = 1.01325

	seaLevelTemperature = 288.15    // K
	lapseRate           = -0.0065   // K/m
	molarMassOfAir      = 0.0289644 // kg/mol
	gasConstant         = 8.31432   // J/(mol·K)

	mmHgToPascal = 133.322387415

	// critical point of water, the Antoine equation has no meaning above it
	maxVapourTemperature = 375.0
)

// ErrTemperatureOutOfRange is returned for temperatures outside of (0, 375) °C.
var ErrTemperatureOutOfRange = merry.New("temperature out of range of the water vapour formula")

type antoine struct {
	a, b, c float64
}

var (
	antoineUpTo100 = antoine{a: 8.07131, b: 1730.63, c: 233.426}
	antoineAbove   = antoine{a: 8.14019, b: 1810.94, c: 244.485}
)

func PascalToBar(pascals float64) float64 {
	return pascals / pascalsPerBar
}

func BarToPascal(bars float64) float64 {
	return bars * pascalsPerBar
}

// WaterVapourPressureInBars uses the Antoine equation, valid only for liquid water.
func WaterVapourPressureInBars(degreesCelsius float64) (float64, error) {
	mmHg, err := waterVapourPressure(degreesCelsius)
	if err != nil {
		return 0, err
	}
	return PascalToBar(mmHg * mmHgToPascal), nil
}

// returns pressure in mmHg
func waterVapourPressure(degreesCelsius float64) (float64, error) {
	if degreesCelsius <= 0 || degreesCelsius >= maxVapourTemperature {
		return 0, ErrTemperatureOutOfRange.Here().Appendf("%g °C", degreesCelsius)
	}

	k := antoineUpTo100
	if degreesCelsius > 100 {
		k = antoineAbove
	}

	logP := k.a - k.b/(k.c+degreesCelsius)
	return math.Pow(10, logP), nil
}

// GravityAtAltitude returns gravity acceleration in m/s² at given meters above sea level.
func GravityAtAltitude(altitude float64) float64 {
	ratio := earthRadius / (earthRadius + altitude)
	return StandardGravity * ratio * ratio
}

// AtmosphericPressureAtAltitude returns absolute pressure in pascals, see barometric formula.
func AtmosphericPressureAtAltitude(altitude float64) float64 {
	base := seaLevelTemperature / (seaLevelTemperature + lapseRate*altitude)
	exponent := (StandardGravity * molarMassOfAir) / (gasConstant * lapseRate)
	return BarToPascal(StandardPressure) * math.Pow(base, exponent)
}
