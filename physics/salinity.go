package physics

import "strings"

type Salinity int

const (
	Fresh Salinity = iota + 1
	Brackish
	Salt
)

// Density of the water in kg/m³
func (s Salinity) Density() float64 {
	switch s {
	case Brackish:
		return 1020
	case Salt:
		return 1030
	default:
		return 1000
	}
}

func (s Salinity) String() string {
	switch s {
	case Fresh:
		return "fresh"
	case Brackish:
		return "brackish"
	case Salt:
		return "salt"
	default:
		return "unknown"
	}
}

// ParseSalinity is case insensitive, unknown names resolve to fresh water.
func ParseSalinity(name string) Salinity {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "brackish":
		return Brackish
	case "salt":
		return Salt
	default:
		return Fresh
	}
}
