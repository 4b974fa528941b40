package gas

import (
	"math"
	"regexp"
	"strconv"
)

const (
	airName    = "Air"
	oxygenName = "Oxygen"
)

// Standard gases, inspired by UTD standard gases.
var (
	// Hyperoxic
	Oxygen     = New(1, 0)
	EAN50      = New(0.5, 0)
	EAN38      = New(0.38, 0)
	EAN36      = New(0.36, 0)
	EAN32      = New(0.32, 0)
	Trimix3525 = New(0.35, 0.25)
	Trimix2525 = New(0.25, 0.25)

	// Normoxic
	Air        = New(O2InAir, 0)
	Trimix2135 = New(0.21, 0.35)
	Trimix1845 = New(0.18, 0.45)

	// Hypoxic
	Trimix1555 = New(0.15, 0.55)
	Trimix1260 = New(0.12, 0.6)
	Trimix1070 = New(0.1, 0.7)
)

type namedGas struct {
	name string
	gas  Gas
}

// nitrox first, see NitroxNames
var catalog = []namedGas{
	{airName, Air},
	{"EAN32", EAN32},
	{"EAN36", EAN36},
	{"EAN38", EAN38},
	{"EAN50", EAN50},
	{oxygenName, Oxygen},
	{"35/25", Trimix3525},
	{"25/25", Trimix2525},
	{"21/35", Trimix2135},
	{"18/45", Trimix1845},
	{"15/55", Trimix1555},
	{"12/60", Trimix1260},
	{"10/70", Trimix1070},
}

const nitroxCount = 6

// EANxx as nitrox or xx/yy as O2/He of trimix
var namesRegExp = regexp.MustCompile(`(?i)^\s*(?:EAN(\d{2})|(\d{2})/(\d{2}))\s*$`)

// AllNames of predefined gases including both nitrox and trimix.
func AllNames() []string {
	names := make([]string, 0, len(catalog))
	for _, item := range catalog {
		names = append(names, item.name)
	}
	return names
}

// NitroxNames is the subset of AllNames without helium.
func NitroxNames() []string {
	return AllNames()[:nitroxCount]
}

// ByName looks up the catalog first, then parses the name.
// Unknown or unparseable names are reported as not found.
func ByName(name string) (Gas, bool) {
	for _, item := range catalog {
		if item.name == name {
			return item.gas, true
		}
	}

	match := namesRegExp.FindStringSubmatch(name)
	if match == nil {
		return Gas{}, false
	}

	if match[1] != "" {
		fO2 := percents(match[1])
		if fO2 > 0 {
			return New(fO2, 0), true
		}
		return Gas{}, false
	}

	fO2 := percents(match[2])
	fHe := percents(match[3])
	if fO2 > 0 && fHe > 0 && fO2+fHe <= 1 {
		return New(fO2, fHe), true
	}
	return Gas{}, false
}

// FromPercents prefers the catalog gas of the same name, e.g. 21 % of oxygen is air.
// Fractional percents don't match any name and are kept as they are.
func FromPercents(o2, he float64) Gas {
	fO2 := o2 / 100
	fHe := he / 100
	if o2 == math.Round(o2) && he == math.Round(he) {
		if standard, ok := ByName(NameFor(fO2, fHe)); ok {
			return standard
		}
	}
	return New(fO2, fHe)
}

// NameFor returns label of the standard gas based on its content.
func NameFor(fO2, fHe float64) string {
	percentO2 := roundPercents(fO2)
	percentHe := roundPercents(fHe)

	if percentO2 <= 0 {
		return ""
	}

	if percentHe <= 0 {
		if percentO2 >= 100 {
			return oxygenName
		}
		if percentO2 == 21 {
			return airName
		}
		return "EAN" + strconv.Itoa(percentO2)
	}

	return strconv.Itoa(percentO2) + "/" + strconv.Itoa(percentHe)
}

func percents(digits string) float64 {
	value, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return float64(value) / 100
}

func roundPercents(fraction float64) int {
	return int(math.Round(fraction * 100))
}
