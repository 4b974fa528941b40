package physics

import "math"

func Round(value float64, digits int) float64 {
	scale := math.Pow(10, float64(digits))
	return math.Round(value*scale) / scale
}

func RoundTwoDecimals(value float64) float64 {
	return Round(value, 2)
}
