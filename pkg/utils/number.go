package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// Percentage returns part/total*100 rounded to two decimals, 0 when total is 0.
func Percentage(part, total int) float64 {
	if total == 0 {
		return 0
	}

	return RoundWithTwoDecimalPlace(float64(part) / float64(total) * 100)
}
