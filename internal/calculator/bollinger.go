package calculator

import "math"

// Bollinger returns the upper and lower Bollinger bands: the `period` moving
// average ± `mult` population standard deviations over the same window.
// Returns nil bands when fewer than `period` values exist.
func Bollinger(values []float64, period int, mult float64) (upper, lower *float64) {
	ma := SMA(values, period)
	if ma == nil {
		return nil, nil
	}
	var variance float64
	for i := len(values) - period; i < len(values); i++ {
		d := values[i] - *ma
		variance += d * d
	}
	std := math.Sqrt(variance / float64(period))
	u := *ma + mult*std
	l := *ma - mult*std
	return &u, &l
}
