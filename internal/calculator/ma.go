package calculator

// SMA returns the simple moving average of the last `period` values.
// Returns nil when fewer than `period` values exist.
func SMA(values []float64, period int) *float64 {
	if period <= 0 || len(values) < period {
		return nil
	}
	sum := 0.0
	for i := len(values) - period; i < len(values); i++ {
		sum += values[i]
	}
	avg := sum / float64(period)
	return &avg
}

// EMA computes the exponential moving average series, seeded with the SMA of
// the first `period` values. The result holds one entry per input value from
// index period-1 onward. Returns nil when the input is shorter than `period`.
func EMA(values []float64, period int) []float64 {
	if period <= 0 || len(values) < period {
		return nil
	}
	seed := 0.0
	for i := 0; i < period; i++ {
		seed += values[i]
	}
	seed /= float64(period)

	out := make([]float64, 0, len(values)-period+1)
	out = append(out, seed)
	k := 2.0 / (float64(period) + 1)
	prev := seed
	for i := period; i < len(values); i++ {
		prev = (values[i]-prev)*k + prev
		out = append(out, prev)
	}
	return out
}
