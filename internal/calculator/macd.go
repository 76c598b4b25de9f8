package calculator

// MACD returns the latest MACD line (12/26 EMA difference) and its 9-period
// EMA signal line. The MACD line is nil below 26 values, the signal line below
// 34 (the signal EMA needs 9 MACD values of its own).
func MACD(values []float64) (macd, signal *float64) {
	const (
		fastPeriod   = 12
		slowPeriod   = 26
		signalPeriod = 9
	)

	slowEMA := EMA(values, slowPeriod)
	if slowEMA == nil {
		return nil, nil
	}
	fastEMA := EMA(values, fastPeriod)

	// Both series align to the tail of the input; the MACD line exists only
	// where the slow EMA does.
	n := len(slowEMA)
	line := make([]float64, n)
	for i := 0; i < n; i++ {
		line[i] = fastEMA[len(fastEMA)-n+i] - slowEMA[i]
	}

	latest := line[n-1]
	macd = &latest

	if sig := EMA(line, signalPeriod); sig != nil {
		s := sig[len(sig)-1]
		signal = &s
	}
	return macd, signal
}
