package calculator

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func rising(n int) []float64 {
	values := make([]float64, n)
	for i := range values {
		values[i] = 100 + float64(i)
	}
	return values
}

func constant(v float64, n int) []float64 {
	values := make([]float64, n)
	for i := range values {
		values[i] = v
	}
	return values
}

func TestSMA_KnownValues(t *testing.T) {
	got := SMA([]float64{1, 2, 3, 4, 5}, 5)
	if got == nil {
		t.Fatal("expected non-nil SMA")
	}
	if !almostEqual(*got, 3) {
		t.Errorf("SMA(1..5, 5) = %v, want 3", *got)
	}

	got = SMA([]float64{1, 2, 3, 4}, 3)
	if got == nil || !almostEqual(*got, 3) {
		t.Errorf("SMA over last 3 of [1 2 3 4] = %v, want 3", got)
	}
}

func TestSMA_InsufficientData(t *testing.T) {
	if got := SMA([]float64{1, 2}, 3); got != nil {
		t.Errorf("expected nil SMA for short input, got %v", *got)
	}
	if got := SMA(nil, 1); got != nil {
		t.Errorf("expected nil SMA for empty input, got %v", *got)
	}
}

func TestEMA_ConstantSeries(t *testing.T) {
	out := EMA(constant(50, 30), 12)
	if out == nil {
		t.Fatal("expected non-nil EMA series")
	}
	if len(out) != 30-12+1 {
		t.Fatalf("EMA series length = %d, want %d", len(out), 30-12+1)
	}
	for i, v := range out {
		if !almostEqual(v, 50) {
			t.Fatalf("EMA[%d] of constant series = %v, want 50", i, v)
		}
	}
}

func TestEMA_InsufficientData(t *testing.T) {
	if out := EMA(rising(11), 12); out != nil {
		t.Errorf("expected nil EMA for short input, got %v", out)
	}
}

func TestRSI_InsufficientData(t *testing.T) {
	if got := RSI(rising(14), 14); got != nil {
		t.Errorf("expected nil RSI for 14 values (need 15), got %v", *got)
	}
}

func TestRSI_AllGains(t *testing.T) {
	got := RSI(rising(15), 14)
	if got == nil {
		t.Fatal("expected non-nil RSI for 15 values")
	}
	if !almostEqual(*got, 100) {
		t.Errorf("RSI of strictly rising series = %v, want 100", *got)
	}
}

func TestRSI_Bounded(t *testing.T) {
	values := make([]float64, 60)
	for i := range values {
		if i%2 == 0 {
			values[i] = 100 + float64(i%7)
		} else {
			values[i] = 98 - float64(i%5)
		}
	}
	got := RSI(values, 14)
	if got == nil {
		t.Fatal("expected non-nil RSI")
	}
	if *got < 0 || *got > 100 {
		t.Errorf("RSI out of range: %v", *got)
	}
}

func TestMACD_Windows(t *testing.T) {
	macd, signal := MACD(rising(25))
	if macd != nil || signal != nil {
		t.Errorf("expected nil MACD and signal below 26 values, got %v / %v", macd, signal)
	}

	macd, signal = MACD(rising(26))
	if macd == nil {
		t.Fatal("expected non-nil MACD line at 26 values")
	}
	if signal != nil {
		t.Errorf("expected nil signal line below 34 values, got %v", *signal)
	}

	macd, signal = MACD(rising(34))
	if macd == nil || signal == nil {
		t.Fatalf("expected both lines at 34 values, got %v / %v", macd, signal)
	}
}

func TestMACD_ConstantSeries(t *testing.T) {
	macd, signal := MACD(constant(200, 60))
	if macd == nil || signal == nil {
		t.Fatal("expected both MACD lines for 60 values")
	}
	if !almostEqual(*macd, 0) {
		t.Errorf("MACD of constant series = %v, want 0", *macd)
	}
	if !almostEqual(*signal, 0) {
		t.Errorf("MACD signal of constant series = %v, want 0", *signal)
	}
}

func TestBollinger_ConstantSeries(t *testing.T) {
	upper, lower := Bollinger(constant(80, 20), 20, 2)
	if upper == nil || lower == nil {
		t.Fatal("expected non-nil bands at 20 values")
	}
	if !almostEqual(*upper, 80) || !almostEqual(*lower, 80) {
		t.Errorf("bands of zero-variance series = %v / %v, want 80 / 80", *upper, *lower)
	}
}

func TestBollinger_KnownSpread(t *testing.T) {
	// Alternating 90/110 over 20 values: mean 100, population std 10.
	values := make([]float64, 20)
	for i := range values {
		if i%2 == 0 {
			values[i] = 90
		} else {
			values[i] = 110
		}
	}
	upper, lower := Bollinger(values, 20, 2)
	if upper == nil || lower == nil {
		t.Fatal("expected non-nil bands")
	}
	if !almostEqual(*upper, 120) {
		t.Errorf("upper band = %v, want 120", *upper)
	}
	if !almostEqual(*lower, 80) {
		t.Errorf("lower band = %v, want 80", *lower)
	}
}

func TestBollinger_InsufficientData(t *testing.T) {
	upper, lower := Bollinger(rising(19), 20, 2)
	if upper != nil || lower != nil {
		t.Errorf("expected nil bands for short input, got %v / %v", upper, lower)
	}
}
