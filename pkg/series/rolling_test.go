package series

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestRollingMean_Basic(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5}
	out := RollingMean(values, 3)

	if len(out) != len(values) {
		t.Fatalf("Expected output length %d, got %d", len(values), len(out))
	}

	// First window-1 positions are warm-up
	for i := 0; i < 2; i++ {
		if !math.IsNaN(out[i]) {
			t.Errorf("Expected NaN at index %d, got %f", i, out[i])
		}
	}

	expected := []float64{2, 3, 4}
	for i, want := range expected {
		if !almostEqual(out[i+2], want) {
			t.Errorf("Expected %f at index %d, got %f", want, i+2, out[i+2])
		}
	}
}

func TestRollingMean_NaNWindow(t *testing.T) {
	nan := math.NaN()
	values := []float64{1, 2, nan, 4, 5, 6, 7}
	out := RollingMean(values, 3)

	// Any window touching the NaN at index 2 is undefined
	for i := 0; i <= 4; i++ {
		if !math.IsNaN(out[i]) {
			t.Errorf("Expected NaN at index %d (window touches NaN), got %f", i, out[i])
		}
	}

	// Index 5 is the first NaN-free window: {4, 5, 6}
	if !almostEqual(out[5], 5) {
		t.Errorf("Expected 5 at index 5, got %f", out[5])
	}
	if !almostEqual(out[6], 6) {
		t.Errorf("Expected 6 at index 6, got %f", out[6])
	}
}

func TestRollingMean_DefinedIffWindowNaNFree(t *testing.T) {
	nan := math.NaN()
	values := []float64{nan, 1, 2, 3, nan, 5, 6, 7, 8}
	window := 2
	out := RollingMean(values, window)

	for i := range values {
		nanFree := true
		for j := i - window + 1; j <= i; j++ {
			if j < 0 || math.IsNaN(values[j]) {
				nanFree = false
				break
			}
		}
		if nanFree == math.IsNaN(out[i]) {
			t.Errorf("Index %d: window NaN-free=%v but output=%f", i, nanFree, out[i])
		}
	}
}

func TestRollingMean_ZeroWindow(t *testing.T) {
	out := RollingMean([]float64{1, 2, 3}, 0)
	for i, v := range out {
		if !math.IsNaN(v) {
			t.Errorf("Expected all-NaN for zero window, got %f at index %d", v, i)
		}
	}
}

func TestEMASeries_SeedAndEmission(t *testing.T) {
	values := []float64{10, 11, 12, 13, 14}
	period := 3
	out := EMASeries(values, period)

	// Warm-up region suppressed
	for i := 0; i < period-1; i++ {
		if !math.IsNaN(out[i]) {
			t.Errorf("Expected NaN at index %d, got %f", i, out[i])
		}
	}

	// Recursion runs from index 0 with seed values[0]
	alpha := 2.0 / float64(period+1)
	ema := values[0]
	for i := 1; i < len(values); i++ {
		ema = alpha*values[i] + (1-alpha)*ema
		if i+1 >= period && !almostEqual(out[i], ema) {
			t.Errorf("Expected %f at index %d, got %f", ema, i, out[i])
		}
	}
}

func TestEMASeries_NaNIsAbsorbing(t *testing.T) {
	nan := math.NaN()
	values := []float64{1, 2, 3, nan, 5, 6, 7, 8}
	out := EMASeries(values, 2)

	// Finite before the NaN
	for i := 1; i < 3; i++ {
		if math.IsNaN(out[i]) {
			t.Errorf("Expected finite value at index %d before NaN", i)
		}
	}

	// Permanently NaN from the poisoned index on, no recovery
	for i := 3; i < len(values); i++ {
		if !math.IsNaN(out[i]) {
			t.Errorf("Expected NaN at index %d after poisoning, got %f", i, out[i])
		}
	}
}

func TestEMASeries_ConstantInput(t *testing.T) {
	values := []float64{7, 7, 7, 7, 7, 7}
	out := EMASeries(values, 3)
	for i := 2; i < len(values); i++ {
		if !almostEqual(out[i], 7) {
			t.Errorf("Expected 7 at index %d, got %f", i, out[i])
		}
	}
}

func TestRollingStdDev_IdenticalValues(t *testing.T) {
	values := []float64{5, 5, 5, 5, 5}
	out := RollingStdDev(values, 3)

	for i := 0; i < 2; i++ {
		if !math.IsNaN(out[i]) {
			t.Errorf("Expected NaN at index %d, got %f", i, out[i])
		}
	}
	for i := 2; i < len(values); i++ {
		if !almostEqual(out[i], 0) {
			t.Errorf("Expected 0 stddev at index %d, got %f", i, out[i])
		}
	}
}

func TestRollingStdDev_SampleVariance(t *testing.T) {
	values := []float64{2, 4, 6}
	out := RollingStdDev(values, 3)

	// mean=4, sum sq diff = 4+0+4 = 8, sample var = 8/2 = 4
	if !almostEqual(out[2], 2) {
		t.Errorf("Expected 2, got %f", out[2])
	}
}

func TestRollingStdDev_NaNSubset(t *testing.T) {
	nan := math.NaN()

	// Window {nan, nan, 3}: one usable value -> 0
	out := RollingStdDev([]float64{nan, nan, 3}, 3)
	if !almostEqual(out[2], 0) {
		t.Errorf("Expected 0 for single-sample window, got %f", out[2])
	}

	// All-NaN window stays undefined
	out = RollingStdDev([]float64{nan, nan, nan}, 3)
	if !math.IsNaN(out[2]) {
		t.Errorf("Expected NaN for empty window, got %f", out[2])
	}

	// Window {nan, 2, 4}: mean over {2,4}=3, sample stddev=sqrt(2)
	out = RollingStdDev([]float64{nan, 2, 4}, 3)
	if !almostEqual(out[2], math.Sqrt2) {
		t.Errorf("Expected sqrt(2), got %f", out[2])
	}
}

func TestEmptyInputs(t *testing.T) {
	if out := RollingMean(nil, 3); len(out) != 0 {
		t.Errorf("Expected empty output for empty input, got %v", out)
	}
	if out := EMASeries(nil, 3); len(out) != 0 {
		t.Errorf("Expected empty output for empty input, got %v", out)
	}
	if out := RollingStdDev(nil, 3); len(out) != 0 {
		t.Errorf("Expected empty output for empty input, got %v", out)
	}
}
