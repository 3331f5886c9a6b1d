package indicator

import (
	"errors"
	"math"
	"testing"

	"github.com/zenithalgo/zenith-go/internal/models"
)

func TestSMA_ZeroWindow(t *testing.T) {
	_, err := SMA([]float64{1, 2, 3}, 0)
	if !errors.Is(err, models.ErrInvalidArgument) {
		t.Errorf("Expected ErrInvalidArgument for zero window, got %v", err)
	}
}

func TestSMA_Basic(t *testing.T) {
	out, err := SMA([]float64{1, 2, 3, 4, 5}, 3)
	if err != nil {
		t.Fatalf("SMA failed: %v", err)
	}
	if len(out) != 5 {
		t.Fatalf("Expected length 5, got %d", len(out))
	}

	if !math.IsNaN(out[0]) || !math.IsNaN(out[1]) {
		t.Errorf("Expected NaN warm-up, got %v", out[:2])
	}
	for i, want := range []float64{2, 3, 4} {
		if math.Abs(out[i+2]-want) > 1e-9 {
			t.Errorf("Expected %f at index %d, got %f", want, i+2, out[i+2])
		}
	}
}

func TestSMA_EqualsArithmeticMean(t *testing.T) {
	values := []float64{10.5, 9.25, 11, 12.75, 8, 10, 13.5}
	window := 4
	out, err := SMA(values, window)
	if err != nil {
		t.Fatalf("SMA failed: %v", err)
	}

	for i := window - 1; i < len(values); i++ {
		sum := 0.0
		for j := i - window + 1; j <= i; j++ {
			sum += values[j]
		}
		want := sum / float64(window)
		if math.Abs(out[i]-want) > 1e-9 {
			t.Errorf("Index %d: expected %f, got %f", i, want, out[i])
		}
	}
}

func TestSMA_WindowOne(t *testing.T) {
	values := []float64{4, 5, 6}
	out, err := SMA(values, 1)
	if err != nil {
		t.Fatalf("SMA failed: %v", err)
	}
	for i, v := range values {
		if out[i] != v {
			t.Errorf("Expected identity for window 1 at index %d, got %f", i, out[i])
		}
	}
}

func TestSMA_EmptyInput(t *testing.T) {
	out, err := SMA(nil, 3)
	if err != nil {
		t.Fatalf("SMA failed: %v", err)
	}
	if len(out) != 0 {
		t.Errorf("Expected empty output, got %v", out)
	}
}
