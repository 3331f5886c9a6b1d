package indicator

import (
	"errors"
	"math"
	"testing"

	"github.com/zenithalgo/zenith-go/internal/models"
)

func TestStdDev_ZeroPeriod(t *testing.T) {
	_, err := StdDev([]float64{1, 2, 3}, 0)
	if !errors.Is(err, models.ErrInvalidArgument) {
		t.Errorf("Expected ErrInvalidArgument for zero period, got %v", err)
	}
}

func TestStdDev_IdenticalValues(t *testing.T) {
	out, err := StdDev([]float64{4, 4, 4, 4}, 3)
	if err != nil {
		t.Fatalf("StdDev failed: %v", err)
	}
	for i := 2; i < 4; i++ {
		if out[i] != 0 {
			t.Errorf("Expected 0 for identical window at index %d, got %f", i, out[i])
		}
	}
}

func TestStdDev_SampleFormula(t *testing.T) {
	out, err := StdDev([]float64{1, 3, 5, 7}, 3)
	if err != nil {
		t.Fatalf("StdDev failed: %v", err)
	}

	// Window {1,3,5}: mean 3, sumSq 8, sample stddev 2
	if math.Abs(out[2]-2) > 1e-9 {
		t.Errorf("Expected 2 at index 2, got %f", out[2])
	}
	// Window {3,5,7}: same spread
	if math.Abs(out[3]-2) > 1e-9 {
		t.Errorf("Expected 2 at index 3, got %f", out[3])
	}
}
