package models

import (
	"errors"
	"testing"
)

func TestBar_Validate(t *testing.T) {
	bar := &Bar{Timestamp: 1000, Open: 10, High: 12, Low: 9, Close: 11}
	if err := bar.Validate(); err != nil {
		t.Errorf("Expected valid bar, got %v", err)
	}

	inverted := &Bar{Timestamp: 1000, Open: 10, High: 9, Low: 12, Close: 11}
	if err := inverted.Validate(); !errors.Is(err, ErrInvalidBar) {
		t.Errorf("Expected ErrInvalidBar, got %v", err)
	}
}

func TestSignalConstants(t *testing.T) {
	// The simulator relies on buy/sell being exact negations for flip
	// detection.
	if SignalBuy != -SignalSell {
		t.Error("SignalBuy must be the negation of SignalSell")
	}
	if SignalNone != 0 {
		t.Error("SignalNone must be zero")
	}
}
