package models

import "errors"

var (
	// ErrInvalidArgument marks a structural contract violation: zero
	// window/period, mismatched series lengths, or a missing ATR series in
	// ATR stop mode. Data-quality degeneracies (NaN windows, zero-division
	// in RSI, single-sample variance) are expressed as NaN outputs, never
	// as errors.
	ErrInvalidArgument = errors.New("invalid argument")

	ErrInvalidBar = errors.New("invalid bar (high < low)")
)
