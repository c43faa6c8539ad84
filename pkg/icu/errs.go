package icu

import "errors"

var (
	// ErrLengthOfStay indicates a non-positive (or NaN) length of stay.
	ErrLengthOfStay = errors.New("icu: length of stay must be > 0")

	// ErrNegative indicates a negative population, fraction, rate or capacity.
	ErrNegative = errors.New("icu: negative parameter")

	// ErrDemand indicates parameters whose daily admissions could exceed
	// MaxDailyRequests.
	ErrDemand = errors.New("icu: daily demand too large")

	// ErrSeriesLength indicates time and infectious series of different length.
	ErrSeriesLength = errors.New("icu: series length mismatch")

	// ErrTimeIndex indicates a sample time whose day index falls outside the
	// infectious series.
	ErrTimeIndex = errors.New("icu: time outside infectious series")

	// ErrMode indicates an unknown reporting mode name.
	ErrMode = errors.New("icu: unknown reporting mode")
)
