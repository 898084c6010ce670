package gotrend

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntervalExcludesZero(t *testing.T) {
	tt := []struct {
		name     string
		interval Interval
		excludes bool
		sign     int
	}{
		{"positive", Interval{Lower: 0.1, Upper: 0.9}, true, 1},
		{"negative", Interval{Lower: -0.9, Upper: -0.1}, true, -1},
		{"straddles zero", Interval{Lower: -0.1, Upper: 0.1}, false, 0},
		{"touches zero", Interval{Lower: 0, Upper: 0.5}, false, 0},
	}
	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			excludes, sign := tc.interval.ExcludesZero()
			assert.Equal(t, tc.excludes, excludes)
			assert.Equal(t, tc.sign, sign)
		})
	}
}

func TestIntervalContainsAndWidth(t *testing.T) {
	iv := Interval{Lower: 1, Upper: 3}
	assert.True(t, iv.Contains(2))
	assert.True(t, iv.Contains(1))
	assert.True(t, iv.Contains(3))
	assert.False(t, iv.Contains(0.5))
	assert.Equal(t, 2.0, iv.Width())
}

func TestIntervalOverlaps(t *testing.T) {
	a := Interval{Lower: 0, Upper: 2}
	assert.True(t, a.Overlaps(Interval{Lower: 1, Upper: 3}))
	assert.True(t, a.Overlaps(Interval{Lower: 2, Upper: 4}))
	assert.False(t, a.Overlaps(Interval{Lower: 2.5, Upper: 4}))
}

func TestErrorMessages(t *testing.T) {
	var err error = &InsufficientDataError{Op: "fit", Got: 2, Need: 3}
	assert.Contains(t, err.Error(), "got 2")
	assert.Contains(t, err.Error(), "need at least 3")

	err = &SingularMatrixError{Op: "solve", Reason: "predictor has zero variance"}
	assert.Contains(t, err.Error(), "singular")
	assert.Contains(t, err.Error(), "zero variance")

	err = &InvalidParameterError{Param: "confidenceLevel", Value: 1.5, Reason: "must be in (0, 1)"}
	assert.Contains(t, err.Error(), "confidenceLevel")

	err = &DegenerateBootstrapError{Skipped: 80, Iterations: 100, MaxFraction: 0.5}
	assert.Contains(t, err.Error(), "80 of 100")

	// Typed errors survive wrapping.
	wrapped := errors.Join(errors.New("context"), err)
	var degenerate *DegenerateBootstrapError
	assert.True(t, errors.As(wrapped, &degenerate))
}
