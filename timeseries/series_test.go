package timeseries

import (
	"errors"
	"math"
	"testing"

	"github.com/sartorproj/gotrend"
)

func TestNew(t *testing.T) {
	x := []float64{2019, 2020, 2021}
	y := []float64{30.1, 30.5, 31.0}

	series, err := New(x, y)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if series.Len() != 3 {
		t.Errorf("expected length 3, got %d", series.Len())
	}

	// Input slices must not be aliased
	x[0] = -1
	if series.X[0] != 2019 {
		t.Error("series aliases caller-owned x slice")
	}
}

func TestNewLengthMismatch(t *testing.T) {
	_, err := New([]float64{1, 2, 3}, []float64{1, 2})
	var invalid *gotrend.InvalidParameterError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidParameterError, got %v", err)
	}
}

func TestNewTooShort(t *testing.T) {
	_, err := New([]float64{1}, []float64{2})
	var insufficient *gotrend.InsufficientDataError
	if !errors.As(err, &insufficient) {
		t.Fatalf("expected InsufficientDataError, got %v", err)
	}
	if insufficient.Got != 1 || insufficient.Need != 2 {
		t.Errorf("unexpected counts in error: %+v", insufficient)
	}
}

func TestNewRejectsNonFinite(t *testing.T) {
	cases := [][2][]float64{
		{{1, 2, math.NaN()}, {1, 2, 3}},
		{{1, 2, 3}, {1, math.Inf(1), 3}},
		{{1, math.Inf(-1), 3}, {1, 2, 3}},
	}
	for i, c := range cases {
		if _, err := New(c[0], c[1]); err == nil {
			t.Errorf("case %d: expected error for non-finite input", i)
		}
	}
}

func TestFromYears(t *testing.T) {
	series, err := FromYears(2019, []float64{30.1, 30.5, 31.0})
	if err != nil {
		t.Fatalf("FromYears returned error: %v", err)
	}
	want := []float64{2019, 2020, 2021}
	for i, x := range series.X {
		if x != want[i] {
			t.Errorf("X[%d] = %f, want %f", i, x, want[i])
		}
	}
}

func TestMeans(t *testing.T) {
	series, _ := New([]float64{1, 2, 3}, []float64{2, 4, 6})
	if series.MeanX() != 2 {
		t.Errorf("MeanX = %f, want 2", series.MeanX())
	}
	if series.MeanY() != 4 {
		t.Errorf("MeanY = %f, want 4", series.MeanY())
	}
}

func TestVarianceAndStd(t *testing.T) {
	series, _ := New([]float64{1, 2, 3, 4, 5, 6}, []float64{1, 1, 1, 2, 2, 2})
	if math.Abs(series.VarianceY()-0.3) > 1e-12 {
		t.Errorf("VarianceY = %f, want 0.3", series.VarianceY())
	}
	if math.Abs(series.StdY()-math.Sqrt(0.3)) > 1e-12 {
		t.Errorf("StdY = %f, want %f", series.StdY(), math.Sqrt(0.3))
	}
}

func TestMinMaxX(t *testing.T) {
	series, _ := New([]float64{2019, 2020, 2023}, []float64{1, 2, 3})
	if series.MinX() != 2019 {
		t.Errorf("MinX = %f, want 2019", series.MinX())
	}
	if series.MaxX() != 2023 {
		t.Errorf("MaxX = %f, want 2023", series.MaxX())
	}
}

func TestCopy(t *testing.T) {
	series, _ := New([]float64{1, 2}, []float64{3, 4})
	dup := series.Copy()
	dup.Y[0] = 99
	if series.Y[0] != 3 {
		t.Error("Copy shares backing array with original")
	}
}

func TestResample(t *testing.T) {
	series, _ := New([]float64{10, 20, 30}, []float64{1, 2, 3})
	resample := series.Resample([]int{2, 2, 0})

	wantX := []float64{30, 30, 10}
	wantY := []float64{3, 3, 1}
	for i := range wantX {
		if resample.X[i] != wantX[i] || resample.Y[i] != wantY[i] {
			t.Errorf("pair %d = (%f, %f), want (%f, %f)",
				i, resample.X[i], resample.Y[i], wantX[i], wantY[i])
		}
	}
}

func TestValidate(t *testing.T) {
	series, _ := New([]float64{1, 2}, []float64{3, 4})
	if err := series.Validate(); err != nil {
		t.Errorf("valid series failed Validate: %v", err)
	}

	series.Y[1] = math.NaN()
	if err := series.Validate(); err == nil {
		t.Error("expected Validate to reject NaN")
	}

	series.Y = series.Y[:1]
	if err := series.Validate(); err == nil {
		t.Error("expected Validate to reject mismatched lengths")
	}
}
