// Package timeseries provides paired observation series and utilities.
//
// This package includes the Series type for representing ordered (x, y)
// observation pairs, along with CSV loading and basic summary statistics.
// A Series is the common input to the regression and bootstrap packages.
//
// # Creating a Series
//
// Create a series from paired slices:
//
//	years := []float64{2019, 2020, 2021, 2022, 2023}
//	temps := []float64{30.1, 30.5, 31.0, 31.2, 31.7}
//	series, err := timeseries.New(years, temps)
//
// Or from consecutive years:
//
//	series, err := timeseries.FromYears(2019, temps)
//
// Construction validates the engine invariants: equal lengths, at least two
// observations, and no NaN or infinite values. Filtering of missing values
// is the data-loading side's responsibility; the CSV loader below performs
// it, and New rejects anything that slips through.
//
// # Loading from CSV
//
//	series, err := timeseries.LoadCSV("rainfall.csv", nil)
//
//	opts := timeseries.DefaultCSVOptions()
//	opts.YColumn = "temp_celsius"
//	series, err := timeseries.LoadCSV("weather.csv", opts)
//
// Rows with missing or unparseable fields (empty, NA, NaN, null) are
// skipped.
//
// # Basic Statistics
//
//	n := series.Len()
//	my := series.MeanY()
//	sd := series.StdY()
//
// # Resampling
//
// Resample builds a new series from row indices, possibly with repeats; it
// is the primitive the bootstrap engine draws resamples with:
//
//	resample := series.Resample([]int{0, 0, 3, 1, 4})
package timeseries
