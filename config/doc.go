// Package config reads analysis parameters from YAML files.
//
// The engine packages deliberately take explicit arguments rather than
// reading ambient configuration; this package is the thin collaborator the
// gotrend command uses to collect those arguments from a file:
//
//	data:
//	  input_file: data/weather.csv
//	  year_column: year
//	  value_column: temp_celsius
//	analysis:
//	  confidence_level: 0.95
//	  significance_level: 0.05
//	  polynomial_degree: 2
//	  prediction_year: 2030
//	  bootstrap:
//	    iterations: 10000
//	    random_seed: 42
//	    workers: 4
//	    max_skip_fraction: 0.5
//	output:
//	  report_file: outputs/report.txt
//
// Missing keys fall back to Default values; out-of-range values fail
// loading with an InvalidParameterError. Omitting random_seed requests a
// clock-seeded, non-reproducible bootstrap.
package config
