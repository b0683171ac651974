// Package config loads the run configuration of strmean.
//
// Sources, later ones winning:
//
//  1. Default().
//  2. A YAML file (unknown keys are rejected).
//  3. STRMEAN_* variables, from the process environment or a .env file;
//     the process environment wins over the file.
//
// The result is validated with go-playground/validator struct tags, including
// checks that strategy names are registered. Resolve turns a valid Config into
// median.Options.
//
// Example file:
//
//	precision: 4
//	max_epochs: 0
//	max_ops: 0
//	comparator: quality
//	aggregator: balanced
//	prune_non_positive: true
//	log_level: info
//	cost:
//	  model: table
//	  insertion: 1
//	  deletion: 1
//	  substitution: 1
//	  substitutions: {ab: 0.5, ba: 0.5}
package config
