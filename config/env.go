// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "STRMEAN_"

// EnvLookup returns a lookup over the process environment backed by the
// variables of the .env file at path. A missing file is not an error.
// Process variables win over the file; the process environment is not
// modified.
func EnvLookup(path string) (func(string) (string, bool), error) {
	var vars map[string]string
	if path != "" {
		m, err := godotenv.Read(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: %s: %w", path, err)
		}
		vars = m
	}

	return func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := vars[key]
		return v, ok
	}, nil
}

// FromEnv overlays the STRMEAN_* variables visible through lookup onto cfg:
//
//	PRECISION MAX_EPOCHS MAX_OPS COMPARATOR AGGREGATOR PRUNE_NON_POSITIVE
//	TRACE_REJECTED LOG_LEVEL LOG_FORMAT COST_MODEL COST_INSERTION
//	COST_DELETION COST_SUBSTITUTION
//
// Empty values are ignored.
func FromEnv(cfg *Config, lookup func(string) (string, bool)) error {
	get := func(name string) (string, bool) {
		v, ok := lookup(EnvPrefix + name)
		return v, ok && v != ""
	}

	var errs []error
	setInt := func(name string, dst *int) {
		if v, ok := get(name); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s=%q: %w", EnvPrefix, name, v, ErrBadEnv))
				return
			}
			*dst = n
		}
	}
	setFloat := func(name string, dst *float64) {
		if v, ok := get(name); ok {
			x, err := strconv.ParseFloat(v, 64)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s=%q: %w", EnvPrefix, name, v, ErrBadEnv))
				return
			}
			*dst = x
		}
	}
	setBool := func(name string, dst *bool) {
		if v, ok := get(name); ok {
			b, err := strconv.ParseBool(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s=%q: %w", EnvPrefix, name, v, ErrBadEnv))
				return
			}
			*dst = b
		}
	}
	setString := func(name string, dst *string) {
		if v, ok := get(name); ok {
			*dst = v
		}
	}

	setInt("PRECISION", &cfg.Precision)
	setInt("MAX_EPOCHS", &cfg.MaxEpochs)
	setInt("MAX_OPS", &cfg.MaxOps)
	setString("COMPARATOR", &cfg.Comparator)
	setString("AGGREGATOR", &cfg.Aggregator)
	setBool("PRUNE_NON_POSITIVE", &cfg.PruneNonPositive)
	setBool("TRACE_REJECTED", &cfg.TraceRejected)
	setString("LOG_LEVEL", &cfg.LogLevel)
	setString("LOG_FORMAT", &cfg.LogFormat)
	setString("COST_MODEL", &cfg.Cost.Model)
	setFloat("COST_INSERTION", &cfg.Cost.Insertion)
	setFloat("COST_DELETION", &cfg.Cost.Deletion)
	setFloat("COST_SUBSTITUTION", &cfg.Cost.Substitution)

	return errors.Join(errs...)
}
