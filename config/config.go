// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/joseias/StrMean/edit"
	"github.com/joseias/StrMean/median"
	"github.com/joseias/StrMean/opstats"
)

// CostConfig selects and parameterizes the cost model.
//
// Per-symbol keys are single symbols; substitution keys are the two symbols
// of the pair, source first ("ab" is a → b).
type CostConfig struct {
	Model         string             `yaml:"model" validate:"required,costmodel"`
	Insertion     float64            `yaml:"insertion" validate:"gte=0"`
	Deletion      float64            `yaml:"deletion" validate:"gte=0"`
	Substitution  float64            `yaml:"substitution" validate:"gte=0"`
	Insertions    map[string]float64 `yaml:"insertions" validate:"dive,keys,len=1,endkeys,gte=0"`
	Deletions     map[string]float64 `yaml:"deletions" validate:"dive,keys,len=1,endkeys,gte=0"`
	Substitutions map[string]float64 `yaml:"substitutions" validate:"dive,keys,len=2,endkeys,gte=0"`
}

// Config is the full run configuration.
type Config struct {
	Precision        int        `yaml:"precision" validate:"gte=0,lte=15"`
	MaxEpochs        int        `yaml:"max_epochs" validate:"gte=0"`
	MaxOps           int        `yaml:"max_ops" validate:"gte=0"`
	Comparator       string     `yaml:"comparator" validate:"required,comparator"`
	Aggregator       string     `yaml:"aggregator" validate:"required,aggregator"`
	PruneNonPositive bool       `yaml:"prune_non_positive"`
	TraceRejected    bool       `yaml:"trace_rejected"`
	LogLevel         string     `yaml:"log_level" validate:"oneof=debug info warn error"`
	LogFormat        string     `yaml:"log_format" validate:"oneof=auto text json"`
	Cost             CostConfig `yaml:"cost"`
}

// Default returns the configuration of the reference algorithm.
func Default() Config {
	return Config{
		Precision:        median.DefaultPrecision,
		Comparator:       opstats.CmpQuality,
		Aggregator:       opstats.AggBalanced,
		PruneNonPositive: true,
		LogLevel:         "info",
		LogFormat:        "auto",
		Cost: CostConfig{
			Model:        edit.ModelUnit,
			Insertion:    1,
			Deletion:     1,
			Substitution: 1,
		},
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	mustRegister(v, "comparator", registered(opstats.Comparators.Names))
	mustRegister(v, "aggregator", registered(opstats.Aggregators.Names))
	mustRegister(v, "costmodel", registered(edit.CostModels.Names))

	return v
}

// mustRegister panics on a bad tag or nil func; both are programmer errors.
func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("config: register %q validation: %v", tag, err))
	}
}

// registered accepts a string field naming one of names().
func registered(names func() []string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return slices.Contains(names(), fl.Field().String())
	}
}

// Validate checks c against its struct tags.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return nil
}

// Load builds a Config from Default, the YAML file at path (skipped when
// path is empty) and the STRMEAN_* variables visible through lookup
// (nil means the process environment). The result is validated.
func Load(path string, lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: %w", err)
		}
		if err = decode(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", path, err)
		}
	}

	if lookup == nil {
		lookup = os.LookupEnv
	}
	if err := FromEnv(&cfg, lookup); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// decode overlays the YAML document in data onto cfg.
func decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

// SlogLevel maps LogLevel to a slog level; unknown values map to Info.
func (c Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
