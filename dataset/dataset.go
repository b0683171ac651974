// SPDX-License-Identifier: MIT

package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/joseias/StrMean/edit"
)

// Format names.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// FormatOf returns the format implied by the extension of path.
func FormatOf(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatText
	}
}

// Load reads the sample set stored at path.
func Load(path string) ([]edit.Example, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	defer f.Close()

	samples, err := Read(f, FormatOf(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return samples, nil
}

// Read parses a sample set in the given format.
//
// Errors:
//   - ErrUnknownFormat for a format other than FormatText or FormatYAML.
//   - ErrBadWeight (with the line number) for a malformed or negative weight.
//   - ErrEmptySet when the source holds no sample.
func Read(r io.Reader, format string) ([]edit.Example, error) {
	var (
		samples []edit.Example
		err     error
	)
	switch format {
	case FormatText:
		samples, err = readText(r)
	case FormatYAML:
		samples, err = readYAML(r)
	default:
		return nil, fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}
	if err != nil {
		return nil, err
	}
	if len(samples) == 0 {
		return nil, ErrEmptySet
	}

	return samples, nil
}

func readText(r io.Reader) ([]edit.Example, error) {
	var samples []edit.Example

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		seq, ws, hasWeight := strings.Cut(text, "\t")
		seq = strings.TrimPrefix(seq, `\`)
		w := edit.DefaultWeight
		if hasWeight {
			var err error
			if w, err = parseWeight(strings.TrimSpace(ws)); err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
		}
		ex, err := edit.NewExample([]rune(seq), w)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		samples = append(samples, ex)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("dataset: line %d: %w", line+1, err)
	}

	return samples, nil
}

// yamlSet is the document shape of the yaml format.
type yamlSet struct {
	Samples []yamlSample `yaml:"samples"`
}

type yamlSample struct {
	Sequence string   `yaml:"sequence"`
	Weight   *float64 `yaml:"weight"`
}

func readYAML(r io.Reader) ([]edit.Example, error) {
	var doc yamlSet
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("dataset: yaml: %w", err)
	}

	samples := make([]edit.Example, 0, len(doc.Samples))
	for i, s := range doc.Samples {
		w := edit.DefaultWeight
		if s.Weight != nil {
			w = *s.Weight
			if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
				return nil, fmt.Errorf("sample %d: %v: %w", i+1, w, ErrBadWeight)
			}
		}
		ex, err := edit.NewExample([]rune(s.Sequence), w)
		if err != nil {
			return nil, fmt.Errorf("sample %d: %w", i+1, err)
		}
		samples = append(samples, ex)
	}

	return samples, nil
}

func parseWeight(s string) (float64, error) {
	w, err := strconv.ParseFloat(s, 64)
	if err != nil || w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
		return 0, fmt.Errorf("%q: %w", s, ErrBadWeight)
	}

	return w, nil
}
