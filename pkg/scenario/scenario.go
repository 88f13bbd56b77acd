// Package scenario holds the optional YAML configuration of the demo and
// benchmark commands.
package scenario

import (
	"os"
	"strconv"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Subjects the demo knows about.
const (
	CounterSubject = "counter"
	NameSubject    = "name"
)

// Step operations.
const (
	OpSet       = "set"
	OpIncrement = "increment"
)

var ErrInvalid = errors.New("scenario: invalid configuration")

// Config is the whole file.
type Config struct {
	Benchmark Benchmark `yaml:"benchmark"`
	Demo      Demo      `yaml:"demo"`
}

// Benchmark sizes. Every width is run against every depth.
type Benchmark struct {
	// observers attached to the source subject
	Widths []int `yaml:"widths"`
	// subjects chained behind the source, each set from the previous one's observer
	Depths     []int `yaml:"depths"`
	Iterations int   `yaml:"iterations"`
}

// Demo is the initial state and the script of the counter/name walkthrough.
type Demo struct {
	Counter int    `yaml:"counter"`
	Name    string `yaml:"name"`
	Steps   []Step `yaml:"steps"`
}

// Step changes one subject.
type Step struct {
	Subject string `yaml:"subject"`
	Op      string `yaml:"op"`
	Value   string `yaml:"value,omitempty"`
}

// Default returns the built in configuration.
func Default() *Config {
	return &Config{
		Benchmark: Benchmark{
			Widths:     []int{1, 10, 100, 1_000},
			Depths:     []int{0, 1, 10, 100},
			Iterations: 100,
		},
		Demo: Demo{
			Counter: 0,
			Name:    "Bob",
			Steps: []Step{
				{Subject: CounterSubject, Op: OpIncrement},
				{Subject: NameSubject, Op: OpSet, Value: "Alice"},
				{Subject: CounterSubject, Op: OpIncrement},
				{Subject: CounterSubject, Op: OpIncrement},
				{Subject: NameSubject, Op: OpSet, Value: "Jimbo"},
				{Subject: CounterSubject, Op: OpSet, Value: "0"},
			},
		},
	}
}

// LoadOptional reads path over the defaults. An empty path or a missing file
// yields the defaults.
func LoadOptional(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "in %s", path)
	}
	return cfg, nil
}

// Validate checks sizes and steps.
func (c *Config) Validate() error {
	b := c.Benchmark
	if len(b.Widths) == 0 || len(b.Depths) == 0 {
		return errors.Wrap(ErrInvalid, "benchmark needs at least one width and one depth")
	}
	for _, w := range b.Widths {
		if w <= 0 {
			return errors.Wrapf(ErrInvalid, "benchmark width %d", w)
		}
	}
	for _, d := range b.Depths {
		if d < 0 {
			return errors.Wrapf(ErrInvalid, "benchmark depth %d", d)
		}
	}
	if b.Iterations <= 0 {
		return errors.Wrapf(ErrInvalid, "benchmark iterations %d", b.Iterations)
	}

	for i, s := range c.Demo.Steps {
		if err := s.validate(); err != nil {
			return errors.Wrapf(err, "demo step %d", i)
		}
	}
	return nil
}

func (s Step) validate() error {
	switch s.Subject {
	case CounterSubject:
		switch s.Op {
		case OpIncrement:
			return nil
		case OpSet:
			if _, err := strconv.Atoi(s.Value); err != nil {
				return errors.Wrapf(ErrInvalid, "counter value %q", s.Value)
			}
			return nil
		}
	case NameSubject:
		if s.Op == OpSet {
			return nil
		}
	default:
		return errors.Wrapf(ErrInvalid, "unknown subject %q", s.Subject)
	}
	return errors.Wrapf(ErrInvalid, "op %q on %s", s.Op, s.Subject)
}
