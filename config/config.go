// SPDX-License-Identifier: MIT
// Package: planegraph/config

// Package config loads generator settings from YAML and validates them with
// struct tags. Keys absent from the file keep their Default values.
//
//	radius: 10
//	side: 600
//	seed: 0              # 0: the caller picks a seed
//	placement_attempts: 64
//	edge_attempts: 10000
//	jitter: 0
//	storage_dir: graphs
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/planegraph/builder"
)

// ErrInvalid indicates a configuration value out of range.
var ErrInvalid = errors.New("config: invalid value")

// DefaultStorageDir is where artifacts go when nothing else is configured.
const DefaultStorageDir = "graphs"

var validate = newValidator()

// Config holds every tunable of a generation run.
type Config struct {
	Radius            float64 `yaml:"radius" validate:"gt=0"`
	Side              float64 `yaml:"side" validate:"gt=0,gtfield=Radius"`
	Seed              int64   `yaml:"seed"`
	PlacementAttempts int     `yaml:"placement_attempts" validate:"min=1"`
	EdgeAttempts      int     `yaml:"edge_attempts" validate:"min=1"`
	Jitter            float64 `yaml:"jitter" validate:"gte=0,lt=1"`
	StorageDir        string  `yaml:"storage_dir" validate:"required"`
}

// Default mirrors the builder defaults.
func Default() Config {
	return Config{
		Radius:            builder.DefaultRadius,
		Side:              builder.DefaultSide,
		PlacementAttempts: builder.DefaultPlacementAttempts,
		EdgeAttempts:      builder.DefaultEdgeAttempts,
		Jitter:            builder.DefaultJitter,
		StorageDir:        DefaultStorageDir,
	}
}

// Load reads path over Default and validates the result. Unknown keys are
// rejected.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode is Load for an already open stream.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the struct tags and reports the first offending key.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("config: %w", err)
	}
	e := verrs[0]
	switch e.Tag() {
	case "required":
		return fmt.Errorf("%s: field is required: %w", e.Field(), ErrInvalid)
	case "gtfield":
		return fmt.Errorf("%s: must exceed radius: %w", e.Field(), ErrInvalid)
	default:
		return fmt.Errorf("%s: %v fails %s=%s: %w", e.Field(), e.Value(), e.Tag(), e.Param(), ErrInvalid)
	}
}

// BuilderOptions converts c into builder options seeded with seed.
func (c Config) BuilderOptions(seed int64) []builder.BuilderOption {
	return []builder.BuilderOption{
		builder.WithSeed(seed),
		builder.WithRadius(c.Radius),
		builder.WithSide(c.Side),
		builder.WithPlacementAttempts(c.PlacementAttempts),
		builder.WithEdgeAttempts(c.EdgeAttempts),
		builder.WithJitter(c.Jitter),
	}
}

// newValidator reports fields by their yaml key.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return v
}
