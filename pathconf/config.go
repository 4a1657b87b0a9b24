// Package pathconf reads path animations from YAML configuration files.
//
// A configuration lists named paths:
//
//	paths:
//	  - name: square
//	    kind: catmullrom      # or "cardinal", the default
//	    relative: false       # true for paths relative to the start position
//	    duration: 1.5
//	    tension: 0.5          # ignored for catmullrom
//	    rotate: 90            # degrees counterclockwise around the first point
//	    points: [[0,0], [0,50], [50,50], [50,0]]
//
// Each path may be turned into a control point sequence or directly into an
// action.
package pathconf

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/npillmayer/pathanim"
	"github.com/npillmayer/pathanim/action"
	"github.com/npillmayer/pathanim/cardinal"
	"github.com/npillmayer/pathanim/points"
	"github.com/npillmayer/schuko/tracing"
	"gopkg.in/yaml.v3"
)

// tracer writes to trace with key 'config'
func tracer() tracing.Trace {
	return tracing.Select("config")
}

// Kinds of paths.
const (
	KindCardinal   = "cardinal"
	KindCatmullRom = "catmullrom"
)

var (
	// ErrInvalidConfig indicates a malformed path configuration.
	ErrInvalidConfig = errors.New("invalid path configuration")
	// ErrUnknownPath indicates a lookup for a path name not configured.
	ErrUnknownPath = errors.New("unknown path")
)

// Config is a set of named path definitions.
type Config struct {
	Paths []PathDef `yaml:"paths"`
}

// PathDef defines a single path animation.
type PathDef struct {
	Name     string       `yaml:"name"`
	Kind     string       `yaml:"kind"`
	Relative bool         `yaml:"relative"`
	Duration float64      `yaml:"duration"`
	Tension  *float64     `yaml:"tension"`
	Rotate   float64      `yaml:"rotate"`
	Points   [][2]float64 `yaml:"points"`
}

// LoadFile reads a configuration from a YAML file.
func LoadFile(filePath string) (*Config, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open path config: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Load reads a configuration from YAML input and validates it.
func Load(r io.Reader) (*Config, error) {
	var conf Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&conf); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: failed to parse YAML: %w", ErrInvalidConfig, err)
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	tracer().Infof("loaded %d path definitions", len(conf.Paths))
	return &conf, nil
}

// Validate checks all path definitions.
func (conf *Config) Validate() error {
	seen := make(map[string]bool, len(conf.Paths))
	for i := range conf.Paths {
		def := &conf.Paths[i]
		if def.Name == "" {
			return fmt.Errorf("%w: path #%d has no name", ErrInvalidConfig, i)
		}
		if seen[def.Name] {
			return fmt.Errorf("%w: duplicate path %q", ErrInvalidConfig, def.Name)
		}
		seen[def.Name] = true
		if err := def.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Path returns the definition of the path with the given name.
func (conf *Config) Path(name string) (*PathDef, error) {
	for i := range conf.Paths {
		if conf.Paths[i].Name == name {
			return &conf.Paths[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownPath, name)
}

// Validate checks a single path definition.
func (def *PathDef) Validate() error {
	switch def.Kind {
	case "", KindCardinal, KindCatmullRom:
	default:
		return fmt.Errorf("%w: path %q has unknown kind %q", ErrInvalidConfig, def.Name, def.Kind)
	}
	if !isFinite(def.Duration) || def.Duration < 0 {
		return fmt.Errorf("%w: path %q has invalid duration %g", ErrInvalidConfig, def.Name, def.Duration)
	}
	if def.Tension != nil && !isFinite(*def.Tension) {
		return fmt.Errorf("%w: path %q has invalid tension %g", ErrInvalidConfig, def.Name, *def.Tension)
	}
	if !isFinite(def.Rotate) {
		return fmt.Errorf("%w: path %q has invalid rotation %g", ErrInvalidConfig, def.Name, def.Rotate)
	}
	if err := cardinal.ValidateFinite(def.Sequence()); err != nil {
		return fmt.Errorf("%w: path %q: %w", ErrInvalidConfig, def.Name, err)
	}
	return nil
}

// TensionValue returns the tension of the path. Catmull-Rom paths and
// cardinal paths without explicit tension use 0.5.
func (def *PathDef) TensionValue() float64 {
	if def.Kind == KindCatmullRom || def.Tension == nil {
		return cardinal.CatmullRomTension
	}
	return *def.Tension
}

// Sequence returns a new control point sequence for the path, rotated
// around its first point if the path is configured with a rotation.
func (def *PathDef) Sequence() *points.Sequence {
	seq := points.New(len(def.Points))
	for _, xy := range def.Points {
		seq.Append(pathanim.P(xy[0], xy[1]))
	}
	if def.Rotate == 0 || seq.N() == 0 {
		return seq
	}
	center, theta := seq.Z(0), def.Rotate*pathanim.Deg2Rad
	for i := 1; i < seq.N(); i++ {
		_ = seq.Replace(seq.Z(i).Rotatedaround(center, theta), i)
	}
	return seq
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// Action creates a spline action for the path.
func (def *PathDef) Action() (*action.CardinalSpline, error) {
	if err := def.Validate(); err != nil {
		return nil, err
	}
	seq := def.Sequence()
	if def.Relative {
		return action.NewCardinalSplineBy(def.Duration, seq, def.TensionValue())
	}
	return action.NewCardinalSplineTo(def.Duration, seq, def.TensionValue())
}
