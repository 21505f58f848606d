package viewproj

import (
	"errors"
	"flag"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/katalvlaran/viewproj/internal/platform/config"
	"github.com/katalvlaran/viewproj/viewvolume"
)

// Modes understood by Run.
const (
	ModeProject   = "project"
	ModeUnproject = "unproject"
	ModeMatrix    = "matrix"
)

// Volume kinds understood by Config.Volume.
const (
	KindPerspective  = "perspective"
	KindOrthographic = "orthographic"
)

// Vec3 is a comma-separated "x,y,z" triple usable both as an env value and
// as a flag value.
type Vec3 [3]float32

// Set parses "x,y,z".
func (v *Vec3) Set(s string) error {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return fmt.Errorf("vec3 %q: want x,y,z", s)
	}
	var out Vec3
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return fmt.Errorf("vec3 %q: %w", s, err)
		}
		out[i] = float32(f)
	}
	*v = out
	return nil
}

// UnmarshalText lets caarlos0/env decode Vec3 fields.
func (v *Vec3) UnmarshalText(b []byte) error { return v.Set(string(b)) }

// String formats the triple the way Set parses it.
func (v Vec3) String() string {
	return fmt.Sprintf("%g,%g,%g", v[0], v[1], v[2])
}

// Config holds everything the viewproj command needs. Environment values are
// read first; flags override them.
type Config struct {
	Mode     string  `env:"VIEWPROJ_MODE" envDefault:"project"`
	Kind     string  `env:"VIEWPROJ_KIND" envDefault:"perspective"`
	Eye      Vec3    `env:"VIEWPROJ_EYE" envDefault:"0,0,10"`
	Target   Vec3    `env:"VIEWPROJ_TARGET" envDefault:"0,0,0"`
	Up       Vec3    `env:"VIEWPROJ_UP" envDefault:"0,1,0"`
	FovY     float64 `env:"VIEWPROJ_FOVY" envDefault:"45"` // degrees
	Aspect   float64 `env:"VIEWPROJ_ASPECT" envDefault:"1"`
	Near     float64 `env:"VIEWPROJ_NEAR" envDefault:"1"`
	Far      float64 `env:"VIEWPROJ_FAR" envDefault:"100"`
	Height   float64 `env:"VIEWPROJ_HEIGHT" envDefault:"2"`
	AuxScale float64 `env:"VIEWPROJ_AUX_SCALE" envDefault:"1"`
	Verbose  bool    `env:"VIEWPROJ_VERBOSE"`
}

// ParseConfig loads the process environment, then parses flags from args on
// top.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	return parseConfig(fs, args, nil)
}

// parseConfig is ParseConfig over environ; nil means the process environment.
func parseConfig(fs *flag.FlagSet, args []string, environ map[string]string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg, environ); err != nil {
		return Config{}, err
	}
	return parseFlags(cfg, fs, args)
}

func parseFlags(cfg Config, fs *flag.FlagSet, args []string) (Config, error) {
	fs.StringVar(&cfg.Mode, "mode", cfg.Mode, "project | unproject | matrix")
	fs.StringVar(&cfg.Kind, "kind", cfg.Kind, "perspective | orthographic")
	fs.Var(&cfg.Eye, "eye", "camera position x,y,z")
	fs.Var(&cfg.Target, "target", "look-at point x,y,z")
	fs.Var(&cfg.Up, "up", "camera up direction x,y,z")
	fs.Float64Var(&cfg.FovY, "fovy", cfg.FovY, "vertical field of view in degrees (perspective)")
	fs.Float64Var(&cfg.Aspect, "aspect", cfg.Aspect, "width / height")
	fs.Float64Var(&cfg.Near, "near", cfg.Near, "near clipping distance")
	fs.Float64Var(&cfg.Far, "far", cfg.Far, "far clipping distance")
	fs.Float64Var(&cfg.Height, "height", cfg.Height, "box height (orthographic)")
	fs.Float64Var(&cfg.AuxScale, "aux-scale", cfg.AuxScale, "uniform scale applied to points before projection")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "log diagnostics to stderr")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the volume options would panic on. Camera values
// are checked after narrowing to float32, the precision Volume builds with.
func (c Config) Validate() error {
	switch c.Mode {
	case ModeProject, ModeUnproject, ModeMatrix:
	default:
		return fmt.Errorf("unknown mode %q", c.Mode)
	}
	switch c.Kind {
	case KindPerspective, KindOrthographic:
	default:
		return fmt.Errorf("unknown kind %q", c.Kind)
	}

	var (
		near, far = float32(c.Near), float32(c.Far)
		aspect    = float32(c.Aspect)
		height    = float32(c.Height)
		fovy      = mgl32.DegToRad(float32(c.FovY))
	)
	for _, f := range []float32{
		near, far, aspect, height, fovy,
		c.Eye[0], c.Eye[1], c.Eye[2],
		c.Target[0], c.Target[1], c.Target[2],
		c.Up[0], c.Up[1], c.Up[2],
	} {
		if !finite32(f) {
			return errors.New("camera parameters must be finite in float32")
		}
	}
	if math.IsNaN(c.AuxScale) || math.IsInf(c.AuxScale, 0) {
		return errors.New("aux-scale must be finite")
	}

	if fovy <= 0 || fovy >= math.Pi {
		return errors.New("fovy must be in (0, 180) degrees")
	}
	if aspect <= 0 {
		return errors.New("aspect must be greater than zero")
	}
	if height <= 0 {
		return errors.New("height must be greater than zero")
	}
	if c.AuxScale == 0 {
		return errors.New("aux-scale must be non-zero")
	}
	if mgl32.Vec3(c.Up).LenSqr() == 0 {
		return errors.New("up must be non-zero")
	}
	return nil
}

func finite32(f float32) bool {
	return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0)
}

// Volume builds the view volume described by c.
func (c Config) Volume() (*viewvolume.Volume, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	opts := []viewvolume.Option{
		viewvolume.WithEye(mgl32.Vec3(c.Eye)),
		viewvolume.WithTarget(mgl32.Vec3(c.Target)),
		viewvolume.WithUp(mgl32.Vec3(c.Up)),
		viewvolume.WithAspect(float32(c.Aspect)),
		viewvolume.WithNearFar(float32(c.Near), float32(c.Far)),
	}
	if c.Kind == KindOrthographic {
		return viewvolume.NewOrthographic(append(opts, viewvolume.WithHeight(float32(c.Height)))...)
	}
	return viewvolume.NewPerspective(append(opts, viewvolume.WithFovY(mgl32.DegToRad(float32(c.FovY))))...)
}
