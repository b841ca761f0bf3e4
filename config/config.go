package config

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/seisgrad/field"
	"github.com/katalvlaran/seisgrad/model"
	"github.com/katalvlaran/seisgrad/sensitivity"
)

// Config is the full run description.
type Config struct {
	// Grid describes the discretisation.
	Grid GridConfig `json:"grid" yaml:"grid"`

	// Model holds constant physical parameters.
	Model ModelConfig `json:"model" yaml:"model"`

	// Imaging selects the imaging condition.
	Imaging ImagingConfig `json:"imaging" yaml:"imaging"`
}

// GridConfig describes a 1-3D grid and its time axis.
type GridConfig struct {
	Shape   []int     `json:"shape" yaml:"shape"`
	Spacing []float64 `json:"spacing" yaml:"spacing"`
	DT      float64   `json:"dt" yaml:"dt"`
	NT      int       `json:"nt" yaml:"nt"`
}

// ModelConfig holds constant model parameters.
type ModelConfig struct {
	SpaceOrder   int     `json:"space_order" yaml:"space_order"`
	Velocity     float64 `json:"velocity" yaml:"velocity"`
	Density      float64 `json:"density" yaml:"density"`
	Perturbation float64 `json:"perturbation" yaml:"perturbation"`
}

// ImagingConfig selects the imaging condition. A non-empty frequency list
// selects the DFT family.
type ImagingConfig struct {
	ISIC           bool      `json:"isic" yaml:"isic"`
	Frequencies    []float64 `json:"frequencies" yaml:"frequencies"`
	DFTSubsampling int       `json:"dft_subsampling" yaml:"dft_subsampling"`
}

// Defaults returns the zero-config run: a 2-D 51x51 grid at 10 m, 200
// steps of 1 ms, water velocity, unit density, correlation imaging.
func Defaults() Config {
	return Config{
		Grid: GridConfig{
			Shape:   []int{51, 51},
			Spacing: []float64{10, 10},
			DT:      0.001,
			NT:      200,
		},
		Model: ModelConfig{
			SpaceOrder: model.DefaultSpaceOrder,
			Velocity:   1.5,
			Density:    1,
		},
		Imaging: ImagingConfig{
			ISIC:           sensitivity.DefaultISIC,
			DFTSubsampling: sensitivity.DefaultDFTSubsampling,
		},
	}
}

// Load reads and validates the YAML file at path.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	return Read(f)
}

// Parse decodes and validates YAML data.
func Parse(data []byte) (Config, error) {
	return Read(bytes.NewReader(data))
}

// Read decodes YAML over Defaults and validates the result. Unknown keys
// are rejected. An empty document yields the defaults.
func Read(r io.Reader) (Config, error) {
	cfg := Defaults()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Marshal renders cfg as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Validate checks every field and reports the first failure wrapped in
// ErrInvalidConfig.
func (c Config) Validate() error {
	g := c.Grid
	if len(g.Shape) < 1 || len(g.Shape) > 3 {
		return invalidf("grid.shape: rank %d not in 1..3", len(g.Shape))
	}
	if len(g.Spacing) != len(g.Shape) {
		return invalidf("grid.spacing: %d values for rank %d", len(g.Spacing), len(g.Shape))
	}
	for i, n := range g.Shape {
		if n < 1 {
			return invalidf("grid.shape[%d]=%d", i, n)
		}
		if !positive(g.Spacing[i]) {
			return invalidf("grid.spacing[%d]=%g", i, g.Spacing[i])
		}
	}
	if !positive(g.DT) {
		return invalidf("grid.dt=%g", g.DT)
	}
	if g.NT < 1 {
		return invalidf("grid.nt=%d", g.NT)
	}

	m := c.Model
	if m.SpaceOrder < 2 || m.SpaceOrder%2 != 0 {
		return invalidf("model.space_order=%d must be even and >= 2", m.SpaceOrder)
	}
	if !positive(m.Velocity) {
		return invalidf("model.velocity=%g", m.Velocity)
	}
	if !positive(m.Density) {
		return invalidf("model.density=%g", m.Density)
	}
	if !finite(m.Perturbation) {
		return invalidf("model.perturbation=%g", m.Perturbation)
	}

	im := c.Imaging
	for i, f := range im.Frequencies {
		if !finite(f) {
			return invalidf("imaging.frequencies[%d]=%g", i, f)
		}
	}
	if im.DFTSubsampling < 1 {
		return invalidf("imaging.dft_subsampling=%d", im.DFTSubsampling)
	}

	return nil
}

// BuildGrid returns the configured grid.
func (c Config) BuildGrid() (*field.Grid, error) {
	return field.NewGrid(c.Grid.Shape, c.Grid.Spacing, field.WithTime(c.Grid.DT, c.Grid.NT))
}

// BuildModel returns the configured constant model on g.
func (c Config) BuildModel(g *field.Grid) (*model.Model, error) {
	return model.New(g,
		model.WithSpaceOrder(c.Model.SpaceOrder),
		model.WithVelocity(c.Model.Velocity),
		model.WithDensity(c.Model.Density),
		model.WithPerturbation(c.Model.Perturbation),
	)
}

// Condition returns the imaging condition the configuration selects.
func (c Config) Condition() sensitivity.Condition {
	return sensitivity.SelectImagingCondition(len(c.Imaging.Frequencies) > 0, c.Imaging.ISIC)
}

// SourceFormula returns the linearized source the configuration selects.
func (c Config) SourceFormula() sensitivity.SourceFormula {
	return sensitivity.SelectSourceFormula(c.Imaging.ISIC)
}

// Options returns the sensitivity options for the configured condition.
func (c Config) Options() []sensitivity.Option {
	opts := []sensitivity.Option{
		sensitivity.WithISIC(c.Imaging.ISIC),
		sensitivity.WithDFTSubsampling(c.Imaging.DFTSubsampling),
	}
	if len(c.Imaging.Frequencies) > 0 {
		opts = append(opts, sensitivity.WithFrequencies(c.Imaging.Frequencies))
	}

	return opts
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}

func positive(v float64) bool { return v > 0 && !math.IsInf(v, 0) }

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
