package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/seisgrad/config"
	"github.com/katalvlaran/seisgrad/dft"
	"github.com/katalvlaran/seisgrad/field"
	"github.com/katalvlaran/seisgrad/internal/ctxlog"
	"github.com/katalvlaran/seisgrad/model"
	"github.com/katalvlaran/seisgrad/sensitivity"
)

// EquationResult is the rendered output of gradient and source.
type EquationResult struct {
	Key       string   `json:"key"`
	Equations []string `json:"equations"`
}

// WriteText prints the key and one equation per line.
func (r EquationResult) WriteText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "# %s\n", r.Key); err != nil {
		return err
	}
	for _, eq := range r.Equations {
		if _, err := fmt.Fprintln(w, eq); err != nil {
			return err
		}
	}

	return nil
}

// NewGradientCommand creates the gradient command.
func NewGradientCommand(rootOpts *RootOptions) *cobra.Command {
	var key string

	cmd := &cobra.Command{
		Use:   "gradient",
		Short: "Print the gradient update equation",
		Long: `Print the gradient update grad = contribution + grad for the configured
grid and model. The condition follows the configuration unless --condition
names one of corr, isic, corr_freq, isic_freq. For frequency-domain
conditions the DFT accumulation equations are printed first.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(rootOpts)
			if err != nil {
				return err
			}
			res, err := gradientEquations(cfg, key)
			if err != nil {
				return err
			}
			ctxlog.FromContext(cmd.Context()).Debug("gradient built", "condition", res.Key, "equations", len(res.Equations))

			return newFormatter(rootOpts, cmd.OutOrStdout()).Success(res)
		},
	}
	cmd.Flags().StringVar(&key, "condition", "", "imaging condition key (overrides the configuration)")

	return cmd
}

// workspace holds the fields shared by the gradient and source commands.
type workspace struct {
	grid *field.Grid
	mod  *model.Model
	u, v *field.Function
}

func newWorkspace(cfg config.Config) (*workspace, error) {
	g, err := cfg.BuildGrid()
	if err != nil {
		return nil, err
	}
	ws := &workspace{grid: g}
	if ws.mod, err = cfg.BuildModel(g); err != nil {
		return nil, err
	}
	so := field.WithSpaceOrder(cfg.Model.SpaceOrder)
	if ws.u, err = field.NewTimeFunction("u", g, so); err != nil {
		return nil, err
	}
	if ws.v, err = field.NewTimeFunction("v", g, so); err != nil {
		return nil, err
	}

	return ws, nil
}

func gradientEquations(cfg config.Config, key string) (EquationResult, error) {
	c := cfg.Condition()
	if key != "" {
		var err error
		if c, err = sensitivity.ParseCondition(key); err != nil {
			return EquationResult{}, err
		}
	}

	ws, err := newWorkspace(cfg)
	if err != nil {
		return EquationResult{}, err
	}
	grad, err := field.NewFunction("grad", ws.grid)
	if err != nil {
		return EquationResult{}, err
	}

	res := EquationResult{Key: c.String()}
	var u sensitivity.Wavefield = sensitivity.TimeDomain{Field: ws.u}
	freq := cfg.Imaging.Frequencies
	if c.IsFrequencyDomain() && len(freq) > 0 {
		ufr, ufi, err := dft.Accumulators(ws.grid, len(freq))
		if err != nil {
			return EquationResult{}, err
		}
		acc, err := dft.Update(ws.u, ufr, ufi, freq, cfg.Imaging.DFTSubsampling)
		if err != nil {
			return EquationResult{}, err
		}
		for _, eq := range acc {
			res.Equations = append(res.Equations, eq.String())
		}
		u = sensitivity.FrequencyDomain{Real: ufr, Imag: ufi}
	}

	eqs, err := c.GradientUpdate(grad, u, sensitivity.TimeDomain{Field: ws.v}, ws.mod, cfg.Options()...)
	if err != nil {
		return EquationResult{}, err
	}
	for _, eq := range eqs {
		res.Equations = append(res.Equations, eq.String())
	}

	return res, nil
}
