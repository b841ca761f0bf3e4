package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/seisgrad/config"
	"github.com/katalvlaran/seisgrad/internal/ctxlog"
	"github.com/katalvlaran/seisgrad/sensitivity"
)

// NewSourceCommand creates the source command.
func NewSourceCommand(rootOpts *RootOptions) *cobra.Command {
	var key string

	cmd := &cobra.Command{
		Use:   "source",
		Short: "Print the linearized source for the configured perturbation",
		Long: `Print the linearized (Born) source for the configured model
perturbation. The formula follows imaging.isic unless --formula names
corr or isic.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(rootOpts)
			if err != nil {
				return err
			}
			res, err := sourceEquations(cfg, key)
			if err != nil {
				return err
			}
			ctxlog.FromContext(cmd.Context()).Debug("source built", "formula", res.Key)

			return newFormatter(rootOpts, cmd.OutOrStdout()).Success(res)
		},
	}
	cmd.Flags().StringVar(&key, "formula", "", "source formula key (corr|isic)")

	return cmd
}

func sourceEquations(cfg config.Config, key string) (EquationResult, error) {
	s := cfg.SourceFormula()
	if key != "" {
		var err error
		if s, err = sensitivity.ParseSourceFormula(key); err != nil {
			return EquationResult{}, err
		}
	}

	ws, err := newWorkspace(cfg)
	if err != nil {
		return EquationResult{}, err
	}
	src, err := s.Source(ws.mod, sensitivity.TimeDomain{Field: ws.u})
	if err != nil {
		return EquationResult{}, err
	}

	res := EquationResult{Key: s.String()}
	switch v := src.(type) {
	case sensitivity.SourceExpr:
		res.Equations = []string{v.Expr.String()}
	case sensitivity.SourcePair:
		res.Equations = []string{v.Real.String(), v.Imag.String()}
	}

	return res, nil
}
