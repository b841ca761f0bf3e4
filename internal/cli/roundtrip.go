package cli

import (
	"context"
	"fmt"
	"io"
	"math"
	"math/cmplx"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/katalvlaran/seisgrad/dft"
	"github.com/katalvlaran/seisgrad/field"
	"github.com/katalvlaran/seisgrad/internal/ctxlog"
	"github.com/katalvlaran/seisgrad/model"
	"github.com/katalvlaran/seisgrad/operator"
	"github.com/katalvlaran/seisgrad/sensitivity"
	"github.com/katalvlaran/seisgrad/symbolic"
	"github.com/katalvlaran/seisgrad/wavelet"
)

// RoundTripResult compares the time-domain and DFT correlation gradients of
// a monochromatic wavefield.
type RoundTripResult struct {
	Steps         int     `json:"steps"`
	Periods       int     `json:"periods"`
	Time          float64 `json:"time_domain"`
	Frequency     float64 `json:"frequency_domain"`
	RelativeError float64 `json:"relative_error"`
	Expected      float64 `json:"expected_error"`
	SpectrumError float64 `json:"spectrum_error"`
}

// WriteText prints one key/value per line.
func (r RoundTripResult) WriteText(w io.Writer) error {
	_, err := fmt.Fprintf(w,
		"steps           %d\nperiods         %d\ncorr            %.12g\ncorr_freq       %.12g\nrelative error  %.3e\nexpected        %.3e\nspectrum error  %.3e\n",
		r.Steps, r.Periods, r.Time, r.Frequency, r.RelativeError, r.Expected, r.SpectrumError)

	return err
}

// NewRoundTripCommand creates the roundtrip command.
func NewRoundTripCommand(rootOpts *RootOptions) *cobra.Command {
	var nt, periods int

	cmd := &cobra.Command{
		Use:   "roundtrip",
		Short: "Compare corr with corr_freq on a monochromatic wavefield",
		Long: `Accumulate a sinusoid with the on-the-fly DFT over the full band of
frequencies k/(nt*dt), then apply corr and corr_freq with u = v and compare
the gradients. The relative difference is the time-stencil error,
about (2*pi*periods/nt)^2/12.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if nt < 4 || periods < 1 || 2*periods >= nt {
				return fmt.Errorf("need nt >= 4 and 1 <= periods < nt/2, got nt=%d periods=%d", nt, periods)
			}
			res, err := roundTrip(cmd.Context(), nt, periods)
			if err != nil {
				return err
			}

			return newFormatter(rootOpts, cmd.OutOrStdout()).Success(res)
		},
	}
	cmd.Flags().IntVar(&nt, "nt", 64, "number of time steps")
	cmd.Flags().IntVar(&periods, "periods", 1, "periods of the sinusoid over nt steps")

	return cmd
}

func roundTrip(ctx context.Context, nt, periods int) (RoundTripResult, error) {
	const dt = 1.0
	res := RoundTripResult{Steps: nt, Periods: periods}

	g, err := field.NewGrid([]int{1}, []float64{1}, field.WithTime(dt, nt))
	if err != nil {
		return res, err
	}
	mod, err := model.New(g)
	if err != nil {
		return res, err
	}
	u, err := field.NewTimeFunction("u", g)
	if err != nil {
		return res, err
	}
	f0 := float64(periods) / (float64(nt) * dt)
	trace := wavelet.Sinusoid(nt, dt, wavelet.WithFrequency(f0))
	if err = wavelet.Fill(u, trace); err != nil {
		return res, err
	}

	freq := make([]float64, nt)
	for k := range freq {
		freq[k] = float64(k-nt/2) / (float64(nt) * dt)
	}
	ufr, ufi, err := dft.Accumulators(g, nt)
	if err != nil {
		return res, err
	}
	acc, err := dft.Update(u, ufr, ufi, freq, 1)
	if err != nil {
		return res, err
	}

	adj := sensitivity.TimeDomain{Field: u}
	gt, err := field.NewFunction("grad", g)
	if err != nil {
		return res, err
	}
	corr, err := sensitivity.GradientUpdate(gt, sensitivity.TimeDomain{Field: u}, adj, mod)
	if err != nil {
		return res, err
	}
	gf, err := field.NewFunction("grad", g)
	if err != nil {
		return res, err
	}
	corrFreq, err := sensitivity.GradientUpdate(gf, sensitivity.FrequencyDomain{Real: ufr, Imag: ufi}, adj, mod,
		sensitivity.WithFrequencies(freq))
	if err != nil {
		return res, err
	}

	// corr only reads u; the DFT leg writes ufr/ufi before corr_freq reads them.
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return run(ctxlog.With(egCtx, "leg", "time"), "corr", corr, 0, nt)
	})
	eg.Go(func() error {
		legCtx := ctxlog.With(egCtx, "leg", "frequency")
		if err := run(legCtx, "dft", acc, 0, nt); err != nil {
			return err
		}
		// same window as the second time derivative of corr
		return run(legCtx, "corr_freq", corrFreq, 1, nt-1)
	})
	if err = eg.Wait(); err != nil {
		return res, err
	}

	res.SpectrumError = spectrumError(trace, ufr.Data().Values(), ufi.Data().Values())

	theta := 2 * math.Pi * float64(periods) / float64(nt)
	res.Time = gt.Data().Values()[0]
	res.Frequency = gf.Data().Values()[0]
	res.RelativeError = math.Abs(res.Frequency-res.Time) / math.Abs(res.Frequency)
	res.Expected = theta * theta / 12
	ctxlog.FromContext(ctx).Info("round trip done",
		"relative_error", res.RelativeError,
		"expected", res.Expected,
		"spectrum_error", res.SpectrumError)

	return res, nil
}

// spectrumError compares the accumulated spectrum over k-nt/2 with an FFT of
// the trace, relative to the largest FFT magnitude.
func spectrumError(trace, re, im []float64) float64 {
	n := len(trace)
	seq := make([]complex128, n)
	for i, v := range trace {
		seq[i] = complex(v, 0)
	}
	coef := fourier.NewCmplxFFT(n).Coefficients(nil, seq)

	var worst, peak float64
	for k := 0; k < n; k++ {
		want := coef[((k-n/2)%n+n)%n]
		peak = math.Max(peak, cmplx.Abs(want))
		worst = math.Max(worst, cmplx.Abs(complex(re[k], im[k])-want))
	}
	if peak == 0 {
		return worst
	}

	return worst / peak
}

func run(ctx context.Context, name string, eqs []symbolic.Eq, tmin, tmax int) error {
	op, err := operator.New(eqs, operator.WithName(name))
	if err != nil {
		return err
	}
	_, err = op.Apply(ctx, tmin, tmax)

	return err
}
