// SPDX-License-Identifier: MIT

package wavelet

import (
	"fmt"

	"github.com/katalvlaran/seisgrad/field"
)

// Fill sets u(t, p) = trace[t]·profile[p] for every time step t and every
// spatial point p (row-major). An empty profile means 1 everywhere; a single
// value broadcasts.
//
// Errors: ErrNotTimeDependent, ErrTraceLength, ErrProfileLength.
func Fill(u *field.Function, trace []float64, profile ...float64) error {
	if !u.IsTimeDependent() || u.Dimensions()[0] != u.TimeDim() {
		return fmt.Errorf("%s: %w", u, ErrNotTimeDependent)
	}
	nt := u.Shape()[0]
	if len(trace) != nt {
		return fmt.Errorf("%s: %d samples for %d steps: %w", u, len(trace), nt, ErrTraceLength)
	}
	values := u.Data().Values()
	np := len(values) / nt
	switch len(profile) {
	case 0:
		profile = []float64{1}
	case 1, np:
	default:
		return fmt.Errorf("%s: %d values for %d points: %w", u, len(profile), np, ErrProfileLength)
	}

	for ti, a := range trace {
		row := values[ti*np : (ti+1)*np]
		for p := range row {
			row[p] = a * profile[p%len(profile)]
		}
	}

	return nil
}
