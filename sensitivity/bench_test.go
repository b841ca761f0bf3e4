// SPDX-License-Identifier: MIT

package sensitivity_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/seisgrad/field"
	"github.com/katalvlaran/seisgrad/model"
	"github.com/katalvlaran/seisgrad/operator"
	"github.com/katalvlaran/seisgrad/sensitivity"
)

// BenchmarkImagingCondition measures expression construction per condition.
func BenchmarkImagingCondition(b *testing.B) {
	g, _ := field.NewGrid([]int{32, 32, 32}, []float64{10, 10, 10}, field.WithTime(0.001, 10))
	mod, _ := model.New(g, model.WithSpaceOrder(8))
	u, _ := field.NewTimeFunction("u", g)
	v, _ := field.NewTimeFunction("v", g)
	freq := []float64{3, 5, 8}

	for _, c := range []sensitivity.Condition{sensitivity.Corr, sensitivity.ISIC} {
		b.Run(c.String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = c.Expr(sensitivity.TimeDomain{Field: u}, sensitivity.TimeDomain{Field: v}, mod,
					sensitivity.WithFrequencies(freq))
			}
		})
	}
}

// BenchmarkGradientApply measures one interpreted time step of isic.
func BenchmarkGradientApply(b *testing.B) {
	g, _ := field.NewGrid([]int{16, 16}, []float64{10, 10}, field.WithTime(0.001, 3))
	mod, _ := model.New(g)
	u, _ := field.NewTimeFunction("u", g)
	v, _ := field.NewTimeFunction("v", g)
	grad, _ := field.NewFunction("grad", g)

	eqs, err := sensitivity.GradientUpdate(grad, sensitivity.TimeDomain{Field: u}, sensitivity.TimeDomain{Field: v}, mod,
		sensitivity.WithISIC(true))
	if err != nil {
		b.Fatal(err)
	}
	op, err := operator.New(eqs)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = op.Apply(context.Background(), 0, 3); err != nil {
			b.Fatal(err)
		}
	}
}
