// Package model holds the physical parameters an imaging condition reads:
// squared slowness m, its perturbation dm, density rho and inverse density
// irho, all as static fields on one grid, plus the finite-difference space
// order shared by every stencil built against the model.
//
// A Model is immutable once built; callers own it and may share it across
// any number of imaging-condition constructions.
//
//	g, _ := field.NewGrid([]int{101, 101}, []float64{10, 10}, field.WithTime(1e-3, 2000))
//	m, err := model.New(g,
//		model.WithVelocity(1.5),
//		model.WithDensity(1.0),
//		model.WithSpaceOrder(8),
//	)
package model
