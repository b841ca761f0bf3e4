// SPDX-License-Identifier: MIT

package symbolic

// StencilRadius returns the half-width r of the centered stencil used for a
// derivative of the given order at the given finite-difference order: the
// stencil spans offsets -r..r.
//
//	order=1, fdOrder=2 → r=1 (3 points)
//	order=2, fdOrder=2 → r=1 (3 points)
//	order=2, fdOrder=4 → r=2 (5 points)
//
// Odd fdOrder values round up to the next even accuracy.
func StencilRadius(order, fdOrder int) int {
	return (order+1)/2 - 1 + (fdOrder+1)/2
}

// FDWeights returns centered finite-difference weights for the order-th
// derivative on unit spacing, indexed by offset+r (offset in -r..r).
// Weights are computed with Fornberg's recursion on the integer nodes.
//
// Complexity: O(r²·order) time, O(r·order) memory.
func FDWeights(order, fdOrder int) []float64 {
	r := StencilRadius(order, fdOrder)
	nodes := make([]float64, 2*r+1)
	for i := range nodes {
		nodes[i] = float64(i - r)
	}

	return fornberg(order, nodes)
}

// fornberg computes weights at x=0 for derivative m on the given nodes.
func fornberg(m int, x []float64) []float64 {
	n := len(x) - 1
	c := make([][]float64, n+1)
	for i := range c {
		c[i] = make([]float64, m+1)
	}
	c1 := 1.0
	c4 := x[0]
	c[0][0] = 1
	for i := 1; i <= n; i++ {
		mn := min(i, m)
		c2 := 1.0
		c5 := c4
		c4 = x[i]
		for j := 0; j < i; j++ {
			c3 := x[i] - x[j]
			c2 *= c3
			if j == i-1 {
				for k := mn; k >= 1; k-- {
					c[i][k] = c1 * (float64(k)*c[i-1][k-1] - c5*c[i-1][k]) / c2
				}
				c[i][0] = -c1 * c5 * c[i-1][0] / c2
			}
			for k := mn; k >= 1; k-- {
				c[j][k] = (c4*c[j][k] - float64(k)*c[j][k-1]) / c3
			}
			c[j][0] = c4 * c[j][0] / c3
		}
		c1 = c2
	}

	w := make([]float64, n+1)
	for i := range w {
		w[i] = c[i][m]
	}

	return w
}
