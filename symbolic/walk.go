// SPDX-License-Identifier: MIT

package symbolic

// Walk visits e and its descendants depth-first, pre-order. Returning false
// from fn skips the children of the current node.
func Walk(e Expr, fn func(Expr) bool) {
	if !fn(e) {
		return
	}
	for _, a := range e.Args() {
		Walk(a, fn)
	}
}

// Dimensions returns the root dimensions e depends on, in first-seen order.
func Dimensions(e Expr) []*Dimension {
	var out []*Dimension
	seen := make(map[*Dimension]bool)
	Walk(e, func(n Expr) bool {
		ix, ok := n.(Indexed)
		if !ok {
			return true
		}
		for _, d := range ix.Dimensions() {
			r := d.Root()
			if !seen[r] {
				seen[r] = true
				out = append(out, r)
			}
		}

		return true
	})

	return out
}

// Halo returns, per root dimension, how far evaluation of e reaches beyond
// the current index. Nested derivatives along the same axis add up.
func Halo(e Expr) map[*Dimension]int {
	out := make(map[*Dimension]int)
	if d, ok := e.(*Derivative); ok {
		for dim, r := range Halo(d.expr) {
			out[dim] = r
		}
		out[d.dim] += d.Radius()

		return out
	}
	for _, a := range e.Args() {
		for dim, r := range Halo(a) {
			if r > out[dim] {
				out[dim] = r
			}
		}
	}

	return out
}
