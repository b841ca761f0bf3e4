// Package config loads the YAML run description used by the seisgrad CLI:
// the grid, a constant model and the imaging-condition selection. It turns a
// validated Config into the library objects (field.Grid, model.Model,
// sensitivity options), so library packages themselves stay configured by
// functional options only.
package config
