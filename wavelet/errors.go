// SPDX-License-Identifier: MIT

package wavelet

import "errors"

var (
	// ErrNotTimeDependent is returned by Fill for a field without a time axis.
	ErrNotTimeDependent = errors.New("wavelet: field has no time axis")

	// ErrTraceLength is returned by Fill when the trace does not cover the time axis.
	ErrTraceLength = errors.New("wavelet: trace length does not match time extent")

	// ErrProfileLength is returned by Fill when the spatial profile has the wrong size.
	ErrProfileLength = errors.New("wavelet: profile length does not match spatial size")
)
