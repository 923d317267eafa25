package superposition

import "math/cmplx"

/*
Hypothesis pairs a label with its complex probability amplitude. Values
are immutable once constructed; probability mass is always derived from
the amplitude on access, never stored alongside it.
*/
type Hypothesis struct {
	Label     string
	Amplitude complex128
}

// Probability returns the Born-rule probability mass |amplitude|².
func (h Hypothesis) Probability() float64 {
	return real(cmplx.Conj(h.Amplitude) * h.Amplitude)
}
