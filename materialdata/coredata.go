// Package materialdata turns raw measured core material curves into
// continuous functions of flux density and frequency. The curves feed the
// complex permeability model of the solver stage and are consulted again
// during post processing of field results.
package materialdata

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/interp"
)

// Curve is a monotone piecewise linear interpolant over a sampled flux
// density range. Queries outside the sampled domain clamp to the nearest
// boundary sample.
type Curve struct {
	pl   interp.PiecewiseLinear
	bMin float64
	bMax float64
}

// NewCurve fits a curve to paired (flux density, response) samples. The
// samples need not arrive sorted; they are ordered by flux density and
// duplicate flux density points are dropped, keeping the first occurrence.
func NewCurve(b, response []float64) (*Curve, error) {
	if len(b) != len(response) {
		return nil, fmt.Errorf("flux density and response sample counts differ: %d vs %d", len(b), len(response))
	}
	if len(b) < 2 {
		return nil, fmt.Errorf("need at least 2 samples, have %d", len(b))
	}

	order := make([]int, len(b))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool { return b[order[i]] < b[order[j]] })

	xs := make([]float64, 0, len(b))
	ys := make([]float64, 0, len(b))
	for _, idx := range order {
		if len(xs) > 0 && b[idx] == xs[len(xs)-1] {
			continue
		}
		xs = append(xs, b[idx])
		ys = append(ys, response[idx])
	}

	c := &Curve{bMin: xs[0], bMax: xs[len(xs)-1]}
	if err := c.pl.Fit(xs, ys); err != nil {
		return nil, err
	}
	return c, nil
}

// At evaluates the curve at the given flux density, clamping to the sampled
// domain.
func (c *Curve) At(b float64) float64 {
	return c.pl.Predict(b)
}

// Domain returns the sampled flux density range.
func (c *Curve) Domain() (bMin, bMax float64) {
	return c.bMin, c.bMax
}

// LossAngleAnchor is one measured amplitude/phase point of the complex
// equivalent permittivity at a reference frequency.
type LossAngleAnchor struct {
	Frequency float64
	Amplitude float64
	PhiDeg    float64
}

// ImagDeg returns the imaginary component of an amplitude with the given
// phase in degrees.
func ImagDeg(amp, phiDeg float64) float64 {
	return amp * math.Sin(phiDeg/180*math.Pi)
}

// AnalyticalCoreData interpolates the frequency and flux density dependent
// imaginary permeability of a core material from two reference frequency
// curves, and its loss angle from a set of anchor frequencies.
type AnalyticalCoreData struct {
	FreqLow  float64
	FreqHigh float64

	low  *Curve
	high *Curve

	anchors []LossAngleAnchor
}

// NewAnalyticalCoreData builds the interpolants from two sampled curves at
// the given reference frequencies and the loss angle anchors, which must be
// ordered by ascending frequency.
func NewAnalyticalCoreData(freqLow, freqHigh float64, bLow, muImagLow, bHigh, muImagHigh []float64, anchors []LossAngleAnchor) (*AnalyticalCoreData, error) {
	if freqHigh <= freqLow {
		return nil, fmt.Errorf("reference frequencies must be ascending, have %g and %g", freqLow, freqHigh)
	}
	low, err := NewCurve(bLow, muImagLow)
	if err != nil {
		return nil, fmt.Errorf("low frequency curve: %v", err)
	}
	high, err := NewCurve(bHigh, muImagHigh)
	if err != nil {
		return nil, fmt.Errorf("high frequency curve: %v", err)
	}
	for i := 1; i < len(anchors); i++ {
		if anchors[i].Frequency <= anchors[i-1].Frequency {
			return nil, fmt.Errorf("loss angle anchors must be ordered by ascending frequency")
		}
	}
	return &AnalyticalCoreData{
		FreqLow:  freqLow,
		FreqHigh: freqHigh,
		low:      low,
		high:     high,
		anchors:  anchors,
	}, nil
}

// ImagPermeability linearly interpolates between the two reference frequency
// curves for the requested frequency and flux density.
func (d *AnalyticalCoreData) ImagPermeability(frequency, b float64) float64 {
	fLow := d.low.At(b)
	fHigh := d.high.At(b)
	return fLow + (fHigh-fLow)/(d.FreqHigh-d.FreqLow)*(frequency-d.FreqLow)
}

// LossAngleImag returns the imaginary component of the complex equivalent
// permittivity at the given frequency. Below the lowest anchor it clamps to
// the lowest anchor's value, above the highest to the highest; between two
// anchors it interpolates linearly.
func (d *AnalyticalCoreData) LossAngleImag(frequency float64) float64 {
	first := d.anchors[0]
	last := d.anchors[len(d.anchors)-1]
	if frequency < first.Frequency {
		return ImagDeg(first.Amplitude, first.PhiDeg)
	}
	if frequency > last.Frequency {
		return ImagDeg(last.Amplitude, last.PhiDeg)
	}
	for i := len(d.anchors) - 1; i > 0; i-- {
		lo := d.anchors[i-1]
		hi := d.anchors[i]
		if frequency >= lo.Frequency {
			imagLo := ImagDeg(lo.Amplitude, lo.PhiDeg)
			imagHi := ImagDeg(hi.Amplitude, hi.PhiDeg)
			return imagLo + (imagHi-imagLo)/(hi.Frequency-lo.Frequency)*(frequency-lo.Frequency)
		}
	}
	return ImagDeg(first.Amplitude, first.PhiDeg)
}
