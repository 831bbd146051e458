package spectrum

import (
	"sync"

	"github.com/cwbudde/algo-vecmath"
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)

	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}

	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// Magnitude writes |X[k]| for each complex bin into dst.
//
// dst and in must have the same length. Scratch buffers are pooled
// internally, so in steady state this allocates nothing.
func Magnitude(dst []float64, in []complex128) {
	if len(dst) != len(in) || len(in) == 0 {
		return
	}

	re, im, buf := getScratch(len(in))

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Magnitude(dst, re, im)
	putScratch(buf)
}

// MagnitudeFromParts computes |X[k]| = sqrt(re[k]^2 + im[k]^2) into dst.
// All three slices must have the same length.
func MagnitudeFromParts(dst, re, im []float64) {
	vecmath.Magnitude(dst, re, im)
}

// Power writes |X[k]|^2 for each complex bin into dst.
//
// dst and in must have the same length. Scratch buffers are pooled
// internally, so in steady state this allocates nothing.
func Power(dst []float64, in []complex128) {
	if len(dst) != len(in) || len(in) == 0 {
		return
	}

	re, im, buf := getScratch(len(in))

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Power(dst, re, im)
	putScratch(buf)
}

// Energy returns the sum of squared values of an amplitude spectrum.
func Energy(amplitude []float64) float64 {
	sum := 0.0
	for _, v := range amplitude {
		sum += v * v
	}

	return sum
}
