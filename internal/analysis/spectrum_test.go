package analysis

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestFFTConstantSignal(t *testing.T) {
	data := []float64{1, 1, 1, 1}
	fft := FFT(data)

	if cmplx.Abs(fft[0]) != 4 {
		t.Errorf("DC bin should carry the whole signal, got %f", cmplx.Abs(fft[0]))
	}
	for i := 1; i < len(fft); i++ {
		if cmplx.Abs(fft[i]) > 1e-10 {
			t.Errorf("bin %d should vanish, got %f", i, cmplx.Abs(fft[i]))
		}
	}
}

func TestDominantFrequencySine(t *testing.T) {
	// 4 Hz sine sampled at 128 Hz over one second.
	n := 128
	dt := 1.0 / 128.0
	data := make([]float64, n)
	for i := range data {
		data[i] = math.Sin(2 * math.Pi * 4 * float64(i) * dt)
	}

	freq := DominantFrequency(data, dt)
	if math.Abs(freq-4) > 0.5 {
		t.Errorf("expected 4 Hz, got %f", freq)
	}
}

func TestPowerSpectrumPadsOddLength(t *testing.T) {
	data := make([]float64, 100)
	for i := range data {
		data[i] = math.Sin(float64(i))
	}
	ps := PowerSpectrum(data)
	if len(ps) != 64 {
		t.Errorf("expected 128-point FFT halved to 64 bins, got %d", len(ps))
	}
}
