package profile

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// ErrEmptyProfile indicates a profile with no values.
var ErrEmptyProfile = errors.New("profile: empty profile")

// Smooth returns the profile convolved with a normalized Gaussian of the
// given standard deviation (in disks), same-length output. The convolution
// runs in the frequency domain; sigma <= 0 returns an unmodified copy.
func Smooth(p []float64, sigma float64) ([]float64, error) {
	if len(p) == 0 {
		return nil, ErrEmptyProfile
	}

	out := make([]float64, len(p))
	if sigma <= 0 {
		copy(out, p)
		return out, nil
	}

	kernel := gaussianKernel(sigma)
	radius := len(kernel) / 2

	fftSize := nextPowerOf2(len(p) + len(kernel) - 1)
	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("profile: failed to create FFT plan: %w", err)
	}

	a := make([]complex128, fftSize)
	b := make([]complex128, fftSize)
	for i, v := range p {
		a[i] = complex(v, 0)
	}
	for i, v := range kernel {
		b[i] = complex(v, 0)
	}

	if err := plan.Forward(a, a); err != nil {
		return nil, fmt.Errorf("profile: forward FFT failed: %w", err)
	}
	if err := plan.Forward(b, b); err != nil {
		return nil, fmt.Errorf("profile: forward FFT failed: %w", err)
	}
	for i := range a {
		a[i] *= b[i]
	}
	if err := plan.Inverse(a, a); err != nil {
		return nil, fmt.Errorf("profile: inverse FFT failed: %w", err)
	}

	// 'same' alignment: drop the kernel radius from the full convolution.
	for i := range out {
		out[i] = real(a[i+radius])
	}
	return out, nil
}

// gaussianKernel returns a normalized Gaussian sampled at integer offsets
// within three standard deviations.
func gaussianKernel(sigma float64) []float64 {
	radius := int(math.Ceil(3 * sigma))
	if radius < 1 {
		radius = 1
	}

	kernel := make([]float64, 2*radius+1)
	sum := 0.0
	for i := range kernel {
		x := float64(i - radius)
		kernel[i] = math.Exp(-x * x / (2 * sigma * sigma))
		sum += kernel[i]
	}
	for i := range kernel {
		kernel[i] /= sum
	}
	return kernel
}

// nextPowerOf2 returns the smallest power of 2 >= n.
func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
