// Package analysis provides result-inspection tools for solved
// trajectories:
//
//   - [PowerSpectrum] / [DominantFrequency]: radix-2 FFT frequency analysis
//   - [LyapunovExponent]: largest Lyapunov exponent via trajectory separation
//
// # Chaos Detection
//
// A positive largest Lyapunov exponent indicates chaotic dynamics:
//
//	lambda := analysis.LyapunovExponent(problems.Lorenz(), solvers.NewRK4(), 0.01, 50, 1e-8)
//	if lambda > 0 {
//	    // System is chaotic
//	}
package analysis
