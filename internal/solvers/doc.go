// Package solvers implements the integration schemes behind the problem
// types in deq.
//
// Explicit ODE steppers: [Euler], [Heun], [RK4] and the adaptive
// Dormand-Prince pair [Dopri5]. Stiff problems get the A-stable
// [BackwardEuler] and [Trapezoidal] rules, which solve their stage
// equations by Newton iteration with finite-difference Jacobians and
// dense LU factorization.
//
// Beyond plain ODEs:
//
//   - [SolveSDE] with [EulerMaruyama] or [Milstein] (diagonal noise)
//   - [SolveDDE]: method of steps over an interpolated trajectory
//   - [SolveDAE]: mass-matrix implicit Euler, singular mass allowed
//   - [SolveSplit]: IMEX Euler for stiff/non-stiff splittings
//
// All drivers take a context and return a partial Solution together with
// the error when integration aborts.
package solvers
