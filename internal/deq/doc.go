// Package deq defines the problem/solver contract shared by every equation
// family in the toolkit:
//
//   - [State]: the state vector
//   - [ODEProblem], [SDEProblem], [DDEProblem], [DAEProblem], [SplitProblem]:
//     value bundles of right-hand side, initial state, parameters and time span
//   - [Options]: solver keywords (step size, tolerances, callbacks)
//   - [Solution]: saved trajectory with interpolation and work counters
//
// A problem describes WHAT to integrate; the solvers package supplies HOW.
// The only structural invariant is dimensional agreement between the initial
// state, the RHS output and any mass matrix, checked by each problem's
// Validate method.
//
// # Example
//
//	prob := problems.Lorenz()
//	sol, _ := solvers.SolveODE(ctx, prob, solvers.NewDopri5(), deq.DefaultOptions())
//	xs, _ := sol.Component(0)
//
// # Thread Safety
//
// Problems and options are plain values and safe to share. A Solution is not
// safe for concurrent mutation; ensemble runs give each goroutine its own.
package deq
