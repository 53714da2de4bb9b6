package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/diffeq/internal/analysis"
	"github.com/san-kum/diffeq/internal/config"
	"github.com/san-kum/diffeq/internal/deq"
	"github.com/san-kum/diffeq/internal/ensemble"
	"github.com/san-kum/diffeq/internal/problems"
	"github.com/san-kum/diffeq/internal/solvers"
	"github.com/san-kum/diffeq/internal/store"
	"github.com/san-kum/diffeq/internal/tutorials"
	"github.com/san-kum/diffeq/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	solverName string
	dt         float64
	t1         float64
	absTol     float64
	relTol     float64
	adaptive   bool
	saveEvery  int
	seed       int64
	configFile string
	preset     string
	// plot axes
	xAxis int
	yAxis int
	// ensemble
	numRuns    int
	numWorkers int
	// live view
	frameRate int
	// file plots
	outFile string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "diffeq",
		Short: "differential equation solving and tutorial lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".diffeq", "data directory")

	solveCmd := &cobra.Command{
		Use:   "solve [problem]",
		Short: "solve a named problem and save the run",
		Args:  cobra.ExactArgs(1),
		RunE:  runSolve,
	}
	solveCmd.Flags().StringVar(&solverName, "solver", "dopri5", "solver")
	solveCmd.Flags().Float64Var(&dt, "dt", 0.01, "timestep")
	solveCmd.Flags().Float64Var(&t1, "time", 0, "override tspan end (0 keeps the problem default)")
	solveCmd.Flags().Float64Var(&absTol, "abstol", 1e-6, "absolute tolerance")
	solveCmd.Flags().Float64Var(&relTol, "reltol", 1e-3, "relative tolerance")
	solveCmd.Flags().BoolVar(&adaptive, "adaptive", true, "adaptive stepping when the solver supports it")
	solveCmd.Flags().IntVar(&saveEvery, "save-every", 1, "save every nth step")
	solveCmd.Flags().Int64Var(&seed, "seed", 0, "seed for stochastic problems")
	solveCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	solveCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	problemsCmd := &cobra.Command{
		Use:   "problems",
		Short: "list available problems",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("ode:")
			for _, name := range problems.ListODE() {
				fmt.Printf("  %s\n", name)
			}
			fmt.Println("sde:")
			for _, name := range problems.ListSDE() {
				fmt.Printf("  %s\n", name)
			}
			fmt.Println("dde:")
			for _, name := range problems.ListDDE() {
				fmt.Printf("  %s\n", name)
			}
		},
	}

	solversCmd := &cobra.Command{
		Use:   "solvers",
		Short: "list available solvers",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("ode:")
			for _, name := range solvers.List() {
				fmt.Printf("  %s\n", name)
			}
			fmt.Println("sde:")
			for _, name := range solvers.ListSDE() {
				fmt.Printf("  %s\n", name)
			}
		},
	}

	tutorialCmd := &cobra.Command{
		Use:   "tutorial [name]",
		Short: "run a tutorial (no argument lists them)",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runTutorial,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run results",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	phaseCmd := &cobra.Command{
		Use:   "phase [run_id]",
		Short: "phase space plot",
		Args:  cobra.ExactArgs(1),
		RunE:  phasePlot,
	}
	phaseCmd.Flags().IntVar(&xAxis, "x-axis", 0, "state index for x-axis")
	phaseCmd.Flags().IntVar(&yAxis, "y-axis", 1, "state index for y-axis")

	renderCmd := &cobra.Command{
		Use:   "render [run_id]",
		Short: "render run to an image file (png/svg/pdf by extension)",
		Args:  cobra.ExactArgs(1),
		RunE:  renderRun,
	}
	renderCmd.Flags().StringVar(&outFile, "out", "run.png", "output file")
	renderCmd.Flags().IntVar(&xAxis, "x-axis", -1, "phase portrait x index (-1 for time series)")
	renderCmd.Flags().IntVar(&yAxis, "y-axis", 1, "phase portrait y index")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "frequency analysis",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	compareCmd := &cobra.Command{
		Use:   "compare [problem] [solver1] [solver2] ...",
		Short: "compare solvers on the same problem",
		Args:  cobra.MinimumNArgs(2),
		RunE:  compareSolvers,
	}
	compareCmd.Flags().Float64Var(&dt, "dt", 0.01, "timestep")
	compareCmd.Flags().Float64Var(&t1, "time", 0, "override tspan end")

	ensembleCmd := &cobra.Command{
		Use:   "ensemble [sde_problem]",
		Short: "run an SDE ensemble and summarize it",
		Args:  cobra.ExactArgs(1),
		RunE:  runEnsemble,
	}
	ensembleCmd.Flags().IntVar(&numRuns, "runs", 100, "number of trajectories")
	ensembleCmd.Flags().IntVar(&numWorkers, "workers", 0, "worker goroutines (0 = GOMAXPROCS)")
	ensembleCmd.Flags().Float64Var(&dt, "dt", 0.001, "timestep")
	ensembleCmd.Flags().IntVar(&saveEvery, "save-every", 10, "save every nth step")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run data to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	benchCmd := &cobra.Command{
		Use:   "bench [problem]",
		Short: "benchmark solvers on a problem",
		Args:  cobra.ExactArgs(1),
		RunE:  benchProblem,
	}

	liveCmd := &cobra.Command{
		Use:   "live [problem]",
		Short: "solve with live terminal visualization",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	liveCmd.Flags().StringVar(&solverName, "solver", "rk4", "solver")
	liveCmd.Flags().Float64Var(&dt, "dt", 0.01, "timestep")
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	presetsCmd := &cobra.Command{
		Use:   "presets [problem]",
		Short: "list available presets for a problem",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets(args[0])
			if len(names) == 0 {
				fmt.Printf("no presets for problem: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range names {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(solveCmd, listCmd, problemsCmd, solversCmd, tutorialCmd,
		plotCmd, phaseCmd, renderCmd, analyzeCmd, compareCmd, ensembleCmd,
		exportCSVCmd, exportJSONCmd, benchCmd, liveCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func buildOptions() deq.Options {
	opts := deq.DefaultOptions()
	opts.Dt = dt
	opts.AbsTol = absTol
	opts.RelTol = relTol
	opts.Adaptive = adaptive
	opts.SaveEvery = saveEvery
	return opts
}

func runSolve(cmd *cobra.Command, args []string) error {
	name := args[0]
	var cfg *config.Config

	if preset != "" {
		cfg = config.GetPreset(name, preset)
		if cfg == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(name))
		}
		applyConfig(cmd, cfg)
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		name = cfg.Problem
		applyConfig(cmd, cfg)
	}

	st := store.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	prob, err := problems.ODE(name)
	if err != nil {
		// Fall back to the SDE registry so `solve gbm` works too.
		sdeProb, sdeErr := problems.SDE(name, seed)
		if sdeErr != nil {
			return err
		}
		return solveSDERun(cmd.Context(), st, name, sdeProb)
	}

	stepper, err := solvers.Get(solverName)
	if err != nil {
		return err
	}

	if t1 > 0 {
		prob.Tspan[1] = t1
	}
	if cfg != nil {
		if len(cfg.Y0) > 0 {
			prob.Y0 = deq.State(cfg.Y0).Clone()
		}
		for k, v := range cfg.Params {
			if prob.Params == nil {
				prob.Params = deq.Params{}
			}
			prob.Params[k] = v
		}
	}

	fmt.Printf("solving %s with %s...\n", name, solverName)
	start := time.Now()

	sol, err := solvers.SolveODE(cmd.Context(), prob, stepper, buildOptions())
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(name, solverName, dt, prob.Tspan[0], prob.Tspan[1], seed, sol)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("retcode: %s\n", sol.RetCode)
	fmt.Printf("steps: %d  rejected: %d  rhs evals: %d\n", sol.Stats.Steps, sol.Stats.Rejected, sol.Stats.Evals)
	return nil
}

func solveSDERun(ctx context.Context, st *store.Store, name string, prob deq.SDEProblem) error {
	stepper, err := solvers.GetSDE(solverName)
	if err != nil {
		stepper = solvers.NewEulerMaruyama()
	}

	if t1 > 0 {
		prob.Tspan[1] = t1
	}

	fmt.Printf("solving %s (sde)...\n", name)
	sol, err := solvers.SolveSDE(ctx, prob, stepper, buildOptions())
	if err != nil {
		return err
	}

	runID, err := st.Save(name, solverName, dt, prob.Tspan[0], prob.Tspan[1], prob.Seed, sol)
	if err != nil {
		return err
	}
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d\n", sol.Stats.Steps)
	return nil
}

func applyConfig(cmd *cobra.Command, cfg *config.Config) {
	if !cmd.Flags().Changed("solver") && cfg.Solver != "" {
		solverName = cfg.Solver
	}
	if !cmd.Flags().Changed("dt") && cfg.Dt > 0 {
		dt = cfg.Dt
	}
	if !cmd.Flags().Changed("time") && cfg.T1 > 0 {
		t1 = cfg.T1
	}
	if !cmd.Flags().Changed("abstol") && cfg.AbsTol > 0 {
		absTol = cfg.AbsTol
	}
	if !cmd.Flags().Changed("reltol") && cfg.RelTol > 0 {
		relTol = cfg.RelTol
	}
	if !cmd.Flags().Changed("adaptive") {
		adaptive = cfg.Adaptive
	}
	if !cmd.Flags().Changed("save-every") && cfg.SaveEvery > 0 {
		saveEvery = cfg.SaveEvery
	}
	if !cmd.Flags().Changed("seed") && cfg.Seed != 0 {
		seed = cfg.Seed
	}
}

func runTutorial(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tSUMMARY")
		for _, t := range tutorials.All() {
			fmt.Fprintf(w, "%s\t%s\n", t.Name, t.Summary)
		}
		return w.Flush()
	}

	t, err := tutorials.Get(args[0])
	if err != nil {
		return err
	}
	fmt.Printf("── %s ──\n\n", t.Name)
	return t.Run(cmd.Context(), os.Stdout)
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPROBLEM\tSOLVER\tTIME\tDT\tRETCODE\tSTEPS")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.4f\t%s\t%d\n",
			run.ID,
			run.Problem,
			run.Solver,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Dt,
			run.RetCode,
			run.Steps,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	sol, err := st.LoadSolution(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("problem: %s (%s)\n", meta.Problem, meta.Solver)
	fmt.Printf("samples: %d\n\n", sol.Len())

	return viz.PlotComponents(os.Stdout, sol, nil, 6)
}

func phasePlot(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	sol, err := st.LoadSolution(args[0])
	if err != nil {
		return err
	}

	xData, err := sol.Component(xAxis)
	if err != nil {
		return err
	}
	yData, err := sol.Component(yAxis)
	if err != nil {
		return err
	}

	fmt.Printf("phase space plot: %s\n", meta.ID)
	fmt.Printf("problem: %s\n", meta.Problem)
	fmt.Printf("x-axis: y%d, y-axis: y%d\n\n", xAxis, yAxis)

	return viz.PhaseScatter(os.Stdout, xData, yData, 70, 20)
}

func renderRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	sol, err := st.LoadSolution(args[0])
	if err != nil {
		return err
	}

	title := fmt.Sprintf("%s (%s)", meta.Problem, meta.Solver)
	if xAxis >= 0 {
		err = viz.SavePhasePortrait(outFile, title, sol, xAxis, yAxis)
	} else {
		err = viz.SaveTimeSeries(outFile, title, sol, 6)
	}
	if err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", outFile)
	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	sol, err := st.LoadSolution(args[0])
	if err != nil {
		return err
	}

	data, err := sol.Component(0)
	if err != nil {
		return err
	}

	fmt.Printf("frequency analysis: %s\n", meta.ID)
	fmt.Printf("problem: %s\n\n", meta.Problem)

	ps := analysis.PowerSpectrum(data)
	viz.PlotSeries(os.Stdout, ps[:len(ps)/4], "power spectrum (y0)", 15)

	// The saved grid may be thinned, so derive the sample interval from it
	// rather than from the solver step.
	freq := analysis.DominantFrequency(data, sol.SampleInterval())
	fmt.Printf("dominant frequency: %.3f hz\n", freq)
	if freq > 0 {
		fmt.Printf("period: %.3f s\n", 1.0/freq)
	}
	return nil
}

func compareSolvers(cmd *cobra.Command, args []string) error {
	name := args[0]
	solverNames := args[1:]

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(os.Stdout, "comparing solvers on %s (dt=%.4f)\n\n", name, dt)
	fmt.Fprintln(w, "SOLVER\tFINAL y0\tSTEPS\tEVALS\tTIME")

	for _, sn := range solverNames {
		stepper, err := solvers.Get(sn)
		if err != nil {
			fmt.Fprintf(w, "%s\terror: %v\t\t\t\n", sn, err)
			continue
		}

		prob, err := problems.ODE(name)
		if err != nil {
			return err
		}
		if t1 > 0 {
			prob.Tspan[1] = t1
		}

		opts := deq.DefaultOptions()
		opts.Dt = dt
		opts.Adaptive = sn == "dopri5"

		start := time.Now()
		sol, err := solvers.SolveODE(cmd.Context(), prob, stepper, opts)
		elapsed := time.Since(start)

		if err != nil {
			fmt.Fprintf(w, "%s\terror: %v\t\t\t\n", sn, err)
			continue
		}

		_, yEnd := sol.Last()
		fmt.Fprintf(w, "%s\t%.6f\t%d\t%d\t%v\n", sn, yEnd[0], sol.Stats.Steps, sol.Stats.Evals, elapsed)
	}

	return w.Flush()
}

func runEnsemble(cmd *cobra.Command, args []string) error {
	name := args[0]

	opts := deq.DefaultOptions()
	opts.Dt = dt
	opts.SaveEvery = saveEvery

	fmt.Printf("running %d trajectories of %s...\n", numRuns, name)
	start := time.Now()

	sols, err := ensemble.Run(cmd.Context(), numRuns, ensemble.Workers{N: numWorkers}, func(i int) (*deq.Solution, error) {
		prob, err := problems.SDE(name, int64(i+1))
		if err != nil {
			return nil, err
		}
		return solvers.SolveSDE(cmd.Context(), prob, solvers.NewEulerMaruyama(), opts)
	})
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n\n", time.Since(start))

	sum, err := ensemble.Summarize(sols, 0)
	if err != nil {
		return err
	}

	viz.PlotSeries(os.Stdout, sum.Mean, "ensemble mean (y0)", 10)
	viz.PlotSeries(os.Stdout, sum.Std, "ensemble std (y0)", 8)

	q10, err := ensemble.Quantile(sols, 0, 0.1)
	if err != nil {
		return err
	}
	q90, err := ensemble.Quantile(sols, 0, 0.9)
	if err != nil {
		return err
	}
	last := len(sum.Mean) - 1
	fmt.Printf("final: mean=%.4f std=%.4f q10=%.4f q90=%.4f\n",
		sum.Mean[last], sum.Std[last], q10[last], q90[last])
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	sol, err := st.LoadSolution(args[0])
	if err != nil {
		return err
	}

	if sol.Len() == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	header := []string{"time"}
	for i := range sol.States[0] {
		header = append(header, fmt.Sprintf("y%d", i))
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for i := range sol.States {
		row := []string{strconv.FormatFloat(sol.Times[i], 'f', 6, 64)}
		for _, val := range sol.States[i] {
			row = append(row, strconv.FormatFloat(val, 'g', -1, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := store.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	sol, err := st.LoadSolution(args[0])
	if err != nil {
		return err
	}

	return store.ExportJSON(os.Stdout, *meta, sol)
}

func benchProblem(cmd *cobra.Command, args []string) error {
	name := args[0]

	durations := []float64{1.0, 5.0, 10.0}
	dts := []float64{0.001, 0.01, 0.1}

	fmt.Printf("benchmarking %s (rk4)\n\n", name)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DURATION\tDT\tSTEPS\tTIME\tSTEPS/SEC")

	for _, dur := range durations {
		for _, benchDt := range dts {
			prob, err := problems.ODE(name)
			if err != nil {
				return err
			}
			prob.Tspan[1] = prob.Tspan[0] + dur

			opts := deq.DefaultOptions()
			opts.Dt = benchDt
			opts.SaveEvery = math.MaxInt32

			start := time.Now()
			sol, err := solvers.SolveODE(cmd.Context(), prob, solvers.NewRK4(), opts)
			if err != nil {
				return err
			}
			elapsed := time.Since(start)

			stepsPerSec := float64(sol.Stats.Steps) / elapsed.Seconds()
			fmt.Fprintf(w, "%.1fs\t%.4fs\t%d\t%v\t%.0f\n",
				dur, benchDt, sol.Stats.Steps, elapsed, stepsPerSec)
		}
	}

	return w.Flush()
}

func runLive(cmd *cobra.Command, args []string) error {
	prob, err := problems.ODE(args[0])
	if err != nil {
		return err
	}

	stepper, err := solvers.Get(solverName)
	if err != nil {
		return err
	}

	m := viz.NewLiveModel(args[0], prob, stepper, dt, frameRate)
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
