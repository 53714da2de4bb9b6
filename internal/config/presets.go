package config

// Presets are named configurations per problem, selectable from the CLI.
var presets = map[string]map[string]*Config{
	"lorenz": {
		"classic": {
			Problem: "lorenz", Solver: "dopri5", Dt: 0.01, T1: 40,
			AbsTol: 1e-8, RelTol: 1e-6, Adaptive: true,
		},
		"quick": {
			Problem: "lorenz", Solver: "rk4", Dt: 0.01, T1: 10,
		},
	},
	"vanderpol": {
		"limit_cycle": {
			Problem: "vanderpol", Solver: "dopri5", Dt: 0.01, T1: 20,
			AbsTol: 1e-8, RelTol: 1e-6, Adaptive: true,
		},
	},
	"vdp_stiff": {
		"implicit": {
			Problem: "vdp_stiff", Solver: "beuler", Dt: 0.01, T1: 2000,
			SaveEvery: 100,
		},
	},
	"robertson": {
		"stiff": {
			Problem: "robertson", Solver: "beuler", Dt: 0.001, T1: 100,
			SaveEvery: 100,
		},
	},
	"heat": {
		"mol": {
			Problem: "heat", Solver: "trapezoidal", Dt: 0.002, T1: 0.5,
			SaveEvery: 10,
		},
	},
	"pendulum": {
		"small": {
			Problem: "pendulum", Solver: "rk4", Dt: 0.01, T1: 10,
			Y0: []float64{0.2, 0},
		},
	},
}

func GetPreset(problem, name string) *Config {
	byName, ok := presets[problem]
	if !ok {
		return nil
	}
	return byName[name]
}

func ListPresets(problem string) []string {
	byName, ok := presets[problem]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	return names
}
