package deq

// Options carries solver keywords: step size, tolerances, step limits and
// callback hooks. Zero-valued fields fall back to defaults at solve time.
type Options struct {
	Dt        float64
	AbsTol    float64
	RelTol    float64
	MinDt     float64
	MaxDt     float64
	MaxSteps  int
	Adaptive  bool
	SaveEvery int
	Callbacks []Callback
}

func DefaultOptions() Options {
	return Options{
		Dt:        0.01,
		AbsTol:    1e-6,
		RelTol:    1e-3,
		MinDt:     1e-10,
		MaxDt:     1.0,
		MaxSteps:  1_000_000,
		SaveEvery: 1,
	}
}

// Normalize fills unset fields with defaults.
func (o Options) Normalize() Options {
	def := DefaultOptions()
	if o.Dt <= 0 {
		o.Dt = def.Dt
	}
	if o.AbsTol <= 0 {
		o.AbsTol = def.AbsTol
	}
	if o.RelTol <= 0 {
		o.RelTol = def.RelTol
	}
	if o.MinDt <= 0 {
		o.MinDt = def.MinDt
	}
	if o.MaxDt <= 0 {
		o.MaxDt = def.MaxDt
	}
	if o.MaxSteps <= 0 {
		o.MaxSteps = def.MaxSteps
	}
	if o.SaveEvery <= 0 {
		o.SaveEvery = def.SaveEvery
	}
	return o
}
