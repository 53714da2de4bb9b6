package solvers

import (
	"math"

	"github.com/san-kum/diffeq/internal/deq"
)

// Dormand-Prince 5(4) coefficients
var (
	a2 = 1.0 / 5.0
	a3 = 3.0 / 10.0
	a4 = 4.0 / 5.0
	a5 = 8.0 / 9.0

	b21 = 1.0 / 5.0
	b31 = 3.0 / 40.0
	b32 = 9.0 / 40.0
	b41 = 44.0 / 45.0
	b42 = -56.0 / 15.0
	b43 = 32.0 / 9.0
	b51 = 19372.0 / 6561.0
	b52 = -25360.0 / 2187.0
	b53 = 64448.0 / 6561.0
	b54 = -212.0 / 729.0
	b61 = 9017.0 / 3168.0
	b62 = -355.0 / 33.0
	b63 = 46732.0 / 5247.0
	b64 = 49.0 / 176.0
	b65 = -5103.0 / 18656.0

	c1 = 35.0 / 384.0
	c3 = 500.0 / 1113.0
	c4 = 125.0 / 192.0
	c5 = -2187.0 / 6784.0
	c6 = 11.0 / 84.0

	dc1 = c1 - 5179.0/57600.0
	dc3 = c3 - 7571.0/16695.0
	dc4 = c4 - 393.0/640.0
	dc5 = c5 - -92097.0/339200.0
	dc6 = c6 - 187.0/2100.0
	dc7 = -1.0 / 40.0
)

type Dopri5 struct {
	safety   float64
	minScale float64
	maxScale float64
}

func NewDopri5() *Dopri5 {
	return &Dopri5{
		safety:   0.9,
		minScale: 0.2,
		maxScale: 10.0,
	}
}

func (d *Dopri5) Step(f deq.RHS, y deq.State, p deq.Params, t, dt float64) deq.State {
	yNew, _, _ := d.StepAdaptive(f, y, p, t, dt, 1e-8, 1e-8)
	return yNew
}

func (d *Dopri5) StepAdaptive(f deq.RHS, y deq.State, p deq.Params, t, dt, atol, rtol float64) (deq.State, float64, float64) {
	n := len(y)

	k1 := f(y, p, t)

	y2 := make(deq.State, n)
	for i := 0; i < n; i++ {
		y2[i] = y[i] + dt*b21*k1[i]
	}
	k2 := f(y2, p, t+a2*dt)

	y3 := make(deq.State, n)
	for i := 0; i < n; i++ {
		y3[i] = y[i] + dt*(b31*k1[i]+b32*k2[i])
	}
	k3 := f(y3, p, t+a3*dt)

	y4 := make(deq.State, n)
	for i := 0; i < n; i++ {
		y4[i] = y[i] + dt*(b41*k1[i]+b42*k2[i]+b43*k3[i])
	}
	k4 := f(y4, p, t+a4*dt)

	y5 := make(deq.State, n)
	for i := 0; i < n; i++ {
		y5[i] = y[i] + dt*(b51*k1[i]+b52*k2[i]+b53*k3[i]+b54*k4[i])
	}
	k5 := f(y5, p, t+a5*dt)

	y6 := make(deq.State, n)
	for i := 0; i < n; i++ {
		y6[i] = y[i] + dt*(b61*k1[i]+b62*k2[i]+b63*k3[i]+b64*k4[i]+b65*k5[i])
	}
	k6 := f(y6, p, t+dt)

	yNew := make(deq.State, n)
	for i := 0; i < n; i++ {
		yNew[i] = y[i] + dt*(c1*k1[i]+c3*k3[i]+c4*k4[i]+c5*k5[i]+c6*k6[i])
	}

	k7 := f(yNew, p, t+dt)

	// Scaled RMS error norm; the step is acceptable when errNorm <= 1.
	errSum := 0.0
	for i := 0; i < n; i++ {
		errEst := dt * (dc1*k1[i] + dc3*k3[i] + dc4*k4[i] + dc5*k5[i] + dc6*k6[i] + dc7*k7[i])
		sk := atol + rtol*math.Max(math.Abs(y[i]), math.Abs(yNew[i]))
		e := errEst / sk
		errSum += e * e
	}
	errNorm := math.Sqrt(errSum / float64(n))

	var dtNext float64
	if errNorm > 1 {
		scale := math.Max(d.minScale, d.safety*math.Pow(errNorm, -0.25))
		dtNext = dt * scale
	} else if errNorm > 0 {
		scale := math.Min(d.maxScale, d.safety*math.Pow(errNorm, -0.2))
		dtNext = dt * scale
	} else {
		dtNext = dt * d.maxScale
	}

	return yNew, errNorm, dtNext
}
