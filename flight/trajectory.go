package flight

// Trajectory is the time series produced by one engine invocation: sample
// positions and velocities at uniform time steps. Immutable once produced;
// Remapped returns a transformed copy rather than mutating in place.
type Trajectory struct {
	Disc DiscType

	T []float64 // seconds since release

	// Position, meters.
	X []float64
	Y []float64
	Z []float64

	// Velocity, m/s.
	VX []float64
	VY []float64
	VZ []float64
}

// Len returns the number of samples.
func (t Trajectory) Len() int {
	return len(t.T)
}

// Remapped rotates the horizontal frame so "forward" matches a throw-facing
// convention: x' = -y, y' = x. Height (z) is unchanged. Velocities get the
// same rotation.
func (t Trajectory) Remapped() Trajectory {
	n := t.Len()
	out := Trajectory{
		Disc: t.Disc,
		T:    append([]float64(nil), t.T...),
		X:    make([]float64, n),
		Y:    make([]float64, n),
		Z:    append([]float64(nil), t.Z...),
		VX:   make([]float64, n),
		VY:   make([]float64, n),
		VZ:   append([]float64(nil), t.VZ...),
	}
	for i := 0; i < n; i++ {
		out.X[i] = -t.Y[i]
		out.Y[i] = t.X[i]
		out.VX[i] = -t.VY[i]
		out.VY[i] = t.VX[i]
	}
	return out
}

// AeroSeries carries the auxiliary per-sample series produced by the
// engine's post-processing step. Pass-through for charting only; it never
// feeds the flight summary.
type AeroSeries struct {
	Arc      []float64 // cumulative arc length, m
	Alpha    []float64 // angle of attack, deg
	Beta     []float64 // side-slip angle, deg
	Lift     []float64 // lift force, N
	Drag     []float64 // drag force, N
	Moment   []float64 // pitching moment, N*m
	RollRate []float64 // precession-driven roll rate, deg/s
}
