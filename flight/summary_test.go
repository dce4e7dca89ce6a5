package flight

import (
	"errors"
	"math"
	"testing"
)

// fakeEngine returns a scripted trajectory so pipeline behavior can be
// tested independently of any physics model.
type fakeEngine struct {
	traj Trajectory
	err  error

	calls int
}

func (f *fakeEngine) Shoot(p ThrowParameters) (Trajectory, error) {
	f.calls++
	if f.err != nil {
		return Trajectory{}, f.err
	}
	t := f.traj
	t.Disc = p.Disc
	return t, nil
}

func (f *fakeEngine) PostProcess(traj Trajectory, omega float64) (AeroSeries, error) {
	return AeroSeries{}, nil
}

func scriptedTrajectory() Trajectory {
	// Engine frame: X downrange, Y lateral, Z up.
	return Trajectory{
		T:  []float64{0, 1, 2, 3},
		X:  []float64{0, 10, 25, 40},
		Y:  []float64{0, 2, -1, -5},
		Z:  []float64{1.3, 4, 3, 0},
		VX: []float64{20, 15, 14, 12},
		VY: []float64{0, 1, -2, -3},
		VZ: []float64{5, 1, -2, -4},
	}
}

func defaultParams() ThrowParameters {
	return ThrowParameters{
		Speed:         24.2,
		Omega:         116.8,
		ReleaseHeight: 1.3,
		Pitch:         15.5,
		NoseAngle:     0.0,
		RollAngle:     14.7,
		Disc:          DiscWraith,
	}
}

func TestSimulateSummary(t *testing.T) {
	eng := &fakeEngine{traj: scriptedTrajectory()}

	_, sum, err := Simulate(eng, defaultParams())
	if err != nil {
		t.Fatalf("Simulate() error = %v", err)
	}

	// Remapped lateral: x' = -y -> {0, -2, 1, 5}; forward: y' = x.
	if sum.DriftLeft != -2 {
		t.Errorf("DriftLeft = %v, want -2", sum.DriftLeft)
	}
	if sum.DriftRight != 5 {
		t.Errorf("DriftRight = %v, want 5", sum.DriftRight)
	}
	if sum.MaxHeight != 4 {
		t.Errorf("MaxHeight = %v, want 4", sum.MaxHeight)
	}
	if sum.Distance != 40 {
		t.Errorf("Distance = %v, want 40", sum.Distance)
	}
}

func TestSimulateDeterministic(t *testing.T) {
	eng := &fakeEngine{traj: scriptedTrajectory()}
	p := defaultParams()

	traj1, sum1, err := Simulate(eng, p)
	if err != nil {
		t.Fatalf("first Simulate() error = %v", err)
	}
	traj2, sum2, err := Simulate(eng, p)
	if err != nil {
		t.Fatalf("second Simulate() error = %v", err)
	}

	if sum1 != sum2 {
		t.Fatalf("summaries differ: %+v vs %+v", sum1, sum2)
	}
	for i := range traj1.X {
		if traj1.X[i] != traj2.X[i] || traj1.Y[i] != traj2.Y[i] || traj1.Z[i] != traj2.Z[i] {
			t.Fatalf("trajectories differ at sample %d", i)
		}
	}
}

func TestSimulatePropagatesEngineError(t *testing.T) {
	sentinel := errors.New("unstable integration")
	eng := &fakeEngine{err: sentinel}

	_, _, err := Simulate(eng, defaultParams())
	if !errors.Is(err, sentinel) {
		t.Fatalf("Simulate() error = %v, want %v unmodified", err, sentinel)
	}
}

func TestSimulateRejectsInvalidDisc(t *testing.T) {
	eng := &fakeEngine{traj: scriptedTrajectory()}
	p := defaultParams()
	p.Disc = DiscType(99)

	if _, _, err := Simulate(eng, p); err == nil {
		t.Fatal("Simulate() with invalid disc: expected error")
	}
	if eng.calls != 0 {
		t.Fatalf("engine invoked %d times for invalid disc, want 0", eng.calls)
	}
}

func TestSimulateRejectsEmptyTrajectory(t *testing.T) {
	eng := &fakeEngine{traj: Trajectory{}}
	if _, _, err := Simulate(eng, defaultParams()); err == nil {
		t.Fatal("Simulate() with empty trajectory: expected error")
	}
}

func TestRemapIsQuarterRotation(t *testing.T) {
	traj := scriptedTrajectory()
	rem := traj.Remapped()

	for i := range traj.X {
		if rem.X[i] != -traj.Y[i] || rem.Y[i] != traj.X[i] {
			t.Fatalf("sample %d: remap = (%v, %v), want (%v, %v)",
				i, rem.X[i], rem.Y[i], -traj.Y[i], traj.X[i])
		}
		if rem.Z[i] != traj.Z[i] {
			t.Fatalf("sample %d: height changed by remap", i)
		}
	}

	// Applying the remap twice is a 180 degree rotation: (-x, -y, z).
	twice := rem.Remapped()
	for i := range traj.X {
		if twice.X[i] != -traj.X[i] || twice.Y[i] != -traj.Y[i] || twice.Z[i] != traj.Z[i] {
			t.Fatalf("sample %d: double remap = (%v, %v, %v), want (%v, %v, %v)",
				i, twice.X[i], twice.Y[i], twice.Z[i], -traj.X[i], -traj.Y[i], traj.Z[i])
		}
	}
}

func TestRemapDoesNotMutateOriginal(t *testing.T) {
	traj := scriptedTrajectory()
	wantY := append([]float64(nil), traj.Y...)

	_ = traj.Remapped()

	for i := range wantY {
		if traj.Y[i] != wantY[i] {
			t.Fatalf("Remapped mutated the source trajectory at sample %d", i)
		}
	}
}

func TestSummarizeOrdering(t *testing.T) {
	cases := []struct {
		name string
		x    []float64
	}{
		{"mixed", []float64{0, -3, 2, 1}},
		{"constant", []float64{1.5, 1.5, 1.5}},
		{"monotonic", []float64{0, 1, 2, 3}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			n := len(tc.x)
			rem := Trajectory{
				T: make([]float64, n),
				X: tc.x,
				Y: make([]float64, n),
				Z: make([]float64, n),
			}
			sum := Summarize(rem)
			if sum.DriftLeft > sum.DriftRight {
				t.Fatalf("DriftLeft %v > DriftRight %v", sum.DriftLeft, sum.DriftRight)
			}
		})
	}
}

func TestSummarizeDistanceCoversStart(t *testing.T) {
	rem := scriptedTrajectory().Remapped()
	sum := Summarize(rem)
	if sum.Distance < rem.Y[0] {
		t.Fatalf("Distance %v < forward position at release %v", sum.Distance, rem.Y[0])
	}
	if sum.MaxHeight < minOf(rem.Z) {
		t.Fatalf("MaxHeight %v below minimum height", sum.MaxHeight)
	}
}

func minOf(xs []float64) float64 {
	m := math.Inf(1)
	for _, v := range xs {
		if v < m {
			m = v
		}
	}
	return m
}
