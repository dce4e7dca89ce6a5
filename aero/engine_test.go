package aero

import (
	"math"
	"testing"

	"github.com/fairwaylab/discflight/flight"
)

func defaultThrow() flight.ThrowParameters {
	return flight.ThrowParameters{
		Speed:         24.2,
		Omega:         116.8,
		ReleaseHeight: 1.3,
		Pitch:         15.5,
		NoseAngle:     0.0,
		RollAngle:     14.7,
		Disc:          flight.DiscWraith,
	}
}

func finite(vs []float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func TestShootDefaultScenario(t *testing.T) {
	eng := NewEngine()

	traj, sum, err := flight.Simulate(eng, defaultThrow())
	if err != nil {
		t.Fatalf("Simulate() error = %v", err)
	}
	if traj.Len() == 0 {
		t.Fatal("empty trajectory for default throw")
	}
	for _, series := range [][]float64{traj.X, traj.Y, traj.Z, traj.VX, traj.VY, traj.VZ} {
		if !finite(series) {
			t.Fatal("non-finite sample in trajectory")
		}
	}
	for _, v := range []float64{sum.DriftLeft, sum.DriftRight, sum.MaxHeight, sum.Distance} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("non-finite summary field: %+v", sum)
		}
	}

	// A real throw travels a plausible distance and comes back down.
	if sum.Distance < 20 {
		t.Errorf("Distance = %.1f m, implausibly short for a 24 m/s throw", sum.Distance)
	}
	if last := traj.Z[traj.Len()-1]; last != 0 {
		t.Errorf("final height = %v, want ground contact at 0", last)
	}
	if sum.MaxHeight < 1.3 {
		t.Errorf("MaxHeight = %.2f, below the release height for an upward throw", sum.MaxHeight)
	}
}

func TestShootZeroSpeed(t *testing.T) {
	eng := NewEngine()
	p := defaultThrow()
	p.Speed = 0

	traj, sum, err := flight.Simulate(eng, p)
	if err != nil {
		t.Fatalf("Simulate() error = %v", err)
	}
	if traj.Len() == 0 {
		t.Fatal("empty trajectory for zero-speed release")
	}
	for _, series := range [][]float64{traj.X, traj.Y, traj.Z} {
		if !finite(series) {
			t.Fatal("non-finite sample in zero-speed trajectory")
		}
	}
	// The disc drops in place: essentially no forward travel.
	if sum.Distance > 1 {
		t.Errorf("Distance = %.2f m for a zero-speed release, want near 0", sum.Distance)
	}
}

func TestShootZeroSpin(t *testing.T) {
	eng := NewEngine()
	p := defaultThrow()
	p.Omega = 0

	traj, _, err := flight.Simulate(eng, p)
	if err != nil {
		t.Fatalf("Simulate() error = %v", err)
	}
	if !finite(traj.X) || !finite(traj.Y) || !finite(traj.Z) {
		t.Fatal("non-finite sample in zero-spin trajectory")
	}
}

func TestShootDeterministic(t *testing.T) {
	eng := NewEngine()
	p := defaultThrow()

	a, err := eng.Shoot(p)
	if err != nil {
		t.Fatalf("first Shoot() error = %v", err)
	}
	b, err := eng.Shoot(p)
	if err != nil {
		t.Fatalf("second Shoot() error = %v", err)
	}
	if a.Len() != b.Len() {
		t.Fatalf("lengths differ: %d vs %d", a.Len(), b.Len())
	}
	for i := 0; i < a.Len(); i++ {
		if a.X[i] != b.X[i] || a.Y[i] != b.Y[i] || a.Z[i] != b.Z[i] {
			t.Fatalf("samples differ at index %d", i)
		}
	}
}

func TestShootAllCatalogDiscs(t *testing.T) {
	eng := NewEngine()
	summaries := map[flight.DiscType]flight.Summary{}

	for _, d := range flight.DiscTypes() {
		p := defaultThrow()
		p.Disc = d
		_, sum, err := flight.Simulate(eng, p)
		if err != nil {
			t.Fatalf("Simulate(%s) error = %v", d.DisplayName(), err)
		}
		summaries[d] = sum
	}

	// Different aerodynamic tables are allowed (and expected) to produce
	// different flights for identical release parameters.
	if summaries[flight.DiscFirebird] == summaries[flight.DiscRoadrunner] {
		t.Error("overstable and understable discs produced identical summaries")
	}
}

func TestShootUnknownDisc(t *testing.T) {
	eng := NewEngine()
	p := defaultThrow()
	p.Disc = flight.DiscType(99)

	if _, err := eng.Shoot(p); err == nil {
		t.Fatal("Shoot() with unknown disc model: expected error")
	}
}

func TestPostProcessSeries(t *testing.T) {
	eng := NewEngine()
	p := defaultThrow()

	traj, err := eng.Shoot(p)
	if err != nil {
		t.Fatalf("Shoot() error = %v", err)
	}
	s, err := eng.PostProcess(traj, p.Omega)
	if err != nil {
		t.Fatalf("PostProcess() error = %v", err)
	}

	n := traj.Len()
	for name, series := range map[string][]float64{
		"Arc": s.Arc, "Alpha": s.Alpha, "Beta": s.Beta,
		"Lift": s.Lift, "Drag": s.Drag, "Moment": s.Moment, "RollRate": s.RollRate,
	} {
		if len(series) != n {
			t.Errorf("%s: length %d, want %d", name, len(series), n)
		}
		if !finite(series) {
			t.Errorf("%s: non-finite value", name)
		}
	}

	for i := 1; i < n; i++ {
		if s.Arc[i] < s.Arc[i-1] {
			t.Fatalf("arc length decreased at sample %d", i)
		}
	}
}

func TestPostProcessZeroSpin(t *testing.T) {
	eng := NewEngine()
	p := defaultThrow()

	traj, err := eng.Shoot(p)
	if err != nil {
		t.Fatalf("Shoot() error = %v", err)
	}
	s, err := eng.PostProcess(traj, 0)
	if err != nil {
		t.Fatalf("PostProcess() error = %v", err)
	}
	for _, v := range s.RollRate {
		if v != 0 {
			t.Fatal("roll rate must be zero for an unspun disc")
		}
	}
}

func TestPostProcessEmptyTrajectory(t *testing.T) {
	eng := NewEngine()
	if _, err := eng.PostProcess(flight.Trajectory{Disc: flight.DiscWraith}, 100); err == nil {
		t.Fatal("PostProcess() with empty trajectory: expected error")
	}
}
