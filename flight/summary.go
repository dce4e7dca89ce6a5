package flight

import "fmt"

// Summary reduces one trajectory to four scalars, measured in the remapped
// throw-facing frame.
type Summary struct {
	DriftLeft  float64 // min lateral displacement, m (negative = left)
	DriftRight float64 // max lateral displacement, m
	MaxHeight  float64 // max height above ground, m
	Distance   float64 // max forward displacement, m
}

// Engine is the contract with the flight physics collaborator. Shoot
// integrates one throw; PostProcess derives the auxiliary charting series
// for a trajectory it produced.
type Engine interface {
	Shoot(p ThrowParameters) (Trajectory, error)
	PostProcess(traj Trajectory, omega float64) (AeroSeries, error)
}

// Simulate runs one throw through the engine and reduces the result. The
// release position is (0, 0, ReleaseHeight). Engine failures propagate
// unmodified; there is no retry or default substitution. The returned
// trajectory is in the engine's frame; the summary is computed after the
// throw-facing remap.
func Simulate(e Engine, p ThrowParameters) (Trajectory, Summary, error) {
	if !p.Disc.Valid() {
		return Trajectory{}, Summary{}, fmt.Errorf("flight: invalid disc type %d", int(p.Disc))
	}

	traj, err := e.Shoot(p)
	if err != nil {
		return Trajectory{}, Summary{}, err
	}
	if traj.Len() == 0 {
		return Trajectory{}, Summary{}, fmt.Errorf("flight: engine returned empty trajectory for disc %s", p.Disc.Code())
	}

	return traj, Summarize(traj.Remapped()), nil
}

// Summarize reduces an already-remapped trajectory to its four summary
// scalars by linear scans. Ties are irrelevant; only the extrema matter.
func Summarize(rem Trajectory) Summary {
	s := Summary{
		DriftLeft:  rem.X[0],
		DriftRight: rem.X[0],
		MaxHeight:  rem.Z[0],
		Distance:   rem.Y[0],
	}
	for i := 1; i < rem.Len(); i++ {
		if rem.X[i] < s.DriftLeft {
			s.DriftLeft = rem.X[i]
		}
		if rem.X[i] > s.DriftRight {
			s.DriftRight = rem.X[i]
		}
		if rem.Z[i] > s.MaxHeight {
			s.MaxHeight = rem.Z[i]
		}
		if rem.Y[i] > s.Distance {
			s.Distance = rem.Y[i]
		}
	}
	return s
}
