package aero

import (
	"fmt"
	"math"

	"github.com/fairwaylab/discflight/flight"
	"github.com/fairwaylab/discflight/geom"
)

// PostProcess derives the auxiliary charting series for a trajectory this
// engine produced. The disc attitude is reconstructed from the flight path
// under the gyro-stable assumption (the spin axis holds the release
// attitude relative to the initial airspeed), which is sufficient for the
// science charts; none of this feeds the flight summary.
func (e *Engine) PostProcess(traj flight.Trajectory, omega float64) (flight.AeroSeries, error) {
	model, ok := discModels[traj.Disc.Code()]
	if !ok {
		return flight.AeroSeries{}, fmt.Errorf("aero: unknown disc model %q", traj.Disc.Code())
	}
	n := traj.Len()
	if n == 0 {
		return flight.AeroSeries{}, fmt.Errorf("aero: empty trajectory")
	}

	s := flight.AeroSeries{
		Arc:      make([]float64, n),
		Alpha:    make([]float64, n),
		Beta:     make([]float64, n),
		Lift:     make([]float64, n),
		Drag:     make([]float64, n),
		Moment:   make([]float64, n),
		RollRate: make([]float64, n),
	}

	area := model.Area()
	spin := 2 * math.Pi * omega
	gamma0 := pathAngle(traj.VX[0], traj.VY[0], traj.VZ[0])
	heading0 := math.Atan2(traj.VY[0], traj.VX[0])

	for i := 0; i < n; i++ {
		if i > 0 {
			step := geom.Vec3{
				X: traj.X[i] - traj.X[i-1],
				Y: traj.Y[i] - traj.Y[i-1],
				Z: traj.Z[i] - traj.Z[i-1],
			}
			s.Arc[i] = s.Arc[i-1] + step.Norm()
		}

		v := geom.Vec3{X: traj.VX[i], Y: traj.VY[i], Z: traj.VZ[i]}
		vmag := v.Norm()
		if vmag <= minAirspeed {
			continue
		}

		alpha := gamma0 - pathAngle(v.X, v.Y, v.Z)
		beta := math.Atan2(v.Y, v.X) - heading0

		q := 0.5 * airDensity * area * vmag * vmag
		moment := q * model.Diameter * model.Moment(alpha)

		s.Alpha[i] = alpha * 180 / math.Pi
		s.Beta[i] = beta * 180 / math.Pi
		s.Lift[i] = q * model.Lift(alpha)
		s.Drag[i] = q * model.Drag(alpha)
		s.Moment[i] = moment
		if spin > minSpin {
			s.RollRate[i] = moment / (model.SpinInertia() * spin) * 180 / math.Pi
		}
	}

	return s, nil
}

// pathAngle returns the flight-path elevation angle in radians.
func pathAngle(vx, vy, vz float64) float64 {
	return math.Atan2(vz, math.Hypot(vx, vy))
}
