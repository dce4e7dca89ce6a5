// Package aero is the reference implementation of the flight.Engine
// collaborator: a simplified rigid-disc flight model with per-model
// coefficient tables. The visualizer pipeline depends only on the
// flight.Engine interface; model fidelity is not part of its contract.
package aero

import (
	"fmt"
	"math"

	"github.com/fairwaylab/discflight/flight"
	"github.com/fairwaylab/discflight/geom"
)

const (
	airDensity = 1.225 // kg/m^3 at sea level
	gravity    = 9.81  // m/s^2

	// minAirspeed guards the aerodynamic terms against degenerate
	// releases (zero launch speed); below it only gravity acts.
	minAirspeed = 1e-6

	// minSpin guards the precession term; an unspun disc does not turn.
	minSpin = 1e-6
)

// Engine integrates disc flights with fixed-step semi-implicit Euler.
type Engine struct {
	Dt      float64 // integration step, s
	MaxTime float64 // integration cap, s
}

// NewEngine returns an engine with the default step and time cap.
func NewEngine() *Engine {
	return &Engine{Dt: 0.01, MaxTime: 30}
}

// Shoot integrates one throw released from (0, 0, ReleaseHeight) and
// returns the sampled trajectory. The world frame is X downrange, Y
// lateral, Z up (the summarizer applies the throw-facing remap afterward).
func (e *Engine) Shoot(p flight.ThrowParameters) (flight.Trajectory, error) {
	model, ok := discModels[p.Disc.Code()]
	if !ok {
		return flight.Trajectory{}, fmt.Errorf("aero: unknown disc model %q", p.Disc.Code())
	}

	pitch := geom.Radians(p.Pitch)
	pos := geom.Vec3{Z: p.ReleaseHeight}
	vel := geom.Vec3{
		X: p.Speed * math.Cos(pitch),
		Z: p.Speed * math.Sin(pitch),
	}

	// Disc-plane normal at release: perpendicular to the launch direction,
	// tilted by the nose angle, then rolled about the launch axis.
	tilt := pitch + geom.Radians(p.NoseAngle)
	n := geom.RotY(-tilt).Apply(geom.Vec3{Z: 1})
	n = rotateAbout(n, geom.Vec3{X: math.Cos(pitch), Z: math.Sin(pitch)}, geom.Radians(p.RollAngle))

	area := model.Area()
	spin := 2 * math.Pi * p.Omega // rad/s

	traj := flight.Trajectory{Disc: p.Disc}
	record := func(t float64) {
		traj.T = append(traj.T, t)
		traj.X = append(traj.X, pos.X)
		traj.Y = append(traj.Y, pos.Y)
		traj.Z = append(traj.Z, pos.Z)
		traj.VX = append(traj.VX, vel.X)
		traj.VY = append(traj.VY, vel.Y)
		traj.VZ = append(traj.VZ, vel.Z)
	}
	record(0)

	for t := e.Dt; t <= e.MaxTime; t += e.Dt {
		acc := geom.Vec3{Z: -gravity}

		vmag := vel.Norm()
		if vmag > minAirspeed {
			vu := vel.Scale(1 / vmag)
			alpha := attackAngle(vu, n)
			q := 0.5 * airDensity * area * vmag * vmag

			// Drag opposes the airspeed; lift acts along the disc
			// normal's component perpendicular to it.
			acc = acc.Add(vu.Scale(-q * model.Drag(alpha) / model.Mass))
			liftDir := n.Sub(vu.Scale(n.Dot(vu)))
			if l := liftDir.Norm(); l > minAirspeed {
				acc = acc.Add(liftDir.Scale(q * model.Lift(alpha) / (l * model.Mass)))
			}

			// Gyroscopic precession: the pitching moment rolls the spin
			// axis about the airspeed direction, producing the turn.
			if spin > minSpin {
				moment := q * model.Diameter * model.Moment(alpha)
				rollRate := moment / (model.SpinInertia() * spin)
				n = rotateAbout(n, vu, rollRate*e.Dt)
			}
		}

		vel = vel.Add(acc.Scale(e.Dt))
		next := pos.Add(vel.Scale(e.Dt))

		if next.Z <= 0 && vel.Z < 0 {
			// Interpolate the ground contact so the final sample sits on
			// the ground plane.
			frac := 1.0
			if dz := pos.Z - next.Z; dz > 0 {
				frac = pos.Z / dz
			}
			pos = pos.Add(next.Sub(pos).Scale(frac))
			pos.Z = 0
			record(t)
			break
		}

		pos = next
		record(t)
	}

	return traj, nil
}

// attackAngle returns the angle of attack in radians: positive when the
// airflow meets the underside of the disc plane.
func attackAngle(vu, n geom.Vec3) float64 {
	d := vu.Dot(n)
	if d > 1 {
		d = 1
	} else if d < -1 {
		d = -1
	}
	return -math.Asin(d)
}

// rotateAbout rotates v about the unit axis by the given angle using the
// Rodrigues formula.
func rotateAbout(v, axis geom.Vec3, angle float64) geom.Vec3 {
	u := axis.Normalized()
	c, s := math.Cos(angle), math.Sin(angle)
	return v.Scale(c).
		Add(u.Cross(v).Scale(s)).
		Add(u.Scale(u.Dot(v) * (1 - c)))
}
