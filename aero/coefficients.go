package aero

import "math"

// discModel holds the physical and aerodynamic description of one disc
// model, keyed by the same internal codes the catalog uses. Lift and
// pitching moment are linear in angle of attack; drag is quadratic about
// the minimum-drag angle. Values are tuned for plausible flight shapes per
// model class (overstable vs understable), not wind-tunnel fidelity.
type discModel struct {
	Mass     float64 // kg
	Diameter float64 // m

	CL0, CLA     float64 // lift: CL0 + CLA*alpha (alpha in radians)
	CD0, CDA     float64 // drag: CD0 + CDA*(alpha-Alpha0)^2
	Alpha0       float64 // minimum-drag angle of attack, radians
	CM0, CMA     float64 // pitching moment: CM0 + CMA*alpha
	SpinInertiaK float64 // Izz = K * m * r^2
}

func (d discModel) Area() float64 {
	r := d.Diameter / 2
	return math.Pi * r * r
}

func (d discModel) SpinInertia() float64 {
	r := d.Diameter / 2
	return d.SpinInertiaK * d.Mass * r * r
}

func (d discModel) Lift(alpha float64) float64 {
	return d.CL0 + d.CLA*alpha
}

func (d discModel) Drag(alpha float64) float64 {
	da := alpha - d.Alpha0
	return d.CD0 + d.CDA*da*da
}

func (d discModel) Moment(alpha float64) float64 {
	return d.CM0 + d.CMA*alpha
}

// discModels is the engine-side catalog, keyed by internal model code.
var discModels = map[string]discModel{
	// Distance driver, stable (Innova Wraith).
	"dd2": {
		Mass: 0.175, Diameter: 0.211,
		CL0: 0.13, CLA: 1.91,
		CD0: 0.057, CDA: 0.69, Alpha0: math.Pi * -4 / 180,
		CM0: -0.015, CMA: 0.43,
		SpinInertiaK: 0.60,
	},
	// Overstable fairway driver (Innova Firebird).
	"cd1": {
		Mass: 0.175, Diameter: 0.211,
		CL0: 0.10, CLA: 1.75,
		CD0: 0.067, CDA: 0.75, Alpha0: math.Pi * -3 / 180,
		CM0: -0.028, CMA: 0.40,
		SpinInertiaK: 0.62,
	},
	// Understable control driver (Innova Roadrunner).
	"cd5": {
		Mass: 0.171, Diameter: 0.211,
		CL0: 0.16, CLA: 2.02,
		CD0: 0.060, CDA: 0.66, Alpha0: math.Pi * -5 / 180,
		CM0: 0.004, CMA: 0.46,
		SpinInertiaK: 0.58,
	},
	// Neutral fairway driver (Innova Fairway Driver).
	"fd2": {
		Mass: 0.172, Diameter: 0.212,
		CL0: 0.14, CLA: 1.85,
		CD0: 0.062, CDA: 0.70, Alpha0: math.Pi * -4 / 180,
		CM0: -0.008, CMA: 0.44,
		SpinInertiaK: 0.59,
	},
}
