package geom

// Camera projects world-space points onto the screen for the trajectory
// plot. The world frame is X lateral, Y downrange, Z up; the camera orbits
// the target point at a fixed distance controlled by Zoom.
type Camera struct {
	Yaw    float64 // orbit angle about the world Z axis, radians
	Pitch  float64 // elevation angle, radians
	Zoom   float64 // pixels per world meter
	Target Vec3    // world point the camera looks at

	// Screen-space center of the viewport, in pixels.
	CenterX float64
	CenterY float64
}

// Project maps a world point to screen coordinates. The returned depth
// grows with distance from the viewer and can be used for ordering.
func (c *Camera) Project(p Vec3) (sx, sy, depth float64) {
	rel := p.Sub(c.Target)

	// Orbit: yaw about Z, then tilt about X.
	r := RotX(c.Pitch).Mul(RotZ(c.Yaw))
	v := r.Apply(rel)

	// After rotation the view axes are: v.X right, v.Z up, v.Y into the
	// screen. Screen Y grows downward.
	sx = c.CenterX + v.X*c.Zoom
	sy = c.CenterY - v.Z*c.Zoom
	depth = v.Y
	return sx, sy, depth
}
