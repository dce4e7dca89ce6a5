package geom

import (
	"math"
	"testing"
)

const eps = 1e-9

func approx(a, b Vec3) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps && math.Abs(a.Z-b.Z) < eps
}

func TestRotations(t *testing.T) {
	cases := []struct {
		name string
		m    Mat3
		in   Vec3
		want Vec3
	}{
		{"RotZ quarter", RotZ(math.Pi / 2), Vec3{X: 1}, Vec3{Y: 1}},
		{"RotX quarter", RotX(math.Pi / 2), Vec3{Y: 1}, Vec3{Z: 1}},
		{"RotY quarter", RotY(math.Pi / 2), Vec3{Z: 1}, Vec3{X: 1}},
		{"RotZ half", RotZ(math.Pi), Vec3{X: 1, Y: 2}, Vec3{X: -1, Y: -2}},
		{"identity", RotZ(0), Vec3{X: 3, Y: -2, Z: 1}, Vec3{X: 3, Y: -2, Z: 1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.m.Apply(tc.in)
			if !approx(got, tc.want) {
				t.Fatalf("Apply(%+v) = %+v, want %+v", tc.in, got, tc.want)
			}
		})
	}
}

func TestRotationPreservesLength(t *testing.T) {
	v := Vec3{X: 2, Y: -3, Z: 5}
	r := RotX(0.7).Mul(RotZ(-1.3)).Apply(v)
	if math.Abs(r.Norm()-v.Norm()) > eps {
		t.Fatalf("rotation changed length: %v -> %v", v.Norm(), r.Norm())
	}
}

func TestMatMul(t *testing.T) {
	// Rotating a quarter turn twice about Z equals a half turn.
	half := RotZ(math.Pi / 2).Mul(RotZ(math.Pi / 2))
	got := half.Apply(Vec3{X: 1})
	if !approx(got, Vec3{X: -1}) {
		t.Fatalf("composed rotation = %+v, want (-1, 0, 0)", got)
	}
}

func TestCrossOrthogonal(t *testing.T) {
	a := Vec3{X: 1, Y: 2, Z: 3}
	b := Vec3{X: -2, Y: 0.5, Z: 1}
	c := a.Cross(b)
	if math.Abs(c.Dot(a)) > eps || math.Abs(c.Dot(b)) > eps {
		t.Fatalf("cross product not orthogonal to operands: %+v", c)
	}
}

func TestNormalizedZeroVector(t *testing.T) {
	if got := (Vec3{}).Normalized(); got != (Vec3{}) {
		t.Fatalf("Normalized() of zero vector = %+v, want zero", got)
	}
}

func TestCameraProjectCenter(t *testing.T) {
	cam := &Camera{
		Yaw: 0.3, Pitch: -0.8, Zoom: 5,
		Target:  Vec3{Y: 30},
		CenterX: 400, CenterY: 200,
	}

	// The target always lands at the viewport center, any orientation.
	sx, sy, _ := cam.Project(cam.Target)
	if math.Abs(sx-400) > eps || math.Abs(sy-200) > eps {
		t.Fatalf("target projected to (%v, %v), want (400, 200)", sx, sy)
	}
}

func TestCameraProjectHeightGoesUp(t *testing.T) {
	cam := &Camera{
		Zoom:    4,
		CenterX: 100, CenterY: 100,
	}

	// With a level camera, higher world points appear higher on screen
	// (smaller y).
	_, syLow, _ := cam.Project(Vec3{Z: 0})
	_, syHigh, _ := cam.Project(Vec3{Z: 10})
	if syHigh >= syLow {
		t.Fatalf("height projected downward: z=0 -> %v, z=10 -> %v", syLow, syHigh)
	}
}

func TestCameraZoomScales(t *testing.T) {
	cam := &Camera{Zoom: 2, CenterX: 0, CenterY: 0}
	sx1, _, _ := cam.Project(Vec3{X: 10})
	cam.Zoom = 4
	sx2, _, _ := cam.Project(Vec3{X: 10})
	if math.Abs(sx2-2*sx1) > eps {
		t.Fatalf("doubling zoom: offset %v -> %v, want double", sx1, sx2)
	}
}
