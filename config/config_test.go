package config

import (
	"math"
	"testing"

	"github.com/fairwaylab/discflight/flight"
)

func TestSliderConversionRoundTrip(t *testing.T) {
	spec := SliderSpec{Min: -45, Max: 90, Default: 0, Step: 0.1}

	for _, v := range []float64{-45, -12.3, 0, 0.1, 15.5, 90} {
		got := spec.FromSlider(spec.ToSlider(v))
		if math.Abs(got-v) > 1e-9 {
			t.Errorf("round trip of %v = %v", v, got)
		}
	}
}

func TestSliderBounds(t *testing.T) {
	spec := SliderSpec{Min: -90, Max: 90, Step: 0.1}

	if got := spec.SliderMin(); got != -900 {
		t.Errorf("SliderMin() = %d, want -900", got)
	}
	if got := spec.SliderMax(); got != 900 {
		t.Errorf("SliderMax() = %d, want 900", got)
	}
	if got := spec.ToSlider(spec.Min); got != spec.SliderMin() {
		t.Errorf("ToSlider(Min) = %d, want %d", got, spec.SliderMin())
	}
	if got := spec.ToSlider(spec.Max); got != spec.SliderMax() {
		t.Errorf("ToSlider(Max) = %d, want %d", got, spec.SliderMax())
	}
}

func TestDefaultParameters(t *testing.T) {
	p := Throw.DefaultParameters()

	want := flight.ThrowParameters{
		Speed:         24.2,
		Omega:         116.8,
		ReleaseHeight: 1.3,
		Pitch:         15.5,
		NoseAngle:     0.0,
		RollAngle:     14.7,
		Disc:          flight.DiscWraith,
	}
	if p != want {
		t.Fatalf("DefaultParameters() = %+v, want %+v", p, want)
	}
}

func TestDefaultsWithinSliderRanges(t *testing.T) {
	specs := []struct {
		name string
		s    SliderSpec
	}{
		{"speed", Throw.Speed},
		{"omega", Throw.Omega},
		{"release height", Throw.ReleaseHeight},
		{"pitch", Throw.Pitch},
		{"nose", Throw.Nose},
		{"roll", Throw.Roll},
	}

	for _, tc := range specs {
		if tc.s.Default < tc.s.Min || tc.s.Default > tc.s.Max {
			t.Errorf("%s default %v outside [%v, %v]", tc.name, tc.s.Default, tc.s.Min, tc.s.Max)
		}
	}
}
