package flight

// ThrowParameters holds the six scalar throw parameters plus the selected
// disc. Fields are independent: changing one never constrains another.
// Range enforcement is owned by the input layer (the sliders); this type is
// pure data assembly.
type ThrowParameters struct {
	Speed         float64 // launch speed, m/s
	Omega         float64 // spin rate, rev/s
	ReleaseHeight float64 // release height above ground, m
	Pitch         float64 // release angle from the horizon, deg
	NoseAngle     float64 // leading-edge up/down tilt, deg
	RollAngle     float64 // hyzer/anhyzer tilt, deg
	Disc          DiscType
}
