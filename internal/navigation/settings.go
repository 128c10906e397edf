package navigation

// Dolly factors and correction factors were tuned by hand for endoscopic
// surfaces at unit scale. They are empirical: a correction does not restore
// the pose from before the blocked step.
const (
	ForwardDollyFactor       = 5.0
	BackwardDollyFactor      = 0.6
	ForwardCorrectionFactor  = 0.3
	BackwardCorrectionFactor = 10.0
)

const (
	// RotationStep is the pitch and azimuth increment in degrees
	RotationStep = 1.0

	// ProbeHalfWidth is the half-width of the box around the camera used to
	// pick the local patch
	ProbeHalfWidth = 1.0

	FocalDistance = 1.0
	NearClip      = 0.5
	FarClip       = 1000.0
)

// Settings holds the tunables of a Controller
type Settings struct {
	ForwardFactor      float64
	BackwardFactor     float64
	ForwardCorrection  float64
	BackwardCorrection float64
	RotationStep       float64
	ProbeHalfWidth     float64
	FocalDistance      float64
	NearClip           float64
	FarClip            float64
}

// DefaultSettings returns the stock navigation settings
func DefaultSettings() Settings {
	return Settings{
		ForwardFactor:      ForwardDollyFactor,
		BackwardFactor:     BackwardDollyFactor,
		ForwardCorrection:  ForwardCorrectionFactor,
		BackwardCorrection: BackwardCorrectionFactor,
		RotationStep:       RotationStep,
		ProbeHalfWidth:     ProbeHalfWidth,
		FocalDistance:      FocalDistance,
		NearClip:           NearClip,
		FarClip:            FarClip,
	}
}
