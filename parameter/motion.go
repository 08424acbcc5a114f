package parameter

// Mechanism geometry and timing. Fixed at compile time; there are no
// runtime flags, environment variables, or config files.
const (
	// CrankRadiusX is the radius of the crank driving the horizontal slider
	CrankRadiusX = 3.0
	// CrankRadiusY is the radius of the crank driving the vertical slider
	CrankRadiusY = 2.0

	// OmegaX is the base angular frequency in rad per time unit.
	// OmegaY is derived as GoldenRatio * OmegaX in mechanism.DefaultParams,
	// never set here, so the ratio stays exactly irrational.
	OmegaX = 1.0

	// Phase offsets for the two cranks
	PhaseX = 0.0
	PhaseY = 0.0

	// Duration is the total simulated time span covered by the frame grid
	Duration = 60.0
	// FPS is frames per second; frame count N = Duration * FPS
	FPS = 20

	// TrailCap bounds the on-screen path history
	TrailCap = 8000

	// LoopPlayback replays the precomputed frame set from frame 0 after the
	// last frame instead of halting
	LoopPlayback = true
)
