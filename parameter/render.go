package parameter

// Rendering tuning for the tcell scene
const (
	// CellAspect compensates terminal cells being roughly twice as tall as
	// wide: world X spans CellAspect columns per row of world Y
	CellAspect = 2.0

	// ViewMargin is world-space padding added around the crank envelope when
	// fitting the scene to the screen
	ViewMargin = 1.5

	// HUDRows reserved at the bottom of the screen
	HUDRows = 1

	// TrailFadeFloor is the dimmest intensity the oldest visible trail point
	// fades to, as a fraction of full brightness
	TrailFadeFloor = 0.15
)

// Audio tuning
const (
	SampleRate = 44100

	// LoopChimeFreq sounds when playback wraps to frame 0
	LoopChimeFreq = 880.0
	// PauseChimeFreq sounds on pause toggle
	PauseChimeFreq = 440.0

	ChimeMillis = 60
)
