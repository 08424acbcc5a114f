package mechanism

import (
	"math"

	"github.com/lixenwraith/yoke-trace/parameter"
)

// GoldenRatio is (1+√5)/2. Using it as the frequency ratio makes ωy/ωx
// irrational, so the traced path is quasi-periodic: it never exactly
// retraces, though it comes arbitrarily close and is dense in the bounding
// rectangle as t grows.
var GoldenRatio = (1 + math.Sqrt(5)) / 2

// Point is a 2D position in mechanism space
type Point struct {
	X, Y float64
}

// Params holds the motion parameters of the dual Scotch-yoke: two crank
// radii, two angular frequencies, two phase offsets. Built once at startup
// and never mutated.
type Params struct {
	Rx, Ry         float64
	OmegaX, OmegaY float64
	PhiX, PhiY     float64
}

// DefaultParams returns the fixed mechanism configuration, deriving OmegaY
// from the golden ratio so the frequency ratio is irrational.
func DefaultParams() Params {
	return Params{
		Rx:     parameter.CrankRadiusX,
		Ry:     parameter.CrankRadiusY,
		OmegaX: parameter.OmegaX,
		OmegaY: GoldenRatio * parameter.OmegaX,
		PhiX:   parameter.PhaseX,
		PhiY:   parameter.PhaseY,
	}
}

// CrankPinX returns the pin of the crank driving the horizontal slider,
// rotating about the origin
func (p Params) CrankPinX(t float64) Point {
	a := p.OmegaX*t + p.PhiX
	return Point{p.Rx * math.Cos(a), p.Rx * math.Sin(a)}
}

// CrankPinY returns the pin of the crank driving the vertical slider
func (p Params) CrankPinY(t float64) Point {
	a := p.OmegaY*t + p.PhiY
	return Point{p.Ry * math.Cos(a), p.Ry * math.Sin(a)}
}

// TracePoint returns the intersection of the two sliders, which equals the
// slider setpoints: x from the horizontal crank, y from the vertical one
func (p Params) TracePoint(t float64) Point {
	return Point{
		X: p.Rx * math.Cos(p.OmegaX*t+p.PhiX),
		Y: p.Ry * math.Sin(p.OmegaY*t+p.PhiY),
	}
}
