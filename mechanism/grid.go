package mechanism

// TimeGrid returns n = duration*fps evenly spaced samples over [0, duration],
// first sample 0 and last sample duration. Generated once at startup; the
// frame loop indexes into it and never recomputes samples, so evaluating the
// same frame twice sees the bit-identical t.
func TimeGrid(duration float64, fps int) []float64 {
	n := int(duration * float64(fps))
	if n <= 0 {
		return nil
	}
	grid := make([]float64, n)
	if n == 1 {
		grid[0] = 0
		return grid
	}
	step := duration / float64(n-1)
	for i := range grid {
		grid[i] = float64(i) * step
	}
	// Eliminate accumulated rounding on the endpoint
	grid[n-1] = duration
	return grid
}
