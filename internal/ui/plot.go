package ui

import "math"

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// renderSeries plots one value per column as a dot chart of the given size,
// with reference lines at 0 and 1 so overshoot reads at a glance. Series
// shorter than width are right-aligned; longer ones show their tail.
func renderSeries(values []float64, width, height int) []string {
	if width < 2 {
		width = 2
	}
	if height < 2 {
		height = 2
	}
	if len(values) > width {
		values = values[len(values)-width:]
	}
	offset := width - len(values)

	lo, hi := 0.0, 1.0
	for _, v := range values {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	// Headroom keeps extremes off the frame edge.
	lo -= 0.05
	hi += 0.05

	rowOf := func(v float64) int {
		r := int(math.Round((hi - v) / (hi - lo) * float64(height-1)))
		if r < 0 {
			r = 0
		}
		if r > height-1 {
			r = height - 1
		}
		return r
	}

	grid := make([][]rune, height)
	for r := range grid {
		grid[r] = make([]rune, width)
		for c := range grid[r] {
			grid[r][c] = ' '
		}
	}
	for c := 0; c < width; c++ {
		grid[rowOf(0)][c] = '╌'
		grid[rowOf(1)][c] = '╌'
	}
	for i, v := range values {
		grid[rowOf(v)][offset+i] = '•'
	}

	lines := make([]string, height)
	for r := range grid {
		lines[r] = string(grid[r])
	}
	return lines
}

// renderField draws the 2D drag field: the target as a cross and the spring
// position as a dot, in unit coordinates with the origin at the bottom
// left. The dot wins when the two coincide.
func renderField(x, y, targetX, targetY float64, width, height int) []string {
	if width < 2 {
		width = 2
	}
	if height < 2 {
		height = 2
	}
	grid := make([][]rune, height)
	for r := range grid {
		grid[r] = make([]rune, width)
		for c := range grid[r] {
			grid[r][c] = ' '
		}
	}

	col := func(v float64) int { return int(clamp01(v) * float64(width-1)) }
	row := func(v float64) int { return int((1 - clamp01(v)) * float64(height-1)) }

	grid[row(targetY)][col(targetX)] = '✛'
	grid[row(y)][col(x)] = '●'

	lines := make([]string, height)
	for r := range grid {
		lines[r] = string(grid[r])
	}
	return lines
}
