package world

// Bounds is an inclusive range of allowed top-left positions.
type Bounds struct {
	MinX, MinY int
	MaxX, MaxY int
}

// Clamp returns the nearest point inside the bounds. If the bounds are
// inverted on an axis (the sprite is larger than the field) the minimum wins.
func (b Bounds) Clamp(x, y int) (int, int) {
	return clamp(x, b.MinX, b.MaxX), clamp(y, b.MinY, b.MaxY)
}

// Step moves one pixel in dir. Only the moved axis is checked, so a
// character that starts outside the bounds on the other axis can still walk.
// It reports false, and returns the input unchanged, when the step would
// leave the bounds.
func (b Bounds) Step(x, y int, dir Direction) (int, int, bool) {
	dx, dy := dir.Delta()
	nx, ny := x+dx, y+dy
	switch {
	case dx < 0 && nx < b.MinX,
		dx > 0 && nx > b.MaxX,
		dy < 0 && ny < b.MinY,
		dy > 0 && ny > b.MaxY,
		dx == 0 && dy == 0:
		return x, y, false
	}
	return nx, ny, true
}

func clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
