// Package world provides the geometry of the exploration field.
package world

const (
	// wanderMargin keeps wandering NPCs away from the field edges.
	wanderMargin = 50
)

// Direction is one of the four cardinal walking directions.
type Direction int

const (
	DirNone Direction = iota
	DirLeft
	DirRight
	DirUp
	DirDown
)

// Cardinals lists the four walkable directions in a fixed order for random picks.
var Cardinals = [4]Direction{DirLeft, DirRight, DirUp, DirDown}

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "none"
	}
}

// Delta returns the unit step for the direction.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	default:
		return 0, 0
	}
}

// Horizontal reports whether the direction changes which way a sprite faces.
func (d Direction) Horizontal() bool {
	return d == DirLeft || d == DirRight
}

// Field is the explore-mode play area. The band above Top is scenery the
// player cannot walk into.
type Field struct {
	Width  int
	Height int
	Top    int
}

// NewField creates a field of the given viewport size.
func NewField(width, height, top int) *Field {
	return &Field{
		Width:  width,
		Height: height,
		Top:    top,
	}
}

// PlayerBounds returns where a player sprite of the given size may stand.
func (f *Field) PlayerBounds(w, h int) Bounds {
	return Bounds{
		MinX: 0,
		MinY: f.Top,
		MaxX: f.Width - w,
		MaxY: f.Height - h,
	}
}

// WanderBounds returns where a wandering NPC sprite of the given size may walk.
func (f *Field) WanderBounds(w, h int) Bounds {
	return Bounds{
		MinX: wanderMargin,
		MinY: f.Top + wanderMargin,
		MaxX: f.Width - w - wanderMargin,
		MaxY: f.Height - h - wanderMargin,
	}
}

// MovePlayer applies one frame of movement and clamps the result. Diagonal
// input is two independent axis moves, not normalized.
func (f *Field) MovePlayer(x, y, w, h, dx, dy, speed int) (int, int) {
	return f.PlayerBounds(w, h).Clamp(x+dx*speed, y+dy*speed)
}

// InRange reports whether two x positions are closer than dist. Only the
// horizontal axis counts.
func InRange(ax, bx, dist int) bool {
	d := ax - bx
	if d < 0 {
		d = -d
	}
	return d < dist
}
