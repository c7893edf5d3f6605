package core

// Area represents a rectangular target region
type Area struct {
	X, Y          int // Top-left corner
	Width, Height int // Dimensions (minimum 1x1)
}

// Contains reports whether the cell lies inside the area
func (a Area) Contains(x, y int) bool {
	return x >= a.X && x < a.X+a.Width && y >= a.Y && y < a.Y+a.Height
}

// Bottom returns the last row inside the area
func (a Area) Bottom() int {
	return a.Y + a.Height - 1
}

// CenterX returns the middle column
func (a Area) CenterX() int {
	return a.X + a.Width/2
}
