package components

// ChaserComponent is the pursuer running behind the player
// Display only: it never collides
type ChaserComponent struct {
	X float64
	Z float64
}
