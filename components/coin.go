package components

// CoinComponent is a collectible on the track, sharing the obstacle z lifecycle
type CoinComponent struct {
	ID   string
	Lane Lane
	Z    float64
}
