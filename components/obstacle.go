package components

// ObstacleKind names an obstacle variant; the active set depends on the theme
type ObstacleKind string

// Highway theme kinds
const (
	KindCar       ObstacleKind = "CAR"
	KindTruck     ObstacleKind = "TRUCK"
	KindRampTruck ObstacleKind = "RAMP_TRUCK"
)

// Subway theme kinds
const (
	KindBarrier ObstacleKind = "BARRIER"
	KindTrain   ObstacleKind = "TRAIN"
	KindRamp    ObstacleKind = "RAMP"
)

// ObstacleComponent is a hazard on the track
// Z is distance to the player: negative is ahead, increases every tick
type ObstacleComponent struct {
	ID   string
	Kind ObstacleKind
	Lane Lane
	Z    float64
}
