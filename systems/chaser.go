package systems

import (
	"time"

	"github.com/ajikmega/GAME-SURF/constants"
	"github.com/ajikmega/GAME-SURF/engine"
)

// ChaserSystem eases the pursuer toward the player's lane with a visible lag
type ChaserSystem struct{}

func NewChaserSystem() *ChaserSystem {
	return &ChaserSystem{}
}

func (s *ChaserSystem) Priority() int {
	return constants.PriorityChaser
}

func (s *ChaserSystem) Update(w *engine.World, dt time.Duration) {
	c := &w.Chaser
	target := w.Player.TargetOffset()
	c.X += (target - c.X) * constants.ChaserFollowRate
	c.Z = constants.ChaserZ
}
