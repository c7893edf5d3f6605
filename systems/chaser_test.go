package systems

import (
	"math"
	"testing"

	"github.com/ajikmega/GAME-SURF/components"
	"github.com/ajikmega/GAME-SURF/constants"
)

func TestChaserFollowsLaneWithLag(t *testing.T) {
	w, _ := newTestWorld(1)
	c := NewChaserSystem()
	w.Player.Lane = components.LaneRight

	c.Update(w, constants.FrameUpdateInterval)
	first := w.Chaser.X
	if math.Abs(first-constants.LaneWidth*constants.ChaserFollowRate) > 1e-12 {
		t.Errorf("Expected first step %v, got %v", constants.LaneWidth*constants.ChaserFollowRate, first)
	}
	if w.Chaser.Z != constants.ChaserZ {
		t.Errorf("Expected chaser z %v, got %v", constants.ChaserZ, w.Chaser.Z)
	}

	for i := 0; i < 300; i++ {
		c.Update(w, constants.FrameUpdateInterval)
	}
	if math.Abs(w.Chaser.X-constants.LaneWidth) > 1e-3 {
		t.Errorf("Chaser did not converge on lane offset, at %v", w.Chaser.X)
	}
}
