package events

import "strings"

var typeToName = map[EventType]string{
	EventRunStarted:      "RunStarted",
	EventObstacleSpawned: "ObstacleSpawned",
	EventCoinSpawned:     "CoinSpawned",
	EventCoinCollected:   "CoinCollected",
	EventCollision:       "Collision",
	EventScoreUpdate:     "ScoreUpdate",
	EventGameOver:        "GameOver",
}

// String returns the registered name of the event type
func (et EventType) String() string {
	if name, ok := typeToName[et]; ok {
		return name
	}
	return "Unknown"
}

// GetEventType returns the EventType for a given name, case-insensitive
func GetEventType(name string) (EventType, bool) {
	for et, n := range typeToName {
		if strings.EqualFold(n, name) {
			return et, true
		}
	}
	return 0, false
}
