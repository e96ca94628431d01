// Package spectate streams game frames to read-only WebSocket viewers.
package spectate

// Frame is one broadcast snapshot of a running game.
type Frame struct {
	Game      string   `json:"game"`
	Player    string   `json:"player,omitempty"`
	Seq       uint64   `json:"seq"`
	Goals     int      `json:"goals"`
	Levels    int      `json:"levels_cleared"`
	TurnsLeft int      `json:"turns_left"`
	GameOver  bool     `json:"game_over"`
	Won       bool     `json:"won"`
	Paused    bool     `json:"paused"`
	Entities  []Entity `json:"entities,omitempty"`
	Rows      []string `json:"rows"`
	Events    []string `json:"events,omitempty"`
}

// Entity is a board item in grid coordinates.
type Entity struct {
	X    int    `json:"x"`
	Y    int    `json:"y"`
	Kind string `json:"kind"`
	Dir  string `json:"dir,omitempty"`
}

// Publisher accepts frames from the game loop. Implementations must not block.
type Publisher interface {
	Publish(f Frame)
}
