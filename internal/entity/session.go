package entity

// Session - a connected human and the live game it plays, if any.
type Session struct {
	ID     string `json:"id"`
	GameID string `json:"game_id,omitempty"`
}

func (that *Session) InGame() bool {
	return that.GameID != ""
}
