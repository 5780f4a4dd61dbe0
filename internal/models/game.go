package models

// GameUser is a player identity, resolved by username
type GameUser struct {
	ID       int64  `db:"id" json:"id"`
	Username string `db:"username" json:"username"`
}

// ScoreEntry is one completed session in the append-only score ledger
type ScoreEntry struct {
	UserID int64 `db:"user_id" json:"user_id"`
	Score  int   `db:"score" json:"score"`
	Level  int   `db:"level" json:"level"`
}
