package domain

import "time"

// Vote is a user's single final vote in a category. (CategoryID, UserID)
// is unique: casting again replaces the previous row.
type Vote struct {
	CategoryID int64
	UserID     int64
	GameID     int64
	VotedAt    time.Time
}
