package domain

import "math"

// GameTally is the per-finalist slice of a category tally.
type GameTally struct {
	GameID          int64
	NominationCount int
	VoteCount       int
	Percentage      int
}

// TallyResult is the derived vote aggregate for a category in phase Vote
// or Closed. WinnerGameID is the administratively designated winner if one
// exists, otherwise the finalist with the highest vote count (ties broken
// by lowest game ID). WinnerDesignated reports which of the two it was.
type TallyResult struct {
	CategoryID       int64
	Phase            Phase
	TotalVotes       int
	Games            []GameTally
	WinnerGameID     int64
	WinnerDesignated bool
}

// Percentage computes round(count/total*100), 0 when total is 0.
func Percentage(count, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(count) / float64(total) * 100))
}
