package domain

import "slices"

// GameStatus is the catalog moderation state of a game. Only validated
// games may be nominated.
type GameStatus string

const (
	GameStatusPending   GameStatus = "PENDING"
	GameStatusValidated GameStatus = "VALIDATED"
	GameStatusRejected  GameStatus = "REJECTED"
)

func (s GameStatus) String() string { return string(s) }

func (s GameStatus) IsValid() bool {
	switch s {
	case GameStatusPending, GameStatusValidated, GameStatusRejected:
		return true
	}
	return false
}

// Game is the read-side view of the external game catalog. The catalog is
// maintained elsewhere; this core only checks eligibility against it.
type Game struct {
	ID     int64
	Title  string
	Year   int
	Status GameStatus

	// RestrictedCategories, when non-empty, limits the categories this game
	// may be nominated in.
	RestrictedCategories []int64
}

// EligibleFor reports whether the game may be nominated in the given
// category: it must be validated, match the category year, and pass the
// game's own category restriction list.
func (g Game) EligibleFor(c Category) bool {
	if g.Status != GameStatusValidated {
		return false
	}
	if g.Year != c.Year {
		return false
	}
	if len(g.RestrictedCategories) > 0 && !slices.Contains(g.RestrictedCategories, c.ID) {
		return false
	}
	return true
}
