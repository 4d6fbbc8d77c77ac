package domain

import "time"

// NominationQuota is the maximum number of live nominations a user may
// hold in a single category.
const NominationQuota = 5

// FinalistCount is how many of the most-nominated games become finalists.
const FinalistCount = 5

// Nomination is one user's proposal of one game in one category.
// (CategoryID, GameID, UserID) is unique.
type Nomination struct {
	CategoryID int64
	GameID     int64
	UserID     int64
	CreatedAt  time.Time
}

// Finalist is one entry of a category's derived finalist view: a game and
// the number of distinct users who nominated it. Finalist lists are ordered
// by NominationCount descending, then GameID ascending, and are never
// stored; they are recomputed from the nomination ledger on every read.
type Finalist struct {
	GameID          int64
	NominationCount int
}
