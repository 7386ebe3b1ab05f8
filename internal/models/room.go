package models

import (
	"time"
)

// MaxBuzzes is the number of buzz slots in a round. Once all slots are
// filled the countdown freezes and further buzzes are rejected.
const MaxBuzzes = 5

// Room represents one live buzzer game session
type Room struct {
	// Code is the 4-character join code identifying the room
	Code string

	// HostID is the identity of the host currently controlling the room
	HostID string

	// AdminPIN is the host credential required to claim the room
	AdminPIN string

	// Rounds is the ordered round configuration list; IDs are dense and 1-based
	Rounds []*Round

	// CurrentRound is the ID of the round the room is pointed at
	CurrentRound int

	// IsActive reports whether the buzz window for the current round is open
	IsActive bool

	// Timer is the remaining whole seconds in the open window
	Timer int

	// StartTime is when the current window opened; display only
	StartTime time.Time

	// Teams is the set of team names, in insertion order
	Teams []string

	// AllowedPlayerIDs restricts who may buzz this round; nil means unrestricted
	AllowedPlayerIDs []string

	// Buzzes is the ordered buzz queue for the current round
	Buzzes []*BuzzEntry

	// CreatedAt is when the room was created
	CreatedAt time.Time

	// UpdatedAt is when the room was last updated
	UpdatedAt time.Time
}

// Round is a configured buzz window within a room
type Round struct {
	// ID is the 1-based round number
	ID int

	// Duration is the countdown length in seconds
	Duration int

	// Cutoff restricts participation to the top N leaderboard players; 0 means everyone
	Cutoff int
}

// BuzzEntry is a recorded claim by a player to have buzzed inside the window.
// Rank is the entry's 1-based position in Room.Buzzes, never derived from
// the timestamp.
type BuzzEntry struct {
	// PlayerID is the player who buzzed
	PlayerID string

	// Name is the player's display name at buzz time
	Name string

	// Team is the player's team at buzz time, if any
	Team string

	// Timestamp is when the buzz was committed; used only for the
	// displayed reaction delta against Room.StartTime
	Timestamp time.Time
}

// CurrentRoundConfig returns the configuration of the round the room is
// pointed at, or nil if CurrentRound does not resolve.
func (r *Room) CurrentRoundConfig() *Round {
	for _, round := range r.Rounds {
		if round.ID == r.CurrentRound {
			return round
		}
	}
	return nil
}
