package models

// LeaderboardEntry is one ranked row of a room's leaderboard
type LeaderboardEntry struct {
	// PlayerID is the player this row belongs to
	PlayerID string

	// PlayerName is the display name of the player
	PlayerName string

	// Team is the player's team, if any
	Team string

	// Score is the player's current score
	Score float64
}

// Leaderboard represents the current standings in a room, ordered by
// score descending. The ordering is the qualification snapshot: rounds
// with a cutoff admit the first N entries.
type Leaderboard struct {
	// RoomCode identifies the room
	RoomCode string

	// Entries contains one row per player, best score first
	Entries []*LeaderboardEntry
}
