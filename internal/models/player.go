package models

import (
	"time"
)

// Player represents a participant bound to a room, either a device that
// joined on its own or a slot pre-registered by the host.
type Player struct {
	// ID is the opaque player identity
	ID string

	// Name is the display name of the player
	Name string

	// Team is the player's team name, empty if unassigned
	Team string

	// RoomCode is the room the player is bound to
	RoomCode string

	// Score is the player's running score; signed, no floor
	Score float64

	// AccessCode is the optional 4-digit credential for identity recovery
	AccessCode string

	// JoinedAt is when the player joined the room
	JoinedAt time.Time
}
