package player

import (
	"github.com/KirkDiggler/buzzd/internal/codes"
	"github.com/KirkDiggler/buzzd/internal/common/clock"
	"github.com/KirkDiggler/buzzd/internal/common/uuid"
	"github.com/KirkDiggler/buzzd/internal/models"
	playerRepo "github.com/KirkDiggler/buzzd/internal/repositories/player"
	roomRepo "github.com/KirkDiggler/buzzd/internal/repositories/room"
)

// Config holds configuration for the player service
type Config struct {
	// PlayerRepo persists player state
	PlayerRepo playerRepo.Repository

	// RoomRepo validates room existence and team configuration
	RoomRepo roomRepo.Repository

	// CodeGen produces access codes
	CodeGen codes.Generator

	// Clock provides time functions
	Clock clock.Clock

	// UUIDGen mints IDs for pre-registered players
	UUIDGen uuid.UUID

	// AccessCodeRetries bounds how many codes are tried on a collision
	// streak; defaults to 10
	AccessCodeRetries int
}

type JoinInput struct {
	// PlayerID is the device-held identity; reusing one rejoins the
	// same player
	PlayerID string
	RoomCode string
	Name     string
	Team     string
}

type JoinOutput struct {
	Player *models.Player
}

type RegisterInput struct {
	RoomCode string
	Name     string
	Team     string
}

type RegisterOutput struct {
	// Player carries the minted ID and access code
	Player *models.Player
}

type LoginInput struct {
	RoomCode   string
	AccessCode string
}

type LoginOutput struct {
	Player *models.Player
}

type GetPlayerInput struct {
	PlayerID string
}

type GetPlayerOutput struct {
	Player *models.Player
}

type ListPlayersInput struct {
	RoomCode string
}

type ListPlayersOutput struct {
	Players []*models.Player
}

type RemovePlayerInput struct {
	PlayerID string
}

type RemovePlayerOutput struct{}

type AdjustScoreInput struct {
	PlayerID string

	// Delta is signed; scores have no floor
	Delta float64
}

type AdjustScoreOutput struct {
	// Score is the player's score after the delta
	Score float64
}

type AssignTeamInput struct {
	PlayerID string

	// Team must be configured on the room; empty clears the assignment
	Team string
}

type AssignTeamOutput struct {
	Player *models.Player
}

type GetLeaderboardInput struct {
	RoomCode string
}

type GetLeaderboardOutput struct {
	Leaderboard *models.Leaderboard
}
