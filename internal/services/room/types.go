package room

import (
	"time"

	"github.com/KirkDiggler/buzzd/internal/codes"
	"github.com/KirkDiggler/buzzd/internal/common/clock"
	"github.com/KirkDiggler/buzzd/internal/models"
	playerRepo "github.com/KirkDiggler/buzzd/internal/repositories/player"
	roomRepo "github.com/KirkDiggler/buzzd/internal/repositories/room"
)

// RoundField names a configurable field of a round
type RoundField string

const (
	// RoundFieldDuration is the countdown length in seconds
	RoundFieldDuration RoundField = "duration"

	// RoundFieldCutoff is the leaderboard qualification cutoff
	RoundFieldCutoff RoundField = "cutoff"
)

// DefaultRoundDuration is the countdown length a room starts with
const DefaultRoundDuration = 10

// MinPINLength is the minimum admin PIN length accepted at creation
const MinPINLength = 4

// Config holds configuration for the room service
type Config struct {
	// RoomRepo persists room state
	RoomRepo roomRepo.Repository

	// PlayerRepo supplies the leaderboard snapshot for qualification
	PlayerRepo playerRepo.Repository

	// CodeGen produces room join codes
	CodeGen codes.Generator

	// Clock provides time functions
	Clock clock.Clock

	// CreateRetries bounds how many join codes are tried before giving
	// up on a collision streak; defaults to 5
	CreateRetries int

	// RoomTTL expires room keys after the given duration; zero keeps
	// rooms forever
	RoomTTL time.Duration
}

type CreateRoomInput struct {
	HostID   string
	AdminPIN string
}

type CreateRoomOutput struct {
	Room *models.Room
}

type ClaimHostInput struct {
	Code     string
	AdminPIN string
	HostID   string
}

type ClaimHostOutput struct {
	Room *models.Room
}

type GetRoomInput struct {
	Code string
}

type GetRoomOutput struct {
	Room *models.Room
}

type ListRoomsByHostInput struct {
	HostID string
}

type ListRoomsByHostOutput struct {
	Rooms []*models.Room
}

type AddTeamInput struct {
	Code string
	Team string
}

type AddTeamOutput struct {
	Teams []string
}

type RemoveTeamInput struct {
	Code string
	Team string
}

type RemoveTeamOutput struct {
	Teams []string
}

type AddRoundInput struct {
	Code string
}

type AddRoundOutput struct {
	Round *models.Round
}

type UpdateRoundConfigInput struct {
	Code    string
	RoundID int
	Field   RoundField
	Value   int
}

type UpdateRoundConfigOutput struct {
	Round *models.Round
}

type SelectRoundInput struct {
	Code    string
	RoundID int
}

type SelectRoundOutput struct {
	Round *models.Round

	// AllowedPlayerIDs is the qualification set installed for the round;
	// nil when the round is unrestricted
	AllowedPlayerIDs []string
}

type StartRoundInput struct {
	Code string
}

type StartRoundOutput struct {
	// Timer is the countdown value the window opened with
	Timer int

	StartTime time.Time
}

type ResetRoundInput struct {
	Code string
}

type ResetRoundOutput struct {
	// Timer is the restored countdown value
	Timer int
}

type TickInput struct {
	Code string

	// Expected is the timer value the caller last observed
	Expected int
}

type TickOutput struct {
	State roomRepo.TickState
	Timer int
}

type SubmitBuzzInput struct {
	Code     string
	PlayerID string
	Name     string
	Team     string
}

type SubmitBuzzOutput struct {
	// Rank is the 1-based queue position of the accepted buzz
	Rank int
}

type CloseRoomInput struct {
	Code string
}

type CloseRoomOutput struct{}
