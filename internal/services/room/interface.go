package room

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/buzzd/internal/services/room Service

import "context"

// Service defines the interface for room operations
type Service interface {
	// CreateRoom allocates a fresh room under a unique join code
	CreateRoom(ctx context.Context, input *CreateRoomInput) (*CreateRoomOutput, error)

	// ClaimHost authenticates against the room's admin PIN and binds the
	// caller as the controlling host
	ClaimHost(ctx context.Context, input *ClaimHostInput) (*ClaimHostOutput, error)

	// GetRoom retrieves a room by join code
	GetRoom(ctx context.Context, input *GetRoomInput) (*GetRoomOutput, error)

	// ListRoomsByHost returns the rooms a host has created, newest first
	ListRoomsByHost(ctx context.Context, input *ListRoomsByHostInput) (*ListRoomsByHostOutput, error)

	// AddTeam appends a team name to the room
	AddTeam(ctx context.Context, input *AddTeamInput) (*AddTeamOutput, error)

	// RemoveTeam drops a team name from the room
	RemoveTeam(ctx context.Context, input *RemoveTeamInput) (*RemoveTeamOutput, error)

	// AddRound appends a new round, inheriting the previous round's duration
	AddRound(ctx context.Context, input *AddRoundInput) (*AddRoundOutput, error)

	// UpdateRoundConfig changes one field of a round's configuration
	UpdateRoundConfig(ctx context.Context, input *UpdateRoundConfigInput) (*UpdateRoundConfigOutput, error)

	// SelectRound points the room at a round and installs its
	// qualification set from the current leaderboard
	SelectRound(ctx context.Context, input *SelectRoundInput) (*SelectRoundOutput, error)

	// StartRound opens the buzz window for the current round
	StartRound(ctx context.Context, input *StartRoundInput) (*StartRoundOutput, error)

	// ResetRound closes the window and restores the configured duration
	ResetRound(ctx context.Context, input *ResetRoundInput) (*ResetRoundOutput, error)

	// Tick advances the countdown by one second
	Tick(ctx context.Context, input *TickInput) (*TickOutput, error)

	// SubmitBuzz records a player's buzz if the window and rules allow it
	SubmitBuzz(ctx context.Context, input *SubmitBuzzInput) (*SubmitBuzzOutput, error)

	// CloseRoom deletes the room and its state
	CloseRoom(ctx context.Context, input *CloseRoomInput) (*CloseRoomOutput, error)
}
