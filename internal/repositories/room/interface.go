package room

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/buzzd/internal/repositories/room Repository

import (
	"context"

	"github.com/KirkDiggler/buzzd/internal/models"
)

// Repository defines the interface for room data persistence.
//
// Mutations that race across clients (buzz submission, the countdown tick)
// are exposed as atomic primitives rather than read-modify-write, so two
// concurrent writers can never silently drop each other's update.
type Repository interface {
	// CreateRoom persists a new room; fails with ErrRoomExists if the
	// code is already taken
	CreateRoom(ctx context.Context, input *CreateRoomInput) error

	// GetRoom retrieves a room by code
	GetRoom(ctx context.Context, input *GetRoomInput) (*models.Room, error)

	// GetRoomsByHost retrieves a host's rooms, newest first
	GetRoomsByHost(ctx context.Context, input *GetRoomsByHostInput) (*GetRoomsByHostOutput, error)

	// SetHost reassigns the room's controlling host
	SetHost(ctx context.Context, input *SetHostInput) error

	// SetTeams replaces the room's team list
	SetTeams(ctx context.Context, input *SetTeamsInput) error

	// AppendRound atomically appends the next round to the room's
	// configuration list. The new round takes the previous round's
	// duration and the next dense ID, decided inside the write so two
	// host sessions appending at once cannot mint the same ID
	AppendRound(ctx context.Context, input *AppendRoundInput) (*AppendRoundOutput, error)

	// UpdateRound atomically edits one field of a round's configuration.
	// Editing the current round's duration while its window is closed
	// pushes the new value into the displayed timer in the same step
	UpdateRound(ctx context.Context, input *UpdateRoundInput) (*UpdateRoundOutput, error)

	// SelectRound points the room at a round: sets the round pointer,
	// timer and qualification set, deactivates the window and clears
	// the buzz queue, all in one transaction
	SelectRound(ctx context.Context, input *SelectRoundInput) error

	// StartRound opens the buzz window: active, fresh start time,
	// cleared buzz queue
	StartRound(ctx context.Context, input *StartRoundInput) error

	// ResetRound closes the window and restores the timer without
	// touching the round configuration
	ResetRound(ctx context.Context, input *ResetRoundInput) error

	// Tick decrements the countdown by one second if and only if the
	// window is open, slots remain and the timer still holds the
	// expected value; flips the room inactive once the timer is spent
	Tick(ctx context.Context, input *TickInput) (*TickOutput, error)

	// SubmitBuzz atomically checks the buzz preconditions and appends
	// the entry; the rank returned is the entry's 1-based queue position
	SubmitBuzz(ctx context.Context, input *SubmitBuzzInput) (*SubmitBuzzOutput, error)

	// DeleteRoom removes a room and its indexes
	DeleteRoom(ctx context.Context, input *DeleteRoomInput) error

	// SubscribeRoom streams change events for a room until the returned
	// unsubscribe function is called
	SubscribeRoom(ctx context.Context, input *SubscribeRoomInput) (*SubscribeRoomOutput, error)
}
