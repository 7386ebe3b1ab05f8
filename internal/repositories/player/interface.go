package player

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/buzzd/internal/repositories/player Repository

import (
	"context"

	"github.com/KirkDiggler/buzzd/internal/models"
)

// Repository defines the interface for player data persistence
type Repository interface {
	// SavePlayer persists a player record (upsert)
	SavePlayer(ctx context.Context, input *SavePlayerInput) error

	// GetPlayer retrieves a player by ID
	GetPlayer(ctx context.Context, input *GetPlayerInput) (*models.Player, error)

	// GetPlayersByRoom retrieves all players bound to a room
	GetPlayersByRoom(ctx context.Context, input *GetPlayersByRoomInput) (*GetPlayersByRoomOutput, error)

	// DeletePlayer removes a player record and its indexes
	DeletePlayer(ctx context.Context, input *DeletePlayerInput) error

	// IncrScore applies a score delta atomically and returns the new score
	IncrScore(ctx context.Context, input *IncrScoreInput) (*IncrScoreOutput, error)

	// ReserveAccessCode claims an access code within a room; the claim
	// fails when the code is already held by another player
	ReserveAccessCode(ctx context.Context, input *ReserveAccessCodeInput) (*ReserveAccessCodeOutput, error)

	// GetPlayerByAccessCode resolves a room-scoped access code to its player
	GetPlayerByAccessCode(ctx context.Context, input *GetPlayerByAccessCodeInput) (*models.Player, error)

	// SubscribePlayers streams change events for a room's player
	// collection until the returned unsubscribe function is called
	SubscribePlayers(ctx context.Context, input *SubscribePlayersInput) (*SubscribePlayersOutput, error)
}
