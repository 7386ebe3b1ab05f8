package player

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/buzzd/internal/services/player Service

import "context"

// Service defines the interface for player operations
type Service interface {
	// Join binds a device to a room, keeping the score of a returning
	// player intact
	Join(ctx context.Context, input *JoinInput) (*JoinOutput, error)

	// Register pre-creates a player slot with a fresh access code
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// Login resolves a room-scoped access code back to its player
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// GetPlayer retrieves a player by ID
	GetPlayer(ctx context.Context, input *GetPlayerInput) (*GetPlayerOutput, error)

	// ListPlayers returns every player bound to a room
	ListPlayers(ctx context.Context, input *ListPlayersInput) (*ListPlayersOutput, error)

	// RemovePlayer deletes a player and releases their access code
	RemovePlayer(ctx context.Context, input *RemovePlayerInput) (*RemovePlayerOutput, error)

	// AdjustScore applies a signed delta to a player's score
	AdjustScore(ctx context.Context, input *AdjustScoreInput) (*AdjustScoreOutput, error)

	// AssignTeam moves a player onto one of the room's teams
	AssignTeam(ctx context.Context, input *AssignTeamInput) (*AssignTeamOutput, error)

	// GetLeaderboard returns the room standings, best score first
	GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error)
}
