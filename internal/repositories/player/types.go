package player

import "github.com/KirkDiggler/buzzd/internal/models"

// EventType identifies what changed in a room's player collection
type EventType string

const (
	EventPlayerSaved   EventType = "player_saved"
	EventPlayerDeleted EventType = "player_deleted"
	EventScoreAdjusted EventType = "score_adjusted"
)

// Event is one entry in a room's player change stream
type Event struct {
	Type     EventType `json:"type"`
	RoomCode string    `json:"roomCode"`
	PlayerID string    `json:"playerId"`
}

type SavePlayerInput struct {
	Player *models.Player
}

type GetPlayerInput struct {
	PlayerID string
}

type GetPlayersByRoomInput struct {
	RoomCode string
}

type GetPlayersByRoomOutput struct {
	Players []*models.Player
}

type DeletePlayerInput struct {
	PlayerID string
}

type IncrScoreInput struct {
	PlayerID string
	Delta    float64
}

type IncrScoreOutput struct {
	// Score is the player's score after the delta
	Score float64
}

type ReserveAccessCodeInput struct {
	RoomCode   string
	AccessCode string
	PlayerID   string
}

type ReserveAccessCodeOutput struct {
	// Reserved is false when another player already holds the code
	Reserved bool
}

type GetPlayerByAccessCodeInput struct {
	RoomCode   string
	AccessCode string
}

type SubscribePlayersInput struct {
	RoomCode string
}

type SubscribePlayersOutput struct {
	// Events delivers change events in commit order; closed on
	// unsubscribe
	Events <-chan *Event

	// Unsubscribe stops the stream and releases the connection
	Unsubscribe func()
}
