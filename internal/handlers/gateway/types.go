package gateway

import (
	"encoding/json"
	"net/http"
	"time"

	playerRepo "github.com/KirkDiggler/buzzd/internal/repositories/player"
	roomRepo "github.com/KirkDiggler/buzzd/internal/repositories/room"
	playerSvc "github.com/KirkDiggler/buzzd/internal/services/player"
	roomSvc "github.com/KirkDiggler/buzzd/internal/services/room"
)

// Action identifies a client command
type Action string

const (
	ActionCreateRoom     Action = "create_room"
	ActionClaimHost      Action = "claim_host"
	ActionListRooms      Action = "list_rooms"
	ActionJoin           Action = "join"
	ActionRegisterPlayer Action = "register_player"
	ActionLogin          Action = "login"
	ActionBuzz           Action = "buzz"
	ActionAdjustScore    Action = "adjust_score"
	ActionAssignTeam     Action = "assign_team"
	ActionAddTeam        Action = "add_team"
	ActionRemoveTeam     Action = "remove_team"
	ActionAddRound       Action = "add_round"
	ActionUpdateRound    Action = "update_round"
	ActionSelectRound    Action = "select_round"
	ActionStartRound     Action = "start_round"
	ActionResetRound     Action = "reset_round"
	ActionCloseRoom      Action = "close_room"
	ActionGetState       Action = "get_state"
	ActionLeaderboard    Action = "leaderboard"
)

// Command is one client request over the socket
type Command struct {
	Action  Action          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// MessageType identifies a server-to-client message
type MessageType string

const (
	// MessageRoom carries a full room snapshot
	MessageRoom MessageType = "room"

	// MessageRooms carries a host's room list
	MessageRooms MessageType = "rooms"

	// MessagePlayers carries the room's player list
	MessagePlayers MessageType = "players"

	// MessagePlayer carries one player, typically the caller's own
	MessagePlayer MessageType = "player"

	// MessageLeaderboard carries the current standings
	MessageLeaderboard MessageType = "leaderboard"

	// MessageBuzzed confirms the caller's accepted buzz and its rank
	MessageBuzzed MessageType = "buzzed"

	// MessageBuzzRejected tells the caller their buzz was quietly
	// dropped; the round carries on
	MessageBuzzRejected MessageType = "buzz_rejected"

	// MessageRoomClosed tells clients the room is gone
	MessageRoomClosed MessageType = "room_closed"

	// MessageError carries a request failure
	MessageError MessageType = "error"
)

// Message is one server-to-client frame
type Message struct {
	Type  MessageType `json:"type"`
	Data  any         `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}

// Config holds configuration for the gateway
type Config struct {
	// Rooms drives room lifecycle commands
	Rooms roomSvc.Service

	// Players drives player commands
	Players playerSvc.Service

	// RoomRepo supplies the room change stream
	RoomRepo roomRepo.Repository

	// PlayerRepo supplies the player change stream
	PlayerRepo playerRepo.Repository

	// Ticker drives countdowns for windows opened through this gateway
	Ticker *roomSvc.Ticker

	WriteTimeout   time.Duration
	PingInterval   time.Duration
	ReadTimeout    time.Duration
	MaxMessageSize int64
	CheckOrigin    func(r *http.Request) bool
}

// command payloads

type createRoomPayload struct {
	HostID   string `json:"hostId"`
	AdminPIN string `json:"adminPin"`
}

type claimHostPayload struct {
	Code     string `json:"code"`
	AdminPIN string `json:"adminPin"`
	HostID   string `json:"hostId"`
}

type listRoomsPayload struct {
	HostID string `json:"hostId"`
}

type joinPayload struct {
	PlayerID string `json:"playerId"`
	Code     string `json:"code"`
	Name     string `json:"name"`
	Team     string `json:"team,omitempty"`
}

type registerPlayerPayload struct {
	Name string `json:"name"`
	Team string `json:"team,omitempty"`
}

type loginPayload struct {
	Code       string `json:"code"`
	AccessCode string `json:"accessCode"`
}

type adjustScorePayload struct {
	PlayerID string  `json:"playerId"`
	Delta    float64 `json:"delta"`
}

type assignTeamPayload struct {
	PlayerID string `json:"playerId"`
	Team     string `json:"team"`
}

type teamPayload struct {
	Team string `json:"team"`
}

type updateRoundPayload struct {
	RoundID int    `json:"roundId"`
	Field   string `json:"field"`
	Value   int    `json:"value"`
}

type selectRoundPayload struct {
	RoundID int `json:"roundId"`
}
