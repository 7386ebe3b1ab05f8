package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	playerSvc "github.com/KirkDiggler/buzzd/internal/services/player"
	roomSvc "github.com/KirkDiggler/buzzd/internal/services/room"
)

// session is one client connection. It remembers who the client is
// once they join or claim a room, so later commands don't have to
// repeat identity.
type session struct {
	id      string
	manager *Manager
	conn    *websocket.Conn
	send    chan []byte

	roomCode   string
	playerID   string
	playerName string
	playerTeam string
	isHost     bool

	// cancel tears down the command context handed to readPump
	cancel    context.CancelFunc
	closeOnce sync.Once
}

func newSession(m *Manager, conn *websocket.Conn) *session {
	return &session{
		id:      uuid.New().String(),
		manager: m,
		conn:    conn,
		send:    make(chan []byte, 64),
	}
}

func (s *session) close() {
	s.closeOnce.Do(func() {
		if s.cancel != nil {
			s.cancel()
		}
		s.manager.unbind(s)
		s.conn.Close()
	})
}

func (s *session) readPump(ctx context.Context) {
	defer s.close()

	s.conn.SetReadLimit(s.manager.maxMessageSize)
	s.conn.SetReadDeadline(time.Now().Add(s.manager.readTimeout))
	s.conn.SetPongHandler(func(string) error {
		s.conn.SetReadDeadline(time.Now().Add(s.manager.readTimeout))
		return nil
	})

	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Debug().Err(err).Str("session", s.id).Msg("websocket closed")
			}
			return
		}

		var cmd Command
		if err := json.Unmarshal(data, &cmd); err != nil {
			s.reply(&Message{Type: MessageError, Error: "malformed command"})
			continue
		}

		if msg := s.handle(ctx, &cmd); msg != nil {
			s.reply(msg)
		}
	}
}

func (s *session) writePump() {
	ticker := time.NewTicker(s.manager.pingInterval)
	defer func() {
		ticker.Stop()
		s.close()
	}()

	for {
		select {
		case data, ok := <-s.send:
			s.conn.SetWriteDeadline(time.Now().Add(s.manager.writeTimeout))
			if !ok {
				s.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := s.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			s.conn.SetWriteDeadline(time.Now().Add(s.manager.writeTimeout))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (s *session) reply(msg *Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Error().Err(err).Str("session", s.id).Msg("failed to marshal reply")
		return
	}

	select {
	case s.send <- data:
	default:
		log.Warn().Str("session", s.id).Msg("send buffer full, dropping reply")
	}
}

// handle dispatches one command and returns the direct reply, if any.
// Room and player state changes reach all clients through the change
// stream watch, not through the reply.
func (s *session) handle(ctx context.Context, cmd *Command) *Message {
	switch cmd.Action {
	case ActionCreateRoom:
		return s.handleCreateRoom(ctx, cmd.Payload)
	case ActionClaimHost:
		return s.handleClaimHost(ctx, cmd.Payload)
	case ActionListRooms:
		return s.handleListRooms(ctx, cmd.Payload)
	case ActionJoin:
		return s.handleJoin(ctx, cmd.Payload)
	case ActionRegisterPlayer:
		return s.handleRegisterPlayer(ctx, cmd.Payload)
	case ActionLogin:
		return s.handleLogin(ctx, cmd.Payload)
	case ActionBuzz:
		return s.handleBuzz(ctx)
	case ActionAdjustScore:
		return s.handleAdjustScore(ctx, cmd.Payload)
	case ActionAssignTeam:
		return s.handleAssignTeam(ctx, cmd.Payload)
	case ActionAddTeam:
		return s.handleAddTeam(ctx, cmd.Payload)
	case ActionRemoveTeam:
		return s.handleRemoveTeam(ctx, cmd.Payload)
	case ActionAddRound:
		return s.handleAddRound(ctx)
	case ActionUpdateRound:
		return s.handleUpdateRound(ctx, cmd.Payload)
	case ActionSelectRound:
		return s.handleSelectRound(ctx, cmd.Payload)
	case ActionStartRound:
		return s.handleStartRound(ctx)
	case ActionResetRound:
		return s.handleResetRound(ctx)
	case ActionCloseRoom:
		return s.handleCloseRoom(ctx)
	case ActionGetState:
		return s.handleGetState(ctx)
	case ActionLeaderboard:
		return s.handleLeaderboard(ctx)
	default:
		return &Message{Type: MessageError, Error: "unknown action"}
	}
}

func (s *session) handleCreateRoom(ctx context.Context, payload json.RawMessage) *Message {
	var p createRoomPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return &Message{Type: MessageError, Error: "malformed payload"}
	}

	out, err := s.manager.rooms.CreateRoom(ctx, &roomSvc.CreateRoomInput{
		HostID:   p.HostID,
		AdminPIN: p.AdminPIN,
	})
	if err != nil {
		return errorMessage(err)
	}

	s.isHost = true
	s.manager.bind(ctx, s, out.Room.Code)

	return &Message{Type: MessageRoom, Data: newRoomView(out.Room)}
}

func (s *session) handleClaimHost(ctx context.Context, payload json.RawMessage) *Message {
	var p claimHostPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return &Message{Type: MessageError, Error: "malformed payload"}
	}

	out, err := s.manager.rooms.ClaimHost(ctx, &roomSvc.ClaimHostInput{
		Code:     p.Code,
		AdminPIN: p.AdminPIN,
		HostID:   p.HostID,
	})
	if err != nil {
		return errorMessage(err)
	}

	s.isHost = true
	s.manager.bind(ctx, s, out.Room.Code)

	return &Message{Type: MessageRoom, Data: newRoomView(out.Room)}
}

func (s *session) handleListRooms(ctx context.Context, payload json.RawMessage) *Message {
	var p listRoomsPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return &Message{Type: MessageError, Error: "malformed payload"}
	}

	out, err := s.manager.rooms.ListRoomsByHost(ctx, &roomSvc.ListRoomsByHostInput{
		HostID: p.HostID,
	})
	if err != nil {
		return errorMessage(err)
	}

	views := make([]*RoomView, 0, len(out.Rooms))
	for _, room := range out.Rooms {
		views = append(views, newRoomView(room))
	}

	return &Message{Type: MessageRooms, Data: views}
}

func (s *session) handleJoin(ctx context.Context, payload json.RawMessage) *Message {
	var p joinPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return &Message{Type: MessageError, Error: "malformed payload"}
	}

	out, err := s.manager.players.Join(ctx, &playerSvc.JoinInput{
		PlayerID: p.PlayerID,
		RoomCode: p.Code,
		Name:     p.Name,
		Team:     p.Team,
	})
	if err != nil {
		return errorMessage(err)
	}

	s.playerID = out.Player.ID
	s.playerName = out.Player.Name
	s.playerTeam = out.Player.Team
	s.manager.bind(ctx, s, out.Player.RoomCode)

	return &Message{Type: MessagePlayer, Data: newPlayerView(out.Player, false)}
}

func (s *session) handleRegisterPlayer(ctx context.Context, payload json.RawMessage) *Message {
	if !s.isHost {
		return &Message{Type: MessageError, Error: "host only"}
	}

	var p registerPlayerPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return &Message{Type: MessageError, Error: "malformed payload"}
	}

	out, err := s.manager.players.Register(ctx, &playerSvc.RegisterInput{
		RoomCode: s.roomCode,
		Name:     p.Name,
		Team:     p.Team,
	})
	if err != nil {
		return errorMessage(err)
	}

	// the host sees the minted access code so they can hand it out
	return &Message{Type: MessagePlayer, Data: newPlayerView(out.Player, true)}
}

func (s *session) handleLogin(ctx context.Context, payload json.RawMessage) *Message {
	var p loginPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return &Message{Type: MessageError, Error: "malformed payload"}
	}

	out, err := s.manager.players.Login(ctx, &playerSvc.LoginInput{
		RoomCode:   p.Code,
		AccessCode: p.AccessCode,
	})
	if err != nil {
		return errorMessage(err)
	}

	s.playerID = out.Player.ID
	s.playerName = out.Player.Name
	s.playerTeam = out.Player.Team
	s.manager.bind(ctx, s, out.Player.RoomCode)

	return &Message{Type: MessagePlayer, Data: newPlayerView(out.Player, false)}
}

// handleBuzz submits the session's buzz. Rejections that are part of
// normal play (late, duplicate, full queue, not qualified) come back as
// a quiet notice, never an error.
func (s *session) handleBuzz(ctx context.Context) *Message {
	if s.playerID == "" || s.roomCode == "" {
		return &Message{Type: MessageError, Error: "join a room first"}
	}

	out, err := s.manager.rooms.SubmitBuzz(ctx, &roomSvc.SubmitBuzzInput{
		Code:     s.roomCode,
		PlayerID: s.playerID,
		Name:     s.playerName,
		Team:     s.playerTeam,
	})
	if err != nil {
		if isQuietBuzzRejection(err) {
			return &Message{Type: MessageBuzzRejected}
		}
		return errorMessage(err)
	}

	return &Message{Type: MessageBuzzed, Data: map[string]int{"rank": out.Rank}}
}

func (s *session) handleAdjustScore(ctx context.Context, payload json.RawMessage) *Message {
	if !s.isHost {
		return &Message{Type: MessageError, Error: "host only"}
	}

	var p adjustScorePayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return &Message{Type: MessageError, Error: "malformed payload"}
	}

	out, err := s.manager.players.AdjustScore(ctx, &playerSvc.AdjustScoreInput{
		PlayerID: p.PlayerID,
		Delta:    p.Delta,
	})
	if err != nil {
		return errorMessage(err)
	}

	return &Message{Type: MessagePlayer, Data: &PlayerView{ID: p.PlayerID, Score: out.Score}}
}

func (s *session) handleAssignTeam(ctx context.Context, payload json.RawMessage) *Message {
	if !s.isHost {
		return &Message{Type: MessageError, Error: "host only"}
	}

	var p assignTeamPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return &Message{Type: MessageError, Error: "malformed payload"}
	}

	out, err := s.manager.players.AssignTeam(ctx, &playerSvc.AssignTeamInput{
		PlayerID: p.PlayerID,
		Team:     p.Team,
	})
	if err != nil {
		return errorMessage(err)
	}

	return &Message{Type: MessagePlayer, Data: newPlayerView(out.Player, false)}
}

func (s *session) handleAddTeam(ctx context.Context, payload json.RawMessage) *Message {
	if !s.isHost {
		return &Message{Type: MessageError, Error: "host only"}
	}

	var p teamPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return &Message{Type: MessageError, Error: "malformed payload"}
	}

	_, err := s.manager.rooms.AddTeam(ctx, &roomSvc.AddTeamInput{
		Code: s.roomCode,
		Team: p.Team,
	})
	if err != nil {
		return errorMessage(err)
	}

	return nil
}

func (s *session) handleRemoveTeam(ctx context.Context, payload json.RawMessage) *Message {
	if !s.isHost {
		return &Message{Type: MessageError, Error: "host only"}
	}

	var p teamPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return &Message{Type: MessageError, Error: "malformed payload"}
	}

	_, err := s.manager.rooms.RemoveTeam(ctx, &roomSvc.RemoveTeamInput{
		Code: s.roomCode,
		Team: p.Team,
	})
	if err != nil {
		return errorMessage(err)
	}

	return nil
}

func (s *session) handleAddRound(ctx context.Context) *Message {
	if !s.isHost {
		return &Message{Type: MessageError, Error: "host only"}
	}

	_, err := s.manager.rooms.AddRound(ctx, &roomSvc.AddRoundInput{Code: s.roomCode})
	if err != nil {
		return errorMessage(err)
	}

	return nil
}

func (s *session) handleUpdateRound(ctx context.Context, payload json.RawMessage) *Message {
	if !s.isHost {
		return &Message{Type: MessageError, Error: "host only"}
	}

	var p updateRoundPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return &Message{Type: MessageError, Error: "malformed payload"}
	}

	_, err := s.manager.rooms.UpdateRoundConfig(ctx, &roomSvc.UpdateRoundConfigInput{
		Code:    s.roomCode,
		RoundID: p.RoundID,
		Field:   roomSvc.RoundField(p.Field),
		Value:   p.Value,
	})
	if err != nil {
		return errorMessage(err)
	}

	return nil
}

func (s *session) handleSelectRound(ctx context.Context, payload json.RawMessage) *Message {
	if !s.isHost {
		return &Message{Type: MessageError, Error: "host only"}
	}

	var p selectRoundPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return &Message{Type: MessageError, Error: "malformed payload"}
	}

	s.manager.ticker.Stop(s.roomCode)

	_, err := s.manager.rooms.SelectRound(ctx, &roomSvc.SelectRoundInput{
		Code:    s.roomCode,
		RoundID: p.RoundID,
	})
	if err != nil {
		return errorMessage(err)
	}

	return nil
}

func (s *session) handleStartRound(ctx context.Context) *Message {
	if !s.isHost {
		return &Message{Type: MessageError, Error: "host only"}
	}

	out, err := s.manager.rooms.StartRound(ctx, &roomSvc.StartRoundInput{Code: s.roomCode})
	if err != nil {
		return errorMessage(err)
	}

	s.manager.ticker.Start(ctx, s.roomCode, out.Timer)

	return nil
}

func (s *session) handleResetRound(ctx context.Context) *Message {
	if !s.isHost {
		return &Message{Type: MessageError, Error: "host only"}
	}

	s.manager.ticker.Stop(s.roomCode)

	_, err := s.manager.rooms.ResetRound(ctx, &roomSvc.ResetRoundInput{Code: s.roomCode})
	if err != nil {
		return errorMessage(err)
	}

	return nil
}

func (s *session) handleCloseRoom(ctx context.Context) *Message {
	if !s.isHost {
		return &Message{Type: MessageError, Error: "host only"}
	}

	s.manager.ticker.Stop(s.roomCode)

	_, err := s.manager.rooms.CloseRoom(ctx, &roomSvc.CloseRoomInput{Code: s.roomCode})
	if err != nil {
		return errorMessage(err)
	}

	return nil
}

func (s *session) handleGetState(ctx context.Context) *Message {
	if s.roomCode == "" {
		return &Message{Type: MessageError, Error: "join a room first"}
	}

	out, err := s.manager.rooms.GetRoom(ctx, &roomSvc.GetRoomInput{Code: s.roomCode})
	if err != nil {
		return errorMessage(err)
	}

	return &Message{Type: MessageRoom, Data: newRoomView(out.Room)}
}

func (s *session) handleLeaderboard(ctx context.Context) *Message {
	if s.roomCode == "" {
		return &Message{Type: MessageError, Error: "join a room first"}
	}

	out, err := s.manager.players.GetLeaderboard(ctx, &playerSvc.GetLeaderboardInput{
		RoomCode: s.roomCode,
	})
	if err != nil {
		return errorMessage(err)
	}

	return &Message{Type: MessageLeaderboard, Data: newLeaderboardView(out.Leaderboard)}
}

// isQuietBuzzRejection reports whether a buzz failure is normal play
// rather than a fault
func isQuietBuzzRejection(err error) bool {
	return errors.Is(err, roomSvc.ErrBuzzClosed) ||
		errors.Is(err, roomSvc.ErrBuzzDuplicate) ||
		errors.Is(err, roomSvc.ErrBuzzQueueFull) ||
		errors.Is(err, roomSvc.ErrBuzzNotQualified)
}

func errorMessage(err error) *Message {
	return &Message{Type: MessageError, Error: err.Error()}
}
