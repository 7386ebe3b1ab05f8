package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	playerRepo "github.com/KirkDiggler/buzzd/internal/repositories/player"
	roomRepo "github.com/KirkDiggler/buzzd/internal/repositories/room"
	playerSvc "github.com/KirkDiggler/buzzd/internal/services/player"
	roomSvc "github.com/KirkDiggler/buzzd/internal/services/room"
)

// GatewayError is a custom error type for gateway errors
type GatewayError string

// Error implements the error interface
func (e GatewayError) Error() string {
	return string(e)
}

const (
	ErrNilConfig        GatewayError = "config cannot be nil"
	ErrNilRoomService   GatewayError = "room service cannot be nil"
	ErrNilPlayerService GatewayError = "player service cannot be nil"
	ErrNilRoomRepo      GatewayError = "room repository cannot be nil"
	ErrNilPlayerRepo    GatewayError = "player repository cannot be nil"
	ErrNilTicker        GatewayError = "ticker cannot be nil"
)

type broadcast struct {
	code string
	data []byte
}

// Manager owns the WebSocket connections for all rooms. Sessions are
// pooled per room code; repository change streams are watched while a
// room has at least one session, and every change fans a fresh
// snapshot out to the pool.
type Manager struct {
	rooms      roomSvc.Service
	players    playerSvc.Service
	roomRepo   roomRepo.Repository
	playerRepo playerRepo.Repository
	ticker     *roomSvc.Ticker

	upgrader       websocket.Upgrader
	writeTimeout   time.Duration
	pingInterval   time.Duration
	readTimeout    time.Duration
	maxMessageSize int64

	mu       sync.RWMutex
	sessions map[string]map[*session]bool
	watches  map[string]context.CancelFunc

	broadcastCh chan broadcast
}

// New creates a gateway manager
func New(cfg *Config) (*Manager, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Rooms == nil {
		return nil, ErrNilRoomService
	}

	if cfg.Players == nil {
		return nil, ErrNilPlayerService
	}

	if cfg.RoomRepo == nil {
		return nil, ErrNilRoomRepo
	}

	if cfg.PlayerRepo == nil {
		return nil, ErrNilPlayerRepo
	}

	if cfg.Ticker == nil {
		return nil, ErrNilTicker
	}

	writeTimeout := cfg.WriteTimeout
	if writeTimeout == 0 {
		writeTimeout = 10 * time.Second
	}

	pingInterval := cfg.PingInterval
	if pingInterval == 0 {
		pingInterval = 30 * time.Second
	}

	readTimeout := cfg.ReadTimeout
	if readTimeout == 0 {
		readTimeout = 60 * time.Second
	}

	maxMessageSize := cfg.MaxMessageSize
	if maxMessageSize == 0 {
		maxMessageSize = 4096
	}

	checkOrigin := cfg.CheckOrigin
	if checkOrigin == nil {
		checkOrigin = func(*http.Request) bool { return true }
	}

	return &Manager{
		rooms:      cfg.Rooms,
		players:    cfg.Players,
		roomRepo:   cfg.RoomRepo,
		playerRepo: cfg.PlayerRepo,
		ticker:     cfg.Ticker,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     checkOrigin,
		},
		writeTimeout:   writeTimeout,
		pingInterval:   pingInterval,
		readTimeout:    readTimeout,
		maxMessageSize: maxMessageSize,
		sessions:       make(map[string]map[*session]bool),
		watches:        make(map[string]context.CancelFunc),
		broadcastCh:    make(chan broadcast, 256),
	}, nil
}

// Run processes broadcasts until the context is cancelled
func (m *Manager) Run(ctx context.Context) {
	log.Info().Msg("gateway started")

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("gateway shutting down")
			m.Close()
			return
		case msg := <-m.broadcastCh:
			m.deliver(msg)
		}
	}
}

// Close stops every room watch and running countdown
func (m *Manager) Close() {
	m.mu.Lock()
	for code, cancel := range m.watches {
		cancel()
		delete(m.watches, code)
	}
	m.mu.Unlock()

	m.ticker.StopAll()
}

// ServeHTTP upgrades the request and runs the session until the client
// disconnects
func (m *Manager) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := m.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error().Err(err).Msg("websocket upgrade failed")
		return
	}

	// The request context is cancelled the moment this handler returns,
	// which is immediately after the upgrade hijacks the connection.
	// Commands therefore run against a context tied to the session
	// itself, cancelled when the session closes.
	ctx, cancel := context.WithCancel(context.WithoutCancel(r.Context()))

	sess := newSession(m, conn)
	sess.cancel = cancel

	go sess.writePump()
	go sess.readPump(ctx)
}

// bind attaches a session to a room pool, starting the room's change
// stream watch if this is the first session
func (m *Manager) bind(ctx context.Context, sess *session, code string) {
	m.mu.Lock()

	if prev := sess.roomCode; prev != "" && prev != code {
		m.detachLocked(sess, prev)
	}
	sess.roomCode = code

	if m.sessions[code] == nil {
		m.sessions[code] = make(map[*session]bool)
	}
	m.sessions[code][sess] = true

	_, watching := m.watches[code]
	if !watching {
		watchCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
		m.watches[code] = cancel
		go m.watch(watchCtx, code)
	}

	m.mu.Unlock()

	log.Debug().Str("code", code).Msg("session bound to room")
}

// unbind removes a session from its room pool, stopping the watch when
// the pool drains
func (m *Manager) unbind(sess *session) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if sess.roomCode != "" {
		m.detachLocked(sess, sess.roomCode)
	}
}

func (m *Manager) detachLocked(sess *session, code string) {
	pool, ok := m.sessions[code]
	if !ok {
		return
	}

	delete(pool, sess)
	if len(pool) == 0 {
		delete(m.sessions, code)
		if cancel, ok := m.watches[code]; ok {
			cancel()
			delete(m.watches, code)
		}
	}
}

// broadcastMessage queues a message for every session in a room
func (m *Manager) broadcastMessage(code string, msg *Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal broadcast")
		return
	}

	select {
	case m.broadcastCh <- broadcast{code: code, data: data}:
	default:
		log.Warn().Str("code", code).Msg("broadcast channel full, dropping message")
	}
}

func (m *Manager) deliver(msg broadcast) {
	m.mu.RLock()
	pool := m.sessions[msg.code]
	targets := make([]*session, 0, len(pool))
	for sess := range pool {
		targets = append(targets, sess)
	}
	m.mu.RUnlock()

	for _, sess := range targets {
		select {
		case sess.send <- msg.data:
		default:
			log.Warn().Str("code", msg.code).Msg("session send buffer full, closing")
			sess.close()
		}
	}
}

// watch follows a room's change streams and pushes fresh snapshots to
// the pool after every committed change
func (m *Manager) watch(ctx context.Context, code string) {
	roomSub, err := m.roomRepo.SubscribeRoom(ctx, &roomRepo.SubscribeRoomInput{Code: code})
	if err != nil {
		log.Error().Err(err).Str("code", code).Msg("room subscription failed")
		return
	}
	defer roomSub.Unsubscribe()

	playerSub, err := m.playerRepo.SubscribePlayers(ctx, &playerRepo.SubscribePlayersInput{RoomCode: code})
	if err != nil {
		log.Error().Err(err).Str("code", code).Msg("player subscription failed")
		return
	}
	defer playerSub.Unsubscribe()

	log.Debug().Str("code", code).Msg("room watch started")

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-roomSub.Events:
			if !ok {
				return
			}
			if ev.Type == roomRepo.EventRoomClosed {
				m.broadcastMessage(code, &Message{Type: MessageRoomClosed})
				continue
			}
			m.pushRoomSnapshot(ctx, code)
		case _, ok := <-playerSub.Events:
			if !ok {
				return
			}
			m.pushPlayerSnapshot(ctx, code)
		}
	}
}

func (m *Manager) pushRoomSnapshot(ctx context.Context, code string) {
	out, err := m.rooms.GetRoom(ctx, &roomSvc.GetRoomInput{Code: code})
	if errors.Is(err, roomSvc.ErrRoomNotFound) {
		m.broadcastMessage(code, &Message{Type: MessageRoomClosed})
		return
	}
	if err != nil {
		log.Error().Err(err).Str("code", code).Msg("room snapshot failed")
		return
	}

	m.broadcastMessage(code, &Message{Type: MessageRoom, Data: newRoomView(out.Room)})
}

func (m *Manager) pushPlayerSnapshot(ctx context.Context, code string) {
	out, err := m.players.ListPlayers(ctx, &playerSvc.ListPlayersInput{RoomCode: code})
	if err != nil {
		log.Error().Err(err).Str("code", code).Msg("player snapshot failed")
		return
	}

	m.broadcastMessage(code, &Message{
		Type: MessagePlayers,
		Data: newPlayerViews(out.Players, false),
	})
}
