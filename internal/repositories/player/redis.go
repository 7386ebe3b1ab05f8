package player

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/buzzd/internal/models"
)

const (
	// Key prefixes for Redis
	playerKeyPrefix      = "player:"
	roomPlayersKeyPrefix = "room_players:"
	accessCodeKeyPrefix  = "room_access:"
	eventsKeyPrefix      = "players:"
	eventsKeySuffix      = ":events"
)

// ErrPlayerNotFound is returned when a player is not found
var ErrPlayerNotFound = errors.New("player not found")

// Config holds configuration for the Redis player repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed player repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

func playerKey(playerID string) string {
	return playerKeyPrefix + playerID
}

func roomPlayersKey(roomCode string) string {
	return roomPlayersKeyPrefix + roomCode
}

func accessCodeKey(roomCode, accessCode string) string {
	return accessCodeKeyPrefix + roomCode + ":" + accessCode
}

func eventsChannel(roomCode string) string {
	return eventsKeyPrefix + roomCode + eventsKeySuffix
}

// SavePlayer persists a player to Redis
func (r *redisRepository) SavePlayer(ctx context.Context, input *SavePlayerInput) error {
	if input == nil || input.Player == nil {
		return errors.New("input and player cannot be nil")
	}

	p := input.Player

	// Ensure the player has an ID
	if p.ID == "" {
		return errors.New("player ID cannot be empty")
	}

	// A player rebinding to a different room must leave the old room's
	// roster, or the old leaderboard keeps a departed player
	prevRoom, err := r.client.HGet(ctx, playerKey(p.ID), "room_code").Result()
	if err != nil && err != redis.Nil {
		return fmt.Errorf("failed to get previous room: %w", err)
	}

	// Scores live in a hash field so deltas can apply server-side via
	// HINCRBYFLOAT instead of read-modify-write
	pipe := r.client.TxPipeline()
	if prevRoom != "" && prevRoom != p.RoomCode {
		pipe.SRem(ctx, roomPlayersKey(prevRoom), p.ID)
	}
	pipe.HSet(ctx, playerKey(p.ID),
		"id", p.ID,
		"name", p.Name,
		"team", p.Team,
		"room_code", p.RoomCode,
		"score", formatScore(p.Score),
		"access_code", p.AccessCode,
		"joined_at", p.JoinedAt.UnixMilli(),
	)
	if p.RoomCode != "" {
		pipe.SAdd(ctx, roomPlayersKey(p.RoomCode), p.ID)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save player: %w", err)
	}

	return r.publish(ctx, p.RoomCode, p.ID, EventPlayerSaved)
}

// GetPlayer retrieves a player by ID from Redis
func (r *redisRepository) GetPlayer(ctx context.Context, input *GetPlayerInput) (*models.Player, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	fields, err := r.client.HGetAll(ctx, playerKey(input.PlayerID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	if len(fields) == 0 {
		return nil, ErrPlayerNotFound
	}

	return playerFromHash(fields)
}

// GetPlayersByRoom retrieves all players bound to a room from Redis
func (r *redisRepository) GetPlayersByRoom(ctx context.Context, input *GetPlayersByRoomInput) (*GetPlayersByRoomOutput, error) {
	if input == nil || input.RoomCode == "" {
		return nil, errors.New("input and room code cannot be empty")
	}

	playerIDs, err := r.client.SMembers(ctx, roomPlayersKey(input.RoomCode)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get player IDs for room: %w", err)
	}

	// If there are no players, return an empty slice
	if len(playerIDs) == 0 {
		return &GetPlayersByRoomOutput{
			Players: []*models.Player{},
		}, nil
	}

	// Get all player records in one round trip using a pipeline
	pipe := r.client.Pipeline()
	playerCommands := make(map[string]*redis.MapStringStringCmd)

	for _, playerID := range playerIDs {
		playerCommands[playerID] = pipe.HGetAll(ctx, playerKey(playerID))
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to get players: %w", err)
	}

	players := make([]*models.Player, 0, len(playerIDs))
	for playerID, cmd := range playerCommands {
		fields, err := cmd.Result()
		if err != nil {
			return nil, fmt.Errorf("failed to get player %s: %w", playerID, err)
		}

		// Player was deleted between getting the IDs and fetching the record
		if len(fields) == 0 {
			continue
		}

		p, err := playerFromHash(fields)
		if err != nil {
			return nil, fmt.Errorf("failed to decode player %s: %w", playerID, err)
		}

		players = append(players, p)
	}

	return &GetPlayersByRoomOutput{
		Players: players,
	}, nil
}

// DeletePlayer removes a player and its indexes from Redis
func (r *redisRepository) DeletePlayer(ctx context.Context, input *DeletePlayerInput) error {
	if input == nil || input.PlayerID == "" {
		return errors.New("input and player ID cannot be empty")
	}

	// Get the player first to find its index entries
	p, err := r.GetPlayer(ctx, &GetPlayerInput{PlayerID: input.PlayerID})
	if err != nil {
		return err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, playerKey(input.PlayerID))
	if p.RoomCode != "" {
		pipe.SRem(ctx, roomPlayersKey(p.RoomCode), input.PlayerID)
	}
	if p.AccessCode != "" && p.RoomCode != "" {
		pipe.Del(ctx, accessCodeKey(p.RoomCode, p.AccessCode))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete player: %w", err)
	}

	return r.publish(ctx, p.RoomCode, input.PlayerID, EventPlayerDeleted)
}

// IncrScore applies a score delta atomically via HINCRBYFLOAT
func (r *redisRepository) IncrScore(ctx context.Context, input *IncrScoreInput) (*IncrScoreOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	// The existence check keeps a delta from conjuring a stray record
	p, err := r.GetPlayer(ctx, &GetPlayerInput{PlayerID: input.PlayerID})
	if err != nil {
		return nil, err
	}

	score, err := r.client.HIncrByFloat(ctx, playerKey(input.PlayerID), "score", input.Delta).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to adjust score: %w", err)
	}

	if err := r.publish(ctx, p.RoomCode, input.PlayerID, EventScoreAdjusted); err != nil {
		return nil, err
	}

	return &IncrScoreOutput{Score: score}, nil
}

// ReserveAccessCode claims a room-scoped access code with SETNX semantics
func (r *redisRepository) ReserveAccessCode(ctx context.Context, input *ReserveAccessCodeInput) (*ReserveAccessCodeOutput, error) {
	if input == nil || input.RoomCode == "" || input.AccessCode == "" || input.PlayerID == "" {
		return nil, errors.New("input, room code, access code and player ID cannot be empty")
	}

	reserved, err := r.client.SetNX(ctx, accessCodeKey(input.RoomCode, input.AccessCode), input.PlayerID, 0).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to reserve access code: %w", err)
	}

	return &ReserveAccessCodeOutput{Reserved: reserved}, nil
}

// GetPlayerByAccessCode resolves an access code to the player holding it
func (r *redisRepository) GetPlayerByAccessCode(ctx context.Context, input *GetPlayerByAccessCodeInput) (*models.Player, error) {
	if input == nil || input.RoomCode == "" || input.AccessCode == "" {
		return nil, errors.New("input, room code and access code cannot be empty")
	}

	playerID, err := r.client.Get(ctx, accessCodeKey(input.RoomCode, input.AccessCode)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to resolve access code: %w", err)
	}

	return r.GetPlayer(ctx, &GetPlayerInput{PlayerID: playerID})
}

// SubscribePlayers streams change events for a room's player collection
func (r *redisRepository) SubscribePlayers(ctx context.Context, input *SubscribePlayersInput) (*SubscribePlayersOutput, error) {
	if input == nil || input.RoomCode == "" {
		return nil, errors.New("input and room code cannot be empty")
	}

	pubsub := r.client.Subscribe(ctx, eventsChannel(input.RoomCode))

	// Force the subscription onto the wire before returning so callers
	// never miss events published after SubscribePlayers succeeds
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe to players: %w", err)
	}

	events := make(chan *Event, 32)
	go func() {
		defer close(events)
		for msg := range pubsub.Channel() {
			var event Event
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				continue
			}
			events <- &event
		}
	}()

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			_ = pubsub.Close()
		})
	}

	return &SubscribePlayersOutput{
		Events:      events,
		Unsubscribe: unsubscribe,
	}, nil
}

// publish emits a change event on the room's player channel
func (r *redisRepository) publish(ctx context.Context, roomCode, playerID string, eventType EventType) error {
	if roomCode == "" {
		return nil
	}

	payload, err := json.Marshal(&Event{Type: eventType, RoomCode: roomCode, PlayerID: playerID})
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err := r.client.Publish(ctx, eventsChannel(roomCode), payload).Err(); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}

func formatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', -1, 64)
}

// playerFromHash decodes the player hash fields into a model
func playerFromHash(fields map[string]string) (*models.Player, error) {
	p := &models.Player{
		ID:         fields["id"],
		Name:       fields["name"],
		Team:       fields["team"],
		RoomCode:   fields["room_code"],
		AccessCode: fields["access_code"],
	}

	if raw := fields["score"]; raw != "" {
		score, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("bad score: %w", err)
		}
		p.Score = score
	}

	if joinedMs, err := strconv.ParseInt(fields["joined_at"], 10, 64); err == nil && joinedMs > 0 {
		p.JoinedAt = time.UnixMilli(joinedMs)
	}

	return p, nil
}
