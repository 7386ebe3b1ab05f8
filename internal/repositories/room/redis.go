package room

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
	roomKeyPrefix      = "room:"
	buzzesKeySuffix    = ":buzzes"
	buzzedKeySuffix    = ":buzzed"
	allowedKeySuffix   = ":allowed"
	eventsKeySuffix    = ":events"
	hostRoomsKeyPrefix = "host_rooms:" // Index for host session resumption
)

// ErrRoomNotFound is returned when a room is not found
var ErrRoomNotFound = errors.New("room not found")

// ErrRoomExists is returned when creating a room whose code is taken
var ErrRoomExists = errors.New("room already exists")

// ErrRoundNotFound is returned when a round ID does not resolve in the
// room's configuration list
var ErrRoundNotFound = errors.New("round not found")

// Buzz precondition failures. SubmitBuzz checks these inside one atomic
// script, in this order.
var (
	ErrBuzzTiming       = errors.New("buzz window is not open")
	ErrBuzzDuplicate    = errors.New("player already buzzed")
	ErrBuzzFull         = errors.New("buzz slots are full")
	ErrBuzzNotQualified = errors.New("player is not qualified for this round")
)

// createScript inserts a room only if the code is free. A plain write
// would silently overwrite an existing room on a code collision.
var createScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 1 then
  return 0
end
redis.call('HSET', KEYS[1], 'code', ARGV[1])
redis.call('HSET', KEYS[1], 'host_id', ARGV[2])
redis.call('HSET', KEYS[1], 'admin_pin', ARGV[3])
redis.call('HSET', KEYS[1], 'rounds', ARGV[4])
redis.call('HSET', KEYS[1], 'teams', ARGV[5])
redis.call('HSET', KEYS[1], 'current_round', ARGV[6])
redis.call('HSET', KEYS[1], 'timer', ARGV[7])
redis.call('HSET', KEYS[1], 'is_active', '0')
redis.call('HSET', KEYS[1], 'restricted', '0')
redis.call('HSET', KEYS[1], 'start_time', '0')
redis.call('HSET', KEYS[1], 'created_at', ARGV[8])
redis.call('HSET', KEYS[1], 'updated_at', ARGV[8])
redis.call('ZADD', KEYS[2], ARGV[8], ARGV[1])
if tonumber(ARGV[9]) > 0 then
  redis.call('EXPIRE', KEYS[1], ARGV[9])
end
return 1
`)

// submitBuzzScript checks every buzz precondition and appends the entry
// in one atomic step. Two near-simultaneous submitters therefore both
// land, in commit order, instead of one overwriting the other.
var submitBuzzScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 0 then
  return 'not_found'
end
if redis.call('HGET', KEYS[1], 'is_active') ~= '1' then
  return 'timing'
end
local timer = tonumber(redis.call('HGET', KEYS[1], 'timer'))
if timer == nil or timer <= 0 then
  return 'timing'
end
if redis.call('SISMEMBER', KEYS[3], ARGV[1]) == 1 then
  return 'duplicate'
end
if redis.call('LLEN', KEYS[2]) >= tonumber(ARGV[3]) then
  return 'full'
end
if redis.call('HGET', KEYS[1], 'restricted') == '1' and redis.call('SISMEMBER', KEYS[4], ARGV[1]) == 0 then
  return 'not_qualified'
end
redis.call('SADD', KEYS[3], ARGV[1])
redis.call('HSET', KEYS[1], 'updated_at', ARGV[4])
return redis.call('RPUSH', KEYS[2], ARGV[2])
`)

// tickScript decrements the countdown only while the observed value still
// holds, so duplicate host sessions firing the same second cannot
// double-decrement. Ticking suspends once all buzz slots fill, and a
// spent timer flips the room inactive on the next attempt.
var tickScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 0 then
  return 'not_found'
end
if redis.call('HGET', KEYS[1], 'is_active') ~= '1' then
  return 'inactive'
end
local timer = tonumber(redis.call('HGET', KEYS[1], 'timer'))
if timer == nil or timer <= 0 then
  redis.call('HSET', KEYS[1], 'timer', '0')
  redis.call('HSET', KEYS[1], 'is_active', '0')
  redis.call('HSET', KEYS[1], 'updated_at', ARGV[3])
  return 'expired'
end
if redis.call('LLEN', KEYS[2]) >= tonumber(ARGV[2]) then
  return 'frozen'
end
if timer ~= tonumber(ARGV[1]) then
  return 'stale'
end
redis.call('HSET', KEYS[1], 'timer', timer - 1)
redis.call('HSET', KEYS[1], 'updated_at', ARGV[3])
return timer - 1
`)

// appendRoundScript appends the next round inside one atomic step, so
// two host sessions appending at once get distinct dense IDs instead of
// one overwriting the other's list.
var appendRoundScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 0 then
  return 'not_found'
end
local raw = redis.call('HGET', KEYS[1], 'rounds')
local rounds = {}
if raw then
  rounds = cjson.decode(raw)
end
if type(rounds) ~= 'table' then
  rounds = {}
end
local duration = tonumber(ARGV[1])
if #rounds > 0 then
  duration = rounds[#rounds]['Duration']
end
local round = {ID = #rounds + 1, Duration = duration, Cutoff = 0}
rounds[#rounds + 1] = round
redis.call('HSET', KEYS[1], 'rounds', cjson.encode(rounds))
redis.call('HSET', KEYS[1], 'updated_at', ARGV[2])
return cjson.encode(round)
`)

// updateRoundScript edits one round field inside one atomic step. Two
// concurrent edits both land instead of the later read clobbering the
// earlier write. Changing the current round's duration while the window
// is closed also pushes the value into the displayed timer.
var updateRoundScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 0 then
  return 'not_found'
end
local raw = redis.call('HGET', KEYS[1], 'rounds')
if not raw then
  return 'round_not_found'
end
local rounds = cjson.decode(raw)
if type(rounds) ~= 'table' then
  return 'round_not_found'
end
local target
for _, r in ipairs(rounds) do
  if r['ID'] == tonumber(ARGV[1]) then
    target = r
  end
end
if target == nil then
  return 'round_not_found'
end
if ARGV[2] == 'duration' then
  target['Duration'] = tonumber(ARGV[3])
elseif ARGV[2] == 'cutoff' then
  target['Cutoff'] = tonumber(ARGV[3])
else
  return 'bad_field'
end
redis.call('HSET', KEYS[1], 'rounds', cjson.encode(rounds))
redis.call('HSET', KEYS[1], 'updated_at', ARGV[4])
if ARGV[2] == 'duration' and redis.call('HGET', KEYS[1], 'current_round') == ARGV[1] and redis.call('HGET', KEYS[1], 'is_active') ~= '1' then
  redis.call('HSET', KEYS[1], 'timer', ARGV[3])
end
return cjson.encode(target)
`)

// Config holds configuration for the Redis room repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed room repository
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

func roomKey(code string) string {
	return roomKeyPrefix + code
}

func buzzesKey(code string) string {
	return roomKeyPrefix + code + buzzesKeySuffix
}

func buzzedKey(code string) string {
	return roomKeyPrefix + code + buzzedKeySuffix
}

func allowedKey(code string) string {
	return roomKeyPrefix + code + allowedKeySuffix
}

func eventsChannel(code string) string {
	return roomKeyPrefix + code + eventsKeySuffix
}

func hostRoomsKey(hostID string) string {
	return hostRoomsKeyPrefix + hostID
}

// CreateRoom persists a new room, refusing to overwrite an existing code
func (r *redisRepository) CreateRoom(ctx context.Context, input *CreateRoomInput) error {
	if input == nil || input.Room == nil {
		return errors.New("input and room cannot be nil")
	}

	room := input.Room
	if room.Code == "" {
		return errors.New("room code cannot be empty")
	}

	roundsJSON, err := json.Marshal(room.Rounds)
	if err != nil {
		return fmt.Errorf("failed to marshal rounds: %w", err)
	}

	teamsJSON, err := json.Marshal(room.Teams)
	if err != nil {
		return fmt.Errorf("failed to marshal teams: %w", err)
	}

	createdMs := room.CreatedAt.UnixMilli()
	ttlSeconds := int64(input.TTL / time.Second)

	res, err := createScript.Run(ctx, r.client,
		[]string{roomKey(room.Code), hostRoomsKey(room.HostID)},
		room.Code,
		room.HostID,
		room.AdminPIN,
		string(roundsJSON),
		string(teamsJSON),
		room.CurrentRound,
		room.Timer,
		createdMs,
		ttlSeconds,
	).Result()
	if err != nil {
		return fmt.Errorf("failed to create room: %w", err)
	}

	if created, ok := res.(int64); !ok || created != 1 {
		return ErrRoomExists
	}

	return r.publish(ctx, room.Code, EventRoomCreated)
}

// GetRoom retrieves a room by code from Redis
func (r *redisRepository) GetRoom(ctx context.Context, input *GetRoomInput) (*models.Room, error) {
	if input == nil || input.Code == "" {
		return nil, errors.New("input and room code cannot be empty")
	}

	fields, err := r.client.HGetAll(ctx, roomKey(input.Code)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get room: %w", err)
	}

	if len(fields) == 0 {
		return nil, ErrRoomNotFound
	}

	room, err := roomFromHash(fields)
	if err != nil {
		return nil, fmt.Errorf("failed to decode room %s: %w", input.Code, err)
	}

	entries, err := r.client.LRange(ctx, buzzesKey(input.Code), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get buzzes: %w", err)
	}

	room.Buzzes = make([]*models.BuzzEntry, 0, len(entries))
	for _, raw := range entries {
		var entry models.BuzzEntry
		if err := json.Unmarshal([]byte(raw), &entry); err != nil {
			return nil, fmt.Errorf("failed to unmarshal buzz entry: %w", err)
		}
		room.Buzzes = append(room.Buzzes, &entry)
	}

	if fields["restricted"] == "1" {
		allowed, err := r.client.SMembers(ctx, allowedKey(input.Code)).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to get allowed players: %w", err)
		}
		if allowed == nil {
			allowed = []string{}
		}
		room.AllowedPlayerIDs = allowed
	}

	return room, nil
}

// GetRoomsByHost retrieves all rooms for a host, newest first
func (r *redisRepository) GetRoomsByHost(ctx context.Context, input *GetRoomsByHostInput) (*GetRoomsByHostOutput, error) {
	if input == nil || input.HostID == "" {
		return nil, errors.New("input and host ID cannot be empty")
	}

	codes, err := r.client.ZRevRange(ctx, hostRoomsKey(input.HostID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get host rooms: %w", err)
	}

	rooms := make([]*models.Room, 0, len(codes))
	for _, code := range codes {
		room, err := r.GetRoom(ctx, &GetRoomInput{Code: code})
		if err != nil {
			// Skip rooms that expired or were closed under the index
			if errors.Is(err, ErrRoomNotFound) {
				continue
			}
			return nil, err
		}
		rooms = append(rooms, room)
	}

	return &GetRoomsByHostOutput{Rooms: rooms}, nil
}

// SetHost reassigns the controlling host
func (r *redisRepository) SetHost(ctx context.Context, input *SetHostInput) error {
	if input == nil || input.Code == "" {
		return errors.New("input and room code cannot be empty")
	}

	room, err := r.GetRoom(ctx, &GetRoomInput{Code: input.Code})
	if err != nil {
		return err
	}

	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, roomKey(input.Code), "host_id", input.HostID)
	pipe.ZRem(ctx, hostRoomsKey(room.HostID), input.Code)
	pipe.ZAdd(ctx, hostRoomsKey(input.HostID), redis.Z{
		Score:  float64(room.CreatedAt.UnixMilli()),
		Member: input.Code,
	})
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to set host: %w", err)
	}

	return r.publish(ctx, input.Code, EventHostClaimed)
}

// SetTeams replaces the room's team list
func (r *redisRepository) SetTeams(ctx context.Context, input *SetTeamsInput) error {
	if input == nil || input.Code == "" {
		return errors.New("input and room code cannot be empty")
	}

	if err := r.requireRoom(ctx, input.Code); err != nil {
		return err
	}

	teamsJSON, err := json.Marshal(input.Teams)
	if err != nil {
		return fmt.Errorf("failed to marshal teams: %w", err)
	}

	if err := r.client.HSet(ctx, roomKey(input.Code), "teams", string(teamsJSON)).Err(); err != nil {
		return fmt.Errorf("failed to set teams: %w", err)
	}

	return r.publish(ctx, input.Code, EventTeamsUpdated)
}

// AppendRound atomically appends the next round to the configuration list
func (r *redisRepository) AppendRound(ctx context.Context, input *AppendRoundInput) (*AppendRoundOutput, error) {
	if input == nil || input.Code == "" {
		return nil, errors.New("input and room code cannot be empty")
	}

	res, err := appendRoundScript.Run(ctx, r.client,
		[]string{roomKey(input.Code)},
		input.DefaultDuration,
		nowMilli(),
	).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to append round: %w", err)
	}

	raw, ok := res.(string)
	if !ok {
		return nil, fmt.Errorf("unexpected append round result: %v", res)
	}
	if raw == "not_found" {
		return nil, ErrRoomNotFound
	}

	var round models.Round
	if err := json.Unmarshal([]byte(raw), &round); err != nil {
		return nil, fmt.Errorf("failed to unmarshal appended round: %w", err)
	}

	if err := r.publish(ctx, input.Code, EventRoundsUpdated); err != nil {
		return nil, err
	}

	return &AppendRoundOutput{Round: &round}, nil
}

// UpdateRound atomically edits one field of a round's configuration
func (r *redisRepository) UpdateRound(ctx context.Context, input *UpdateRoundInput) (*UpdateRoundOutput, error) {
	if input == nil || input.Code == "" {
		return nil, errors.New("input and room code cannot be empty")
	}

	res, err := updateRoundScript.Run(ctx, r.client,
		[]string{roomKey(input.Code)},
		input.RoundID,
		input.Field,
		input.Value,
		nowMilli(),
	).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to update round: %w", err)
	}

	raw, ok := res.(string)
	if !ok {
		return nil, fmt.Errorf("unexpected update round result: %v", res)
	}

	switch raw {
	case "not_found":
		return nil, ErrRoomNotFound
	case "round_not_found":
		return nil, ErrRoundNotFound
	case "bad_field":
		return nil, fmt.Errorf("unknown round field %q", input.Field)
	}

	var round models.Round
	if err := json.Unmarshal([]byte(raw), &round); err != nil {
		return nil, fmt.Errorf("failed to unmarshal updated round: %w", err)
	}

	if err := r.publish(ctx, input.Code, EventRoundsUpdated); err != nil {
		return nil, err
	}

	return &UpdateRoundOutput{Round: &round}, nil
}

// SelectRound points the room at a round and installs its qualification set
func (r *redisRepository) SelectRound(ctx context.Context, input *SelectRoundInput) error {
	if input == nil || input.Code == "" {
		return errors.New("input and room code cannot be empty")
	}

	if err := r.requireRoom(ctx, input.Code); err != nil {
		return err
	}

	restricted := "0"
	if input.Allowed != nil {
		restricted = "1"
	}

	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, roomKey(input.Code),
		"current_round", input.RoundID,
		"timer", input.Timer,
		"is_active", "0",
		"restricted", restricted,
	)
	pipe.Del(ctx, buzzesKey(input.Code), buzzedKey(input.Code), allowedKey(input.Code))
	if len(input.Allowed) > 0 {
		members := make([]interface{}, 0, len(input.Allowed))
		for _, id := range input.Allowed {
			members = append(members, id)
		}
		pipe.SAdd(ctx, allowedKey(input.Code), members...)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to select round: %w", err)
	}

	return r.publish(ctx, input.Code, EventRoundSelected)
}

// StartRound opens the buzz window
func (r *redisRepository) StartRound(ctx context.Context, input *StartRoundInput) error {
	if input == nil || input.Code == "" {
		return errors.New("input and room code cannot be empty")
	}

	if err := r.requireRoom(ctx, input.Code); err != nil {
		return err
	}

	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, roomKey(input.Code),
		"is_active", "1",
		"start_time", input.StartTime.UnixMilli(),
	)
	pipe.Del(ctx, buzzesKey(input.Code), buzzedKey(input.Code))
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to start round: %w", err)
	}

	return r.publish(ctx, input.Code, EventRoundStarted)
}

// ResetRound closes the window and restores the timer
func (r *redisRepository) ResetRound(ctx context.Context, input *ResetRoundInput) error {
	if input == nil || input.Code == "" {
		return errors.New("input and room code cannot be empty")
	}

	if err := r.requireRoom(ctx, input.Code); err != nil {
		return err
	}

	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, roomKey(input.Code),
		"is_active", "0",
		"timer", input.Timer,
	)
	pipe.Del(ctx, buzzesKey(input.Code), buzzedKey(input.Code))
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to reset round: %w", err)
	}

	return r.publish(ctx, input.Code, EventRoundReset)
}

// Tick attempts one idempotent countdown decrement
func (r *redisRepository) Tick(ctx context.Context, input *TickInput) (*TickOutput, error) {
	if input == nil || input.Code == "" {
		return nil, errors.New("input and room code cannot be empty")
	}

	res, err := tickScript.Run(ctx, r.client,
		[]string{roomKey(input.Code), buzzesKey(input.Code)},
		input.Expected,
		models.MaxBuzzes,
		nowMilli(),
	).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to tick room: %w", err)
	}

	switch v := res.(type) {
	case int64:
		if err := r.publish(ctx, input.Code, EventTimerTicked); err != nil {
			return nil, err
		}
		return &TickOutput{State: TickStateTicked, Timer: int(v)}, nil
	case string:
		switch v {
		case "not_found":
			return nil, ErrRoomNotFound
		case "inactive":
			return &TickOutput{State: TickStateInactive}, nil
		case "expired":
			if err := r.publish(ctx, input.Code, EventRoundExpired); err != nil {
				return nil, err
			}
			return &TickOutput{State: TickStateExpired}, nil
		case "frozen":
			return &TickOutput{State: TickStateFrozen, Timer: input.Expected}, nil
		case "stale":
			return &TickOutput{State: TickStateStale}, nil
		}
	}

	return nil, fmt.Errorf("unexpected tick result: %v", res)
}

// SubmitBuzz atomically validates and appends a buzz entry
func (r *redisRepository) SubmitBuzz(ctx context.Context, input *SubmitBuzzInput) (*SubmitBuzzOutput, error) {
	if input == nil || input.Code == "" || input.Entry == nil {
		return nil, errors.New("input, room code and entry cannot be empty")
	}

	if input.Entry.PlayerID == "" {
		return nil, errors.New("entry player ID cannot be empty")
	}

	entryJSON, err := json.Marshal(input.Entry)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal buzz entry: %w", err)
	}

	res, err := submitBuzzScript.Run(ctx, r.client,
		[]string{
			roomKey(input.Code),
			buzzesKey(input.Code),
			buzzedKey(input.Code),
			allowedKey(input.Code),
		},
		input.Entry.PlayerID,
		string(entryJSON),
		models.MaxBuzzes,
		nowMilli(),
	).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to submit buzz: %w", err)
	}

	switch v := res.(type) {
	case int64:
		if err := r.publish(ctx, input.Code, EventBuzzSubmitted); err != nil {
			return nil, err
		}
		return &SubmitBuzzOutput{Rank: int(v)}, nil
	case string:
		switch v {
		case "not_found":
			return nil, ErrRoomNotFound
		case "timing":
			return nil, ErrBuzzTiming
		case "duplicate":
			return nil, ErrBuzzDuplicate
		case "full":
			return nil, ErrBuzzFull
		case "not_qualified":
			return nil, ErrBuzzNotQualified
		}
	}

	return nil, fmt.Errorf("unexpected buzz result: %v", res)
}

// DeleteRoom removes a room and its indexes
func (r *redisRepository) DeleteRoom(ctx context.Context, input *DeleteRoomInput) error {
	if input == nil || input.Code == "" {
		return errors.New("input and room code cannot be empty")
	}

	// Get the room first to find its host index entry
	room, err := r.GetRoom(ctx, &GetRoomInput{Code: input.Code})
	if err != nil {
		return err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx,
		roomKey(input.Code),
		buzzesKey(input.Code),
		buzzedKey(input.Code),
		allowedKey(input.Code),
	)
	pipe.ZRem(ctx, hostRoomsKey(room.HostID), input.Code)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete room: %w", err)
	}

	return r.publish(ctx, input.Code, EventRoomClosed)
}

// SubscribeRoom streams change events for a room
func (r *redisRepository) SubscribeRoom(ctx context.Context, input *SubscribeRoomInput) (*SubscribeRoomOutput, error) {
	if input == nil || input.Code == "" {
		return nil, errors.New("input and room code cannot be empty")
	}

	pubsub := r.client.Subscribe(ctx, eventsChannel(input.Code))

	// Force the subscription onto the wire before returning so callers
	// never miss events published after SubscribeRoom succeeds
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe to room: %w", err)
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

	return &SubscribeRoomOutput{
		Events:      events,
		Unsubscribe: unsubscribe,
	}, nil
}

// requireRoom fails with ErrRoomNotFound when the room key is absent
func (r *redisRepository) requireRoom(ctx context.Context, code string) error {
	exists, err := r.client.Exists(ctx, roomKey(code)).Result()
	if err != nil {
		return fmt.Errorf("failed to check room: %w", err)
	}
	if exists == 0 {
		return ErrRoomNotFound
	}
	return nil
}

// publish emits a change event on the room's channel
func (r *redisRepository) publish(ctx context.Context, code string, eventType EventType) error {
	payload, err := json.Marshal(&Event{Type: eventType, Code: code})
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err := r.client.Publish(ctx, eventsChannel(code), payload).Err(); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}

func nowMilli() int64 {
	return time.Now().UnixMilli()
}

// roomFromHash decodes the room hash fields into a model
func roomFromHash(fields map[string]string) (*models.Room, error) {
	room := &models.Room{
		Code:     fields["code"],
		HostID:   fields["host_id"],
		AdminPIN: fields["admin_pin"],
	}

	if raw := fields["rounds"]; raw != "" {
		if err := json.Unmarshal([]byte(raw), &room.Rounds); err != nil {
			return nil, fmt.Errorf("failed to unmarshal rounds: %w", err)
		}
	}

	if raw := fields["teams"]; raw != "" {
		if err := json.Unmarshal([]byte(raw), &room.Teams); err != nil {
			return nil, fmt.Errorf("failed to unmarshal teams: %w", err)
		}
	}

	var err error
	if room.CurrentRound, err = strconv.Atoi(fields["current_round"]); err != nil {
		return nil, fmt.Errorf("bad current_round: %w", err)
	}

	if room.Timer, err = strconv.Atoi(fields["timer"]); err != nil {
		return nil, fmt.Errorf("bad timer: %w", err)
	}

	room.IsActive = fields["is_active"] == "1"

	if startMs, err := strconv.ParseInt(fields["start_time"], 10, 64); err == nil && startMs > 0 {
		room.StartTime = time.UnixMilli(startMs)
	}

	if createdMs, err := strconv.ParseInt(fields["created_at"], 10, 64); err == nil && createdMs > 0 {
		room.CreatedAt = time.UnixMilli(createdMs)
	}

	if updatedMs, err := strconv.ParseInt(fields["updated_at"], 10, 64); err == nil && updatedMs > 0 {
		room.UpdatedAt = time.UnixMilli(updatedMs)
	}

	return room, nil
}
