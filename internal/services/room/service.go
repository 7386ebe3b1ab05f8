package room

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/KirkDiggler/buzzd/internal/codes"
	"github.com/KirkDiggler/buzzd/internal/common/clock"
	"github.com/KirkDiggler/buzzd/internal/models"
	"github.com/KirkDiggler/buzzd/internal/qualify"
	playerRepo "github.com/KirkDiggler/buzzd/internal/repositories/player"
	roomRepo "github.com/KirkDiggler/buzzd/internal/repositories/room"
)

const defaultCreateRetries = 5

// service implements the Service interface
type service struct {
	roomRepo      roomRepo.Repository
	playerRepo    playerRepo.Repository
	codeGen       codes.Generator
	clock         clock.Clock
	createRetries int
	roomTTL       time.Duration
}

// New creates a new room service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.RoomRepo == nil {
		return nil, ErrNilRoomRepo
	}

	if cfg.PlayerRepo == nil {
		return nil, ErrNilPlayerRepo
	}

	if cfg.CodeGen == nil {
		return nil, ErrNilCodeGenerator
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	retries := cfg.CreateRetries
	if retries <= 0 {
		retries = defaultCreateRetries
	}

	return &service{
		roomRepo:      cfg.RoomRepo,
		playerRepo:    cfg.PlayerRepo,
		codeGen:       cfg.CodeGen,
		clock:         cfg.Clock,
		createRetries: retries,
		roomTTL:       cfg.RoomTTL,
	}, nil
}

// CreateRoom allocates a room under a fresh join code. Code collisions
// are resolved by regenerating; the repository's create is atomic so two
// hosts can never claim the same code.
func (s *service) CreateRoom(ctx context.Context, input *CreateRoomInput) (*CreateRoomOutput, error) {
	if input.HostID == "" {
		return nil, ErrHostRequired
	}

	if len(input.AdminPIN) < MinPINLength {
		return nil, ErrPINTooShort
	}

	now := s.clock.Now()

	for attempt := 0; attempt < s.createRetries; attempt++ {
		room := &models.Room{
			Code:     s.codeGen.RoomCode(),
			HostID:   input.HostID,
			AdminPIN: input.AdminPIN,
			Rounds: []*models.Round{
				{ID: 1, Duration: DefaultRoundDuration, Cutoff: 0},
			},
			CurrentRound: 1,
			Timer:        DefaultRoundDuration,
			CreatedAt:    now,
			UpdatedAt:    now,
		}

		err := s.roomRepo.CreateRoom(ctx, &roomRepo.CreateRoomInput{
			Room: room,
			TTL:  s.roomTTL,
		})
		if errors.Is(err, roomRepo.ErrRoomExists) {
			log.Warn().Str("code", room.Code).Msg("room code collision, retrying")
			continue
		}
		if err != nil {
			return nil, err
		}

		return &CreateRoomOutput{Room: room}, nil
	}

	return nil, ErrCodesExhausted
}

// ClaimHost checks the admin PIN and binds the caller as the room's
// controlling host. The PIN comparison is an exact string match.
func (s *service) ClaimHost(ctx context.Context, input *ClaimHostInput) (*ClaimHostOutput, error) {
	if input.HostID == "" {
		return nil, ErrHostRequired
	}

	room, err := s.getRoom(ctx, input.Code)
	if err != nil {
		return nil, err
	}

	if room.AdminPIN != input.AdminPIN {
		return nil, ErrPINMismatch
	}

	if room.HostID != input.HostID {
		err = s.roomRepo.SetHost(ctx, &roomRepo.SetHostInput{
			Code:   room.Code,
			HostID: input.HostID,
		})
		if err != nil {
			return nil, err
		}

		room.HostID = input.HostID
	}

	return &ClaimHostOutput{Room: room}, nil
}

// GetRoom retrieves a room by join code
func (s *service) GetRoom(ctx context.Context, input *GetRoomInput) (*GetRoomOutput, error) {
	room, err := s.getRoom(ctx, input.Code)
	if err != nil {
		return nil, err
	}

	return &GetRoomOutput{Room: room}, nil
}

// ListRoomsByHost returns the rooms a host has created, newest first
func (s *service) ListRoomsByHost(ctx context.Context, input *ListRoomsByHostInput) (*ListRoomsByHostOutput, error) {
	if input.HostID == "" {
		return nil, ErrHostRequired
	}

	out, err := s.roomRepo.GetRoomsByHost(ctx, &roomRepo.GetRoomsByHostInput{
		HostID: input.HostID,
	})
	if err != nil {
		return nil, err
	}

	return &ListRoomsByHostOutput{Rooms: out.Rooms}, nil
}

// AddTeam appends a team name to the room's team list
func (s *service) AddTeam(ctx context.Context, input *AddTeamInput) (*AddTeamOutput, error) {
	if input.Team == "" {
		return nil, ErrTeamNameRequired
	}

	room, err := s.getRoom(ctx, input.Code)
	if err != nil {
		return nil, err
	}

	for _, team := range room.Teams {
		if team == input.Team {
			return nil, ErrTeamExists
		}
	}

	teams := append(room.Teams, input.Team)

	err = s.roomRepo.SetTeams(ctx, &roomRepo.SetTeamsInput{
		Code:  room.Code,
		Teams: teams,
	})
	if err != nil {
		return nil, err
	}

	return &AddTeamOutput{Teams: teams}, nil
}

// RemoveTeam drops a team name from the room's team list
func (s *service) RemoveTeam(ctx context.Context, input *RemoveTeamInput) (*RemoveTeamOutput, error) {
	room, err := s.getRoom(ctx, input.Code)
	if err != nil {
		return nil, err
	}

	teams := make([]string, 0, len(room.Teams))
	found := false
	for _, team := range room.Teams {
		if team == input.Team {
			found = true
			continue
		}
		teams = append(teams, team)
	}

	if !found {
		return nil, ErrTeamNotFound
	}

	err = s.roomRepo.SetTeams(ctx, &roomRepo.SetTeamsInput{
		Code:  room.Code,
		Teams: teams,
	})
	if err != nil {
		return nil, err
	}

	return &RemoveTeamOutput{Teams: teams}, nil
}

// AddRound appends a new round. The new round inherits the previous
// round's duration and starts unrestricted. The append happens inside
// the repository's atomic primitive, so two host sessions adding rounds
// at once still get distinct dense IDs.
func (s *service) AddRound(ctx context.Context, input *AddRoundInput) (*AddRoundOutput, error) {
	code, err := normalizeCode(input.Code)
	if err != nil {
		return nil, err
	}

	out, err := s.roomRepo.AppendRound(ctx, &roomRepo.AppendRoundInput{
		Code:            code,
		DefaultDuration: DefaultRoundDuration,
	})
	if errors.Is(err, roomRepo.ErrRoomNotFound) {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, err
	}

	return &AddRoundOutput{Round: out.Round}, nil
}

// UpdateRoundConfig changes one field of a round's configuration. When
// the duration of the currently selected round changes while its window
// is closed, the displayed timer follows the new value; the repository
// applies the edit and the timer push in one atomic step.
func (s *service) UpdateRoundConfig(ctx context.Context, input *UpdateRoundConfigInput) (*UpdateRoundConfigOutput, error) {
	if input.Field != RoundFieldDuration && input.Field != RoundFieldCutoff {
		return nil, ErrInvalidField
	}

	code, err := normalizeCode(input.Code)
	if err != nil {
		return nil, err
	}

	out, err := s.roomRepo.UpdateRound(ctx, &roomRepo.UpdateRoundInput{
		Code:    code,
		RoundID: input.RoundID,
		Field:   string(input.Field),
		Value:   input.Value,
	})
	if err != nil {
		switch {
		case errors.Is(err, roomRepo.ErrRoomNotFound):
			return nil, ErrRoomNotFound
		case errors.Is(err, roomRepo.ErrRoundNotFound):
			return nil, ErrRoundNotFound
		}
		return nil, err
	}

	return &UpdateRoundConfigOutput{Round: out.Round}, nil
}

// SelectRound points the room at a round. The qualification set is
// computed once here, from the leaderboard as it stands right now, and
// does not move with later score changes.
func (s *service) SelectRound(ctx context.Context, input *SelectRoundInput) (*SelectRoundOutput, error) {
	room, err := s.getRoom(ctx, input.Code)
	if err != nil {
		return nil, err
	}

	var round *models.Round
	for _, r := range room.Rounds {
		if r.ID == input.RoundID {
			round = r
			break
		}
	}
	if round == nil {
		return nil, ErrRoundNotFound
	}

	var allowed []string
	if round.Cutoff > 0 {
		players, err := s.playerRepo.GetPlayersByRoom(ctx, &playerRepo.GetPlayersByRoomInput{
			RoomCode: room.Code,
		})
		if err != nil {
			return nil, err
		}

		allowed = qualify.ComputeAllowed(round.Cutoff, players.Players)
	}

	err = s.roomRepo.SelectRound(ctx, &roomRepo.SelectRoundInput{
		Code:    room.Code,
		RoundID: round.ID,
		Timer:   round.Duration,
		Allowed: allowed,
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("code", room.Code).
		Int("round", round.ID).
		Int("cutoff", round.Cutoff).
		Int("qualified", len(allowed)).
		Msg("round selected")

	return &SelectRoundOutput{Round: round, AllowedPlayerIDs: allowed}, nil
}

// StartRound opens the buzz window for the room's current round
func (s *service) StartRound(ctx context.Context, input *StartRoundInput) (*StartRoundOutput, error) {
	room, err := s.getRoom(ctx, input.Code)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()

	err = s.roomRepo.StartRound(ctx, &roomRepo.StartRoundInput{
		Code:      room.Code,
		StartTime: now,
	})
	if err != nil {
		return nil, err
	}

	return &StartRoundOutput{Timer: room.Timer, StartTime: now}, nil
}

// ResetRound closes the window and restores the configured duration of
// the current round
func (s *service) ResetRound(ctx context.Context, input *ResetRoundInput) (*ResetRoundOutput, error) {
	room, err := s.getRoom(ctx, input.Code)
	if err != nil {
		return nil, err
	}

	timer := DefaultRoundDuration
	if cfg := room.CurrentRoundConfig(); cfg != nil {
		timer = cfg.Duration
	}

	err = s.roomRepo.ResetRound(ctx, &roomRepo.ResetRoundInput{
		Code:  room.Code,
		Timer: timer,
	})
	if err != nil {
		return nil, err
	}

	return &ResetRoundOutput{Timer: timer}, nil
}

// Tick advances the countdown by one second. Expected carries the value
// the caller last saw, which makes a duplicate tick from a second host
// session a no-op instead of a double decrement.
func (s *service) Tick(ctx context.Context, input *TickInput) (*TickOutput, error) {
	code, err := normalizeCode(input.Code)
	if err != nil {
		return nil, err
	}

	out, err := s.roomRepo.Tick(ctx, &roomRepo.TickInput{
		Code:     code,
		Expected: input.Expected,
	})
	if errors.Is(err, roomRepo.ErrRoomNotFound) {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, err
	}

	return &TickOutput{State: out.State, Timer: out.Timer}, nil
}

// SubmitBuzz records a player's buzz. All preconditions (window open,
// no duplicate, free slot, qualification) are checked atomically by the
// repository, so racing players each land a distinct rank.
func (s *service) SubmitBuzz(ctx context.Context, input *SubmitBuzzInput) (*SubmitBuzzOutput, error) {
	if input.PlayerID == "" {
		return nil, ErrPlayerRequired
	}

	code, err := normalizeCode(input.Code)
	if err != nil {
		return nil, err
	}

	out, err := s.roomRepo.SubmitBuzz(ctx, &roomRepo.SubmitBuzzInput{
		Code: code,
		Entry: &models.BuzzEntry{
			PlayerID:  input.PlayerID,
			Name:      input.Name,
			Team:      input.Team,
			Timestamp: s.clock.Now(),
		},
	})
	if err != nil {
		switch {
		case errors.Is(err, roomRepo.ErrRoomNotFound):
			return nil, ErrRoomNotFound
		case errors.Is(err, roomRepo.ErrBuzzTiming):
			return nil, ErrBuzzClosed
		case errors.Is(err, roomRepo.ErrBuzzDuplicate):
			return nil, ErrBuzzDuplicate
		case errors.Is(err, roomRepo.ErrBuzzFull):
			return nil, ErrBuzzQueueFull
		case errors.Is(err, roomRepo.ErrBuzzNotQualified):
			return nil, ErrBuzzNotQualified
		}
		return nil, err
	}

	return &SubmitBuzzOutput{Rank: out.Rank}, nil
}

// CloseRoom deletes the room and its state
func (s *service) CloseRoom(ctx context.Context, input *CloseRoomInput) (*CloseRoomOutput, error) {
	code, err := normalizeCode(input.Code)
	if err != nil {
		return nil, err
	}

	err = s.roomRepo.DeleteRoom(ctx, &roomRepo.DeleteRoomInput{Code: code})
	if errors.Is(err, roomRepo.ErrRoomNotFound) {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, err
	}

	return &CloseRoomOutput{}, nil
}

// getRoom normalizes the code and maps the repository's not-found error
func (s *service) getRoom(ctx context.Context, rawCode string) (*models.Room, error) {
	code, err := normalizeCode(rawCode)
	if err != nil {
		return nil, err
	}

	room, err := s.roomRepo.GetRoom(ctx, &roomRepo.GetRoomInput{Code: code})
	if errors.Is(err, roomRepo.ErrRoomNotFound) {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, err
	}

	return room, nil
}

func normalizeCode(raw string) (string, error) {
	code := codes.NormalizeRoomCode(raw)
	if !codes.ValidRoomCode(code) {
		return "", ErrInvalidRoomCode
	}
	return code, nil
}
