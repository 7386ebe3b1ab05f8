package player

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/KirkDiggler/buzzd/internal/codes"
	"github.com/KirkDiggler/buzzd/internal/common/clock"
	"github.com/KirkDiggler/buzzd/internal/common/uuid"
	"github.com/KirkDiggler/buzzd/internal/models"
	"github.com/KirkDiggler/buzzd/internal/qualify"
	playerRepo "github.com/KirkDiggler/buzzd/internal/repositories/player"
	roomRepo "github.com/KirkDiggler/buzzd/internal/repositories/room"
)

const defaultAccessCodeRetries = 10

// service implements the Service interface
type service struct {
	playerRepo        playerRepo.Repository
	roomRepo          roomRepo.Repository
	codeGen           codes.Generator
	clock             clock.Clock
	uuidGen           uuid.UUID
	accessCodeRetries int
}

// New creates a new player service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.PlayerRepo == nil {
		return nil, ErrNilPlayerRepo
	}

	if cfg.RoomRepo == nil {
		return nil, ErrNilRoomRepo
	}

	if cfg.CodeGen == nil {
		return nil, ErrNilCodeGenerator
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGen == nil {
		return nil, ErrNilUUIDGenerator
	}

	retries := cfg.AccessCodeRetries
	if retries <= 0 {
		retries = defaultAccessCodeRetries
	}

	return &service{
		playerRepo:        cfg.PlayerRepo,
		roomRepo:          cfg.RoomRepo,
		codeGen:           cfg.CodeGen,
		clock:             cfg.Clock,
		uuidGen:           cfg.UUIDGen,
		accessCodeRetries: retries,
	}, nil
}

// Join binds a device to a room. Joining is an upsert: a returning
// player keeps their score and access code, only the display name and
// team follow the new request.
func (s *service) Join(ctx context.Context, input *JoinInput) (*JoinOutput, error) {
	if input.PlayerID == "" {
		return nil, ErrPlayerRequired
	}

	if input.Name == "" {
		return nil, ErrNameRequired
	}

	room, err := s.getRoom(ctx, input.RoomCode)
	if err != nil {
		return nil, err
	}

	if err := validTeam(room, input.Team); err != nil {
		return nil, err
	}

	player := &models.Player{
		ID:       input.PlayerID,
		Name:     input.Name,
		Team:     input.Team,
		RoomCode: room.Code,
		JoinedAt: s.clock.Now(),
	}

	existing, err := s.playerRepo.GetPlayer(ctx, &playerRepo.GetPlayerInput{
		PlayerID: input.PlayerID,
	})
	if err != nil && !errors.Is(err, playerRepo.ErrPlayerNotFound) {
		return nil, err
	}
	if existing != nil {
		player.Score = existing.Score
		player.AccessCode = existing.AccessCode
		player.JoinedAt = existing.JoinedAt
	}

	err = s.playerRepo.SavePlayer(ctx, &playerRepo.SavePlayerInput{Player: player})
	if err != nil {
		return nil, err
	}

	return &JoinOutput{Player: player}, nil
}

// Register pre-creates a player slot for the host, minting an ID and
// reserving a room-unique access code the player can later log in with.
func (s *service) Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error) {
	if input.Name == "" {
		return nil, ErrNameRequired
	}

	room, err := s.getRoom(ctx, input.RoomCode)
	if err != nil {
		return nil, err
	}

	if err := validTeam(room, input.Team); err != nil {
		return nil, err
	}

	playerID := s.uuidGen.NewUUID()

	accessCode := ""
	for attempt := 0; attempt < s.accessCodeRetries; attempt++ {
		candidate := s.codeGen.AccessCode()

		out, err := s.playerRepo.ReserveAccessCode(ctx, &playerRepo.ReserveAccessCodeInput{
			RoomCode:   room.Code,
			AccessCode: candidate,
			PlayerID:   playerID,
		})
		if err != nil {
			return nil, err
		}

		if out.Reserved {
			accessCode = candidate
			break
		}

		log.Debug().Str("room", room.Code).Msg("access code collision, retrying")
	}
	if accessCode == "" {
		return nil, ErrAccessCodesDrained
	}

	player := &models.Player{
		ID:         playerID,
		Name:       input.Name,
		Team:       input.Team,
		RoomCode:   room.Code,
		AccessCode: accessCode,
		JoinedAt:   s.clock.Now(),
	}

	err = s.playerRepo.SavePlayer(ctx, &playerRepo.SavePlayerInput{Player: player})
	if err != nil {
		return nil, err
	}

	return &RegisterOutput{Player: player}, nil
}

// Login resolves a room-scoped access code back to its player
func (s *service) Login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	code, err := normalizeCode(input.RoomCode)
	if err != nil {
		return nil, err
	}

	player, err := s.playerRepo.GetPlayerByAccessCode(ctx, &playerRepo.GetPlayerByAccessCodeInput{
		RoomCode:   code,
		AccessCode: input.AccessCode,
	})
	if errors.Is(err, playerRepo.ErrPlayerNotFound) {
		return nil, ErrAccessCodeUnknown
	}
	if err != nil {
		return nil, err
	}

	return &LoginOutput{Player: player}, nil
}

// GetPlayer retrieves a player by ID
func (s *service) GetPlayer(ctx context.Context, input *GetPlayerInput) (*GetPlayerOutput, error) {
	player, err := s.getPlayer(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	return &GetPlayerOutput{Player: player}, nil
}

// ListPlayers returns every player bound to a room
func (s *service) ListPlayers(ctx context.Context, input *ListPlayersInput) (*ListPlayersOutput, error) {
	code, err := normalizeCode(input.RoomCode)
	if err != nil {
		return nil, err
	}

	out, err := s.playerRepo.GetPlayersByRoom(ctx, &playerRepo.GetPlayersByRoomInput{
		RoomCode: code,
	})
	if err != nil {
		return nil, err
	}

	return &ListPlayersOutput{Players: qualify.Rank(out.Players)}, nil
}

// RemovePlayer deletes a player and releases their access code
func (s *service) RemovePlayer(ctx context.Context, input *RemovePlayerInput) (*RemovePlayerOutput, error) {
	if input.PlayerID == "" {
		return nil, ErrPlayerRequired
	}

	err := s.playerRepo.DeletePlayer(ctx, &playerRepo.DeletePlayerInput{
		PlayerID: input.PlayerID,
	})
	if errors.Is(err, playerRepo.ErrPlayerNotFound) {
		return nil, ErrPlayerNotFound
	}
	if err != nil {
		return nil, err
	}

	return &RemovePlayerOutput{}, nil
}

// AdjustScore applies a signed delta to a player's score. The increment
// is atomic in the repository, so two concurrent adjustments both land.
func (s *service) AdjustScore(ctx context.Context, input *AdjustScoreInput) (*AdjustScoreOutput, error) {
	if input.PlayerID == "" {
		return nil, ErrPlayerRequired
	}

	out, err := s.playerRepo.IncrScore(ctx, &playerRepo.IncrScoreInput{
		PlayerID: input.PlayerID,
		Delta:    input.Delta,
	})
	if errors.Is(err, playerRepo.ErrPlayerNotFound) {
		return nil, ErrPlayerNotFound
	}
	if err != nil {
		return nil, err
	}

	return &AdjustScoreOutput{Score: out.Score}, nil
}

// AssignTeam moves a player onto one of the room's configured teams
func (s *service) AssignTeam(ctx context.Context, input *AssignTeamInput) (*AssignTeamOutput, error) {
	player, err := s.getPlayer(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	room, err := s.getRoom(ctx, player.RoomCode)
	if err != nil {
		return nil, err
	}

	if err := validTeam(room, input.Team); err != nil {
		return nil, err
	}

	player.Team = input.Team

	err = s.playerRepo.SavePlayer(ctx, &playerRepo.SavePlayerInput{Player: player})
	if err != nil {
		return nil, err
	}

	return &AssignTeamOutput{Player: player}, nil
}

// GetLeaderboard returns the room standings, best score first
func (s *service) GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error) {
	code, err := normalizeCode(input.RoomCode)
	if err != nil {
		return nil, err
	}

	out, err := s.playerRepo.GetPlayersByRoom(ctx, &playerRepo.GetPlayersByRoomInput{
		RoomCode: code,
	})
	if err != nil {
		return nil, err
	}

	ranked := qualify.Rank(out.Players)

	entries := make([]*models.LeaderboardEntry, 0, len(ranked))
	for _, p := range ranked {
		entries = append(entries, &models.LeaderboardEntry{
			PlayerID:   p.ID,
			PlayerName: p.Name,
			Team:       p.Team,
			Score:      p.Score,
		})
	}

	return &GetLeaderboardOutput{
		Leaderboard: &models.Leaderboard{
			RoomCode: code,
			Entries:  entries,
		},
	}, nil
}

func (s *service) getPlayer(ctx context.Context, playerID string) (*models.Player, error) {
	if playerID == "" {
		return nil, ErrPlayerRequired
	}

	player, err := s.playerRepo.GetPlayer(ctx, &playerRepo.GetPlayerInput{
		PlayerID: playerID,
	})
	if errors.Is(err, playerRepo.ErrPlayerNotFound) {
		return nil, ErrPlayerNotFound
	}
	if err != nil {
		return nil, err
	}

	return player, nil
}

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

// validTeam accepts the empty team (unassigned) or any team configured
// on the room
func validTeam(room *models.Room, team string) error {
	if team == "" {
		return nil
	}
	for _, t := range room.Teams {
		if t == team {
			return nil
		}
	}
	return ErrUnknownTeam
}

func normalizeCode(raw string) (string, error) {
	code := codes.NormalizeRoomCode(raw)
	if !codes.ValidRoomCode(code) {
		return "", ErrInvalidRoomCode
	}
	return code, nil
}
