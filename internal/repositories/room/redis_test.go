package room

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/buzzd/internal/models"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	// Create a Redis client connected to the miniredis server
	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	// Create the repository
	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	// Set up test time
	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) newRoom(code string) *models.Room {
	return &models.Room{
		Code:     code,
		HostID:   "test-host-id",
		AdminPIN: "1234",
		Rounds: []*models.Round{
			{ID: 1, Duration: 10, Cutoff: 0},
		},
		CurrentRound: 1,
		Timer:        10,
		CreatedAt:    s.testNow,
	}
}

func (s *RedisRepositoryTestSuite) createRoom(code string) {
	err := s.repo.CreateRoom(context.Background(), &CreateRoomInput{
		Room: s.newRoom(code),
	})
	s.Require().NoError(err)
}

func (s *RedisRepositoryTestSuite) startRound(code string) {
	err := s.repo.StartRound(context.Background(), &StartRoundInput{
		Code:      code,
		StartTime: s.testNow,
	})
	s.Require().NoError(err)
}

func (s *RedisRepositoryTestSuite) TestCreateAndGetRoom() {
	s.createRoom("ABCD")

	room, err := s.repo.GetRoom(context.Background(), &GetRoomInput{Code: "ABCD"})
	s.Require().NoError(err)
	s.Require().NotNil(room)

	s.Equal("ABCD", room.Code)
	s.Equal("test-host-id", room.HostID)
	s.Equal("1234", room.AdminPIN)
	s.Equal(1, room.CurrentRound)
	s.Equal(10, room.Timer)
	s.False(room.IsActive)
	s.Require().Len(room.Rounds, 1)
	s.Equal(10, room.Rounds[0].Duration)
	s.Equal(0, room.Rounds[0].Cutoff)
	s.Nil(room.AllowedPlayerIDs)
	s.Empty(room.Buzzes)
	s.Equal(s.testNow.UnixMilli(), room.CreatedAt.UnixMilli())
}

func (s *RedisRepositoryTestSuite) TestCreateRoomCollision() {
	s.createRoom("ABCD")

	err := s.repo.CreateRoom(context.Background(), &CreateRoomInput{
		Room: s.newRoom("ABCD"),
	})
	s.Require().ErrorIs(err, ErrRoomExists)

	// The original room must be untouched
	room, err := s.repo.GetRoom(context.Background(), &GetRoomInput{Code: "ABCD"})
	s.Require().NoError(err)
	s.Equal("test-host-id", room.HostID)
}

func (s *RedisRepositoryTestSuite) TestGetNonExistentRoom() {
	_, err := s.repo.GetRoom(context.Background(), &GetRoomInput{Code: "ZZZZ"})
	s.Require().ErrorIs(err, ErrRoomNotFound)
}

func (s *RedisRepositoryTestSuite) TestSetHostMovesIndex() {
	s.createRoom("ABCD")

	err := s.repo.SetHost(context.Background(), &SetHostInput{
		Code:   "ABCD",
		HostID: "new-host-id",
	})
	s.Require().NoError(err)

	room, err := s.repo.GetRoom(context.Background(), &GetRoomInput{Code: "ABCD"})
	s.Require().NoError(err)
	s.Equal("new-host-id", room.HostID)

	oldRooms, err := s.repo.GetRoomsByHost(context.Background(), &GetRoomsByHostInput{HostID: "test-host-id"})
	s.Require().NoError(err)
	s.Empty(oldRooms.Rooms)

	newRooms, err := s.repo.GetRoomsByHost(context.Background(), &GetRoomsByHostInput{HostID: "new-host-id"})
	s.Require().NoError(err)
	s.Require().Len(newRooms.Rooms, 1)
	s.Equal("ABCD", newRooms.Rooms[0].Code)
}

func (s *RedisRepositoryTestSuite) TestGetRoomsByHostNewestFirst() {
	first := s.newRoom("AAAA")
	first.CreatedAt = s.testNow
	second := s.newRoom("BBBB")
	second.CreatedAt = s.testNow.Add(time.Minute)

	s.Require().NoError(s.repo.CreateRoom(context.Background(), &CreateRoomInput{Room: first}))
	s.Require().NoError(s.repo.CreateRoom(context.Background(), &CreateRoomInput{Room: second}))

	out, err := s.repo.GetRoomsByHost(context.Background(), &GetRoomsByHostInput{HostID: "test-host-id"})
	s.Require().NoError(err)
	s.Require().Len(out.Rooms, 2)
	s.Equal("BBBB", out.Rooms[0].Code)
	s.Equal("AAAA", out.Rooms[1].Code)
}

func (s *RedisRepositoryTestSuite) TestAppendRoundInheritsDuration() {
	s.createRoom("ABCD")

	_, err := s.repo.UpdateRound(context.Background(), &UpdateRoundInput{
		Code:    "ABCD",
		RoundID: 1,
		Field:   RoundFieldDuration,
		Value:   25,
	})
	s.Require().NoError(err)

	out, err := s.repo.AppendRound(context.Background(), &AppendRoundInput{
		Code:            "ABCD",
		DefaultDuration: 10,
	})
	s.Require().NoError(err)
	s.Equal(2, out.Round.ID)
	s.Equal(25, out.Round.Duration)
	s.Equal(0, out.Round.Cutoff)

	room, err := s.repo.GetRoom(context.Background(), &GetRoomInput{Code: "ABCD"})
	s.Require().NoError(err)
	s.Require().Len(room.Rounds, 2)
	s.Equal(25, room.Rounds[1].Duration)
}

func (s *RedisRepositoryTestSuite) TestAppendRoundConcurrentDenseIDs() {
	s.createRoom("ABCD")

	// Two host sessions appending from the same observed state must both
	// land with distinct dense IDs
	var wg sync.WaitGroup
	results := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = s.repo.AppendRound(context.Background(), &AppendRoundInput{
				Code:            "ABCD",
				DefaultDuration: 10,
			})
		}(i)
	}
	wg.Wait()

	s.Require().NoError(results[0])
	s.Require().NoError(results[1])

	room, err := s.repo.GetRoom(context.Background(), &GetRoomInput{Code: "ABCD"})
	s.Require().NoError(err)
	s.Require().Len(room.Rounds, 3)
	for i, round := range room.Rounds {
		s.Equal(i+1, round.ID)
	}
}

func (s *RedisRepositoryTestSuite) TestAppendRoundMissingRoom() {
	_, err := s.repo.AppendRound(context.Background(), &AppendRoundInput{
		Code:            "ZZZZ",
		DefaultDuration: 10,
	})
	s.Require().ErrorIs(err, ErrRoomNotFound)
}

func (s *RedisRepositoryTestSuite) TestUpdateRoundDurationPushesIdleTimer() {
	s.createRoom("ABCD")

	out, err := s.repo.UpdateRound(context.Background(), &UpdateRoundInput{
		Code:    "ABCD",
		RoundID: 1,
		Field:   RoundFieldDuration,
		Value:   30,
	})
	s.Require().NoError(err)
	s.Equal(30, out.Round.Duration)

	room, err := s.repo.GetRoom(context.Background(), &GetRoomInput{Code: "ABCD"})
	s.Require().NoError(err)
	s.Equal(30, room.Timer, "an idle current round's duration flows into the timer")
}

func (s *RedisRepositoryTestSuite) TestUpdateRoundDurationLeavesOpenWindow() {
	s.createRoom("ABCD")
	s.startRound("ABCD")

	_, err := s.repo.UpdateRound(context.Background(), &UpdateRoundInput{
		Code:    "ABCD",
		RoundID: 1,
		Field:   RoundFieldDuration,
		Value:   30,
	})
	s.Require().NoError(err)

	room, err := s.repo.GetRoom(context.Background(), &GetRoomInput{Code: "ABCD"})
	s.Require().NoError(err)
	s.Equal(10, room.Timer, "a running countdown keeps its remaining time")
	s.Equal(30, room.Rounds[0].Duration)
}

func (s *RedisRepositoryTestSuite) TestUpdateRoundCutoffLeavesTimer() {
	s.createRoom("ABCD")

	out, err := s.repo.UpdateRound(context.Background(), &UpdateRoundInput{
		Code:    "ABCD",
		RoundID: 1,
		Field:   RoundFieldCutoff,
		Value:   3,
	})
	s.Require().NoError(err)
	s.Equal(3, out.Round.Cutoff)

	room, err := s.repo.GetRoom(context.Background(), &GetRoomInput{Code: "ABCD"})
	s.Require().NoError(err)
	s.Equal(10, room.Timer)
}

func (s *RedisRepositoryTestSuite) TestUpdateRoundUnknownRound() {
	s.createRoom("ABCD")

	_, err := s.repo.UpdateRound(context.Background(), &UpdateRoundInput{
		Code:    "ABCD",
		RoundID: 9,
		Field:   RoundFieldDuration,
		Value:   30,
	})
	s.Require().ErrorIs(err, ErrRoundNotFound)
}

func (s *RedisRepositoryTestSuite) TestSelectRoundInstallsQualification() {
	s.createRoom("ABCD")

	err := s.repo.SelectRound(context.Background(), &SelectRoundInput{
		Code:    "ABCD",
		RoundID: 2,
		Timer:   15,
		Allowed: []string{"player-a", "player-b"},
	})
	s.Require().NoError(err)

	room, err := s.repo.GetRoom(context.Background(), &GetRoomInput{Code: "ABCD"})
	s.Require().NoError(err)
	s.Equal(2, room.CurrentRound)
	s.Equal(15, room.Timer)
	s.False(room.IsActive)
	s.Empty(room.Buzzes)
	s.ElementsMatch([]string{"player-a", "player-b"}, room.AllowedPlayerIDs)
}

func (s *RedisRepositoryTestSuite) TestSelectRoundClearsRestriction() {
	s.createRoom("ABCD")

	err := s.repo.SelectRound(context.Background(), &SelectRoundInput{
		Code:    "ABCD",
		RoundID: 1,
		Timer:   10,
		Allowed: []string{"player-a"},
	})
	s.Require().NoError(err)

	// Re-selecting with a nil set clears the restriction entirely
	err = s.repo.SelectRound(context.Background(), &SelectRoundInput{
		Code:    "ABCD",
		RoundID: 1,
		Timer:   10,
		Allowed: nil,
	})
	s.Require().NoError(err)

	room, err := s.repo.GetRoom(context.Background(), &GetRoomInput{Code: "ABCD"})
	s.Require().NoError(err)
	s.Nil(room.AllowedPlayerIDs)
}

func (s *RedisRepositoryTestSuite) TestStartRound() {
	s.createRoom("ABCD")
	s.startRound("ABCD")

	room, err := s.repo.GetRoom(context.Background(), &GetRoomInput{Code: "ABCD"})
	s.Require().NoError(err)
	s.True(room.IsActive)
	s.Empty(room.Buzzes)
	s.Equal(s.testNow.UnixMilli(), room.StartTime.UnixMilli())
}

func (s *RedisRepositoryTestSuite) submitBuzz(code, playerID string) (*SubmitBuzzOutput, error) {
	return s.repo.SubmitBuzz(context.Background(), &SubmitBuzzInput{
		Code: code,
		Entry: &models.BuzzEntry{
			PlayerID:  playerID,
			Name:      "Player " + playerID,
			Timestamp: s.testNow,
		},
	})
}

func (s *RedisRepositoryTestSuite) TestSubmitBuzzOrdering() {
	s.createRoom("ABCD")
	s.startRound("ABCD")

	first, err := s.submitBuzz("ABCD", "player-1")
	s.Require().NoError(err)
	s.Equal(1, first.Rank)

	second, err := s.submitBuzz("ABCD", "player-2")
	s.Require().NoError(err)
	s.Equal(2, second.Rank)

	room, err := s.repo.GetRoom(context.Background(), &GetRoomInput{Code: "ABCD"})
	s.Require().NoError(err)
	s.Require().Len(room.Buzzes, 2)
	s.Equal("player-1", room.Buzzes[0].PlayerID)
	s.Equal("player-2", room.Buzzes[1].PlayerID)
}

func (s *RedisRepositoryTestSuite) TestSubmitBuzzWhileInactive() {
	s.createRoom("ABCD")

	_, err := s.submitBuzz("ABCD", "player-1")
	s.Require().ErrorIs(err, ErrBuzzTiming)

	room, err := s.repo.GetRoom(context.Background(), &GetRoomInput{Code: "ABCD"})
	s.Require().NoError(err)
	s.Empty(room.Buzzes, "rejected buzz must leave no trace")
}

func (s *RedisRepositoryTestSuite) TestSubmitBuzzDuplicate() {
	s.createRoom("ABCD")
	s.startRound("ABCD")

	_, err := s.submitBuzz("ABCD", "player-1")
	s.Require().NoError(err)

	_, err = s.submitBuzz("ABCD", "player-1")
	s.Require().ErrorIs(err, ErrBuzzDuplicate)

	room, err := s.repo.GetRoom(context.Background(), &GetRoomInput{Code: "ABCD"})
	s.Require().NoError(err)
	s.Len(room.Buzzes, 1)
}

func (s *RedisRepositoryTestSuite) TestSubmitBuzzFull() {
	s.createRoom("ABCD")
	s.startRound("ABCD")

	for i := 1; i <= models.MaxBuzzes; i++ {
		out, err := s.submitBuzz("ABCD", fmt.Sprintf("player-%d", i))
		s.Require().NoError(err)
		s.Equal(i, out.Rank)
	}

	_, err := s.submitBuzz("ABCD", "player-late")
	s.Require().ErrorIs(err, ErrBuzzFull)

	room, err := s.repo.GetRoom(context.Background(), &GetRoomInput{Code: "ABCD"})
	s.Require().NoError(err)
	s.Len(room.Buzzes, models.MaxBuzzes)
}

func (s *RedisRepositoryTestSuite) TestSubmitBuzzNotQualified() {
	s.createRoom("ABCD")

	err := s.repo.SelectRound(context.Background(), &SelectRoundInput{
		Code:    "ABCD",
		RoundID: 1,
		Timer:   10,
		Allowed: []string{"player-a"},
	})
	s.Require().NoError(err)
	s.startRound("ABCD")

	_, err = s.submitBuzz("ABCD", "player-b")
	s.Require().ErrorIs(err, ErrBuzzNotQualified)

	out, err := s.submitBuzz("ABCD", "player-a")
	s.Require().NoError(err)
	s.Equal(1, out.Rank)
}

func (s *RedisRepositoryTestSuite) TestSubmitBuzzConcurrentNoLostUpdate() {
	s.createRoom("ABCD")
	s.startRound("ABCD")

	// Two submissions race from the identical initial state; the atomic
	// append must record both, in some order
	var wg sync.WaitGroup
	results := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = s.submitBuzz("ABCD", fmt.Sprintf("racer-%d", i))
		}(i)
	}
	wg.Wait()

	s.Require().NoError(results[0])
	s.Require().NoError(results[1])

	room, err := s.repo.GetRoom(context.Background(), &GetRoomInput{Code: "ABCD"})
	s.Require().NoError(err)
	s.Require().Len(room.Buzzes, 2)

	seen := map[string]bool{}
	for _, b := range room.Buzzes {
		seen[b.PlayerID] = true
	}
	s.True(seen["racer-0"])
	s.True(seen["racer-1"])
}

func (s *RedisRepositoryTestSuite) TestTickCountdown() {
	s.createRoom("ABCD")
	s.startRound("ABCD")

	for expected := 10; expected > 0; expected-- {
		out, err := s.repo.Tick(context.Background(), &TickInput{Code: "ABCD", Expected: expected})
		s.Require().NoError(err)
		s.Equal(TickStateTicked, out.State)
		s.Equal(expected-1, out.Timer)
	}

	// Timer is spent; the next tick flips the room inactive
	out, err := s.repo.Tick(context.Background(), &TickInput{Code: "ABCD", Expected: 0})
	s.Require().NoError(err)
	s.Equal(TickStateExpired, out.State)

	room, err := s.repo.GetRoom(context.Background(), &GetRoomInput{Code: "ABCD"})
	s.Require().NoError(err)
	s.False(room.IsActive)
	s.Equal(0, room.Timer)
}

func (s *RedisRepositoryTestSuite) TestTickStaleIsIdempotent() {
	s.createRoom("ABCD")
	s.startRound("ABCD")

	out, err := s.repo.Tick(context.Background(), &TickInput{Code: "ABCD", Expected: 10})
	s.Require().NoError(err)
	s.Equal(TickStateTicked, out.State)

	// A duplicate host session firing the same tick does not decrement twice
	out, err = s.repo.Tick(context.Background(), &TickInput{Code: "ABCD", Expected: 10})
	s.Require().NoError(err)
	s.Equal(TickStateStale, out.State)

	room, err := s.repo.GetRoom(context.Background(), &GetRoomInput{Code: "ABCD"})
	s.Require().NoError(err)
	s.Equal(9, room.Timer)
}

func (s *RedisRepositoryTestSuite) TestTickFrozenWhenSlotsFull() {
	s.createRoom("ABCD")
	s.startRound("ABCD")

	for i := 1; i <= models.MaxBuzzes; i++ {
		_, err := s.submitBuzz("ABCD", fmt.Sprintf("player-%d", i))
		s.Require().NoError(err)
	}

	out, err := s.repo.Tick(context.Background(), &TickInput{Code: "ABCD", Expected: 10})
	s.Require().NoError(err)
	s.Equal(TickStateFrozen, out.State)

	room, err := s.repo.GetRoom(context.Background(), &GetRoomInput{Code: "ABCD"})
	s.Require().NoError(err)
	s.Equal(10, room.Timer, "remaining time is kept for display")
	s.True(room.IsActive)
}

func (s *RedisRepositoryTestSuite) TestTickInactiveRoom() {
	s.createRoom("ABCD")

	out, err := s.repo.Tick(context.Background(), &TickInput{Code: "ABCD", Expected: 10})
	s.Require().NoError(err)
	s.Equal(TickStateInactive, out.State)
}

func (s *RedisRepositoryTestSuite) TestResetRound() {
	s.createRoom("ABCD")
	s.startRound("ABCD")

	_, err := s.submitBuzz("ABCD", "player-1")
	s.Require().NoError(err)

	err = s.repo.ResetRound(context.Background(), &ResetRoundInput{Code: "ABCD", Timer: 10})
	s.Require().NoError(err)

	room, err := s.repo.GetRoom(context.Background(), &GetRoomInput{Code: "ABCD"})
	s.Require().NoError(err)
	s.False(room.IsActive)
	s.Equal(10, room.Timer)
	s.Empty(room.Buzzes)

	// The cleared queue frees the slot for a fresh buzz after restart
	s.startRound("ABCD")
	out, err := s.submitBuzz("ABCD", "player-1")
	s.Require().NoError(err)
	s.Equal(1, out.Rank)
}

func (s *RedisRepositoryTestSuite) TestDeleteRoom() {
	s.createRoom("ABCD")

	err := s.repo.DeleteRoom(context.Background(), &DeleteRoomInput{Code: "ABCD"})
	s.Require().NoError(err)

	_, err = s.repo.GetRoom(context.Background(), &GetRoomInput{Code: "ABCD"})
	s.Require().ErrorIs(err, ErrRoomNotFound)

	out, err := s.repo.GetRoomsByHost(context.Background(), &GetRoomsByHostInput{HostID: "test-host-id"})
	s.Require().NoError(err)
	s.Empty(out.Rooms)
}

func (s *RedisRepositoryTestSuite) TestSubscribeRoomReceivesEvents() {
	s.createRoom("ABCD")

	sub, err := s.repo.SubscribeRoom(context.Background(), &SubscribeRoomInput{Code: "ABCD"})
	s.Require().NoError(err)
	defer sub.Unsubscribe()

	s.startRound("ABCD")

	select {
	case event := <-sub.Events:
		s.Require().NotNil(event)
		s.Equal(EventRoundStarted, event.Type)
		s.Equal("ABCD", event.Code)
	case <-time.After(2 * time.Second):
		s.Fail("timed out waiting for round_started event")
	}
}
