package room

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	codeMocks "github.com/KirkDiggler/buzzd/internal/codes/mocks"
	clockMocks "github.com/KirkDiggler/buzzd/internal/common/clock/mocks"
	"github.com/KirkDiggler/buzzd/internal/models"
	playerRepo "github.com/KirkDiggler/buzzd/internal/repositories/player"
	playerMocks "github.com/KirkDiggler/buzzd/internal/repositories/player/mocks"
	roomRepo "github.com/KirkDiggler/buzzd/internal/repositories/room"
	roomMocks "github.com/KirkDiggler/buzzd/internal/repositories/room/mocks"
)

type RoomServiceTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockRoomRepo   *roomMocks.MockRepository
	mockPlayerRepo *playerMocks.MockRepository
	mockCodeGen    *codeMocks.MockGenerator
	mockClock      *clockMocks.MockClock
	service        Service
	ctx            context.Context

	testTime time.Time
	testCode string
	testHost string
}

func (s *RoomServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRoomRepo = roomMocks.NewMockRepository(s.mockCtrl)
	s.mockPlayerRepo = playerMocks.NewMockRepository(s.mockCtrl)
	s.mockCodeGen = codeMocks.NewMockGenerator(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)

	s.ctx = context.Background()

	s.testTime = time.Date(2025, 4, 5, 12, 0, 0, 0, time.UTC)
	s.testCode = "WXYZ"
	s.testHost = "host-1"

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	svc, err := New(&Config{
		RoomRepo:   s.mockRoomRepo,
		PlayerRepo: s.mockPlayerRepo,
		CodeGen:    s.mockCodeGen,
		Clock:      s.mockClock,
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *RoomServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *RoomServiceTestSuite) testRoom() *models.Room {
	return &models.Room{
		Code:     s.testCode,
		HostID:   s.testHost,
		AdminPIN: "1234",
		Rounds: []*models.Round{
			{ID: 1, Duration: 10, Cutoff: 0},
		},
		CurrentRound: 1,
		Timer:        10,
		CreatedAt:    s.testTime,
		UpdatedAt:    s.testTime,
	}
}

func (s *RoomServiceTestSuite) expectGetRoom(room *models.Room) {
	s.mockRoomRepo.EXPECT().
		GetRoom(s.ctx, &roomRepo.GetRoomInput{Code: s.testCode}).
		Return(room, nil)
}

func (s *RoomServiceTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{})
	s.ErrorIs(err, ErrNilRoomRepo)

	_, err = New(&Config{RoomRepo: s.mockRoomRepo})
	s.ErrorIs(err, ErrNilPlayerRepo)

	_, err = New(&Config{RoomRepo: s.mockRoomRepo, PlayerRepo: s.mockPlayerRepo})
	s.ErrorIs(err, ErrNilCodeGenerator)

	_, err = New(&Config{RoomRepo: s.mockRoomRepo, PlayerRepo: s.mockPlayerRepo, CodeGen: s.mockCodeGen})
	s.ErrorIs(err, ErrNilClock)
}

func (s *RoomServiceTestSuite) TestCreateRoom() {
	s.mockCodeGen.EXPECT().RoomCode().Return(s.testCode)
	s.mockRoomRepo.EXPECT().
		CreateRoom(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *roomRepo.CreateRoomInput) error {
			s.Equal(s.testCode, input.Room.Code)
			s.Equal(s.testHost, input.Room.HostID)
			s.Equal("1234", input.Room.AdminPIN)
			s.Require().Len(input.Room.Rounds, 1)
			s.Equal(DefaultRoundDuration, input.Room.Rounds[0].Duration)
			s.Equal(1, input.Room.CurrentRound)
			s.Equal(DefaultRoundDuration, input.Room.Timer)
			s.False(input.Room.IsActive)
			s.Equal(s.testTime, input.Room.CreatedAt)
			return nil
		})

	out, err := s.service.CreateRoom(s.ctx, &CreateRoomInput{
		HostID:   s.testHost,
		AdminPIN: "1234",
	})

	s.Require().NoError(err)
	s.Equal(s.testCode, out.Room.Code)
}

func (s *RoomServiceTestSuite) TestCreateRoomShortPIN() {
	_, err := s.service.CreateRoom(s.ctx, &CreateRoomInput{
		HostID:   s.testHost,
		AdminPIN: "123",
	})

	s.ErrorIs(err, ErrPINTooShort)
}

func (s *RoomServiceTestSuite) TestCreateRoomRetriesOnCollision() {
	gomock.InOrder(
		s.mockCodeGen.EXPECT().RoomCode().Return("TAKE"),
		s.mockCodeGen.EXPECT().RoomCode().Return(s.testCode),
	)
	gomock.InOrder(
		s.mockRoomRepo.EXPECT().CreateRoom(s.ctx, gomock.Any()).Return(roomRepo.ErrRoomExists),
		s.mockRoomRepo.EXPECT().CreateRoom(s.ctx, gomock.Any()).Return(nil),
	)

	out, err := s.service.CreateRoom(s.ctx, &CreateRoomInput{
		HostID:   s.testHost,
		AdminPIN: "1234",
	})

	s.Require().NoError(err)
	s.Equal(s.testCode, out.Room.Code)
}

func (s *RoomServiceTestSuite) TestCreateRoomGivesUpAfterRetries() {
	s.mockCodeGen.EXPECT().RoomCode().Return("TAKE").Times(defaultCreateRetries)
	s.mockRoomRepo.EXPECT().
		CreateRoom(s.ctx, gomock.Any()).
		Return(roomRepo.ErrRoomExists).
		Times(defaultCreateRetries)

	_, err := s.service.CreateRoom(s.ctx, &CreateRoomInput{
		HostID:   s.testHost,
		AdminPIN: "1234",
	})

	s.ErrorIs(err, ErrCodesExhausted)
}

func (s *RoomServiceTestSuite) TestClaimHost() {
	s.expectGetRoom(s.testRoom())
	s.mockRoomRepo.EXPECT().
		SetHost(s.ctx, &roomRepo.SetHostInput{Code: s.testCode, HostID: "host-2"}).
		Return(nil)

	out, err := s.service.ClaimHost(s.ctx, &ClaimHostInput{
		Code:     s.testCode,
		AdminPIN: "1234",
		HostID:   "host-2",
	})

	s.Require().NoError(err)
	s.Equal("host-2", out.Room.HostID)
}

func (s *RoomServiceTestSuite) TestClaimHostWrongPIN() {
	s.expectGetRoom(s.testRoom())

	_, err := s.service.ClaimHost(s.ctx, &ClaimHostInput{
		Code:     s.testCode,
		AdminPIN: "4321",
		HostID:   "host-2",
	})

	s.ErrorIs(err, ErrPINMismatch)
}

func (s *RoomServiceTestSuite) TestClaimHostSameHostSkipsWrite() {
	s.expectGetRoom(s.testRoom())

	out, err := s.service.ClaimHost(s.ctx, &ClaimHostInput{
		Code:     s.testCode,
		AdminPIN: "1234",
		HostID:   s.testHost,
	})

	s.Require().NoError(err)
	s.Equal(s.testHost, out.Room.HostID)
}

func (s *RoomServiceTestSuite) TestClaimHostRoomNotFound() {
	s.mockRoomRepo.EXPECT().
		GetRoom(s.ctx, &roomRepo.GetRoomInput{Code: s.testCode}).
		Return(nil, roomRepo.ErrRoomNotFound)

	_, err := s.service.ClaimHost(s.ctx, &ClaimHostInput{
		Code:     s.testCode,
		AdminPIN: "1234",
		HostID:   "host-2",
	})

	s.ErrorIs(err, ErrRoomNotFound)
}

func (s *RoomServiceTestSuite) TestGetRoomNormalizesCode() {
	s.expectGetRoom(s.testRoom())

	out, err := s.service.GetRoom(s.ctx, &GetRoomInput{Code: " wxyz "})

	s.Require().NoError(err)
	s.Equal(s.testCode, out.Room.Code)
}

func (s *RoomServiceTestSuite) TestGetRoomInvalidCode() {
	_, err := s.service.GetRoom(s.ctx, &GetRoomInput{Code: "NOPE!"})

	s.ErrorIs(err, ErrInvalidRoomCode)
}

func (s *RoomServiceTestSuite) TestAddTeam() {
	s.expectGetRoom(s.testRoom())
	s.mockRoomRepo.EXPECT().
		SetTeams(s.ctx, &roomRepo.SetTeamsInput{Code: s.testCode, Teams: []string{"Red"}}).
		Return(nil)

	out, err := s.service.AddTeam(s.ctx, &AddTeamInput{Code: s.testCode, Team: "Red"})

	s.Require().NoError(err)
	s.Equal([]string{"Red"}, out.Teams)
}

func (s *RoomServiceTestSuite) TestAddTeamDuplicate() {
	room := s.testRoom()
	room.Teams = []string{"Red"}
	s.expectGetRoom(room)

	_, err := s.service.AddTeam(s.ctx, &AddTeamInput{Code: s.testCode, Team: "Red"})

	s.ErrorIs(err, ErrTeamExists)
}

func (s *RoomServiceTestSuite) TestRemoveTeam() {
	room := s.testRoom()
	room.Teams = []string{"Red", "Blue"}
	s.expectGetRoom(room)
	s.mockRoomRepo.EXPECT().
		SetTeams(s.ctx, &roomRepo.SetTeamsInput{Code: s.testCode, Teams: []string{"Blue"}}).
		Return(nil)

	out, err := s.service.RemoveTeam(s.ctx, &RemoveTeamInput{Code: s.testCode, Team: "Red"})

	s.Require().NoError(err)
	s.Equal([]string{"Blue"}, out.Teams)
}

func (s *RoomServiceTestSuite) TestRemoveTeamMissing() {
	s.expectGetRoom(s.testRoom())

	_, err := s.service.RemoveTeam(s.ctx, &RemoveTeamInput{Code: s.testCode, Team: "Red"})

	s.ErrorIs(err, ErrTeamNotFound)
}

func (s *RoomServiceTestSuite) TestAddRound() {
	s.mockRoomRepo.EXPECT().
		AppendRound(s.ctx, &roomRepo.AppendRoundInput{
			Code:            s.testCode,
			DefaultDuration: DefaultRoundDuration,
		}).
		Return(&roomRepo.AppendRoundOutput{
			Round: &models.Round{ID: 3, Duration: 25, Cutoff: 0},
		}, nil)

	out, err := s.service.AddRound(s.ctx, &AddRoundInput{Code: s.testCode})

	s.Require().NoError(err)
	s.Equal(3, out.Round.ID)
	s.Equal(25, out.Round.Duration)
}

func (s *RoomServiceTestSuite) TestAddRoundRoomNotFound() {
	s.mockRoomRepo.EXPECT().
		AppendRound(s.ctx, gomock.Any()).
		Return(nil, roomRepo.ErrRoomNotFound)

	_, err := s.service.AddRound(s.ctx, &AddRoundInput{Code: s.testCode})

	s.ErrorIs(err, ErrRoomNotFound)
}

func (s *RoomServiceTestSuite) TestUpdateRoundDuration() {
	s.mockRoomRepo.EXPECT().
		UpdateRound(s.ctx, &roomRepo.UpdateRoundInput{
			Code:    s.testCode,
			RoundID: 1,
			Field:   roomRepo.RoundFieldDuration,
			Value:   30,
		}).
		Return(&roomRepo.UpdateRoundOutput{
			Round: &models.Round{ID: 1, Duration: 30},
		}, nil)

	out, err := s.service.UpdateRoundConfig(s.ctx, &UpdateRoundConfigInput{
		Code:    s.testCode,
		RoundID: 1,
		Field:   RoundFieldDuration,
		Value:   30,
	})

	s.Require().NoError(err)
	s.Equal(30, out.Round.Duration)
}

func (s *RoomServiceTestSuite) TestUpdateRoundCutoff() {
	s.mockRoomRepo.EXPECT().
		UpdateRound(s.ctx, &roomRepo.UpdateRoundInput{
			Code:    s.testCode,
			RoundID: 1,
			Field:   roomRepo.RoundFieldCutoff,
			Value:   3,
		}).
		Return(&roomRepo.UpdateRoundOutput{
			Round: &models.Round{ID: 1, Duration: 10, Cutoff: 3},
		}, nil)

	out, err := s.service.UpdateRoundConfig(s.ctx, &UpdateRoundConfigInput{
		Code:    s.testCode,
		RoundID: 1,
		Field:   RoundFieldCutoff,
		Value:   3,
	})

	s.Require().NoError(err)
	s.Equal(3, out.Round.Cutoff)
}

func (s *RoomServiceTestSuite) TestUpdateRoundConfigUnknownRound() {
	s.mockRoomRepo.EXPECT().
		UpdateRound(s.ctx, gomock.Any()).
		Return(nil, roomRepo.ErrRoundNotFound)

	_, err := s.service.UpdateRoundConfig(s.ctx, &UpdateRoundConfigInput{
		Code:    s.testCode,
		RoundID: 9,
		Field:   RoundFieldDuration,
		Value:   30,
	})

	s.ErrorIs(err, ErrRoundNotFound)
}

func (s *RoomServiceTestSuite) TestUpdateRoundConfigUnknownField() {
	_, err := s.service.UpdateRoundConfig(s.ctx, &UpdateRoundConfigInput{
		Code:    s.testCode,
		RoundID: 1,
		Field:   "color",
		Value:   1,
	})

	s.ErrorIs(err, ErrInvalidField)
}

func (s *RoomServiceTestSuite) TestSelectRoundWithCutoff() {
	room := s.testRoom()
	room.Rounds = []*models.Round{
		{ID: 1, Duration: 10},
		{ID: 2, Duration: 15, Cutoff: 3},
	}
	s.expectGetRoom(room)
	s.mockPlayerRepo.EXPECT().
		GetPlayersByRoom(s.ctx, &playerRepo.GetPlayersByRoomInput{RoomCode: s.testCode}).
		Return(&playerRepo.GetPlayersByRoomOutput{
			Players: []*models.Player{
				{ID: "A", Score: 10},
				{ID: "B", Score: 8},
				{ID: "C", Score: 8},
				{ID: "D", Score: 5},
				{ID: "E", Score: 3},
			},
		}, nil)
	s.mockRoomRepo.EXPECT().
		SelectRound(s.ctx, &roomRepo.SelectRoundInput{
			Code:    s.testCode,
			RoundID: 2,
			Timer:   15,
			Allowed: []string{"A", "B", "C"},
		}).
		Return(nil)

	out, err := s.service.SelectRound(s.ctx, &SelectRoundInput{Code: s.testCode, RoundID: 2})

	s.Require().NoError(err)
	s.Equal([]string{"A", "B", "C"}, out.AllowedPlayerIDs)
}

func (s *RoomServiceTestSuite) TestSelectRoundUnrestricted() {
	s.expectGetRoom(s.testRoom())
	s.mockRoomRepo.EXPECT().
		SelectRound(s.ctx, &roomRepo.SelectRoundInput{
			Code:    s.testCode,
			RoundID: 1,
			Timer:   10,
			Allowed: nil,
		}).
		Return(nil)

	out, err := s.service.SelectRound(s.ctx, &SelectRoundInput{Code: s.testCode, RoundID: 1})

	s.Require().NoError(err)
	s.Nil(out.AllowedPlayerIDs)
}

func (s *RoomServiceTestSuite) TestSelectRoundUnknownRound() {
	s.expectGetRoom(s.testRoom())

	_, err := s.service.SelectRound(s.ctx, &SelectRoundInput{Code: s.testCode, RoundID: 9})

	s.ErrorIs(err, ErrRoundNotFound)
}

func (s *RoomServiceTestSuite) TestStartRound() {
	s.expectGetRoom(s.testRoom())
	s.mockRoomRepo.EXPECT().
		StartRound(s.ctx, &roomRepo.StartRoundInput{Code: s.testCode, StartTime: s.testTime}).
		Return(nil)

	out, err := s.service.StartRound(s.ctx, &StartRoundInput{Code: s.testCode})

	s.Require().NoError(err)
	s.Equal(10, out.Timer)
	s.Equal(s.testTime, out.StartTime)
}

func (s *RoomServiceTestSuite) TestResetRoundRestoresDuration() {
	room := s.testRoom()
	room.Rounds[0].Duration = 25
	room.Timer = 3
	s.expectGetRoom(room)
	s.mockRoomRepo.EXPECT().
		ResetRound(s.ctx, &roomRepo.ResetRoundInput{Code: s.testCode, Timer: 25}).
		Return(nil)

	out, err := s.service.ResetRound(s.ctx, &ResetRoundInput{Code: s.testCode})

	s.Require().NoError(err)
	s.Equal(25, out.Timer)
}

func (s *RoomServiceTestSuite) TestResetRoundMissingConfigFallsBack() {
	room := s.testRoom()
	room.CurrentRound = 9
	s.expectGetRoom(room)
	s.mockRoomRepo.EXPECT().
		ResetRound(s.ctx, &roomRepo.ResetRoundInput{Code: s.testCode, Timer: DefaultRoundDuration}).
		Return(nil)

	_, err := s.service.ResetRound(s.ctx, &ResetRoundInput{Code: s.testCode})

	s.Require().NoError(err)
}

func (s *RoomServiceTestSuite) TestTick() {
	s.mockRoomRepo.EXPECT().
		Tick(s.ctx, &roomRepo.TickInput{Code: s.testCode, Expected: 10}).
		Return(&roomRepo.TickOutput{State: roomRepo.TickStateTicked, Timer: 9}, nil)

	out, err := s.service.Tick(s.ctx, &TickInput{Code: s.testCode, Expected: 10})

	s.Require().NoError(err)
	s.Equal(roomRepo.TickStateTicked, out.State)
	s.Equal(9, out.Timer)
}

func (s *RoomServiceTestSuite) TestSubmitBuzz() {
	s.mockRoomRepo.EXPECT().
		SubmitBuzz(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *roomRepo.SubmitBuzzInput) (*roomRepo.SubmitBuzzOutput, error) {
			s.Equal(s.testCode, input.Code)
			s.Equal("p1", input.Entry.PlayerID)
			s.Equal("Alice", input.Entry.Name)
			s.Equal(s.testTime, input.Entry.Timestamp)
			return &roomRepo.SubmitBuzzOutput{Rank: 2}, nil
		})

	out, err := s.service.SubmitBuzz(s.ctx, &SubmitBuzzInput{
		Code:     s.testCode,
		PlayerID: "p1",
		Name:     "Alice",
	})

	s.Require().NoError(err)
	s.Equal(2, out.Rank)
}

func (s *RoomServiceTestSuite) TestSubmitBuzzErrorMapping() {
	cases := []struct {
		repoErr error
		want    error
	}{
		{roomRepo.ErrBuzzTiming, ErrBuzzClosed},
		{roomRepo.ErrBuzzDuplicate, ErrBuzzDuplicate},
		{roomRepo.ErrBuzzFull, ErrBuzzQueueFull},
		{roomRepo.ErrBuzzNotQualified, ErrBuzzNotQualified},
		{roomRepo.ErrRoomNotFound, ErrRoomNotFound},
	}

	for _, tc := range cases {
		s.mockRoomRepo.EXPECT().
			SubmitBuzz(s.ctx, gomock.Any()).
			Return(nil, tc.repoErr)

		_, err := s.service.SubmitBuzz(s.ctx, &SubmitBuzzInput{
			Code:     s.testCode,
			PlayerID: "p1",
		})

		s.ErrorIs(err, tc.want)
	}
}

func (s *RoomServiceTestSuite) TestCloseRoom() {
	s.mockRoomRepo.EXPECT().
		DeleteRoom(s.ctx, &roomRepo.DeleteRoomInput{Code: s.testCode}).
		Return(nil)

	_, err := s.service.CloseRoom(s.ctx, &CloseRoomInput{Code: s.testCode})

	s.NoError(err)
}

func TestRoomServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RoomServiceTestSuite))
}
