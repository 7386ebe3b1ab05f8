package gateway

import (
	"github.com/KirkDiggler/buzzd/internal/models"
)

// RoomView is the client-facing shape of a room. Credentials and the
// qualification list stay server-side; clients only learn whether the
// round is restricted.
type RoomView struct {
	Code         string      `json:"code"`
	CurrentRound int         `json:"currentRound"`
	Rounds       []RoundView `json:"rounds"`
	Timer        int         `json:"timer"`
	IsActive     bool        `json:"isActive"`
	Restricted   bool        `json:"restricted"`
	Teams        []string    `json:"teams"`
	StartTime    int64       `json:"startTime,omitempty"`
	Buzzes       []BuzzView  `json:"buzzes"`
}

type RoundView struct {
	ID       int `json:"id"`
	Duration int `json:"duration"`
	Cutoff   int `json:"cutoff"`
}

// BuzzView is one slot of the buzz queue. Rank is queue position;
// ReactionMS is display-only, measured against the window's start.
type BuzzView struct {
	Rank       int    `json:"rank"`
	PlayerID   string `json:"playerId"`
	Name       string `json:"name"`
	Team       string `json:"team,omitempty"`
	ReactionMS int64  `json:"reactionMs"`
}

type PlayerView struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Team       string  `json:"team,omitempty"`
	RoomCode   string  `json:"roomCode"`
	Score      float64 `json:"score"`
	AccessCode string  `json:"accessCode,omitempty"`
}

type LeaderboardView struct {
	RoomCode string                 `json:"roomCode"`
	Entries  []LeaderboardEntryView `json:"entries"`
}

type LeaderboardEntryView struct {
	PlayerID string  `json:"playerId"`
	Name     string  `json:"name"`
	Team     string  `json:"team,omitempty"`
	Score    float64 `json:"score"`
}

func newRoomView(room *models.Room) *RoomView {
	view := &RoomView{
		Code:         room.Code,
		CurrentRound: room.CurrentRound,
		Rounds:       make([]RoundView, 0, len(room.Rounds)),
		Timer:        room.Timer,
		IsActive:     room.IsActive,
		Restricted:   room.AllowedPlayerIDs != nil,
		Teams:        room.Teams,
		Buzzes:       make([]BuzzView, 0, len(room.Buzzes)),
	}

	if !room.StartTime.IsZero() {
		view.StartTime = room.StartTime.UnixMilli()
	}

	for i, b := range room.Buzzes {
		buzz := BuzzView{
			Rank:     i + 1,
			PlayerID: b.PlayerID,
			Name:     b.Name,
			Team:     b.Team,
		}
		if !room.StartTime.IsZero() && b.Timestamp.After(room.StartTime) {
			buzz.ReactionMS = b.Timestamp.Sub(room.StartTime).Milliseconds()
		}
		view.Buzzes = append(view.Buzzes, buzz)
	}

	return view
}

// newPlayerView hides the access code unless the caller should see it
func newPlayerView(p *models.Player, withAccessCode bool) *PlayerView {
	view := &PlayerView{
		ID:       p.ID,
		Name:     p.Name,
		Team:     p.Team,
		RoomCode: p.RoomCode,
		Score:    p.Score,
	}
	if withAccessCode {
		view.AccessCode = p.AccessCode
	}
	return view
}

func newPlayerViews(players []*models.Player, withAccessCodes bool) []*PlayerView {
	views := make([]*PlayerView, 0, len(players))
	for _, p := range players {
		views = append(views, newPlayerView(p, withAccessCodes))
	}
	return views
}

func newLeaderboardView(lb *models.Leaderboard) *LeaderboardView {
	view := &LeaderboardView{
		RoomCode: lb.RoomCode,
		Entries:  make([]LeaderboardEntryView, 0, len(lb.Entries)),
	}
	for _, e := range lb.Entries {
		view.Entries = append(view.Entries, LeaderboardEntryView{
			PlayerID: e.PlayerID,
			Name:     e.PlayerName,
			Team:     e.Team,
			Score:    e.Score,
		})
	}
	return view
}
