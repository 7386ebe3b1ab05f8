package room

import (
	"time"

	"github.com/KirkDiggler/buzzd/internal/models"
)

// EventType identifies what changed on a room
type EventType string

const (
	EventRoomCreated   EventType = "room_created"
	EventHostClaimed   EventType = "host_claimed"
	EventTeamsUpdated  EventType = "teams_updated"
	EventRoundsUpdated EventType = "rounds_updated"
	EventRoundSelected EventType = "round_selected"
	EventRoundStarted  EventType = "round_started"
	EventRoundReset    EventType = "round_reset"
	EventTimerTicked   EventType = "timer_ticked"
	EventRoundExpired  EventType = "round_expired"
	EventBuzzSubmitted EventType = "buzz_submitted"
	EventRoomClosed    EventType = "room_closed"
)

// Event is one entry in a room's change stream
type Event struct {
	Type EventType `json:"type"`
	Code string    `json:"code"`
}

// TickState describes the outcome of a tick attempt
type TickState string

const (
	// TickStateTicked means the timer was decremented by one
	TickStateTicked TickState = "ticked"

	// TickStateExpired means the timer was already spent and the room
	// was flipped inactive
	TickStateExpired TickState = "expired"

	// TickStateInactive means the window is not open; nothing happened
	TickStateInactive TickState = "inactive"

	// TickStateFrozen means all buzz slots are filled; the remaining
	// time is kept for display
	TickStateFrozen TickState = "frozen"

	// TickStateStale means the timer no longer held the expected value,
	// typically a duplicate tick from a second host session
	TickStateStale TickState = "stale"
)

type CreateRoomInput struct {
	Room *models.Room

	// TTL expires the room keys after the given duration; zero keeps
	// the room forever
	TTL time.Duration
}

type GetRoomInput struct {
	Code string
}

type GetRoomsByHostInput struct {
	HostID string
}

type GetRoomsByHostOutput struct {
	Rooms []*models.Room
}

type SetHostInput struct {
	Code   string
	HostID string
}

type SetTeamsInput struct {
	Code  string
	Teams []string
}

type AppendRoundInput struct {
	Code string

	// DefaultDuration seeds the new round when the list is somehow empty
	DefaultDuration int
}

type AppendRoundOutput struct {
	Round *models.Round
}

// Round fields UpdateRound can edit
const (
	RoundFieldDuration = "duration"
	RoundFieldCutoff   = "cutoff"
)

type UpdateRoundInput struct {
	Code    string
	RoundID int

	// Field is RoundFieldDuration or RoundFieldCutoff
	Field string

	Value int
}

type UpdateRoundOutput struct {
	Round *models.Round
}

type SelectRoundInput struct {
	Code    string
	RoundID int
	Timer   int

	// Allowed is the qualification set for the round; nil clears the
	// restriction
	Allowed []string
}

type StartRoundInput struct {
	Code      string
	StartTime time.Time
}

type ResetRoundInput struct {
	Code  string
	Timer int
}

type TickInput struct {
	Code string

	// Expected is the timer value the caller last observed; the
	// decrement only applies while it still holds
	Expected int
}

type TickOutput struct {
	State TickState

	// Timer is the countdown value after the attempt
	Timer int
}

type SubmitBuzzInput struct {
	Code  string
	Entry *models.BuzzEntry
}

type SubmitBuzzOutput struct {
	// Rank is the 1-based position of the accepted entry
	Rank int
}

type DeleteRoomInput struct {
	Code string
}

type SubscribeRoomInput struct {
	Code string
}

type SubscribeRoomOutput struct {
	// Events delivers change events in commit order; closed on
	// unsubscribe
	Events <-chan *Event

	// Unsubscribe stops the stream and releases the connection
	Unsubscribe func()
}
