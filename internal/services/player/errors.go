package player

// PlayerError is a custom error type for player-related errors
type PlayerError string

// Error implements the error interface
func (e PlayerError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrPlayerNotFound     PlayerError = "player not found"
	ErrRoomNotFound       PlayerError = "room not found"
	ErrNameRequired       PlayerError = "player name is required"
	ErrPlayerRequired     PlayerError = "player ID is required"
	ErrInvalidRoomCode    PlayerError = "room code must be 4 letters or digits"
	ErrUnknownTeam        PlayerError = "team is not configured for this room"
	ErrAccessCodeUnknown  PlayerError = "access code does not match any player"
	ErrAccessCodesDrained PlayerError = "could not allocate a unique access code"

	ErrNilConfig        PlayerError = "config cannot be nil"
	ErrNilPlayerRepo    PlayerError = "player repository cannot be nil"
	ErrNilRoomRepo      PlayerError = "room repository cannot be nil"
	ErrNilCodeGenerator PlayerError = "code generator cannot be nil"
	ErrNilClock         PlayerError = "clock cannot be nil"
	ErrNilUUIDGenerator PlayerError = "UUID generator cannot be nil"
)
