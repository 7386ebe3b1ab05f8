package codes

import (
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_generator.go github.com/KirkDiggler/buzzd/internal/codes Generator

// RoomCodeLength is the length of every room join code
const RoomCodeLength = 4

// roomCodeAlphabet excludes characters that read ambiguously on a
// projected screen (0/O, 1/I)
const roomCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// Generator produces room join codes and player access codes
type Generator interface {
	// RoomCode returns a fresh 4-character room code
	RoomCode() string

	// AccessCode returns a fresh 4-digit player access code
	AccessCode() string
}

// Config for the code generator
type Config struct {
	// Optional seed for testing
	Seed int64
}

// generator implements Generator using math/rand. The mutex serializes
// access to the rand.Rand, which is not safe for concurrent use and is
// shared by every connection goroutine.
type generator struct {
	mu     sync.Mutex
	random *rand.Rand
}

// New creates a new code generator
func New(cfg *Config) *generator {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)

	return &generator{
		random: rand.New(source),
	}
}

// RoomCode returns a 4-character code from the unambiguous alphabet
func (g *generator) RoomCode() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	var sb strings.Builder
	for i := 0; i < RoomCodeLength; i++ {
		sb.WriteByte(roomCodeAlphabet[g.random.Intn(len(roomCodeAlphabet))])
	}
	return sb.String()
}

// AccessCode returns a 4-digit numeric code in the range 1000-9999
func (g *generator) AccessCode() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	return strconv.Itoa(1000 + g.random.Intn(9000))
}

// NormalizeRoomCode upper-cases and trims a user-entered room code.
// Codes are case-insensitive on input and stored uppercase.
func NormalizeRoomCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ValidRoomCode reports whether a normalized code has the right shape
func ValidRoomCode(code string) bool {
	if len(code) != RoomCodeLength {
		return false
	}
	for i := 0; i < len(code); i++ {
		if !strings.ContainsRune(roomCodeAlphabet, rune(code[i])) {
			return false
		}
	}
	return true
}
