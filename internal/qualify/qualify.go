package qualify

import (
	"sort"

	"github.com/KirkDiggler/buzzd/internal/models"
)

// Rank returns a leaderboard-ordered copy of the players: score
// descending, ties broken by join time then ID so the ordering is
// deterministic regardless of how the snapshot was fetched.
func Rank(snapshot []*models.Player) []*models.Player {
	ranked := make([]*models.Player, len(snapshot))
	copy(ranked, snapshot)

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		if !ranked[i].JoinedAt.Equal(ranked[j].JoinedAt) {
			return ranked[i].JoinedAt.Before(ranked[j].JoinedAt)
		}
		return ranked[i].ID < ranked[j].ID
	})

	return ranked
}

// ComputeAllowed returns the player IDs qualified to buzz in a round with
// the given cutoff, taken from a leaderboard snapshot. A cutoff of zero or
// less means the round is unrestricted and nil is returned.
//
// The snapshot is taken once, at round-select time; later score changes
// do not move the cutoff.
func ComputeAllowed(cutoff int, snapshot []*models.Player) []string {
	if cutoff <= 0 {
		return nil
	}

	ranked := Rank(snapshot)

	if cutoff > len(ranked) {
		cutoff = len(ranked)
	}

	allowed := make([]string, 0, cutoff)
	for _, p := range ranked[:cutoff] {
		allowed = append(allowed, p.ID)
	}

	return allowed
}
