// Package selection reduces scored matches to a bounded team under
// manual-lock constraints.
package selection

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/staffing-engine/internal/types"
)

// Mode controls how the final team is chosen
type Mode string

// Selection mode constants
const (
	ModeAuto   Mode = "auto"
	ModeManual Mode = "manual"
)

// Options configures one team selection run.
type Options struct {
	TeamSize  int
	Mode      Mode
	LockedIDs []string
	// Priority is informational only; it does not affect selection today.
	Priority types.Priority
}

// SelectTeam reduces scored matches to a team of the target size.
// Locked candidates are unconditionally included regardless of score;
// team size is a soft target that never drops a manual lock. Remaining
// slots fill greedily by score, excluding zero-score candidates from
// auto-fill. The result never contains duplicate candidate ids.
func SelectTeam(matches []types.Match, opts Options) (*types.TeamSelectionResult, error) {
	if opts.TeamSize <= 0 {
		return nil, &InvalidInputError{Message: fmt.Sprintf("team size must be positive, got %d", opts.TeamSize)}
	}

	// Stable sort keeps input order on ties so selection is deterministic
	// given identical input ordering
	sorted := make([]types.Match, len(matches))
	copy(sorted, matches)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})

	locked := make(map[string]bool, len(opts.LockedIDs))
	for _, id := range opts.LockedIDs {
		locked[id] = true
	}

	selected := make([]types.Match, 0, opts.TeamSize)
	seen := make(map[string]bool)
	var reasoning []string

	// Locked candidates come first, in score order
	if len(locked) > 0 {
		lockedCount := 0
		for _, m := range sorted {
			if locked[m.CandidateID] && !seen[m.CandidateID] {
				selected = append(selected, m)
				seen[m.CandidateID] = true
				lockedCount++
			}
		}
		reasoning = append(reasoning, fmt.Sprintf("Locked %d candidates manually.", lockedCount))
	}

	remaining := opts.TeamSize - len(selected)
	exceeds := false

	switch {
	case remaining > 0:
		filled := 0
		for _, m := range sorted {
			if filled >= remaining {
				break
			}
			if seen[m.CandidateID] {
				continue
			}
			// Zero-score candidates are tracked but never auto-filled
			// into the core team
			if m.Score <= 0 {
				continue
			}
			selected = append(selected, m)
			seen[m.CandidateID] = true
			filled++
		}
		reasoning = append(reasoning, fmt.Sprintf("Auto-filled %d optimal candidates based on score.", filled))
	case remaining < 0:
		exceeds = true
		reasoning = append(reasoning, fmt.Sprintf(
			"Manual selection (%d) exceeds target team size (%d). Keeping all locked candidates.",
			len(selected), opts.TeamSize))
	}

	return &types.TeamSelectionResult{
		Selected:      selected,
		Rationale:     strings.Join(reasoning, " "),
		ExceedsTarget: exceeds,
	}, nil
}
