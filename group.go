package distribute

import (
	"fmt"
	"strings"

	"github.com/beeracademy/distribute/types"
)

// parseGroups turns raw participant tokens into atomic groups.
//
// Each token names one group: several names joined by the separator must land
// in the same bucket, and the group's weight is its name count. Stray commas
// from pasted name lists are stripped before splitting, and empty fragments
// from doubled or trailing separators are dropped; a token left without any
// names is skipped entirely.
//
// Returns the weight vector in encounter order plus the groups bucketed by
// weight, the shape the assembler needs to map an abstract assignment back to
// concrete rosters. Fails before any search when the input is empty
// (ErrNoParticipants) or a group exceeds the capacity (ErrGroupTooLarge).
func parseGroups(tokens []string, sep string, capacity int) ([]int, map[int][]types.Group, error) {
	if len(tokens) == 0 {
		return nil, nil, types.ErrNoParticipants
	}

	weights := make([]int, 0, len(tokens))
	classes := make(map[int][]types.Group)

	for _, token := range tokens {
		cleaned := strings.ReplaceAll(token, ",", "")

		names := make([]string, 0, strings.Count(cleaned, sep)+1)
		for _, name := range strings.Split(cleaned, sep) {
			if name != "" {
				names = append(names, name)
			}
		}
		if len(names) == 0 {
			continue
		}

		group := types.Group{Names: names}
		w := group.Weight()
		if w > capacity {
			return nil, nil, fmt.Errorf("group %q has %d members, capacity is %d: %w",
				token, w, capacity, types.ErrGroupTooLarge)
		}

		weights = append(weights, w)
		classes[w] = append(classes[w], group)
	}

	if len(weights) == 0 {
		return nil, nil, types.ErrNoParticipants
	}

	return weights, classes, nil
}
