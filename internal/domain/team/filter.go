package team

import "strings"

// Predicate reports whether a team belongs to a result set.
type Predicate func(Team) bool

func MatchAll() Predicate {
	return func(Team) bool { return true }
}

// MatchName is a case-insensitive substring match on the squad name.
func MatchName(query string) Predicate {
	needle := strings.ToLower(query)
	return func(t Team) bool {
		return strings.Contains(strings.ToLower(t.Name), needle)
	}
}

// MatchRank is exact; rank 3 never matches 13 or 30.
func MatchRank(rank int) Predicate {
	return func(t Team) bool { return t.Rank != nil && *t.Rank == rank }
}

func MatchPoints(points int) Predicate {
	return func(t Team) bool { return t.Points != nil && *t.Points == points }
}

// Filter keeps input order and never returns nil.
func Filter(items []Team, pred Predicate) []Team {
	if pred == nil {
		pred = MatchAll()
	}

	out := make([]Team, 0, len(items))
	for _, item := range items {
		if pred(item) {
			out = append(out, item)
		}
	}

	return out
}
