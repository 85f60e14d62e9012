package player

import "strings"

// Predicate reports whether a player belongs to a result set.
type Predicate func(Player) bool

// Branch names the criteria combination selected for a query.
type Branch string

const (
	BranchTeamAndPosition   Branch = "team_and_position"
	BranchNationAndPosition Branch = "nation_and_position"
	BranchName              Branch = "name"
	BranchTeam              Branch = "team"
	BranchNation            Branch = "nation"
	BranchPosition          Branch = "position"
	BranchAll               Branch = "all"
)

// Criteria holds the optional text filters of a player query.
// A nil field was not supplied; an empty string was supplied and matches everything.
type Criteria struct {
	Name     *string
	Team     *string
	Nation   *string
	Position *string
}

// Branch picks exactly one combination, first match wins:
// team+position, nation+position, name, team, nation, position, all.
// Fields outside the selected branch are ignored.
func (c Criteria) Branch() Branch {
	switch {
	case c.Team != nil && c.Position != nil:
		return BranchTeamAndPosition
	case c.Nation != nil && c.Position != nil:
		return BranchNationAndPosition
	case c.Name != nil:
		return BranchName
	case c.Team != nil:
		return BranchTeam
	case c.Nation != nil:
		return BranchNation
	case c.Position != nil:
		return BranchPosition
	default:
		return BranchAll
	}
}

// Predicate returns the matcher for the selected branch.
func (c Criteria) Predicate() Predicate {
	switch c.Branch() {
	case BranchTeamAndPosition:
		return And(MatchTeam(*c.Team), MatchPosition(*c.Position))
	case BranchNationAndPosition:
		return And(MatchNation(*c.Nation), MatchPosition(*c.Position))
	case BranchName:
		return MatchName(*c.Name)
	case BranchTeam:
		return MatchTeam(*c.Team)
	case BranchNation:
		return MatchNation(*c.Nation)
	case BranchPosition:
		return MatchPosition(*c.Position)
	default:
		return MatchAll()
	}
}

func MatchAll() Predicate {
	return func(Player) bool { return true }
}

func MatchName(query string) Predicate {
	needle := strings.ToLower(query)
	return func(p Player) bool { return containsLower(p.Name, needle) }
}

func MatchTeam(query string) Predicate {
	needle := strings.ToLower(query)
	return func(p Player) bool { return containsLower(p.Team, needle) }
}

func MatchNation(query string) Predicate {
	needle := strings.ToLower(query)
	return func(p Player) bool { return containsLower(p.Nation, needle) }
}

func MatchPosition(query string) Predicate {
	needle := strings.ToLower(query)
	return func(p Player) bool { return containsLower(p.Position, needle) }
}

// MatchAge is exact equality; players without a recorded age never match.
func MatchAge(age int) Predicate {
	return func(p Player) bool { return p.Age != nil && *p.Age == age }
}

func And(predicates ...Predicate) Predicate {
	return func(p Player) bool {
		for _, pred := range predicates {
			if !pred(p) {
				return false
			}
		}
		return true
	}
}

// Filter keeps input order and never returns nil.
func Filter(items []Player, pred Predicate) []Player {
	if pred == nil {
		pred = MatchAll()
	}

	out := make([]Player, 0, len(items))
	for _, item := range items {
		if pred(item) {
			out = append(out, item)
		}
	}

	return out
}

func containsLower(value, lowerNeedle string) bool {
	return strings.Contains(strings.ToLower(value), lowerNeedle)
}
