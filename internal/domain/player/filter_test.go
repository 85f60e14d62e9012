package player

import (
	"testing"
)

func strPtr(v string) *string { return &v }
func intPtr(v int) *int       { return &v }

func samplePlayers() []Player {
	return []Player{
		{Index: 1, Name: "Lionel Messi", Team: "Paris Saint-Germain", Position: "FW", Nation: "ar ARG", Age: intPtr(36)},
		{Index: 2, Name: "Kylian Mbappe", Team: "Paris Saint-Germain", Position: "FW", Nation: "fr FRA", Age: intPtr(24)},
		{Index: 3, Name: "Achraf Hakimi", Team: "Paris Saint-Germain", Position: "DF", Nation: "ma MAR", Age: intPtr(24)},
		{Index: 4, Name: "Rodri", Team: "Manchester City", Position: "MF", Nation: "es ESP", Age: intPtr(27)},
		{Index: 5, Name: "Erling Haaland", Team: "Manchester City", Position: "FW", Nation: "no NOR", Age: intPtr(23)},
		{Index: 6, Name: "Unknown Trialist", Team: "Celtic", Position: "MF,FW", Nation: "sct SCO"},
	}
}

func indexes(items []Player) []int {
	out := make([]int, 0, len(items))
	for _, item := range items {
		out = append(out, item.Index)
	}
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestCriteriaBranch(t *testing.T) {
	tests := []struct {
		name     string
		criteria Criteria
		want     Branch
	}{
		{name: "no criteria", criteria: Criteria{}, want: BranchAll},
		{name: "team and position", criteria: Criteria{Team: strPtr("psg"), Position: strPtr("fw")}, want: BranchTeamAndPosition},
		{name: "team position name nation", criteria: Criteria{Name: strPtr("x"), Team: strPtr("psg"), Nation: strPtr("fr"), Position: strPtr("fw")}, want: BranchTeamAndPosition},
		{name: "nation and position", criteria: Criteria{Nation: strPtr("fr"), Position: strPtr("fw")}, want: BranchNationAndPosition},
		{name: "name and nation and position", criteria: Criteria{Name: strPtr("x"), Nation: strPtr("fr"), Position: strPtr("fw")}, want: BranchNationAndPosition},
		{name: "name only", criteria: Criteria{Name: strPtr("mess")}, want: BranchName},
		{name: "name and team", criteria: Criteria{Name: strPtr("mbappe"), Team: strPtr("psg")}, want: BranchName},
		{name: "name and position", criteria: Criteria{Name: strPtr("mbappe"), Position: strPtr("fw")}, want: BranchName},
		{name: "team and nation", criteria: Criteria{Team: strPtr("psg"), Nation: strPtr("fr")}, want: BranchTeam},
		{name: "team only", criteria: Criteria{Team: strPtr("psg")}, want: BranchTeam},
		{name: "nation only", criteria: Criteria{Nation: strPtr("fr")}, want: BranchNation},
		{name: "position only", criteria: Criteria{Position: strPtr("fw")}, want: BranchPosition},
		{name: "empty value still counts as supplied", criteria: Criteria{Team: strPtr(""), Position: strPtr("")}, want: BranchTeamAndPosition},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.criteria.Branch(); got != tc.want {
				t.Fatalf("unexpected branch: got=%s want=%s", got, tc.want)
			}
		})
	}
}

func TestFilter_EmptySubstringMatchesAll(t *testing.T) {
	items := samplePlayers()
	all := indexes(items)

	for name, pred := range map[string]Predicate{
		"name":     MatchName(""),
		"team":     MatchTeam(""),
		"nation":   MatchNation(""),
		"position": MatchPosition(""),
	} {
		if got := indexes(Filter(items, pred)); !equalInts(got, all) {
			t.Fatalf("empty %s filter: got=%v want=%v", name, got, all)
		}
	}
}

func TestFilter_CaseInsensitiveSubstring(t *testing.T) {
	items := samplePlayers()

	got := indexes(Filter(items, Criteria{Name: strPtr("MESS")}.Predicate()))
	if !equalInts(got, []int{1}) {
		t.Fatalf("unexpected name result: %v", got)
	}

	got = indexes(Filter(items, Criteria{Team: strPtr("saint-g")}.Predicate()))
	if !equalInts(got, []int{1, 2, 3}) {
		t.Fatalf("unexpected team result: %v", got)
	}

	got = indexes(Filter(items, Criteria{Position: strPtr("fw")}.Predicate()))
	if !equalInts(got, []int{1, 2, 5, 6}) {
		t.Fatalf("unexpected position result: %v", got)
	}
}

func TestFilter_TeamAndPositionIsIntersection(t *testing.T) {
	items := samplePlayers()
	team, position := "city", "fw"

	combined := indexes(Filter(items, Criteria{Team: &team, Position: &position}.Predicate()))

	byTeam := Filter(items, MatchTeam(team))
	intersection := indexes(Filter(byTeam, MatchPosition(position)))

	if !equalInts(combined, intersection) {
		t.Fatalf("combined=%v intersection=%v", combined, intersection)
	}
	if !equalInts(combined, []int{5}) {
		t.Fatalf("unexpected combined result: %v", combined)
	}
}

func TestFilter_NameWinsOverTeam(t *testing.T) {
	items := samplePlayers()

	withTeam := indexes(Filter(items, Criteria{Name: strPtr("mbappe"), Team: strPtr("city")}.Predicate()))
	nameOnly := indexes(Filter(items, MatchName("mbappe")))

	if !equalInts(withTeam, nameOnly) {
		t.Fatalf("name+team=%v name=%v", withTeam, nameOnly)
	}
}

func TestFilter_NationAndPosition(t *testing.T) {
	items := samplePlayers()

	got := indexes(Filter(items, Criteria{Nation: strPtr("FRA"), Position: strPtr("fw"), Name: strPtr("messi")}.Predicate()))
	if !equalInts(got, []int{2}) {
		t.Fatalf("unexpected nation+position result: %v", got)
	}
}

func TestFilter_AgeIsExact(t *testing.T) {
	items := samplePlayers()

	got := Filter(items, MatchAge(24))
	if !equalInts(indexes(got), []int{2, 3}) {
		t.Fatalf("unexpected age result: %v", indexes(got))
	}
	for _, item := range got {
		if item.AgeValue() != 24 {
			t.Fatalf("player %d has age %d", item.Index, item.AgeValue())
		}
	}

	if got := Filter(items, MatchAge(0)); len(got) != 0 {
		t.Fatalf("expected players without age to be excluded, got %v", indexes(got))
	}
}

func TestFilter_EmptyInputReturnsEmptySlice(t *testing.T) {
	got := Filter(nil, Criteria{Name: strPtr("x")}.Predicate())
	if got == nil {
		t.Fatalf("expected non-nil slice")
	}
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %v", indexes(got))
	}
}
