package team

import "testing"

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "Atlético Madrid", want: "Atletico Madrid"},
		{in: "Paris-Saint-Germain", want: "Paris Saint-Germain"},
		{in: "eng Liverpool", want: "Liverpool"},
		{in: "it Inter", want: "Inter Milan"},
		{in: "nl Feyenoord", want: "Feyenoord"},
		{in: "at Red-Bull-Salzburg", want: "RB Salzburg"},
		{in: "sct Celtic", want: "Celtic"},
		{in: "  Bayern Munich  ", want: "Bayern Munich"},
		{in: "Benfica", want: "Benfica"},
		{in: "", want: ""},
	}

	for _, tc := range tests {
		if got := NormalizeName(tc.in); got != tc.want {
			t.Fatalf("NormalizeName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
