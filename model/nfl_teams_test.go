package model

import (
	"encoding/json"
	"testing"
)

func TestParseTeam(t *testing.T) {
	tests := []struct {
		input    string
		expected *NFLTeam
	}{
		{input: "FA", expected: TEAM_FA},
		{input: "FA*", expected: TEAM_FA},

		// NFC
		{input: "ARI", expected: TEAM_ARI},
		{input: "DAL", expected: TEAM_DAL},
		{input: "GBP", expected: TEAM_GBP},
		{input: "SEA", expected: TEAM_SEA},

		// AFC
		{input: "BAL", expected: TEAM_BAL},
		{input: "CLE", expected: TEAM_CLE},
		{input: "JAC", expected: TEAM_JAC},
		{input: "PIT", expected: TEAM_PIT},

		// Short names
		{input: "gb", expected: TEAM_GBP},
		{input: "kc", expected: TEAM_KCC},
		{input: "sf", expected: TEAM_SFO},

		// mascot
		{input: "Browns", expected: TEAM_CLE},
		{input: "Jaguars", expected: TEAM_JAC},
		{input: "Seahawks", expected: TEAM_SEA},

		// full name
		{input: "Cleveland Browns", expected: TEAM_CLE},
		{input: "New England Patriots", expected: TEAM_NEP},

		// nicknames
		{input: "Philly", expected: TEAM_PHI},
		{input: "niners", expected: TEAM_SFO},
		{input: "Jags", expected: TEAM_JAC},

		// Unknown
		{input: "Puyallup", expected: TEAM_FA},
	}

	for _, tc := range tests {
		a := ParseTeam(tc.input)
		if !tc.expected.Equals(a) {
			t.Errorf("input: '%s', expected: '%s', got '%s'", tc.input, tc.expected, a)
		}
	}
}

func TestFriendly(t *testing.T) {
	tests := []struct {
		t    *NFLTeam
		want string
	}{
		{t: TEAM_CLE, want: "Cleveland Browns"},
		{t: TEAM_FA, want: "FA"},
	}

	for _, tc := range tests {
		got := tc.t.Friendly()
		if tc.want != got {
			t.Errorf("expected: '%s', got: '%s'", tc.want, got)
		}
	}
}

func TestEquals(t *testing.T) {
	tests := []struct {
		a    *NFLTeam
		b    *NFLTeam
		want bool
	}{
		{a: TEAM_BAL, b: TEAM_BAL, want: true},
		{a: TEAM_SEA, b: TEAM_SFO, want: false},
		{a: TEAM_DAL, b: nil, want: false},
	}

	for _, tc := range tests {
		got := tc.a.Equals(tc.b)
		if tc.want != got {
			t.Errorf("expected: '%v', got: '%v'", tc.want, got)
		}
	}
}

func TestNFLTeamJSON(t *testing.T) {
	b, err := json.Marshal(TEAM_CLE)
	if err != nil {
		t.Fatalf("error marshaling team: %v", err)
	}
	if string(b) != `"CLE"` {
		t.Errorf("expected '\"CLE\"', got: '%s'", b)
	}

	var team NFLTeam
	if err := json.Unmarshal([]byte(`"Browns"`), &team); err != nil {
		t.Fatalf("error unmarshaling team: %v", err)
	}
	if !team.Equals(TEAM_CLE) {
		t.Errorf("expected CLE, got: '%s'", &team)
	}

	if err := json.Unmarshal([]byte(`"not a team"`), &team); err != nil {
		t.Fatalf("error unmarshaling unknown team: %v", err)
	}
	if !team.Equals(TEAM_FA) {
		t.Errorf("expected FA for unknown name, got: '%s'", &team)
	}
}
