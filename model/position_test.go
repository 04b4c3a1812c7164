package model

import "testing"

func TestParsePosition(t *testing.T) {
	tests := []struct {
		input    string
		expected Position
	}{
		{input: "QB", expected: POS_QB},
		{input: "qb", expected: POS_QB},
		{input: "WR", expected: POS_WR},
		{input: "wr", expected: POS_WR},
		{input: "RB", expected: POS_RB},
		{input: "FB", expected: POS_RB},
		{input: "TE", expected: POS_TE},
		{input: "OT", expected: POS_OL},
		{input: "OG", expected: POS_OL},
		{input: "DT", expected: POS_DL},
		{input: "DE", expected: POS_DL},
		{input: "EDGE", expected: POS_EDGE},
		{input: "ILB", expected: POS_LB},
		{input: "CB", expected: POS_CB},
		{input: "FS", expected: POS_S},
		{input: "SS", expected: POS_S},
		{input: "K", expected: POS_K},
		{input: "P", expected: POS_P},
		{input: " qb ", expected: POS_QB},

		// Two-way designations collapse to the primary position
		{input: "WR/CB", expected: POS_WR},
		{input: "CB/WR", expected: POS_CB},

		{input: "UNKNOWN", expected: POS_UNKNOWN},
		{input: "", expected: POS_UNKNOWN},
	}

	for _, tc := range tests {
		a := ParsePosition(tc.input)
		if a != tc.expected {
			t.Errorf("input: '%s', expected: '%s', got '%s'", tc.input, tc.expected, a)
		}
	}
}

func TestDefaultTemplateID(t *testing.T) {
	tests := []struct {
		pos      Position
		expected string
	}{
		{pos: POS_QB, expected: "tmpl-qb"},
		{pos: POS_EDGE, expected: "tmpl-edge"},
		{pos: POS_S, expected: "tmpl-s"},
	}

	for _, tc := range tests {
		got := DefaultTemplateID(tc.pos)
		if got != tc.expected {
			t.Errorf("pos: '%s', expected: '%s', got '%s'", tc.pos, tc.expected, got)
		}
	}
}
