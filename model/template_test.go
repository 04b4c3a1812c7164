package model

import (
	"reflect"
	"testing"
)

func TestNormalizeStatKey(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "YDS", expected: "YDS"},
		{input: "yds", expected: "YDS"},
		{input: " rec yds ", expected: "RECYDS"},
		{input: "comp%", expected: "COMP"},
		{input: "third_down", expected: "THIRD_DOWN"},
		{input: "40-time", expected: "40TIME"},
		{input: "", expected: ""},
	}

	for _, tc := range tests {
		got := NormalizeStatKey(tc.input)
		if got != tc.expected {
			t.Errorf("input: '%s', expected: '%s', got: '%s'", tc.input, tc.expected, got)
		}
	}
}

func TestSortedStatLines(t *testing.T) {
	tmpl := &Template{
		ID:       "tmpl-test",
		Name:     "Test",
		Position: "QB",
		StatLines: []StatLineDef{
			{Key: "TD", Type: StatTypeNumber, Order: 3},
			{Key: "YDS", Type: StatTypeNumber, Order: 1},
			{Key: "RATING", Type: StatTypeCalc, Order: 4, Formula: "YDS / ATT"},
			{Key: "ATT", Type: StatTypeNumber, Order: 2},
		},
	}

	sorted := tmpl.SortedStatLines()
	keys := make([]string, 0, len(sorted))
	for _, sl := range sorted {
		keys = append(keys, sl.Key)
	}
	expected := []string{"YDS", "ATT", "TD", "RATING"}
	if !reflect.DeepEqual(expected, keys) {
		t.Errorf("expected: %v, got: %v", expected, keys)
	}

	// The original slice must not be reordered.
	if tmpl.StatLines[0].Key != "TD" {
		t.Errorf("SortedStatLines modified the template, first key is now: %s", tmpl.StatLines[0].Key)
	}
}

func TestValueKeys(t *testing.T) {
	tmpl := &Template{
		ID: "tmpl-test",
		StatLines: []StatLineDef{
			{Key: "YDS", Type: StatTypeNumber},
			{Key: "NOTES", Type: StatTypeText},
			{Key: "AVG", Type: StatTypeCalc, Formula: "YDS / ATT"},
		},
	}

	keys := tmpl.ValueKeys()
	if len(keys) != 2 {
		t.Fatalf("expected 2 value keys, got: %d", len(keys))
	}
	if !keys["YDS"] || !keys["NOTES"] {
		t.Errorf("expected YDS and NOTES to be value keys: %v", keys)
	}
	if keys["AVG"] {
		t.Error("calc lines must not accept entered values")
	}
}

func TestParseStatType(t *testing.T) {
	tests := []struct {
		input    string
		expected StatType
		ok       bool
	}{
		{input: "number", expected: StatTypeNumber, ok: true},
		{input: "text", expected: StatTypeText, ok: true},
		{input: "calc", expected: StatTypeCalc, ok: true},
		{input: "Number", ok: false},
		{input: "", ok: false},
	}

	for _, tc := range tests {
		got, ok := ParseStatType(tc.input)
		if ok != tc.ok {
			t.Errorf("input: '%s', expected ok: %v, got: %v", tc.input, tc.ok, ok)
			continue
		}
		if ok && got != tc.expected {
			t.Errorf("input: '%s', expected: '%s', got: '%s'", tc.input, tc.expected, got)
		}
	}
}
