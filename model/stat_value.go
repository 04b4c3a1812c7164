package model

import (
	"encoding/json"
	"fmt"
)

// StatValue is one entered stat: either a number or free text, matching
// whatever the user typed into the sheet or game form. It round-trips through
// JSON without changing which of the two it is.
type StatValue struct {
	Number float64
	Text   string
	IsNum  bool
}

func NumberValue(n float64) StatValue {
	return StatValue{Number: n, IsNum: true}
}

func TextValue(s string) StatValue {
	return StatValue{Text: s}
}

func (v StatValue) String() string {
	if v.IsNum {
		return fmt.Sprintf("%v", v.Number)
	}
	return v.Text
}

func (v StatValue) MarshalJSON() ([]byte, error) {
	if v.IsNum {
		return json.Marshal(v.Number)
	}
	return json.Marshal(v.Text)
}

func (v *StatValue) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch t := raw.(type) {
	case float64:
		*v = NumberValue(t)
	case string:
		*v = TextValue(t)
	default:
		return fmt.Errorf("stat values must be numbers or strings, got %T", raw)
	}
	return nil
}

// StatValues maps StatLineDef keys to entered values.
type StatValues map[string]StatValue
