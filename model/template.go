package model

import (
	"slices"
	"strings"
)

type StatType string

const (
	StatTypeNumber StatType = "number"
	StatTypeText   StatType = "text"
	StatTypeCalc   StatType = "calc"
)

func ParseStatType(s string) (StatType, bool) {
	switch StatType(s) {
	case StatTypeNumber, StatTypeText, StatTypeCalc:
		return StatType(s), true
	default:
		return "", false
	}
}

// StatLineDef is one field definition within a Template. Key identifies the
// field in Sheet and Game value maps. Formula is only meaningful for calc
// lines, and calc lines never take entered values.
type StatLineDef struct {
	Key         string   `json:"key"`
	Label       string   `json:"label"`
	Type        StatType `json:"type"`
	Formula     string   `json:"formula,omitempty"`
	PerGame     bool     `json:"perGame,omitempty"`
	Order       int      `json:"order"`
	Description string   `json:"description,omitempty"`
}

// Template defines the shape of stat entry for a position. The set of editable
// fields on sheets and games comes from here, not from a fixed schema.
type Template struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Position  string        `json:"position"` // a Position or "Generic"
	StatLines []StatLineDef `json:"statLines"`
}

// SortedStatLines returns the stat lines ordered by their Order field. Storage
// does not guarantee declared order, so anything that cares about display or
// input sequence goes through here.
func (t *Template) SortedStatLines() []StatLineDef {
	lines := slices.Clone(t.StatLines)
	slices.SortStableFunc(lines, func(a, b StatLineDef) int {
		return a.Order - b.Order
	})
	return lines
}

// ValueKeys returns the set of keys that accept entered values, which is every
// non-calc line.
func (t *Template) ValueKeys() map[string]bool {
	keys := make(map[string]bool, len(t.StatLines))
	for _, sl := range t.StatLines {
		if sl.Type != StatTypeCalc {
			keys[sl.Key] = true
		}
	}
	return keys
}

// NormalizeStatKey reduces a stat line key to uppercase alphanumerics and
// underscores, so " rec yds " becomes "RECYDS".
func NormalizeStatKey(key string) string {
	var b strings.Builder
	b.Grow(len(key))
	for _, r := range strings.ToUpper(key) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
