package model

// Game is one week's stat entry for a player. On a bye week the opponent,
// scores, and values are semantically void, but anything submitted is still
// stored.
type Game struct {
	ID           string     `json:"id"`
	PlayerID     string     `json:"playerId"`
	TemplateID   string     `json:"templateId"`
	Date         string     `json:"date,omitempty"` // ISO date, YYYY-MM-DD
	IsBye        bool       `json:"isBye"`
	OpponentAbbr string     `json:"opponentAbbr,omitempty"`
	TeamScore    *int       `json:"teamScore,omitempty"`
	OppScore     *int       `json:"oppScore,omitempty"`
	Values       StatValues `json:"values"`
}
