package model

// Sheet is one season's aggregate stat entry for a player under a template.
// Values covers only the template's non-calc lines.
type Sheet struct {
	ID         string     `json:"id"`
	PlayerID   string     `json:"playerId"`
	TemplateID string     `json:"templateId"`
	SeasonYear int        `json:"seasonYear"`
	Values     StatValues `json:"values"`
}
