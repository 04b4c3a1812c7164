package model

// Player is a tracked card subject. IsPlayer distinguishes roster players that
// get an auto-provisioned rookie binder page from other tracked people. The
// store keeps it in the legacy isRookie column but the public field name is
// isPlayer.
type Player struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Team            *NFLTeam `json:"team"`
	Position        Position `json:"position"`
	Colleges        []string `json:"colleges"`
	DraftYear       *int     `json:"draftYear,omitempty"`
	DraftPick       *int     `json:"draftPick,omitempty"`
	IsPlayer        bool     `json:"isPlayer"`
	IsBrownsStarter bool     `json:"isBrownsStarter"`
	Notes           string   `json:"notes,omitempty"`
	TemplateID      string   `json:"templateId,omitempty"`
	PhotoURL        string   `json:"photoUrl,omitempty"`
}
