package model

// Export is the full-dataset JSON document produced by /api/export and
// consumed by /api/import. Import replays the arrays in dependency order:
// binders, templates, players, sheets, binderPages.
type Export struct {
	Players     []Player     `json:"players"`
	Templates   []Template   `json:"templates"`
	Sheets      []Sheet      `json:"sheets"`
	Binders     []Binder     `json:"binders"`
	BinderPages []BinderPage `json:"binderPages"`
}
