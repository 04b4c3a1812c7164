package model

// Stats is the dashboard count summary.
type Stats struct {
	Players     int `json:"players"`
	Templates   int `json:"templates"`
	BinderPages int `json:"binderPages"`
}
