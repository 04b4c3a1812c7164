package model

// Team is one row in the user-editable teams settings table. It coexists with
// the static NFLTeam reference list; the static list drives dropdowns and
// helmet images, this table is free-form.
type Team struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Code           string `json:"code"`
	City           string `json:"city,omitempty"`
	ColorPrimary   string `json:"colorPrimary,omitempty"`
	ColorSecondary string `json:"colorSecondary,omitempty"`
	LogoURL        string `json:"logoUrl,omitempty"`
	Conference     string `json:"conference,omitempty"`
	Division       string `json:"division,omitempty"`
}
