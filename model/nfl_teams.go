package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// NFLTeam is one entry in the static reference list of NFL teams. This list
// backs the form dropdowns and is the source of truth for helmet images. It is
// distinct from the user-editable teams table managed through /api/teams.
type NFLTeam struct {
	abbr   string
	loc    string
	mascot string
	conf   string
	div    string
	short  string   // If there is a short form of the abbreviation, e.g. SF for SFO
	nick   []string // Any other nicknames that are used for the team, e.g. Philly for PHI
}

func (t *NFLTeam) String() string {
	return t.abbr
}

func (t *NFLTeam) Abbr() string {
	return t.abbr
}

func (t *NFLTeam) City() string {
	return t.loc
}

func (t *NFLTeam) Conference() string {
	return t.conf
}

func (t *NFLTeam) Division() string {
	return t.div
}

func (t *NFLTeam) Equals(o *NFLTeam) bool {
	if o == nil {
		return false
	}
	return t.abbr == o.abbr
}

func (t *NFLTeam) Friendly() string {
	if t.loc == "" {
		return t.abbr
	}
	return fmt.Sprintf("%s %s", t.loc, t.mascot)
}

// Players carry their team as a plain abbreviation on the wire.
func (t *NFLTeam) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.abbr)
}

func (t *NFLTeam) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed := ParseTeam(s)
	*t = *parsed
	return nil
}

var (
	TEAM_FA *NFLTeam = &NFLTeam{abbr: "FA", nick: []string{"FA*"}}

	// NFC
	TEAM_ARI *NFLTeam = &NFLTeam{abbr: "ARI", loc: "Arizona", mascot: "Cardinals", conf: "NFC", div: "West", nick: []string{"Cards"}}
	TEAM_ATL *NFLTeam = &NFLTeam{abbr: "ATL", loc: "Atlanta", mascot: "Falcons", conf: "NFC", div: "South"}
	TEAM_CAR *NFLTeam = &NFLTeam{abbr: "CAR", loc: "Carolina", mascot: "Panthers", conf: "NFC", div: "South"}
	TEAM_CHI *NFLTeam = &NFLTeam{abbr: "CHI", loc: "Chicago", mascot: "Bears", conf: "NFC", div: "North"}
	TEAM_DAL *NFLTeam = &NFLTeam{abbr: "DAL", loc: "Dallas", mascot: "Cowboys", conf: "NFC", div: "East"}
	TEAM_DET *NFLTeam = &NFLTeam{abbr: "DET", loc: "Detroit", mascot: "Lions", conf: "NFC", div: "North"}
	TEAM_GBP *NFLTeam = &NFLTeam{abbr: "GBP", loc: "Green Bay", mascot: "Packers", conf: "NFC", div: "North", short: "GB"}
	TEAM_LAR *NFLTeam = &NFLTeam{abbr: "LAR", loc: "Los Angeles", mascot: "Rams", conf: "NFC", div: "West"}
	TEAM_MIN *NFLTeam = &NFLTeam{abbr: "MIN", loc: "Minnesota", mascot: "Vikings", conf: "NFC", div: "North"}
	TEAM_NOS *NFLTeam = &NFLTeam{abbr: "NOS", loc: "New Orleans", mascot: "Saints", conf: "NFC", div: "South", short: "NO"}
	TEAM_NYG *NFLTeam = &NFLTeam{abbr: "NYG", loc: "New York", mascot: "Giants", conf: "NFC", div: "East"}
	TEAM_PHI *NFLTeam = &NFLTeam{abbr: "PHI", loc: "Philadelphia", mascot: "Eagles", conf: "NFC", div: "East", nick: []string{"Philly"}}
	TEAM_SFO *NFLTeam = &NFLTeam{abbr: "SFO", loc: "San Francisco", mascot: "49ers", conf: "NFC", div: "West", short: "SF", nick: []string{"Niners", "9ers"}}
	TEAM_SEA *NFLTeam = &NFLTeam{abbr: "SEA", loc: "Seattle", mascot: "Seahawks", conf: "NFC", div: "West", nick: []string{"Hawks"}}
	TEAM_TBB *NFLTeam = &NFLTeam{abbr: "TBB", loc: "Tampa Bay", mascot: "Buccaneers", conf: "NFC", div: "South", short: "TB", nick: []string{"Bucs"}}
	TEAM_WAS *NFLTeam = &NFLTeam{abbr: "WAS", loc: "Washington", mascot: "Commanders", conf: "NFC", div: "East"}

	// AFC
	TEAM_BAL *NFLTeam = &NFLTeam{abbr: "BAL", loc: "Baltimore", mascot: "Ravens", conf: "AFC", div: "North"}
	TEAM_BUF *NFLTeam = &NFLTeam{abbr: "BUF", loc: "Buffalo", mascot: "Bills", conf: "AFC", div: "East"}
	TEAM_CIN *NFLTeam = &NFLTeam{abbr: "CIN", loc: "Cincinnati", mascot: "Bengals", conf: "AFC", div: "North"}
	TEAM_CLE *NFLTeam = &NFLTeam{abbr: "CLE", loc: "Cleveland", mascot: "Browns", conf: "AFC", div: "North"}
	TEAM_DEN *NFLTeam = &NFLTeam{abbr: "DEN", loc: "Denver", mascot: "Broncos", conf: "AFC", div: "West"}
	TEAM_HOU *NFLTeam = &NFLTeam{abbr: "HOU", loc: "Houston", mascot: "Texans", conf: "AFC", div: "South"}
	TEAM_IND *NFLTeam = &NFLTeam{abbr: "IND", loc: "Indianapolis", mascot: "Colts", conf: "AFC", div: "South", nick: []string{"Indy"}}
	TEAM_JAC *NFLTeam = &NFLTeam{abbr: "JAC", loc: "Jacksonville", mascot: "Jaguars", conf: "AFC", div: "South", nick: []string{"Jags"}}
	TEAM_KCC *NFLTeam = &NFLTeam{abbr: "KCC", loc: "Kansas City", mascot: "Chiefs", conf: "AFC", div: "West", short: "KC"}
	TEAM_LVR *NFLTeam = &NFLTeam{abbr: "LVR", loc: "Las Vegas", mascot: "Raiders", conf: "AFC", div: "West", short: "LV"}
	TEAM_LAC *NFLTeam = &NFLTeam{abbr: "LAC", loc: "Los Angeles", mascot: "Chargers", conf: "AFC", div: "West"}
	TEAM_MIA *NFLTeam = &NFLTeam{abbr: "MIA", loc: "Miami", mascot: "Dolphins", conf: "AFC", div: "East"}
	TEAM_NEP *NFLTeam = &NFLTeam{abbr: "NEP", loc: "New England", mascot: "Patriots", conf: "AFC", div: "East", short: "NE", nick: []string{"Pats"}}
	TEAM_NYJ *NFLTeam = &NFLTeam{abbr: "NYJ", loc: "New York", mascot: "Jets", conf: "AFC", div: "East"}
	TEAM_PIT *NFLTeam = &NFLTeam{abbr: "PIT", loc: "Pittsburgh", mascot: "Steelers", conf: "AFC", div: "North", nick: []string{"Pitt"}}
	TEAM_TEN *NFLTeam = &NFLTeam{abbr: "TEN", loc: "Tennessee", mascot: "Titans", conf: "AFC", div: "South"}

	// AllTeams is in the order teams are presented in dropdowns.
	AllTeams = []*NFLTeam{
		// NFC
		TEAM_ARI, TEAM_ATL, TEAM_CAR, TEAM_CHI, TEAM_DAL, TEAM_DET, TEAM_GBP, TEAM_LAR,
		TEAM_MIN, TEAM_NOS, TEAM_NYG, TEAM_PHI, TEAM_SFO, TEAM_SEA, TEAM_TBB, TEAM_WAS,
		// AFC
		TEAM_BAL, TEAM_BUF, TEAM_CIN, TEAM_CLE, TEAM_DEN, TEAM_HOU, TEAM_IND, TEAM_JAC,
		TEAM_KCC, TEAM_LVR, TEAM_LAC, TEAM_MIA, TEAM_NEP, TEAM_NYJ, TEAM_PIT, TEAM_TEN,
	}

	teamMap map[string]*NFLTeam = buildTeamMap()
)

// ParseTeam maps an abbreviation, city, mascot, or nickname to a team.
// Unknown names map to TEAM_FA.
func ParseTeam(name string) *NFLTeam {
	t := teamMap[strings.ToLower(strings.TrimSpace(name))]
	if t == nil {
		return TEAM_FA
	}
	return t
}

func buildTeamMap() map[string]*NFLTeam {
	teamMap := make(map[string]*NFLTeam)
	for _, t := range append([]*NFLTeam{TEAM_FA}, AllTeams...) {
		teamMap[strings.ToLower(t.abbr)] = t

		if t.mascot != "" {
			teamMap[strings.ToLower(t.mascot)] = t
			teamMap[strings.ToLower(t.Friendly())] = t
		}

		if t.short != "" {
			teamMap[strings.ToLower(t.short)] = t
		}

		for _, n := range t.nick {
			teamMap[strings.ToLower(n)] = t
		}
	}
	return teamMap
}

// MetaTeam is the public shape of one static reference entry, including the
// stored helmet image path when one has been uploaded.
type MetaTeam struct {
	Abbr       string `json:"abbr"`
	Name       string `json:"name"`
	City       string `json:"city,omitempty"`
	Conference string `json:"conference,omitempty"`
	Division   string `json:"division,omitempty"`
	HelmetURL  string `json:"helmetUrl,omitempty"`
}
