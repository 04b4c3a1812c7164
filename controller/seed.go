package controller

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/mww/card_binder/db"
	"github.com/mww/card_binder/model"
)

type draftPick struct {
	pick     int
	name     string
	team     string // full team name, resolved through model.ParseTeam
	position string // as announced, may be a two-way designation like "WR/CB"
	college  string
}

// First round of the 2025 NFL draft.
var draft2025 = []draftPick{
	{1, "Cam Ward", "Tennessee Titans", "QB", "Miami"},
	{2, "Travis Hunter", "Jacksonville Jaguars", "WR/CB", "Colorado"},
	{3, "Abdul Carter", "New York Giants", "EDGE", "Penn State"},
	{4, "Will Campbell", "New England Patriots", "OT", "LSU"},
	{5, "Mason Graham", "Cleveland Browns", "DT", "Michigan"},
	{6, "Ashton Jeanty", "Las Vegas Raiders", "RB", "Boise State"},
	{7, "Armand Membou", "New York Jets", "OT", "Missouri"},
	{8, "Tetairoa McMillan", "Carolina Panthers", "WR", "Arizona"},
	{9, "Kelvin Banks Jr.", "New Orleans Saints", "OT", "Texas"},
	{10, "Colston Loveland", "Chicago Bears", "TE", "Michigan"},
	{11, "Mykel Williams", "San Francisco 49ers", "EDGE", "Georgia"},
	{12, "Tyler Booker", "Dallas Cowboys", "OG", "Alabama"},
	{13, "Kenneth Grant", "Miami Dolphins", "DT", "Michigan"},
	{14, "Tyler Warren", "Indianapolis Colts", "TE", "Penn State"},
	{15, "Jalon Walker", "Atlanta Falcons", "LB", "Georgia"},
	{16, "Walter Nolen", "Arizona Cardinals", "DT", "Ole Miss"},
	{17, "Shemar Stewart", "Cincinnati Bengals", "EDGE", "Texas A&M"},
	{18, "Grey Zabel", "Seattle Seahawks", "OG", "North Dakota State"},
	{19, "Emeka Egbuka", "Tampa Bay Buccaneers", "WR", "Ohio State"},
	{20, "Jahdae Barron", "Denver Broncos", "CB", "Texas"},
	{21, "Derrick Harmon", "Pittsburgh Steelers", "DT", "Oregon"},
	{22, "Omarion Hampton", "Los Angeles Chargers", "RB", "North Carolina"},
	{23, "Matthew Golden", "Green Bay Packers", "WR", "Texas"},
	{24, "Donovan Jackson", "Minnesota Vikings", "OG", "Ohio State"},
	{25, "Jaxson Dart", "New York Giants", "QB", "Ole Miss"},
	{26, "James Pearce Jr.", "Atlanta Falcons", "EDGE", "Tennessee"},
	{27, "Malaki Starks", "Baltimore Ravens", "S", "Georgia"},
	{28, "Tyleik Williams", "Detroit Lions", "DT", "Ohio State"},
	{29, "Josh Conerly Jr.", "Washington Commanders", "OT", "Oregon"},
	{30, "Maxwell Hairston", "Buffalo Bills", "CB", "Kentucky"},
	{31, "Josh Simmons", "Kansas City Chiefs", "OT", "Ohio State"},
	{32, "Jihaad Campbell", "Philadelphia Eagles", "LB", "Alabama"},
}

// SeedDraftClass inserts the 2025 first-round picks as untracked players with
// their position's default template assigned. Picks that already exist, or
// whose team name cannot be resolved to an abbreviation, are skipped.
func (c *controller) SeedDraftClass(ctx context.Context) (*model.SeedReport, error) {
	report := &model.SeedReport{}
	year := 2025

	for _, pick := range draft2025 {
		id := draftPickID(pick.name)

		if _, err := c.db.GetPlayer(ctx, id); err == nil {
			report.Skipped++
			continue
		} else if !errors.Is(err, db.ErrPlayerNotFound) {
			return nil, err
		}

		team := model.ParseTeam(pick.team)
		if team == model.TEAM_FA {
			log.Printf("skipping pick %d (%s): no abbreviation for team %q", pick.pick, pick.name, pick.team)
			report.Skipped++
			continue
		}

		pos := model.ParsePosition(pick.position)
		overall := pick.pick
		p := &model.Player{
			ID:         id,
			Name:       pick.name,
			Team:       team,
			Position:   pos,
			Colleges:   []string{pick.college},
			DraftYear:  &year,
			DraftPick:  &overall,
			TemplateID: model.DefaultTemplateID(pos),
		}
		if err := c.db.SavePlayer(ctx, p); err != nil {
			return nil, fmt.Errorf("error seeding pick %d (%s): %w", pick.pick, pick.name, err)
		}
		report.Inserted++
	}

	log.Printf("draft seed finished: %d inserted, %d skipped", report.Inserted, report.Skipped)
	return report, nil
}

// draftPickID derives a stable player id from the pick's name, so re-running
// the seed skips everyone inserted by an earlier run.
func draftPickID(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	lastDash := false
	for _, r := range strings.ToLower(name) {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash && b.Len() > 0 {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
