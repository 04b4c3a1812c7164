package controller

import (
	"context"
	"testing"

	"github.com/mww/card_binder/db"
	"github.com/mww/card_binder/db/mockdb"
	"github.com/mww/card_binder/model"
	"github.com/stretchr/testify/mock"
)

func TestDraftPickID(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "Cam Ward", expected: "cam-ward"},
		{input: "Kelvin Banks Jr.", expected: "kelvin-banks-jr"},
		{input: "James Pearce Jr.", expected: "james-pearce-jr"},
		{input: "Ja'Marr Chase", expected: "ja-marr-chase"},
		{input: "T.J. Watt", expected: "t-j-watt"},
	}

	for _, tc := range tests {
		got := draftPickID(tc.input)
		if got != tc.expected {
			t.Errorf("input: '%s', expected: '%s', got: '%s'", tc.input, tc.expected, got)
		}
	}
}

func TestSeedDraftClass(t *testing.T) {
	ctx := context.Background()

	saved := make(map[string]*model.Player)
	mockDB := &mockdb.DB{}
	mockDB.On("GetPlayer", mock.Anything, mock.Anything).Return(nil, db.ErrPlayerNotFound)
	mockDB.On("SavePlayer", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		p := args.Get(1).(*model.Player)
		saved[p.ID] = p
	}).Return(nil)

	ctrl := newTestController(t, mockDB)
	report, err := ctrl.SeedDraftClass(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Inserted != 32 {
		t.Errorf("expected 32 inserted, got: %d", report.Inserted)
	}
	if report.Skipped != 0 {
		t.Errorf("expected 0 skipped, got: %d", report.Skipped)
	}

	// Spot check a two-way pick: Travis Hunter collapses to WR and gets the
	// WR default template.
	hunter, ok := saved["travis-hunter"]
	if !ok {
		t.Fatal("travis-hunter was not seeded")
	}
	if hunter.Position != model.POS_WR {
		t.Errorf("expected WR, got: %s", hunter.Position)
	}
	if hunter.TemplateID != "tmpl-wr" {
		t.Errorf("expected tmpl-wr, got: %s", hunter.TemplateID)
	}
	if !model.TEAM_JAC.Equals(hunter.Team) {
		t.Errorf("expected JAC, got: %s", hunter.Team)
	}
	if hunter.DraftYear == nil || *hunter.DraftYear != 2025 {
		t.Errorf("expected draft year 2025, got: %v", hunter.DraftYear)
	}
	if hunter.DraftPick == nil || *hunter.DraftPick != 2 {
		t.Errorf("expected pick 2, got: %v", hunter.DraftPick)
	}

	// Seeded players are untracked and must not consume rookie pages.
	for id, p := range saved {
		if p.IsPlayer {
			t.Errorf("seeded player %s should not be a roster player", id)
		}
	}
	mockDB.AssertNotCalled(t, "SavePlayerWithRookiePage", mock.Anything, mock.Anything, mock.Anything)
}

// Re-running the seed skips every pick that already exists.
func TestSeedDraftClass_skipsExisting(t *testing.T) {
	ctx := context.Background()

	mockDB := &mockdb.DB{}
	mockDB.On("GetPlayer", mock.Anything, mock.Anything).Return(&model.Player{}, nil)

	ctrl := newTestController(t, mockDB)
	report, err := ctrl.SeedDraftClass(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Inserted != 0 {
		t.Errorf("expected 0 inserted, got: %d", report.Inserted)
	}
	if report.Skipped != 32 {
		t.Errorf("expected 32 skipped, got: %d", report.Skipped)
	}
	mockDB.AssertNotCalled(t, "SavePlayer", mock.Anything, mock.Anything)
}
