package testutils

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/mww/card_binder/db"
	"github.com/mww/card_binder/model"
)

var (
	ShedeurSanders = &model.Player{
		ID:         "shedeur-sanders",
		Name:       "Shedeur Sanders",
		Team:       model.TEAM_CLE,
		Position:   model.POS_QB,
		Colleges:   []string{"Jackson State", "Colorado"},
		DraftYear:  intPtr(2025),
		DraftPick:  intPtr(144),
		IsPlayer:   true,
		TemplateID: "tmpl-qb",
	}
	QuinshonJudkins = &model.Player{
		ID:         "quinshon-judkins",
		Name:       "Quinshon Judkins",
		Team:       model.TEAM_CLE,
		Position:   model.POS_RB,
		Colleges:   []string{"Ole Miss", "Ohio State"},
		DraftYear:  intPtr(2025),
		DraftPick:  intPtr(36),
		IsPlayer:   true,
		TemplateID: "tmpl-rb",
	}
	MylesGarrett = &model.Player{
		ID:              "myles-garrett",
		Name:            "Myles Garrett",
		Team:            model.TEAM_CLE,
		Position:        model.POS_EDGE,
		Colleges:        []string{"Texas A&M"},
		DraftYear:       intPtr(2017),
		DraftPick:       intPtr(1),
		IsPlayer:        true,
		IsBrownsStarter: true,
		TemplateID:      "tmpl-edge",
	}
	TravisHunter = &model.Player{
		ID:         "travis-hunter",
		Name:       "Travis Hunter",
		Team:       model.TEAM_JAC,
		Position:   model.POS_WR,
		Colleges:   []string{"Jackson State", "Colorado"},
		DraftYear:  intPtr(2025),
		DraftPick:  intPtr(2),
		TemplateID: "tmpl-wr",
	}
)

type TestDB struct {
	dir   string
	DB    db.DB
	Clock clock.Clock
}

func NewTestDB() *TestDB {
	dir, err := os.MkdirTemp("", "card_binder_test")
	if err != nil {
		log.Fatalf("error creating temp dir for test db: %v", err)
	}
	clock := clock.New()

	db, err := db.New(context.Background(), filepath.Join(dir, "test.db"), clock)
	if err != nil {
		log.Fatalf("error opening test db: %v", err)
	}

	return &TestDB{
		dir:   dir,
		DB:    db,
		Clock: clock,
	}
}

// UploadsDir returns a directory under the test's temp root that is cleaned
// up with the rest of the database on Shutdown.
func (db *TestDB) UploadsDir() string {
	return filepath.Join(db.dir, "uploads")
}

func (db *TestDB) Shutdown() {
	if err := db.DB.Close(); err != nil {
		log.Printf("error closing test db: %v", err)
	}
	os.RemoveAll(db.dir)
}

func InsertTestPlayers(db db.DB) error {
	players := []*model.Player{
		ShedeurSanders,
		QuinshonJudkins,
		MylesGarrett,
		TravisHunter,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for _, p := range players {
		err := db.SavePlayer(ctx, p)
		if err != nil {
			return err
		}
	}

	return nil
}

func intPtr(v int) *int {
	return &v
}
