package db

import (
	"context"
	"fmt"
	"testing"

	"github.com/mww/card_binder/model"
)

func TestSheet_saveAndLoad(t *testing.T) {
	ctx := context.Background()

	p := getPlayer()
	err := testDB.SavePlayer(ctx, p)
	assertFatalf(t, err == nil, "error saving player: %v", err)
	defer testDB.DeletePlayer(ctx, p.ID)

	// Insert out of season order to verify sorting.
	seasons := []int{2025, 2023, 2024}
	for _, y := range seasons {
		s := &model.Sheet{
			ID:         fmt.Sprintf("sheet-%s-%d", p.ID, y),
			PlayerID:   p.ID,
			TemplateID: "tmpl-qb",
			SeasonYear: y,
			Values: model.StatValues{
				"YDS":  model.NumberValue(float64(y * 2)),
				"TEAM": model.TextValue("CLE"),
			},
		}
		err := testDB.SaveSheet(ctx, s)
		assertFatalf(t, err == nil, "error saving sheet for %d: %v", y, err)
	}

	sheets, err := testDB.ListSheetsForPlayer(ctx, p.ID)
	assertFatalf(t, err == nil, "error listing sheets: %v", err)
	assertEquals(t, "count", 3, len(sheets))
	assertEquals(t, "sheets[0].SeasonYear", 2023, sheets[0].SeasonYear)
	assertEquals(t, "sheets[1].SeasonYear", 2024, sheets[1].SeasonYear)
	assertEquals(t, "sheets[2].SeasonYear", 2025, sheets[2].SeasonYear)

	v := sheets[2].Values["YDS"]
	assertTrue(t, "YDS is a number", v.IsNum)
	assertEquals(t, "YDS", float64(4050), v.Number)
	assertEquals(t, "TEAM", "CLE", sheets[2].Values["TEAM"].Text)

	// Update the newest sheet in place.
	sheets[2].Values["YDS"] = model.NumberValue(4135)
	err = testDB.SaveSheet(ctx, &sheets[2])
	assertFatalf(t, err == nil, "error updating sheet: %v", err)

	updated, err := testDB.ListSheetsForPlayer(ctx, p.ID)
	assertFatalf(t, err == nil, "error listing sheets: %v", err)
	assertEquals(t, "count after update", 3, len(updated))
	assertEquals(t, "updated YDS", float64(4135), updated[2].Values["YDS"].Number)

	// Delete one.
	err = testDB.DeleteSheet(ctx, sheets[0].ID)
	assertFatalf(t, err == nil, "error deleting sheet: %v", err)

	remaining, err := testDB.ListSheetsForPlayer(ctx, p.ID)
	assertFatalf(t, err == nil, "error listing sheets: %v", err)
	assertEquals(t, "count after delete", 2, len(remaining))
}
