package web

import (
	"net/http"
	"testing"

	"github.com/mww/card_binder/controller/mockcontroller"
	"github.com/mww/card_binder/db"
	"github.com/stretchr/testify/mock"
	"github.com/unrolled/render"
)

// When the binder is full the player save is rejected outright, and the
// client sees it as a 400 rather than a server fault.
func TestUpsertPlayerHandler_rookieCap(t *testing.T) {
	mockCtrl := &mockcontroller.C{}
	mockCtrl.On("SavePlayer", mock.Anything, mock.Anything).Return(db.ErrRookiePageLimit)

	h := upsertPlayerHandler(mockCtrl, render.New())
	w := postJSON(t, h, `{
		"id": "one-too-many",
		"name": "One Too Many",
		"team": "CLE",
		"position": "QB",
		"colleges": ["Akron"],
		"isPlayer": true,
		"isBrownsStarter": false
	}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got: %d, body: %s", w.Code, w.Body.String())
	}

	var resp errorResponse
	decodeBody(t, w, &resp)
	if resp.Error != db.ErrRookiePageLimit.Error() {
		t.Errorf("unexpected error message: %s", resp.Error)
	}
}
