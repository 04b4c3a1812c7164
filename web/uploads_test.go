package web

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mww/card_binder/controller"
	"github.com/mww/card_binder/controller/mockcontroller"
	"github.com/mww/card_binder/db"
	"github.com/stretchr/testify/mock"
	"github.com/unrolled/render"
)

func postJSON(t *testing.T, h http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h(w, req)
	return w
}

func TestUploadTeamHelmetHandler(t *testing.T) {
	mockCtrl := &mockcontroller.C{}
	mockCtrl.On("UploadTeamHelmet", mock.Anything, "CLE", "data:image/png;base64,aGVsbG8=").
		Return("/uploads/teams/CLE.png", nil)

	h := uploadTeamHelmetHandler(mockCtrl, render.New())
	w := postJSON(t, h, `{"abbr":"CLE","image":"data:image/png;base64,aGVsbG8="}`)
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status code: %d, body: %s", w.Code, w.Body.String())
	}

	var resp uploadResponse
	decodeBody(t, w, &resp)
	if resp.URL != "/uploads/teams/CLE.png" {
		t.Errorf("unexpected url: %s", resp.URL)
	}
	mockCtrl.AssertExpectations(t)
}

func TestUploadTeamHelmetHandler_missingFields(t *testing.T) {
	mockCtrl := &mockcontroller.C{}

	h := uploadTeamHelmetHandler(mockCtrl, render.New())
	w := postJSON(t, h, `{"abbr":"CLE"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for missing image, got: %d", w.Code)
	}
	mockCtrl.AssertNotCalled(t, "UploadTeamHelmet", mock.Anything, mock.Anything, mock.Anything)
}

func TestUploadPlayerPhotoHandler_errors(t *testing.T) {
	tests := map[string]struct {
		err      error
		expected int
	}{
		"unknown player": {err: db.ErrPlayerNotFound, expected: http.StatusNotFound},
		"bad image":      {err: controller.ErrInvalidImage, expected: http.StatusBadRequest},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			mockCtrl := &mockcontroller.C{}
			mockCtrl.On("UploadPlayerPhoto", mock.Anything, "nobody", mock.Anything).
				Return("", tc.err)

			h := uploadPlayerPhotoHandler(mockCtrl, render.New())
			w := postJSON(t, h, `{"playerId":"nobody","image":"data:image/png;base64,aGVsbG8="}`)
			if w.Code != tc.expected {
				t.Errorf("expected %d, got: %d", tc.expected, w.Code)
			}
		})
	}
}

func TestUploadBinderCoverHandler(t *testing.T) {
	mockCtrl := &mockcontroller.C{}
	mockCtrl.On("UploadBinderCover", mock.Anything, "binder-default", mock.Anything).
		Return("/uploads/binders/binder-default.png", nil)

	h := uploadBinderCoverHandler(mockCtrl, render.New())
	w := postJSON(t, h, `{"binderId":"binder-default","image":"data:image/png;base64,aGVsbG8="}`)
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status code: %d, body: %s", w.Code, w.Body.String())
	}

	var resp uploadResponse
	decodeBody(t, w, &resp)
	if resp.URL != "/uploads/binders/binder-default.png" {
		t.Errorf("unexpected url: %s", resp.URL)
	}
	mockCtrl.AssertExpectations(t)
}
