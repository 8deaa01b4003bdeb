package mux

import (
	"errors"
	"net/http"
	"time"

	"doublelife-server/pkg/model"
	"doublelife-server/pkg/playable/doublelife"
	"doublelife-server/pkg/session"

	gmux "github.com/gorilla/mux"
)

type postSessionPayload struct {
	Difficulty string `json:"difficulty"`
}

type sessionResponse struct {
	UUID       string    `json:"uuid"`
	Difficulty string    `json:"difficulty"`
	Created    time.Time `json:"created"`
}

func (m *Mux) postSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload postSessionPayload
		if !decodeRequest(w, r, &payload) {
			return
		}

		difficulty, err := doublelife.DifficultyFromString(payload.Difficulty)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		player := r.Context().Value(ctxPlayerKey).(*model.Player)

		s, err := m.manager.CreateSession(player, difficulty)
		if err != nil {
			if err == model.ErrDifficultyLocked {
				writeJSONError(w, http.StatusForbidden, err)
				return
			}

			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusCreated, sessionResponse{
			UUID:       s.UUID,
			Difficulty: s.Difficulty().String(),
			Created:    s.Created(),
		})
	}
}

// sessionFromRequest loads the session and verifies the requesting player owns it
func (m *Mux) sessionFromRequest(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	uuid := gmux.Vars(r)["uuid"]
	s, ok := m.manager.GetSession(uuid)
	if !ok {
		writeJSONError(w, http.StatusNotFound, errors.New("session not found"))
		return nil, false
	}

	player := r.Context().Value(ctxPlayerKey).(*model.Player)
	if s.Player().ID != player.ID {
		writeJSONError(w, http.StatusForbidden, nil)
		return nil, false
	}

	return s, true
}
