package mux

import (
	"fmt"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"doublelife-server/pkg/playable"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
)

func Test_postSession(t *testing.T) {
	setupJWT()
	ts := httptest.NewServer(NewMux(""))
	defer ts.Close()

	_, j := player()

	var errObj errorResponse
	assertPost(t, ts, "/session", postSessionPayload{Difficulty: "nightmare"}, &errObj, 400, j)
	assert.Equal(t, "unknown difficulty: nightmare", errObj.Message)

	// hard is locked until a standard run has been won
	errObj = errorResponse{}
	assertPost(t, ts, "/session", postSessionPayload{Difficulty: "hard"}, &errObj, 403, j)
	assert.Equal(t, "difficulty is locked", errObj.Message)

	var resp sessionResponse
	assertPost(t, ts, "/session", postSessionPayload{Difficulty: "standard"}, &resp, 201, j)
	assert.NotEmpty(t, resp.UUID)
	assert.Equal(t, "standard", resp.Difficulty)
}

func Test_getSessionUUIDWS_notFound(t *testing.T) {
	setupJWT()
	ts := httptest.NewServer(NewMux(""))
	defer ts.Close()

	_, j := player()

	var errObj errorResponse
	assertGet(t, ts, "/session/00000000-0000-0000-0000-000000000000/ws", &errObj, 404, j)
	assert.Equal(t, "session not found", errObj.Message)
}

func Test_getSessionUUIDWS_wrongPlayer(t *testing.T) {
	setupJWT()
	ts := httptest.NewServer(NewMux(""))
	defer ts.Close()

	_, j := player()
	var resp sessionResponse
	assertPost(t, ts, "/session", postSessionPayload{Difficulty: "standard"}, &resp, 201, j)

	_, j2 := player()
	var errObj errorResponse
	assertGet(t, ts, fmt.Sprintf("/session/%s/ws", resp.UUID), &errObj, 403, j2)
	assert.Equal(t, "Forbidden", errObj.Message)
}

func Test_getSessionUUIDWS(t *testing.T) {
	setupJWT()
	ts := httptest.NewServer(NewMux(""))
	defer ts.Close()

	_, j := player()
	var resp sessionResponse
	assertPost(t, ts, "/session", postSessionPayload{Difficulty: "standard"}, &resp, 201, j)

	wsURL := strings.Replace(ts.URL, "http", "ws", 1) +
		fmt.Sprintf("/session/%s/ws?access_token=%s", resp.UUID, url.QueryEscape(j))

	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()

	_ = conn.SetReadDeadline(time.Now().Add(time.Second * 5))

	var state playable.Response
	if err := conn.ReadJSON(&state); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "game", state.Key)
	assert.Equal(t, "double-life", state.Value)

	// drive one action over the wire
	err = conn.WriteJSON(playable.PayloadIn{Action: "start", Context: "t1"})
	assert.NoError(t, err)

	sawOK := false
	for i := 0; i < 3; i++ {
		var msg playable.Response
		if err := conn.ReadJSON(&msg); err != nil {
			t.Fatal(err)
		}

		if msg.Key == "status" && msg.Value == "OK" && msg.Context == "t1" {
			sawOK = true
		}
	}

	assert.True(t, sawOK)
}
