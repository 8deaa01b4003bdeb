package mux

import (
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"doublelife-server/internal/jwt"
	"doublelife-server/internal/util"
	"doublelife-server/pkg/model"

	"github.com/stretchr/testify/assert"
)

func Test_postPlayer(t *testing.T) {
	setupJWT()
	m := NewMux("")
	m.config.playerCreateDelay = time.Second * -1

	ts := httptest.NewServer(m)
	defer ts.Close()

	var obj errorResponse
	assertPost(t, ts, "/player", "{}", &obj, 400)
	assert.Equal(t, "missing or invalid email address", obj.Message)

	obj = errorResponse{}
	assertPost(t, ts, "/player", playerPayload{
		DisplayName: "&",
		Email:       "",
		Password:    "",
	}, &obj, 400)
	assert.Equal(t, "display name must only contain letters, numbers, and spaces, and be 40 characters or less", obj.Message)

	email := util.RandomEmail()
	obj = errorResponse{}
	assertPost(t, ts, "/player", playerPayload{
		Email:    email,
		Password: "",
	}, &obj, 400)
	assert.Equal(t, "password must be 6 or more characters", obj.Message)

	var pObj playerWithEmail
	assertPost(t, ts, "/player", playerPayload{
		Email:       email,
		Password:    "123456",
		DisplayName: "Tommy",
	}, &pObj, 201)
	assert.Greater(t, pObj.ID, int64(0))
	assert.Equal(t, email, pObj.Email)
	assert.Equal(t, "Tommy", pObj.DisplayName)

	obj = errorResponse{}
	assertPost(t, ts, "/player", &playerPayload{
		Email:    email,
		Password: "123456",
	}, &obj, 400)
	assert.Equal(t, "email address is already taken", obj.Message)

	// a blank display name gets a generated one
	pObj = playerWithEmail{}
	assertPost(t, ts, "/player", playerPayload{
		Email:    util.RandomEmail(),
		Password: "123456",
	}, &pObj, 201)
	assert.NotEmpty(t, pObj.DisplayName)

	m.config.playerCreateDelay = time.Hour
	obj = errorResponse{}
	assertPost(t, ts, "/player", playerPayload{
		Email:    util.RandomEmail(),
		Password: "123456",
	}, &obj, 400)
	assert.Equal(t, "please wait before creating another player", obj.Message)
}

func Test_postPlayerAuth(t *testing.T) {
	setupJWT()
	ts := httptest.NewServer(NewMux(""))
	defer ts.Close()

	p, _ := verifiedPlayer()

	var resp postPlayerAuthResponse
	assertPost(t, ts, "/player/auth", playerPayload{
		Email:    p.Email,
		Password: "password",
	}, &resp, 200)
	id, err := jwt.ValidUserID(resp.JWT)
	assert.NoError(t, err)
	assert.Equal(t, p.ID, id)
	assert.Equal(t, p.Email, resp.Player.Email)

	var playerObj playerWithEmail
	assertGet(t, ts, fmt.Sprintf("/player/auth/%s", resp.JWT), &playerObj, 200)
	assert.Equal(t, p.Email, playerObj.Email)
}

func Test_postPlayerAuth_NotVerified(t *testing.T) {
	setupJWT()
	ts := httptest.NewServer(NewMux(""))
	defer ts.Close()

	p, _ := player()

	var errObj errorResponse
	assertPost(t, ts, "/player/auth", playerPayload{
		Email:    p.Email,
		Password: "password",
	}, &errObj, 403)
	assert.Equal(t, "account not verified", errObj.Message)
}

func Test_postPlayerAuth_BadCreds(t *testing.T) {
	setupJWT()
	ts := httptest.NewServer(NewMux(""))
	defer ts.Close()

	p, _ := verifiedPlayer()

	var errObj errorResponse
	assertPost(t, ts, "/player/auth", playerPayload{
		Email:    p.Email,
		Password: "bad-password",
	}, &errObj, 401)
	assert.Equal(t, "invalid email address and/or password", errObj.Message)
}

func Test_getPlayerAuthJWT_BadRequests(t *testing.T) {
	setupJWT()
	ts := httptest.NewServer(NewMux(""))
	defer ts.Close()

	var errObj errorResponse
	assertGet(t, ts, "/player/auth/bad", &errObj, 401)
	assert.Contains(t, errObj.Message, "token")

	// this should only happen if the user is deleted from the database
	signedToken, _ := jwt.Sign(-1)
	errObj = errorResponse{}
	assertGet(t, ts, fmt.Sprintf("/player/auth/%s", signedToken), &errObj, 404)
	assert.Equal(t, "player does not exist", errObj.Message)
}

func Test_getPlayerVerifyToken(t *testing.T) {
	setupJWT()
	ts := httptest.NewServer(NewMux(""))
	defer ts.Close()

	p, _ := player()
	token, err := p.CreateAccountVerificationToken(cbg)
	assert.NoError(t, err)

	var okObj map[string]string
	assertGet(t, ts, fmt.Sprintf("/player/verify/%s", token), &okObj, 200)
	assert.Equal(t, "OK", okObj["status"])

	p, _ = model.GetPlayerByID(cbg, p.ID)
	assert.Equal(t, model.PlayerStatusVerified, p.Status)

	// a token only works once
	var errObj errorResponse
	assertGet(t, ts, fmt.Sprintf("/player/verify/%s", token), &errObj, 404)
}

func Test_getPlayerIDResults(t *testing.T) {
	setupJWT()
	ts := httptest.NewServer(NewMux(""))
	defer ts.Close()

	p, j := player()
	_, _ = model.CreateGameResult(cbg, p.ID, "standard", "victory", 4, 2500, true)
	_, _ = model.CreateGameResult(cbg, p.ID, "hard", "game-over-wife", 2, 400, false)

	var results []*model.GameResult
	assertGet(t, ts, fmt.Sprintf("/player/%d/results", p.ID), &results, 200, j)
	assert.Equal(t, 2, len(results))
	assert.Equal(t, "game-over-wife", results[0].Outcome)

	// another player cannot see them
	_, j2 := player()
	var errObj errorResponse
	assertGet(t, ts, fmt.Sprintf("/player/%d/results", p.ID), &errObj, 403, j2)

	// a site admin can
	admin, j3 := player()
	_ = admin.SetIsSiteAdmin(cbg, true)
	assertGet(t, ts, fmt.Sprintf("/player/%d/results", p.ID), &results, 200, j3)
	assert.Equal(t, 2, len(results))
}

func Test_postPlayerID(t *testing.T) {
	setupJWT()
	ts := httptest.NewServer(NewMux(""))
	defer ts.Close()

	p, j := player()

	var okObj map[string]string
	assertPost(t, ts, fmt.Sprintf("/player/%d", p.ID), postPlayerIDPayload{DisplayName: "Lucky Ace"}, &okObj, 200, j)
	assert.Equal(t, "OK", okObj["status"])

	p2, _ := model.GetPlayerByID(cbg, p.ID)
	assert.Equal(t, "Lucky Ace", p2.DisplayName)

	// cannot update another player
	other, _ := player()
	var errObj errorResponse
	assertPost(t, ts, fmt.Sprintf("/player/%d", other.ID), postPlayerIDPayload{DisplayName: "Nope"}, &errObj, 403, j)
}

func Test_resetPasswordFlow(t *testing.T) {
	setupJWT()
	ts := httptest.NewServer(NewMux(""))
	defer ts.Close()

	p, _ := verifiedPlayer()

	var okObj map[string]string
	assertPost(t, ts, "/player/reset-password", postPlayerResetPasswordRequestPayload{Email: p.Email}, &okObj, 200)
	assert.Equal(t, "OK", okObj["status"])

	// the token is created out-of-band for the test
	token, err := p.CreatePasswordResetRequest(cbg)
	assert.NoError(t, err)

	okObj = map[string]string{}
	assertGet(t, ts, fmt.Sprintf("/player/reset-password/%s", token), &okObj, 200)
	assert.Equal(t, "OK", okObj["status"])

	okObj = map[string]string{}
	assertPost(t, ts, fmt.Sprintf("/player/reset-password/%s", token), postPlayerResetPasswordPayload{
		Email:    p.Email,
		Password: "new-password",
	}, &okObj, 200)
	assert.Equal(t, "OK", okObj["status"])

	_, err = model.GetPlayerByEmailAndPassword(cbg, p.Email, "new-password")
	assert.NoError(t, err)

	// the token is spent
	var errObj errorResponse
	assertGet(t, ts, fmt.Sprintf("/player/reset-password/%s", token), &errObj, 404)
}
