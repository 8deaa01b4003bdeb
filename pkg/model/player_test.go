package model

import (
	"context"
	"doublelife-server/internal/util"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var cbg = context.Background()

func player(t *testing.T) *Player {
	t.Helper()

	p, err := CreatePlayer(cbg, util.RandomEmail(), "test-player", "password", "127.0.0.1")
	assert.NoError(t, err)
	return p
}

func TestCreatePlayer(t *testing.T) {
	a := assert.New(t)
	remoteAddr := fmt.Sprintf("127.0.0.1:%d", time.Now().UnixNano())

	at, err := LastPlayerCreatedAt(cbg, remoteAddr)
	a.NoError(err)
	a.True(at.IsZero())

	before := time.Now()

	email := util.RandomEmail()
	p, err := CreatePlayer(cbg, email, "test-player", "password", remoteAddr)
	a.NoError(err)
	a.NotNil(p)
	a.Greater(p.ID, int64(0))
	a.False(p.BeginnerCompleted)
	a.False(p.StandardCompleted)

	at, err = LastPlayerCreatedAt(cbg, remoteAddr)
	a.NoError(err)
	a.True(at.After(before))

	dup, err := CreatePlayer(cbg, email, "test-player", "password", remoteAddr)
	a.Equal(ErrDuplicateKey, err)
	a.Nil(dup)
}

func TestGetPlayerByEmailAndPassword(t *testing.T) {
	a := assert.New(t)

	p := player(t)

	_, err := GetPlayerByEmailAndPassword(cbg, p.Email, "bad-password")
	a.Equal(ErrInvalidEmailOrPassword, err)

	_, err = GetPlayerByEmailAndPassword(cbg, p.Email+"-not-found", "password")
	a.Equal(ErrInvalidEmailOrPassword, err)

	// unverified accounts cannot log in
	_, err = GetPlayerByEmailAndPassword(cbg, p.Email, "password")
	a.Equal(ErrAccountNotVerified, err)

	p.Status = PlayerStatusVerified
	a.NoError(p.Save(cbg))

	p2, err := GetPlayerByEmailAndPassword(cbg, p.Email, "password")
	a.NoError(err)
	a.Equal(p.ID, p2.ID)
}

func TestPlayer_CanPlay(t *testing.T) {
	a := assert.New(t)

	p := &Player{}
	a.NoError(p.CanPlay("beginner"))
	a.NoError(p.CanPlay("standard"))
	a.Equal(ErrDifficultyLocked, p.CanPlay("hard"))

	p.StandardCompleted = true
	a.NoError(p.CanPlay("hard"))
}

func TestPlayer_SetCompleted(t *testing.T) {
	a := assert.New(t)

	p := player(t)
	a.NoError(p.SetCompleted(cbg, "beginner"))
	a.True(p.BeginnerCompleted)

	a.NoError(p.SetCompleted(cbg, "standard"))
	a.True(p.StandardCompleted)

	p2, err := GetPlayerByID(cbg, p.ID)
	a.NoError(err)
	a.True(p2.BeginnerCompleted)
	a.True(p2.StandardCompleted)

	// hard has no flag to set
	a.NoError(p.SetCompleted(cbg, "hard"))
}

func TestVerifyAccount(t *testing.T) {
	a := assert.New(t)

	p := player(t)
	verifyToken, err := p.CreateAccountVerificationToken(cbg)
	a.NoError(err)

	a.NoError(VerifyAccount(cbg, verifyToken))

	p2, err := GetPlayerByID(cbg, p.ID)
	a.NoError(err)
	a.Equal(PlayerStatusVerified, p2.Status)

	// tokens are single-use
	a.Equal(ErrTokenExpired, VerifyAccount(cbg, verifyToken))
}

func TestPlayer_Delete(t *testing.T) {
	a := assert.New(t)

	p := player(t)
	originalEmail := p.Email
	a.NoError(p.Delete(cbg))

	p2, err := GetPlayerByID(cbg, p.ID)
	a.NoError(err)
	a.Equal(PlayerStatusDeleted, p2.Status)
	a.NotEqual(originalEmail, p2.Email)
}
