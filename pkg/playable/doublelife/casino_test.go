package doublelife

import (
	"doublelife-server/internal/rng"
	"doublelife-server/pkg/playable/blackjack"
	"testing"

	"github.com/stretchr/testify/assert"
)

func casinoGame(script *rng.Script) *Game {
	g := newTestGame(DifficultyStandard, script)
	g.phase = PhaseBanking
	if err := g.enterCasino(); err != nil {
		panic(err)
	}
	return g
}

func TestGame_finishHand(t *testing.T) {
	a := assert.New(t)

	g := casinoGame(nil)
	g.state.Time = 600

	response := g.finishHand(&blackjack.Result{Outcome: blackjack.OutcomeWin, Net: 50, Suspicion: 4})
	a.Equal("result", response.Key)
	a.Equal(650, g.state.Cash)
	a.Equal(4, g.state.Suspicion)
	a.Equal(630, g.state.Time)
	a.Equal(1, g.state.HandsPlayedToday)
	a.Equal(PhaseCasino, g.phase)
}

func TestGame_finishHand_pickupInterrupt(t *testing.T) {
	a := assert.New(t)

	g := casinoGame(nil)
	g.state.Time = 880

	g.finishHand(&blackjack.Result{Outcome: blackjack.OutcomeLoss, Net: -50, Suspicion: 4})
	a.Equal(910, g.state.Time)
	a.Equal(PhasePickupDecision, g.phase)
	a.Nil(g.casino)
}

func TestGame_finishHand_pickupInterruptHangsUpPendingCall(t *testing.T) {
	a := assert.New(t)

	g := casinoGame(nil)
	g.state.Time = 880
	g.callActive = true
	g.state.HasCalledInCasino = true

	g.finishHand(&blackjack.Result{Outcome: blackjack.OutcomePush})
	a.False(g.callActive)
	a.Equal(15, g.state.Suspicion)
	a.Equal(PhasePickupDecision, g.phase)
	a.Nil(g.casino)

	// the hang-up is spent; the next session may ring fresh
	a.NoError(g.skipPickup())
	a.False(g.callActive)
	a.False(g.state.HasCalledInCasino)
}

func TestGame_finishHand_pickupInterruptHangUpCanEndRun(t *testing.T) {
	a := assert.New(t)

	g := casinoGame(nil)
	g.state.Time = 880
	g.state.Suspicion = 90
	g.callActive = true

	g.finishHand(&blackjack.Result{Outcome: blackjack.OutcomePush})
	a.False(g.callActive)
	a.Equal(PhaseGameOverWife, g.phase)
}

func TestGame_incomingCall(t *testing.T) {
	a := assert.New(t)

	// ten hands make the phone a coin flip; 0.3 rings it
	g := casinoGame(&rng.Script{Floats: []float64{0.3}})
	g.state.Time = 600
	g.state.HandsPlayedToday = 9

	g.finishHand(&blackjack.Result{Outcome: blackjack.OutcomePush})
	a.True(g.callActive)
	a.True(g.state.HasCalledInCasino)

	// at most one ring per session
	g.callActive = false
	g.finishHand(&blackjack.Result{Outcome: blackjack.OutcomePush})
	a.False(g.callActive)
}

func TestGame_answerCall(t *testing.T) {
	a := assert.New(t)

	g := casinoGame(nil)
	a.EqualError(g.answerCall(PhoneResponseTruth), "the phone is not ringing")

	g.callActive = true
	a.NoError(g.answerCall(PhoneResponseTruth))
	a.Equal(40, g.state.Suspicion)
	a.False(g.callActive)

	g.callActive = true
	a.NoError(g.answerCall(PhoneResponseHangUp))
	a.Equal(55, g.state.Suspicion)

	// a lie that lands
	g.rand = &rng.Script{Floats: []float64{0.4}}
	g.callActive = true
	a.NoError(g.answerCall(PhoneResponseLieWork))
	a.Equal(50, g.state.Suspicion)

	// a lie that dies
	g.rand = &rng.Script{Floats: []float64{0.39}}
	g.callActive = true
	a.NoError(g.answerCall(PhoneResponseLieTraffic))
	a.Equal(60, g.state.Suspicion)

	g.callActive = true
	a.EqualError(g.answerCall("mumble"), "unknown phone response: mumble")
	a.True(g.callActive)
}

func TestGame_callHome(t *testing.T) {
	a := assert.New(t)

	g := casinoGame(nil)
	g.state.Suspicion = 20
	g.state.Time = 600

	a.NoError(action(t, g, ActionCallHome, nil))
	a.Equal(15, g.state.Suspicion)
	a.Equal(610, g.state.Time)

	a.NoError(action(t, g, ActionCallHome, nil))
	a.Equal(10, g.state.Suspicion)

	// the third call backfires
	a.NoError(action(t, g, ActionCallHome, nil))
	a.Equal(20, g.state.Suspicion)
	a.Equal(3, g.state.CallsMadeToday)
}

func TestGame_leaveCasino(t *testing.T) {
	a := assert.New(t)

	g := casinoGame(nil)
	g.state.Time = 700

	a.NoError(action(t, g, ActionLeaveCasino, nil))
	a.Equal(pickupTime, g.state.Time)
	a.Equal(PhasePickupDecision, g.phase)
	a.Nil(g.casino)
}

func TestGame_leaveCasino_hangsUpPendingCall(t *testing.T) {
	a := assert.New(t)

	g := casinoGame(nil)
	g.state.Time = 700
	g.callActive = true

	a.NoError(action(t, g, ActionLeaveCasino, nil))
	a.Equal(15, g.state.Suspicion)
	a.False(g.callActive)
}

func TestGame_leaveCasino_midHand(t *testing.T) {
	a := assert.New(t)

	g := casinoGame(nil)
	a.NoError(g.casino.Deal(50, g.state.Cash))

	a.Equal(blackjack.ErrHandInProgress, action(t, g, ActionLeaveCasino, nil))
	a.NotNil(g.casino)
}

func TestGame_leaveCasino_afterSkippedPickup(t *testing.T) {
	a := assert.New(t)

	g := casinoGame(nil)
	g.state.SkippedPickup = true
	g.state.Time = postPickupTime

	a.NoError(action(t, g, ActionLeaveCasino, nil))
	a.Equal(dropTime, g.state.Time)
	a.Equal(PhaseTheDrop, g.phase)
}

func TestGame_pickupDecision(t *testing.T) {
	a := assert.New(t)

	g := newTestGame(DifficultyStandard, nil)
	g.phase = PhasePickupDecision
	g.state.Time = pickupTime

	a.NoError(action(t, g, ActionPickupSon, nil))
	a.Equal(dropTime, g.state.Time)
	a.Equal(PhaseTheDrop, g.phase)
}

func TestGame_skipPickup(t *testing.T) {
	a := assert.New(t)

	g := newTestGame(DifficultyStandard, nil)
	g.phase = PhasePickupDecision
	g.state.Time = pickupTime
	g.state.HasCalledInCasino = true

	a.NoError(action(t, g, ActionSkipPickup, nil))
	a.Equal(skipPickupSuspicion, g.state.Suspicion)
	a.Equal(postPickupTime, g.state.Time)
	a.True(g.state.SkippedPickup)
	a.False(g.state.HasCalledInCasino)
	a.Equal(PhaseCasino, g.phase)
	a.NotNil(g.casino)
}

func TestGame_tutorialSession(t *testing.T) {
	a := assert.New(t)

	g := newTestGame(DifficultyBeginner, nil)
	g.phase = PhaseBanking
	g.state.Time = earlyArrivalTime
	a.NoError(g.enterCasino())
	a.Equal(PhaseTutorialCasino, g.phase)

	// the scripted table only accepts the mandated action
	a.Equal(blackjack.ErrScriptedAction, action(t, g, ActionHit, nil))

	a.NoError(action(t, g, ActionStand, nil)) // win +50
	a.NoError(action(t, g, ActionHit, nil))
	a.NoError(action(t, g, ActionStand, nil)) // win +50
	a.NoError(action(t, g, ActionHit, nil))   // bust -50
	a.NoError(action(t, g, ActionStand, nil)) // push

	a.Nil(g.tutorial)
	a.True(g.tutorialPlayed)
	a.Equal(450, g.state.Cash)
	a.Equal(0, g.state.Suspicion)
	a.Equal(4, g.state.HandsPlayedToday)

	// the lesson ends well before three; the afternoon waits for the bell
	a.Equal(pickupTime, g.state.Time)
	a.Equal(PhasePickupDecision, g.phase)

	// the next visit is the real thing
	g.phase = PhaseBanking
	a.NoError(g.enterCasino())
	a.Equal(PhaseCasino, g.phase)
	a.NotNil(g.casino)
}
