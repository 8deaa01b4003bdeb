package doublelife

import (
	"doublelife-server/pkg/playable"
	"doublelife-server/pkg/playable/blackjack"
	"fmt"
)

// placeWager starts a hand at the live table
func (g *Game) placeWager(amount int) error {
	return g.casino.Deal(amount, g.state.Cash)
}

func (g *Game) hit() (*playable.Response, error) {
	if g.phase == PhaseTutorialCasino {
		return g.tutorialPlay("hit")
	}

	result, err := g.casino.Hit()
	if err != nil {
		return nil, err
	}

	if result == nil {
		return nil, nil
	}

	return g.finishHand(result), nil
}

func (g *Game) stand() (*playable.Response, error) {
	if g.phase == PhaseTutorialCasino {
		return g.tutorialPlay("stand")
	}

	result, err := g.casino.Stand()
	if err != nil {
		return nil, err
	}

	return g.finishHand(result), nil
}

// finishHand settles a hand: money and suspicion move, half an hour burns,
// and the afternoon may interrupt with the school run or the phone.
func (g *Game) finishHand(result *blackjack.Result) *playable.Response {
	g.apply(func(s *PlayerState) {
		s.Cash += result.Net
		s.Suspicion += result.Suspicion
		s.Time += minutesPerHand
		s.HandsPlayedToday++
	})

	switch {
	case result.Net > 0:
		g.logGood("%s +$%d.", result.Message(), result.Net)
	case result.Net < 0:
		g.logBad("%s -$%d.", result.Message(), -result.Net)
	default:
		g.logNeutral(result.Message())
	}

	response := &playable.Response{
		Key:   "result",
		Value: string(result.Outcome),
		Data:  result,
	}

	if g.phase.Terminal() {
		return response
	}

	if g.state.Time >= pickupTime && !g.state.SkippedPickup {
		g.declinePendingCall()

		if g.phase.Terminal() {
			return response
		}

		g.casino = nil
		g.logBad("ALARM: 3:00 PM. Leo is waiting outside the school.")
		g.setPhase(PhasePickupDecision)
		return response
	}

	g.maybeIncomingCall()

	return response
}

// maybeIncomingCall rings the phone at most once per casino session.
// The odds climb with every hand played today.
func (g *Game) maybeIncomingCall() {
	if g.callActive || g.state.HasCalledInCasino {
		return
	}

	chance := callChancePerHand * float64(g.state.HandsPlayedToday)
	if g.rand.Float64() < chance {
		g.callActive = true
		g.state.HasCalledInCasino = true
		g.logDialogue("The phone buzzes against the felt. Sarah.")
	}
}

// callHome is the voluntary check-in. A couple of calls a day buys
// goodwill; more than that and the calls themselves become the tell.
func (g *Game) callHome() error {
	overCap := g.state.CallsMadeToday >= maxFreeCallsHome

	g.apply(func(s *PlayerState) {
		s.Time += phoneCallMinutes
		s.CallsMadeToday++

		if overCap {
			s.Suspicion += 10
		} else {
			s.Suspicion -= suspicionReductionCall
		}
	})

	if overCap {
		g.logBad("Called home again. Third time today. Now it sounds like guilt.")
	} else {
		g.logGood("Called home. Sarah's voice steadies the hands.")
	}

	return nil
}

// answerCall resolves an incoming call from Sarah
func (g *Game) answerCall(response string) error {
	if !g.callActive {
		return fmt.Errorf("the phone is not ringing")
	}

	g.callActive = false

	switch response {
	case PhoneResponseTruth:
		g.apply(func(s *PlayerState) { s.Suspicion += 40 })
		g.logDialogue("\"I'm at the casino.\" Silence, then the line goes dead.")
	case PhoneResponseHangUp:
		g.apply(func(s *PlayerState) { s.Suspicion += 15 })
		g.logBad("Declined the call. She'll remember that.")
	case PhoneResponseLieWork, PhoneResponseLieTraffic:
		if g.rand.Float64() >= phoneLieBar {
			g.apply(func(s *PlayerState) { s.Suspicion -= suspicionReductionCall })
			g.logDialogue("The lie lands clean. \"Okay. Don't be late.\"")
		} else {
			g.apply(func(s *PlayerState) { s.Suspicion += 10 })
			g.logBad("She can hear the slot machines. The lie dies mid-sentence.")
		}
	default:
		g.callActive = true
		return fmt.Errorf("unknown phone response: %s", response)
	}

	return nil
}

// declinePendingCall hangs up on an unanswered ring when the player leaves
// the table with the phone still going
func (g *Game) declinePendingCall() {
	if !g.callActive {
		return
	}

	g.callActive = false
	g.apply(func(s *PlayerState) { s.Suspicion += 15 })
	g.logBad("Walked out with the phone still ringing.")
}

// leaveCasino cashes out between hands and heads for the afternoon
func (g *Game) leaveCasino() error {
	if !g.casino.CanLeave() {
		return blackjack.ErrHandInProgress
	}

	g.declinePendingCall()

	g.casino = nil
	g.exitCasino()

	return nil
}

// exitCasino routes the player to whatever the clock demands next
func (g *Game) exitCasino() {
	if g.phase.Terminal() {
		return
	}

	if !g.state.SkippedPickup {
		if g.state.Time < pickupTime {
			g.apply(func(s *PlayerState) { s.Time = pickupTime })
			g.logNeutral("Waited in the car until school let out.")
		}

		g.setPhase(PhasePickupDecision)
		return
	}

	g.apply(func(s *PlayerState) { s.Time = dropTime })
	g.logNeutral("Six o'clock. The alley behind the Lucky Star.")
	g.setPhase(PhaseTheDrop)
}

// pickupSon does the school run and burns the rest of the afternoon
func (g *Game) pickupSon() error {
	g.apply(func(s *PlayerState) { s.Time = dropTime })
	g.logGood("Picked up Leo. He talks about dinosaurs the whole ride. For twenty minutes, life is simple.")
	g.setPhase(PhaseTheDrop)

	return nil
}

// skipPickup leaves Leo at the school gate and goes back to the tables
func (g *Game) skipPickup() error {
	g.apply(func(s *PlayerState) {
		s.Suspicion += skipPickupSuspicion
		s.Time = postPickupTime
		s.SkippedPickup = true
		s.HasCalledInCasino = false
	})

	if g.phase.Terminal() {
		return nil
	}

	g.casino = blackjack.NewGame(g.logger, blackjack.Options{
		DrunkMode: g.state.Drunk,
		ZoneMode:  g.state.ZoneMode,
	})

	g.logBad("Left Leo at the gate. The school called Sarah. Back to the tables anyway.")
	g.setPhase(PhaseCasino)

	return nil
}

// tutorialPlay routes an action into the scripted table
func (g *Game) tutorialPlay(action string) (*playable.Response, error) {
	result, err := g.tutorial.Play(action)
	if err != nil {
		return nil, err
	}

	if result == nil {
		return nil, nil
	}

	return g.finishTutorialHand(result), nil
}

// finishTutorialHand settles a scripted hand. Vinnie's table charges no
// suspicion; the lesson ends after the last hand and the day moves on.
func (g *Game) finishTutorialHand(result *blackjack.TutorialResult) *playable.Response {
	g.apply(func(s *PlayerState) {
		s.Cash += result.Net
		s.Time += minutesPerHand
		s.HandsPlayedToday++
	})

	g.logDialogue(result.Patter)

	response := &playable.Response{
		Key:   "result",
		Value: string(result.Outcome),
		Data:  result,
	}

	if g.tutorial.Done() {
		g.tutorial = nil
		g.tutorialPlayed = true
		g.logDialogue("Vinnie's man nods. \"Now you know the game. Tomorrow you play it for real.\"")
		g.exitCasino()
	}

	return response
}
