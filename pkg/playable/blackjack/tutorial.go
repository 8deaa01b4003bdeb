package blackjack

import "doublelife-server/pkg/deck"

// tutorialWager is the fixed wager for every scripted hand
const tutorialWager = 50

// scriptedHand is one predetermined tutorial hand. The cards, the action
// sequence, and the result are all fixed; no randomness is involved.
type scriptedHand struct {
	player      string
	dealer      string
	actions     []string
	hitCards    string
	dealerDraws string
	outcome     Outcome
	net         int
	patter      string
}

// the four tutorial hands: stand on a made hand, hit to improve,
// hit into a bust, and a push
var tutorialScript = []*scriptedHand{
	{
		player:  "10s,9h",
		dealer:  "10d,7c",
		actions: []string{"stand"},
		outcome: OutcomeWin,
		net:     tutorialWager,
		patter:  "VICTORY. Nineteen beats seventeen. Stand when you're ahead.",
	},
	{
		player:   "5c,6h",
		dealer:   "9s,8d",
		actions:  []string{"hit", "stand"},
		hitCards: "10c",
		outcome:  OutcomeWin,
		net:      tutorialWager,
		patter:   "VICTORY. Eleven begs for a hit. That's how you make twenty-one.",
	},
	{
		player:   "10h,6s",
		dealer:   "10c,9d",
		actions:  []string{"hit"},
		hitCards: "13d",
		outcome:  OutcomeBust,
		net:      -tutorialWager,
		patter:   "BUST. Sixteen is quicksand. Sometimes the table takes you either way.",
	},
	{
		player:  "14s,7c",
		dealer:  "10c,8h",
		actions: []string{"stand"},
		outcome: OutcomePush,
		net:     0,
		patter:  "PUSH. Nobody wins, nobody bleeds. That ace was worth eleven.",
	},
}

// TutorialResult is the outcome of a scripted hand
type TutorialResult struct {
	Result
	Patter string `json:"patter"`
}

// Tutorial is a scripted variant of the casino session used to teach the
// table without randomness. Four fixed hands are dealt in order; each hand
// mandates its action sequence and its result. Suspicion is never charged.
type Tutorial struct {
	index      int
	step       int
	playerHand deck.Hand
	dealerHand deck.Hand
	hitsTaken  int
}

// NewTutorial returns a tutorial session with the first hand already dealt
func NewTutorial() *Tutorial {
	t := &Tutorial{}
	t.dealCurrent()
	return t
}

func (t *Tutorial) dealCurrent() {
	if t.Done() {
		return
	}

	hand := tutorialScript[t.index]
	t.playerHand = deck.Hand(deck.CardsFromString(hand.player))
	t.dealerHand = deck.Hand(deck.CardsFromString(hand.dealer))
	t.step = 0
	t.hitsTaken = 0
}

// Done returns true once all scripted hands have been played
func (t *Tutorial) Done() bool {
	return t.index >= len(tutorialScript)
}

// HandNumber returns the 1-based number of the current hand
func (t *Tutorial) HandNumber() int {
	return t.index + 1
}

// HandCount returns how many scripted hands the tutorial has
func (t *Tutorial) HandCount() int {
	return len(tutorialScript)
}

// Wager returns the fixed tutorial wager
func (t *Tutorial) Wager() int {
	return tutorialWager
}

// PlayerHand returns the player's current hand
func (t *Tutorial) PlayerHand() deck.Hand {
	return t.playerHand.Clone()
}

// DealerHand returns the dealer's current hand
func (t *Tutorial) DealerHand() deck.Hand {
	return t.dealerHand.Clone()
}

// ExpectedAction returns the action the script demands next
func (t *Tutorial) ExpectedAction() string {
	if t.Done() {
		return ""
	}

	return tutorialScript[t.index].actions[t.step]
}

// Play performs the next action of the current scripted hand.
// The action must match the script or ErrScriptedAction is returned. A
// non-nil result means the hand finished; the next hand (if any) is dealt
// automatically.
func (t *Tutorial) Play(action string) (*TutorialResult, error) {
	if t.Done() {
		return nil, ErrTutorialOver
	}

	hand := tutorialScript[t.index]
	if action != hand.actions[t.step] {
		return nil, ErrScriptedAction
	}

	t.step++

	if action == "hit" {
		hitCards := deck.CardsFromString(hand.hitCards)
		t.playerHand.AddCard(hitCards[t.hitsTaken])
		t.hitsTaken++
	}

	if t.step < len(hand.actions) {
		return nil, nil
	}

	// hand is over; reveal any scripted dealer draws
	for _, card := range deck.CardsFromString(hand.dealerDraws) {
		t.dealerHand.AddCard(card)
	}

	result := &TutorialResult{
		Result: Result{
			Outcome:     hand.outcome,
			Net:         hand.net,
			Suspicion:   0,
			PlayerScore: t.playerHand.BlackjackScore(),
			DealerScore: t.dealerHand.BlackjackScore(),
		},
		Patter: hand.patter,
	}

	t.index++
	t.dealCurrent()

	return result, nil
}
