package blackjack

import (
	"doublelife-server/pkg/deck"
	"fmt"

	"github.com/sirupsen/logrus"
)

// reshuffleBelow is the low-water mark. A fresh shuffled deck replaces the
// shoe whenever fewer cards than this remain before a new deal.
const reshuffleBelow = 15

// zoneHands is the number of suspicion-free hands granted by zone mode
const zoneHands = 5

// dealer stand thresholds
const (
	standThresholdSober = 17
	standThresholdDrunk = 15
)

// suspicion cost per finished hand
const (
	suspicionPerHandSober = 4
	suspicionPerHandDrunk = 7
)

// State is the state of the current hand
type State string

// State constants
const (
	// StateBetting means no hand is in progress and a wager may be placed
	StateBetting State = "betting"

	// StatePlaying means the player is acting on their hand
	StatePlaying State = "playing"

	// StateDealerTurn means the player stood and the dealer is drawing
	StateDealerTurn State = "dealer-turn"

	// StateFinished means the hand resolved; the next deal returns to betting
	StateFinished State = "finished"
)

// Options configures a casino session
type Options struct {
	// DrunkMode lowers the dealer stand threshold to 15 and raises the
	// suspicion cost per hand
	DrunkMode bool

	// ZoneMode grants a fixed number of suspicion-free hands
	ZoneMode bool
}

// Game is a single casino sitting of one-armed blackjack against the house
type Game struct {
	logger        logrus.FieldLogger
	options       Options
	deck          *deck.Deck
	playerHand    deck.Hand
	dealerHand    deck.Hand
	state         State
	wager         int
	zoneHandsLeft int
	lastResult    *Result
}

// NewGame returns a new casino session
func NewGame(logger logrus.FieldLogger, options Options) *Game {
	d := deck.New()
	d.Shuffle(0)

	zoneHandsLeft := 0
	if options.ZoneMode {
		zoneHandsLeft = zoneHands
	}

	return &Game{
		logger:        logger,
		options:       options,
		deck:          d,
		state:         StateBetting,
		zoneHandsLeft: zoneHandsLeft,
	}
}

// State returns the current hand state
func (g *Game) State() State {
	return g.state
}

// Wager returns the current wager
func (g *Game) Wager() int {
	return g.wager
}

// ZoneHandsLeft returns how many suspicion-free hands remain
func (g *Game) ZoneHandsLeft() int {
	return g.zoneHandsLeft
}

// PlayerHand returns the player's hand
func (g *Game) PlayerHand() deck.Hand {
	return g.playerHand.Clone()
}

// DealerHand returns the dealer's hand
func (g *Game) DealerHand() deck.Hand {
	return g.dealerHand.Clone()
}

// DealerUpCard returns the dealer's face-up card, or nil before a deal.
// The second dealer card is conceptually face-down until the player stands.
func (g *Game) DealerUpCard() *deck.Card {
	if len(g.dealerHand) == 0 {
		return nil
	}

	return g.dealerHand[0]
}

// StandThreshold returns the score the dealer stands on
func (g *Game) StandThreshold() int {
	if g.options.DrunkMode {
		return standThresholdDrunk
	}

	return standThresholdSober
}

// LastResult returns the result of the most recently finished hand
func (g *Game) LastResult() *Result {
	return g.lastResult
}

// Deal places a wager and deals a new hand.
// availableCash is the player's cash on hand; the wager may not exceed it.
func (g *Game) Deal(wager, availableCash int) error {
	if g.state != StateBetting && g.state != StateFinished {
		return ErrHandInProgress
	}

	if wager <= 0 {
		return fmt.Errorf("wager must be greater than zero")
	}

	if wager > availableCash {
		return ErrInsufficientFunds
	}

	if !g.deck.CanDraw(reshuffleBelow) {
		g.deck.Shuffle(0)
		g.logger.WithField("cardsLeft", g.deck.CardsLeft()).Debug("reshuffled the shoe")
	}

	g.wager = wager
	g.playerHand = deck.Hand{}
	g.dealerHand = deck.Hand{}
	g.lastResult = nil

	// player, dealer, player, dealer
	g.playerHand.AddCard(g.drawCard())
	g.dealerHand.AddCard(g.drawCard())
	g.playerHand.AddCard(g.drawCard())
	g.dealerHand.AddCard(g.drawCard())

	g.state = StatePlaying
	return nil
}

// Hit draws one card into the player's hand.
// If the hand busts, the hand is over and the result is returned. The dealer
// does not act on a bust. Otherwise the returned result is nil and the player
// may act again.
func (g *Game) Hit() (*Result, error) {
	if g.state != StatePlaying {
		return nil, ErrNoHandInProgress
	}

	g.playerHand.AddCard(g.drawCard())

	if g.playerHand.BlackjackScore() > 21 {
		return g.finishHand(OutcomeBust), nil
	}

	return nil, nil
}

// Stand ends the player's turn and resolves the dealer to completion.
// The dealer draws until reaching the stand threshold and the hand is
// compared. Reveal pacing is a presentation concern; the outcome here is
// computed instantly.
func (g *Game) Stand() (*Result, error) {
	if g.state != StatePlaying {
		return nil, ErrNoHandInProgress
	}

	g.state = StateDealerTurn

	threshold := g.StandThreshold()
	for g.dealerHand.BlackjackScore() < threshold {
		g.dealerHand.AddCard(g.drawCard())
	}

	dealerScore := g.dealerHand.BlackjackScore()
	playerScore := g.playerHand.BlackjackScore()

	var outcome Outcome
	switch {
	case dealerScore > 21:
		outcome = OutcomeDealerBust
	case playerScore > dealerScore:
		outcome = OutcomeWin
	case playerScore < dealerScore:
		outcome = OutcomeLoss
	default:
		outcome = OutcomePush
	}

	return g.finishHand(outcome), nil
}

// CanLeave returns true if the session may be exited right now
func (g *Game) CanLeave() bool {
	return g.state == StateBetting || g.state == StateFinished
}

// drawCard draws from the tail of the shoe, replacing it with a freshly
// shuffled deck if it is exhausted mid-hand
func (g *Game) drawCard() *deck.Card {
	card, err := g.deck.Draw()
	if err == deck.ErrEndOfDeck {
		g.deck.Shuffle(0)
		g.logger.Debug("shoe exhausted mid-hand; reshuffled")

		card, err = g.deck.Draw()
	}

	if err != nil {
		panic(fmt.Sprintf("could not draw from a fresh deck: %v", err))
	}

	return card
}

func (g *Game) finishHand(outcome Outcome) *Result {
	g.state = StateFinished

	suspicion := suspicionPerHandSober
	if g.options.DrunkMode {
		suspicion = suspicionPerHandDrunk
	}

	if g.zoneHandsLeft > 0 {
		suspicion = 0
		g.zoneHandsLeft--
	}

	net := 0
	switch outcome {
	case OutcomeBust, OutcomeLoss:
		net = -g.wager
	case OutcomeWin, OutcomeDealerBust:
		net = g.wager
	}

	result := &Result{
		Outcome:     outcome,
		Net:         net,
		Suspicion:   suspicion,
		PlayerScore: g.playerHand.BlackjackScore(),
		DealerScore: g.dealerHand.BlackjackScore(),
	}

	g.lastResult = result
	return result
}

// testDeck swaps in a prepared deck. Tests only.
func (g *Game) testDeck(d *deck.Deck) {
	g.deck = d
}
