package doublelife

import (
	"doublelife-server/internal/rng"
	"doublelife-server/pkg/playable"
	"doublelife-server/pkg/playable/blackjack"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Game is the controller for a single run of Double Life. It owns the
// resource state, the phase machine, and the live casino session, and it
// narrates every decision to the log channel. Games are single-player and
// are not safe for concurrent use; the session goroutine owns the game.
type Game struct {
	playerID int64
	logger   logrus.FieldLogger
	options  Options
	rand     rng.Generator

	state PlayerState
	phase Phase

	casino         *blackjack.Game
	tutorial       *blackjack.Tutorial
	tutorialPlayed bool
	event          *InteractionEvent
	callActive     bool
	secondChore    string
	todo           []*TodoItem

	logChan     chan []*playable.LogMessage
	pendingLogs []*playable.LogMessage
	logs        []*playable.LogMessage
}

// NewGame returns a new run for the player at the given difficulty
func NewGame(logger logrus.FieldLogger, playerID int64, options Options) *Game {
	g := &Game{
		playerID: playerID,
		logger:   logger,
		options:  options,
		rand:     rng.Crypto{},
		logChan:  make(chan []*playable.LogMessage, 256),
	}
	g.resetRun()

	return g
}

// resetRun puts the game back at the start of day one
func (g *Game) resetRun() {
	g.state = newPlayerState(g.options)
	g.phase = PhaseIntro
	g.casino = nil
	g.tutorial = nil
	g.tutorialPlayed = false
	g.event = nil
	g.callActive = false
	g.secondChore = g.rollSecondChore()
	g.todo = nil
	g.logs = nil

	if g.options.TodoList {
		g.todo = newTodoList()
	}
}

// Name returns the name of the game
func (g *Game) Name() string {
	return "double-life"
}

// LogChan returns a channel log messages are sent to
func (g *Game) LogChan() <-chan []*playable.LogMessage {
	return g.logChan
}

// Action performs an action for the player
func (g *Game) Action(playerID int64, message *playable.PayloadIn) (playerResponse *playable.Response, updateState bool, err error) {
	if playerID != g.playerID {
		return nil, false, fmt.Errorf("you are not in this game")
	}

	action := Action(message.Action)
	if !g.isActionAvailable(action) {
		if g.phase.Terminal() && action != ActionReset {
			return nil, false, ErrGameOver
		}

		return nil, false, fmt.Errorf("you cannot %s during %s", action, g.phase)
	}

	response, err := g.performAction(action, message.AdditionalData)
	g.flushLogs()

	if err != nil {
		return nil, false, err
	}

	if response == nil {
		response = playable.OK(message.Context)
	} else {
		response.Context = message.Context
	}

	return response, true, nil
}

func (g *Game) performAction(action Action, data playable.AdditionalData) (*playable.Response, error) {
	switch action {
	case ActionStart:
		return nil, g.startRun()
	case ActionContinue:
		return nil, g.finishVinnieCall()
	case ActionChore:
		success, _ := data.GetBool("success")
		return nil, g.finishChore(success)
	case ActionShave:
		return nil, g.shave()
	case ActionSkipShave:
		return nil, g.skipShave()
	case ActionCoffee:
		return nil, g.drinkCoffee()
	case ActionBeer:
		return nil, g.drinkBeer()
	case ActionCommuteSafe:
		return nil, g.commuteSafe()
	case ActionCommuteRisky:
		return nil, g.commuteRisky()
	case ActionDeposit:
		return nil, g.deposit()
	case ActionWithdraw:
		return nil, g.withdraw()
	case ActionLoan:
		return nil, g.takeLoan()
	case ActionGift:
		return nil, g.buyGift()
	case ActionEnterCasino:
		return nil, g.enterCasino()
	case ActionWager:
		amount, _ := data.GetInt("amount")
		return nil, g.placeWager(amount)
	case ActionHit:
		return g.hit()
	case ActionStand:
		return g.stand()
	case ActionLeaveCasino:
		return nil, g.leaveCasino()
	case ActionCallHome:
		return nil, g.callHome()
	case ActionAnswerCall:
		response, _ := data.GetString("response")
		return nil, g.answerCall(response)
	case ActionPickupSon:
		return nil, g.pickupSon()
	case ActionSkipPickup:
		return nil, g.skipPickup()
	case ActionTender:
		amount, _ := data.GetInt("amount")
		return nil, g.tenderPayment(amount)
	case ActionWalkAway:
		return nil, g.walkAway()
	case ActionWaterPlants:
		success, _ := data.GetBool("success")
		return nil, g.waterPlants(success)
	case ActionExcuse:
		option, ok := data.GetInt("option")
		if !ok {
			return nil, fmt.Errorf("an excuse is required")
		}
		return nil, g.offerExcuse(option)
	case ActionSleep:
		return nil, g.sleep()
	case ActionPayDebt:
		return nil, g.payOffDebt()
	case ActionReset:
		g.resetRun()
		return nil, nil
	}

	return nil, fmt.Errorf("unsupported action: %s", action)
}

// apply mutates the player state, clamps it, and checks the suspicion
// limit. Every state change in the controller goes through here so the
// wife-finds-out interrupt can never be missed.
func (g *Game) apply(mutate func(s *PlayerState)) {
	mutate(&g.state)
	g.state.normalize()

	if g.state.Suspicion >= SuspicionLimit && !g.phase.Terminal() {
		g.endRun(PhaseGameOverWife)
		g.logBad("Sarah is gone. The note on the table says she took Leo to her mother's.")
	}
}

// endRun moves the game to a terminal phase and drops any live sub-state
func (g *Game) endRun(phase Phase) {
	g.phase = phase
	g.casino = nil
	g.tutorial = nil
	g.event = nil
	g.callActive = false

	g.logger.WithFields(logrus.Fields{
		"playerID":   g.playerID,
		"difficulty": g.options.Difficulty,
		"outcome":    phase,
		"day":        g.state.Day,
		"totalPaid":  g.state.TotalPaid,
	}).Info("run ended")
}

func (g *Game) setPhase(phase Phase) {
	// a terminal phase reached mid-action wins over the normal transition
	if g.phase.Terminal() {
		return
	}

	g.phase = phase
}

func (g *Game) rollSecondChore() string {
	pool := []string{"pack-lunch", "find-keys"}
	return pool[g.rand.Intn(len(pool))]
}

// GetEndOfGameDetails returns the details after a run is over
func (g *Game) GetEndOfGameDetails() (*playable.GameOverDetails, bool) {
	if !g.phase.Terminal() {
		return nil, false
	}

	return &playable.GameOverDetails{
		Difficulty:   g.options.Difficulty.String(),
		Outcome:      g.phase.String(),
		DaysSurvived: g.state.Day,
		TotalPaid:    g.state.TotalPaid,
		Won:          g.phase == PhaseVictory,
	}, true
}

// log helpers; messages queue up during an action and flush as one batch

func (g *Game) log(kind playable.LogKind, format string, a ...interface{}) {
	msg := playable.NewLogMessage(kind, g.state.Time, format, a...)
	g.pendingLogs = append(g.pendingLogs, msg)
	g.logs = append(g.logs, msg)
}

func (g *Game) logNeutral(format string, a ...interface{}) {
	g.log(playable.LogNeutral, format, a...)
}

func (g *Game) logGood(format string, a ...interface{}) {
	g.log(playable.LogGood, format, a...)
}

func (g *Game) logBad(format string, a ...interface{}) {
	g.log(playable.LogBad, format, a...)
}

func (g *Game) logDialogue(format string, a ...interface{}) {
	g.log(playable.LogDialogue, format, a...)
}

func (g *Game) flushLogs() {
	if len(g.pendingLogs) == 0 {
		return
	}

	messages := g.pendingLogs
	g.pendingLogs = nil

	select {
	case g.logChan <- messages:
	default:
		g.logger.Warn("log channel is full; dropping messages")
	}
}
