package doublelife

// Action is a decision the player can send to the controller
type Action string

// Action constants
const (
	ActionStart        Action = "start"
	ActionContinue     Action = "continue"
	ActionChore        Action = "chore"
	ActionShave        Action = "shave"
	ActionSkipShave    Action = "skip-shave"
	ActionCoffee       Action = "coffee"
	ActionBeer         Action = "beer"
	ActionCommuteSafe  Action = "commute-safe"
	ActionCommuteRisky Action = "commute-risky"
	ActionDeposit      Action = "deposit"
	ActionWithdraw     Action = "withdraw"
	ActionLoan         Action = "loan"
	ActionGift         Action = "gift"
	ActionEnterCasino  Action = "enter-casino"
	ActionWager        Action = "wager"
	ActionHit          Action = "hit"
	ActionStand        Action = "stand"
	ActionLeaveCasino  Action = "leave-casino"
	ActionCallHome     Action = "call-home"
	ActionAnswerCall   Action = "answer-call"
	ActionPickupSon    Action = "pickup-son"
	ActionSkipPickup   Action = "skip-pickup"
	ActionTender       Action = "tender"
	ActionWalkAway     Action = "walk-away"
	ActionWaterPlants  Action = "water-plants"
	ActionExcuse       Action = "excuse"
	ActionSleep        Action = "sleep"
	ActionPayDebt      Action = "pay-debt"
	ActionReset        Action = "reset"
)

func (a Action) String() string {
	return string(a)
}

// phone call responses for answer-call
const (
	PhoneResponseTruth      = "truth"
	PhoneResponseLieWork    = "lie-work"
	PhoneResponseLieTraffic = "lie-traffic"
	PhoneResponseHangUp     = "hang-up"
)

var actionsByPhase = map[Phase][]Action{
	PhaseIntro:          {ActionStart},
	PhaseVinnieCall:     {ActionContinue},
	PhaseMorningChore1:  {ActionChore},
	PhaseMorningChore2:  {ActionChore},
	PhaseMorningRoutine: {ActionShave, ActionSkipShave},
	PhaseMorningChoice:  {ActionCoffee, ActionBeer},
	PhaseCommute:        {ActionCommuteSafe, ActionCommuteRisky},
	PhaseBanking:        {ActionDeposit, ActionWithdraw, ActionLoan, ActionGift, ActionEnterCasino},
	PhaseCasino:         {ActionWager, ActionHit, ActionStand, ActionLeaveCasino, ActionCallHome, ActionAnswerCall},
	PhaseTutorialCasino: {ActionHit, ActionStand},
	PhasePickupDecision: {ActionPickupSon, ActionSkipPickup},
	PhaseTheDrop:        {ActionTender, ActionWalkAway},
	PhaseWaterPlants:    {ActionWaterPlants},

	PhaseEveningInterrogation: {ActionExcuse},
	PhaseNextDay:              {ActionSleep, ActionPayDebt},

	PhaseVictory:        {ActionReset},
	PhaseGameOverDebt:   {ActionReset},
	PhaseGameOverMissed: {ActionReset},
	PhaseGameOverWife:   {ActionReset},
}

// availableActions returns the actions legal in the game's current phase
func (g *Game) availableActions() []Action {
	actions := actionsByPhase[g.phase]

	if g.phase == PhaseNextDay && g.state.Cash < g.state.Debt {
		return []Action{ActionSleep}
	}

	return actions
}

func (g *Game) isActionAvailable(action Action) bool {
	for _, a := range g.availableActions() {
		if a == action {
			return true
		}
	}

	return false
}
