package doublelife

// Phase identifies where in the daily loop the player is. Every action is
// legal in exactly the phases that list it; see availableActions.
type Phase string

// Phase constants
const (
	PhaseIntro                Phase = "intro"
	PhaseVinnieCall           Phase = "vinnie-call"
	PhaseMorningChore1        Phase = "morning-chore-1"
	PhaseMorningChore2        Phase = "morning-chore-2"
	PhaseMorningRoutine       Phase = "morning-routine"
	PhaseMorningChoice        Phase = "morning-choice"
	PhaseCommute              Phase = "commute"
	PhaseBanking              Phase = "banking"
	PhaseCasino               Phase = "casino"
	PhaseTutorialCasino       Phase = "tutorial-casino"
	PhasePickupDecision       Phase = "pickup-decision"
	PhaseTheDrop              Phase = "the-drop"
	PhaseWaterPlants          Phase = "water-plants"
	PhaseEveningInterrogation Phase = "evening-interrogation"
	PhaseNextDay              Phase = "next-day-transition"
	PhaseVictory              Phase = "victory"
	PhaseGameOverDebt         Phase = "game-over-debt"
	PhaseGameOverMissed       Phase = "game-over-missed-payment"
	PhaseGameOverWife         Phase = "game-over-wife"
)

func (p Phase) String() string {
	return string(p)
}

// Terminal returns true for the four end-of-game phases
func (p Phase) Terminal() bool {
	switch p {
	case PhaseVictory, PhaseGameOverDebt, PhaseGameOverMissed, PhaseGameOverWife:
		return true
	}

	return false
}
