package doublelife

import (
	"fmt"
	"strings"
)

// suspicion and money constants shared by every difficulty
const (
	// SuspicionLimit ends the game when reached
	SuspicionLimit = 100

	dailyExpenses = 75

	costShave       = 15
	costCoffee      = 10
	costBeer        = 12
	costCommuteSafe = 25
	costGift        = 60

	maxLoans       = 3
	loanCashAmount = 500
	loanDebtAmount = 750

	bankTransferAmount        = 100
	suspicionReductionGift    = 25
	suspicionReductionCall    = 5
	suspicionIncreaseWithdraw = 10

	lowBankThreshold      = 100
	overdraftSuspicion    = 20
	lowBalanceSuspicion   = 10
	skipPickupSuspicion   = 30
	missedChoreSuspicion  = 10
	failedChoreSuspicion  = 5
	choreSuspicionRefund  = 5
	riskyCommuteSuspicion = 15
)

// clock constants, in minutes from midnight
const (
	dayStartTime       = 420  // 7:00 AM
	earlyArrivalTime   = 540  // 9:00 AM, risky commute payoff
	safeArrivalTime    = 570  // 9:30 AM
	pickupTime         = 900  // 3:00 PM school pickup
	postPickupTime     = 960  // 4:00 PM back at the tables
	dropTime           = 1080 // 6:00 PM, Vinnie's alley
	minutesPerHand     = 30
	choreMinutes       = 15
	shaveMinutes       = 10
	skipShaveMinutes   = 5
	drinkMinutes       = 15
	phoneCallMinutes   = 10
)

// probability constants
const (
	// a risky commute succeeds when the roll is at or above this
	riskyCommuteBar = 0.4

	// a lie on the phone holds up when the roll is at or above this
	phoneLieBar = 0.4

	// incoming-call chance grows by this much per hand played today
	callChancePerHand = 0.05

	// calls home beyond this many per day backfire
	maxFreeCallsHome = 2
)

// Difficulty is a named game configuration
type Difficulty string

// Difficulty constants
const (
	DifficultyBeginner Difficulty = "beginner"
	DifficultyStandard Difficulty = "standard"
	DifficultyHard     Difficulty = "hard"
)

func (d Difficulty) String() string {
	return string(d)
}

// DifficultyFromString returns the difficulty for a string
func DifficultyFromString(s string) (Difficulty, error) {
	switch strings.ToLower(s) {
	case "beginner":
		return DifficultyBeginner, nil
	case "standard":
		return DifficultyStandard, nil
	case "hard":
		return DifficultyHard, nil
	}

	return "", fmt.Errorf("unknown difficulty: %s", s)
}

// Options is the per-difficulty configuration consumed uniformly by the
// controller. All difficulty branching lives here, not at call sites.
type Options struct {
	Difficulty  Difficulty
	InitialCash int
	InitialBank int
	InitialDebt int
	MaxDays     int

	// DailyMinPayment is the minimum drop on a non-final day
	DailyMinPayment int

	// Tutorial replaces the first casino visit with the scripted table
	Tutorial bool

	// TodoList gives the player a daily checklist
	TodoList bool
}

// DefaultOptions returns the configuration for a difficulty
func DefaultOptions(difficulty Difficulty) Options {
	switch difficulty {
	case DifficultyBeginner:
		return Options{
			Difficulty:      DifficultyBeginner,
			InitialCash:     400,
			InitialBank:     500,
			InitialDebt:     1000,
			MaxDays:         3,
			DailyMinPayment: 200,
			Tutorial:        true,
			TodoList:        true,
		}
	case DifficultyHard:
		return Options{
			Difficulty:      DifficultyHard,
			InitialCash:     600,
			InitialBank:     0,
			InitialDebt:     5000,
			MaxDays:         7,
			DailyMinPayment: 200,
		}
	default:
		return Options{
			Difficulty:      DifficultyStandard,
			InitialCash:     600,
			InitialBank:     500,
			InitialDebt:     2500,
			MaxDays:         7,
			DailyMinPayment: 200,
		}
	}
}
