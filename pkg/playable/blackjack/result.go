package blackjack

import "fmt"

// Outcome is how a hand ended
type Outcome string

// Outcome constants
const (
	// OutcomeBust means the player went over 21; the dealer never acted
	OutcomeBust Outcome = "bust"

	// OutcomeDealerBust means the dealer went over 21
	OutcomeDealerBust Outcome = "dealer-bust"

	// OutcomeWin means the player outscored the dealer
	OutcomeWin Outcome = "win"

	// OutcomeLoss means the dealer outscored the player
	OutcomeLoss Outcome = "loss"

	// OutcomePush means the scores tied; the wager is returned
	OutcomePush Outcome = "push"
)

// Result is the outcome of a finished hand
type Result struct {
	Outcome     Outcome `json:"outcome"`
	Net         int     `json:"net"`
	Suspicion   int     `json:"suspicion"`
	PlayerScore int     `json:"playerScore"`
	DealerScore int     `json:"dealerScore"`
}

// Message returns the table patter for the outcome
func (r *Result) Message() string {
	switch r.Outcome {
	case OutcomeBust:
		return "BUST"
	case OutcomeDealerBust:
		return "DEALER BUSTS. YOU WIN."
	case OutcomeWin:
		return "VICTORY."
	case OutcomeLoss:
		return "DEFEAT."
	case OutcomePush:
		return "PUSH."
	}

	panic(fmt.Sprintf("unknown outcome: %s", r.Outcome))
}
