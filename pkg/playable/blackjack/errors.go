package blackjack

import "errors"

// ErrInsufficientFunds is an error when the wager exceeds the player's cash
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrHandInProgress is an error when a deal is attempted mid-hand
var ErrHandInProgress = errors.New("a hand is already in progress")

// ErrNoHandInProgress is an error when hit/stand is attempted with no live hand
var ErrNoHandInProgress = errors.New("no hand in progress")

// ErrScriptedAction is an error when a tutorial step gets the wrong action
var ErrScriptedAction = errors.New("the tutorial requires a different action")

// ErrTutorialOver is an error when the tutorial script has been exhausted
var ErrTutorialOver = errors.New("the tutorial is over")
