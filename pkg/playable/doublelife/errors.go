package doublelife

import "errors"

// ErrInsufficientFunds is an error when an action costs more cash than the player holds
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrInsufficientBalance is an error when a withdrawal exceeds the bank balance
var ErrInsufficientBalance = errors.New("insufficient bank balance")

// ErrBelowMinimumPayment is an error when a drop payment is under the nightly minimum
var ErrBelowMinimumPayment = errors.New("payment is below the nightly minimum")

// ErrLoanCapReached is an error when the player already holds the maximum number of loans
var ErrLoanCapReached = errors.New("loan cap reached")

// ErrGameOver is an error when an action arrives after a terminal phase
var ErrGameOver = errors.New("the game is over")
