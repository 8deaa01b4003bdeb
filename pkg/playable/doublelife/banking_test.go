package doublelife

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func bankingGame() *Game {
	g := newTestGame(DifficultyStandard, nil)
	g.phase = PhaseBanking
	return g
}

func TestGame_depositAndWithdraw(t *testing.T) {
	a := assert.New(t)

	g := bankingGame()
	a.NoError(action(t, g, ActionDeposit, nil))
	a.Equal(500, g.state.Cash)
	a.Equal(600, g.state.BankBalance)
	a.Equal(0, g.state.Suspicion)

	// withdrawals show up on the statement
	a.NoError(action(t, g, ActionWithdraw, nil))
	a.Equal(600, g.state.Cash)
	a.Equal(500, g.state.BankBalance)
	a.Equal(suspicionIncreaseWithdraw, g.state.Suspicion)

	g.state.Cash = 40
	a.Equal(ErrInsufficientFunds, action(t, g, ActionDeposit, nil))

	g.state.BankBalance = 40
	a.Equal(ErrInsufficientBalance, action(t, g, ActionWithdraw, nil))
}

func TestGame_loanCap(t *testing.T) {
	a := assert.New(t)

	g := bankingGame()
	for i := 1; i <= maxLoans; i++ {
		a.NoError(action(t, g, ActionLoan, nil))
		a.Equal(i, g.state.LoansTaken)
	}

	a.Equal(600+maxLoans*loanCashAmount, g.state.Cash)
	a.Equal(2500+maxLoans*loanDebtAmount, g.state.Debt)

	a.Equal(ErrLoanCapReached, action(t, g, ActionLoan, nil))
	a.Equal(maxLoans, g.state.LoansTaken)
}

func TestGame_gift(t *testing.T) {
	a := assert.New(t)

	g := bankingGame()
	g.state.Suspicion = 40
	a.NoError(action(t, g, ActionGift, nil))
	a.Equal(540, g.state.Cash)
	a.Equal(15, g.state.Suspicion)

	g.state.Cash = 10
	a.Equal(ErrInsufficientFunds, action(t, g, ActionGift, nil))
	a.Equal(15, g.state.Suspicion)
}

func TestGame_enterCasino(t *testing.T) {
	a := assert.New(t)

	g := bankingGame()
	g.state.Drunk = true
	g.state.ZoneMode = true

	a.NoError(action(t, g, ActionEnterCasino, nil))
	a.Equal(PhaseCasino, g.phase)
	a.NotNil(g.casino)
	a.Equal(15, g.casino.StandThreshold())
	a.Equal(5, g.casino.ZoneHandsLeft())
}

func TestGame_enterCasino_beginnerTutorial(t *testing.T) {
	a := assert.New(t)

	g := newTestGame(DifficultyBeginner, nil)
	g.phase = PhaseBanking

	a.NoError(action(t, g, ActionEnterCasino, nil))
	a.Equal(PhaseTutorialCasino, g.phase)
	a.NotNil(g.tutorial)
	a.Nil(g.casino)
}
