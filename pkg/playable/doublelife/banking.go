package doublelife

import "doublelife-server/pkg/playable/blackjack"

// deposit moves cash into the joint account. Money in the bank keeps the
// household bills covered and Sarah off the statements.
func (g *Game) deposit() error {
	if g.state.Cash < bankTransferAmount {
		return ErrInsufficientFunds
	}

	g.apply(func(s *PlayerState) {
		s.Cash -= bankTransferAmount
		s.BankBalance += bankTransferAmount
	})

	g.logNeutral("Deposited $%d. The account looks almost respectable.", bankTransferAmount)

	return nil
}

// withdraw pulls cash from the joint account. Sarah reads the statements.
func (g *Game) withdraw() error {
	if g.state.BankBalance < bankTransferAmount {
		return ErrInsufficientBalance
	}

	g.apply(func(s *PlayerState) {
		s.Cash += bankTransferAmount
		s.BankBalance -= bankTransferAmount
		s.Suspicion += suspicionIncreaseWithdraw
	})

	g.logBad("Withdrew $%d. Another line on the statement to explain.", bankTransferAmount)

	return nil
}

// takeLoan borrows from Vinnie. The cash is real; so is the vig.
func (g *Game) takeLoan() error {
	if g.state.LoansTaken >= maxLoans {
		g.logDialogue("Vinnie denied the loan. \"Pay what you owe first.\"")
		return ErrLoanCapReached
	}

	g.apply(func(s *PlayerState) {
		s.Cash += loanCashAmount
		s.Debt += loanDebtAmount
		s.LoansTaken++
	})

	g.logBad("Took shark loan #%d. Soul sold: +$%d cash, +$%d debt.",
		g.state.LoansTaken, loanCashAmount, loanDebtAmount)

	return nil
}

// buyGift picks up flowers for Sarah on the way past the florist
func (g *Game) buyGift() error {
	if g.state.Cash < costGift {
		g.logBad("Can't afford the flowers. Pathetic.")
		return ErrInsufficientFunds
	}

	g.apply(func(s *PlayerState) {
		s.Cash -= costGift
		s.Suspicion -= suspicionReductionGift
	})

	g.logGood("Bought Sarah lilies. She loves lilies. Guilt, wrapped in paper.")

	return nil
}

// enterCasino walks into the Lucky Star. The first beginner visit is the
// scripted table; every other visit opens a live session seeded with the
// morning's state of mind.
func (g *Game) enterCasino() error {
	g.state.HasCalledInCasino = false

	if g.options.Tutorial && !g.tutorialPlayed {
		g.tutorial = blackjack.NewTutorial()
		g.logDialogue("Vinnie's man waves you to a side table. \"Boss says you play four hands his way first.\"")
		g.setPhase(PhaseTutorialCasino)
		return nil
	}

	g.casino = blackjack.NewGame(g.logger, blackjack.Options{
		DrunkMode: g.state.Drunk,
		ZoneMode:  g.state.ZoneMode,
	})

	g.logNeutral("The Lucky Star. Smoke, felt, and the only math that matters.")
	g.setPhase(PhaseCasino)

	return nil
}
