package doublelife

import "fmt"

// tenderPayment hands cash to Vinnie's man at the drop. On a normal night
// anything at or above the minimum keeps the peace; short of the minimum is
// accepted only when it clears the whole debt. The final night settles the
// full balance or nothing.
func (g *Game) tenderPayment(amount int) error {
	if amount <= 0 {
		return fmt.Errorf("payment must be greater than zero")
	}

	if amount > g.state.Cash {
		return ErrInsufficientFunds
	}

	finalDay := g.state.Day >= g.options.MaxDays
	debtBefore := g.state.Debt

	if !finalDay && amount < g.options.DailyMinPayment && amount < debtBefore {
		return ErrBelowMinimumPayment
	}

	g.apply(func(s *PlayerState) {
		s.Cash -= amount
		s.Debt -= amount
		s.TotalPaid += amount
	})

	if g.phase.Terminal() {
		return nil
	}

	if debtBefore-amount <= 0 {
		g.logGood("PAID IN FULL. Vinnie counts it twice, then smiles. \"Pleasure doing business.\"")
		g.endRun(PhaseVictory)
		return nil
	}

	if finalDay {
		g.logBad("Not enough. Vinnie stops counting halfway and looks up.")
		g.endRun(PhaseGameOverDebt)
		return nil
	}

	g.logNeutral("Paid Vinnie $%d. Safe for tonight.", amount)
	g.setPhase(PhaseWaterPlants)

	return nil
}

// walkAway skips the drop entirely. Vinnie doesn't do warnings.
func (g *Game) walkAway() error {
	if g.state.Day >= g.options.MaxDays {
		g.logBad("Time's up and the money isn't there. Two men step out of the dark.")
		g.endRun(PhaseGameOverDebt)
		return nil
	}

	g.logBad("Skipped the drop. The porch light is on, and so is a car across the street.")
	g.endRun(PhaseGameOverMissed)

	return nil
}
