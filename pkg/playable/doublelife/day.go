package doublelife

import "fmt"

// waterPlants is the last quiet obligation of the evening before the
// questions start
func (g *Game) waterPlants(success bool) error {
	if success {
		g.apply(func(s *PlayerState) { s.Suspicion -= 5 })
		g.logGood("Watered the ferns. Small mercies.")
	} else {
		g.apply(func(s *PlayerState) { s.Suspicion += 5 })
		g.logBad("Drowned the ferns. Sarah's ferns.")
	}

	if g.phase.Terminal() {
		return nil
	}

	g.event = pickEvent(g.rand)
	g.logDialogue("%s: \"%s\"", g.event.Speaker, g.event.Text)
	g.setPhase(PhaseEveningInterrogation)

	return nil
}

// offerExcuse answers the evening interrogation with the chosen option
func (g *Game) offerExcuse(option int) error {
	event := g.event
	if option < 0 || option >= len(event.Options) {
		return fmt.Errorf("invalid excuse: %d", option)
	}

	chosen := event.Options[option]
	success, delta := resolveOption(chosen, g.rand.Float64())

	g.apply(func(s *PlayerState) { s.Suspicion += delta })

	if success {
		g.logDialogue("\"%s\" ...It worked. %s lets it go.", chosen.Text, event.Speaker)
	} else {
		g.logBad("\"%s\" ...%s doesn't buy a word of it.", chosen.Text, event.Speaker)
	}

	g.event = nil

	if g.phase.Terminal() {
		return nil
	}

	g.endDay()

	return nil
}

// endDay settles the household bills and decides whether there is a
// tomorrow. The joint account eats the daily expenses; an empty account is
// its own kind of confession.
func (g *Game) endDay() {
	g.apply(func(s *PlayerState) {
		s.BankBalance -= dailyExpenses

		if s.BankBalance < 0 {
			s.Suspicion += overdraftSuspicion
		} else if s.BankBalance < lowBankThreshold {
			s.Suspicion += lowBalanceSuspicion
		}
	})

	switch {
	case g.state.BankBalance < 0:
		g.logBad("The rent check bounced. Sarah saw the notice first.")
	case g.state.BankBalance < lowBankThreshold:
		g.logBad("The account is running on fumes. Sarah recounts the grocery money.")
	default:
		g.logNeutral("Bills paid. Another day survived.")
	}

	if g.phase.Terminal() {
		return
	}

	if g.state.Debt == 0 {
		g.logGood("The ledger is clean. It's over.")
		g.endRun(PhaseVictory)
		return
	}

	if g.state.Day >= g.options.MaxDays {
		g.logBad("The last day is spent and the debt still breathes.")
		g.endRun(PhaseGameOverDebt)
		return
	}

	g.setPhase(PhaseNextDay)
}

// sleep closes out the night and wakes into the next morning
func (g *Game) sleep() error {
	g.callActive = false
	g.state.startNewDay()
	g.secondChore = g.rollSecondChore()

	if g.options.TodoList {
		g.todo = newTodoList()
	}

	g.logNeutral("--- DAY %d ---", g.state.Day)
	g.setPhase(PhaseMorningChore1)

	return nil
}

// payOffDebt settles the whole balance in one late-night payment
func (g *Game) payOffDebt() error {
	if g.state.Cash < g.state.Debt {
		return ErrInsufficientFunds
	}

	amount := g.state.Debt
	g.apply(func(s *PlayerState) {
		s.Cash -= amount
		s.TotalPaid += amount
		s.Debt = 0
	})

	g.logGood("Drove to Vinnie's at midnight and paid every dollar. PAID IN FULL.")
	g.endRun(PhaseVictory)

	return nil
}
