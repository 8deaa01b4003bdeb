package doublelife

// startRun begins day one. Beginner runs open with the call from Vinnie;
// everyone else wakes straight into the morning.
func (g *Game) startRun() error {
	g.logNeutral("Wake up. Head throbbing. Day %d of %d.", g.state.Day, g.options.MaxDays)

	if g.options.Tutorial {
		g.logDialogue("The phone rings before the alarm does. It's Vinnie.")
		g.setPhase(PhaseVinnieCall)
		return nil
	}

	g.setPhase(PhaseMorningChore1)
	return nil
}

func (g *Game) finishVinnieCall() error {
	g.logDialogue("Vinnie: \"$%d by day %d, friend. Drop %d a night at the alley or we talk in person.\"",
		g.state.Debt, g.options.MaxDays, g.options.DailyMinPayment)
	g.setPhase(PhaseMorningChore1)

	return nil
}

// finishChore records the result of a morning chore. The first chore of
// the day buys goodwill on success; fumbling either one draws attention.
func (g *Game) finishChore(success bool) error {
	first := g.phase == PhaseMorningChore1

	g.apply(func(s *PlayerState) {
		s.Time += choreMinutes

		switch {
		case first && success:
			s.Suspicion -= choreSuspicionRefund
		case first && !success:
			s.Suspicion += failedChoreSuspicion
		case !first && !success:
			s.Suspicion += missedChoreSuspicion
		}
	})

	if first {
		if success {
			g.logGood("Bed made, corners tucked. Sarah almost smiles.")
		} else {
			g.logBad("Gave up on the bed halfway. Sarah notices everything.")
		}

		completeTodo(g.todo, "chore-1")
		g.setPhase(PhaseMorningChore2)
		return nil
	}

	if success {
		g.logNeutral("Handled the %s without a scene.", g.secondChore)
	} else {
		g.logBad("Botched the %s. The silence at breakfast is loud.", g.secondChore)
	}

	completeTodo(g.todo, "chore-2")
	g.setPhase(PhaseMorningRoutine)
	return nil
}

// shave spends cash to look presentable, which calms Sarah down
func (g *Game) shave() error {
	if g.state.Cash < costShave {
		g.logBad("Tried to buy razors. Card declined.")
		return nil
	}

	g.apply(func(s *PlayerState) {
		s.Cash -= costShave
		s.Suspicion -= 10
		s.BeardShaved = true
		s.Time += shaveMinutes
	})

	g.logGood("Clean shave. Almost looks like a man with a paycheck.")
	completeTodo(g.todo, "routine")
	g.setPhase(PhaseMorningChoice)

	return nil
}

func (g *Game) skipShave() error {
	g.apply(func(s *PlayerState) {
		s.Time += skipShaveMinutes
	})

	g.logNeutral("The mirror can wait. The stubble stays.")
	completeTodo(g.todo, "routine")
	g.setPhase(PhaseMorningChoice)

	return nil
}

// drinkCoffee sobers the player up for the day's tables
func (g *Game) drinkCoffee() error {
	if g.state.Cash < costCoffee {
		g.logBad("Can't afford coffee. Tap water it is.")
		g.setPhase(PhaseCommute)
		return nil
	}

	g.apply(func(s *PlayerState) {
		s.Cash -= costCoffee
		s.Drunk = false
		s.Time += drinkMinutes
	})

	g.logNeutral("Black coffee. Hands steady. Eyes open.")
	g.setPhase(PhaseCommute)

	return nil
}

// drinkBeer dulls the nerves and the dealer both
func (g *Game) drinkBeer() error {
	if g.state.Cash < costBeer {
		g.logBad("Not enough cash for booze.")
		g.apply(func(s *PlayerState) {
			s.Drunk = false
			s.Time += drinkMinutes
		})
		g.setPhase(PhaseCommute)
		return nil
	}

	g.apply(func(s *PlayerState) {
		s.Cash -= costBeer
		s.Drunk = true
		s.Time += drinkMinutes
	})

	g.logNeutral("Breakfast beer. The edges go soft.")
	g.setPhase(PhaseCommute)

	return nil
}

// commuteSafe pays for gas and arrives without incident. If the player
// can't cover the tank, the risky route is all that's left.
func (g *Game) commuteSafe() error {
	if g.state.Cash < costCommuteSafe {
		g.logBad("Gas tank empty. Forced to risk it.")
		return g.commuteRisky()
	}

	g.apply(func(s *PlayerState) {
		s.Cash -= costCommuteSafe
		s.Suspicion -= 5
		s.ZoneMode = false
		s.Time = safeArrivalTime
	})

	g.logNeutral("Took the highway. Calm drive. Arrived like a citizen.")
	completeTodo(g.todo, "commute")
	g.setPhase(PhaseBanking)

	return nil
}

// commuteRisky gambles on the shortcut. Pulling it off is a rush that
// carries to the tables; getting caught weaving draws eyes.
func (g *Game) commuteRisky() error {
	if g.rand.Float64() >= riskyCommuteBar {
		g.apply(func(s *PlayerState) {
			s.ZoneMode = true
			s.Time = earlyArrivalTime
		})

		g.logGood("Drove like a maniac and it worked. Blood pumping. In the zone.")
	} else {
		g.apply(func(s *PlayerState) {
			s.Suspicion += riskyCommuteSuspicion
			s.ZoneMode = false
			s.Time = safeArrivalTime
		})

		g.logBad("Nearly clipped a bus. A neighbor saw. Word travels.")
	}

	completeTodo(g.todo, "commute")
	g.setPhase(PhaseBanking)

	return nil
}
