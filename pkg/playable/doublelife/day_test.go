package doublelife

import (
	"doublelife-server/internal/rng"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGame_waterPlants(t *testing.T) {
	a := assert.New(t)

	g := newTestGame(DifficultyStandard, &rng.Script{Ints: []int{2}, Floats: []float64{0.99}})
	g.phase = PhaseWaterPlants
	g.state.Suspicion = 10

	a.NoError(action(t, g, ActionWaterPlants, map[string]interface{}{"success": true}))
	a.Equal(5, g.state.Suspicion)
	a.Equal(PhaseEveningInterrogation, g.phase)
	a.Equal("sarah_smell", g.event.ID)

	g = newTestGame(DifficultyStandard, nil)
	g.phase = PhaseWaterPlants
	a.NoError(action(t, g, ActionWaterPlants, map[string]interface{}{"success": false}))
	a.Equal(5, g.state.Suspicion)
}

func TestGame_excuse_success(t *testing.T) {
	a := assert.New(t)

	// option 0 of sarah_withdrawals holds at 0.7; roll 0.6 passes
	g := newTestGame(DifficultyStandard, &rng.Script{Floats: []float64{0.6}})
	g.phase = PhaseEveningInterrogation
	g.event = eveningEvents[0]
	g.state.Suspicion = 30

	a.NoError(action(t, g, ActionExcuse, map[string]interface{}{"option": float64(0)}))
	a.Equal(25, g.state.Suspicion)
	a.Nil(g.event)

	// the day ended: expenses cleared and tomorrow is queued
	a.Equal(425, g.state.BankBalance)
	a.Equal(PhaseNextDay, g.phase)
}

func TestGame_excuse_failure(t *testing.T) {
	a := assert.New(t)

	// option 2 of sarah_withdrawals is the 50-risk snap at 0.1
	g := newTestGame(DifficultyStandard, &rng.Script{Floats: []float64{0.9}})
	g.phase = PhaseEveningInterrogation
	g.event = eveningEvents[0]

	a.NoError(action(t, g, ActionExcuse, map[string]interface{}{"option": float64(2)}))
	a.Equal(50, g.state.Suspicion)
	a.Equal(PhaseNextDay, g.phase)
}

func TestGame_excuse_validation(t *testing.T) {
	a := assert.New(t)

	g := newTestGame(DifficultyStandard, nil)
	g.phase = PhaseEveningInterrogation
	g.event = eveningEvents[1]

	a.EqualError(action(t, g, ActionExcuse, nil), "an excuse is required")
	a.EqualError(action(t, g, ActionExcuse, map[string]interface{}{"option": float64(7)}), "invalid excuse: 7")
	a.NotNil(g.event)
}

func TestGame_endDay_expenses(t *testing.T) {
	a := assert.New(t)

	// a healthy account draws no attention
	g := newTestGame(DifficultyStandard, nil)
	g.endDay()
	a.Equal(425, g.state.BankBalance)
	a.Equal(0, g.state.Suspicion)
	a.Equal(PhaseNextDay, g.phase)

	// running on fumes
	g = newTestGame(DifficultyStandard, nil)
	g.state.BankBalance = 150
	g.endDay()
	a.Equal(75, g.state.BankBalance)
	a.Equal(lowBalanceSuspicion, g.state.Suspicion)

	// overdrawn
	g = newTestGame(DifficultyStandard, nil)
	g.state.BankBalance = 50
	g.endDay()
	a.Equal(-25, g.state.BankBalance)
	a.Equal(overdraftSuspicion, g.state.Suspicion)
}

func TestGame_endDay_outcomes(t *testing.T) {
	a := assert.New(t)

	// the debt outliving the calendar ends the run
	g := newTestGame(DifficultyStandard, nil)
	g.state.Day = g.options.MaxDays
	g.endDay()
	a.Equal(PhaseGameOverDebt, g.phase)

	// a cleared ledger ends it the other way
	g = newTestGame(DifficultyStandard, nil)
	g.state.Debt = 0
	g.endDay()
	a.Equal(PhaseVictory, g.phase)
}

func TestGame_sleep(t *testing.T) {
	a := assert.New(t)

	g := newTestGame(DifficultyStandard, nil)
	g.phase = PhaseNextDay
	g.state.ZoneMode = true
	g.state.HandsPlayedToday = 5
	g.state.Time = 1300

	a.NoError(action(t, g, ActionSleep, nil))
	a.Equal(2, g.state.Day)
	a.Equal(dayStartTime, g.state.Time)
	a.False(g.state.ZoneMode)
	a.Equal(0, g.state.HandsPlayedToday)
	a.Equal(PhaseMorningChore1, g.phase)
}

func TestGame_sleep_clearsPendingCall(t *testing.T) {
	a := assert.New(t)

	g := newTestGame(DifficultyStandard, nil)
	g.phase = PhaseNextDay
	g.callActive = true

	a.NoError(action(t, g, ActionSleep, nil))
	a.False(g.callActive)
}

func TestGame_payOffDebt(t *testing.T) {
	a := assert.New(t)

	g := newTestGame(DifficultyStandard, nil)
	g.phase = PhaseNextDay
	g.state.Cash = 3000

	a.NoError(action(t, g, ActionPayDebt, nil))
	a.Equal(500, g.state.Cash)
	a.Equal(0, g.state.Debt)
	a.Equal(2500, g.state.TotalPaid)
	a.Equal(PhaseVictory, g.phase)
}

func TestGame_payOffDebt_requiresCash(t *testing.T) {
	a := assert.New(t)

	g := newTestGame(DifficultyStandard, nil)
	g.phase = PhaseNextDay
	g.state.Cash = 100

	// the option is off the table entirely when the cash isn't there
	a.Equal([]Action{ActionSleep}, g.availableActions())
	a.Error(action(t, g, ActionPayDebt, nil))
}
