package doublelife

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlayerState_normalize(t *testing.T) {
	a := assert.New(t)

	s := PlayerState{Suspicion: -12, Debt: -300}
	s.normalize()
	a.Equal(0, s.Suspicion)
	a.Equal(0, s.Debt)

	s = PlayerState{Suspicion: 105, Debt: 40}
	s.normalize()
	a.Equal(105, s.Suspicion)
	a.Equal(40, s.Debt)
}

func TestPlayerState_startNewDay(t *testing.T) {
	a := assert.New(t)

	s := newPlayerState(DefaultOptions(DifficultyStandard))
	s.Drunk = true
	s.BeardShaved = true
	s.ZoneMode = true
	s.SkippedPickup = true
	s.HasCalledInCasino = true
	s.HandsPlayedToday = 6
	s.CallsMadeToday = 3
	s.Time = 1300

	s.startNewDay()

	a.Equal(2, s.Day)
	a.Equal(dayStartTime, s.Time)
	a.False(s.BeardShaved)
	a.False(s.ZoneMode)
	a.False(s.SkippedPickup)
	a.False(s.HasCalledInCasino)
	a.Equal(0, s.HandsPlayedToday)
	a.Equal(0, s.CallsMadeToday)

	// only coffee sobers you up
	a.True(s.Drunk)
}

func TestDefaultOptions(t *testing.T) {
	a := assert.New(t)

	beginner := DefaultOptions(DifficultyBeginner)
	a.Equal(400, beginner.InitialCash)
	a.Equal(500, beginner.InitialBank)
	a.Equal(1000, beginner.InitialDebt)
	a.Equal(3, beginner.MaxDays)
	a.True(beginner.Tutorial)
	a.True(beginner.TodoList)

	standard := DefaultOptions(DifficultyStandard)
	a.Equal(600, standard.InitialCash)
	a.Equal(500, standard.InitialBank)
	a.Equal(2500, standard.InitialDebt)
	a.Equal(7, standard.MaxDays)
	a.False(standard.Tutorial)

	hard := DefaultOptions(DifficultyHard)
	a.Equal(0, hard.InitialBank)
	a.Equal(5000, hard.InitialDebt)
}

func TestDifficultyFromString(t *testing.T) {
	a := assert.New(t)

	d, err := DifficultyFromString("Beginner")
	a.NoError(err)
	a.Equal(DifficultyBeginner, d)

	_, err = DifficultyFromString("nightmare")
	a.EqualError(err, "unknown difficulty: nightmare")
}

func TestTodoList(t *testing.T) {
	a := assert.New(t)

	items := newTodoList()
	a.Len(items, 4)

	completeTodo(items, "routine")
	a.True(items[2].Completed)
	a.False(items[0].Completed)

	// unknown ids are ignored
	completeTodo(items, "does-not-exist")
}
