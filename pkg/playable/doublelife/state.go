package doublelife

// PlayerState is the full resource and flag state for the run. All mutation
// goes through Game.apply so the suspicion floor and the suspicion limit are
// enforced after every change.
type PlayerState struct {
	Cash        int `json:"cash"`
	BankBalance int `json:"bankBalance"`
	Debt        int `json:"debt"`
	TotalPaid   int `json:"totalPaid"`
	Suspicion   int `json:"suspicion"`

	Day  int `json:"day"`
	Time int `json:"time"` // minutes from midnight

	Drunk             bool `json:"drunk"`
	BeardShaved       bool `json:"beardShaved"`
	ZoneMode          bool `json:"zoneMode"`
	SkippedPickup     bool `json:"skippedPickup"`
	HasCalledInCasino bool `json:"hasCalledInCasino"`

	LoansTaken       int `json:"loansTaken"`
	HandsPlayedToday int `json:"handsPlayedToday"`
	CallsMadeToday   int `json:"callsMadeToday"`
}

// newPlayerState returns the day-one state for the given options
func newPlayerState(options Options) PlayerState {
	return PlayerState{
		Cash:        options.InitialCash,
		BankBalance: options.InitialBank,
		Debt:        options.InitialDebt,
		Suspicion:   0,
		Day:         1,
		Time:        dayStartTime,
	}
}

// normalize clamps the fields that must not leave their range.
// Suspicion never goes below zero and debt never goes below zero.
func (s *PlayerState) normalize() {
	if s.Suspicion < 0 {
		s.Suspicion = 0
	}

	if s.Debt < 0 {
		s.Debt = 0
	}
}

// startNewDay advances the calendar and resets the per-day flags. Drunk
// deliberately carries over; only coffee sobers the player up.
func (s *PlayerState) startNewDay() {
	s.Day++
	s.Time = dayStartTime
	s.BeardShaved = false
	s.ZoneMode = false
	s.SkippedPickup = false
	s.HasCalledInCasino = false
	s.HandsPlayedToday = 0
	s.CallsMadeToday = 0
}

// TodoItem is one entry on the beginner checklist
type TodoItem struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// newTodoList returns the daily beginner checklist
func newTodoList() []*TodoItem {
	return []*TodoItem{
		{ID: "chore-1", Text: "Make the bed"},
		{ID: "chore-2", Text: "Handle the morning chores"},
		{ID: "routine", Text: "Get cleaned up"},
		{ID: "commute", Text: "Get to the other side of town"},
	}
}

// completeTodo marks the item with the given id as done
func completeTodo(items []*TodoItem, id string) {
	for _, item := range items {
		if item.ID == id {
			item.Completed = true
			return
		}
	}
}
