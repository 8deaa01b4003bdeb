package doublelife

import (
	"doublelife-server/pkg/deck"
	"doublelife-server/pkg/playable"
	"doublelife-server/pkg/playable/blackjack"
)

// tableState is the client's view of the live table. The dealer's hole
// card stays hidden until the hand resolves.
type tableState struct {
	State         blackjack.State   `json:"state"`
	Wager         int               `json:"wager"`
	PlayerHand    deck.Hand         `json:"playerHand"`
	PlayerScore   int               `json:"playerScore"`
	DealerHand    deck.Hand         `json:"dealerHand"`
	DealerScore   int               `json:"dealerScore"`
	ZoneHandsLeft int               `json:"zoneHandsLeft"`
	LastResult    *blackjack.Result `json:"lastResult,omitempty"`
}

// tutorialState is the client's view of the scripted table
type tutorialState struct {
	HandNumber     int       `json:"handNumber"`
	HandCount      int       `json:"handCount"`
	Wager          int       `json:"wager"`
	PlayerHand     deck.Hand `json:"playerHand"`
	DealerHand     deck.Hand `json:"dealerHand"`
	ExpectedAction string    `json:"expectedAction"`
}

// gameState is the full snapshot sent to the client
type gameState struct {
	Difficulty       Difficulty             `json:"difficulty"`
	MaxDays          int                    `json:"maxDays"`
	Phase            Phase                  `json:"phase"`
	Player           PlayerState            `json:"player"`
	AvailableActions []Action               `json:"availableActions"`
	Table            *tableState            `json:"table,omitempty"`
	Tutorial         *tutorialState         `json:"tutorial,omitempty"`
	Event            *InteractionEvent      `json:"event,omitempty"`
	CallActive       bool                   `json:"callActive"`
	SecondChore      string                 `json:"secondChore"`
	Todo             []*TodoItem            `json:"todo,omitempty"`
	Log              []*playable.LogMessage `json:"log"`
}

// GetPlayerState returns the current state of the game for the player
func (g *Game) GetPlayerState(playerID int64) (*playable.Response, error) {
	state := &gameState{
		Difficulty:       g.options.Difficulty,
		MaxDays:          g.options.MaxDays,
		Phase:            g.phase,
		Player:           g.state,
		AvailableActions: g.availableActions(),
		Event:            g.event,
		CallActive:       g.callActive,
		SecondChore:      g.secondChore,
		Todo:             g.todo,
		Log:              g.logs,
	}

	if g.casino != nil {
		state.Table = g.tableState()
	}

	if g.tutorial != nil {
		state.Tutorial = &tutorialState{
			HandNumber:     g.tutorial.HandNumber(),
			HandCount:      g.tutorial.HandCount(),
			Wager:          g.tutorial.Wager(),
			PlayerHand:     g.tutorial.PlayerHand(),
			DealerHand:     g.tutorial.DealerHand(),
			ExpectedAction: g.tutorial.ExpectedAction(),
		}
	}

	return &playable.Response{
		Key:   "game",
		Value: g.Name(),
		Data:  state,
	}, nil
}

func (g *Game) tableState() *tableState {
	ts := &tableState{
		State:         g.casino.State(),
		Wager:         g.casino.Wager(),
		PlayerHand:    g.casino.PlayerHand(),
		PlayerScore:   g.casino.PlayerHand().BlackjackScore(),
		ZoneHandsLeft: g.casino.ZoneHandsLeft(),
		LastResult:    g.casino.LastResult(),
	}

	if g.casino.State() == blackjack.StatePlaying {
		if up := g.casino.DealerUpCard(); up != nil {
			ts.DealerHand = deck.Hand{up}
		}
	} else {
		ts.DealerHand = g.casino.DealerHand()
		ts.DealerScore = ts.DealerHand.BlackjackScore()
	}

	return ts
}
