package playable

import (
	"doublelife-server/pkg/deck"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Playable is a game that can be played
type Playable interface {
	// Action performs with a message
	// If playerResponse is not null, that's the response sent directly to the client
	// If updateState is true, it will trigger a state update for the connected client
	Action(playerID int64, message *PayloadIn) (playerResponse *Response, updateState bool, err error)

	// GetPlayerState returns the current state of the game for the player
	GetPlayerState(playerID int64) (*Response, error)

	// GetEndOfGameDetails returns the details after a game is over
	// If the game is still in progress, nil will be returned and the second param will be false
	GetEndOfGameDetails() (gameOverDetails *GameOverDetails, isGameOver bool)

	// Name returns the name of the game
	Name() string

	// LogChan should return a channel that a game will send log messages to
	LogChan() <-chan []*LogMessage
}

// LogKind is the narrative tone of a log message
type LogKind string

// LogKind constants
const (
	LogNeutral  LogKind = "neutral"
	LogGood     LogKind = "good"
	LogBad      LogKind = "bad"
	LogDialogue LogKind = "dialogue"
)

// LogMessage is the format a game should send log messages in.
// Time is the in-game clock in minutes from midnight, not wall time.
type LogMessage struct {
	UUID    string       `json:"uuid"`
	Kind    LogKind      `json:"kind"`
	Cards   []*deck.Card `json:"cards,omitempty"`
	Message string       `json:"message"`
	Time    int          `json:"time"`
	Sent    time.Time    `json:"sent"`
}

// Response is a container to determine who gets the specified message
type Response struct {
	Key     string      `json:"key"`
	Value   string      `json:"value"`
	Data    interface{} `json:"data"`
	Context string      `json:"context"`
}

// OK returns a generic success response
func OK(ctx ...string) *Response {
	res := &Response{
		Key:   "status",
		Value: "OK",
	}

	if len(ctx) == 1 {
		res.Context = ctx[0]
	}

	return res
}

// PayloadIn is the format we expect from the client
type PayloadIn struct {
	Action         string         `json:"action"`
	Subject        string         `json:"subject"`
	AdditionalData AdditionalData `json:"additionalData"`
	// Context will be passed back on any outgoing message
	Context string `json:"context"`
}

// GameOverDetails provides details on how the game ended
type GameOverDetails struct {
	Difficulty   string `json:"difficulty"`
	Outcome      string `json:"outcome"`
	DaysSurvived int    `json:"daysSurvived"`
	TotalPaid    int    `json:"totalPaid"`
	// Won is true only when the debt was cleared
	Won bool `json:"won"`
}

// AdditionalData provides additional data in a payload
type AdditionalData map[string]interface{}

// GetString returns a string for the given key
func (a AdditionalData) GetString(key string) (string, bool) {
	s, ok := a[key].(string)
	return s, ok
}

// GetInt returns an integer value for the given key
func (a AdditionalData) GetInt(key string) (int, bool) {
	floatVal, ok := a[key].(float64)
	if !ok {
		return 0, false
	}

	return int(floatVal), true
}

// GetBool returns a boolean value for the given key
func (a AdditionalData) GetBool(key string) (bool, bool) {
	boolVal, ok := a[key].(bool)
	if !ok {
		return false, false
	}

	return boolVal, true
}

// NewLogMessage returns a new LogMessage with the given tone
// gameTime is minutes from midnight on the current in-game day
func NewLogMessage(kind LogKind, gameTime int, format string, a ...interface{}) *LogMessage {
	return &LogMessage{
		UUID:    uuid.New().String(),
		Kind:    kind,
		Message: fmt.Sprintf(format, a...),
		Time:    gameTime,
		Sent:    time.Now(),
	}
}

// SimpleLogMessage returns a neutral LogMessage
func SimpleLogMessage(gameTime int, format string, a ...interface{}) *LogMessage {
	return NewLogMessage(LogNeutral, gameTime, format, a...)
}

// SimpleLogMessageSlice returns a single log message wrapped in a slice
func SimpleLogMessageSlice(gameTime int, format string, a ...interface{}) []*LogMessage {
	return []*LogMessage{SimpleLogMessage(gameTime, format, a...)}
}
