package session

import (
	"context"
	"sync"
	"time"

	"doublelife-server/pkg/model"
	"doublelife-server/pkg/playable"
	"doublelife-server/pkg/playable/doublelife"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type state int

const (
	stateGameEvent state = iota
	stateGameEnded
)

// Session owns a single run for a single player. The run loop goroutine
// is the only thing that touches the game.
type Session struct {
	// UUID identifies the session
	UUID string

	player     *model.Player
	difficulty doublelife.Difficulty
	game       *doublelife.Game
	created    time.Time

	clients map[*Client]bool
	done    bool
	lock    sync.RWMutex

	execInRunLoop chan func()
	stateChanged  chan state
	close         chan bool

	logMessages []*playable.LogMessage
	recorded    bool
}

// newSession returns a new session with a fresh run at the given difficulty.
// This is called from a blocking state, so it needs to return quickly.
func newSession(player *model.Player, difficulty doublelife.Difficulty) *Session {
	id := uuid.New().String()
	logger := logrus.WithFields(logrus.Fields{
		"session":    id,
		"playerID":   player.ID,
		"difficulty": difficulty,
	})

	return &Session{
		UUID:          id,
		player:        player,
		difficulty:    difficulty,
		game:          doublelife.NewGame(logger, player.ID, doublelife.DefaultOptions(difficulty)),
		created:       time.Now(),
		clients:       make(map[*Client]bool),
		execInRunLoop: make(chan func(), 256),
		stateChanged:  make(chan state, 256),
		close:         make(chan bool),
	}
}

// Player returns the player who owns the session
func (s *Session) Player() *model.Player {
	return s.player
}

// Difficulty returns the difficulty of the run
func (s *Session) Difficulty() doublelife.Difficulty {
	return s.difficulty
}

// Created returns when the session was created
func (s *Session) Created() time.Time {
	return s.created
}

// Done returns true once a terminal result has been recorded
func (s *Session) Done() bool {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.done
}

// Clients returns a slice of connected (at the time) clients
func (s *Session) Clients() []*Client {
	s.lock.RLock()
	defer s.lock.RUnlock()

	clients := make([]*Client, 0, len(s.clients))
	for client := range s.clients {
		clients = append(clients, client)
	}

	return clients
}

// Start starts the run loop
func (s *Session) Start() {
	go s.runLoop()
}

func (s *Session) runLoop() {
	log := logrus.WithFields(logrus.Fields{
		"session":  s.UUID,
		"playerID": s.player.ID,
	})

	log.Debug("creating session run loop")
	for {
		select {
		case st := <-s.stateChanged:
			switch st {
			case stateGameEvent:
				s.sendGameData()
			case stateGameEnded:
				s.sendGameEnded()
			}
		case messages := <-s.game.LogChan():
			s.addLogMessages(messages)
			s.sendLogMessages(messages)
		case fn := <-s.execInRunLoop:
			fn()
		case <-s.close:
			log.Debug("terminating session run loop")
			return
		}
	}
}

// AddClient adds a client
// This method must return quickly
func (s *Session) AddClient(client *Client) {
	s.lock.Lock()
	client.session = s
	s.clients[client] = true
	s.lock.Unlock()

	s.execInRunLoop <- func() {
		if len(s.logMessages) > 0 {
			client.Send(&playable.Response{
				Key:  "logs",
				Data: s.logMessages,
			})
		}

		gs, err := s.game.GetPlayerState(client.player.ID)
		if err != nil {
			logrus.WithError(err).Error("could not get player state")
			return
		}

		client.Send(gs)
	}
}

// RemoveClient removes a client
// This method must return quickly
func (s *Session) RemoveClient(client *Client) (lastClient bool) {
	s.lock.Lock()
	delete(s.clients, client)
	nClients := len(s.clients)
	s.lock.Unlock()

	return nClients == 0
}

// End is called when the session is no longer needed
func (s *Session) End() {
	close(s.close)
}

// ReceivedMessage is called when a client sends a message to the server
func (s *Session) ReceivedMessage(c *Client, msg *playable.PayloadIn) {
	s.execInRunLoop <- func() {
		action, updateState, err := s.game.Action(c.player.ID, msg)
		if err != nil {
			logrus.WithError(err).WithField("client", c.String()).Error("could not perform action")
			c.Send(newErrorResponse(msg.Context, err))
			return
		}

		if action != nil {
			action.Context = msg.Context
			c.Send(action)
		}

		if updateState {
			s.stateChanged <- stateGameEvent
		}

		if details, isOver := s.game.GetEndOfGameDetails(); isOver {
			if !s.recorded {
				s.recorded = true
				s.recordResult(details)
				s.stateChanged <- stateGameEnded
			}
		} else {
			// a reset puts the run back in play
			s.recorded = false
			s.setDone(false)
		}
	}
}

// recordResult persists the outcome of the run
// NOTE: must only be called from the run loop
func (s *Session) recordResult(details *playable.GameOverDetails) {
	ctx := context.Background()

	if _, err := model.CreateGameResult(ctx, s.player.ID, details.Difficulty, details.Outcome,
		details.DaysSurvived, details.TotalPaid, details.Won); err != nil {
		logrus.WithError(err).WithField("session", s.UUID).Error("could not save game result")
	}

	if details.Won {
		if err := s.player.SetCompleted(ctx, details.Difficulty); err != nil {
			logrus.WithError(err).WithField("session", s.UUID).Error("could not save completion")
		}
	}

	s.setDone(true)
}

func (s *Session) setDone(done bool) {
	s.lock.Lock()
	s.done = done
	s.lock.Unlock()
}

// NOTE: must only be called from the run loop
func (s *Session) sendGameData() {
	data, err := s.game.GetPlayerState(s.player.ID)
	if err != nil {
		logrus.WithError(err).Error("could not get player state")
		return
	}

	for _, client := range s.Clients() {
		client.Send(data)
	}
}

// NOTE: must only be called from the run loop
func (s *Session) sendGameEnded() {
	for _, client := range s.Clients() {
		client.Send(&playable.Response{
			Key: "gameEnded",
		})
	}
}

// NOTE: must only be called from the run loop
func (s *Session) sendLogMessages(messages []*playable.LogMessage) {
	response := &playable.Response{
		Key:  "logs",
		Data: messages,
	}

	for _, client := range s.Clients() {
		client.Send(response)
	}
}
