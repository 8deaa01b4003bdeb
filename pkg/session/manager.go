package session

import (
	"sync"

	"doublelife-server/pkg/model"
	"doublelife-server/pkg/playable/doublelife"

	"github.com/sirupsen/logrus"
)

// Manager is responsible for dispatching players to their sessions
type Manager struct {
	lock       sync.RWMutex
	sessions   map[string]*Session
	connect    chan *Client
	disconnect chan *Client
}

// NewManager returns a new dispatch object
func NewManager() *Manager {
	return &Manager{
		sessions:   make(map[string]*Session),
		connect:    make(chan *Client, 256),
		disconnect: make(chan *Client, 256),
	}
}

// Start starts the manager run loop
func (m *Manager) Start() {
	go m.runLoop()
}

func (m *Manager) runLoop() {
	for {
		select {
		case client := <-m.connect:
			logrus.WithField("player", client.String()).Debug("client connected")
			client.session.AddClient(client)
		case client := <-m.disconnect:
			logrus.WithField("player", client.String()).Debug("client disconnected")

			session := client.session
			if session.RemoveClient(client) && session.Done() {
				// the run is over and recorded; nobody is coming back
				session.End()
				m.remove(session.UUID)
			}
		}
	}
}

// CreateSession starts a new run for the player at the given difficulty
func (m *Manager) CreateSession(player *model.Player, difficulty doublelife.Difficulty) (*Session, error) {
	if err := player.CanPlay(difficulty.String()); err != nil {
		return nil, err
	}

	s := newSession(player, difficulty)
	s.Start()

	m.lock.Lock()
	m.sessions[s.UUID] = s
	m.lock.Unlock()

	return s, nil
}

// GetSession returns the session with the given UUID
func (m *Manager) GetSession(uuid string) (*Session, bool) {
	m.lock.RLock()
	defer m.lock.RUnlock()

	s, ok := m.sessions[uuid]
	return s, ok
}

func (m *Manager) remove(uuid string) {
	m.lock.Lock()
	delete(m.sessions, uuid)
	m.lock.Unlock()
}

// ClientConnected is called when a client connects to the server
func (m *Manager) ClientConnected(client *Client) {
	m.connect <- client
}

// ClientDisconnected is called when a client disconnects from the server
func (m *Manager) ClientDisconnected(client *Client) {
	m.disconnect <- client
}
