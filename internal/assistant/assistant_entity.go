package assistant

import (
	"sync"
	"time"

	"gtb-hrms/internal/domain"
)

const (
	RoleUser  = "user"
	RoleModel = "model"

	Greeting = "Hello! I am your AI-powered HR Assistant for Global Trust Bank. How can I help you today?"
	Apology  = "Sorry, I encountered an error. Please try again."
)

type Message struct {
	Role string
	Text string
}

// Options tunes the assistant. Temperature is passed through as given, zero
// included; its default lives in config.
type Options struct {
	Model          string
	Temperature    float32
	Timeout        time.Duration
	MaxRetries     int
	RetryBaseDelay time.Duration
}

func (o Options) withDefaults() Options {
	if o.Model == "" {
		o.Model = "gemini-2.5-flash"
	}
	if o.Timeout <= 0 {
		o.Timeout = 60 * time.Second
	}
	if o.MaxRetries < 0 {
		o.MaxRetries = 0
	}
	if o.RetryBaseDelay <= 0 {
		o.RetryBaseDelay = 500 * time.Millisecond
	}
	return o
}

// session is one principal's conversation. busy guards the single in-flight
// send; messages is only appended to while busy is held.
type session struct {
	mu       sync.Mutex
	role     domain.Role
	chat     Chat
	messages []Message
	busy     bool
}

func newSession(role domain.Role) *session {
	return &session{
		role:     role,
		messages: []Message{{Role: RoleModel, Text: Greeting}},
	}
}

func (s *session) snapshot() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// begin appends the user message and an empty reply slot.
func (s *session) begin(text string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy {
		return false
	}
	s.busy = true
	s.messages = append(s.messages,
		Message{Role: RoleUser, Text: text},
		Message{Role: RoleModel},
	)
	return true
}

func (s *session) end() {
	s.mu.Lock()
	s.busy = false
	s.mu.Unlock()
}

func (s *session) appendFragment(f string) {
	s.mu.Lock()
	s.messages[len(s.messages)-1].Text += f
	s.mu.Unlock()
}

// fail buang balasan parsial, ganti dengan pesan maaf.
func (s *session) fail() Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages[len(s.messages)-1] = Message{Role: RoleModel, Text: Apology}
	return s.messages[len(s.messages)-1]
}

func (s *session) reply() Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.messages[len(s.messages)-1]
}

func (s *session) getChat() Chat {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.chat
}

func (s *session) setChat(c Chat) {
	s.mu.Lock()
	s.chat = c
	s.mu.Unlock()
}

// sessionStore keys conversations by principal and role, so switching role
// starts a fresh conversation with the matching system prompt.
type sessionStore struct {
	mu    sync.Mutex
	items map[string]*session
}

func newSessionStore() *sessionStore {
	return &sessionStore{items: make(map[string]*session)}
}

func sessionKey(actor domain.Actor) string {
	return actor.ID + "|" + string(actor.Role)
}

func (st *sessionStore) get(actor domain.Actor) *session {
	st.mu.Lock()
	defer st.mu.Unlock()
	key := sessionKey(actor)
	s, ok := st.items[key]
	if !ok {
		s = newSession(actor.Role)
		st.items[key] = s
	}
	return s
}

func (st *sessionStore) reset(actor domain.Actor) *session {
	st.mu.Lock()
	defer st.mu.Unlock()
	s := newSession(actor.Role)
	st.items[sessionKey(actor)] = s
	return s
}
