package bot

import "sync"

// step identifies what the conversation is waiting for next.
type step int

const (
	stepFirst step = iota
	stepLast
	stepPhone
	stepEmail
	stepOrg
	stepTitle
	stepLogo
	stepTheme
	stepConfirm
)

// session holds one chat's in-progress answers. Created on /start, cleared
// on /cancel, /clear, restart, and after a card is delivered.
type session struct {
	Step    step
	First   string
	Last    string
	Phone   string
	Email   string
	Org     string
	Title   string
	ThemeID string
	Logo    []byte
}

// sessionStore keeps per-chat sessions keyed by chat id. Safe for concurrent
// update handlers.
type sessionStore struct {
	mu sync.Mutex
	m  map[int64]*session
}

func newSessionStore() *sessionStore {
	return &sessionStore{m: make(map[int64]*session)}
}

// start creates a fresh session for chatID, discarding any previous one.
func (s *sessionStore) start(chatID int64) *session {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := &session{Step: stepFirst}
	s.m[chatID] = sess
	return sess
}

// get returns the active session for chatID, or nil.
func (s *sessionStore) get(chatID int64) *session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m[chatID]
}

// clear removes chatID's session if one exists.
func (s *sessionStore) clear(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, chatID)
}
