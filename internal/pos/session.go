package pos

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("order entry session not found")

// EntrySession owns the mutable state of one in-progress order: the cart,
// the customer draft and the payment intent. Each session belongs to a
// single operator; abandoning it discards the draft with nothing persisted.
type EntrySession struct {
	ID            string
	Cart          *Cart
	Customer      Customer
	Type          OrderType
	DepositInput  string
	PaymentMethod PaymentMethod
	Notes         string
	Device        DeviceDetails

	// Advisory autofill state for the operator UI, not part of any Order.
	MatchFound   bool
	VisitSummary string
}

// Totals recomputes the derived monetary fields from the current cart and
// draft on every call.
func (s *EntrySession) Totals() Totals {
	return Calculate(s.Cart.Items(), s.Customer.IsMember, s.DepositInput)
}

type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*EntrySession
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*EntrySession)}
}

func (s *SessionStore) Create() *EntrySession {
	session := &EntrySession{
		ID:            uuid.NewString(),
		Cart:          NewCart(),
		Type:          OrderRepair,
		DepositInput:  "0",
		PaymentMethod: PaymentCash,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = session
	return session
}

func (s *SessionStore) Get(id string) (*EntrySession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

func (s *SessionStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}
