package verify

import (
	"sync"
	"time"
)

// Flow identifies one of the guided verification journeys.
type Flow int

const (
	FlowDerivVIP Flow = iota
	FlowMentorship
	FlowCurrenciesOcta
	FlowCurrenciesVantage
)

// Category returns the ticket category a completed flow materializes into.
func (f Flow) Category() string {
	switch f {
	case FlowDerivVIP:
		return "Deriv VIP"
	case FlowMentorship:
		return "Free Mentorship"
	case FlowCurrenciesOcta, FlowCurrenciesVantage:
		return "Currencies VIP"
	}
	return "Unknown"
}

// Broker returns the broker name for the currencies flows.
func (f Flow) Broker() string {
	switch f {
	case FlowCurrenciesOcta:
		return "OctaFX"
	case FlowCurrenciesVantage:
		return "Vantage"
	}
	return ""
}

// Step is the current state of a verification session. The two terminal
// outcomes (success, abort) are not represented: reaching either destroys
// the session instead of storing a step.
type Step int

const (
	StepAwaitAccountConfirm Step = iota
	StepAwaitCreationDate
	StepAwaitAffiliateCode
	StepAwaitPartnerConfirm
	StepAwaitProofWhitelisted
	StepAwaitProofPartner
	StepAwaitDepositAmount
	StepAwaitCodeOrDone
	StepAwaitProof
)

func (s Step) String() string {
	switch s {
	case StepAwaitAccountConfirm:
		return "await_account_confirm"
	case StepAwaitCreationDate:
		return "await_creation_date"
	case StepAwaitAffiliateCode:
		return "await_affiliate_code"
	case StepAwaitPartnerConfirm:
		return "await_partner_confirm"
	case StepAwaitProofWhitelisted:
		return "await_proof_whitelisted"
	case StepAwaitProofPartner:
		return "await_proof_partner"
	case StepAwaitDepositAmount:
		return "await_deposit_amount"
	case StepAwaitCodeOrDone:
		return "await_code_or_done"
	case StepAwaitProof:
		return "await_proof"
	}
	return "unknown"
}

// Fields holds the data collected so far. Values are only ever added,
// never removed, while a session is alive.
type Fields struct {
	CreationDate        time.Time
	AffiliateCode       string
	DepositAmount       float64
	PartnerTagConfirmed bool
}

// Session tracks one user's progress through a flow.
type Session struct {
	Flow      Flow
	Step      Step
	Fields    Fields
	UpdatedAt time.Time
}

// SessionStore is the per-user session abstraction. Acquire/Release bound a
// mutual-exclusion scope around a single user's read-modify-write; sessions
// for different users are fully independent.
type SessionStore interface {
	Acquire(userID int64)
	Release(userID int64)
	Get(userID int64) (*Session, bool)
	Put(userID int64, sess *Session)
	Delete(userID int64)
}

type userSlot struct {
	mu   sync.Mutex
	sess *Session
}

// MemoryStore is a concurrent in-memory SessionStore with a TTL for
// abandoned sessions. A zero TTL disables expiry.
type MemoryStore struct {
	mu    sync.Mutex
	ttl   time.Duration
	users map[int64]*userSlot
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:   ttl,
		users: make(map[int64]*userSlot),
	}
}

func (s *MemoryStore) slot(userID int64) *userSlot {
	s.mu.Lock()
	defer s.mu.Unlock()
	slot, ok := s.users[userID]
	if !ok {
		slot = &userSlot{}
		s.users[userID] = slot
	}
	return slot
}

// Acquire locks the user's session scope. It must be paired with Release.
// The slot is revalidated after locking: the sweeper may have removed it
// from the map before the lock was taken, in which case a replacement slot
// exists and the lock must be retried on it.
func (s *MemoryStore) Acquire(userID int64) {
	for {
		slot := s.slot(userID)
		slot.mu.Lock()
		s.mu.Lock()
		live := s.users[userID] == slot
		s.mu.Unlock()
		if live {
			return
		}
		slot.mu.Unlock()
	}
}

func (s *MemoryStore) Release(userID int64) {
	s.slot(userID).mu.Unlock()
}

// Get returns the user's session. An expired session is dropped and
// reported as absent.
func (s *MemoryStore) Get(userID int64) (*Session, bool) {
	slot := s.slot(userID)
	if slot.sess == nil {
		return nil, false
	}
	if s.ttl > 0 && time.Since(slot.sess.UpdatedAt) > s.ttl {
		slot.sess = nil
		return nil, false
	}
	return slot.sess, true
}

func (s *MemoryStore) Put(userID int64, sess *Session) {
	sess.UpdatedAt = time.Now()
	s.slot(userID).sess = sess
}

func (s *MemoryStore) Delete(userID int64) {
	s.slot(userID).sess = nil
}

// Sweep removes expired and cleared sessions. Slots currently locked by an
// in-flight transition are skipped and picked up on the next run. A slot is
// removed from the map only while its lock is held, so a concurrent Acquire
// either blocks until the removal is done (and then retries on a fresh
// slot) or holds the lock first, which makes TryLock fail here.
func (s *MemoryStore) Sweep() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for userID, slot := range s.users {
		if !slot.mu.TryLock() {
			continue
		}
		if slot.sess == nil ||
			(s.ttl > 0 && time.Since(slot.sess.UpdatedAt) > s.ttl) {
			delete(s.users, userID)
		}
		slot.mu.Unlock()
	}
}

// Len returns the number of live sessions.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, slot := range s.users {
		if slot.sess != nil {
			n++
		}
	}
	return n
}
