// Package session owns the single interaction state shown to a user and
// drives its transitions: Idle, then Loading on every submission, then
// Success or Failed when that submission completes.
package session

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/jonathan/resume-tailor/internal/logger"
	"github.com/jonathan/resume-tailor/internal/tailor"
	"github.com/jonathan/resume-tailor/internal/types"
	"github.com/rs/zerolog"
)

// subscriberBuffer is the per-subscriber channel capacity. Transitions are
// dropped for a subscriber whose buffer is full.
const subscriberBuffer = 16

// Tailorer performs one backend request. *tailor.Client satisfies it.
type Tailorer interface {
	Tailor(ctx context.Context, req types.TailorRequest) (*types.TailorResult, error)
}

// Option customizes a Session.
type Option func(*Session)

// WithDiscardStale drops completions of requests that have been superseded by
// a newer submission. Without it the last response to arrive wins.
func WithDiscardStale() Option {
	return func(s *Session) {
		s.discardStale = true
	}
}

// WithLogger sets the session's logger.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Session) {
		s.log = l
	}
}

// WithIDGenerator replaces the request id source.
func WithIDGenerator(gen func() string) Option {
	return func(s *Session) {
		s.newID = gen
	}
}

// Session is safe for concurrent use.
type Session struct {
	client       Tailorer
	discardStale bool
	newID        func() string
	log          zerolog.Logger

	mu          sync.Mutex
	state       tailor.State
	current     string // request id of the latest submission
	subscribers map[int]chan tailor.State
	nextSubID   int
}

// New creates a Session in the Idle state.
func New(client Tailorer, opts ...Option) *Session {
	s := &Session{
		client:      client,
		newID:       func() string { return uuid.NewString() },
		log:         logger.Logger,
		state:       tailor.Idle{},
		subscribers: make(map[int]chan tailor.State),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With().Str("component", "session").Logger()
	return s
}

// State returns the current state.
func (s *Session) State() tailor.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Submit clears any previous result or error and runs one submission.
// Invalid input fails immediately without a request. Otherwise the session
// moves to Loading before the request is sent and to Success or Failed when
// it completes. The returned state is the outcome of this submission, which
// may differ from State() if another submission finished later.
func (s *Session) Submit(ctx context.Context, resume, jobDescription, roleTitle string) tailor.State {
	req, err := tailor.NewRequest(resume, jobDescription, roleTitle)
	if err != nil {
		failed := tailor.Fail(err)
		s.mu.Lock()
		s.current = ""
		s.setLocked(failed)
		s.mu.Unlock()
		return failed
	}

	id := s.newID()
	s.mu.Lock()
	s.current = id
	s.setLocked(tailor.Loading{RequestID: id})
	s.mu.Unlock()

	reqLog := s.log.With().Str("request_id", id).Logger()
	reqLog.Info().Msg("submission started")

	result, err := s.client.Tailor(ctx, req)
	outcome := tailor.Outcome(result, err)
	if err != nil {
		reqLog.Warn().Err(err).Str("kind", string(tailor.KindOf(err))).Msg("submission failed")
	} else {
		reqLog.Info().Msg("submission succeeded")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.discardStale && s.current != id {
		reqLog.Debug().Str("current_request_id", s.current).Msg("discarding stale response")
		return outcome
	}
	s.setLocked(outcome)
	return outcome
}

// Subscribe returns a channel receiving every subsequent transition, and a
// function that unsubscribes and closes the channel.
func (s *Session) Subscribe() (<-chan tailor.State, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSubID
	s.nextSubID++
	ch := make(chan tailor.State, subscriberBuffer)
	s.subscribers[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.subscribers, id)
			close(ch)
		})
	}
	return ch, cancel
}

// setLocked stores st and fans it out. s.mu must be held.
func (s *Session) setLocked(st tailor.State) {
	s.state = st
	for id, ch := range s.subscribers {
		select {
		case ch <- st:
		default:
			s.log.Warn().Int("subscriber", id).Str("status", string(st.Status())).Msg("subscriber buffer full, dropping transition")
		}
	}
}
