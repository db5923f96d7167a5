package service

import (
	"context"
	"sync"

	"sabalabor/internal/modules/navigation/domain"
	sessiondto "sabalabor/internal/modules/session/dto"
)

type sessionSource interface {
	Current(ctx context.Context) sessiondto.SessionOutput
	Subscribe(fn func(sessiondto.SessionOutput)) func()
}

// Selector re-evaluates the screen tree on every session change and notifies
// listeners only when the tree actually flips.
type Selector struct {
	mu        sync.Mutex
	tree      domain.Tree
	listeners []func(domain.Tree)
	stop      func()
}

// NewSelector subscribes before reading the current session so a transition
// landing in between is not lost.
func NewSelector(session sessionSource) *Selector {
	s := &Selector{tree: domain.Select(false)}
	s.stop = session.Subscribe(func(out sessiondto.SessionOutput) {
		s.evaluate(out.Authenticated)
	})
	s.evaluate(session.Current(context.Background()).Authenticated)
	return s
}

func (s *Selector) Tree() domain.Tree {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tree
}

func (s *Selector) OnChange(fn func(domain.Tree)) {
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	s.mu.Unlock()
}

func (s *Selector) Close() {
	if s.stop != nil {
		s.stop()
	}
}

func (s *Selector) evaluate(present bool) {
	next := domain.Select(present)
	s.mu.Lock()
	if next == s.tree {
		s.mu.Unlock()
		return
	}
	s.tree = next
	listeners := append([]func(domain.Tree){}, s.listeners...)
	s.mu.Unlock()
	for _, fn := range listeners {
		fn(next)
	}
}
