// Package notify holds a typed value that tells its observers whenever the
// value is set.
//
// A Subject owns a value and a registry of Observers. An Observer ties one
// Subject to one Callback: it registers itself when it is created and
// deregisters on Close. Setting the value runs every registered callback, in
// registration order, before SetValue returns.
//
//	speed := notify.NewSubject(0)
//	obs, _ := notify.NewObserver(speed, notify.ListenerFunc[int](func(v int) {
//		log.Printf("speed is %d", v)
//	}))
//	defer obs.Close()
//	speed.SetValue(12)
//
// Nothing in this package is safe for concurrent use; a Subject and its
// Observers belong to one goroutine.
package notify

import (
	"github.com/delaneyj/subjects/linkedlist"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Subject is a value holder that notifies its observers on every SetValue.
//
// The zero Subject holds the zero T and has no observers. A Subject must not
// be copied after first use.
type Subject[T any] struct {
	views  linkedlist.List[*Observer[T]]
	value  T
	name   string
	log    *logrus.Entry
	closed bool
}

// NewSubject returns a subject holding initial.
func NewSubject[T any](initial T, opts ...Option) *Subject[T] {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	s := &Subject[T]{
		value: initial,
		name:  o.name,
	}
	if o.log != nil {
		s.log = o.log.WithField("subject", s.label())
	}
	return s
}

func (s *Subject[T]) label() string {
	if s.name == "" {
		return "subject"
	}
	return s.name
}

// Name returns the name given with WithName.
func (s *Subject[T]) Name() string {
	return s.name
}

// Attach registers obs. Attaching the same observer twice registers it twice.
// Observers attach themselves in NewObserver; there is rarely a reason to call
// this directly.
func (s *Subject[T]) Attach(obs *Observer[T]) error {
	if obs == nil {
		return ErrNilObserver
	}
	if s.closed {
		return ErrSubjectClosed
	}

	s.views.Append(obs)
	if s.log != nil {
		s.log.Debugf("attached observer, %d registered", s.views.Len())
	}
	return nil
}

// Detach removes the first registration of obs and reports whether there was one.
func (s *Subject[T]) Detach(obs *Observer[T]) bool {
	ok := s.views.Remove(obs)
	if s.log != nil {
		if ok {
			s.log.Debugf("detached observer, %d registered", s.views.Len())
		} else {
			s.log.Debug("detach of unregistered observer")
		}
	}
	return ok
}

func (s *Subject[T]) detachAll(obs *Observer[T]) {
	n := 0
	for s.views.Remove(obs) {
		n++
	}
	if s.log != nil {
		s.log.Debugf("detached observer from %d slots, %d registered", n, s.views.Len())
	}
}

// Len returns the number of registrations.
func (s *Subject[T]) Len() int {
	return s.views.Len()
}

// Value returns the current value.
func (s *Subject[T]) Value() T {
	return s.value
}

// SetValue stores v and notifies every observer, even when v equals the
// previous value. It returns the first callback error.
func (s *Subject[T]) SetValue(v T) error {
	if s.closed {
		return ErrSubjectClosed
	}
	s.value = v
	return s.Notify()
}

// Update sets the value to fn applied to the current value.
func (s *Subject[T]) Update(fn func(current T) T) error {
	if s.closed {
		return ErrSubjectClosed
	}
	return s.SetValue(fn(s.value))
}

// Notify runs the callback of every registered observer with the current value.
//
// Observers run in registration order. The pass keeps its position on its own
// stack, so a callback may attach, detach or set the value of this subject:
// observers attached during the pass wait for the next one, observers detached
// before their turn are skipped and a nested SetValue runs a complete pass of
// its own. The first callback error ends the pass; later observers are not
// called for this change.
func (s *Subject[T]) Notify() error {
	if s.closed {
		return ErrSubjectClosed
	}
	if s.views.Len() == 0 {
		return nil
	}

	if s.log != nil {
		s.log.Tracef("notifying %d observers", s.views.Len())
		defer s.log.Trace("notified")
	}

	bound := s.views.Generation()
	pos := 0
	for e := s.views.Front(); e != nil && e.Generation() <= bound; e = e.Next() {
		if err := e.Item().Update(); err != nil {
			if s.log != nil {
				s.log.WithError(err).Warnf("observer %d failed", pos)
			}
			return errors.Wrapf(err, "%s: observer %d", s.label(), pos)
		}
		pos++
	}
	return nil
}

// Close destroys the subject. Every registration is dropped and the observers
// that held one report ErrSubjectClosed from then on. A notification pass in
// progress stops after the current callback. Close is idempotent.
func (s *Subject[T]) Close() {
	if s.closed {
		return
	}
	s.closed = true
	n := s.views.Len()
	s.views.Clear()
	if s.log != nil {
		s.log.Debugf("closed, dropped %d registrations", n)
	}
}

// Closed reports whether Close was called.
func (s *Subject[T]) Closed() bool {
	return s.closed
}
