package notify

import "github.com/pkg/errors"

// Observer is a subscription of one Callback to one Subject.
//
// An Observer is attached from the moment NewObserver returns it until Close.
// It does not own its subject or its callback.
type Observer[T any] struct {
	subj   *Subject[T]
	cb     Callback[T]
	closed bool
}

// NewObserver attaches cb to subj. On error nothing is attached.
func NewObserver[T any](subj *Subject[T], cb Callback[T]) (*Observer[T], error) {
	if subj == nil {
		return nil, ErrNilSubject
	}
	if cb == nil {
		return nil, ErrNilCallback
	}

	o := &Observer[T]{
		subj: subj,
		cb:   cb,
	}
	if err := subj.Attach(o); err != nil {
		return nil, err
	}
	return o, nil
}

// Update runs the callback with the subject's current value.
func (o *Observer[T]) Update() error {
	if o.closed {
		return ErrObserverClosed
	}
	if o.subj.closed {
		return ErrSubjectClosed
	}
	return o.cb.Run(o.subj.value)
}

// Close detaches the observer, including any extra registrations made with
// Subject.Attach. Closing an observer whose subject was closed
// first is a lifetime error and reports ErrSubjectClosed. Close is idempotent.
func (o *Observer[T]) Close() error {
	if o.closed {
		return nil
	}
	o.closed = true
	if o.subj.closed {
		return errors.Wrap(ErrSubjectClosed, "close observer")
	}
	o.subj.detachAll(o)
	return nil
}

// Subject returns the subject the observer was created for.
func (o *Observer[T]) Subject() *Subject[T] {
	return o.subj
}

// Alive reports whether both the observer and its subject are still open.
func (o *Observer[T]) Alive() bool {
	return !o.closed && !o.subj.closed
}
