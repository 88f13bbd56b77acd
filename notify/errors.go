package notify

import "github.com/pkg/errors"

var (
	ErrNilSubject     = errors.New("notify: nil subject")
	ErrNilCallback    = errors.New("notify: nil callback")
	ErrNilObserver    = errors.New("notify: nil observer")
	ErrSubjectClosed  = errors.New("notify: subject closed")
	ErrObserverClosed = errors.New("notify: observer closed")
)
