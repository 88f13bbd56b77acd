package notify

import "github.com/sirupsen/logrus"

type options struct {
	name string
	log  logrus.FieldLogger
}

// Option configures a Subject.
type Option func(*options)

// WithName names the subject in log lines and wrapped errors.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithLogger enables logging for the subject.
//
// Debug level: attach, detach and close
// Trace level: start and end of every notification pass
// Warn level: callback failures
func WithLogger(log logrus.FieldLogger) Option {
	return func(o *options) {
		o.log = log
	}
}
