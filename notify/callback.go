package notify

// Callback is anything that can be handed one value of type T.
//
// A non-nil error from Run is a callback failure: it stops the notification
// pass that called it and is returned to whoever changed the value.
type Callback[T any] interface {
	Run(value T) error
}

// CallbackFunc adapts a free function or closure to a Callback.
type CallbackFunc[T any] func(value T) error

func (f CallbackFunc[T]) Run(value T) error {
	return f(value)
}

// ListenerFunc adapts a function that cannot fail to a Callback.
type ListenerFunc[T any] func(value T)

func (f ListenerFunc[T]) Run(value T) error {
	f(value)
	return nil
}

// MethodCallback binds a method to the instance it runs on.
//
//	cb := notify.NewMethodCallback(s, (*Screen).onSpeed)
//
// The owner is not owned by the callback and the binding cannot be changed
// after construction.
type MethodCallback[O, T any] struct {
	owner  *O
	method func(*O, T) error
}

// NewMethodCallback binds method to owner. It panics if either is nil.
func NewMethodCallback[O, T any](owner *O, method func(*O, T) error) *MethodCallback[O, T] {
	if owner == nil {
		panic("notify: method callback without owner")
	}
	if method == nil {
		panic("notify: method callback without method")
	}
	return &MethodCallback[O, T]{
		owner:  owner,
		method: method,
	}
}

// NewMethodListener is NewMethodCallback for methods that cannot fail.
func NewMethodListener[O, T any](owner *O, method func(*O, T)) *MethodCallback[O, T] {
	if method == nil {
		panic("notify: method callback without method")
	}
	return NewMethodCallback(owner, func(o *O, value T) error {
		method(o, value)
		return nil
	})
}

func (c *MethodCallback[O, T]) Run(value T) error {
	return c.method(c.owner, value)
}

// Owner returns the instance the method is bound to.
func (c *MethodCallback[O, T]) Owner() *O {
	return c.owner
}
