package notify_test

import (
	"errors"
	"testing"

	"github.com/delaneyj/subjects/notify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockCallback struct {
	mock.Mock
}

func (m *mockCallback) Run(v int) error {
	return m.Called(v).Error(0)
}

type dashboard struct {
	speeds []int
	labels []string
}

func (d *dashboard) onSpeed(v int) error {
	d.speeds = append(d.speeds, v)
	return nil
}

func (d *dashboard) onLabel(v string) {
	d.labels = append(d.labels, v)
}

// observer forwards the current value to its callback
func TestObserverUpdate(t *testing.T) {
	cb := &mockCallback{}
	cb.On("Run", 7).Return(nil).Twice()

	s := notify.NewSubject(7)
	o := mustObserve[int](t, s, cb)
	assert.Same(t, s, o.Subject())
	assert.True(t, o.Alive())

	require.NoError(t, o.Update())
	require.NoError(t, s.Notify())
	cb.AssertExpectations(t)
}

// callback errors come back unwrapped from Update
func TestObserverUpdateError(t *testing.T) {
	boom := errors.New("boom")
	cb := &mockCallback{}
	cb.On("Run", 1).Return(boom).Once()

	s := notify.NewSubject(1)
	o := mustObserve[int](t, s, cb)
	assert.Equal(t, boom, o.Update())
	cb.AssertExpectations(t)
}

// constructor arguments are checked and nothing is attached on failure
func TestNewObserverErrors(t *testing.T) {
	_, err := notify.NewObserver[int](nil, notify.ListenerFunc[int](func(int) {}))
	assert.ErrorIs(t, err, notify.ErrNilSubject)

	s := notify.NewSubject(0)
	_, err = notify.NewObserver[int](s, nil)
	assert.ErrorIs(t, err, notify.ErrNilCallback)
	assert.Equal(t, 0, s.Len())

	assert.ErrorIs(t, s.Attach(nil), notify.ErrNilObserver)
}

// close detaches once and is idempotent
func TestObserverClose(t *testing.T) {
	cb := &mockCallback{}
	s := notify.NewSubject(0)
	o := mustObserve[int](t, s, cb)

	require.NoError(t, o.Close())
	require.NoError(t, o.Close())
	assert.False(t, o.Alive())
	assert.Equal(t, 0, s.Len())
	assert.ErrorIs(t, o.Update(), notify.ErrObserverClosed)

	require.NoError(t, s.SetValue(1))
	cb.AssertNotCalled(t, "Run", mock.Anything)
}

// closing an observer after its subject is a reported lifetime error
func TestObserverCloseAfterSubject(t *testing.T) {
	s := notify.NewSubject(0)
	o := mustObserve[int](t, s, notify.ListenerFunc[int](func(int) {}))

	s.Close()
	assert.ErrorIs(t, o.Close(), notify.ErrSubjectClosed)
	require.NoError(t, o.Close())
}

// an explicit second attach notifies twice, close drops both
func TestDoubleAttach(t *testing.T) {
	cb := &mockCallback{}
	cb.On("Run", 1).Return(nil).Twice()

	s := notify.NewSubject(0)
	o := mustObserve[int](t, s, cb)
	require.NoError(t, s.Attach(o))
	assert.Equal(t, 2, s.Len())

	require.NoError(t, s.SetValue(1))
	cb.AssertExpectations(t)

	require.NoError(t, o.Close())
	assert.Equal(t, 0, s.Len())
	require.NoError(t, s.SetValue(2))
	cb.AssertNumberOfCalls(t, "Run", 2)
}

// method callbacks run on their owner
func TestMethodCallback(t *testing.T) {
	d := &dashboard{}
	speed := notify.NewSubject(0)
	label := notify.NewSubject("")

	speedCb := notify.NewMethodCallback(d, (*dashboard).onSpeed)
	assert.Same(t, d, speedCb.Owner())
	mustObserve[int](t, speed, speedCb)
	mustObserve[string](t, label, notify.NewMethodListener(d, (*dashboard).onLabel))

	require.NoError(t, speed.SetValue(30))
	require.NoError(t, label.SetValue("eco"))
	require.NoError(t, speed.SetValue(50))

	assert.Equal(t, []int{30, 50}, d.speeds)
	assert.Equal(t, []string{"eco"}, d.labels)
}

// method callbacks need an owner and a method
func TestMethodCallbackPanics(t *testing.T) {
	assert.Panics(t, func() {
		notify.NewMethodCallback[dashboard, int](nil, (*dashboard).onSpeed)
	})
	assert.Panics(t, func() {
		notify.NewMethodCallback[dashboard, int](&dashboard{}, nil)
	})
	assert.Panics(t, func() {
		notify.NewMethodListener[dashboard, string](&dashboard{}, nil)
	})
}

// function adapters satisfy Callback
func TestFuncAdapters(t *testing.T) {
	var got []int
	var cb notify.Callback[int] = notify.ListenerFunc[int](func(v int) { got = append(got, v) })
	require.NoError(t, cb.Run(1))

	boom := errors.New("boom")
	cb = notify.CallbackFunc[int](func(v int) error {
		got = append(got, v)
		return boom
	})
	assert.Equal(t, boom, cb.Run(2))
	assert.Equal(t, []int{1, 2}, got)
}
