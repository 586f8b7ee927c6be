package hotkey

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/focusboard/focusboard/pkg/keys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type specMap map[string]string

func (m specMap) Hotkey(action string) (string, bool) {
	spec, ok := m[action]
	return spec, ok
}

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time {
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func newTestListener(t *testing.T, specs specMap) (*Listener, *fakeClock, chan string) {
	t.Helper()

	l := NewListener(nil, specs, DefaultCooldown, zaptest.NewLogger(t).Sugar())
	clock := &fakeClock{t: time.Unix(1_700_000_000, 0)}
	l.now = clock.now

	fired := make(chan string, 16)
	l.Bind("add_window", func() error {
		fired <- "add_window"
		return nil
	})
	return l, clock, fired
}

func press(l *Listener, ks ...keys.Key) {
	for _, k := range ks {
		l.handle(keys.Event{Key: k, Press: true})
	}
}

func release(l *Listener, ks ...keys.Key) {
	for _, k := range ks {
		l.handle(keys.Event{Key: k, Press: false})
	}
}

func waitFire(t *testing.T, fired chan string) {
	t.Helper()
	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for action to fire")
	}
}

func assertNoFire(t *testing.T, fired chan string) {
	t.Helper()
	select {
	case <-fired:
		t.Fatal("action fired unexpectedly")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestListenerFiresOnChord(t *testing.T) {
	l, _, fired := newTestListener(t, specMap{"add_window": "ctrl shift q"})

	press(l, keys.CtrlLeft, keys.ShiftLeft)
	assertNoFire(t, fired)

	press(l, keys.Q)
	waitFire(t, fired)
}

func TestListenerRequiresExactModifiers(t *testing.T) {
	l, _, fired := newTestListener(t, specMap{"add_window": "ctrl shift q"})

	// missing shift
	press(l, keys.CtrlLeft, keys.Q)
	assertNoFire(t, fired)
	release(l, keys.CtrlLeft, keys.Q)

	// alt on top of the required set blocks the match
	press(l, keys.AltLeft, keys.CtrlLeft, keys.ShiftLeft, keys.Q)
	assertNoFire(t, fired)

	// releasing the extra modifier is not itself a press, so only
	// the next press of the trigger completes the chord
	release(l, keys.AltLeft)
	assertNoFire(t, fired)
	press(l, keys.Q)
	waitFire(t, fired)
}

func TestListenerCooldown(t *testing.T) {
	l, clock, fired := newTestListener(t, specMap{"add_window": "ctrl shift q"})

	press(l, keys.CtrlLeft, keys.ShiftLeft, keys.Q)
	waitFire(t, fired)

	// an autorepeat 200ms later is suppressed
	clock.advance(200 * time.Millisecond)
	press(l, keys.Q)
	assertNoFire(t, fired)

	// past the cooldown the chord fires again
	clock.advance(900 * time.Millisecond)
	press(l, keys.Q)
	waitFire(t, fired)
}

func TestListenerCooldownUpdatedOnlyOnFire(t *testing.T) {
	l, clock, fired := newTestListener(t, specMap{"add_window": "ctrl shift q"})

	press(l, keys.CtrlLeft, keys.ShiftLeft, keys.Q)
	waitFire(t, fired)

	// suppressed attempts must not push the window forward
	for i := 0; i < 5; i++ {
		clock.advance(201 * time.Millisecond)
		press(l, keys.Q)
	}
	// 1005ms elapsed since the fire, so the last press got through
	waitFire(t, fired)
	assertNoFire(t, fired)
}

func TestListenerRereadsSpecEachPress(t *testing.T) {
	specs := specMap{"add_window": "ctrl q"}
	l, clock, fired := newTestListener(t, specs)

	press(l, keys.CtrlLeft, keys.Q)
	waitFire(t, fired)

	specs["add_window"] = "alt k"
	clock.advance(2 * time.Second)

	release(l, keys.Q)
	press(l, keys.Q)
	assertNoFire(t, fired)

	release(l, keys.CtrlLeft, keys.Q)
	press(l, keys.AltLeft, keys.K)
	waitFire(t, fired)
}

func TestListenerInvalidSpecNeverFires(t *testing.T) {
	for _, spec := range []string{"ctrl shift", "ctrl shift banana", ""} {
		l, _, fired := newTestListener(t, specMap{"add_window": spec})
		press(l, keys.CtrlLeft, keys.ShiftLeft, keys.Q)
		assertNoFire(t, fired)
	}
}

func TestListenerUnboundActionIgnored(t *testing.T) {
	l, _, fired := newTestListener(t, specMap{})
	press(l, keys.CtrlLeft, keys.ShiftLeft, keys.Q)
	assertNoFire(t, fired)
}

type chanSource chan keys.Event

func (c chanSource) ReadEvent() (keys.Event, error) {
	ev, ok := <-c
	if !ok {
		return keys.Event{}, errors.New("source closed")
	}
	return ev, nil
}

func TestListenerRun(t *testing.T) {
	source := make(chanSource)
	specs := specMap{"add_window": "ctrl shift q"}
	l := NewListener(source, specs, DefaultCooldown, zaptest.NewLogger(t).Sugar())

	fired := make(chan string, 1)
	l.Bind("add_window", func() error {
		fired <- "add_window"
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- l.Run(ctx)
	}()

	for _, k := range []keys.Key{keys.CtrlLeft, keys.ShiftLeft, keys.Q} {
		source <- keys.Event{Key: k, Press: true}
	}
	waitFire(t, fired)

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop on cancel")
	}
}

func TestListenerRunReturnsSourceError(t *testing.T) {
	source := make(chanSource)
	close(source)

	l := NewListener(source, specMap{}, DefaultCooldown, zaptest.NewLogger(t).Sugar())
	err := l.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read key event")
}
