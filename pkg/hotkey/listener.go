package hotkey

import (
	"context"
	"fmt"
	"time"

	"github.com/focusboard/focusboard/pkg/keys"
	"go.uber.org/zap"
)

// DefaultCooldown is the minimum time between two fires of the same
// listener. A chord held across autorepeat would otherwise fire on
// every repeat event.
const DefaultCooldown = time.Second

// EventSource delivers key events. ReadEvent blocks until an event is
// available and returns an error only when the source is exhausted.
type EventSource interface {
	ReadEvent() (keys.Event, error)
}

// SpecSource resolves the configured spec for an action. It is
// consulted on every press so that reloaded configurations take
// effect without restarting the listener.
type SpecSource interface {
	Hotkey(action string) (string, bool)
}

type binding struct {
	action string
	run    func() error
}

// Listener tracks held keys and modifier roles from an event source
// and fires bound actions when their chords match. All state is owned
// by the goroutine running Run; nothing here needs locking.
type Listener struct {
	source   EventSource
	specs    SpecSource
	cooldown time.Duration
	log      *zap.SugaredLogger

	actions []binding

	held     keys.Set
	mods     keys.ModifierState
	lastFire time.Time
	now      func() time.Time

	parsed map[string]Binding
	warned map[string]struct{}
}

func NewListener(source EventSource, specs SpecSource, cooldown time.Duration, log *zap.SugaredLogger) *Listener {
	return &Listener{
		source:   source,
		specs:    specs,
		cooldown: cooldown,
		log:      log,
		held:     keys.NewSet(),
		now:      time.Now,
		parsed:   map[string]Binding{},
		warned:   map[string]struct{}{},
	}
}

// Bind registers an action under the name its spec is configured with.
// Must not be called after Run has started.
func (l *Listener) Bind(action string, run func() error) {
	l.actions = append(l.actions, binding{action: action, run: run})
}

// Run consumes the event source until ctx is cancelled or the source
// fails. Actions run on their own goroutine so a slow handler cannot
// stall event processing; their errors are logged, not returned.
func (l *Listener) Run(ctx context.Context) error {
	for {
		resultCh := make(chan keys.Event)
		errCh := make(chan error)
		go func() {
			ev, err := l.source.ReadEvent()
			if err != nil {
				errCh <- err
				return
			}
			resultCh <- ev
		}()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-resultCh:
			l.handle(ev)
		case err := <-errCh:
			return fmt.Errorf("read key event: %w", err)
		}
	}
}

func (l *Listener) handle(ev keys.Event) {
	l.held.Update(ev.Key, ev.Press)
	l.mods.Update(ev.Key, ev.Press)
	if !ev.Press {
		return
	}

	for _, a := range l.actions {
		spec, ok := l.specs.Hotkey(a.action)
		if !ok || spec == "" {
			continue
		}

		b := l.binding(spec)
		if !b.Valid() {
			l.warnOnce(a.action, spec)
			continue
		}
		if !b.Matches(l.held, l.mods.Active()) {
			continue
		}

		now := l.now()
		if now.Sub(l.lastFire) <= l.cooldown {
			l.log.Debugf("hotkey %q suppressed by cooldown", spec)
			continue
		}
		l.lastFire = now

		l.log.Infof("hotkey %q fired for %s", spec, a.action)
		go func(a binding) {
			if err := a.run(); err != nil {
				l.log.Errorf("%s: %v", a.action, err)
			}
		}(a)
	}
}

// binding returns the parsed form of spec, caching by the raw string
// so unchanged specs are parsed once.
func (l *Listener) binding(spec string) Binding {
	b, ok := l.parsed[spec]
	if !ok {
		b = ParseBinding(spec)
		l.parsed[spec] = b
	}
	return b
}

func (l *Listener) warnOnce(action, spec string) {
	key := action + "\x00" + spec
	if _, ok := l.warned[key]; ok {
		return
	}
	l.warned[key] = struct{}{}
	l.log.Warnf("hotkey for %s has no usable trigger key: %q", action, spec)
}
