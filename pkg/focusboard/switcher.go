package focusboard

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// DefaultReloadAge is how old the last config check may get before a
// focus observation triggers a re-read of the store's backing file.
const DefaultReloadAge = 5 * time.Second

// Switcher is the focus reactor: when focus moves to a window class
// with a remembered layout, it switches the keyboard to that layout.
// All state is owned by the goroutine running Watch.
type Switcher struct {
	listener  FocusListener
	layouts   LayoutSwitcher
	store     MappingStore
	reloadAge time.Duration
	log       *zap.SugaredLogger

	lastClass string
}

func NewSwitcher(listener FocusListener, layouts LayoutSwitcher, store MappingStore, log *zap.SugaredLogger) *Switcher {
	return &Switcher{
		listener:  listener,
		layouts:   layouts,
		store:     store,
		reloadAge: DefaultReloadAge,
		log:       log,
	}
}

// Watch consumes focus observations until ctx is cancelled or the
// listener fails. Layout trouble on a single observation is logged
// and the loop keeps going.
func (s *Switcher) Watch(ctx context.Context) error {
	for {
		resultCh := make(chan string)
		errCh := make(chan error)
		go func() {
			class, err := s.listener.NextWindowClass()
			if err != nil {
				errCh <- err
				return
			}
			resultCh <- class
		}()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case class := <-resultCh:
			if err := s.store.ReloadIfStale(s.reloadAge); err != nil {
				s.log.Warnf("reload config: %v", err)
			}
			s.handleFocus(class)
		case err := <-errCh:
			return fmt.Errorf("next window class: %w", err)
		}
	}
}

// handleFocus applies the mapping policy for one observation. The
// last-seen class updates before anything can fail, so a bad switch
// is not retried until focus actually changes again.
func (s *Switcher) handleFocus(class string) {
	if class == "" {
		return
	}
	if class == s.lastClass {
		return
	}
	s.lastClass = class
	s.log.Debugf("focus changed to %q", class)

	want, ok, err := s.store.LayoutFor(class)
	if err != nil {
		s.log.Errorf("look up layout for %q: %v", class, err)
		return
	}
	if !ok {
		return
	}

	current, err := s.layouts.CurrentLayout()
	if err != nil {
		s.log.Warnf("read current layout: %v", err)
		return
	}
	if current == want {
		s.log.Debugf("layout %d already active for %q", want, class)
		return
	}

	s.log.Infof("switching layout to %d for %q", want, class)
	if err := s.layouts.SwitchToLayout(want); err != nil {
		s.log.Errorf("switch layout to %d: %v", want, err)
	}
}
