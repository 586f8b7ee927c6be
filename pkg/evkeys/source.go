// Package evkeys reads key events straight from the kernel's input
// devices (/dev/input/event*), which works the same under X11 and
// Wayland. The daemon needs read access to the devices, usually by
// running in the input group.
package evkeys

import (
	"errors"
	"fmt"
	"sync"

	evdev "github.com/holoplot/go-evdev"
	"go.uber.org/zap"

	"github.com/focusboard/focusboard/pkg/keys"
)

// ErrNoKeyboards is returned when no readable keyboard device exists.
var ErrNoKeyboards = errors.New("no readable keyboard devices")

// Source multiplexes key events from every keyboard device into one
// stream.
type Source struct {
	devices []*evdev.InputDevice
	events  chan keys.Event
	done    chan struct{}
	log     *zap.SugaredLogger

	wg        sync.WaitGroup
	closeOnce sync.Once
}

// OpenAll opens every input device that looks like a keyboard and
// starts reading from all of them.
func OpenAll(log *zap.SugaredLogger) (*Source, error) {
	paths, err := evdev.ListDevicePaths()
	if err != nil {
		return nil, fmt.Errorf("list input devices: %w", err)
	}

	s := &Source{
		events: make(chan keys.Event, 16),
		done:   make(chan struct{}),
		log:    log,
	}

	for _, p := range paths {
		dev, err := evdev.Open(p.Path)
		if err != nil {
			log.Debugf("open %s: %v", p.Path, err)
			continue
		}
		if !isKeyboard(dev) {
			dev.Close()
			continue
		}

		log.Infof("reading key events from %s (%s)", p.Path, p.Name)
		s.devices = append(s.devices, dev)
	}

	if len(s.devices) == 0 {
		return nil, ErrNoKeyboards
	}

	for _, dev := range s.devices {
		s.wg.Add(1)
		go s.readLoop(dev)
	}

	// the stream ends when the last device reader exits
	go func() {
		s.wg.Wait()
		close(s.events)
	}()

	return s, nil
}

// isKeyboard filters out mice, power buttons and other devices that
// emit EV_KEY without being typeable.
func isKeyboard(dev *evdev.InputDevice) bool {
	hasKeys := false
	for _, t := range dev.CapableTypes() {
		if t == evdev.EV_KEY {
			hasKeys = true
			break
		}
	}
	if !hasKeys {
		return false
	}

	hasA, hasZ := false, false
	for _, code := range dev.CapableEvents(evdev.EV_KEY) {
		switch code {
		case evdev.KEY_A:
			hasA = true
		case evdev.KEY_Z:
			hasZ = true
		}
	}
	return hasA && hasZ
}

func (s *Source) readLoop(dev *evdev.InputDevice) {
	defer s.wg.Done()

	for {
		ev, err := dev.ReadOne()
		if err != nil {
			// expected when Close tears the device down
			s.log.Debugf("device read ended: %v", err)
			return
		}
		if ev.Type != evdev.EV_KEY {
			continue
		}
		k, ok := keyFor(ev.Code)
		if !ok {
			continue
		}

		// Value: 0 release, 1 press, 2 autorepeat
		select {
		case s.events <- keys.Event{Key: k, Press: ev.Value != 0}:
		case <-s.done:
			return
		}
	}
}

// ReadEvent blocks until the next key event from any device. It
// returns an error once the source is closed or every device is
// gone.
func (s *Source) ReadEvent() (keys.Event, error) {
	ev, ok := <-s.events
	if !ok {
		return keys.Event{}, errors.New("key event source closed")
	}
	return ev, nil
}

// Close stops all device readers and unblocks pending ReadEvent
// calls.
func (s *Source) Close() error {
	s.closeOnce.Do(func() {
		close(s.done)
		for _, dev := range s.devices {
			dev.Close()
		}
	})
	return nil
}
