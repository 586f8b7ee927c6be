package hyprland

import (
	"errors"
	"fmt"

	"github.com/focusboard/focusboard/pkg/layoutstore"
	"github.com/focusboard/focusboard/pkg/xkb"
)

var (
	ErrNoKeyboard      = errors.New("no keyboard device found")
	ErrUnknownKeymap   = errors.New("active keymap not in xkb registry")
	ErrIndexOutOfRange = errors.New("layout index out of range")
)

// deviceController is the slice of Hyprctl the adapter needs.
type deviceController interface {
	Keyboards() ([]Keyboard, error)
	SwitchXkbLayout(keyboard string, idx int) error
}

// LayoutAdapter drives the main keyboard's layout. Hyprland reports
// the active layout as a pretty name like "Russian", so the XKB
// registry translates between those names and the slot indexes the
// mapping store works with.
type LayoutAdapter struct {
	ctl      deviceController
	registry *xkb.Registry
}

func NewLayoutAdapter(ctl deviceController, registry *xkb.Registry) *LayoutAdapter {
	return &LayoutAdapter{
		ctl:      ctl,
		registry: registry,
	}
}

// mainKeyboard picks the device the compositor marks as main, falling
// back to the first keyboard.
func (a *LayoutAdapter) mainKeyboard() (Keyboard, error) {
	keyboards, err := a.ctl.Keyboards()
	if err != nil {
		return Keyboard{}, fmt.Errorf("get keyboards: %w", err)
	}
	if len(keyboards) == 0 {
		return Keyboard{}, ErrNoKeyboard
	}

	for _, k := range keyboards {
		if k.Main {
			return k, nil
		}
	}

	return keyboards[0], nil
}

// CurrentLayout resolves the main keyboard's active keymap to its
// slot in the configured layout list.
func (a *LayoutAdapter) CurrentLayout() (layoutstore.LayoutID, error) {
	kb, err := a.mainKeyboard()
	if err != nil {
		return 0, err
	}

	layoutCode, variantCode := a.registry.LayoutAndVariantFor(kb.ActiveKeymap)
	if layoutCode == "" {
		return 0, fmt.Errorf("%w: %q", ErrUnknownKeymap, kb.ActiveKeymap)
	}

	for i := range kb.Layouts {
		variant := ""
		if i < len(kb.Variants) {
			variant = kb.Variants[i]
		}
		if kb.Layouts[i] == layoutCode && variant == variantCode {
			return layoutstore.LayoutID(i), nil
		}
	}

	return 0, fmt.Errorf("keymap %q not in layout list of %q", kb.ActiveKeymap, kb.Name)
}

// SwitchToLayout switches the main keyboard to the given slot.
func (a *LayoutAdapter) SwitchToLayout(layout layoutstore.LayoutID) error {
	kb, err := a.mainKeyboard()
	if err != nil {
		return err
	}

	if int(layout) >= len(kb.Layouts) {
		return fmt.Errorf("%w: %d (keyboard %q has %d layouts)",
			ErrIndexOutOfRange, layout, kb.Name, len(kb.Layouts))
	}

	return a.ctl.SwitchXkbLayout(kb.Name, int(layout))
}
