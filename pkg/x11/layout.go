package x11

import (
	"fmt"
	"strconv"

	"github.com/focusboard/focusboard/pkg/layoutstore"
)

// CurrentLayout asks xkblayout-state for the active layout slot.
func (c *Client) CurrentLayout() (layoutstore.LayoutID, error) {
	out, err := c.xkblayoutState("print", "%c")
	if err != nil {
		return 0, fmt.Errorf("get current layout: %w", err)
	}

	n, err := strconv.ParseUint(out, 10, 8)
	if err != nil {
		return 0, fmt.Errorf("parse layout index %q: %w", out, err)
	}

	return layoutstore.LayoutID(n), nil
}

// SwitchToLayout makes the given slot the active layout.
func (c *Client) SwitchToLayout(layout layoutstore.LayoutID) error {
	if _, err := c.xkblayoutState("set", strconv.Itoa(int(layout))); err != nil {
		return fmt.Errorf("set layout %d: %w", layout, err)
	}
	return nil
}
