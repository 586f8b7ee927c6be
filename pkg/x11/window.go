package x11

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/focusboard/focusboard/pkg/layoutstore"
)

// ErrNoWindowClass is returned when the focused window carries no
// usable WM_CLASS property.
var ErrNoWindowClass = errors.New("window has no usable WM_CLASS")

var wmClassRe = regexp.MustCompile(`WM_CLASS.*?"[^"]*",\s*"([^"]*)"`)

// ActiveWindowClass resolves the focused window id with xdotool and
// extracts the class half of its WM_CLASS property, normalized.
func (c *Client) ActiveWindowClass() (string, error) {
	windowID, err := c.xdotool("getactivewindow")
	if err != nil {
		return "", fmt.Errorf("get active window: %w", err)
	}

	props, err := c.xprop("-id", windowID, "WM_CLASS")
	if err != nil {
		return "", fmt.Errorf("read WM_CLASS: %w", err)
	}

	class, ok := ParseWMClass(props)
	if !ok {
		return "", ErrNoWindowClass
	}

	return layoutstore.NormalizeClass(class), nil
}

// ParseWMClass extracts the class name, the second string, from an
// xprop WM_CLASS line such as:
//
//	WM_CLASS(STRING) = "Navigator", "firefox"
func ParseWMClass(props string) (string, bool) {
	m := wmClassRe.FindStringSubmatch(props)
	if m == nil {
		return "", false
	}
	return m[1], true
}
