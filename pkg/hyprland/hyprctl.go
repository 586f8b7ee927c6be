package hyprland

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"strings"

	"github.com/focusboard/focusboard/pkg/layoutstore"
)

// Hyprctl issues requests on the command socket, one connection per
// request, the way the hyprctl binary does.
type Hyprctl struct{}

func NewHyprctl() *Hyprctl {
	return &Hyprctl{}
}

func (c *Hyprctl) makeRequest(request, args string) (net.Conn, error) {
	conn, err := connect(hyprctlSocket)
	if err != nil {
		return nil, err
	}

	if _, err := conn.Write([]byte(fmt.Sprintf("%s/%s", args, request))); err != nil {
		conn.Close()
		return nil, fmt.Errorf("write to hyprctl socket: %w", err)
	}

	return conn, nil
}

// Keyboard is one keyboard device as the compositor reports it.
type Keyboard struct {
	Name         string
	Main         bool
	Layouts      []string
	Variants     []string
	ActiveKeymap string
}

type keyboardJSON struct {
	Name         string `json:"name"`
	Main         bool   `json:"main"`
	Layout       string `json:"layout"`
	Variant      string `json:"variant"`
	ActiveKeymap string `json:"active_keymap"`
}

type devicesJSON struct {
	Keyboards []keyboardJSON `json:"keyboards"`
}

func (k keyboardJSON) toKeyboard() Keyboard {
	return Keyboard{
		Name:         k.Name,
		Main:         k.Main,
		Layouts:      splitList(k.Layout),
		Variants:     splitList(k.Variant),
		ActiveKeymap: k.ActiveKeymap,
	}
}

// splitList splits hyprland's comma-joined config lists, trimming the
// whitespace users put after the commas.
func splitList(s string) []string {
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// Keyboards lists the keyboard devices of the running session.
func (c *Hyprctl) Keyboards() ([]Keyboard, error) {
	conn, err := c.makeRequest("devices", "j")
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	var devs devicesJSON
	if err := json.NewDecoder(conn).Decode(&devs); err != nil {
		return nil, fmt.Errorf("unmarshal devices: %w", err)
	}

	out := make([]Keyboard, 0, len(devs.Keyboards))
	for _, k := range devs.Keyboards {
		out = append(out, k.toKeyboard())
	}

	return out, nil
}

// SwitchXkbLayout switches one keyboard to the given layout slot.
func (c *Hyprctl) SwitchXkbLayout(keyboard string, idx int) error {
	conn, err := c.makeRequest(fmt.Sprintf("switchxkblayout %s %d", keyboard, idx), "")
	if err != nil {
		return err
	}
	defer conn.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, conn); err != nil {
		return fmt.Errorf("read response from hyprctl socket: %w", err)
	}

	if strings.TrimSpace(buf.String()) != "ok" {
		return fmt.Errorf("hyprctl: %s", buf.String())
	}

	return nil
}

// ActiveWindowClass asks the compositor for the focused window's
// class. An empty class with nil error means nothing has focus.
func (c *Hyprctl) ActiveWindowClass() (string, error) {
	conn, err := c.makeRequest("activewindow", "j")
	if err != nil {
		return "", err
	}
	defer conn.Close()

	raw, err := io.ReadAll(conn)
	if err != nil {
		return "", fmt.Errorf("read response from hyprctl socket: %w", err)
	}

	return parseActiveWindow(raw)
}

type activeWindowJSON struct {
	Class string `json:"class"`
}

// parseActiveWindow handles the focused-window reply. With no focused
// window the compositor answers with an empty object, or "Invalid" on
// older releases.
func parseActiveWindow(raw []byte) (string, error) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "Invalid" {
		return "", nil
	}

	var win activeWindowJSON
	if err := json.Unmarshal([]byte(trimmed), &win); err != nil {
		return "", fmt.Errorf("unmarshal active window: %w", err)
	}

	return layoutstore.NormalizeClass(win.Class), nil
}
