// Package x11 resolves the focused window and drives the keyboard
// layout on X11 desktops by shelling out to xdotool, xprop and
// xkblayout-state.
package x11

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"

	"go.uber.org/zap"
)

// Client runs the X11 helper tools. The path fields may be pointed at
// absolute locations; by default the tools are resolved from PATH.
type Client struct {
	XdotoolPath        string
	XpropPath          string
	XkblayoutStatePath string

	log *zap.SugaredLogger
}

func New(log *zap.SugaredLogger) *Client {
	return &Client{
		XdotoolPath:        "xdotool",
		XpropPath:          "xprop",
		XkblayoutStatePath: "xkblayout-state",
		log:                log,
	}
}

func (c *Client) run(path string, args ...string) (string, error) {
	var stdout bytes.Buffer

	cmd := exec.Command(path, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stdout

	err := cmd.Run()
	outStr := strings.TrimSpace(stdout.String())
	if err != nil {
		return "", fmt.Errorf("%s: %w, output: %s", path, err, outStr)
	}
	c.log.Debugf("%s %s -> %q", path, strings.Join(args, " "), outStr)

	return outStr, nil
}

func (c *Client) xdotool(args ...string) (string, error) {
	return c.run(c.XdotoolPath, args...)
}

func (c *Client) xprop(args ...string) (string, error) {
	return c.run(c.XpropPath, args...)
}

func (c *Client) xkblayoutState(args ...string) (string, error) {
	return c.run(c.XkblayoutStatePath, args...)
}
