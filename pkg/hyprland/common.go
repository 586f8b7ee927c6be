// Package hyprland talks to a running Hyprland session over its two
// IPC sockets: the event socket for focus changes and the command
// socket for queries and layout switching.
package hyprland

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// ErrNotRunning is returned when no Hyprland session can be found.
var ErrNotRunning = errors.New("hyprland might not be running")

type socketType int

const (
	hyprctlSocket socketType = iota
	eventSocket
)

func (s socketType) filename() string {
	if s == hyprctlSocket {
		return ".socket.sock"
	}
	return ".socket2.sock"
}

// socketPath locates a Hyprland IPC socket. Current releases put the
// sockets under the runtime dir, older ones under /tmp/hypr.
func socketPath(sock socketType) (string, error) {
	signature := os.Getenv("HYPRLAND_INSTANCE_SIGNATURE")
	if signature == "" {
		return "", fmt.Errorf("HYPRLAND_INSTANCE_SIGNATURE is not set: %w", ErrNotRunning)
	}

	runtimePath := filepath.Join(xdg.RuntimeDir, "hypr", signature, sock.filename())
	if _, err := os.Stat(runtimePath); err == nil {
		return runtimePath, nil
	}

	return filepath.Join("/tmp/hypr", signature, sock.filename()), nil
}

func connect(sock socketType) (net.Conn, error) {
	path, err := socketPath(sock)
	if err != nil {
		return nil, fmt.Errorf("get socket path: %w", err)
	}

	conn, err := net.Dial("unix", path)
	if err != nil {
		return nil, fmt.Errorf("dial: %w", err)
	}

	return conn, nil
}
