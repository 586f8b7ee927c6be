package hyprland

import (
	"bufio"
	"fmt"
	"net"
	"strings"

	"github.com/focusboard/focusboard/pkg/layoutstore"
	"go.uber.org/zap"
)

// EventClient consumes the event socket and reports focus changes as
// they happen, no polling involved.
type EventClient struct {
	conn   net.Conn
	reader *bufio.Reader
	log    *zap.SugaredLogger
}

// ConnectEvents opens the event socket of the running session.
func ConnectEvents(log *zap.SugaredLogger) (*EventClient, error) {
	conn, err := connect(eventSocket)
	if err != nil {
		return nil, err
	}

	return &EventClient{
		conn:   conn,
		reader: bufio.NewReader(conn),
		log:    log,
	}, nil
}

// Close unblocks a pending NextWindowClass.
func (c *EventClient) Close() error {
	return c.conn.Close()
}

// NextWindowClass blocks until the next activewindow event and
// returns its window class, normalized. The class is empty when
// focus was lost. Other event types are skipped.
func (c *EventClient) NextWindowClass() (string, error) {
	for {
		line, err := c.readLine()
		if err != nil {
			return "", err
		}

		fields := strings.Split(line, ">>")
		if len(fields) < 2 {
			c.log.Debugf("skipping malformed event line: %q", line)
			continue
		}
		if fields[0] != "activewindow" {
			continue
		}

		// activewindow>>CLASS,TITLE
		class := strings.Split(fields[1], ",")[0]
		return layoutstore.NormalizeClass(class), nil
	}
}

func (c *EventClient) readLine() (string, error) {
	str, err := c.reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("read from hypr socket: %w", err)
	}
	return strings.TrimSuffix(str, "\n"), nil
}
