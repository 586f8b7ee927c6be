package focusboard

import (
	"time"

	"go.uber.org/zap"
)

// DefaultPollInterval is the sampling rate used when none is
// configured.
const DefaultPollInterval = 300 * time.Millisecond

// PollListener turns an on-demand WindowQuerier into a FocusListener
// by sampling on a fixed interval. A failed sample is logged and
// reported as "no window": one bad poll must not kill the reactor.
type PollListener struct {
	querier  WindowQuerier
	interval time.Duration
	log      *zap.SugaredLogger
}

func NewPollListener(querier WindowQuerier, interval time.Duration, log *zap.SugaredLogger) *PollListener {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &PollListener{
		querier:  querier,
		interval: interval,
		log:      log,
	}
}

// NextWindowClass waits one interval, then samples the focused
// window.
func (p *PollListener) NextWindowClass() (string, error) {
	time.Sleep(p.interval)

	class, err := p.querier.ActiveWindowClass()
	if err != nil {
		p.log.Debugf("resolve active window: %v", err)
		return "", nil
	}
	return class, nil
}
