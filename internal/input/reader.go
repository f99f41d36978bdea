package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
)

// Event is a single key transition.
type Event struct {
	Key     Key
	Pressed bool
}

// ParseLine converts one line of the key source into events.
//
//	c      tap: press followed by release
//	+c     press and hold
//	-c     release
//	quit   end of input (also "exit")
//
// Tokens are separated by white space. Unknown tokens are reported in
// err while the valid ones are still returned.
func ParseLine(line string) (events []Event, quit bool, err error) {
	var errs []error
	for _, tok := range strings.Fields(line) {
		switch lower := strings.ToLower(tok); lower {
		case "quit", "exit":
			return events, true, errors.Join(errs...)
		}
		press, release := true, true
		name := tok
		switch tok[0] {
		case '+':
			release = false
			name = tok[1:]
		case '-':
			press = false
			name = tok[1:]
		}
		k, kerr := ParseKey(name)
		if kerr != nil {
			errs = append(errs, kerr)
			continue
		}
		if press {
			events = append(events, Event{Key: k, Pressed: true})
		}
		if release {
			events = append(events, Event{Key: k, Pressed: false})
		}
	}
	return events, false, errors.Join(errs...)
}

// Reader reads key events from a line-oriented source on its own goroutine.
// Events are handed to the game loop through a buffered channel.
type Reader struct {
	src    io.Reader
	events chan Event
	done   chan struct{}
	log    *zap.Logger
}

func NewReader(src io.Reader, queueSize int, log *zap.Logger) *Reader {
	if queueSize < 1 {
		queueSize = 1
	}
	return &Reader{
		src:    src,
		events: make(chan Event, queueSize),
		done:   make(chan struct{}),
		log:    log,
	}
}

// ReadLoop runs in its own goroutine until the source is exhausted or a
// quit token is read. Done is closed when it returns.
func (r *Reader) ReadLoop() {
	defer close(r.done)
	sc := bufio.NewScanner(r.src)
	for sc.Scan() {
		events, quit, err := ParseLine(sc.Text())
		if err != nil {
			r.log.Warn("ignoring unknown keys", zap.Error(err))
		}
		for _, ev := range events {
			select {
			case r.events <- ev:
			default:
				r.log.Warn("key queue full, dropping event",
					zap.Stringer("key", ev.Key),
					zap.Bool("pressed", ev.Pressed),
				)
			}
		}
		if quit {
			r.log.Debug("key source requested quit")
			return
		}
	}
	if err := sc.Err(); err != nil {
		r.log.Error("key source read failed", zap.Error(fmt.Errorf("scan: %w", err)))
	}
}

// Events returns the channel of key events.
func (r *Reader) Events() <-chan Event { return r.events }

// Done is closed once the reader stops.
func (r *Reader) Done() <-chan struct{} { return r.done }
