// Package session is a minimal single-threaded host for dt885x
// acquisitions: it delivers stream packets to a sink and runs poll
// callbacks on a period or when their transport becomes readable.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sys/unix"

	dt885x "github.com/luhtfiimanal/go-dt885x"
)

// maxWait bounds one poll so Run notices context cancellation.
const maxWait = 50 * time.Millisecond

// ErrDuplicatePoll is returned when a transport is registered twice.
var ErrDuplicatePoll = errors.New("transport already polled")

// PacketType distinguishes stream start from stream end.
type PacketType int

const (
	PacketHeader PacketType = iota
	PacketEnd
)

func (t PacketType) String() string {
	if t == PacketEnd {
		return "end"
	}
	return "header"
}

// Packet is a stream event for one device.
type Packet struct {
	Type   PacketType
	Device *dt885x.Device
}

// Sink receives every packet sent on the session.
type Sink func(Packet)

// fder is implemented by transports backed by a pollable descriptor.
type fder interface {
	Fd() int
}

// waiter is the fallback for transports without a usable descriptor.
type waiter interface {
	WaitReadable(timeout time.Duration) (bool, error)
}

type source struct {
	t        dt885x.Transport
	interest dt885x.Interest
	period   time.Duration
	cb       dt885x.PollFunc
	deadline time.Time
	removed  bool
}

// Loop implements dt885x.Session. It is not safe for concurrent use; all
// calls, including those made from callbacks, happen on the Run goroutine.
type Loop struct {
	log     zerolog.Logger
	sink    Sink
	sources []*source
}

var _ dt885x.Session = (*Loop)(nil)

// New returns a Loop delivering packets to sink, which may be nil.
func New(sink Sink, log zerolog.Logger) *Loop {
	if sink == nil {
		sink = func(Packet) {}
	}
	return &Loop{
		log:  log.With().Str("component", "session").Logger(),
		sink: sink,
	}
}

// SendHeader delivers a header packet for dev to the sink.
func (l *Loop) SendHeader(dev *dt885x.Device) error {
	l.sink(Packet{Type: PacketHeader, Device: dev})
	return nil
}

// SendEnd delivers an end packet for dev to the sink.
func (l *Loop) SendEnd(dev *dt885x.Device) error {
	l.sink(Packet{Type: PacketEnd, Device: dev})
	return nil
}

// AddPoll registers cb to run every period, or earlier when t becomes
// readable. The first run is one period from now.
func (l *Loop) AddPoll(t dt885x.Transport, interest dt885x.Interest, period time.Duration, cb dt885x.PollFunc) error {
	for _, s := range l.sources {
		if s.t == t {
			return ErrDuplicatePoll
		}
	}
	if period <= 0 {
		return fmt.Errorf("add poll: period must be positive, got %s", period)
	}
	l.sources = append(l.sources, &source{
		t:        t,
		interest: interest,
		period:   period,
		cb:       cb,
		deadline: time.Now().Add(period),
	})
	l.log.Debug().Dur("period", period).Msg("poll added")
	return nil
}

// RemovePoll unregisters t. Removing an unknown transport is a no-op.
func (l *Loop) RemovePoll(t dt885x.Transport) error {
	kept := l.sources[:0]
	for _, s := range l.sources {
		if s.t == t {
			s.removed = true
			l.log.Debug().Msg("poll removed")
			continue
		}
		kept = append(kept, s)
	}
	for i := len(kept); i < len(l.sources); i++ {
		l.sources[i] = nil
	}
	l.sources = kept
	return nil
}

// Len returns the number of registered polls.
func (l *Loop) Len() int {
	return len(l.sources)
}

// Run dispatches callbacks until ctx is done or no polls remain.
func (l *Loop) Run(ctx context.Context) error {
	for len(l.sources) > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := l.iterate(); err != nil {
			return err
		}
	}
	return nil
}

func (l *Loop) iterate() error {
	now := time.Now()
	timeout := maxWait
	pfds := make([]unix.PollFd, 0, len(l.sources))
	owner := make([]int, 0, len(l.sources))
	var waiters []int
	for i, s := range l.sources {
		if d := s.deadline.Sub(now); d < timeout {
			timeout = d
		}
		if s.interest&dt885x.InterestReadable == 0 {
			continue
		}
		if f, ok := s.t.(fder); ok && f.Fd() >= 0 {
			pfds = append(pfds, unix.PollFd{Fd: int32(f.Fd()), Events: unix.POLLIN})
			owner = append(owner, i)
		} else if _, ok := s.t.(waiter); ok {
			waiters = append(waiters, i)
		}
	}
	if timeout < 0 {
		timeout = 0
	}

	ready := make([]bool, len(l.sources))
	switch {
	case len(pfds) > 0:
		_, err := unix.Poll(pfds, pollMillis(timeout))
		if err != nil && !errors.Is(err, unix.EINTR) {
			return fmt.Errorf("poll: %w", err)
		}
		for j, pfd := range pfds {
			if pfd.Revents != 0 {
				ready[owner[j]] = true
			}
		}
		l.checkWaiters(waiters, 0, ready)
	case len(waiters) > 0:
		// Block on the first waiter, then check the rest without waiting.
		l.checkWaiters(waiters[:1], timeout, ready)
		l.checkWaiters(waiters[1:], 0, ready)
	default:
		time.Sleep(timeout)
	}

	// Callbacks may add or remove polls; work from a snapshot.
	snapshot := append([]*source(nil), l.sources...)
	now = time.Now()
	for i, s := range snapshot {
		if s.removed || (!ready[i] && now.Before(s.deadline)) {
			continue
		}
		s.deadline = now.Add(s.period)
		if !s.cb(ready[i]) && !s.removed {
			l.RemovePoll(s.t)
		}
	}
	return nil
}

// checkWaiters marks sources readable through WaitReadable. A wait error
// counts as readable so the callback sees it on its next read.
func (l *Loop) checkWaiters(idx []int, timeout time.Duration, ready []bool) {
	for _, i := range idx {
		ok, err := l.sources[i].t.(waiter).WaitReadable(timeout)
		if err != nil {
			l.log.Debug().Err(err).Msg("wait readable")
			ready[i] = true
			continue
		}
		ready[i] = ok
	}
}

// pollMillis converts d to a poll timeout, rounding up so a deadline less
// than a millisecond away does not turn into a busy poll.
func pollMillis(d time.Duration) int {
	return int((d + time.Millisecond - 1) / time.Millisecond)
}
