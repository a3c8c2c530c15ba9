package dt885x

import (
	"errors"
	"time"
)

// fakeClock only advances when slept on.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Unix(1700000000, 0)}
}

func (c *fakeClock) Now() time.Time        { return c.now }
func (c *fakeClock) Sleep(d time.Duration) { c.now = c.now.Add(d) }

// fakeTransport delivers stream[i] no earlier than i milliseconds after
// Open, one byte per read, like the instrument's ~1ms byte pacing.
type fakeTransport struct {
	clock    *fakeClock
	stream   []byte
	openErr  error
	readErr  error
	opened   bool
	readOnly bool
	openedAt time.Time
	pos      int
	reads    int
	opens    int
	closes   int
}

func (t *fakeTransport) Open(readOnly bool) error {
	if t.openErr != nil {
		return t.openErr
	}
	t.opened = true
	t.readOnly = readOnly
	t.openedAt = t.clock.Now()
	t.opens++
	return nil
}

func (t *fakeTransport) Close() error {
	t.opened = false
	t.closes++
	return nil
}

func (t *fakeTransport) ReadNonblocking(p []byte) (int, error) {
	t.reads++
	if !t.opened {
		return 0, errors.New("fake transport closed")
	}
	if t.readErr != nil {
		return 0, t.readErr
	}
	if t.pos >= len(t.stream) {
		return 0, nil
	}
	due := t.openedAt.Add(time.Duration(t.pos) * time.Millisecond)
	if t.clock.Now().Before(due) {
		return 0, nil
	}
	p[0] = t.stream[t.pos]
	t.pos++
	return 1, nil
}

// fakeOpener hands out fakeTransports over the same stream and records
// them in creation order.
type fakeOpener struct {
	clock   *fakeClock
	stream  []byte
	openErr error
	made    []*fakeTransport
	conns   []string
	comms   []string
}

func (o *fakeOpener) open(conn, comm string) (Transport, error) {
	t := &fakeTransport{clock: o.clock, stream: o.stream, openErr: o.openErr}
	o.made = append(o.made, t)
	o.conns = append(o.conns, conn)
	o.comms = append(o.comms, comm)
	return t, nil
}

// fakeBackend keeps instrument settings in memory.
type fakeBackend struct {
	recording bool
	freqW     MQFlag
	timeW     MQFlag
	hold      HoldMode
	low, high uint64
	powerOffs int
	err       error
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{freqW: MQFlagFreqWeightA, timeW: MQFlagTimeWeightF, low: 30, high: 130}
}

func (b *fakeBackend) Recording(*Device) (bool, error) { return b.recording, b.err }

func (b *fakeBackend) SetRecording(_ *Device, on bool) error {
	if b.err != nil {
		return b.err
	}
	b.recording = on
	return nil
}

func (b *fakeBackend) WeightFreq(*Device) (MQFlag, error) { return b.freqW, b.err }

func (b *fakeBackend) SetWeightFreq(_ *Device, f MQFlag) error {
	if b.err != nil {
		return b.err
	}
	b.freqW = f
	return nil
}

func (b *fakeBackend) WeightTime(*Device) (MQFlag, error) { return b.timeW, b.err }

func (b *fakeBackend) SetWeightTime(_ *Device, f MQFlag) error {
	if b.err != nil {
		return b.err
	}
	b.timeW = f
	return nil
}

func (b *fakeBackend) HoldMode(*Device) (HoldMode, error) { return b.hold, b.err }

func (b *fakeBackend) SetHoldMode(_ *Device, m HoldMode) error {
	if b.err != nil {
		return b.err
	}
	b.hold = m
	return nil
}

func (b *fakeBackend) MeasurementRange(*Device) (uint64, uint64, error) {
	return b.low, b.high, b.err
}

func (b *fakeBackend) SetMeasurementRange(_ *Device, low, high uint64) error {
	if b.err != nil {
		return b.err
	}
	b.low, b.high = low, high
	return nil
}

func (b *fakeBackend) PowerOff(*Device) error {
	if b.err != nil {
		return b.err
	}
	b.powerOffs++
	return nil
}

var errDuplicatePoll = errors.New("transport already polled")

type fakeSession struct {
	headers   []*Device
	ends      []*Device
	polls     map[Transport]PollFunc
	interest  Interest
	period    time.Duration
	headerErr error
	addErr    error
}

func newFakeSession() *fakeSession {
	return &fakeSession{polls: make(map[Transport]PollFunc)}
}

func (s *fakeSession) SendHeader(dev *Device) error {
	if s.headerErr != nil {
		return s.headerErr
	}
	s.headers = append(s.headers, dev)
	return nil
}

func (s *fakeSession) SendEnd(dev *Device) error {
	s.ends = append(s.ends, dev)
	return nil
}

func (s *fakeSession) AddPoll(t Transport, interest Interest, period time.Duration, cb PollFunc) error {
	if s.addErr != nil {
		return s.addErr
	}
	if _, ok := s.polls[t]; ok {
		return errDuplicatePoll
	}
	s.polls[t] = cb
	s.interest = interest
	s.period = period
	return nil
}

func (s *fakeSession) RemovePoll(t Transport) error {
	delete(s.polls, t)
	return nil
}

// newOpenDevice returns a driver with a fake backend and an active device.
func newOpenDevice(opts ...Option) (*Driver, *Device, *fakeBackend, *fakeOpener) {
	clock := newFakeClock()
	opener := &fakeOpener{clock: clock, stream: []byte{SyncMarker}}
	backend := newFakeBackend()
	base := []Option{
		WithClock(clock),
		WithTransportOpener(opener.open),
		WithBackend(backend),
	}
	drv := New(append(base, opts...)...)
	devs := drv.Scan(WithConn("/dev/ttyFAKE0"))
	if len(devs) != 1 {
		panic("fake scan found no device")
	}
	if err := drv.Open(devs[0]); err != nil {
		panic(err)
	}
	return drv, devs[0], backend, opener
}
