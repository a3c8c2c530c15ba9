package dt885x

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

const (
	// SyncMarker is the byte the instrument emits between tokens.
	SyncMarker = 0xa5

	// DefaultSerialComm is the instrument's fixed line setting.
	DefaultSerialComm = "9600/8n1"
	// The longest interval between tokens is 23ms.
	DefaultScanBudget   = 25 * time.Millisecond
	DefaultScanInterval = time.Millisecond
	DefaultPollPeriod   = 150 * time.Millisecond
)

// Clock abstracts the monotonic clock and sleep used by discovery.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

type realClock struct{}

func (realClock) Now() time.Time        { return time.Now() }
func (realClock) Sleep(d time.Duration) { time.Sleep(d) }

var errNoSession = errors.New("no host session configured")

// Driver discovers DT-885x instruments and dispatches capability requests
// to them. A Driver and its devices are not safe for concurrent use.
type Driver struct {
	log      zerolog.Logger
	backend  Backend
	session  Session
	opener   TransportOpener
	receiver Receiver
	clock    Clock

	conn         string
	comm         string
	scanBudget   time.Duration
	scanInterval time.Duration
	pollPeriod   time.Duration

	devices []*Device
}

// Option configures a Driver.
type Option func(*Driver)

// WithBackend sets the protocol backend used for instrument settings.
func WithBackend(b Backend) Option { return func(d *Driver) { d.backend = b } }

// WithSession sets the host session acquisitions run in.
func WithSession(s Session) Option { return func(d *Driver) { d.session = s } }

// WithTransportOpener replaces OpenSerial, for example with a network or
// test transport.
func WithTransportOpener(o TransportOpener) Option {
	return func(d *Driver) { d.opener = o }
}

// WithReceiver replaces DrainReceiver as the acquisition callback.
func WithReceiver(r Receiver) Option { return func(d *Driver) { d.receiver = r } }

// WithClock sets the clock discovery times itself with.
func WithClock(c Clock) Option { return func(d *Driver) { d.clock = c } }

// WithLogger sets the logger. Entries carry component=dt885x.
func WithLogger(l zerolog.Logger) Option {
	return func(d *Driver) { d.log = l.With().Str("component", "dt885x").Logger() }
}

// WithDefaultConn sets the connection scanned when Scan gets no WithConn option.
func WithDefaultConn(conn string) Option { return func(d *Driver) { d.conn = conn } }

// WithDefaultSerialComm sets the comm parameters used when Scan gets no
// WithSerialComm option.
func WithDefaultSerialComm(comm string) Option { return func(d *Driver) { d.comm = comm } }

// WithScanBudget sets how long a scan waits for the sync marker.
// Non-positive values keep the default.
func WithScanBudget(b time.Duration) Option {
	return func(d *Driver) {
		if b > 0 {
			d.scanBudget = b
		}
	}
}

// WithPollPeriod sets the acquisition poll period. Non-positive values
// keep the default.
func WithPollPeriod(p time.Duration) Option {
	return func(d *Driver) {
		if p > 0 {
			d.pollPeriod = p
		}
	}
}

// New returns a Driver with the given options applied over the defaults.
func New(opts ...Option) *Driver {
	d := &Driver{
		log:          zerolog.Nop(),
		backend:      noBackend{},
		opener:       OpenSerial,
		receiver:     DrainReceiver,
		clock:        realClock{},
		comm:         DefaultSerialComm,
		scanBudget:   DefaultScanBudget,
		scanInterval: DefaultScanInterval,
		pollPeriod:   DefaultPollPeriod,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Devices returns the devices found by all scans since the last Cleanup.
func (d *Driver) Devices() []*Device {
	out := make([]*Device, len(d.devices))
	copy(out, d.devices)
	return out
}

// Open opens the device's transport read/write and marks it active.
func (d *Driver) Open(dev *Device) error {
	switch dev.status {
	case StatusRemoved:
		return fmt.Errorf("open %s: %w", dev.conn, ErrDeviceRemoved)
	case StatusActive:
		return nil
	}
	if err := dev.transport.Open(false); err != nil {
		return fmt.Errorf("open %s: %w", dev.conn, err)
	}
	dev.status = StatusActive
	d.log.Info().Str("conn", dev.conn).Msg("device opened")
	return nil
}

// Close closes the device's transport and marks it inactive. A running
// acquisition is stopped first.
func (d *Driver) Close(dev *Device) error {
	if dev.status != StatusActive {
		return nil
	}
	var stopErr error
	if dev.polling && d.session != nil {
		stopErr = d.endAcquisition(dev)
	}
	dev.status = StatusInactive
	if err := dev.transport.Close(); err != nil {
		return fmt.Errorf("close %s: %w", dev.conn, errors.Join(stopErr, err))
	}
	if stopErr != nil {
		return fmt.Errorf("close %s: %w", dev.conn, stopErr)
	}
	d.log.Info().Str("conn", dev.conn).Msg("device closed")
	return nil
}

// Cleanup closes and removes every known device. Removed devices cannot
// be opened again.
func (d *Driver) Cleanup() error {
	var errs []error
	for _, dev := range d.devices {
		if err := d.Close(dev); err != nil {
			errs = append(errs, err)
		}
		dev.status = StatusRemoved
	}
	d.devices = nil
	return errors.Join(errs...)
}
