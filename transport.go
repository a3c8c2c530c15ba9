package dt885x

import (
	"io"
	"time"

	"github.com/luhtfiimanal/go-dt885x/serial"
)

// Transport is the byte connection to one instrument.
type Transport interface {
	Open(readOnly bool) error
	Close() error
	// ReadNonblocking returns 0 without waiting when no input is queued.
	ReadNonblocking(p []byte) (int, error)
}

// TransportOpener builds an unopened Transport for a connection
// descriptor and comm-parameter string.
type TransportOpener func(conn, comm string) (Transport, error)

// SerialTransport is the Transport for a local serial port.
type SerialTransport struct {
	cfg  serial.Config
	port *serial.Port
}

var _ io.Writer = (*SerialTransport)(nil)

// OpenSerial is the default TransportOpener. conn is a device path and
// comm a string like "9600/8n1".
func OpenSerial(conn, comm string) (Transport, error) {
	cfg, err := serial.ParseComm(conn, comm)
	if err != nil {
		return nil, err
	}
	return &SerialTransport{cfg: cfg}, nil
}

// Open opens the port; it is a no-op when already open.
func (t *SerialTransport) Open(readOnly bool) error {
	if t.port != nil {
		return nil
	}
	cfg := t.cfg
	cfg.ReadOnly = readOnly
	port, err := serial.Open(cfg)
	if err != nil {
		return err
	}
	t.port = port
	return nil
}

// Close closes the port. A later Open reopens it.
func (t *SerialTransport) Close() error {
	if t.port == nil {
		return nil
	}
	err := t.port.Close()
	t.port = nil
	return err
}

// ReadNonblocking fails with serial.ErrClosed when the port is not open.
func (t *SerialTransport) ReadNonblocking(p []byte) (int, error) {
	if t.port == nil {
		return 0, serial.ErrClosed
	}
	return t.port.ReadNonblocking(p)
}

// Write sends a command to the instrument; the backend uses it.
func (t *SerialTransport) Write(p []byte) (int, error) {
	if t.port == nil {
		return 0, serial.ErrClosed
	}
	return t.port.Write(p)
}

// WaitReadable blocks until input is queued or timeout elapses. Event
// loops fall back to it when the transport has no descriptor.
func (t *SerialTransport) WaitReadable(timeout time.Duration) (bool, error) {
	if t.port == nil {
		return false, serial.ErrClosed
	}
	return t.port.WaitReadable(timeout)
}

// Fd returns the port's file descriptor, or -1 when closed. Event loops
// poll on it.
func (t *SerialTransport) Fd() int {
	if t.port == nil {
		return -1
	}
	return t.port.Fd()
}
