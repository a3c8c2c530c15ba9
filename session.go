package dt885x

import "time"

// Interest selects which transport events wake a poll callback.
type Interest uint8

const (
	InterestReadable Interest = 1 << iota
)

// PollFunc is invoked by the host event loop when the transport is
// readable or the poll period expired. Returning false removes the poll.
type PollFunc func(readable bool) bool

// Session is the host's acquisition session and event loop.
type Session interface {
	// SendHeader announces the start of a sample stream from dev.
	SendHeader(dev *Device) error
	// SendEnd announces the end of the stream from dev.
	SendEnd(dev *Device) error
	AddPoll(t Transport, interest Interest, period time.Duration, cb PollFunc) error
	RemovePoll(t Transport) error
}

// Receiver handles one wakeup of an acquiring device. It decodes whatever
// the transport has queued into the device's session state.
type Receiver func(dev *Device, readable bool) bool

// DrainReceiver reads queued bytes into the device receive buffer and
// leaves decoding to whoever inspects the buffer. A full buffer is
// discarded. It stops polling on a transport error.
func DrainReceiver(dev *Device, readable bool) bool {
	if !readable {
		return true
	}
	st := dev.state
	if st.BufLen >= len(st.Buf) {
		st.BufLen = 0
	}
	n, err := dev.transport.ReadNonblocking(st.Buf[st.BufLen:])
	if err != nil {
		return false
	}
	st.BufLen += n
	if n > 0 {
		st.AcqState = AcqRunning
	}
	return true
}
