package dt885x

// Identity of every device this driver finds.
const (
	Vendor = "CEM"
	Model  = "DT-885x"
)

// BufSize is the size of the per-device receive buffer.
const BufSize = 32

// Status is the lifecycle state of a Device.
type Status int

const (
	StatusInactive Status = iota
	StatusActive
	StatusRemoved
)

func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusRemoved:
		return "removed"
	default:
		return "inactive"
	}
}

// ChannelType is the kind of data a channel carries.
type ChannelType int

const (
	ChannelAnalog ChannelType = iota
	ChannelLogic
)

// Channel describes one measurement channel of a device.
type Channel struct {
	Index   int
	Type    ChannelType
	Enabled bool
	Name    string
}

// Tristate is a boolean that may not be known yet.
type Tristate int8

const (
	Unknown Tristate = -1
	Off     Tristate = 0
	On      Tristate = 1
)

func tristate(b bool) Tristate {
	if b {
		return On
	}
	return Off
}

// DataSource selects where samples come from.
type DataSource int

const (
	DataSourceLive DataSource = iota
	DataSourceMemory
)

func (s DataSource) String() string {
	if s == DataSourceMemory {
		return "Memory"
	}
	return "Live"
}

// AcqState tracks the receive side of an acquisition.
type AcqState int

const (
	AcqInit AcqState = iota
	AcqRunning
	AcqStopped
)

// SessionState is the mutable per-device state. It belongs to its Device
// and is written by the dispatcher, the acquisition controller and the
// backend/receiver they call; none of them lock, so callers must not run
// them concurrently on one device.
type SessionState struct {
	LimitSamples        uint64
	NumSamples          uint64
	Recording           Tristate
	ModeFlags           MQFlag
	MeasRangeIndex      int
	DataSource          DataSource
	MemorySourceEnabled bool
	AcqState            AcqState

	Buf    [BufSize]byte
	BufLen int
}

// Device is one detected instrument.
type Device struct {
	Vendor   string
	Model    string
	Channels []Channel

	status    Status
	conn      string
	comm      string
	transport Transport
	state     *SessionState
	polling   bool
}

func newDevice(conn, comm string, t Transport) *Device {
	return &Device{
		Vendor: Vendor,
		Model:  Model,
		Channels: []Channel{
			{Index: 0, Type: ChannelAnalog, Enabled: true, Name: "SPL"},
		},
		status:    StatusInactive,
		conn:      conn,
		comm:      comm,
		transport: t,
		state: &SessionState{
			Recording:      Unknown,
			MeasRangeIndex: 0,
			DataSource:     DataSourceLive,
		},
	}
}

// Status returns the device's lifecycle state.
func (d *Device) Status() Status { return d.status }

// Conn returns the connection descriptor the device was found on.
func (d *Device) Conn() string { return d.conn }

// SerialComm returns the comm parameters used for the connection.
func (d *Device) SerialComm() string { return d.comm }

// Transport returns the device's own connection, opened by Driver.Open.
func (d *Device) Transport() Transport { return d.transport }

// State returns the device's session state.
func (d *Device) State() *SessionState { return d.state }
