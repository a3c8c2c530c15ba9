package dt885x

import "fmt"

// MQFlag is a bitset of measurement-quantity flags as reported by the
// instrument protocol.
type MQFlag uint32

const (
	MQFlagMax MQFlag = 1 << iota
	MQFlagMin
	MQFlagFreqWeightA
	MQFlagFreqWeightC
	MQFlagFreqWeightZ
	MQFlagFreqWeightFlat
	MQFlagTimeWeightS
	MQFlagTimeWeightF

	mqFlagsHold       = MQFlagMax | MQFlagMin
	mqFlagsFreqWeight = MQFlagFreqWeightA | MQFlagFreqWeightC | MQFlagFreqWeightZ | MQFlagFreqWeightFlat
	mqFlagsTimeWeight = MQFlagTimeWeightS | MQFlagTimeWeightF
)

// HoldMode is the instrument's single hold setting. hold_max and hold_min
// are both views of it.
type HoldMode int

const (
	HoldNone HoldMode = iota
	HoldMax
	HoldMin
)

func (m HoldMode) String() string {
	switch m {
	case HoldMax:
		return "max"
	case HoldMin:
		return "min"
	default:
		return "none"
	}
}

func (m HoldMode) flag() MQFlag {
	switch m {
	case HoldMax:
		return MQFlagMax
	case HoldMin:
		return MQFlagMin
	default:
		return 0
	}
}

// Backend performs the request/response exchange with the instrument for
// one capability at a time. Implementations own the wire protocol.
type Backend interface {
	Recording(dev *Device) (bool, error)
	SetRecording(dev *Device, on bool) error
	WeightFreq(dev *Device) (MQFlag, error)
	SetWeightFreq(dev *Device, f MQFlag) error
	WeightTime(dev *Device) (MQFlag, error)
	SetWeightTime(dev *Device, f MQFlag) error
	HoldMode(dev *Device) (HoldMode, error)
	SetHoldMode(dev *Device, m HoldMode) error
	MeasurementRange(dev *Device) (low, high uint64, err error)
	SetMeasurementRange(dev *Device, low, high uint64) error
	PowerOff(dev *Device) error
}

var errNoBackend = fmt.Errorf("no capability backend configured: %w", ErrNotApplicable)

// noBackend is used until WithBackend supplies a real one.
type noBackend struct{}

func (noBackend) Recording(*Device) (bool, error)                 { return false, errNoBackend }
func (noBackend) SetRecording(*Device, bool) error                { return errNoBackend }
func (noBackend) WeightFreq(*Device) (MQFlag, error)              { return 0, errNoBackend }
func (noBackend) SetWeightFreq(*Device, MQFlag) error             { return errNoBackend }
func (noBackend) WeightTime(*Device) (MQFlag, error)              { return 0, errNoBackend }
func (noBackend) SetWeightTime(*Device, MQFlag) error             { return errNoBackend }
func (noBackend) HoldMode(*Device) (HoldMode, error)              { return HoldNone, errNoBackend }
func (noBackend) SetHoldMode(*Device, HoldMode) error             { return errNoBackend }
func (noBackend) MeasurementRange(*Device) (uint64, uint64, error) { return 0, 0, errNoBackend }
func (noBackend) SetMeasurementRange(*Device, uint64, uint64) error {
	return errNoBackend
}
func (noBackend) PowerOff(*Device) error { return errNoBackend }
