package dt885x

import (
	"fmt"
	"strings"
)

// Key identifies one capability of the driver or of a device.
type Key int

const (
	KeyInvalid Key = iota
	KeyConn
	KeySoundLevelMeter
	KeyScanOptions
	KeyDeviceOptions
	KeyContinuous
	KeyLimitSamples
	KeyDatalog
	KeyWeightFreq
	KeyWeightTime
	KeyHoldMax
	KeyHoldMin
	KeyMeasurementRange
	KeyPowerOff
	KeyDataSource
	numKeys
)

var keyNames = [numKeys]string{
	KeyInvalid:          "invalid",
	KeyConn:             "conn",
	KeySoundLevelMeter:  "sound_level_meter",
	KeyScanOptions:      "scan_options",
	KeyDeviceOptions:    "device_options",
	KeyContinuous:       "continuous",
	KeyLimitSamples:     "limit_samples",
	KeyDatalog:          "datalog",
	KeyWeightFreq:       "weight_freq",
	KeyWeightTime:       "weight_time",
	KeyHoldMax:          "hold_max",
	KeyHoldMin:          "hold_min",
	KeyMeasurementRange: "measurement_range",
	KeyPowerOff:         "power_off",
	KeyDataSource:       "data_source",
}

func (k Key) String() string {
	if k < 0 || k >= numKeys {
		return fmt.Sprintf("key(%d)", int(k))
	}
	return keyNames[k]
}

// ParseKey returns the key with the given name.
func ParseKey(name string) (Key, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k := KeyConn; k < numKeys; k++ {
		if keyNames[k] == name {
			return k, nil
		}
	}
	return KeyInvalid, fmt.Errorf("unknown key %q: %w", name, ErrNotApplicable)
}

// Scope says whether a key applies driver-wide or to one device.
type Scope int

const (
	ScopeDriver Scope = iota
	ScopeDevice
)

func (s Scope) String() string {
	if s == ScopeDevice {
		return "device"
	}
	return "driver"
}

// Op is a set of operations a capability supports.
type Op uint8

const (
	OpGet Op = 1 << iota
	OpSet
	OpList
)

func (o Op) String() string {
	var parts []string
	if o&OpGet != 0 {
		parts = append(parts, "get")
	}
	if o&OpSet != 0 {
		parts = append(parts, "set")
	}
	if o&OpList != 0 {
		parts = append(parts, "list")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// Capability is one registry entry: a key and the operations it supports.
type Capability struct {
	Key Key
	Ops Op
}

// Supports reports whether every operation in op is supported.
func (c Capability) Supports(op Op) bool {
	return op != 0 && c.Ops&op == op
}

func (c Capability) String() string {
	return c.Key.String() + "(" + c.Ops.String() + ")"
}

var (
	scanOptions = []Key{
		KeyConn,
	}

	driverOptions = []Key{
		KeySoundLevelMeter,
	}

	deviceOptions = []Capability{
		{KeyContinuous, 0},
		{KeyLimitSamples, OpGet | OpSet},
		{KeyWeightFreq, OpGet | OpSet | OpList},
		{KeyWeightTime, OpGet | OpSet | OpList},
		{KeyMeasurementRange, OpGet | OpSet | OpList},
		{KeyDatalog, OpGet | OpSet},
		{KeyHoldMax, OpGet | OpSet},
		{KeyHoldMin, OpGet | OpSet},
		{KeyPowerOff, OpGet | OpSet},
		{KeyDataSource, OpGet | OpSet | OpList},
	}

	// Keys listable without a device.
	driverScope = []Capability{
		{KeyScanOptions, OpList},
		{KeyDeviceOptions, OpList},
	}
)

// Lookup returns the registry entry for key in scope.
func Lookup(scope Scope, key Key) (Capability, bool) {
	table := driverScope
	if scope == ScopeDevice {
		if key == KeyDeviceOptions {
			return Capability{KeyDeviceOptions, OpList}, true
		}
		table = deviceOptions
	}
	for _, c := range table {
		if c.Key == key {
			return c, true
		}
	}
	return Capability{}, false
}

func checkOp(scope Scope, key Key, op Op) error {
	c, ok := Lookup(scope, key)
	if !ok {
		return fmt.Errorf("%s %s at %s scope: %w", op, key, scope, ErrNotApplicable)
	}
	if !c.Supports(op) {
		return fmt.Errorf("%s %s: supports %s: %w", op, key, c.Ops, ErrNotApplicable)
	}
	return nil
}

// Value domains for the enumerable keys.
var (
	weightFreqs = []string{"A", "C"}
	weightTimes = []string{"F", "S"}
	measRanges  = []Range{
		{30, 130},
		{30, 80},
		{50, 100},
		{80, 130},
	}
	dataSources = []string{"Live", "Memory"}
)

func weightFreqFlag(s string) (MQFlag, bool) {
	switch s {
	case "A":
		return MQFlagFreqWeightA, true
	case "C":
		return MQFlagFreqWeightC, true
	}
	return 0, false
}

func weightTimeFlag(s string) (MQFlag, bool) {
	switch s {
	case "F":
		return MQFlagTimeWeightF, true
	case "S":
		return MQFlagTimeWeightS, true
	}
	return 0, false
}

func measRangeIndex(r Range) (int, bool) {
	for i, mr := range measRanges {
		if mr == r {
			return i, true
		}
	}
	return 0, false
}
