package dt885x

import "fmt"

// addressDevice validates addressing shared by Get and Set: a nil device
// may only name driver-scope keys.
func addressDevice(op Op, key Key, dev *Device) error {
	if dev != nil {
		return nil
	}
	if _, ok := Lookup(ScopeDevice, key); ok {
		return fmt.Errorf("%s %s: no device: %w", op, key, ErrInvalidArgument)
	}
	if err := checkOp(ScopeDriver, key, op); err != nil {
		return err
	}
	return fmt.Errorf("%s %s: %w", op, key, ErrNotApplicable)
}

// ConfigGet returns the current value of key. Driver-scope keys are
// addressed with a nil device.
func (d *Driver) ConfigGet(key Key, dev *Device) (Value, error) {
	d.log.Debug().Stringer("key", key).Str("op", "get").Msg("config")

	if err := addressDevice(OpGet, key, dev); err != nil {
		return Value{}, err
	}
	if err := checkOp(ScopeDevice, key, OpGet); err != nil {
		return Value{}, err
	}

	st := dev.state
	switch key {
	case KeyLimitSamples:
		return Uint64Value(st.LimitSamples), nil
	case KeyDatalog:
		on, err := d.backend.Recording(dev)
		if err != nil {
			return Value{}, err
		}
		st.Recording = tristate(on)
		return BoolValue(on), nil
	case KeyWeightFreq:
		f, err := d.backend.WeightFreq(dev)
		if err != nil {
			return Value{}, err
		}
		switch f {
		case MQFlagFreqWeightA:
			return StringValue("A"), nil
		case MQFlagFreqWeightC:
			return StringValue("C"), nil
		}
		return Value{}, fmt.Errorf("get %s: flags 0x%x: %w", key, uint32(f), ErrProtocol)
	case KeyWeightTime:
		f, err := d.backend.WeightTime(dev)
		if err != nil {
			return Value{}, err
		}
		switch f {
		case MQFlagTimeWeightF:
			return StringValue("F"), nil
		case MQFlagTimeWeightS:
			return StringValue("S"), nil
		}
		return Value{}, fmt.Errorf("get %s: flags 0x%x: %w", key, uint32(f), ErrProtocol)
	case KeyHoldMax, KeyHoldMin:
		m, err := d.backend.HoldMode(dev)
		if err != nil {
			return Value{}, err
		}
		if key == KeyHoldMax {
			return BoolValue(m == HoldMax), nil
		}
		return BoolValue(m == HoldMin), nil
	case KeyMeasurementRange:
		low, high, err := d.backend.MeasurementRange(dev)
		if err != nil {
			return Value{}, err
		}
		if i, ok := measRangeIndex(Range{low, high}); ok {
			st.MeasRangeIndex = i
		}
		return RangeValue(low, high), nil
	case KeyPowerOff:
		// The instrument cannot report its power state.
		return BoolValue(false), nil
	case KeyDataSource:
		return StringValue(st.DataSource.String()), nil
	}
	return Value{}, fmt.Errorf("get %s: %w", key, ErrNotApplicable)
}

// ConfigSet applies v to key on an open device.
func (d *Driver) ConfigSet(key Key, v Value, dev *Device) error {
	d.log.Debug().Stringer("key", key).Str("op", "set").Stringer("value", v).Msg("config")

	if err := addressDevice(OpSet, key, dev); err != nil {
		return err
	}
	if dev.status != StatusActive {
		return fmt.Errorf("set %s: %w", key, ErrDeviceClosed)
	}
	if err := checkOp(ScopeDevice, key, OpSet); err != nil {
		return err
	}

	st := dev.state
	switch key {
	case KeyLimitSamples:
		n, ok := v.Uint64()
		if !ok {
			return badValue(key, v)
		}
		st.LimitSamples = n
		return nil
	case KeyDatalog:
		on, ok := v.Bool()
		if !ok {
			return badValue(key, v)
		}
		if err := d.backend.SetRecording(dev, on); err != nil {
			return err
		}
		st.Recording = tristate(on)
		return nil
	case KeyWeightFreq:
		s, _ := v.Str()
		f, ok := weightFreqFlag(s)
		if !ok {
			return badValue(key, v)
		}
		if err := d.backend.SetWeightFreq(dev, f); err != nil {
			return err
		}
		st.ModeFlags = st.ModeFlags&^mqFlagsFreqWeight | f
		return nil
	case KeyWeightTime:
		s, _ := v.Str()
		f, ok := weightTimeFlag(s)
		if !ok {
			return badValue(key, v)
		}
		if err := d.backend.SetWeightTime(dev, f); err != nil {
			return err
		}
		st.ModeFlags = st.ModeFlags&^mqFlagsTimeWeight | f
		return nil
	case KeyHoldMax, KeyHoldMin:
		on, ok := v.Bool()
		if !ok {
			return badValue(key, v)
		}
		m := HoldNone
		if on && key == KeyHoldMax {
			m = HoldMax
		} else if on {
			m = HoldMin
		}
		if err := d.backend.SetHoldMode(dev, m); err != nil {
			return err
		}
		st.ModeFlags = st.ModeFlags&^mqFlagsHold | m.flag()
		return nil
	case KeyMeasurementRange:
		r, ok := v.Range()
		if !ok {
			return badValue(key, v)
		}
		i, ok := measRangeIndex(r)
		if !ok {
			return badValue(key, v)
		}
		if err := d.backend.SetMeasurementRange(dev, r.Low, r.High); err != nil {
			return err
		}
		st.MeasRangeIndex = i
		return nil
	case KeyPowerOff:
		on, ok := v.Bool()
		if !ok {
			return badValue(key, v)
		}
		if !on {
			return nil
		}
		return d.backend.PowerOff(dev)
	case KeyDataSource:
		// Unlike the other enumerated keys this reports ErrProtocol.
		s, _ := v.Str()
		switch s {
		case "Live":
			st.DataSource = DataSourceLive
		case "Memory":
			st.DataSource = DataSourceMemory
		default:
			return fmt.Errorf("set %s: %q: %w", key, s, ErrProtocol)
		}
		st.MemorySourceEnabled = st.DataSource == DataSourceMemory
		return nil
	}
	return fmt.Errorf("set %s: %w", key, ErrNotApplicable)
}

func badValue(key Key, v Value) error {
	return fmt.Errorf("set %s: value %s: %w", key, v, ErrInvalidArgument)
}

// ConfigList returns the legal values of key, or the supported key set for
// KeyScanOptions and KeyDeviceOptions. It reads only static tables.
func (d *Driver) ConfigList(key Key, dev *Device) (Value, error) {
	d.log.Debug().Stringer("key", key).Str("op", "list").Msg("config")

	if dev == nil {
		if err := checkOp(ScopeDriver, key, OpList); err != nil {
			return Value{}, err
		}
		switch key {
		case KeyScanOptions:
			return keysValue(scanOptions), nil
		case KeyDeviceOptions:
			return keysValue(driverOptions), nil
		}
		return Value{}, fmt.Errorf("list %s: %w", key, ErrNotApplicable)
	}

	if err := checkOp(ScopeDevice, key, OpList); err != nil {
		return Value{}, err
	}
	switch key {
	case KeyDeviceOptions:
		return capabilitiesValue(deviceOptions), nil
	case KeyWeightFreq:
		return stringsValue(weightFreqs), nil
	case KeyWeightTime:
		return stringsValue(weightTimes), nil
	case KeyMeasurementRange:
		return rangesValue(measRanges), nil
	case KeyDataSource:
		return stringsValue(dataSources), nil
	}
	return Value{}, fmt.Errorf("list %s: %w", key, ErrNotApplicable)
}
