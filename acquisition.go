package dt885x

import "fmt"

// AcquisitionStart resets the device's receive state, announces the stream
// to the host session and registers the receiver to run every poll period
// or as soon as the transport is readable.
func (d *Driver) AcquisitionStart(dev *Device) error {
	if d.session == nil {
		return fmt.Errorf("acquisition start: %w", errNoSession)
	}
	if dev.status != StatusActive {
		return fmt.Errorf("acquisition start: %w", ErrDeviceClosed)
	}

	// Register first so a rejected poll leaves a running stream untouched.
	recv := d.receiver
	err := d.session.AddPoll(dev.transport, InterestReadable, d.pollPeriod, func(readable bool) bool {
		return recv(dev, readable)
	})
	if err != nil {
		return fmt.Errorf("acquisition start: add poll: %w", err)
	}

	st := dev.state
	st.AcqState = AcqInit
	st.NumSamples = 0
	st.BufLen = 0

	if err := d.session.SendHeader(dev); err != nil {
		d.session.RemovePoll(dev.transport)
		return fmt.Errorf("acquisition start: send header: %w", err)
	}
	dev.polling = true

	d.log.Info().Str("conn", dev.conn).Dur("period", d.pollPeriod).Msg("acquisition started")
	return nil
}

// AcquisitionStop removes the device's poll and ends the stream.
func (d *Driver) AcquisitionStop(dev *Device) error {
	if d.session == nil {
		return fmt.Errorf("acquisition stop: %w", errNoSession)
	}
	if dev.status != StatusActive {
		return fmt.Errorf("acquisition stop: %w", ErrDeviceClosed)
	}
	if err := d.endAcquisition(dev); err != nil {
		return fmt.Errorf("acquisition stop: %w", err)
	}
	d.log.Info().Str("conn", dev.conn).Uint64("samples", dev.state.NumSamples).Msg("acquisition stopped")
	return nil
}

// endAcquisition removes the device's poll and ends its stream.
func (d *Driver) endAcquisition(dev *Device) error {
	if err := d.session.RemovePoll(dev.transport); err != nil {
		return fmt.Errorf("remove poll: %w", err)
	}
	dev.polling = false
	dev.state.AcqState = AcqStopped
	if err := d.session.SendEnd(dev); err != nil {
		return fmt.Errorf("send end: %w", err)
	}
	return nil
}
