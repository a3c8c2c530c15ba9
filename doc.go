// Package dt885x is a driver for the CEM DT-885x family of sound level
// meters attached over a serial line.
//
// The instrument streams an unframed byte sequence in which the byte 0xA5
// separates tokens. Scan detects a meter by waiting for that marker on a
// read-only connection for a short budget (25ms by default, the longest
// inter-token gap being 23ms). Detected devices expose their settings
// through a uniform key/value interface:
//
//	ConfigGet(key, dev)         current value
//	ConfigSet(key, value, dev)  change a setting on an open device
//	ConfigList(key, dev)        legal values, or the supported keys
//
// Keys with a nil device address the driver itself (KeyScanOptions,
// KeyDeviceOptions). Each device key carries get/set/list support flags in
// a static registry; requests outside them fail with ErrNotApplicable.
//
// The wire protocol exchange for each capability is delegated to a Backend
// and sample reception to a Receiver polled by the host Session; this
// package owns addressing, validation and device state.
//
// Example usage:
//
//	drv := dt885x.New(
//	    dt885x.WithBackend(backend),
//	    dt885x.WithSession(loop),
//	)
//	devs := drv.Scan(dt885x.WithConn("/dev/ttyUSB0"))
//	if len(devs) == 0 {
//	    log.Fatal("no meter found")
//	}
//	dev := devs[0]
//	if err := drv.Open(dev); err != nil {
//	    log.Fatal(err)
//	}
//	defer drv.Cleanup()
//
//	err := drv.ConfigSet(dt885x.KeyMeasurementRange, dt885x.RangeValue(30, 80), dev)
//	v, err := drv.ConfigGet(dt885x.KeyWeightFreq, dev)
//
// A Driver and its devices are not safe for concurrent use.
package dt885x
