package dt885x

type scanConfig struct {
	conn string
	comm string
}

// ScanOption is a scan-time option. KeyConn is the only one the driver
// advertises; serial comm parameters may also be overridden.
type ScanOption func(*scanConfig)

// WithConn sets the connection descriptor (a serial device path) to scan.
func WithConn(conn string) ScanOption {
	return func(c *scanConfig) { c.conn = conn }
}

// WithSerialComm overrides the comm parameters for this scan.
func WithSerialComm(comm string) ScanOption {
	return func(c *scanConfig) { c.comm = comm }
}

// Scan listens on one connection for the instrument's sync marker and
// returns at most one device. It blocks for up to the scan budget. No
// device, a missing connection or a transport that cannot be opened all
// yield an empty result rather than an error.
func (d *Driver) Scan(opts ...ScanOption) []*Device {
	sc := scanConfig{conn: d.conn, comm: d.comm}
	for _, opt := range opts {
		opt(&sc)
	}
	log := d.log.With().Str("conn", sc.conn).Logger()
	if sc.conn == "" {
		log.Debug().Msg("scan: no connection given")
		return nil
	}

	t, err := d.opener(sc.conn, sc.comm)
	if err != nil {
		log.Warn().Err(err).Msg("scan: bad transport parameters")
		return nil
	}
	if err := t.Open(true); err != nil {
		log.Debug().Err(err).Msg("scan: open failed")
		return nil
	}
	found := d.synchronize(t)
	if err := t.Close(); err != nil {
		log.Warn().Err(err).Msg("scan: close failed")
	}
	if !found {
		log.Debug().Dur("budget", d.scanBudget).Msg("scan: no sync marker")
		return nil
	}

	// The device gets its own transport, opened later by Open.
	devT, err := d.opener(sc.conn, sc.comm)
	if err != nil {
		log.Warn().Err(err).Msg("scan: bad transport parameters")
		return nil
	}
	dev := newDevice(sc.conn, sc.comm, devT)
	d.devices = append(d.devices, dev)
	log.Info().Str("vendor", dev.Vendor).Str("model", dev.Model).Msg("device found")
	return []*Device{dev}
}

// ScanConn scans conn with the driver's default comm parameters.
func (d *Driver) ScanConn(conn string) []*Device {
	return d.Scan(WithConn(conn))
}

// synchronize polls t for SyncMarker until the scan budget runs out. A
// byte arrives roughly every millisecond, so it sleeps scanInterval
// between reads.
func (d *Driver) synchronize(t Transport) bool {
	var c [1]byte
	start := d.clock.Now()
	for d.clock.Now().Sub(start) < d.scanBudget {
		n, err := t.ReadNonblocking(c[:])
		if err == nil && n == 1 && c[0] == SyncMarker {
			return true
		}
		d.clock.Sleep(d.scanInterval)
	}
	return false
}
