// Package serial provides minimal, Linux-only raw serial port access
// for instruments that stream unframed bytes.
//
// Features:
//   - Raw syscall-based serial I/O on Linux, no buffering delays
//   - Read-only or read/write open
//   - Non-blocking single-shot reads for byte-stream synchronization
//   - Killable readiness wait (self-pipe), safe to Close from another goroutine
//   - Compact comm-parameter strings ("9600/8n1")
//   - PTY-based tests for reliability
//
// This package does **not** support Windows.
//
// Example usage:
//
//	cfg, err := serial.ParseComm("/dev/ttyUSB0", "9600/8n1")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cfg.ReadOnly = true
//	port, err := serial.Open(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer port.Close()
//
//	buf := make([]byte, 1)
//	for {
//	    ok, err := port.WaitReadable(150 * time.Millisecond)
//	    if err != nil {
//	        return
//	    }
//	    if !ok {
//	        continue
//	    }
//	    n, _ := port.ReadNonblocking(buf)
//	    fmt.Printf("% x\n", buf[:n])
//	}
package serial
