package serial

import (
	"fmt"
	"strconv"
	"strings"
)

// Parity selects the parity bit mode.
type Parity byte

const (
	ParityNone Parity = 'n'
	ParityOdd  Parity = 'o'
	ParityEven Parity = 'e'
)

// ParseComm parses a compact comm-parameter string such as "9600/8n1"
// (baud rate, data bits, parity, stop bits) into a Config for device.
func ParseComm(device, comm string) (Config, error) {
	cfg := Config{Device: device}
	baud, framing, ok := strings.Cut(strings.TrimSpace(comm), "/")
	if !ok {
		return Config{}, fmt.Errorf("serialcomm %q: want <baud>/<bits><parity><stop>", comm)
	}

	rate, err := strconv.Atoi(baud)
	if err != nil || rate <= 0 {
		return Config{}, fmt.Errorf("serialcomm %q: bad baud rate", comm)
	}
	cfg.BaudRate = rate

	framing = strings.ToLower(framing)
	if len(framing) != 3 {
		return Config{}, fmt.Errorf("serialcomm %q: bad framing %q", comm, framing)
	}
	if framing[0] < '5' || framing[0] > '8' {
		return Config{}, fmt.Errorf("serialcomm %q: bad data bits %q", comm, framing[0])
	}
	cfg.DataBits = int(framing[0] - '0')

	switch p := Parity(framing[1]); p {
	case ParityNone, ParityOdd, ParityEven:
		cfg.Parity = p
	default:
		return Config{}, fmt.Errorf("serialcomm %q: bad parity %q", comm, framing[1])
	}

	switch framing[2] {
	case '1':
		cfg.StopBits = 1
	case '2':
		cfg.StopBits = 2
	default:
		return Config{}, fmt.Errorf("serialcomm %q: bad stop bits %q", comm, framing[2])
	}
	return cfg, nil
}
