package dt885x

import "errors"

// Errors returned by the capability dispatcher and device lifecycle.
// Backend errors are returned unchanged and are not wrapped in any of these.
var (
	// ErrInvalidArgument reports a malformed or out-of-domain value, or a
	// device-scoped key addressed without a device.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotApplicable reports a key that is not supported in the requested
	// scope, or an operation the key does not support.
	ErrNotApplicable = errors.New("not applicable")
	// ErrDeviceClosed reports a Set or acquisition call on a device that is
	// not open.
	ErrDeviceClosed = errors.New("device closed")
	// ErrProtocol reports a backend encoding outside its documented domain.
	ErrProtocol = errors.New("protocol error")
	// ErrDeviceRemoved reports use of a device after driver cleanup.
	ErrDeviceRemoved = errors.New("device removed")
)
