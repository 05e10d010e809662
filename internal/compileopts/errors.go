package compileopts

import "github.com/pkg/errors"

var (
	// ErrUnknownDeviceTarget is returned when a name does not match any DeviceTarget.
	ErrUnknownDeviceTarget = errors.New("unknown device target")

	// ErrUnknownField is returned when a field name is not part of CompileOptions.
	ErrUnknownField = errors.New("unknown compile option")

	// ErrMalformed is returned when text does not follow the canonical rendering.
	ErrMalformed = errors.New("malformed compile options")
)
