package compileopts

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// DeviceTarget selects the device-specific compilation path.
type DeviceTarget int

const (
	// CPU is the generic CPU execution path.
	CPU DeviceTarget = iota
	// TPURT is the TPU runtime path.
	TPURT
	// TFFallback reuses the original graph-execution engine.
	TFFallback
	// BridgeFallback routes through the legacy bridging layer.
	BridgeFallback
)

// AllDeviceTargets returns every defined target in declaration order.
func AllDeviceTargets() []DeviceTarget {
	return []DeviceTarget{CPU, TPURT, TFFallback, BridgeFallback}
}

// String returns the canonical short name of the target. Values outside the
// defined set render as `DeviceTarget(<n>)`.
func (t DeviceTarget) String() string {
	switch t {
	case CPU:
		return "Cpu"
	case TPURT:
		return "Tpurt"
	case TFFallback:
		return "TfFallback"
	case BridgeFallback:
		return "BridgeFallback"
	}
	return "DeviceTarget(" + strconv.Itoa(int(t)) + ")"
}

// IsValid reports whether t is one of the defined targets.
func (t DeviceTarget) IsValid() bool {
	return t >= CPU && t <= BridgeFallback
}

// ParseDeviceTarget maps a canonical name back to its DeviceTarget. Matching
// is case-insensitive.
func ParseDeviceTarget(name string) (DeviceTarget, error) {
	for _, t := range AllDeviceTargets() {
		if strings.EqualFold(name, t.String()) {
			return t, nil
		}
	}
	return CPU, errors.Wrapf(ErrUnknownDeviceTarget, "%q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (t DeviceTarget) MarshalText() ([]byte, error) {
	if !t.IsValid() {
		return nil, errors.Wrapf(ErrUnknownDeviceTarget, "value %d", int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *DeviceTarget) UnmarshalText(text []byte) error {
	parsed, err := ParseDeviceTarget(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
