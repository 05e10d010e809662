package compileopts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeviceTarget_String(t *testing.T) {
	testCases := []struct {
		target   DeviceTarget
		expected string
	}{
		{CPU, "Cpu"},
		{TPURT, "Tpurt"},
		{TFFallback, "TfFallback"},
		{BridgeFallback, "BridgeFallback"},
		{DeviceTarget(7), "DeviceTarget(7)"},
		{DeviceTarget(-1), "DeviceTarget(-1)"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.target.String())
		})
	}
}

func TestDeviceTarget_NamesAreDistinct(t *testing.T) {
	seen := make(map[string]DeviceTarget)
	for _, target := range AllDeviceTargets() {
		name := target.String()
		require.NotEmpty(t, name)
		require.True(t, target.IsValid(), "%s should be valid", name)

		prev, dup := seen[name]
		require.False(t, dup, "%d and %d both render as %q", prev, target, name)
		seen[name] = target
	}
	assert.Len(t, seen, 4)
	assert.False(t, DeviceTarget(4).IsValid())
}

func TestParseDeviceTarget(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		expected  DeviceTarget
		expectErr bool
	}{
		{name: "cpu", input: "Cpu", expected: CPU},
		{name: "tpurt", input: "Tpurt", expected: TPURT},
		{name: "tf fallback", input: "TfFallback", expected: TFFallback},
		{name: "bridge fallback", input: "BridgeFallback", expected: BridgeFallback},
		{name: "case insensitive", input: "tpuRT", expected: TPURT},
		{name: "error - unknown", input: "Gpu", expectErr: true},
		{name: "error - empty", input: "", expectErr: true},
		{name: "error - enum fallback form", input: "DeviceTarget(7)", expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			target, err := ParseDeviceTarget(tc.input)
			if tc.expectErr {
				require.ErrorIs(t, err, ErrUnknownDeviceTarget)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, target)
		})
	}
}

func TestDeviceTarget_TextRoundTrip(t *testing.T) {
	for _, target := range AllDeviceTargets() {
		t.Run(target.String(), func(t *testing.T) {
			text, err := target.MarshalText()
			require.NoError(t, err)

			var decoded DeviceTarget
			require.NoError(t, decoded.UnmarshalText(text))
			assert.Equal(t, target, decoded)
		})
	}
}

func TestDeviceTarget_MarshalInvalid(t *testing.T) {
	_, err := DeviceTarget(9).MarshalText()
	require.ErrorIs(t, err, ErrUnknownDeviceTarget)

	target := TFFallback
	err = target.UnmarshalText([]byte("nope"))
	require.ErrorIs(t, err, ErrUnknownDeviceTarget)
	assert.Equal(t, TFFallback, target, "a failed unmarshal must leave the value untouched")
}
