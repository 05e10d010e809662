package compileopts

// DefaultDevice is the device name used for both variable and default
// placement unless configured otherwise.
const DefaultDevice = "/job:localhost/replica:0/task:0/device:CPU:0"

// Default returns the options the runtime uses when nothing is configured.
func Default() CompileOptions {
	return CompileOptions{
		VariableDevice:           DefaultDevice,
		DefaultDevice:            DefaultDevice,
		EnableOptimizer:          true,
		EnableNativeOps:          true,
		DeviceTarget:             CPU,
		AutoFusionMinClusterSize: 2,
		CostThreshold:            1,
		UpperCostThreshold:       -1,
	}
}
