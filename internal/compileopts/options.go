package compileopts

import (
	"log/slog"
	"slices"
)

// CompileOptions holds the knobs consumed by the graph compilation pipeline.
// It is a plain value: every field is independently settable and no
// cross-field validation is done here.
type CompileOptions struct {
	// VariableDevice is the device that holds variables.
	VariableDevice string
	// DefaultDevice is used for ops without an explicit assignment.
	DefaultDevice string

	EnableOptimizer bool
	EnableNativeOps bool
	EnableGrappler  bool

	// ForceDataFormat forces a tensor layout. Empty means no forcing.
	ForceDataFormat string

	DeviceTarget DeviceTarget

	TPUFuseOps bool
	// TPUMoveResourceGatherToHost moves resource gathers on wide tables to the host.
	TPUMoveResourceGatherToHost       bool
	TPUGatherTableWidthThresholdBytes int64
	UseTPUHostAllocatorForInputs      bool

	// HoistInvariantOps enables loop-invariant code motion for ops.
	HoistInvariantOps             bool
	EnableWhileParallelIterations bool

	// AutoFusionOplist names the ops eligible for automatic fusion, in order.
	AutoFusionOplist         []string
	AutoFusionMinClusterSize int

	// CostThreshold and UpperCostThreshold bound the op cost considered when
	// splitting work into streams. A negative upper bound means unbounded.
	CostThreshold      uint64
	UpperCostThreshold int64

	MergeInterDependentStreams bool
	DecomposeResourceOps       bool
	CompileToSyncTFRTDialect   bool
}

// Equal reports whether o and other hold the same values. A nil and an empty
// AutoFusionOplist are equal, as they render identically.
func (o CompileOptions) Equal(other CompileOptions) bool {
	return o.VariableDevice == other.VariableDevice &&
		o.DefaultDevice == other.DefaultDevice &&
		o.EnableOptimizer == other.EnableOptimizer &&
		o.EnableNativeOps == other.EnableNativeOps &&
		o.EnableGrappler == other.EnableGrappler &&
		o.ForceDataFormat == other.ForceDataFormat &&
		o.DeviceTarget == other.DeviceTarget &&
		o.TPUFuseOps == other.TPUFuseOps &&
		o.TPUMoveResourceGatherToHost == other.TPUMoveResourceGatherToHost &&
		o.TPUGatherTableWidthThresholdBytes == other.TPUGatherTableWidthThresholdBytes &&
		o.UseTPUHostAllocatorForInputs == other.UseTPUHostAllocatorForInputs &&
		o.HoistInvariantOps == other.HoistInvariantOps &&
		o.EnableWhileParallelIterations == other.EnableWhileParallelIterations &&
		slices.Equal(o.AutoFusionOplist, other.AutoFusionOplist) &&
		o.AutoFusionMinClusterSize == other.AutoFusionMinClusterSize &&
		o.CostThreshold == other.CostThreshold &&
		o.UpperCostThreshold == other.UpperCostThreshold &&
		o.MergeInterDependentStreams == other.MergeInterDependentStreams &&
		o.DecomposeResourceOps == other.DecomposeResourceOps &&
		o.CompileToSyncTFRTDialect == other.CompileToSyncTFRTDialect
}

// Clone returns a deep copy of o.
func (o CompileOptions) Clone() CompileOptions {
	o.AutoFusionOplist = slices.Clone(o.AutoFusionOplist)
	return o
}

// LogValue implements slog.LogValuer so log records carry the canonical rendering.
func (o CompileOptions) LogValue() slog.Value {
	return slog.StringValue(o.String())
}
