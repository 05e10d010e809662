package hcl

import (
	"slices"

	"github.com/pkg/errors"
	"github.com/specialistvlad/tfrtopts/internal/compileopts"
)

// applyTo copies every attribute present in the block onto opts.
func (b *compileOptionsBlock) applyTo(opts *compileopts.CompileOptions) error {
	assign(&opts.VariableDevice, b.VariableDevice)
	assign(&opts.DefaultDevice, b.DefaultDevice)
	assign(&opts.EnableOptimizer, b.EnableOptimizer)
	assign(&opts.EnableNativeOps, b.EnableNativeOps)
	assign(&opts.EnableGrappler, b.EnableGrappler)
	assign(&opts.ForceDataFormat, b.ForceDataFormat)

	if b.DeviceTarget != nil {
		target, err := compileopts.ParseDeviceTarget(*b.DeviceTarget)
		if err != nil {
			return errors.Wrap(err, "device_target")
		}
		opts.DeviceTarget = target
	}

	assign(&opts.TPUFuseOps, b.TPUFuseOps)
	assign(&opts.TPUMoveResourceGatherToHost, b.TPUMoveResourceGatherToHost)
	assign(&opts.TPUGatherTableWidthThresholdBytes, b.TPUGatherTableWidthThresholdBytes)
	assign(&opts.UseTPUHostAllocatorForInputs, b.UseTPUHostAllocatorForInputs)
	assign(&opts.HoistInvariantOps, b.HoistInvariantOps)
	assign(&opts.EnableWhileParallelIterations, b.EnableWhileParallelIterations)

	if b.AutoFusionOplist != nil {
		opts.AutoFusionOplist = slices.Clone(*b.AutoFusionOplist)
	}

	assign(&opts.AutoFusionMinClusterSize, b.AutoFusionMinClusterSize)
	assign(&opts.CostThreshold, b.CostThreshold)
	assign(&opts.UpperCostThreshold, b.UpperCostThreshold)
	assign(&opts.MergeInterDependentStreams, b.MergeInterDependentStreams)
	assign(&opts.DecomposeResourceOps, b.DecomposeResourceOps)
	assign(&opts.CompileToSyncTFRTDialect, b.CompileToSyncTFRTDialect)
	return nil
}

func assign[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
