package hcl

import (
	"context"
	"io"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/pkg/errors"
	"github.com/specialistvlad/tfrtopts/internal/compileopts"
	"github.com/specialistvlad/tfrtopts/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
)

// Encoder is the HCL implementation of config.Encoder.
type Encoder struct{}

// NewEncoder creates a new HCL compile options encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Encode writes opts as a single `compile_options` block holding every
// attribute, so loading the output reproduces opts exactly.
func (e *Encoder) Encode(ctx context.Context, w io.Writer, opts compileopts.CompileOptions) error {
	target, err := opts.DeviceTarget.MarshalText()
	if err != nil {
		return errors.Wrap(err, "device_target")
	}

	f := hclwrite.NewEmptyFile()
	body := f.Body().AppendNewBlock(blockName, nil).Body()

	body.SetAttributeValue("variable_device", cty.StringVal(opts.VariableDevice))
	body.SetAttributeValue("default_device", cty.StringVal(opts.DefaultDevice))
	body.SetAttributeValue("enable_optimizer", cty.BoolVal(opts.EnableOptimizer))
	body.SetAttributeValue("enable_native_ops", cty.BoolVal(opts.EnableNativeOps))
	body.SetAttributeValue("enable_grappler", cty.BoolVal(opts.EnableGrappler))
	body.SetAttributeValue("force_data_format", cty.StringVal(opts.ForceDataFormat))
	body.SetAttributeValue("device_target", cty.StringVal(string(target)))
	body.SetAttributeValue("tpu_fuse_ops", cty.BoolVal(opts.TPUFuseOps))
	body.SetAttributeValue("tpu_move_resource_gather_to_host", cty.BoolVal(opts.TPUMoveResourceGatherToHost))
	body.SetAttributeValue("tpu_gather_table_width_threshold_bytes", cty.NumberIntVal(opts.TPUGatherTableWidthThresholdBytes))
	body.SetAttributeValue("use_tpu_host_allocator_for_inputs", cty.BoolVal(opts.UseTPUHostAllocatorForInputs))
	body.SetAttributeValue("hoist_invariant_ops", cty.BoolVal(opts.HoistInvariantOps))
	body.SetAttributeValue("enable_while_parallel_iterations", cty.BoolVal(opts.EnableWhileParallelIterations))
	body.SetAttributeValue("auto_fusion_oplist", stringList(opts.AutoFusionOplist))
	body.SetAttributeValue("auto_fusion_min_cluster_size", cty.NumberIntVal(int64(opts.AutoFusionMinClusterSize)))
	body.SetAttributeValue("cost_threshold", cty.NumberUIntVal(opts.CostThreshold))
	body.SetAttributeValue("upper_cost_threshold", cty.NumberIntVal(opts.UpperCostThreshold))
	body.SetAttributeValue("merge_inter_dependent_streams", cty.BoolVal(opts.MergeInterDependentStreams))
	body.SetAttributeValue("decompose_resource_ops", cty.BoolVal(opts.DecomposeResourceOps))
	body.SetAttributeValue("compile_to_sync_tfrt_dialect", cty.BoolVal(opts.CompileToSyncTFRTDialect))

	ctxlog.FromContext(ctx).Debug("Encoded compile options as HCL.", "options", opts)

	if _, err := w.Write(f.Bytes()); err != nil {
		return errors.Wrap(err, "failed to write HCL")
	}
	return nil
}

func stringList(items []string) cty.Value {
	if len(items) == 0 {
		return cty.ListValEmpty(cty.String)
	}
	vals := make([]cty.Value, len(items))
	for i, item := range items {
		vals[i] = cty.StringVal(item)
	}
	return cty.ListVal(vals)
}
