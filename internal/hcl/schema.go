package hcl

// blockName is the top-level block that carries compile options.
const blockName = "compile_options"

// fileRoot decodes the top-level content of a single file.
type fileRoot struct {
	CompileOptions []*compileOptionsBlock `hcl:"compile_options,block"`
}

// compileOptionsBlock mirrors compileopts.CompileOptions. Every attribute is
// optional; a nil field means the attribute was absent and the value from
// earlier blocks or defaults is kept.
type compileOptionsBlock struct {
	VariableDevice                    *string   `hcl:"variable_device,optional"`
	DefaultDevice                     *string   `hcl:"default_device,optional"`
	EnableOptimizer                   *bool     `hcl:"enable_optimizer,optional"`
	EnableNativeOps                   *bool     `hcl:"enable_native_ops,optional"`
	EnableGrappler                    *bool     `hcl:"enable_grappler,optional"`
	ForceDataFormat                   *string   `hcl:"force_data_format,optional"`
	DeviceTarget                      *string   `hcl:"device_target,optional"`
	TPUFuseOps                        *bool     `hcl:"tpu_fuse_ops,optional"`
	TPUMoveResourceGatherToHost       *bool     `hcl:"tpu_move_resource_gather_to_host,optional"`
	TPUGatherTableWidthThresholdBytes *int64    `hcl:"tpu_gather_table_width_threshold_bytes,optional"`
	UseTPUHostAllocatorForInputs      *bool     `hcl:"use_tpu_host_allocator_for_inputs,optional"`
	HoistInvariantOps                 *bool     `hcl:"hoist_invariant_ops,optional"`
	EnableWhileParallelIterations     *bool     `hcl:"enable_while_parallel_iterations,optional"`
	AutoFusionOplist                  *[]string `hcl:"auto_fusion_oplist,optional"`
	AutoFusionMinClusterSize          *int      `hcl:"auto_fusion_min_cluster_size,optional"`
	CostThreshold                     *uint64   `hcl:"cost_threshold,optional"`
	UpperCostThreshold                *int64    `hcl:"upper_cost_threshold,optional"`
	MergeInterDependentStreams        *bool     `hcl:"merge_inter_dependent_streams,optional"`
	DecomposeResourceOps              *bool     `hcl:"decompose_resource_ops,optional"`
	CompileToSyncTFRTDialect          *bool     `hcl:"compile_to_sync_tfrt_dialect,optional"`
}
