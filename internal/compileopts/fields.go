package compileopts

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// field binds a rendered option name to its formatter and setter. The order
// of the fields slice is the order of the canonical rendering.
type field struct {
	name   string
	format func(o *CompileOptions) string
	set    func(o *CompileOptions, value string) error
}

var fields = []field{
	stringField("variable_device", func(o *CompileOptions) *string { return &o.VariableDevice }),
	stringField("default_device", func(o *CompileOptions) *string { return &o.DefaultDevice }),
	boolField("enable_optimizer", func(o *CompileOptions) *bool { return &o.EnableOptimizer }),
	boolField("enable_native_ops", func(o *CompileOptions) *bool { return &o.EnableNativeOps }),
	boolField("enable_grappler", func(o *CompileOptions) *bool { return &o.EnableGrappler }),
	stringField("force_data_format", func(o *CompileOptions) *string { return &o.ForceDataFormat }),
	{
		name:   "device_target",
		format: func(o *CompileOptions) string { return o.DeviceTarget.String() },
		set: func(o *CompileOptions, value string) error {
			t, err := ParseDeviceTarget(value)
			if err != nil {
				return err
			}
			o.DeviceTarget = t
			return nil
		},
	},
	boolField("tpu_fuse_ops", func(o *CompileOptions) *bool { return &o.TPUFuseOps }),
	boolField("tpu_move_resource_gather_to_host", func(o *CompileOptions) *bool { return &o.TPUMoveResourceGatherToHost }),
	int64Field("tpu_gather_table_width_threshold_bytes", func(o *CompileOptions) *int64 { return &o.TPUGatherTableWidthThresholdBytes }),
	boolField("use_tpu_host_allocator_for_inputs", func(o *CompileOptions) *bool { return &o.UseTPUHostAllocatorForInputs }),
	boolField("hoist_invariant_ops", func(o *CompileOptions) *bool { return &o.HoistInvariantOps }),
	boolField("enable_while_parallel_iterations", func(o *CompileOptions) *bool { return &o.EnableWhileParallelIterations }),
	{
		name:   "auto_fusion_oplist",
		format: func(o *CompileOptions) string { return "[" + strings.Join(o.AutoFusionOplist, ",") + "]" },
		set: func(o *CompileOptions, value string) error {
			inner, ok := strings.CutPrefix(value, "[")
			if ok {
				inner, ok = strings.CutSuffix(inner, "]")
			}
			if !ok {
				return errors.Wrapf(ErrMalformed, "list %q is not wrapped in brackets", value)
			}
			o.AutoFusionOplist = nil
			if inner != "" {
				o.AutoFusionOplist = strings.Split(inner, ",")
			}
			return nil
		},
	},
	{
		name:   "auto_fusion_min_cluster_size",
		format: func(o *CompileOptions) string { return strconv.Itoa(o.AutoFusionMinClusterSize) },
		set: func(o *CompileOptions, value string) error {
			n, err := strconv.Atoi(value)
			if err != nil {
				return errors.Wrapf(ErrMalformed, "integer %q", value)
			}
			o.AutoFusionMinClusterSize = n
			return nil
		},
	},
	{
		name:   "cost_threshold",
		format: func(o *CompileOptions) string { return strconv.FormatUint(o.CostThreshold, 10) },
		set: func(o *CompileOptions, value string) error {
			n, err := strconv.ParseUint(value, 10, 64)
			if err != nil {
				return errors.Wrapf(ErrMalformed, "unsigned integer %q", value)
			}
			o.CostThreshold = n
			return nil
		},
	},
	int64Field("upper_cost_threshold", func(o *CompileOptions) *int64 { return &o.UpperCostThreshold }),
	boolField("merge_inter_dependent_streams", func(o *CompileOptions) *bool { return &o.MergeInterDependentStreams }),
	boolField("decompose_resource_ops", func(o *CompileOptions) *bool { return &o.DecomposeResourceOps }),
	boolField("compile_to_sync_tfrt_dialect", func(o *CompileOptions) *bool { return &o.CompileToSyncTFRTDialect }),
}

var fieldsByName = func() map[string]*field {
	m := make(map[string]*field, len(fields))
	for i := range fields {
		m[fields[i].name] = &fields[i]
	}
	return m
}()

func stringField(name string, ptr func(*CompileOptions) *string) field {
	return field{
		name:   name,
		format: func(o *CompileOptions) string { return *ptr(o) },
		set: func(o *CompileOptions, value string) error {
			*ptr(o) = value
			return nil
		},
	}
}

// boolField accepts anything strconv.ParseBool does, so `1`/`0` renderings
// from other tools parse as well.
func boolField(name string, ptr func(*CompileOptions) *bool) field {
	return field{
		name:   name,
		format: func(o *CompileOptions) string { return strconv.FormatBool(*ptr(o)) },
		set: func(o *CompileOptions, value string) error {
			b, err := strconv.ParseBool(value)
			if err != nil {
				return errors.Wrapf(ErrMalformed, "boolean %q", value)
			}
			*ptr(o) = b
			return nil
		},
	}
}

func int64Field(name string, ptr func(*CompileOptions) *int64) field {
	return field{
		name:   name,
		format: func(o *CompileOptions) string { return strconv.FormatInt(*ptr(o), 10) },
		set: func(o *CompileOptions, value string) error {
			n, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return errors.Wrapf(ErrMalformed, "integer %q", value)
			}
			*ptr(o) = n
			return nil
		},
	}
}

// FieldNames returns the rendered option names in canonical order.
func FieldNames() []string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.name
	}
	return names
}

// HasField reports whether name is a rendered option name.
func HasField(name string) bool {
	_, ok := fieldsByName[name]
	return ok
}

// SetField assigns a single option, addressed by its rendered name, from its
// rendered textual value.
func SetField(o *CompileOptions, name, value string) error {
	f, ok := fieldsByName[name]
	if !ok {
		return errors.Wrapf(ErrUnknownField, "%q", name)
	}
	if err := f.set(o, value); err != nil {
		return errors.Wrapf(err, "option %s", name)
	}
	return nil
}
