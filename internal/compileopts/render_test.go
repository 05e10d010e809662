package compileopts

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exampleOptions is a CPU variable device, TPU runtime target, two fused ops
// and everything else zero.
func exampleOptions() CompileOptions {
	return CompileOptions{
		VariableDevice:   "/device:CPU:0",
		EnableOptimizer:  true,
		DeviceTarget:     TPURT,
		AutoFusionOplist: []string{"Add", "Mul"},
	}
}

const exampleRendering = "{variable_device = /device:CPU:0, default_device = , enable_optimizer = true, " +
	"enable_native_ops = false, enable_grappler = false, force_data_format = , device_target = Tpurt, " +
	"tpu_fuse_ops = false, tpu_move_resource_gather_to_host = false, " +
	"tpu_gather_table_width_threshold_bytes = 0, use_tpu_host_allocator_for_inputs = false, " +
	"hoist_invariant_ops = false, enable_while_parallel_iterations = false, " +
	"auto_fusion_oplist = [Add,Mul], auto_fusion_min_cluster_size = 0, cost_threshold = 0, " +
	"upper_cost_threshold = 0, merge_inter_dependent_streams = false, decompose_resource_ops = false, " +
	"compile_to_sync_tfrt_dialect = false}"

func TestCompileOptions_String_Example(t *testing.T) {
	rendered := exampleOptions().String()

	assert.Equal(t, exampleRendering, rendered)
	assert.Contains(t, rendered, "variable_device = /device:CPU:0, ")
	assert.Contains(t, rendered, ", device_target = Tpurt, ")
	assert.Contains(t, rendered, ", auto_fusion_oplist = [Add,Mul], ")
	assert.NotContains(t, rendered, "\n")
}

func TestCompileOptions_String_Default(t *testing.T) {
	expected := "{variable_device = /job:localhost/replica:0/task:0/device:CPU:0, " +
		"default_device = /job:localhost/replica:0/task:0/device:CPU:0, enable_optimizer = true, " +
		"enable_native_ops = true, enable_grappler = false, force_data_format = , device_target = Cpu, " +
		"tpu_fuse_ops = false, tpu_move_resource_gather_to_host = false, " +
		"tpu_gather_table_width_threshold_bytes = 0, use_tpu_host_allocator_for_inputs = false, " +
		"hoist_invariant_ops = false, enable_while_parallel_iterations = false, " +
		"auto_fusion_oplist = [], auto_fusion_min_cluster_size = 2, cost_threshold = 1, " +
		"upper_cost_threshold = -1, merge_inter_dependent_streams = false, decompose_resource_ops = false, " +
		"compile_to_sync_tfrt_dialect = false}"

	assert.Equal(t, expected, Default().String())
}

func TestCompileOptions_String_Oplist(t *testing.T) {
	testCases := []struct {
		name     string
		oplist   []string
		expected string
	}{
		{name: "nil", oplist: nil, expected: "auto_fusion_oplist = []"},
		{name: "empty", oplist: []string{}, expected: "auto_fusion_oplist = []"},
		{name: "single", oplist: []string{"Relu"}, expected: "auto_fusion_oplist = [Relu]"},
		{name: "ordered", oplist: []string{"A", "B", "C"}, expected: "auto_fusion_oplist = [A,B,C]"},
		{name: "order preserved", oplist: []string{"C", "A", "B"}, expected: "auto_fusion_oplist = [C,A,B]"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			opts := CompileOptions{AutoFusionOplist: tc.oplist}
			assert.Contains(t, opts.String(), ", "+tc.expected+", ")
		})
	}
}

func TestCompileOptions_String_FieldOrder(t *testing.T) {
	values := []CompileOptions{
		{},
		Default(),
		exampleOptions(),
		{
			VariableDevice:                    "/device:TPU:0",
			DefaultDevice:                     "/device:TPU:1",
			EnableGrappler:                    true,
			ForceDataFormat:                   "NHWC",
			DeviceTarget:                      BridgeFallback,
			TPUFuseOps:                        true,
			TPUGatherTableWidthThresholdBytes: 1 << 20,
			AutoFusionOplist:                  []string{"Add"},
			AutoFusionMinClusterSize:          5,
			CostThreshold:                     18446744073709551615,
			UpperCostThreshold:                -42,
			CompileToSyncTFRTDialect:          true,
		},
	}

	for _, opts := range values {
		rendered := opts.String()
		require.True(t, strings.HasPrefix(rendered, "{variable_device = "))
		require.True(t, strings.HasSuffix(rendered, "}"))

		last := -1
		for i, name := range FieldNames() {
			sep := ", "
			if i == 0 {
				sep = "{"
			}
			idx := strings.Index(rendered, sep+name+" = ")
			require.Greater(t, idx, last, "field %s is out of order in %s", name, rendered)
			last = idx
		}
	}
}

func TestCompileOptions_String_Numbers(t *testing.T) {
	opts := CompileOptions{
		TPUGatherTableWidthThresholdBytes: -3,
		AutoFusionMinClusterSize:          1000000,
		CostThreshold:                     18446744073709551615,
		UpperCostThreshold:                -1,
	}
	rendered := opts.String()

	assert.Contains(t, rendered, "tpu_gather_table_width_threshold_bytes = -3,")
	assert.Contains(t, rendered, "auto_fusion_min_cluster_size = 1000000,")
	assert.Contains(t, rendered, "cost_threshold = 18446744073709551615,")
	assert.Contains(t, rendered, "upper_cost_threshold = -1,")
}

func TestCompileOptions_String_EmbedsDeviceTarget(t *testing.T) {
	for _, target := range append(AllDeviceTargets(), DeviceTarget(11)) {
		t.Run(target.String(), func(t *testing.T) {
			opts := CompileOptions{DeviceTarget: target}
			assert.Contains(t, opts.String(), ", device_target = "+target.String()+", ")
		})
	}
}

func TestCompileOptions_String_Deterministic(t *testing.T) {
	opts := exampleOptions()
	first := opts.String()
	assert.Equal(t, first, opts.String())
	assert.Equal(t, first, opts.Clone().String())
	assert.Equal(t, exampleOptions(), opts, "rendering must not mutate the value")
}

func TestCompileOptions_String_Concurrent(t *testing.T) {
	opts := exampleOptions()

	var wg sync.WaitGroup
	results := make([]string, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = opts.String()
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, exampleRendering, r)
	}
}

func TestCompileOptions_WriteTo(t *testing.T) {
	var sb strings.Builder
	n, err := exampleOptions().WriteTo(&sb)
	require.NoError(t, err)
	assert.Equal(t, int64(len(exampleRendering)), n)
	assert.Equal(t, exampleRendering, sb.String())
}

type failingWriter struct{}

var errSinkClosed = errors.New("sink closed")

func (failingWriter) Write([]byte) (int, error) { return 0, errSinkClosed }

func TestCompileOptions_WriteTo_SinkError(t *testing.T) {
	n, err := exampleOptions().WriteTo(failingWriter{})
	require.ErrorIs(t, err, errSinkClosed)
	assert.Zero(t, n)
}
