package plan

import (
	"github.com/kurtosis-tech/kurtosis-core-api-lib/api/golang/lib/services"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestServiceConfigBuilderDefaults(t *testing.T) {
	config := NewServiceConfigBuilder("busybox:latest").Build()

	require.Equal(t, "busybox:latest", config.GetImage())
	require.Empty(t, config.GetUsedPorts())
	require.Empty(t, config.GetEnvVars())
	require.Empty(t, config.GetPersistentDirectories())
	require.Zero(t, config.GetMinCpuMillicpus())
	require.Zero(t, config.GetMaxCpuMillicpus())
	require.Zero(t, config.GetMinMemoryMegabytes())
	require.Zero(t, config.GetMaxMemoryMegabytes())
	require.Empty(t, config.GetLabels())
	require.Empty(t, config.GetTolerations())
	require.Empty(t, config.GetNodeSelectors())
}

func TestServiceConfigBuilderSetsAllFields(t *testing.T) {
	usedPorts := map[string]*services.PortSpec{
		"grpc": services.NewPortSpec(uint16(50051), services.PortProtocol_TCP),
	}
	envVars := map[string]string{"RUST_LOG": "debug"}
	persistentDirectories := map[string]*PersistentDirectory{
		"/data": NewPersistentDirectory("data", 1000),
	}
	labels := map[string]string{"ethereum-package.client": "sova-sentinel"}
	tolerations := []*Toleration{{Key: "dedicated", Operator: "Exists", Effect: "NoSchedule"}}
	nodeSelectors := map[string]string{"kubernetes.io/os": "linux"}

	config := NewServiceConfigBuilder(
		"ghcr.io/sovanetwork/sova-sentinel:latest",
	).WithUsedPorts(
		usedPorts,
	).WithEnvVars(
		envVars,
	).WithPersistentDirectories(
		persistentDirectories,
	).WithMinCpuMillicpus(
		100,
	).WithMaxCpuMillicpus(
		2000,
	).WithMinMemoryMegabytes(
		256,
	).WithMaxMemoryMegabytes(
		2048,
	).WithLabels(
		labels,
	).WithTolerations(
		tolerations,
	).WithNodeSelectors(
		nodeSelectors,
	).Build()

	require.Equal(t, "ghcr.io/sovanetwork/sova-sentinel:latest", config.GetImage())
	require.Equal(t, usedPorts, config.GetUsedPorts())
	require.Equal(t, envVars, config.GetEnvVars())
	require.Equal(t, persistentDirectories, config.GetPersistentDirectories())
	require.Equal(t, uint64(100), config.GetMinCpuMillicpus())
	require.Equal(t, uint64(2000), config.GetMaxCpuMillicpus())
	require.Equal(t, uint64(256), config.GetMinMemoryMegabytes())
	require.Equal(t, uint64(2048), config.GetMaxMemoryMegabytes())
	require.Equal(t, labels, config.GetLabels())
	require.Equal(t, tolerations, config.GetTolerations())
	require.Equal(t, nodeSelectors, config.GetNodeSelectors())
}

func TestPersistentDirectoryGetters(t *testing.T) {
	directory := NewPersistentDirectory("data-sova-sentinel", 1000)
	require.Equal(t, "data-sova-sentinel", directory.GetPersistentKey())
	require.Equal(t, uint64(1000), directory.GetSizeMegabytes())
}
