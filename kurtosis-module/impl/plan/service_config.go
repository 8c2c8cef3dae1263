package plan

import (
	"github.com/kurtosis-tech/kurtosis-core-api-lib/api/golang/lib/services"
)

// A scheduling hint passed through to the orchestrator; mirrors the Kubernetes
// toleration shape, and is ignored by backends that don't schedule on nodes
type Toleration struct {
	Key               string `json:"key"`
	Operator          string `json:"operator"`
	Value             string `json:"value"`
	Effect            string `json:"effect"`
	TolerationSeconds *int64 `json:"tolerationSeconds,omitempty"`
}

// A named volume mounted into the service container that outlives the container itself
type PersistentDirectory struct {
	persistentKey string
	sizeMegabytes uint64
}

func NewPersistentDirectory(persistentKey string, sizeMegabytes uint64) *PersistentDirectory {
	return &PersistentDirectory{persistentKey: persistentKey, sizeMegabytes: sizeMegabytes}
}

func (directory *PersistentDirectory) GetPersistentKey() string {
	return directory.persistentKey
}

func (directory *PersistentDirectory) GetSizeMegabytes() uint64 {
	return directory.sizeMegabytes
}

// The full description of a service to be added to a plan; immutable once built
type ServiceConfig struct {
	image                 string
	usedPorts             map[string]*services.PortSpec
	envVars               map[string]string
	persistentDirectories map[string]*PersistentDirectory
	minCpuMillicpus       uint64
	maxCpuMillicpus       uint64
	minMemoryMegabytes    uint64
	maxMemoryMegabytes    uint64
	labels                map[string]string
	tolerations           []*Toleration
	nodeSelectors         map[string]string
}

func (config *ServiceConfig) GetImage() string {
	return config.image
}

func (config *ServiceConfig) GetUsedPorts() map[string]*services.PortSpec {
	return config.usedPorts
}

func (config *ServiceConfig) GetEnvVars() map[string]string {
	return config.envVars
}

func (config *ServiceConfig) GetPersistentDirectories() map[string]*PersistentDirectory {
	return config.persistentDirectories
}

func (config *ServiceConfig) GetMinCpuMillicpus() uint64 {
	return config.minCpuMillicpus
}

func (config *ServiceConfig) GetMaxCpuMillicpus() uint64 {
	return config.maxCpuMillicpus
}

func (config *ServiceConfig) GetMinMemoryMegabytes() uint64 {
	return config.minMemoryMegabytes
}

func (config *ServiceConfig) GetMaxMemoryMegabytes() uint64 {
	return config.maxMemoryMegabytes
}

func (config *ServiceConfig) GetLabels() map[string]string {
	return config.labels
}

func (config *ServiceConfig) GetTolerations() []*Toleration {
	return config.tolerations
}

func (config *ServiceConfig) GetNodeSelectors() map[string]string {
	return config.nodeSelectors
}

type ServiceConfigBuilder struct {
	image                 string
	usedPorts             map[string]*services.PortSpec
	envVars               map[string]string
	persistentDirectories map[string]*PersistentDirectory
	minCpuMillicpus       uint64
	maxCpuMillicpus       uint64
	minMemoryMegabytes    uint64
	maxMemoryMegabytes    uint64
	labels                map[string]string
	tolerations           []*Toleration
	nodeSelectors         map[string]string
}

func NewServiceConfigBuilder(image string) *ServiceConfigBuilder {
	return &ServiceConfigBuilder{
		image:                 image,
		usedPorts:             map[string]*services.PortSpec{},
		envVars:               map[string]string{},
		persistentDirectories: map[string]*PersistentDirectory{},
		labels:                map[string]string{},
		tolerations:           []*Toleration{},
		nodeSelectors:         map[string]string{},
	}
}

func (builder *ServiceConfigBuilder) WithUsedPorts(usedPorts map[string]*services.PortSpec) *ServiceConfigBuilder {
	builder.usedPorts = usedPorts
	return builder
}

func (builder *ServiceConfigBuilder) WithEnvVars(envVars map[string]string) *ServiceConfigBuilder {
	builder.envVars = envVars
	return builder
}

func (builder *ServiceConfigBuilder) WithPersistentDirectories(persistentDirectories map[string]*PersistentDirectory) *ServiceConfigBuilder {
	builder.persistentDirectories = persistentDirectories
	return builder
}

func (builder *ServiceConfigBuilder) WithMinCpuMillicpus(minCpuMillicpus uint64) *ServiceConfigBuilder {
	builder.minCpuMillicpus = minCpuMillicpus
	return builder
}

func (builder *ServiceConfigBuilder) WithMaxCpuMillicpus(maxCpuMillicpus uint64) *ServiceConfigBuilder {
	builder.maxCpuMillicpus = maxCpuMillicpus
	return builder
}

func (builder *ServiceConfigBuilder) WithMinMemoryMegabytes(minMemoryMegabytes uint64) *ServiceConfigBuilder {
	builder.minMemoryMegabytes = minMemoryMegabytes
	return builder
}

func (builder *ServiceConfigBuilder) WithMaxMemoryMegabytes(maxMemoryMegabytes uint64) *ServiceConfigBuilder {
	builder.maxMemoryMegabytes = maxMemoryMegabytes
	return builder
}

func (builder *ServiceConfigBuilder) WithLabels(labels map[string]string) *ServiceConfigBuilder {
	builder.labels = labels
	return builder
}

func (builder *ServiceConfigBuilder) WithTolerations(tolerations []*Toleration) *ServiceConfigBuilder {
	builder.tolerations = tolerations
	return builder
}

func (builder *ServiceConfigBuilder) WithNodeSelectors(nodeSelectors map[string]string) *ServiceConfigBuilder {
	builder.nodeSelectors = nodeSelectors
	return builder
}

func (builder *ServiceConfigBuilder) Build() *ServiceConfig {
	return &ServiceConfig{
		image:                 builder.image,
		usedPorts:             builder.usedPorts,
		envVars:               builder.envVars,
		persistentDirectories: builder.persistentDirectories,
		minCpuMillicpus:       builder.minCpuMillicpus,
		maxCpuMillicpus:       builder.maxCpuMillicpus,
		minMemoryMegabytes:    builder.minMemoryMegabytes,
		maxMemoryMegabytes:    builder.maxMemoryMegabytes,
		labels:                builder.labels,
		tolerations:           builder.tolerations,
		nodeSelectors:         builder.nodeSelectors,
	}
}
