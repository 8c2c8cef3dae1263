package plan

import (
	"github.com/kurtosis-tech/kurtosis-core-api-lib/api/golang/lib/enclaves"
	"github.com/kurtosis-tech/kurtosis-core-api-lib/api/golang/lib/services"
	"github.com/kurtosis-tech/stacktrace"
	"github.com/sirupsen/logrus"
)

// EnclavePlan runs service descriptors inside a Kurtosis enclave
type EnclavePlan struct {
	enclaveCtx *enclaves.EnclaveContext
}

func NewEnclavePlan(enclaveCtx *enclaves.EnclaveContext) *EnclavePlan {
	return &EnclavePlan{enclaveCtx: enclaveCtx}
}

func (enclavePlan *EnclavePlan) AddService(serviceId services.ServiceID, serviceConfig *ServiceConfig) (*Service, error) {
	logUnsupportedFields(serviceId, serviceConfig)

	containerConfig := getContainerConfig(serviceConfig)
	serviceCtx, err := enclavePlan.enclaveCtx.AddService(serviceId, containerConfig)
	if err != nil {
		return nil, stacktrace.Propagate(err, "An error occurred adding service '%v' to the enclave", serviceId)
	}

	return NewService(serviceId, serviceCtx.GetPrivateIPAddress()), nil
}

// ====================================================================================================
//
//	Private Helper Functions
//
// ====================================================================================================
func getContainerConfig(serviceConfig *ServiceConfig) *services.ContainerConfig {
	builder := services.NewContainerConfigBuilder(
		serviceConfig.GetImage(),
	).WithUsedPorts(
		serviceConfig.GetUsedPorts(),
	)
	if len(serviceConfig.GetEnvVars()) > 0 {
		builder = builder.WithEnvironmentVariableOverrides(serviceConfig.GetEnvVars())
	}
	// The enclave backend knows a single allocation per resource, so the upper bounds
	// become the allocation; minimums are scheduler reservations it can't express
	if serviceConfig.GetMaxCpuMillicpus() > 0 {
		builder = builder.WithCPUAllocationMillicpus(serviceConfig.GetMaxCpuMillicpus())
	}
	if serviceConfig.GetMaxMemoryMegabytes() > 0 {
		builder = builder.WithMemoryAllocationMegabytes(serviceConfig.GetMaxMemoryMegabytes())
	}
	return builder.Build()
}

func logUnsupportedFields(serviceId services.ServiceID, serviceConfig *ServiceConfig) {
	if len(serviceConfig.GetPersistentDirectories()) > 0 {
		logrus.Warnf(
			"Service '%v' requests persistent storage, but the enclave backend has no persistent volume support; data will live in the container filesystem and be lost on teardown",
			serviceId,
		)
	}
	if serviceConfig.GetMinCpuMillicpus() > 0 || serviceConfig.GetMinMemoryMegabytes() > 0 {
		logrus.Debugf("Minimum resource bounds for service '%v' are not applied by the enclave backend", serviceId)
	}
	if len(serviceConfig.GetTolerations()) > 0 || len(serviceConfig.GetNodeSelectors()) > 0 {
		logrus.Debugf("Scheduling hints for service '%v' are node-scheduler settings and are ignored by the enclave backend", serviceId)
	}
	if len(serviceConfig.GetLabels()) > 0 {
		logrus.Debugf("Labels for service '%v' are not applied by the enclave backend", serviceId)
	}
}
