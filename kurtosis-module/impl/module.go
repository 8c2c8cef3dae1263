package impl

import (
	"encoding/json"
	"fmt"
	"github.com/SovaNetwork/ethereum-package/kurtosis-module/impl/module_io"
	"github.com/SovaNetwork/ethereum-package/kurtosis-module/impl/plan"
	"github.com/SovaNetwork/ethereum-package/kurtosis-module/impl/sentinel"
	"github.com/kurtosis-tech/kurtosis-core-api-lib/api/golang/lib/enclaves"
	"github.com/kurtosis-tech/kurtosis-core-api-lib/api/golang/lib/services"
	"github.com/kurtosis-tech/stacktrace"
	"github.com/sirupsen/logrus"
)

const (
	sentinelServiceId services.ServiceID = "sova-sentinel"
)

type SovaEthModule struct {
}

func NewSovaEthModule() *SovaEthModule {
	return &SovaEthModule{}
}

func (module SovaEthModule) Execute(enclaveCtx *enclaves.EnclaveContext, serializedParams string) (serializedResult string, resultError error) {
	logrus.Infof("Deserializing the following execute params:\n%v", serializedParams)
	paramsObj, err := module_io.DeserializeAndValidateParams(serializedParams)
	if err != nil {
		return "", stacktrace.Propagate(err, "An error occurred deserializing & validating the params")
	}

	enclavePlan := plan.NewEnclavePlan(enclaveCtx)

	response := &module_io.ExecuteResponse{}
	for _, serviceName := range paramsObj.AdditionalServices {
		if serviceName != module_io.AdditionalService_SovaSentinel {
			// The EL/CL clients and the remaining auxiliary services are launched by
			// collaborating packages consuming the same topology document
			logrus.Infof("Additional service '%v' is managed outside this module; skipping", serviceName)
			continue
		}

		sentinelCtx, err := launchSentinelFromParams(enclavePlan, paramsObj)
		if err != nil {
			return "", stacktrace.Propagate(err, "An error occurred launching the Sova sentinel")
		}
		response.SovaSentinelInfo = &module_io.SovaSentinelInfo{
			ServiceID:  string(sentinelCtx.GetServiceID()),
			GRPCURL:    sentinelCtx.GetGRPCURL(),
			MetricsURL: fmt.Sprintf("http://%v%v", sentinelCtx.GetMetricsInfo().GetURL(), sentinelCtx.GetMetricsInfo().GetPath()),
		}
	}

	responseBytes, err := json.MarshalIndent(response, "", "  ")
	if err != nil {
		return "", stacktrace.Propagate(err, "An error occurred serializing the module response")
	}
	return string(responseBytes), nil
}

// ====================================================================================================
//
//	Private Helper Functions
//
// ====================================================================================================
func launchSentinelFromParams(enclavePlan plan.Plan, paramsObj *module_io.ExecuteParams) (*sentinel.SentinelContext, error) {
	sentinelParams := paramsObj.Sentinel
	if sentinelParams == nil {
		sentinelParams = &module_io.SentinelParams{}
	}

	// The config carries the launcher defaults; per-environment thresholds from the
	// topology document are applied as overrides
	sentinelConfig := sentinel.NewSentinelConfig(
		sentinelParams.BitcoinRpcUrl,
		sentinelParams.BitcoinRpcUser,
		sentinelParams.BitcoinRpcPass,
		0,
		0,
	)

	sentinelCtx, err := sentinel.LaunchSentinel(
		enclavePlan,
		sentinelConfig,
		sentinelServiceId,
		sentinelParams.Image,
		sentinelParams.ConfirmationThreshold,
		sentinelParams.RevertThreshold,
		sentinelParams.MinCpuMillicpus,
		sentinelParams.MaxCpuMillicpus,
		sentinelParams.MinMemoryMegabytes,
		sentinelParams.MaxMemoryMegabytes,
		sentinelParams.Persistent,
		sentinelParams.Tolerations,
		sentinelParams.NodeSelectors,
		paramsObj.DockerCache,
	)
	if err != nil {
		return nil, stacktrace.Propagate(err, "An error occurred launching the sentinel service with ID '%v'", sentinelServiceId)
	}
	return sentinelCtx, nil
}
