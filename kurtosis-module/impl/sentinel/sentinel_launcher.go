package sentinel

import (
	"fmt"
	"github.com/SovaNetwork/ethereum-package/kurtosis-module/impl/node_metrics"
	"github.com/SovaNetwork/ethereum-package/kurtosis-module/impl/plan"
	"github.com/SovaNetwork/ethereum-package/kurtosis-module/impl/shared_utils"
	"github.com/kurtosis-tech/kurtosis-core-api-lib/api/golang/lib/services"
	"github.com/kurtosis-tech/stacktrace"
	"github.com/sirupsen/logrus"
	"strconv"
)

const (
	defaultImage = "ghcr.io/sovanetwork/sova-sentinel:latest"

	clientName     = "sova-sentinel"
	clientTypeName = "sentinel"

	grpcPortId            = "grpc"
	grpcPortNum    uint16 = 50051
	metricsPortId         = "metrics"
	metricsPortNum uint16 = 9102
	metricsPath           = "/metrics"

	bindHost = "0.0.0.0"

	dataDirpathOnServiceContainer      = "/data/sova-sentinel"
	databaseFilepathOnServiceContainer = dataDirpathOnServiceContainer + "/sentinel.db"
	persistentDataKey                  = "data-sova-sentinel"
	persistentDataSizeMegabytes        = uint64(1000)

	hostEnvVar                  = "SOVA_SENTINEL_HOST"
	portEnvVar                  = "SOVA_SENTINEL_PORT"
	dbPathEnvVar                = "SOVA_SENTINEL_DB_PATH"
	confirmationThresholdEnvVar = "BITCOIN_CONFIRMATION_THRESHOLD"
	revertThresholdEnvVar       = "BITCOIN_REVERT_THRESHOLD"
	bitcoinRpcUrlEnvVar         = "BITCOIN_RPC_URL"
	bitcoinRpcUserEnvVar        = "BITCOIN_RPC_USER"
	bitcoinRpcPassEnvVar        = "BITCOIN_RPC_PASS"
	logLevelEnvVar              = "RUST_LOG"
	logLevel                    = "debug"
)

// The metrics port is not currently exposed on the service; it stays out of
// usedPorts until the sentinel's metrics listener is re-enabled, but the
// metrics URL handed back to callers still points at it
var usedPorts = map[string]*services.PortSpec{
	grpcPortId: services.NewPortSpec(grpcPortNum, services.PortProtocol_TCP),
	// metricsPortId: services.NewPortSpec(metricsPortNum, services.PortProtocol_TCP),
}

// LaunchSentinel assembles the sentinel service descriptor and submits it to the
// given plan. Threshold overrides take precedence over the values stored in the
// config; a zero override means "use the config value". A failed submission is
// propagated to the caller unmodified - there are no retries at this layer.
func LaunchSentinel(
	sentinelPlan plan.Plan,
	config *SentinelConfig,
	serviceId services.ServiceID,
	image string,
	confirmationThresholdOverride uint64,
	revertThresholdOverride uint64,
	minCpuMillicpus uint64,
	maxCpuMillicpus uint64,
	minMemoryMegabytes uint64,
	maxMemoryMegabytes uint64,
	persistent bool,
	tolerations []*plan.Toleration,
	nodeSelectors map[string]string,
	dockerCacheParams *shared_utils.DockerCacheParams,
) (*SentinelContext, error) {
	if config == nil {
		config = NewDefaultSentinelConfig()
	}
	if image == "" {
		image = defaultImage
	}
	image = shared_utils.GetDockerCacheImage(dockerCacheParams, image)

	confirmationThreshold := config.GetConfirmationThreshold()
	if confirmationThresholdOverride != 0 {
		confirmationThreshold = confirmationThresholdOverride
	}
	revertThreshold := config.GetRevertThreshold()
	if revertThresholdOverride != 0 {
		revertThreshold = revertThresholdOverride
	}

	envVars := map[string]string{
		hostEnvVar:                  bindHost,
		portEnvVar:                  fmt.Sprintf("%v", grpcPortNum),
		dbPathEnvVar:                databaseFilepathOnServiceContainer,
		confirmationThresholdEnvVar: strconv.FormatUint(confirmationThreshold, 10),
		revertThresholdEnvVar:       strconv.FormatUint(revertThreshold, 10),
		logLevelEnvVar:              logLevel,
	}
	if config.GetBitcoinRpcUrl() != "" {
		envVars[bitcoinRpcUrlEnvVar] = config.GetBitcoinRpcUrl()
	}
	if config.GetBitcoinRpcUser() != "" {
		envVars[bitcoinRpcUserEnvVar] = config.GetBitcoinRpcUser()
	}
	if config.GetBitcoinRpcPass() != "" {
		envVars[bitcoinRpcPassEnvVar] = config.GetBitcoinRpcPass()
	}

	labelImage := image
	if len(labelImage) > shared_utils.MaxLabelLength {
		labelImage = labelImage[len(labelImage)-shared_utils.MaxLabelLength:]
	}
	labels := shared_utils.GetClientLabels(clientName, clientTypeName, labelImage, "", nil)

	configBuilder := plan.NewServiceConfigBuilder(
		image,
	).WithUsedPorts(
		usedPorts,
	).WithEnvVars(
		envVars,
	).WithMinCpuMillicpus(
		minCpuMillicpus,
	).WithMaxCpuMillicpus(
		maxCpuMillicpus,
	).WithMinMemoryMegabytes(
		minMemoryMegabytes,
	).WithMaxMemoryMegabytes(
		maxMemoryMegabytes,
	).WithLabels(
		labels,
	).WithTolerations(
		tolerations,
	).WithNodeSelectors(
		nodeSelectors,
	)
	if persistent {
		configBuilder = configBuilder.WithPersistentDirectories(map[string]*plan.PersistentDirectory{
			dataDirpathOnServiceContainer: plan.NewPersistentDirectory(persistentDataKey, persistentDataSizeMegabytes),
		})
	}

	service, err := sentinelPlan.AddService(serviceId, configBuilder.Build())
	if err != nil {
		return nil, stacktrace.Propagate(err, "An error occurred launching the sentinel service with ID '%v'", serviceId)
	}
	logrus.Infof("Launched sentinel service '%v' with image '%v'", serviceId, image)

	metricsUrl := fmt.Sprintf("%v:%v", service.GetIPAddress(), metricsPortNum)
	metricsInfo := node_metrics.NewNodeMetricsInfo(string(serviceId), metricsPath, metricsUrl)

	result := NewSentinelContext(
		serviceId,
		service.GetIPAddress(),
		grpcPortNum,
		metricsInfo,
	)

	return result, nil
}
