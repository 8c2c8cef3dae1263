package module_io

import (
	"github.com/SovaNetwork/ethereum-package/kurtosis-module/impl/plan"
	"github.com/SovaNetwork/ethereum-package/kurtosis-module/impl/shared_utils"
)

// Global client log level "enum"
type GlobalClientLogLevel string

const (
	GlobalClientLogLevel_Error GlobalClientLogLevel = "error"
	GlobalClientLogLevel_Warn  GlobalClientLogLevel = "warn"
	GlobalClientLogLevel_Info  GlobalClientLogLevel = "info"
	GlobalClientLogLevel_Debug GlobalClientLogLevel = "debug"
	GlobalClientLogLevel_Trace GlobalClientLogLevel = "trace"
)

var validGlobalClientLogLevels = map[GlobalClientLogLevel]bool{
	GlobalClientLogLevel_Error: true,
	GlobalClientLogLevel_Warn:  true,
	GlobalClientLogLevel_Info:  true,
	GlobalClientLogLevel_Debug: true,
	GlobalClientLogLevel_Trace: true,
}

// Participant EL client type "enum"
type ParticipantELClientType string

const (
	ParticipantELClientType_Geth       ParticipantELClientType = "geth"
	ParticipantELClientType_Nethermind ParticipantELClientType = "nethermind"
	ParticipantELClientType_Besu       ParticipantELClientType = "besu"
	ParticipantELClientType_Erigon     ParticipantELClientType = "erigon"
	ParticipantELClientType_Reth       ParticipantELClientType = "reth"
)

var validParticipantELClientTypes = map[ParticipantELClientType]bool{
	ParticipantELClientType_Geth:       true,
	ParticipantELClientType_Nethermind: true,
	ParticipantELClientType_Besu:       true,
	ParticipantELClientType_Erigon:     true,
	ParticipantELClientType_Reth:       true,
}

// Participant CL client type "enum"
type ParticipantCLClientType string

const (
	ParticipantCLClientType_Lighthouse ParticipantCLClientType = "lighthouse"
	ParticipantCLClientType_Teku       ParticipantCLClientType = "teku"
	ParticipantCLClientType_Nimbus     ParticipantCLClientType = "nimbus"
	ParticipantCLClientType_Prysm      ParticipantCLClientType = "prysm"
	ParticipantCLClientType_Lodestar   ParticipantCLClientType = "lodestar"
)

var validParticipantCLClientTypes = map[ParticipantCLClientType]bool{
	ParticipantCLClientType_Lighthouse: true,
	ParticipantCLClientType_Teku:       true,
	ParticipantCLClientType_Nimbus:     true,
	ParticipantCLClientType_Prysm:      true,
	ParticipantCLClientType_Lodestar:   true,
}

// Additional-service names this package recognizes; all of them except the
// sentinel are launched by collaborating packages, not by this module
const (
	AdditionalService_Dora         = "dora"
	AdditionalService_Spamoor      = "spamoor"
	AdditionalService_Assertoor    = "assertoor"
	AdditionalService_SovaSentinel = "sova_sentinel"
)

var validAdditionalServices = map[string]bool{
	AdditionalService_Dora:         true,
	AdditionalService_Spamoor:      true,
	AdditionalService_Assertoor:    true,
	AdditionalService_SovaSentinel: true,
}

type ExecuteParams struct {
	// Parameters controlling the types of clients that compose the network
	Participants []*ParticipantParams `json:"participants"`

	// Parameters controlling the settings of the network itself
	Network *NetworkParams `json:"network"`

	// Names of the auxiliary services that should run alongside the network
	AdditionalServices []string `json:"additionalServices"`

	// Parameters for the Sova sentinel; only consumed when "sova_sentinel" is
	// listed in AdditionalServices
	Sentinel *SentinelParams `json:"sovaSentinel"`

	// If set, ghcr.io images are pulled through the given caching mirror
	DockerCache *shared_utils.DockerCacheParams `json:"dockerCache"`

	// The log level that the started clients should log at
	ClientLogLevel GlobalClientLogLevel `json:"logLevel"`
}

type ParticipantParams struct {
	// The type of EL client that should be started
	ELClientType ParticipantELClientType `json:"elType"`

	// The Docker image that should be used for the EL client; leave blank to use the default
	ELClientImage string `json:"elImage"`

	// The type of CL client that should be started
	CLClientType ParticipantCLClientType `json:"clType"`

	// The Docker image that should be used for the CL client; leave blank to use the default
	CLClientImage string `json:"clImage"`

	// How many nodes of this EL/CL pairing to start
	Count uint32 `json:"count"`
}

// Parameters controlling particulars of the network being started
type NetworkParams struct {
	// The network ID of the execution-layer chain
	NetworkID string `json:"networkId"`

	// Number of seconds per slot on the Beacon chain
	SecondsPerSlot uint32 `json:"secondsPerSlot"`

	// Number of slots in an epoch on the Beacon chain
	SlotsPerEpoch uint32 `json:"slotsPerEpoch"`

	CapellaForkEpoch uint64 `json:"capellaForkEpoch"`
	DenebForkEpoch   uint64 `json:"denebForkEpoch"`
	ElectraForkEpoch uint64 `json:"electraForkEpoch"`

	// The number of validator keys that each CL validator node should get
	NumValidatorKeysPerNode uint32 `json:"numValidatorKeysPerNode"`

	// This mnemonic is used to generate the keystores for all preregistered validators
	PreregisteredValidatorKeysMnemonic string `json:"preregisteredValidatorKeysMnemonic"`
}

// Per-environment sentinel settings from the topology document; zero-valued
// thresholds mean "use the launcher defaults"
type SentinelParams struct {
	// The Docker image that should be used for the sentinel; leave blank to use the default
	Image string `json:"image"`

	BitcoinRpcUrl  string `json:"bitcoinRpcUrl"`
	BitcoinRpcUser string `json:"bitcoinRpcUser"`
	BitcoinRpcPass string `json:"bitcoinRpcPass"`

	ConfirmationThreshold uint64 `json:"confirmationThreshold"`
	RevertThreshold       uint64 `json:"revertThreshold"`

	MinCpuMillicpus    uint64 `json:"minCpu"`
	MaxCpuMillicpus    uint64 `json:"maxCpu"`
	MinMemoryMegabytes uint64 `json:"minMem"`
	MaxMemoryMegabytes uint64 `json:"maxMem"`

	// If true, the sentinel's database is placed on a persistent volume
	Persistent bool `json:"persistent"`

	Tolerations   []*plan.Toleration `json:"tolerations"`
	NodeSelectors map[string]string  `json:"nodeSelectors"`
}
