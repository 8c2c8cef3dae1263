package module_io

import (
	"encoding/json"
	"github.com/distribution/reference"
	"github.com/kurtosis-tech/stacktrace"
	"github.com/sirupsen/logrus"
	"strings"
)

const (
	expectedSlotsPerEpoch = 32
)

func DeserializeAndValidateParams(paramsStr string) (*ExecuteParams, error) {
	paramsObj := getDefaultParams()
	if err := json.Unmarshal([]byte(paramsStr), paramsObj); err != nil {
		return nil, stacktrace.Propagate(err, "An error occurred deserializing the serialized params")
	}

	if _, found := validGlobalClientLogLevels[paramsObj.ClientLogLevel]; !found {
		return nil, stacktrace.NewError("Unrecognized client log level '%v'", paramsObj.ClientLogLevel)
	}

	// Validate participants
	if len(paramsObj.Participants) == 0 {
		return nil, stacktrace.NewError("At least one participant is required")
	}
	for idx, participant := range paramsObj.Participants {
		elClientType := participant.ELClientType
		if _, found := validParticipantELClientTypes[elClientType]; !found {
			return nil, stacktrace.NewError("Participant %v declares unrecognized EL client type '%v'", idx, elClientType)
		}

		clClientType := participant.CLClientType
		if _, found := validParticipantCLClientTypes[clClientType]; !found {
			return nil, stacktrace.NewError("Participant %v declares unrecognized CL client type '%v'", idx, clClientType)
		}

		if participant.Count == 0 {
			return nil, stacktrace.NewError("Participant %v declares a node count of 0", idx)
		}

		if err := validateImageReference(participant.ELClientImage); err != nil {
			return nil, stacktrace.Propagate(err, "Participant %v declares a malformed EL client image", idx)
		}
		if err := validateImageReference(participant.CLClientImage); err != nil {
			return nil, stacktrace.Propagate(err, "Participant %v declares a malformed CL client image", idx)
		}
	}

	networkParams := paramsObj.Network
	if len(strings.TrimSpace(networkParams.NetworkID)) == 0 {
		return nil, stacktrace.NewError("Network ID must not be empty")
	}

	// Slot/epoch validation
	if networkParams.SecondsPerSlot == 0 {
		return nil, stacktrace.NewError("Each slot must be >= 1 second")
	}
	if networkParams.SlotsPerEpoch == 0 {
		return nil, stacktrace.NewError("Each epoch must be composed of >= 1 slot")
	}
	if networkParams.SlotsPerEpoch != expectedSlotsPerEpoch {
		logrus.Warnf("The current slots-per-epoch value is set to '%v'; values that aren't '%v' may cause the network to behave strangely", networkParams.SlotsPerEpoch, expectedSlotsPerEpoch)
	}

	// Fork epoch validation
	if networkParams.DenebForkEpoch < networkParams.CapellaForkEpoch {
		return nil, stacktrace.NewError("Deneb fork epoch must be >= Capella fork epoch")
	}
	if networkParams.ElectraForkEpoch < networkParams.DenebForkEpoch {
		return nil, stacktrace.NewError("Electra fork epoch must be >= Deneb fork epoch")
	}

	// Validator validation
	if networkParams.NumValidatorKeysPerNode == 0 {
		return nil, stacktrace.NewError("Each validator node needs >= 1 validator key")
	}
	if len(strings.TrimSpace(networkParams.PreregisteredValidatorKeysMnemonic)) == 0 {
		return nil, stacktrace.NewError("Preregistered validator keys mnemonic must not be empty")
	}

	// Additional-service validation; duplicates are collapsed so a service gets
	// launched (and its service ID claimed) at most once
	seenAdditionalServices := map[string]bool{}
	dedupedAdditionalServices := []string{}
	for _, serviceName := range paramsObj.AdditionalServices {
		if _, found := validAdditionalServices[serviceName]; !found {
			return nil, stacktrace.NewError("Unrecognized additional service '%v'", serviceName)
		}
		if seenAdditionalServices[serviceName] {
			logrus.Warnf("Additional service '%v' is listed more than once; ignoring the duplicates", serviceName)
			continue
		}
		seenAdditionalServices[serviceName] = true
		dedupedAdditionalServices = append(dedupedAdditionalServices, serviceName)
	}
	paramsObj.AdditionalServices = dedupedAdditionalServices

	sentinelParams := paramsObj.Sentinel
	if sentinelParams != nil {
		if err := validateImageReference(sentinelParams.Image); err != nil {
			return nil, stacktrace.Propagate(err, "The sentinel declares a malformed image")
		}
		// Threshold ordering is deliberately NOT an error; the launcher accepts any combination
		if sentinelParams.ConfirmationThreshold != 0 && sentinelParams.RevertThreshold != 0 &&
			sentinelParams.RevertThreshold <= sentinelParams.ConfirmationThreshold {
			logrus.Warnf(
				"The sentinel revert threshold '%v' is not greater than the confirmation threshold '%v'; locked slots may be considered reverted before they unlock",
				sentinelParams.RevertThreshold,
				sentinelParams.ConfirmationThreshold,
			)
		}
	}

	if paramsObj.DockerCache != nil && paramsObj.DockerCache.Enabled && len(strings.TrimSpace(paramsObj.DockerCache.URL)) == 0 {
		return nil, stacktrace.NewError("The Docker cache is enabled but no cache URL was given")
	}

	return paramsObj, nil
}

// Empty image strings are allowed everywhere (they mean "use the default image")
func validateImageReference(image string) error {
	if image == "" {
		return nil
	}
	if _, err := reference.ParseNormalizedNamed(image); err != nil {
		return stacktrace.Propagate(err, "Image '%v' isn't a valid Docker image reference", image)
	}
	return nil
}
