package sentinel

const (
	// Minimum Bitcoin block confirmations before a slot is considered unlocked
	DefaultConfirmationThreshold uint64 = 6

	// Confirmation depth after which an already-locked slot is considered reverted
	DefaultRevertThreshold uint64 = 18
)

// Long-lived launch configuration for sentinel services; immutable after construction.
// No validation is performed here: credential fields may be empty (the Bitcoin RPC
// feature is simply unused downstream) and threshold ordering is the caller's concern.
type SentinelConfig struct {
	bitcoinRpcUrl  string
	bitcoinRpcUser string
	bitcoinRpcPass string

	confirmationThreshold uint64
	revertThreshold       uint64
}

// NewSentinelConfig builds a config, filling unset (zero) thresholds with the defaults.
// Empty credential strings mean "unset" and result in the corresponding env vars
// being omitted at launch time.
func NewSentinelConfig(
	bitcoinRpcUrl string,
	bitcoinRpcUser string,
	bitcoinRpcPass string,
	confirmationThreshold uint64,
	revertThreshold uint64,
) *SentinelConfig {
	if confirmationThreshold == 0 {
		confirmationThreshold = DefaultConfirmationThreshold
	}
	if revertThreshold == 0 {
		revertThreshold = DefaultRevertThreshold
	}
	return &SentinelConfig{
		bitcoinRpcUrl:         bitcoinRpcUrl,
		bitcoinRpcUser:        bitcoinRpcUser,
		bitcoinRpcPass:        bitcoinRpcPass,
		confirmationThreshold: confirmationThreshold,
		revertThreshold:       revertThreshold,
	}
}

func NewDefaultSentinelConfig() *SentinelConfig {
	return NewSentinelConfig("", "", "", 0, 0)
}

func (config *SentinelConfig) GetBitcoinRpcUrl() string {
	return config.bitcoinRpcUrl
}

func (config *SentinelConfig) GetBitcoinRpcUser() string {
	return config.bitcoinRpcUser
}

func (config *SentinelConfig) GetBitcoinRpcPass() string {
	return config.bitcoinRpcPass
}

func (config *SentinelConfig) GetConfirmationThreshold() uint64 {
	return config.confirmationThreshold
}

func (config *SentinelConfig) GetRevertThreshold() uint64 {
	return config.revertThreshold
}
